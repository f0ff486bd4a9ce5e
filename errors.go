// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package regmap

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrorKind classifies generation errors.
//
type ErrorKind int

// Error kinds.
//
const (
	// Malformed reports a model that breaks a layout invariant.
	Malformed ErrorKind = iota + 1
	// Degenerate reports a layout with nothing to decode.
	Degenerate
	// Binding reports a component slot that does not resolve against its
	// template.
	Binding
)

func (k ErrorKind) String() string {
	switch k {
	case Malformed:
		return "malformed model"
	case Degenerate:
		return "degenerate layout"
	case Binding:
		return "binding error"
	}
	return "error"
}

// Error is a generation error. It identifies the offending block, register
// and field when known.
//
type Error struct {
	Kind     ErrorKind
	Block    string
	Register string
	Field    string
	Msg      string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Block != "" {
		b.WriteString(": block ")
		b.WriteString(e.Block)
	}
	if e.Register != "" {
		b.WriteString(" register ")
		b.WriteString(e.Register)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	return b.String()
}

// KindOf returns the kind of err if its cause is an *Error, 0 otherwise.
//
func KindOf(err error) ErrorKind {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return 0
}

func malformed(b *Block, r *Register, f *Field, format string, args ...interface{}) error {
	e := &Error{Kind: Malformed, Msg: fmt.Sprintf(format, args...)}
	if b != nil {
		e.Block = b.Name
	}
	if r != nil {
		e.Register = r.Name
	}
	if f != nil {
		e.Field = f.Name
	}
	return errors.WithStack(e)
}
