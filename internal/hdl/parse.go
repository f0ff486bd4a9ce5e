// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"github.com/pkg/errors"
)

// Mode is the direction of a port.
//
type Mode int

// Port modes.
//
const (
	NoMode Mode = iota
	In
	Out
	Inout
	Buffer
)

var modeNames = [...]string{NoMode: "", In: "in", Out: "out", Inout: "inout", Buffer: "buffer"}

func (m Mode) String() string { return modeNames[m] }

// Decl is an interface list entry or an object declaration:
//
//	[class] name : [mode] type [:= default]
//
type Decl struct {
	Class   string // constant, signal or empty
	Name    string
	Mode    Mode
	Type    string
	Default string
}

// Entity is a parsed entity header.
//
type Entity struct {
	Name     string
	Generics []Decl
	Ports    []Decl
}

// Generic returns the generic with the given name.
//
func (e *Entity) Generic(name string) (Decl, bool) { return find(e.Generics, name) }

// Port returns the port with the given name.
//
func (e *Entity) Port(name string) (Decl, bool) { return find(e.Ports, name) }

func find(ds []Decl, name string) (Decl, bool) {
	for _, d := range ds {
		if d.Name == name {
			return d, true
		}
	}
	return Decl{}, false
}

// Parser is a simplistic parser for VHDL entity headers. It skips anything
// before the first entity declaration and stops at its end.
//
type Parser struct {
	Name  string // source name used in error messages
	Input string
	l     lexer
	t     Token
}

// ParseEntity parses the first entity declaration in src.
//
func ParseEntity(name, src string) (*Entity, error) {
	p := &Parser{Name: name, Input: src}
	return p.Entity()
}

func (p *Parser) next() Token {
	p.t = p.l.next()
	return p.t
}

// Entity parses the entity declaration.
//
func (p *Parser) Entity() (*Entity, error) {
	p.l = lexer{in: p.Input}
	for t := p.next(); !t.Is("entity"); t = p.next() {
		if t.Type == EOF {
			return nil, p.errorf("no entity declaration")
		}
	}
	t := p.next()
	if t.Type != Identifier {
		return nil, p.errorf("expected entity name")
	}
	e := &Entity{Name: t.Value}
	if !p.next().Is("is") {
		return nil, p.errorf("expected \"is\" after entity name")
	}
	for {
		var err error
		switch t := p.next(); {
		case t.Is("generic"):
			if e.Generics != nil {
				return nil, p.errorf("duplicate generic clause")
			}
			e.Generics, err = p.list()
		case t.Is("port"):
			if e.Ports != nil {
				return nil, p.errorf("duplicate port clause")
			}
			e.Ports, err = p.list()
		case t.Is("end"):
			return e, nil
		default:
			return nil, p.errorf("unexpected " + t.String())
		}
		if err != nil {
			return nil, err
		}
	}
}

// list parses "( decl {; decl} ) ;".
//
func (p *Parser) list() ([]Decl, error) {
	if !p.next().Is("(") {
		return nil, p.errorf("expected '('")
	}
	ds := make([]Decl, 0, 8)
	for {
		d, err := p.decls()
		if err != nil {
			return nil, err
		}
		ds = append(ds, d...)
		if p.t.Is(")") {
			break
		}
	}
	if !p.next().Is(";") {
		return nil, p.errorf("expected ';' after interface list")
	}
	return ds, nil
}

// decls parses one interface declaration, possibly declaring several names.
// It stops on the closing ';' or ')'.
//
func (p *Parser) decls() ([]Decl, error) {
	var d Decl
	t := p.next()
	if t.Is("constant") || t.Is("signal") || t.Is("variable") {
		d.Class = t.Value
		t = p.next()
	}
	var names []string
	for {
		if t.Type != Identifier {
			return nil, p.errorf("expected name")
		}
		names = append(names, t.Value)
		if t = p.next(); !t.Is(",") {
			break
		}
		t = p.next()
	}
	if !t.Is(":") {
		return nil, p.errorf("expected ':' after name")
	}
	t = p.next()
	for m := In; m <= Buffer; m++ {
		if t.Is(modeNames[m]) {
			d.Mode = m
			t = p.next()
			break
		}
	}
	typ, err := p.until(t, ":=")
	if err != nil {
		return nil, err
	}
	if len(typ) == 0 {
		return nil, p.errorf("missing type")
	}
	d.Type = join(typ)
	if p.t.Is(":=") {
		def, err := p.until(p.next(), "")
		if err != nil {
			return nil, err
		}
		if len(def) == 0 {
			return nil, p.errorf("missing default value")
		}
		d.Default = join(def)
	}
	out := make([]Decl, len(names))
	for i, n := range names {
		out[i] = d
		out[i].Name = n
	}
	return out, nil
}

// until collects tokens, starting with t, up to ';' or ')' or stop at nesting
// level 0.
//
func (p *Parser) until(t Token, stop string) ([]Token, error) {
	var ts []Token
	depth := 0
	for ; ; t = p.next() {
		switch {
		case t.Type == EOF:
			return nil, p.errorf("unexpected end of input")
		case t.Is("("):
			depth++
		case depth == 0 && (t.Is(";") || t.Is(")") || stop != "" && t.Is(stop)):
			return ts, nil
		case t.Is(")"):
			depth--
		}
		ts = append(ts, t)
	}
}

func (p *Parser) errorf(msg string) error {
	return errors.Errorf("in %s at pos %d: %s", p.Name, p.t.Pos+1, msg)
}
