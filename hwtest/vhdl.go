// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"testing"

	"github.com/db47h/regmap/internal/hdl"
	"github.com/pkg/errors"
)

type unit struct {
	kind  string
	label string
}

// CheckVHDL runs sanity checks on generated VHDL: parentheses balance,
// entity, architecture and package declarations are closed with their own
// name and every labeled generate statement is closed with its label.
//
func CheckVHDL(src string) error {
	var (
		depth int
		open  []unit
	)
	ts := hdl.Tokenize(src)
	for i, t := range ts {
		switch {
		case t.Is("("):
			depth++
		case t.Is(")"):
			depth--
			if depth < 0 {
				return errors.Errorf("pos %d: unbalanced ')'", t.Pos)
			}
		case t.Is("entity") || t.Is("architecture") || t.Is("package"):
			if i > 0 && (ts[i-1].Is("end") || ts[i-1].Is(":")) {
				continue
			}
			if i+1 < len(ts) {
				open = append(open, unit{kind: t.Value, label: ts[i+1].Value})
			}
		case t.Is("generate"):
			if i > 0 && ts[i-1].Is("end") {
				continue
			}
			// label : if (...) generate
			j := i - 1
			for d := 0; j >= 0; j-- {
				if ts[j].Is(")") {
					d++
				} else if ts[j].Is("(") {
					d--
				}
				if d == 0 && (ts[j].Is("if") || ts[j].Is("for")) {
					break
				}
			}
			if j < 2 || !ts[j-1].Is(":") {
				return errors.Errorf("pos %d: unlabeled generate statement", t.Pos)
			}
			open = append(open, unit{kind: "generate", label: ts[j-2].Value})
		case t.Is("end"):
			if i+2 >= len(ts) {
				continue
			}
			k := ts[i+1]
			if !k.Is("entity") && !k.Is("architecture") && !k.Is("package") && !k.Is("generate") {
				continue
			}
			if len(open) == 0 {
				return errors.Errorf("pos %d: unexpected end %s", t.Pos, k.Value)
			}
			u := open[len(open)-1]
			open = open[:len(open)-1]
			if !k.Is(u.kind) || !ts[i+2].Is(u.label) {
				return errors.Errorf("pos %d: end %s %s closes %s %s", t.Pos, k.Value, ts[i+2].Value, u.kind, u.label)
			}
		}
	}
	if depth != 0 {
		return errors.New("unbalanced parentheses")
	}
	if len(open) > 0 {
		u := open[len(open)-1]
		return errors.Errorf("%s %s not closed", u.kind, u.label)
	}
	return nil
}

// MustCheckVHDL calls CheckVHDL and fails the test on error.
//
func MustCheckVHDL(t testing.TB, name string, src []byte) {
	t.Helper()
	if err := CheckVHDL(string(src)); err != nil {
		t.Fatalf("%s: %v", name, err)
	}
}
