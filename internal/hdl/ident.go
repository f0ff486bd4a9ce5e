// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ident returns the lower case spelling of a VHDL identifier. Casers are not
// safe for concurrent use, so one is built per call.
//
func Ident(s string) string { return cases.Lower(language.Und).String(s) }

// Const returns the upper case spelling used for constants and generics.
//
func Const(s string) string { return cases.Upper(language.Und).String(s) }

// Select returns a record element selection "rec.elem" in lower case.
//
func Select(rec, elem string) string { return Ident(rec + "." + elem) }

// Vector returns a std_logic_vector subtype of the given width.
//
func Vector(width int) string {
	return "std_logic_vector(" + strconv.Itoa(width-1) + " downto 0)"
}

// Slice returns "name(high downto low)".
//
func Slice(name string, high, low int) string {
	return name + "(" + strconv.Itoa(high) + " downto " + strconv.Itoa(low) + ")"
}

// Index returns "name(i)".
//
func Index(name string, i int) string {
	return name + "(" + strconv.Itoa(i) + ")"
}

// Bool returns a VHDL boolean literal.
//
func Bool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
