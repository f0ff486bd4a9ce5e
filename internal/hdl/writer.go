// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column is the alignment column of names in declaration lists and
// association lists.
//
const Column = 30

const bannerWidth = 80

// Assoc is a formal => actual association.
//
type Assoc struct {
	Formal string
	Actual string
}

// Instance is a direct entity instantiation.
//
type Instance struct {
	Label    string
	Entity   string
	Generics []Assoc
	Ports    []Assoc
}

// Writer builds VHDL source text. The zero value is ready to use.
//
type Writer struct {
	b bytes.Buffer
}

// Bytes returns the text written so far.
//
func (w *Writer) Bytes() []byte { return w.b.Bytes() }

func (w *Writer) String() string { return w.b.String() }

func indent(n int) string { return strings.Repeat(" ", n) }

// Align pads s with spaces to col display columns. At least one space
// follows s.
//
func Align(s string, col int) string {
	if runewidth.StringWidth(s) >= col {
		return s + " "
	}
	return runewidth.FillRight(s, col)
}

// NL writes an empty line.
//
func (w *Writer) NL() { w.b.WriteByte('\n') }

// Line writes an indented line.
//
func (w *Writer) Line(ind int, s string) {
	w.b.WriteString(indent(ind))
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

// Linef writes an indented formatted line.
//
func (w *Writer) Linef(ind int, format string, args ...interface{}) {
	w.Line(ind, fmt.Sprintf(format, args...))
}

// Comment writes a single line comment.
//
func (w *Writer) Comment(ind int, text string) {
	w.Line(ind, "-- "+text)
}

// Banner writes a comment framed by dashed lines.
//
func (w *Writer) Banner(ind int, text string) {
	n := bannerWidth - ind
	if n < 4 {
		n = 4
	}
	rule := strings.Repeat("-", n)
	w.Line(ind, rule)
	w.Comment(ind, text)
	w.Line(ind, rule)
}

// License writes text as a comment block. Empty text writes nothing.
//
func (w *Writer) License(text string) {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return
	}
	for _, l := range strings.Split(text, "\n") {
		w.Line(0, strings.TrimRight("-- "+l, " "))
	}
	w.NL()
}

// Use writes a library clause followed by use clauses.
//
func (w *Writer) Use(lib string, pkgs ...string) {
	w.Linef(0, "Library %s;", lib)
	for _, p := range pkgs {
		w.Linef(0, "use %s.%s;", lib, p)
	}
}

// Assign writes a concurrent signal assignment.
//
func (w *Writer) Assign(ind int, dst, src string) {
	w.Linef(ind, "%s <= %s;", dst, src)
}

// IfGenerate writes an if-generate statement. body writes the statements at
// the given indentation.
//
func (w *Writer) IfGenerate(ind int, label, cond string, body func(ind int)) {
	w.Linef(ind, "%s : if (%s) generate", label, cond)
	body(ind + 4)
	w.Linef(ind, "end generate %s;", label)
}

// format returns d without trailing delimiter.
//
func (d Decl) format(ind int) string {
	var b strings.Builder
	b.WriteString(indent(ind))
	name := d.Name
	if d.Class != "" {
		name = d.Class + " " + name
	}
	b.WriteString(Align(name, Column))
	b.WriteString(": ")
	if d.Mode != NoMode {
		b.WriteString(d.Mode.String())
		b.WriteByte(' ')
	}
	b.WriteString(d.Type)
	if d.Default != "" {
		b.WriteString(" := ")
		b.WriteString(d.Default)
	}
	return b.String()
}

// interfaceList writes "keyword (decls);", entries separated by ';'.
//
func (w *Writer) interfaceList(ind int, keyword string, ds []Decl) {
	if len(ds) == 0 {
		return
	}
	w.Linef(ind, "%s (", keyword)
	for i, d := range ds {
		s := d.format(ind + 2)
		if i < len(ds)-1 {
			s += ";"
		}
		w.Line(0, s)
	}
	w.Line(ind, ");")
}

// Decls writes object declarations, each terminated by ';'.
//
func (w *Writer) Decls(ind int, ds []Decl) {
	for _, d := range ds {
		w.Line(0, d.format(ind)+";")
	}
}

// Entity writes an entity declaration.
//
func (w *Writer) Entity(e *Entity) {
	w.Linef(0, "entity %s is", e.Name)
	w.interfaceList(2, "generic", e.Generics)
	w.interfaceList(2, "port", e.Ports)
	w.Linef(0, "end entity %s;", e.Name)
}

// Component writes a component declaration for e.
//
func (w *Writer) Component(ind int, e *Entity) {
	w.Linef(ind, "component %s is", e.Name)
	w.interfaceList(ind+2, "generic", e.Generics)
	w.interfaceList(ind+2, "port", e.Ports)
	w.Linef(ind, "end component %s;", e.Name)
}

// Architecture writes an architecture body with the given declarations.
//
func (w *Writer) Architecture(name, entity string, decls []Decl, body func(ind int)) {
	w.ArchitectureTypes(name, entity, nil, decls, body)
}

// ArchitectureTypes is like Architecture but calls types, if not nil, to
// write local type declarations ahead of decls.
//
func (w *Writer) ArchitectureTypes(name, entity string, types func(ind int), decls []Decl, body func(ind int)) {
	w.Linef(0, "architecture %s of %s is", name, entity)
	if types != nil {
		types(2)
		w.NL()
	}
	w.Decls(2, decls)
	w.NL()
	w.Line(0, "begin")
	w.NL()
	body(4)
	w.Linef(0, "end architecture %s;", name)
}

func (w *Writer) assocList(ind int, keyword string, as []Assoc, last string) {
	if len(as) == 0 {
		return
	}
	w.Linef(ind, "%s map (", keyword)
	for i, a := range as {
		s := indent(ind+4) + Align(a.Formal, Column) + "=> " + a.Actual
		if i < len(as)-1 {
			s += ","
		}
		w.Line(0, s)
	}
	w.Line(ind, ")"+last)
}

// Instance writes a direct entity instantiation.
//
func (w *Writer) Instance(ind int, inst *Instance) {
	w.Linef(ind, "%s : entity work.%s", inst.Label, inst.Entity)
	end := ""
	if len(inst.Ports) == 0 {
		end = ";"
	}
	w.assocList(ind, "generic", inst.Generics, end)
	w.assocList(ind, "port", inst.Ports, ";")
}

// Record writes a record type declaration.
//
func (w *Writer) Record(ind int, name string, fields []Decl) {
	w.Linef(ind, "type %s is record", name)
	w.Decls(ind+2, fields)
	w.Line(ind, "end record;")
}

// Package writes a package declaration.
//
func (w *Writer) Package(name string, body func(ind int)) {
	w.Linef(0, "package %s is", name)
	body(2)
	w.Linef(0, "end package %s;", name)
}
