// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	"github.com/db47h/regmap"
	"github.com/db47h/regmap/internal/hdl"
)

// Reserved is the name of the single field of records that would otherwise
// be empty.
//
const Reserved = "reserved"

// A Record is an interface record type of a register map entity. Records are
// immutable.
//
type Record struct {
	name   string
	fields []hdl.Decl
}

// Name returns the record type name.
//
func (r *Record) Name() string { return r.name }

// Fields returns a copy of the record fields.
//
func (r *Record) Fields() []hdl.Decl {
	return append([]hdl.Decl(nil), r.fields...)
}

// Field returns the named field.
//
func (r *Record) Field(name string) (hdl.Decl, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f, true
		}
	}
	return hdl.Decl{}, false
}

type recordBuilder struct {
	name   string
	fields []hdl.Decl
}

func (b *recordBuilder) add(name, typ string) {
	b.fields = append(b.fields, hdl.Decl{Name: hdl.Ident(name), Type: typ})
}

func (b *recordBuilder) record() *Record {
	if len(b.fields) == 0 {
		b.add(Reserved, "std_logic")
	}
	return &Record{name: hdl.Ident(b.name), fields: b.fields}
}

// names of the record ports and types.
func outName(b *regmap.Block) string { return hdl.Ident(b.Name + "_out") }
func inName(b *regmap.Block) string  { return hdl.Ident(b.Name + "_in") }

// UpdateField returns the name of the write indication field of r.
//
func UpdateField(r *regmap.Register) string { return hdl.Ident(r.Name + "_update") }

// ReadField returns the name of the read indication field of r.
//
func ReadField(r *regmap.Register) string { return hdl.Ident(r.Name + "_read") }

// OutputRecord returns the output record type of b. It has one field per
// writable register holding its value, followed by an update field if write
// indication is enabled and a read field if read indication is enabled.
//
func OutputRecord(b *regmap.Block) *Record {
	rb := recordBuilder{name: outName(b) + "_t"}
	for _, r := range b.SortedRegisters() {
		if r.Writable() {
			rb.add(r.Name, hdl.Vector(r.Size))
		}
		if r.WriteIndicate {
			rb.add(UpdateField(r), "std_logic")
		}
		if r.ReadIndicate {
			rb.add(ReadField(r), "std_logic")
		}
	}
	return rb.record()
}

// InputRecord returns the input record type of b. It has one field per
// read-only register.
//
func InputRecord(b *regmap.Block) *Record {
	rb := recordBuilder{name: inName(b) + "_t"}
	for _, r := range b.SortedRegisters() {
		if r.PureRead() {
			rb.add(r.Name, hdl.Vector(r.Size))
		}
	}
	return rb.record()
}

// Records returns the output and input records of every block of m, except
// memory blocks.
//
func Records(m *regmap.AddressMap) []*Record {
	var rs []*Record
	for _, b := range m.Blocks {
		if b.Memory() {
			continue
		}
		rs = append(rs, OutputRecord(b), InputRecord(b))
	}
	return rs
}
