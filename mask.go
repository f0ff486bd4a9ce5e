// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package regmap

import "strings"

// BitVector is a register wide bit mask. Index 0 is the least significant
// bit.
//
type BitVector []bool

// String returns the bits of v, most significant bit first.
//
func (v BitVector) String() string {
	var b strings.Builder
	b.Grow(len(v))
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Literal returns v as a VHDL bit string literal.
//
func (v BitVector) Literal() string {
	return `"` + v.String() + `"`
}

// Ones returns the number of set bits in v.
//
func (v BitVector) Ones() int {
	n := 0
	for _, b := range v {
		if b {
			n++
		}
	}
	return n
}

// DataMask returns the mask of the bits of r that are implemented by a
// field.
//
func DataMask(r *Register) BitVector {
	m := make(BitVector, r.Size)
	for _, f := range r.SortedFields() {
		if f.Width > 1 {
			for i := f.Offset; i < f.Offset+f.Width; i++ {
				m[i] = true
			}
		} else {
			m[f.Offset] = true
		}
	}
	return m
}

// ResetMask returns the value of r after reset. Bits not covered by a field
// reset to 0.
//
func ResetMask(r *Register) BitVector {
	m := make(BitVector, r.Size)
	for _, f := range r.SortedFields() {
		v := f.Reset
		for i := 0; i < f.Width; i++ {
			if v&1 != 0 {
				m[f.Offset+i] = true
			}
			v >>= 1
		}
	}
	return m
}

// AutoclearMask returns the mask of the bits of r that clear themselves after
// a write. For multi-bit clear fields, the field's most significant bit is not
// included.
//
func AutoclearMask(r *Register) BitVector {
	return autoclear(r, 1)
}

// AutoclearMaskFull is like AutoclearMask but covers clear fields in their
// full width.
//
func AutoclearMaskFull(r *Register) BitVector {
	return autoclear(r, 0)
}

func autoclear(r *Register, trim int) BitVector {
	m := make(BitVector, r.Size)
	for _, f := range r.SortedFields() {
		if f.ModifiedWrite != Clear {
			continue
		}
		if f.Width > 1 {
			for i := f.Offset; i < f.Offset+f.Width-trim; i++ {
				m[i] = true
			}
		} else {
			m[f.Offset] = true
		}
	}
	return m
}
