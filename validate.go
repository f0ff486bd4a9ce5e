// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package regmap

// Validate checks every block of m with ValidateBlock and returns the first
// error found.
//
func Validate(s Schema, m *AddressMap) error {
	for _, b := range m.Blocks {
		if err := ValidateBlock(s, b); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBlock checks the layout invariants of b: registers are byte
// aligned, lie within the block range and within a single bus word, do not
// share bytes with another register, fields
// lie within their register, do not overlap, and their reset values fit.
// Presence conditions must resolve to a parameter.
//
// The mask and layout functions of this package assume a valid block.
//
func ValidateBlock(s Schema, b *Block) error {
	if b.Range <= 0 {
		return malformed(b, nil, nil, "invalid range %d", b.Range)
	}
	w := s.WordBytes()
	names := make(map[string]bool, len(b.Registers))
	var last *Register // register ending last so far
	for _, r := range b.SortedRegisters() {
		if names[r.Name] {
			return malformed(b, r, nil, "duplicate register name")
		}
		names[r.Name] = true
		if r.Size <= 0 || r.Size%8 != 0 {
			return malformed(b, r, nil, "size of %d bits is not a multiple of 8", r.Size)
		}
		if r.Access == 0 || r.Access > ReadWrite {
			return malformed(b, r, nil, "invalid access kind")
		}
		if r.Offset < 0 || r.Offset+r.Bytes() > b.Range {
			return malformed(b, r, nil, "bytes [%d, %d) outside of block range %d", r.Offset, r.Offset+r.Bytes(), b.Range)
		}
		if r.Offset%w+r.Bytes() > w {
			return malformed(b, r, nil, "crosses a %d byte word boundary", w)
		}
		if last != nil && r.Offset < last.Offset+last.Bytes() {
			return malformed(b, r, nil, "overlaps register %s", last.Name)
		}
		if last == nil || r.Offset+r.Bytes() > last.Offset+last.Bytes() {
			last = r
		}
		if r.IsPresent != "" {
			if _, err := s.ParameterName(r.IsPresent); err != nil {
				return malformed(b, r, nil, "presence condition: %v", err)
			}
		}
		if err := validateFields(b, r); err != nil {
			return err
		}
	}
	return nil
}

func validateFields(b *Block, r *Register) error {
	used := make([]int, r.Size) // field index + 1
	fs := r.SortedFields()
	for i := range fs {
		f := &fs[i]
		if f.Width < 1 || f.Offset < 0 || f.Offset+f.Width > r.Size {
			return malformed(b, r, f, "bits [%d, %d) outside of register width %d", f.Offset, f.Offset+f.Width, r.Size)
		}
		if f.Width < 64 && f.Reset>>uint(f.Width) != 0 {
			return malformed(b, r, f, "reset value %#x wider than %d bits", f.Reset, f.Width)
		}
		for j := f.Offset; j < f.Offset+f.Width; j++ {
			if used[j] != 0 {
				return malformed(b, r, f, "overlaps field %s at bit %d", fs[used[j]-1].Name, j)
			}
			used[j] = i + 1
		}
	}
	return nil
}
