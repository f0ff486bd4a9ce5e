// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing register maps and
// generated VHDL.
//
package hwtest

import (
	"github.com/db47h/regmap"
)

// Map returns an address map with the given blocks.
//
func Map(name string, blocks ...*regmap.Block) *regmap.AddressMap {
	return &regmap.AddressMap{Name: name, Blocks: blocks}
}

// Block returns a block of rangeBytes bytes at address 0.
//
func Block(name string, rangeBytes int, regs ...*regmap.Register) *regmap.Block {
	return &regmap.Block{Name: name, Range: rangeBytes, Registers: regs}
}

// Reg returns a register without presence condition nor access indication.
//
func Reg(name string, offset, size int, access regmap.Access, fields ...regmap.Field) *regmap.Register {
	return &regmap.Register{Name: name, Offset: offset, Size: size, Access: access, Fields: fields}
}

// Field returns a field with normal write behavior.
//
func Field(name string, offset, width int, reset uint64) regmap.Field {
	return regmap.Field{Name: name, Offset: offset, Width: width, Reset: reset}
}

// Clear returns a field that clears itself after a write.
//
func Clear(name string, offset, width int) regmap.Field {
	return regmap.Field{Name: name, Offset: offset, Width: width, ModifiedWrite: regmap.Clear}
}
