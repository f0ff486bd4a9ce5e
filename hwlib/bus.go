// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"strconv"

	"github.com/db47h/regmap/internal/hdl"
)

// Memory bus generic names.
//
const (
	DataWidth      = "data_width"
	AddressWidth   = "address_width"
	RegisteredRead = "registered_read"
	ClearReadData  = "clear_read_data"
	ResetPolarity  = "reset_polarity"
)

// Memory bus signal names.
//
const (
	Clk     = "clk_sys"
	Reset   = "res_n"
	Address = "address"
	WData   = "w_data"
	RData   = "r_data"
	CS      = "cs"
	Read    = "read"
	Write   = "write"
	BE      = "be"
)

// busSlots lists the memory bus slots the generator relies on.
type busSlots struct {
	DataWidth      int    `hw:"generic,data_width"`
	AddressWidth   int    `hw:"generic,address_width"`
	RegisteredRead bool   `hw:"generic,registered_read"`
	ClearReadData  bool   `hw:"generic,clear_read_data"`
	ResetPolarity  string `hw:"generic,reset_polarity"`

	Clk     string `hw:"port,clk_sys"`
	Reset   string `hw:"port,res_n"`
	Address string `hw:"port,address"`
	WData   string `hw:"port,w_data"`
	RData   string `hw:"port,r_data"`
	CS      string `hw:"port,cs"`
	Read    string `hw:"port,read"`
	Write   string `hw:"port,write"`
	BE      string `hw:"port,be"`
}

var memoryBus = mustLoad("memory_bus.vhd", (*busSlots)(nil))

// Bus holds the default values of the memory bus generics of a register map
// entity.
//
type Bus struct {
	DataWidth      int
	AddressWidth   int
	RegisteredRead bool
	ClearReadData  bool
	ResetPolarity  string // VHDL character literal, '0' or '1'
}

// Entity returns the memory bus interface as an entity named name. The
// generics default to the values in b; generics and ports can be appended
// to the returned entity.
//
func (b *Bus) Entity(name string) *hdl.Entity {
	src := memoryBus.entity
	e := &hdl.Entity{
		Name:     name,
		Generics: append([]hdl.Decl(nil), src.Generics...),
		Ports:    append([]hdl.Decl(nil), src.Ports...),
	}
	for i := range e.Generics {
		g := &e.Generics[i]
		switch g.Name {
		case DataWidth:
			g.Default = strconv.Itoa(b.DataWidth)
		case AddressWidth:
			g.Default = strconv.Itoa(b.AddressWidth)
		case RegisteredRead:
			g.Default = hdl.Bool(b.RegisteredRead)
		case ClearReadData:
			g.Default = hdl.Bool(b.ClearReadData)
		case ResetPolarity:
			g.Default = b.ResetPolarity
		}
	}
	return e
}
