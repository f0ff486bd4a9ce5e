// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	"strconv"
	"strings"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/hwlib"
	"github.com/db47h/regmap/internal/hdl"
)

// readBits returns the width of the read data multiplexer input.
func (bg *blockGen) readBits() int {
	return (bg.readHigh - bg.readLow + bg.wordBytes) * 8
}

// readMuxEnable writes the driver of the read data multiplexer enable. With
// clear_read_data set, the multiplexer output is updated on every clock
// cycle, otherwise only on reads.
//
func (bg *blockGen) readMuxEnable(ind int) {
	w := &bg.w
	w.Comment(ind, "Read data multiplexor enable")
	w.IfGenerate(ind, "read_data_keep_gen", "not "+gClearReadData, func(ind int) {
		w.Assign(ind, sMuxEna, hwlib.Read+" and "+hwlib.CS)
	})
	w.NL()
	w.IfGenerate(ind, "read_data_clear_gen", gClearReadData, func(ind int) {
		w.Assign(ind, sMuxEna, "'1'")
	})
	w.NL()
}

func (bg *blockGen) readMux(ind int) {
	bg.w.Comment(ind, "Read data multiplexor")
	bg.instance(ind, nil, "data_mux_"+bg.b.Name+"_comp", &hwlib.DataMux{
		DataOutWidth:  bg.wordBytes * 8,
		DataInWidth:   bg.readBits(),
		SelWidth:      bg.vect.EntryWidth,
		SelBase:       bg.readLow / bg.wordBytes,
		RegisteredOut: gRegisteredRead,
		ResetPolarity: gResetPolarity,
		Clk:           hwlib.Clk,
		Reset:         hwlib.Reset,
		Selector:      bg.addr,
		DataIn:        sMuxIn,
		DataMask:      sMask,
		Enable:        sMuxEna,
		DataOut:       hwlib.RData,
	})
	bg.w.NL()
}

// readSource returns the expression read back for r: its own value for
// read-write registers, the input record otherwise. Memory blocks have no
// input record and their read-only registers read as zero.
//
func (bg *blockGen) readSource(r *regmap.Register) string {
	switch {
	case r.ReadWrite():
		return hdl.Select(bg.outI(), r.Name)
	case bg.b.Memory():
		return `"` + strings.Repeat("0", r.Size) + `"`
	}
	return hdl.Select(inName(bg.b), r.Name)
}

// readWord returns the read value of the word at addr, one term per byte
// lane or register, most significant first.
//
func (bg *blockGen) readWord(addr int) []string {
	regs := bg.schema.RegistersInWord(bg.b, addr)
	var terms []string
	for lane := bg.wordBytes - 1; lane >= 0; lane-- {
		covered := false
		for _, r := range regs {
			if !r.Readable() {
				continue
			}
			low, high := regmap.ByteEnableRange(bg.wordBytes, r)
			if lane == low {
				terms = append(terms, bg.readSource(r))
			}
			if lane >= low && lane <= high {
				covered = true
				break
			}
		}
		if !covered {
			terms = append(terms, zeroByte)
		}
	}
	return terms
}

func (bg *blockGen) readData(ind int) {
	w := &bg.w
	w.Comment(ind, "Read data driver")
	w.Linef(ind, "%s <=", sMuxIn)
	for addr := bg.readHigh; addr >= bg.readLow; addr -= bg.wordBytes {
		w.Comment(ind+2, "Address: "+strconv.Itoa(addr))
		end := " &"
		if addr == bg.readLow {
			end = ";"
		}
		w.Line(ind+2, strings.Join(bg.readWord(addr), " & ")+end)
	}
	w.NL()
}

// readMask writes the read data mask driver: each byte enable replicated
// over its 8 bits, most significant byte first.
//
func (bg *blockGen) readMask(ind int) {
	w := &bg.w
	w.Comment(ind, "Read data mask, byte enables")
	w.Linef(ind, "%s <=", sMask)
	for lane := bg.wordBytes - 1; lane >= 0; lane-- {
		be := hdl.Index(hwlib.BE, lane)
		bits := make([]string, 8)
		for i := range bits {
			bits[i] = be
		}
		end := " &"
		if lane == 0 {
			end = ";"
		}
		w.Line(ind+2, strings.Join(bits, " & ")+end)
	}
	w.NL()
}
