// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	"fmt"
	"strings"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/hwlib"
	"github.com/db47h/regmap/internal/hdl"
)

// coverPoint returns the PSL cover directive for an access of kind strobe
// (hwlib.Read or hwlib.Write) to r.
//
func (bg *blockGen) coverPoint(r *regmap.Register, strobe string) []string {
	sel, _ := regmap.WordSelect(bg.schema, bg.b, r)
	low, high := regmap.ByteEnableRange(bg.wordBytes, r)
	var be []string
	for i := low; i <= high; i++ {
		be = append(be, hdl.Index(hwlib.BE, i)+" = '1'")
	}
	return []string{
		fmt.Sprintf("psl %s_%s_access_cov : cover", hdl.Ident(r.Name), strobe),
		fmt.Sprintf("  {%s = '1' and %s = '1' and %s = '1' and (%s)};",
			hwlib.CS, strobe, hdl.Index(sRegSel, sel), strings.Join(be, " or ")),
	}
}

// cover writes one PSL cover point per write access path and one per read
// access path.
//
func (bg *blockGen) cover(ind int) {
	w := &bg.w
	w.Comment(ind, "PSL functional coverage")
	w.Comment(ind, "psl default clock is rising_edge("+hwlib.Clk+");")
	for _, r := range bg.b.SortedRegisters() {
		for _, strobe := range [...]string{hwlib.Write, hwlib.Read} {
			if strobe == hwlib.Write && !r.Writable() || strobe == hwlib.Read && !r.Readable() {
				continue
			}
			for _, l := range bg.coverPoint(r, strobe) {
				w.Comment(ind, l)
			}
		}
	}
	w.NL()
}
