// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/mapfile"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [flags] MAP",
	Short: "Print the register layout of an address map",
	Long: `Layout prints, for each register block, the address decoder vector and
the bus placement of every register: word address, decoder select index,
byte enables, data mask and reset value.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error { return setupColor(cmd) },
	RunE:    runLayout,
}

func init() {
	f := layoutCmd.Flags()
	f.String("config", "", "configuration file (default ./regmapgen.toml if present)")
	f.StringP("map", "m", "", "name of the address map (default first)")
	f.Int("word-width", 0, "bus word width in bits")
}

// table writes left aligned columns. Widths are display widths.
type table struct {
	rows [][]string
}

func (t *table) add(cols ...string) { t.rows = append(t.rows, cols) }

func (t *table) write(w io.Writer, indent int) {
	var ws []int
	for _, r := range t.rows {
		for i, c := range r {
			if i >= len(ws) {
				ws = append(ws, 0)
			}
			if n := runewidth.StringWidth(c); n > ws[i] {
				ws[i] = n
			}
		}
	}
	for _, r := range t.rows {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", indent))
		for i, c := range r {
			if i == len(r)-1 {
				b.WriteString(c)
				break
			}
			b.WriteString(runewidth.FillRight(c, ws[i]+2))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

func hex(v int) string { return "0x" + strconv.FormatInt(int64(v), 16) }

func runLayout(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := mapfile.Load(args[0], c.Generate.MemoryMap)
	if err != nil {
		return err
	}
	l, err := regmap.NewLayout(m, c.WordBytes())
	if err != nil {
		return err
	}
	printLayout(cmd.OutOrStdout(), l, m)
	return nil
}

func printLayout(w io.Writer, s regmap.Schema, m *regmap.AddressMap) {
	wb := s.WordBytes()
	fmt.Fprintf(w, "address map %s, %d bit words\n", m.Name, wb*8)
	for _, b := range m.Blocks {
		fmt.Fprintf(w, "\nblock %s @ 0x%x, %d bytes", b.Name, b.BaseAddress, b.Range)
		if b.Memory() {
			fmt.Fprintln(w, ", memory")
			continue
		}
		fmt.Fprintln(w)
		v, ok := regmap.NewAddressVector(s, b)
		if !ok {
			fmt.Fprintln(w, "  no register")
			continue
		}
		lo, hi := regmap.AddressIndexRange(s, b)
		fmt.Fprintf(w, "  address(%d downto %d), vector %s\n", hi, lo, v.String())
		var t table
		t.add("REGISTER", "OFFSET", "WORD", "SEL", "BE", "ACCESS", "DATA MASK", "RESET")
		for _, r := range b.SortedRegisters() {
			sel := "-"
			if i, ok := regmap.WordSelect(s, b, r); ok {
				sel = strconv.Itoa(i)
			}
			bl, bh := regmap.ByteEnableRange(wb, r)
			t.add(r.Name, hex(r.Offset), hex(r.Offset-r.Offset%wb), sel,
				fmt.Sprintf("%d..%d", bh, bl), r.Access.String(),
				regmap.DataMask(r).String(), regmap.ResetMask(r).String())
		}
		t.write(w, 2)
	}
}
