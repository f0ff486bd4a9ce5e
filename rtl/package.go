// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	"github.com/db47h/regmap/internal/hdl"
)

const genNote = "This file is generated by regmapgen. Do not edit it by hand."

// header writes the license, title banner and generation note.
func (g *Generator) header(w *hdl.Writer, title string) {
	w.License(g.license)
	w.Banner(0, title)
	w.Comment(0, genNote)
	w.NL()
	w.Use("ieee", "std_logic_1164.all")
	w.NL()
}

// Package renders the package declaring the interface records of all
// blocks.
//
func (g *Generator) Package() []byte {
	var w hdl.Writer
	g.header(&w, "Register map package for: "+g.m.Name)
	w.Package(g.PackageName(), func(ind int) {
		for _, r := range Records(g.m) {
			w.NL()
			w.Record(ind, r.Name(), r.fields)
		}
		w.NL()
	})
	return w.Bytes()
}
