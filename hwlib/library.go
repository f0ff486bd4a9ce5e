// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/regmap"
	"github.com/db47h/regmap/internal/hdl"
)

// CommonPackage is the name of the package declaring the library components.
//
const CommonPackage = "cmn_reg_map_pkg"

// Package returns the source of the common package, with the given license
// text as header.
//
func Package(license string) []byte {
	var w hdl.Writer
	w.License(license)
	w.Use("ieee", "std_logic_1164.all")
	w.NL()
	w.Package(CommonPackage, func(ind int) {
		for i, t := range components() {
			if i > 0 {
				w.NL()
			}
			w.Component(ind, t.entity)
		}
	})
	return w.Bytes()
}

// Library returns the files to add to a design using generated register
// maps: the component sources and the common package.
//
func Library(license string) ([]regmap.File, error) {
	var fs []regmap.File
	for _, t := range components() {
		b, err := templates.ReadFile("templates/" + t.file)
		if err != nil {
			return nil, err
		}
		fs = append(fs, regmap.File{Name: t.file, Data: b})
	}
	fs = append(fs, regmap.File{Name: CommonPackage + ".vhd", Data: Package(license)})
	return fs, nil
}
