// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package regmap

// A File is a generated source file.
//
type File struct {
	Name string // base name, e.g. "foo_reg_map.vhd"
	Data []byte
}
