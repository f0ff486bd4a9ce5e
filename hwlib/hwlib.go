// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides the library of VHDL components instantiated by
// generated register maps.
//
// Each component is a VHDL template embedded in the package. Its slot schema
// is read from the template's entity header when the package is initialized
// and every binding struct of the package is checked against it.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import (
	"embed"
	"path"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/internal/hdl"
)

//go:embed templates/*.vhd
var templates embed.FS

type template struct {
	file   string
	entity *hdl.Entity
	spec   *regmap.Spec
}

// mustLoad parses the named template. binding, if not nil, is checked
// against the template's slot schema.
//
func mustLoad(file string, binding interface{}) *template {
	src, err := templates.ReadFile(path.Join("templates", file))
	if err != nil {
		panic(err)
	}
	e, err := hdl.ParseEntity(file, string(src))
	if err != nil {
		panic(err)
	}
	t := &template{file: file, entity: e, spec: regmap.NewSpec(e)}
	if binding != nil {
		regmap.MustMatch(t.spec, binding)
	}
	return t
}

// A Part is a binding struct for one of the library's components. Its fields
// carry `hw:"generic,name"` or `hw:"port,name"` tags naming the slots they
// bind. Empty string fields leave a slot unbound.
//
type Part interface {
	Spec() *regmap.Spec
}

// Instance binds p and returns the resulting component instance.
//
func Instance(label string, p Part) (*regmap.Instance, error) {
	return regmap.Bind(p.Spec(), label, p)
}

// components in the order they are declared in the common package.
func components() []*template {
	return []*template{addressDecoder, memoryReg, accessSignaler, dataMux}
}

// Specs returns the slot schemas of the library components.
//
func Specs() []*regmap.Spec {
	var ss []*regmap.Spec
	for _, t := range components() {
		ss = append(ss, t.spec)
	}
	return ss
}

// Template returns the source of the named component template.
//
func Template(name string) ([]byte, bool) {
	for _, t := range components() {
		if t.entity.Name == name {
			b, err := templates.ReadFile(path.Join("templates", t.file))
			return b, err == nil
		}
	}
	return nil, false
}
