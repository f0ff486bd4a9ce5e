// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package rtl generates the VHDL register map entities of an address map and
// the package declaring their interface records.
//
// Every block is rendered into its own buffer. A block that fails to render
// produces no text and does not prevent the other blocks from being
// generated.
//
package rtl

import (
	"strings"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/internal/hdl"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// Generator renders the VHDL sources of an address map.
//
type Generator struct {
	m      *regmap.AddressMap
	schema regmap.Schema

	resetPolarity  bool // active high
	clearReadData  bool
	registeredRead bool
	addressWidth   int
	autoclearFull  bool
	license        string
	log            logr.Logger
}

// New returns a new generator for m. The schema s provides the layout
// queries.
//
func New(m *regmap.AddressMap, s regmap.Schema, opts ...Option) *Generator {
	g := &Generator{
		m:              m,
		schema:         s,
		clearReadData:  true,
		registeredRead: true,
		log:            logr.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// BlockError reports the failure to render a block.
//
type BlockError struct {
	Block string
	Err   error
}

func (e *BlockError) Error() string { return "block " + e.Block + ": " + e.Err.Error() }

// Cause returns the underlying error.
//
func (e *BlockError) Cause() error { return e.Err }

// Errors is returned by Generate when one or more blocks failed.
//
type Errors []*BlockError

func (es Errors) Error() string {
	var msgs []string
	for _, e := range es {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// mapName returns the lower case name of the address map.
func (g *Generator) mapName() string {
	return hdl.Ident(g.m.Name)
}

// PackageName returns the name of the package declaring the interface
// records.
//
func (g *Generator) PackageName() string { return g.mapName() + "_pkg" }

// Generate renders every block of the address map followed by the record
// package. Memory blocks without registers have nothing to decode and are
// skipped. If some blocks fail, the files of the
// other blocks are returned along with an Errors value.
//
func (g *Generator) Generate() ([]regmap.File, error) {
	if g.m == nil {
		return nil, errors.New("no address map")
	}
	var (
		fs   []regmap.File
		errs Errors
	)
	for _, b := range g.m.Blocks {
		if b.Memory() && len(b.Registers) == 0 {
			g.log.V(1).Info("skipping memory block", "block", b.Name)
			continue
		}
		src, err := g.Block(b)
		if err != nil {
			g.log.Error(err, "block failed", "block", b.Name)
			errs = append(errs, &BlockError{Block: b.Name, Err: err})
			continue
		}
		fs = append(fs, regmap.File{Name: EntityName(b) + ".vhd", Data: src})
	}
	fs = append(fs, regmap.File{Name: g.PackageName() + ".vhd", Data: g.Package()})
	if len(errs) > 0 {
		return fs, errs
	}
	return fs, nil
}
