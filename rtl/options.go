// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtl

import (
	"github.com/go-logr/logr"
)

// Option is a functional option for configuring a Generator.
//
type Option func(*Generator)

// WithResetPolarity sets the active level of res_n. It defaults to active
// low.
//
func WithResetPolarity(activeHigh bool) Option {
	return func(g *Generator) {
		g.resetPolarity = activeHigh
	}
}

// WithClearReadData sets the default value of the clear_read_data generic.
//
func WithClearReadData(clear bool) Option {
	return func(g *Generator) {
		g.clearReadData = clear
	}
}

// WithRegisteredRead sets the default value of the registered_read generic.
//
func WithRegisteredRead(registered bool) Option {
	return func(g *Generator) {
		g.registeredRead = registered
	}
}

// WithAddressWidth sets the width of the address bus. The default, 0, uses
// the narrowest bus that addresses every word of a block.
//
func WithAddressWidth(bits int) Option {
	return func(g *Generator) {
		g.addressWidth = bits
	}
}

// WithAutoclearFullWidth makes multi-bit clear fields autoclear on their
// full width.
//
func WithAutoclearFullWidth(full bool) Option {
	return func(g *Generator) {
		g.autoclearFull = full
	}
}

// WithLicense sets the license text written as a comment at the top of every
// generated file.
//
func WithLicense(text string) Option {
	return func(g *Generator) {
		g.license = text
	}
}

// WithLogger sets the logger. V(1) reports per block layout facts, V(2)
// component bindings.
//
func WithLogger(l logr.Logger) Option {
	return func(g *Generator) {
		g.log = l
	}
}
