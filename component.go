// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package regmap

import (
	"github.com/db47h/regmap/internal/hdl"
)

// SlotKind tells generic slots from port slots.
//
type SlotKind int

// Slot kinds.
//
const (
	GenericSlot SlotKind = iota
	PortSlot
)

func (k SlotKind) String() string {
	if k == PortSlot {
		return "port"
	}
	return "generic"
}

// A Slot is a named generic or port of a component template.
//
type Slot struct {
	Name string
	Kind SlotKind
	// Required slots must be bound. Generics without default value and
	// input ports are required.
	Required bool
	// Output is set for output ports. Unbound outputs are left open.
	Output bool
}

// Open is the actual of unconnected output ports.
//
const Open = "open"

// A Spec is the slot schema of a component template (its blueprint).
//
type Spec struct {
	// Component (entity) name.
	Name string
	// Generic and port slots in declaration order.
	Generics []Slot
	Ports    []Slot
}

// NewSpec returns the slot schema of a parsed template entity.
//
func NewSpec(e *hdl.Entity) *Spec {
	s := &Spec{Name: e.Name}
	for _, g := range e.Generics {
		s.Generics = append(s.Generics, Slot{Name: g.Name, Kind: GenericSlot, Required: g.Default == ""})
	}
	for _, p := range e.Ports {
		out := p.Mode == hdl.Out || p.Mode == hdl.Buffer
		s.Ports = append(s.Ports, Slot{Name: p.Name, Kind: PortSlot, Required: !out, Output: out})
	}
	return s
}

// Slot returns the slot with the given name.
//
func (s *Spec) Slot(name string) (Slot, bool) {
	for _, sl := range s.Generics {
		if sl.Name == name {
			return sl, true
		}
	}
	for _, sl := range s.Ports {
		if sl.Name == name {
			return sl, true
		}
	}
	return Slot{}, false
}

// A Connection binds an expression to a slot.
//
type Connection struct {
	Slot Slot
	Expr string
}

// An Instance is a component template bound to expressions. Connections
// follow the template's declaration order.
//
type Instance struct {
	Label     string
	Component string
	Generics  []Connection
	Ports     []Connection
}

// Instantiation returns the instance as an entity instantiation statement.
//
func (i *Instance) Instantiation() *hdl.Instance {
	inst := &hdl.Instance{Label: i.Label, Entity: i.Component}
	for _, c := range i.Generics {
		inst.Generics = append(inst.Generics, hdl.Assoc{Formal: c.Slot.Name, Actual: c.Expr})
	}
	for _, c := range i.Ports {
		inst.Ports = append(inst.Ports, hdl.Assoc{Formal: c.Slot.Name, Actual: c.Expr})
	}
	return inst
}

// Expr returns the expression bound to the named slot.
//
func (i *Instance) Expr(name string) (string, bool) {
	for _, cs := range [...][]Connection{i.Generics, i.Ports} {
		for _, c := range cs {
			if c.Slot.Name == name {
				return c.Expr, true
			}
		}
	}
	return "", false
}
