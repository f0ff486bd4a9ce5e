// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package regmap

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// W is a set of connections, mapping a component's slot names (the map key)
// to expressions in the instantiating architecture. Empty expressions leave a
// slot unbound.
//
type W map[string]string

func bindingError(comp, format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: Binding, Msg: fmt.Sprintf(format, args...) + " for component " + comp})
}

// Bind binds w to the slots of s. It fails if w names a slot that s does not
// declare or if a required slot is left unbound. Unbound output ports are
// connected to Open and unbound optional generics keep their default value.
//
func (s *Spec) Bind(label string, w W) (*Instance, error) {
	// check unknown slots. Sorted for stable error messages.
	names := make([]string, 0, len(w))
	for k := range w {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		if _, ok := s.Slot(k); !ok {
			return nil, bindingError(s.Name, "invalid slot name %s", k)
		}
	}

	inst := &Instance{Label: label, Component: s.Name}
	for _, sl := range s.Generics {
		e := w[sl.Name]
		if e == "" {
			if sl.Required {
				return nil, bindingError(s.Name, "generic %s not bound", sl.Name)
			}
			continue
		}
		inst.Generics = append(inst.Generics, Connection{sl, e})
	}
	for _, sl := range s.Ports {
		e := w[sl.Name]
		if e == "" {
			if sl.Required {
				return nil, bindingError(s.Name, "port %s not connected", sl.Name)
			}
			e = Open
		}
		inst.Ports = append(inst.Ports, Connection{sl, e})
	}
	return inst, nil
}
