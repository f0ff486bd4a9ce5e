// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package regmap

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/db47h/regmap/internal/hdl"
	"github.com/pkg/errors"
)

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

type slotTag struct {
	kind  SlotKind
	name  string
	field int
}

// slotTags returns the slot tags of the binding struct type typ.
//
// The field tag must be `hw:"generic,slot_name"` or `hw:"port,slot_name"`.
//
func slotTags(typ reflect.Type) ([]slotTag, error) {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if k := typ.Kind(); k != reflect.Struct {
		return nil, errors.Errorf("unsupported type %q for %q", k, typ.Name())
	}
	var tags []slotTag
	n := typ.NumField()
	for i := 0; i < n; i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		tv := strings.Split(tag, ",")
		if len(tv) != 2 || tv[1] == "" {
			return nil, errors.Errorf("malformed tag %q for field %q in %q", tag, f.Name, typ.Name())
		}
		st := slotTag{name: tv[1], field: i}
		switch tv[0] {
		case "generic":
			st.kind = GenericSlot
		case "port":
			st.kind = PortSlot
		default:
			return nil, errors.Errorf("unsupported tag %q for field %q in %q", tag, f.Name, typ.Name())
		}
		tags = append(tags, st)
	}
	return tags, nil
}

// Match checks that every slot tag of the binding struct v names a slot of
// the same kind in s.
//
func Match(s *Spec, v interface{}) error {
	tags, err := slotTags(reflect.TypeOf(v))
	if err != nil {
		return err
	}
	for _, t := range tags {
		sl, ok := s.Slot(t.name)
		if !ok {
			return bindingError(s.Name, "invalid slot name %s", t.name)
		}
		if sl.Kind != t.kind {
			return bindingError(s.Name, "slot %s is a %v, not a %v", t.name, sl.Kind, t.kind)
		}
	}
	return nil
}

// MustMatch is like Match but panics on error. It is meant to be called
// when a package declares its binding structs.
//
func MustMatch(s *Spec, v interface{}) {
	if err := Match(s, v); err != nil {
		panic(err)
	}
}

// Connections returns the connections described by the binding struct v.
// Field values are converted to expressions: strings are used verbatim,
// integers in decimal, booleans as VHDL literals and fmt.Stringer values
// through their String method.
//
func Connections(v interface{}) (W, error) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, errors.New("nil binding")
		}
		val = val.Elem()
	}
	tags, err := slotTags(val.Type())
	if err != nil {
		return nil, err
	}
	w := make(W, len(tags))
	for _, t := range tags {
		e, err := expr(val.Field(t.field))
		if err != nil {
			return nil, errors.Wrap(err, t.name)
		}
		w[t.name] = e
	}
	return w, nil
}

func expr(v reflect.Value) (string, error) {
	if v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String(), nil
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return hdl.Bool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	}
	return "", errors.Errorf("unsupported slot value type %q", v.Type())
}

// Bind binds the binding struct v to s.
//
func Bind(s *Spec, label string, v interface{}) (*Instance, error) {
	w, err := Connections(v)
	if err != nil {
		return nil, errors.Wrap(err, s.Name)
	}
	return s.Bind(label, w)
}
