// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package regmap_test

import (
	"testing"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/internal/hdl"
	"github.com/google/go-cmp/cmp"
)

const counterSrc = `
entity counter is
  generic (
    constant width  : natural := 8;
    constant wrap   : natural;
    constant preset : boolean := false
  );
  port (
    signal clk   : in std_logic;
    signal ena   : in std_logic;
    signal count : out std_logic_vector(width - 1 downto 0);
    signal ovf   : out std_logic
  );
end entity counter;
`

func counterSpec(t *testing.T) *regmap.Spec {
	t.Helper()
	e, err := hdl.ParseEntity("counter.vhd", counterSrc)
	if err != nil {
		t.Fatal(err)
	}
	return regmap.NewSpec(e)
}

type mode int

func (m mode) String() string { return [...]string{"'0'", "'1'"}[m] }

type counter struct {
	Width  uint   `hw:"generic,width"`
	Wrap   int    `hw:"generic,wrap"`
	Preset bool   `hw:"generic,preset"`
	Clk    string `hw:"port,clk"`
	Ena    mode   `hw:"port,ena"`
	Count  string `hw:"port,count"`
	Note   string // not a slot
}

func TestNewSpec(t *testing.T) {
	s := counterSpec(t)
	want := &regmap.Spec{
		Name: "counter",
		Generics: []regmap.Slot{
			{Name: "width", Kind: regmap.GenericSlot},
			{Name: "wrap", Kind: regmap.GenericSlot, Required: true},
			{Name: "preset", Kind: regmap.GenericSlot},
		},
		Ports: []regmap.Slot{
			{Name: "clk", Kind: regmap.PortSlot, Required: true},
			{Name: "ena", Kind: regmap.PortSlot, Required: true},
			{Name: "count", Kind: regmap.PortSlot, Output: true},
			{Name: "ovf", Kind: regmap.PortSlot, Output: true},
		},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("spec mismatch (-want +got):\n%s", diff)
	}
}

func TestSpec_Bind(t *testing.T) {
	s := counterSpec(t)
	data := []struct {
		name string
		w    regmap.W
		err  string
	}{
		{"ok", regmap.W{"wrap": "10", "clk": "clk_sys", "ena": "'1'"}, ""},
		{"unknown_slot", regmap.W{"wrap": "10", "clk": "clk_sys", "ena": "'1'", "typo": "x", "aaa": "y"},
			"binding error: invalid slot name aaa for component counter"},
		{"unbound_generic", regmap.W{"clk": "clk_sys", "ena": "'1'"},
			"binding error: generic wrap not bound for component counter"},
		{"unbound_port", regmap.W{"wrap": "10", "clk": "clk_sys", "ena": ""},
			"binding error: port ena not connected for component counter"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := s.Bind("cnt", d.w)
			if err == nil && d.err != "" || err != nil && err.Error() != d.err {
				t.Errorf("Got error %q, expected %q", err, d.err)
				return
			}
			if err != nil && regmap.KindOf(err) != regmap.Binding {
				t.Errorf("Got error kind %v, expected %v", regmap.KindOf(err), regmap.Binding)
			}
		})
	}
}

func TestSpec_Bind_order(t *testing.T) {
	s := counterSpec(t)
	// slots are matched by name: the map order never shows
	inst, err := s.Bind("cnt", regmap.W{"ovf": "ovf_o", "ena": "run", "clk": "clk_sys", "wrap": "10"})
	if err != nil {
		t.Fatal(err)
	}
	want := &hdl.Instance{
		Label:    "cnt",
		Entity:   "counter",
		Generics: []hdl.Assoc{{Formal: "wrap", Actual: "10"}},
		Ports: []hdl.Assoc{
			{Formal: "clk", Actual: "clk_sys"},
			{Formal: "ena", Actual: "run"},
			{Formal: "count", Actual: regmap.Open},
			{Formal: "ovf", Actual: "ovf_o"},
		},
	}
	if diff := cmp.Diff(want, inst.Instantiation()); diff != "" {
		t.Errorf("instance mismatch (-want +got):\n%s", diff)
	}
	if e, ok := inst.Expr("count"); !ok || e != regmap.Open {
		t.Errorf("Expr(count) = %q, %v", e, ok)
	}
	if _, ok := inst.Expr("width"); ok {
		t.Error("unbound optional generic has an expression")
	}
}

func TestBind(t *testing.T) {
	s := counterSpec(t)
	if err := regmap.Match(s, (*counter)(nil)); err != nil {
		t.Fatal(err)
	}
	inst, err := regmap.Bind(s, "cnt", &counter{Width: 4, Wrap: 9, Preset: true, Clk: "clk_sys", Ena: 1})
	if err != nil {
		t.Fatal(err)
	}
	for slot, want := range map[string]string{
		"width":  "4",
		"wrap":   "9",
		"preset": "true",
		"clk":    "clk_sys",
		"ena":    "'1'",
		"count":  regmap.Open,
		"ovf":    regmap.Open,
	} {
		if got, _ := inst.Expr(slot); got != want {
			t.Errorf("slot %s bound to %q, expected %q", slot, got, want)
		}
	}
	if _, err = regmap.Bind(s, "cnt", (*counter)(nil)); err == nil || err.Error() != "counter: nil binding" {
		t.Errorf("Got error %q, expected %q", err, "counter: nil binding")
	}
}

func TestMatch_errors(t *testing.T) {
	s := counterSpec(t)
	type badTag struct {
		X string `hw:"generic"`
	}
	type badKind struct {
		X string `hw:"wire,clk"`
	}
	type wrongKind struct {
		X string `hw:"port,width"`
	}
	type unknown struct {
		X string `hw:"port,reset"`
	}
	type badType struct {
		X []int `hw:"port,clk"`
	}
	data := []struct {
		name string
		v    interface{}
		err  string
	}{
		{"tag", badTag{}, `malformed tag "generic" for field "X" in "badTag"`},
		{"kind", badKind{}, `unsupported tag "wire,clk" for field "X" in "badKind"`},
		{"wrong_kind", wrongKind{}, "binding error: slot width is a generic, not a port for component counter"},
		{"unknown", unknown{}, "binding error: invalid slot name reset for component counter"},
		{"not_struct", 42, `unsupported type "int" for "int"`},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			err := regmap.Match(s, d.v)
			if err == nil || err.Error() != d.err {
				t.Errorf("Got error %q, expected %q", err, d.err)
			}
		})
	}
	if _, err := regmap.Connections(&badType{}); err == nil || err.Error() != `clk: unsupported slot value type "[]int"` {
		t.Errorf("Got error %q", err)
	}
}
