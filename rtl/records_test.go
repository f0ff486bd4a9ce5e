package rtl_test

import (
	"testing"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/hwtest"
	"github.com/db47h/regmap/internal/hdl"
	"github.com/db47h/regmap/rtl"
	"github.com/google/go-cmp/cmp"
)

func TestOutputRecord(t *testing.T) {
	upd := hwtest.Reg("Mode", 4, 16, regmap.ReadWrite)
	upd.WriteIndicate = true
	upd.ReadIndicate = true
	rd := hwtest.Reg("status", 2, 8, regmap.Read)
	rd.ReadIndicate = true
	// registers out of order
	b := hwtest.Block("Blk", 8,
		upd,
		hwtest.Reg("cmd", 0, 8, regmap.Write),
		rd,
		hwtest.Reg("id", 1, 8, regmap.Read),
	)
	out := rtl.OutputRecord(b)
	if out.Name() != "blk_out_t" {
		t.Errorf("got record name %q", out.Name())
	}
	want := []hdl.Decl{
		{Name: "cmd", Type: "std_logic_vector(7 downto 0)"},
		{Name: "status_read", Type: "std_logic"},
		{Name: "mode", Type: "std_logic_vector(15 downto 0)"},
		{Name: "mode_update", Type: "std_logic"},
		{Name: "mode_read", Type: "std_logic"},
	}
	if diff := cmp.Diff(want, out.Fields()); diff != "" {
		t.Errorf("output record mismatch (-want +got):\n%s", diff)
	}

	in := rtl.InputRecord(b)
	if in.Name() != "blk_in_t" {
		t.Errorf("got record name %q", in.Name())
	}
	want = []hdl.Decl{
		{Name: "id", Type: "std_logic_vector(7 downto 0)"},
		{Name: "status", Type: "std_logic_vector(7 downto 0)"},
	}
	if diff := cmp.Diff(want, in.Fields()); diff != "" {
		t.Errorf("input record mismatch (-want +got):\n%s", diff)
	}
}

func TestRecord_empty(t *testing.T) {
	b := hwtest.Block("blk", 4, hwtest.Reg("cmd", 0, 8, regmap.Write))
	in := rtl.InputRecord(b)
	want := []hdl.Decl{{Name: rtl.Reserved, Type: "std_logic"}}
	if diff := cmp.Diff(want, in.Fields()); diff != "" {
		t.Errorf("empty record mismatch (-want +got):\n%s", diff)
	}
}

func TestRecord_immutable(t *testing.T) {
	b := hwtest.Block("blk", 4, hwtest.Reg("cmd", 0, 8, regmap.Write))
	r := rtl.OutputRecord(b)
	fs := r.Fields()
	fs[0].Name = "foo"
	_ = append(fs, hdl.Decl{Name: "bar"})
	if f, ok := r.Field("cmd"); !ok || f.Type != "std_logic_vector(7 downto 0)" {
		t.Error("record modified through Fields")
	}
	if len(r.Fields()) != 1 {
		t.Error("record fields appended")
	}
}

func TestRecords(t *testing.T) {
	mem := hwtest.Block("ram", 1024, hwtest.Reg("w0", 0, 32, regmap.ReadWrite))
	mem.Usage = regmap.UsageMemory
	m := hwtest.Map("soc",
		hwtest.Block("a", 4, hwtest.Reg("r", 0, 8, regmap.ReadWrite)),
		mem,
		hwtest.Block("b", 4, hwtest.Reg("r", 0, 8, regmap.Read)),
	)
	var names []string
	for _, r := range rtl.Records(m) {
		names = append(names, r.Name())
	}
	want := []string{"a_out_t", "a_in_t", "b_out_t", "b_in_t"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}
