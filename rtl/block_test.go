package rtl_test

import (
	"strings"
	"testing"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/hwtest"
	"github.com/db47h/regmap/rtl"
)

func layout(t *testing.T, m *regmap.AddressMap, wordBytes int) regmap.Schema {
	t.Helper()
	l, err := regmap.NewLayout(m, wordBytes)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func genBlock(t *testing.T, m *regmap.AddressMap, opts ...rtl.Option) string {
	t.Helper()
	g := rtl.New(m, layout(t, m, 4), opts...)
	src, err := g.Block(m.Blocks[0])
	if err != nil {
		t.Fatal(err)
	}
	hwtest.MustCheckVHDL(t, m.Blocks[0].Name, src)
	return string(src)
}

// e2eMap returns a two word block with a read-write register in word 0 and a
// read-only register in word 1.
func e2eMap() *regmap.AddressMap {
	return hwtest.Map("map", hwtest.Block("blk", 8,
		hwtest.Reg("ctrl", 0, 8, regmap.ReadWrite),
		hwtest.Reg("status", 4, 8, regmap.Read),
	))
}

func TestBlock_e2e(t *testing.T) {
	src := genBlock(t, e2eMap())
	hwtest.ContainsLines(t, src,
		"-- Register map implementation of: blk",
		"Library ieee;",
		"use ieee.std_logic_1164.all;",
		"Library work;",
		"use work.map_pkg.all;",
		"use work.cmn_reg_map_pkg.all;",
		"entity blk_reg_map is",
		"generic (",
		"constant data_width : natural := 32;",
		"constant address_width : natural := 3;",
		"constant registered_read : boolean := true;",
		"constant clear_read_data : boolean := true;",
		"constant reset_polarity : std_logic := '0'",
		");",
		"port (",
		"signal clk_sys : in std_logic;",
		"signal res_n : in std_logic;",
		"signal address : in std_logic_vector(address_width - 1 downto 0);",
		"signal w_data : in std_logic_vector(data_width - 1 downto 0);",
		"signal r_data : out std_logic_vector(data_width - 1 downto 0);",
		"signal cs : in std_logic;",
		"signal read : in std_logic;",
		"signal write : in std_logic;",
		"signal be : in std_logic_vector(data_width / 8 - 1 downto 0);",
		"signal blk_out : out blk_out_t;",
		"signal blk_in : in blk_in_t",
		");",
		"end entity blk_reg_map;",
		"architecture rtl of blk_reg_map is",
		"signal reg_sel : std_logic_vector(1 downto 0);",
		`constant ADDR_VECT : std_logic_vector(1 downto 0) := "10";`,
		"signal read_data_mux_in : std_logic_vector(63 downto 0);",
		"signal read_data_mask : std_logic_vector(31 downto 0);",
		"signal blk_out_i : blk_out_t;",
		"signal read_mux_ena : std_logic;",
		"begin",
		"-- Word width: 4 bytes, block range: 8 bytes, 2 words",
		"-- Word address: address(2 downto 2), 2 populated words",

		"address_decoder_blk_comp : entity work.address_decoder",
		"generic map (",
		"address_width => 1,",
		"address_entries => 2,",
		"addr_vect => ADDR_VECT,",
		"registered_out => false,",
		"reset_polarity => RESET_POLARITY",
		")",
		"port map (",
		"clk_sys => clk_sys,",
		"res_n => res_n,",
		"address => address(2 downto 2),",
		"enable => cs,",
		"addr_dec => reg_sel",
		");",

		"-- CTRL register",
		"ctrl_reg_comp : entity work.memory_reg",
		"generic map (",
		"data_width => 8,",
		`data_mask => "00000000",`,
		"reset_polarity => RESET_POLARITY,",
		`reset_value => "00000000",`,
		`auto_clear => "00000000"`,
		")",
		"port map (",
		"clk_sys => clk_sys,",
		"res_n => res_n,",
		"data_in => w_data(7 downto 0),",
		"write => write,",
		"cs => reg_sel(0),",
		"w_be => be(0 downto 0),",
		"reg_value => blk_out_i.ctrl",
		");",

		"read_data_keep_gen : if (not CLEAR_READ_DATA) generate",
		"read_mux_ena <= read and cs;",
		"end generate read_data_keep_gen;",
		"read_data_clear_gen : if (CLEAR_READ_DATA) generate",
		"read_mux_ena <= '1';",
		"end generate read_data_clear_gen;",

		"data_mux_blk_comp : entity work.data_mux",
		"generic map (",
		"data_out_width => 32,",
		"data_in_width => 64,",
		"sel_width => 1,",
		"sel_base => 0,",
		"registered_out => REGISTERED_READ,",
		"reset_polarity => RESET_POLARITY",
		")",
		"port map (",
		"clk_sys => clk_sys,",
		"res_n => res_n,",
		"data_selector => address(2 downto 2),",
		"data_in => read_data_mux_in,",
		"data_mask => read_data_mask,",
		"enable => read_mux_ena,",
		"data_out => r_data",
		");",

		"read_data_mux_in <=",
		"-- Address: 4",
		`"00000000" & "00000000" & "00000000" & blk_in.status &`,
		"-- Address: 0",
		`"00000000" & "00000000" & "00000000" & blk_out_i.ctrl;`,

		"read_data_mask <=",
		"be(3) & be(3) & be(3) & be(3) & be(3) & be(3) & be(3) & be(3) &",
		"be(2) & be(2) & be(2) & be(2) & be(2) & be(2) & be(2) & be(2) &",
		"be(1) & be(1) & be(1) & be(1) & be(1) & be(1) & be(1) & be(1) &",
		"be(0) & be(0) & be(0) & be(0) & be(0) & be(0) & be(0) & be(0);",

		"blk_out <= blk_out_i;",

		"-- PSL functional coverage",
		"-- psl default clock is rising_edge(clk_sys);",
		"-- psl ctrl_write_access_cov : cover",
		"-- {cs = '1' and write = '1' and reg_sel(0) = '1' and (be(0) = '1')};",
		"-- psl ctrl_read_access_cov : cover",
		"-- {cs = '1' and read = '1' and reg_sel(0) = '1' and (be(0) = '1')};",
		"-- psl status_read_access_cov : cover",
		"-- {cs = '1' and read = '1' and reg_sel(1) = '1' and (be(0) = '1')};",
		"end architecture rtl;",
	)
	// read-only registers have no storage cell
	if strings.Contains(src, "status_reg_comp") {
		t.Error("storage cell generated for a read-only register")
	}
	if strings.Contains(src, "access_signaler") {
		t.Error("access signaler generated without access indication")
	}
}

func TestBlock_masks(t *testing.T) {
	m := hwtest.Map("map", hwtest.Block("blk", 4,
		hwtest.Reg("ctrl", 0, 16, regmap.ReadWrite,
			hwtest.Clear("irq", 8, 3),
			hwtest.Field("en", 0, 1, 1),
			hwtest.Field("mode", 1, 2, 2),
			hwtest.Clear("go", 15, 1),
		),
	))
	src := genBlock(t, m)
	hwtest.ContainsLines(t, src,
		"data_width => 16,",
		`data_mask => "1000011100000111",`,
		`reset_value => "0000000000000101",`,
		`auto_clear => "1000001100000000"`,
		"data_in => w_data(15 downto 0),",
		"w_be => be(1 downto 0),",
	)
	src = genBlock(t, m, rtl.WithAutoclearFullWidth(true))
	hwtest.ContainsLines(t, src, `auto_clear => "1000011100000000"`)
}

func TestBlock_sparse(t *testing.T) {
	m := hwtest.Map("map", hwtest.Block("blk", 16,
		hwtest.Reg("a", 0, 8, regmap.ReadWrite),
		hwtest.Reg("b", 13, 16, regmap.Read),
	))
	src := genBlock(t, m)
	hwtest.ContainsLines(t, src,
		`constant ADDR_VECT : std_logic_vector(3 downto 0) := "1100";`,
		"signal read_data_mux_in : std_logic_vector(127 downto 0);",
		"address_width => 2,",
		"address_entries => 2,",
		"address => address(3 downto 2),",
		"data_in_width => 128,",
		"sel_width => 2,",
		"read_data_mux_in <=",
		"-- Address: 12",
		`"00000000" & blk_in.b & "00000000" &`,
		"-- Address: 8",
		`"00000000" & "00000000" & "00000000" & "00000000" &`,
		"-- Address: 4",
		`"00000000" & "00000000" & "00000000" & "00000000" &`,
		"-- Address: 0",
		`"00000000" & "00000000" & "00000000" & blk_out_i.a;`,
		"-- {cs = '1' and read = '1' and reg_sel(1) = '1' and (be(1) = '1' or be(2) = '1')};",
	)
}

func TestBlock_readSpan(t *testing.T) {
	m := hwtest.Map("map", hwtest.Block("blk", 16,
		hwtest.Reg("cmd", 0, 32, regmap.Write),
		hwtest.Reg("wide", 8, 16, regmap.ReadWrite),
	))
	src := genBlock(t, m)
	hwtest.ContainsLines(t, src,
		"data_in_width => 32,",
		"sel_base => 2,",
		"read_data_mux_in <=",
		"-- Address: 8",
		`"00000000" & "00000000" & blk_out_i.wide;`,
	)
	if strings.Contains(src, "-- Address: 0") {
		t.Error("read data covers a word without readable register")
	}
}

func TestBlock_noReadable(t *testing.T) {
	m := hwtest.Map("map", hwtest.Block("blk", 8,
		hwtest.Reg("cmd", 4, 8, regmap.Write),
	))
	src := genBlock(t, m)
	hwtest.ContainsLines(t, src,
		`constant ADDR_VECT : std_logic_vector(0 downto 0) := "1";`,
		"r_data <= (others => '0');",
		"blk_out <= blk_out_i;",
		"-- psl cmd_write_access_cov : cover",
	)
	for _, s := range []string{"read_data_mux_in", "read_mux_ena", "read_data_mask", "data_mux", "_read_access_cov"} {
		if strings.Contains(src, s) {
			t.Errorf("unexpected %s in block without readable register", s)
		}
	}
}

func TestBlock_memory(t *testing.T) {
	b := hwtest.Block("buf", 8,
		hwtest.Reg("cfg", 0, 8, regmap.ReadWrite),
		hwtest.Reg("id", 4, 8, regmap.Read),
	)
	b.Usage = regmap.UsageMemory
	src := genBlock(t, hwtest.Map("map", b))
	hwtest.ContainsLines(t, src,
		"entity buf_reg_map is",
		"signal be : in std_logic_vector(data_width / 8 - 1 downto 0)",
		");",
		"end entity buf_reg_map;",
		"architecture rtl of buf_reg_map is",
		"type buf_out_t is record",
		"cfg : std_logic_vector(7 downto 0);",
		"end record;",
		"signal buf_out_i : buf_out_t;",
		"begin",
		"address_decoder_buf_comp : entity work.address_decoder",
		"cfg_reg_comp : entity work.memory_reg",
		"reg_value => buf_out_i.cfg",
		"read_data_mux_in <=",
		"-- Address: 4",
		`"00000000" & "00000000" & "00000000" & "00000000" &`,
		"-- Address: 0",
		`"00000000" & "00000000" & "00000000" & buf_out_i.cfg;`,
		"end architecture rtl;",
	)
	for _, s := range []string{"out buf_out_t", "buf_in", "buf_out <="} {
		if strings.Contains(src, s) {
			t.Errorf("unexpected %q in memory block", s)
		}
	}
}

func TestBlock_indication(t *testing.T) {
	ctrl := hwtest.Reg("ctrl", 0, 8, regmap.ReadWrite)
	ctrl.WriteIndicate = true
	stat := hwtest.Reg("stat", 1, 8, regmap.Read)
	stat.ReadIndicate = true
	m := hwtest.Map("map", hwtest.Block("blk", 4, ctrl, stat))
	src := genBlock(t, m)
	hwtest.ContainsLines(t, src,
		"-- CTRL register",
		"ctrl_reg_comp : entity work.memory_reg",
		"-- CTRL access signalling",
		"ctrl_access_signaler_comp : entity work.access_signaler",
		"reset_polarity => RESET_POLARITY,",
		"data_width => 8,",
		"read_signalling => false,",
		"write_signalling => true,",
		"read_signalling_reg => false,",
		"write_signalling_reg => true",
		"cs => reg_sel(0),",
		"be => be(0 downto 0),",
		"write_signal => blk_out_i.ctrl_update,",
		"read_signal => open",
		"-- STAT access signalling",
		"stat_access_signaler_comp : entity work.access_signaler",
		"read_signalling => true,",
		"write_signalling => false,",
		"read_signalling_reg => false,",
		"write_signalling_reg => false",
		"be => be(1 downto 1),",
		"write_signal => open,",
		"read_signal => blk_out_i.stat_read",
	)
	if strings.Contains(src, "stat_reg_comp") {
		t.Error("storage cell generated for a read-only register")
	}
}

func TestBlock_presence(t *testing.T) {
	ctrl := hwtest.Reg("ctrl", 0, 8, regmap.ReadWrite, hwtest.Field("en", 0, 2, 1))
	ctrl.IsPresent = "id('P1')"
	ctrl.WriteIndicate = true
	dbg := hwtest.Reg("dbg", 4, 8, regmap.Write)
	dbg.IsPresent = "has_debug"
	m := hwtest.Map("map", hwtest.Block("blk", 8, ctrl, dbg))
	m.Parameters = []regmap.Parameter{
		{ID: "P1", Name: "has_ctrl", Value: "true"},
		{ID: "P2", Name: "has_debug", Value: "false"},
	}
	src := genBlock(t, m)
	hwtest.ContainsLines(t, src,
		"constant reset_polarity : std_logic := '0';",
		"constant HAS_CTRL : boolean := true;",
		"constant HAS_DEBUG : boolean := true",
		"ctrl_present_gen_t : if (HAS_CTRL) generate",
		"ctrl_reg_comp : entity work.memory_reg",
		"ctrl_access_signaler_comp : entity work.access_signaler",
		"end generate ctrl_present_gen_t;",
		"ctrl_present_gen_f : if (not HAS_CTRL) generate",
		`blk_out_i.ctrl <= "00000001";`,
		"blk_out_i.ctrl_update <= '0';",
		"end generate ctrl_present_gen_f;",
		"dbg_present_gen_t : if (HAS_DEBUG) generate",
		"dbg_reg_comp : entity work.memory_reg",
		"end generate dbg_present_gen_t;",
		"dbg_present_gen_f : if (not HAS_DEBUG) generate",
		`blk_out_i.dbg <= "00000000";`,
		"end generate dbg_present_gen_f;",
	)
}

func TestBlock_presenceClash(t *testing.T) {
	for _, name := range []string{"data_width", "Address_Width", "REGISTERED_READ", "clear_read_data", "reset_polarity", "addr_vect"} {
		t.Run(name, func(t *testing.T) {
			r := hwtest.Reg("opt", 0, 8, regmap.ReadWrite)
			r.IsPresent = "P1"
			b := hwtest.Block("blk", 4, r)
			m := hwtest.Map("map", b)
			m.Parameters = []regmap.Parameter{{ID: "P1", Name: name, Value: "true"}}
			src, err := rtl.New(m, layout(t, m, 4)).Block(b)
			if err == nil {
				t.Fatalf("expected an error, got:\n%s", src)
			}
			if k := regmap.KindOf(err); k != regmap.Malformed {
				t.Errorf("got error kind %v, expected %v", k, regmap.Malformed)
			}
			if want := "malformed model: block blk register opt: presence parameter " + strings.ToUpper(name) + " clashes with"; !strings.HasPrefix(err.Error(), want) {
				t.Errorf("got error %q, expected %q...", err.Error(), want)
			}
		})
	}
}

func TestBlock_options(t *testing.T) {
	src := genBlock(t, e2eMap(),
		rtl.WithResetPolarity(true),
		rtl.WithClearReadData(false),
		rtl.WithRegisteredRead(false),
		rtl.WithAddressWidth(16),
		rtl.WithLicense("Copyright ACME\n\nAll rights reserved."),
	)
	if !strings.HasPrefix(src, "-- Copyright ACME\n--\n-- All rights reserved.\n\n") {
		t.Errorf("bad license header:\n%s", src[:80])
	}
	hwtest.ContainsLines(t, src,
		"constant address_width : natural := 16;",
		"constant registered_read : boolean := false;",
		"constant clear_read_data : boolean := false;",
		"constant reset_polarity : std_logic := '1'",
		"address => address(2 downto 2),",
	)
}

func TestBlock_errors(t *testing.T) {
	td := []struct {
		name string
		b    *regmap.Block
		opts []rtl.Option
		kind regmap.ErrorKind
		msg  string
	}{
		{"empty", hwtest.Block("blk", 8), nil, regmap.Degenerate, "degenerate layout: block blk: no register to decode"},
		{"overlap", hwtest.Block("blk", 8,
			hwtest.Reg("r", 0, 8, regmap.ReadWrite, hwtest.Field("a", 0, 4, 0), hwtest.Field("b", 3, 2, 0))),
			nil, regmap.Malformed, "malformed model: block blk register r field b: overlaps field a at bit 3"},
		{"size", hwtest.Block("blk", 8, hwtest.Reg("r", 0, 12, regmap.ReadWrite)),
			nil, regmap.Malformed, "malformed model: block blk register r: size of 12 bits is not a multiple of 8"},
		{"reset", hwtest.Block("blk", 8, hwtest.Reg("r", 0, 8, regmap.ReadWrite, hwtest.Field("a", 0, 2, 4))),
			nil, regmap.Malformed, "malformed model: block blk register r field a: reset value 0x4 wider than 2 bits"},
		{"address", hwtest.Block("blk", 64, hwtest.Reg("r", 60, 8, regmap.ReadWrite)),
			[]rtl.Option{rtl.WithAddressWidth(4)}, regmap.Malformed,
			"malformed model: block blk: address bus of 4 bits too narrow, need at least 6"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			m := hwtest.Map("map", d.b)
			src, err := rtl.New(m, layout(t, m, 4), d.opts...).Block(d.b)
			if err == nil {
				t.Fatal("expected an error")
			}
			if src != nil {
				t.Error("partial output on error")
			}
			if k := regmap.KindOf(err); k != d.kind {
				t.Errorf("got error kind %v, expected %v", k, d.kind)
			}
			if err.Error() != d.msg {
				t.Errorf("got error %q, expected %q", err.Error(), d.msg)
			}
		})
	}
}
