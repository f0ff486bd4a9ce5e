// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/hwtest"
	"github.com/db47h/regmap/rtl"
	"github.com/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	// persistent flag values survive between executions
	rootCmd.SetArgs(append([]string{args[0], "--color", "off", "--quiet=false"}, args[1:]...))
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out, _, err := execute(t, "generate", "--out", dir, filepath.Join("testdata", "demo.toml"))
	es, ok := errors.Cause(err).(rtl.Errors)
	if !ok || len(es) != 1 || es[0].Block != "empty" {
		t.Fatalf("expected a failure of block empty, got %v", err)
	}
	if k := regmap.KindOf(es[0].Err); k != regmap.Degenerate {
		t.Errorf("expected a %v error, got %v", regmap.Degenerate, k)
	}
	for _, name := range []string{"ctrl_reg_map.vhd", "demo_pkg.vhd"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		hwtest.MustCheckVHDL(t, name, data)
	}
	hwtest.ContainsLines(t, out, "wrote "+filepath.Join(dir, "ctrl_reg_map.vhd"))

	var buf bytes.Buffer
	rootCmd.SetErr(&buf)
	report(rootCmd, err)
	hwtest.ContainsLines(t, buf.String(), "error: block empty: degenerate layout: block empty: no register to decode")
}

func TestLibrary(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := execute(t, "library", "--quiet", "--out", dir); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"address_decoder.vhd", "memory_reg.vhd", "access_signaler.vhd", "data_mux.vhd", "cmn_reg_map_pkg.vhd"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Error(err)
		}
	}
}

func TestLayout(t *testing.T) {
	out, _, err := execute(t, "layout", filepath.Join("testdata", "demo.toml"))
	if err != nil {
		t.Fatal(err)
	}
	hwtest.ContainsLines(t, out,
		"address map demo, 32 bit words",
		"block ctrl @ 0x0, 8 bytes",
		"address(2 downto 2), vector 10",
		"REGISTER  OFFSET  WORD  SEL  BE    ACCESS      DATA MASK         RESET",
		"mode      0x0     0x0   0    0..0  read-write  00000001          00000001",
		"status    0x4     0x4   1    1..0  read        0000000000000001  0000000000000000",
		"block empty @ 0x0, 4 bytes",
		"no register",
	)
}

func TestConvert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.msgpack")
	out, _, err := execute(t, "convert", filepath.Join("testdata", "demo.toml"), path)
	if err != nil {
		t.Fatal(err)
	}
	hwtest.ContainsLines(t, out, "converted 1 address map(s) from TOML to MessagePack")
	if _, _, err = execute(t, "convert", path, filepath.Join(t.TempDir(), "demo.xml")); err == nil {
		t.Error("expected an error converting to IP-XACT")
	}
}

func TestColorFlag(t *testing.T) {
	if _, _, err := execute(t, "version", "--color", "maybe"); err != nil {
		t.Fatal("version does not check --color")
	}
	_, _, err := execute(t, "layout", "--color", "maybe", filepath.Join("testdata", "demo.toml"))
	if err == nil {
		t.Error("expected an invalid --color error")
	}
}
