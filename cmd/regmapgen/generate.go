// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/internal/config"
	"github.com/db47h/regmap/mapfile"
	"github.com/db47h/regmap/rtl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] MAP",
	Short: "Generate the VHDL register maps of an address map",
	Long: `Generate writes one <block>_reg_map.vhd entity per register block of the
address map and a <map>_pkg.vhd package holding the interface records.
Blocks that fail are reported; the others are still written.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error { return setupColor(cmd) },
	RunE:    runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("config", "", "configuration file (default ./"+config.FileName+" if present)")
	f.StringP("out", "o", "", "output directory")
	f.StringP("map", "m", "", "name of the address map to generate (default first)")
	f.Int("word-width", 0, "bus word width in bits")
	f.Int("address-width", 0, "address bus width in bits (0: narrowest per block)")
	f.String("reset-polarity", "", "active reset level, 0 or 1")
	f.Bool("clear-read-data", true, "default of the clear_read_data generic")
	f.Bool("registered-read", true, "default of the registered_read generic")
	f.Bool("autoclear-full-width", false, "autoclear multi-bit clear fields on their full width")
	f.String("license", "", "file holding the license header of generated files")
	f.StringSlice("block", nil, "generate only the named blocks (repeatable)")
}

// loadConfig loads the configuration and applies the command line flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	f := cmd.Flags()
	var (
		c   *config.Config
		err error
	)
	if path, _ := f.GetString("config"); path != "" {
		c, err = config.Load(path)
	} else {
		c, err = config.Find(".")
	}
	if err != nil {
		return nil, err
	}
	if f.Changed("out") {
		c.Output.Dir, _ = f.GetString("out")
	}
	if f.Changed("map") {
		c.Generate.MemoryMap, _ = f.GetString("map")
	}
	if f.Changed("word-width") {
		c.Bus.WordWidth, _ = f.GetInt("word-width")
	}
	if f.Changed("address-width") {
		c.Bus.AddressWidth, _ = f.GetInt("address-width")
	}
	if f.Changed("reset-polarity") {
		c.Generics.ResetPolarity, _ = f.GetString("reset-polarity")
	}
	if f.Changed("clear-read-data") {
		c.Generics.ClearReadData, _ = f.GetBool("clear-read-data")
	}
	if f.Changed("registered-read") {
		c.Generics.RegisteredRead, _ = f.GetBool("registered-read")
	}
	if f.Changed("autoclear-full-width") {
		c.Generate.AutoclearFullWidth, _ = f.GetBool("autoclear-full-width")
	}
	if f.Changed("license") {
		path, _ := f.GetString("license")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "--license")
		}
		c.Output.License = string(data)
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// selectBlocks returns a copy of m restricted to the named blocks.
func selectBlocks(m *regmap.AddressMap, names []string) (*regmap.AddressMap, error) {
	if len(names) == 0 {
		return m, nil
	}
	sel := *m
	sel.Blocks = nil
	for _, n := range names {
		found := false
		for _, b := range m.Blocks {
			if b.Name == n {
				sel.Blocks = append(sel.Blocks, b)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("address map %s has no block %q", m.Name, n)
		}
	}
	return &sel, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := mapfile.Load(args[0], c.Generate.MemoryMap)
	if err != nil {
		return err
	}
	blocks, _ := cmd.Flags().GetStringSlice("block")
	if m, err = selectBlocks(m, blocks); err != nil {
		return err
	}
	l, err := regmap.NewLayout(m, c.WordBytes())
	if err != nil {
		return err
	}
	fs, genErr := rtl.New(m, l, c.Options(logger(cmd))...).Generate()
	if len(fs) == 0 {
		return genErr
	}
	if err = writeFiles(cmd, c.Output.Dir, fs); err != nil {
		return err
	}
	return genErr
}
