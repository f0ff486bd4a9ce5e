// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the regmapgen.toml configuration file.
//
// A configuration file looks like this, all keys being optional:
//
//	[bus]
//	word_width = 32         # bits
//	address_width = 0       # 0: narrowest per block
//
//	[generics]
//	reset_polarity = "0"
//	clear_read_data = true
//	registered_read = true
//
//	[generate]
//	memory_map = ""         # empty: first map of the input file
//	autoclear_full_width = false
//
//	[output]
//	dir = "."
//	license = ""            # license text
//	license_file = ""       # or a file holding it, relative to the config file
//
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/regmap/rtl"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// FileName is the default configuration file name.
//
const FileName = "regmapgen.toml"

// Bus configures the memory bus.
//
type Bus struct {
	WordWidth    int `toml:"word_width"`
	AddressWidth int `toml:"address_width"`
}

// Generics sets the default values of the generated entity generics.
//
type Generics struct {
	ResetPolarity  string `toml:"reset_polarity"`
	ClearReadData  bool   `toml:"clear_read_data"`
	RegisteredRead bool   `toml:"registered_read"`
}

// Generate holds generator settings.
//
type Generate struct {
	MemoryMap          string `toml:"memory_map"`
	AutoclearFullWidth bool   `toml:"autoclear_full_width"`
}

// Output configures where and how files are written.
//
type Output struct {
	Dir         string `toml:"dir"`
	License     string `toml:"license"`
	LicenseFile string `toml:"license_file"`
}

// Config is the generator configuration.
//
type Config struct {
	Bus      Bus      `toml:"bus"`
	Generics Generics `toml:"generics"`
	Generate Generate `toml:"generate"`
	Output   Output   `toml:"output"`
}

// Default returns the default configuration.
//
func Default() *Config {
	return &Config{
		Bus:      Bus{WordWidth: 32},
		Generics: Generics{ResetPolarity: "0", ClearReadData: true, RegisteredRead: true},
		Output:   Output{Dir: "."},
	}
}

// Load reads the named configuration file. Keys missing from the file keep
// their default value.
//
func Load(path string) (*Config, error) {
	c := Default()
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: failed to parse TOML", path)
	}
	if keys := meta.Undecoded(); len(keys) > 0 {
		var ks []string
		for _, k := range keys {
			ks = append(ks, k.String())
		}
		return nil, errors.Errorf("%s: unknown keys: %s", path, strings.Join(ks, ", "))
	}
	if meta.IsDefined("output", "license") && meta.IsDefined("output", "license_file") {
		return nil, errors.Errorf("%s: [output].license and [output].license_file are mutually exclusive", path)
	}
	if meta.IsDefined("output", "license_file") {
		lf := c.Output.LicenseFile
		if !filepath.IsAbs(lf) {
			lf = filepath.Join(filepath.Dir(path), lf)
		}
		data, err := os.ReadFile(lf)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: [output].license_file", path)
		}
		c.Output.License = string(data)
	}
	if err = c.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}

// Find loads the configuration file in dir if present. It returns the
// default configuration otherwise.
//
func Find(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return Load(path)
}

// Validate checks the configuration values.
//
func (c *Config) Validate() error {
	w := c.Bus.WordWidth
	if w < 8 || w%8 != 0 || (w/8)&(w/8-1) != 0 {
		return errors.Errorf("[bus].word_width: %d is not a power of two multiple of 8", w)
	}
	if c.Bus.AddressWidth < 0 {
		return errors.Errorf("[bus].address_width: negative width %d", c.Bus.AddressWidth)
	}
	switch c.Generics.ResetPolarity {
	case "0", "1":
	default:
		return errors.Errorf("[generics].reset_polarity: %q is neither \"0\" nor \"1\"", c.Generics.ResetPolarity)
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New("[output].dir: empty directory")
	}
	return nil
}

// WordBytes returns the bus word width in bytes.
//
func (c *Config) WordBytes() int { return c.Bus.WordWidth / 8 }

// Options returns the generator options matching c.
//
func (c *Config) Options(log logr.Logger) []rtl.Option {
	return []rtl.Option{
		rtl.WithResetPolarity(c.Generics.ResetPolarity == "1"),
		rtl.WithClearReadData(c.Generics.ClearReadData),
		rtl.WithRegisteredRead(c.Generics.RegisteredRead),
		rtl.WithAddressWidth(c.Bus.AddressWidth),
		rtl.WithAutoclearFullWidth(c.Generate.AutoclearFullWidth),
		rtl.WithLicense(c.Output.License),
		rtl.WithLogger(log),
	}
}
