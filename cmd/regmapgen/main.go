// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command regmapgen generates VHDL register maps from address map
// descriptions.
//
// Usage:
//
//	regmapgen generate [flags] MAP     generate the register map entities and package
//	regmapgen library [flags]          write the component library
//	regmapgen layout [flags] MAP       print the register layout of a map
//	regmapgen convert IN OUT           convert an address map file to another format
//	regmapgen version                  print the version
//
// MAP files are IP-XACT (.xml), TOML (.toml) or MessagePack (.msgpack)
// documents.
//
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "regmapgen",
	Short:         "VHDL register map generator",
	Long:          `regmapgen turns an address map description into synthesizable VHDL register maps.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(generateCmd, libraryCmd, layoutCmd, convertCmd, versionCmd)

	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.CountP("verbose", "v", "increase log verbosity (repeatable)")
	pf.BoolP("quiet", "q", false, "suppress non-essential output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		report(rootCmd, err)
		os.Exit(1)
	}
}
