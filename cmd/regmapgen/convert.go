// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/db47h/regmap/mapfile"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert IN OUT",
	Short: "Convert an address map file to TOML or MessagePack",
	Long: `Convert reads every address map of IN and writes them to OUT. Formats are
chosen by file extension. IP-XACT is accepted as input only.`,
	Args:    cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, _ []string) error { return setupColor(cmd) },
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := mapfile.LoadAll(args[0])
		if err != nil {
			return err
		}
		if err = mapfile.Save(args[1], ms...); err != nil {
			return err
		}
		if !quiet(cmd) {
			in, _ := mapfile.FormatOf(args[0])
			out, _ := mapfile.FormatOf(args[1])
			noteColor.Fprint(cmd.OutOrStdout(), "converted")
			fmt.Fprintf(cmd.OutOrStdout(), " %d address map(s) from %v to %v\n", len(ms), in, out)
		}
		return nil
	},
}
