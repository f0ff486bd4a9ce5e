// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"

	"github.com/db47h/regmap/hwlib"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var libraryCmd = &cobra.Command{
	Use:     "library [flags]",
	Short:   "Write the component library used by generated register maps",
	Args:    cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, _ []string) error { return setupColor(cmd) },
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir, _ := cmd.Flags().GetString("out")
		var license string
		if path, _ := cmd.Flags().GetString("license"); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrap(err, "--license")
			}
			license = string(data)
		}
		fs, err := hwlib.Library(license)
		if err != nil {
			return err
		}
		return writeFiles(cmd, dir, fs)
	},
}

func init() {
	libraryCmd.Flags().StringP("out", "o", ".", "output directory")
	libraryCmd.Flags().String("license", "", "file holding the license header of the package")
}
