// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/db47h/regmap"
	"github.com/db47h/regmap/rtl"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	noteColor  = color.New(color.FgGreen)
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// setupColor applies the --color flag.
func setupColor(cmd *cobra.Command) error {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch flag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stderr)
	default:
		return errors.Errorf("invalid --color value %q (auto|on|off)", flag)
	}
	return nil
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}

// logger returns a logger writing to stderr. -v enables layout facts, -vv
// component bindings.
func logger(cmd *cobra.Command) logr.Logger {
	if quiet(cmd) {
		return logr.Discard()
	}
	v, _ := cmd.Root().PersistentFlags().GetCount("verbose")
	w := cmd.ErrOrStderr()
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintln(w, prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{Verbosity: v})
}

// report prints err to stderr. Block failures are reported one per line.
func report(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	var errs rtl.Errors
	if es, ok := errors.Cause(err).(rtl.Errors); ok {
		errs = es
	}
	if len(errs) == 0 {
		errorColor.Fprint(w, "error:")
		fmt.Fprintln(w, "", err)
		return
	}
	for _, e := range errs {
		errorColor.Fprint(w, "error:")
		fmt.Fprintln(w, "", e)
	}
}

// writeFiles writes fs to dir concurrently.
func writeFiles(cmd *cobra.Command, dir string, fs []regmap.File) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, f := range fs {
		f := f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0644)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if !quiet(cmd) {
		for _, f := range fs {
			noteColor.Fprint(cmd.OutOrStdout(), "wrote")
			fmt.Fprintln(cmd.OutOrStdout(), "", filepath.Join(dir, f.Name))
		}
	}
	return nil
}
