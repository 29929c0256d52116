// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright 2024 Pete Heist

package main

import (
	"fmt"
	"os"

	"cuelang.org/go/cue/errors"
	"github.com/heistp/plexchart"
	"github.com/heistp/plexchart/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// root returns the root cobra command.
func root() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:           "plexchart",
		Short:         "Makes a themed life expectancy chart",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(run())
	cmd.AddCommand(vet())
	cmd.AddCommand(theme())
	cmd.Version = version.Version()
	return
}

// run returns the run cobra command.
func run() (cmd *cobra.Command) {
	return &cobra.Command{
		Use:   "run",
		Short: "Renders the chart to HTML",
		Long: `Run loads the data, renders the chart with the configured theme and saves it
as a standalone HTML file, with the theme's web font imported.

Configuration is read from the .cue files in the current directory, which must
declare "package plexchart". Without any, it defaults to reading
life_expectancies.csv and writing life_expectancy.html.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var l *zap.Logger
			if l, err = logger(); err != nil {
				return
			}
			defer l.Sync()
			err = plexchart.Run(&plexchart.RunCommand{Log: l})
			return
		},
	}
}

// vet returns the vet cobra command.
func vet() (cmd *cobra.Command) {
	return &cobra.Command{
		Use:   "vet",
		Short: "Checks the CUE configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return plexchart.Run(&plexchart.VetCommand{})
		},
	}
}

// theme returns the theme cobra command.
func theme() (cmd *cobra.Command) {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "Emits a theme's vega-lite config as JSON",
		Long: `Theme emits the vega-lite config rendered for the named theme as JSON. If
no name is given, the theme configured for the chart is used.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &plexchart.ThemeCommand{Out: os.Stdout}
			if len(args) > 0 {
				t.Name = args[0]
			}
			return plexchart.Run(t)
		},
	}
}

// logger returns a console logger for progress messages on stderr.
func logger() (*zap.Logger, error) {
	c := zap.NewDevelopmentConfig()
	c.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	c.EncoderConfig.EncodeCaller = nil
	c.Development = false
	c.DisableCaller = true
	c.DisableStacktrace = true
	c.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return c.Build()
}

// main executes the plexchart command.
func main() {
	if err := root().Execute(); err != nil {
		s := err.Error()
		if ce, ok := err.(errors.Error); ok {
			s = errors.Details(ce, nil)
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", os.Args[0], s)
		os.Exit(1)
	}
}
