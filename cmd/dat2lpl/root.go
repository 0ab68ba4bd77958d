package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)
	flags := &convertFlags{}

	rootCmd := &cobra.Command{
		Use:   "dat2lpl <catalog.dat>",
		Short: "Convert DAT catalogs to LPL playlists",
		Long: `Convert a DAT catalog file into one or more LPL JSON playlists.

The catalog is cross-referenced against a local ROM collection layout
(archive format and storage convention) to build playlist entries. With
region splitting enabled, one playlist is written per detected region
group, optionally renamed through a region map file.

Examples:
  dat2lpl --rom-path ~/roms/snes "Nintendo - SNES.dat"
  dat2lpl --rom-path ~/roms/snes --archive-format zip -s split catalog.dat
  dat2lpl --rom-path ~/roms/snes -r --map regions.json catalog.dat`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, ctx, args[0], flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.register(rootCmd)

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dat2lpl version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "dat2lpl %s\n", version)
			return nil
		},
	}
}
