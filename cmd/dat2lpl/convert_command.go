package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"dat2lpl/internal/config"
	"dat2lpl/internal/convert"
	"dat2lpl/internal/logging"
	"dat2lpl/internal/romset"
)

type convertFlags struct {
	romPath           string
	archiveFormat     string
	storageMode       string
	output            string
	regionSplit       bool
	mapFile           string
	mapWorld          bool
	verify            bool
	networkValidation bool
	verbose           bool
}

func (f *convertFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.romPath, "rom-path", "", "Root directory of the ROM collection")
	fl.StringVar(&f.archiveFormat, "archive-format", "", "Archive format of the collection: none, zip, or 7z")
	fl.StringVarP(&f.storageMode, "storage-mode", "s", "", "Storage convention: non-merged, split, or merged")
	fl.StringVarP(&f.output, "output", "o", "", "Output playlist path")
	fl.BoolVarP(&f.regionSplit, "region-split", "r", false, "Write one playlist per region group")
	fl.StringVar(&f.mapFile, "map", "", "JSON file mapping region tokens to group names (requires -r)")
	fl.BoolVar(&f.mapWorld, "map-world", false, "Treat the World token as an ordinary region")
	fl.BoolVar(&f.verify, "verify", false, "Warn about resolved targets missing on disk")
	fl.BoolVar(&f.networkValidation, "enable-network-validation", false, "Fetch and check the catalog's declared XML schema")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Enable debug logging")
}

// buildOptions merges config file values with explicitly set flags; flags
// win when both are present.
func buildOptions(cmd *cobra.Command, cfg *config.Config, catalogPath string, flags *convertFlags) (convert.Options, error) {
	changed := cmd.Flags().Changed

	pick := func(name, flagValue, configValue string) string {
		if changed(name) {
			return flagValue
		}
		return configValue
	}
	pickBool := func(name string, flagValue, configValue bool) bool {
		if changed(name) {
			return flagValue
		}
		return configValue
	}

	romPath, err := config.ExpandPath(pick("rom-path", flags.romPath, cfg.Paths.ROMRoot))
	if err != nil {
		return convert.Options{}, err
	}
	mapFile, err := config.ExpandPath(pick("map", flags.mapFile, cfg.Regions.MapFile))
	if err != nil {
		return convert.Options{}, err
	}

	format, err := romset.ParseArchiveFormat(pick("archive-format", flags.archiveFormat, cfg.Romset.ArchiveFormat))
	if err != nil {
		return convert.Options{}, err
	}
	mode, err := romset.ParseStorageMode(pick("storage-mode", flags.storageMode, cfg.Romset.StorageMode))
	if err != nil {
		return convert.Options{}, err
	}

	return convert.Options{
		CatalogPath:       catalogPath,
		RootPath:          romPath,
		Format:            format,
		Mode:              mode,
		OutputPath:        pick("output", flags.output, cfg.Paths.Output),
		RegionSplit:       pickBool("region-split", flags.regionSplit, cfg.Regions.Split),
		MapPath:           mapFile,
		MapWorld:          pickBool("map-world", flags.mapWorld, cfg.Regions.MapWorld),
		Verify:            pickBool("verify", flags.verify, cfg.Validation.VerifyFiles),
		NetworkValidation: pickBool("enable-network-validation", flags.networkValidation, cfg.Validation.Network),
		ValidationTimeout: time.Duration(cfg.Validation.TimeoutSeconds) * time.Second,
	}, nil
}

func runConvert(cmd *cobra.Command, ctx *commandContext, catalogPath string, flags *convertFlags) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	opts, err := buildOptions(cmd, cfg, catalogPath, flags)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg, flags.verbose)
	if err != nil {
		return err
	}

	report, err := convert.Run(cmd.Context(), opts, logger)
	if err != nil {
		return err
	}

	return printReport(cmd, report)
}

func newLogger(cmd *cobra.Command, cfg *config.Config, verbose bool) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	format := cfg.Logging.Format
	if format == "" {
		if stderrIsTerminal(cmd) {
			format = "console"
		} else {
			format = "json"
		}
	}
	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: level, Format: format})
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	return logger, nil
}

func printReport(cmd *cobra.Command, report convert.Report) error {
	if !stdoutIsTerminal(cmd) {
		return writeJSON(cmd, report)
	}

	rows := make([]countRow, 0, len(report.Files))
	total := 0
	for _, file := range report.Files {
		rows = append(rows, countRow{name: file.Name, count: file.Items})
		total += file.Items
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderCountTable("Playlist", "Items", rows))
	fmt.Fprintf(cmd.OutOrStdout(), "%d games, %d playlist entries", report.Games, total)
	if report.Skipped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d skipped", report.Skipped)
	}
	if report.Missing > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d missing on disk", report.Missing)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
