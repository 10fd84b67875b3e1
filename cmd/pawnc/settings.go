package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pawnc/internal/diag"
	"pawnc/internal/diagfmt"
	"pawnc/internal/driver"
	"pawnc/internal/observ"
	"pawnc/internal/project"
	"pawnc/internal/source"
)

// settings: итоговые настройки запуска: флаги поверх файла проекта.
type settings struct {
	opts        driver.Options
	color       bool
	diagFormat  string
	showTimings bool
	manifest    *project.Manifest
}

// loadSettings reads global flags and the project file found for target.
// A flag set explicitly on the command line always wins over the file.
func loadSettings(cmd *cobra.Command, target string) (*settings, error) {
	flags := cmd.Flags()
	s := &settings{}

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath != "" {
		s.manifest, err = project.Load(configPath)
	} else {
		s.manifest, _, err = project.Discover(target)
	}
	if err != nil {
		return nil, err
	}
	var cfg project.Config
	if s.manifest != nil {
		cfg = s.manifest.Config
	}

	s.opts.MaxDiagnostics, err = flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !flags.Changed("max-diagnostics") && s.manifest.IsSet(project.KeyDiagnosticsMax) {
		s.opts.MaxDiagnostics = cfg.Diagnostics.Max
	}

	s.opts.LegacyIdentifiers, err = flags.GetBool("legacy-identifiers")
	if err != nil {
		return nil, fmt.Errorf("failed to get legacy-identifiers flag: %w", err)
	}
	if !flags.Changed("legacy-identifiers") && s.manifest.IsSet(project.KeyLegacyIdentifiers) {
		s.opts.LegacyIdentifiers = cfg.Lexer.LegacyIdentifiers
	}

	s.opts.Jobs = cfg.Parse.Jobs
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		if s.opts.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	s.opts.Extensions = cfg.Parse.Extensions

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	if !flags.Changed("color") && cfg.Diagnostics.Color != "" {
		colorFlag = cfg.Diagnostics.Color
	}
	switch strings.ToLower(colorFlag) {
	case "on":
		s.color = true
	case "off":
		s.color = false
	case "auto":
		s.color = isTerminal(os.Stderr)
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
	}

	s.diagFormat, err = flags.GetString("diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	switch s.diagFormat {
	case "pretty", "short", "json":
	default:
		return nil, fmt.Errorf("invalid --diagnostics value %q (expected pretty|short|json)", s.diagFormat)
	}

	s.showTimings, err = flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.showTimings {
		s.opts.Timer = observ.NewTimer()
	}
	return s, nil
}

// reportDiagnostics prints bag (plus project file warnings) to stderr.
// Returns errDiagnostics when there is at least one error.
func (s *settings) reportDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	s.manifest.Report(diag.BagReporter{Bag: bag})
	if bag.Len() > 0 {
		bag.Sort()
		bag.Dedup()
		out := cmd.ErrOrStderr()
		var err error
		switch s.diagFormat {
		case "short":
			_, err = fmt.Fprintln(out, diag.FormatShort(bag.Items(), fs, true))
		case "json":
			err = diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true, PathMode: diagfmt.PathModeRelative})
		default:
			err = diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{Color: s.color, Context: 2, ShowNotes: true})
		}
		if err != nil {
			return err
		}
	}
	if s.showTimings {
		fmt.Fprint(cmd.ErrOrStderr(), s.opts.Timer.Summary())
	}
	if bag.HasErrors() {
		cmd.SilenceUsage = true
		return errDiagnostics
	}
	return nil
}
