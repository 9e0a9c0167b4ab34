package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lkuropatkina/HSEproject/internal/config"
	"github.com/Lkuropatkina/HSEproject/internal/diag"
	"github.com/Lkuropatkina/HSEproject/internal/diagfmt"
	"github.com/Lkuropatkina/HSEproject/internal/driver"
	"github.com/Lkuropatkina/HSEproject/internal/source"
)

// cliSettings — эффективные настройки запуска: манифест calc.toml,
// поверх которого применены глобальные флаги.
type cliSettings struct {
	cfg       *config.Config
	colorMode string
	quiet     bool
	timings   bool
	maxDiags  int
}

func resolveSettings(cmd *cobra.Command) (*cliSettings, error) {
	flags := cmd.Root().PersistentFlags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		found, ok, err := config.Discover(".")
		if err != nil {
			return nil, err
		}
		if ok {
			cfg = found
		} else {
			cfg = config.Default()
		}
	}

	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiags, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	// флаг --color важнее манифеста
	colorMode := cfg.Output.Color
	if flags.Changed("color") {
		colorMode, err = flags.GetString("color")
		if err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
		switch colorMode {
		case config.ColorAuto, config.ColorOn, config.ColorOff:
		default:
			return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorMode)
		}
	}

	return &cliSettings{
		cfg:       cfg,
		colorMode: colorMode,
		quiet:     quiet,
		timings:   timings,
		maxDiags:  maxDiags,
	}, nil
}

// useColor решает, красить ли вывод в указанный поток.
func (s *cliSettings) useColor(f *os.File) bool {
	switch s.colorMode {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	default:
		return isTerminal(f)
	}
}

// strictMode учитывает флаг --strict поверх манифеста.
func (s *cliSettings) strictMode(cmd *cobra.Command) (bool, error) {
	if cmd.Flags().Changed("strict") {
		return cmd.Flags().GetBool("strict")
	}
	return s.cfg.Strict(), nil
}

// texMode учитывает флаг --tex поверх манифеста.
func (s *cliSettings) texMode(cmd *cobra.Command) (bool, error) {
	if cmd.Flags().Changed("tex") {
		return cmd.Flags().GetBool("tex")
	}
	return s.cfg.Output.TeX, nil
}

func (s *cliSettings) evalOptions(strict bool) driver.EvalOptions {
	return driver.EvalOptions{
		Strict:         strict,
		MaxDiagnostics: s.maxDiags,
		MaxDepth:       s.cfg.Eval.MaxDepth,
		Timings:        s.timings,
	}
}

// printDiagnostics выводит мешок диагностик в stderr.
func (s *cliSettings) printDiagnostics(bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	opts := diagfmt.PrettyOpts{
		Color:     s.useColor(os.Stderr),
		Context:   2,
		ShowNotes: true,
	}
	diagfmt.Pretty(os.Stderr, bag, fs, opts)
}

// silentExit1 завершает команду с кодом 1 без текста ошибки:
// диагностика уже напечатана.
func silentExit1(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("")
}
