package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Lkuropatkina/HSEproject/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive calculator",
	Long: `Repl reads expressions one line at a time and prints the rendered tree
and the value for each. Lines are independent: no state survives between them.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().Bool("strict", false, "treat domain errors as failures instead of NaN/Inf")
	replCmd.Flags().Bool("tex", false, "wrap the rendered tree in $...$")
}

func runRepl(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	strict, err := settings.strictMode(cmd)
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	tex, err := settings.texMode(cmd)
	if err != nil {
		return fmt.Errorf("failed to get tex flag: %w", err)
	}

	opts := ui.Options{
		Eval: settings.evalOptions(strict),
		TeX:  tex,
	}

	// перенаправленный ввод или вывод - обычный построчный цикл
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ui.RunPlain(os.Stdin, os.Stdout, opts)
	}

	program := tea.NewProgram(ui.NewReplModel(opts), tea.WithOutput(os.Stdout), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("repl failed: %w", err)
	}
	return nil
}
