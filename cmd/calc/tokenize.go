package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lkuropatkina/HSEproject/internal/diagfmt"
	"github.com/Lkuropatkina/HSEproject/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file",
	Short: "Tokenize an expression file",
	Long:  `Tokenize breaks down an expression file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(args[0], settings.maxDiags)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	settings.printDiagnostics(result.Bag, result.FileSet)

	switch format {
	case "pretty":
		if err := diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatTokensJSON(os.Stdout, result.Tokens); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if result.Bag.HasErrors() {
		return silentExit1(cmd)
	}
	return nil
}
