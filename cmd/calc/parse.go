package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/diagfmt"
	"github.com/Lkuropatkina/HSEproject/internal/driver"
	"github.com/Lkuropatkina/HSEproject/internal/eval"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file",
	Short: "Parse an expression file and dump its syntax tree",
	Long: `Parse builds the syntax tree of an expression file and prints it as
centered ASCII art (tree), an indented dump with spans (pretty) or JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|pretty|json)")
	parseCmd.Flags().Bool("render", false, "also print the canonical bracketed form")
}

func runParse(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	withRender, err := cmd.Flags().GetBool("render")
	if err != nil {
		return fmt.Errorf("failed to get render flag: %w", err)
	}

	result, err := driver.Parse(args[0], settings.maxDiags)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	settings.printDiagnostics(result.Bag, result.FileSet)

	if result.Bag.HasErrors() || result.Root == ast.NoExprID {
		return silentExit1(cmd)
	}

	switch format {
	case "tree":
		if err := diagfmt.FormatExprTree(os.Stdout, result.Builder, result.Root); err != nil {
			return err
		}
	case "pretty":
		if err := diagfmt.FormatExprPretty(os.Stdout, result.Builder, result.Root, result.FileSet); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatExprJSON(os.Stdout, result.Builder, result.Root); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if withRender {
		fmt.Fprintln(os.Stdout, eval.Render(result.Builder, result.Root))
	}
	return nil
}
