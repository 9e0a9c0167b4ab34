package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lkuropatkina/HSEproject/internal/ast"
	"github.com/Lkuropatkina/HSEproject/internal/driver"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] [expression]",
	Short: "Evaluate a math expression",
	Long: `Eval parses an expression, prints its canonical bracketed form and the
computed value. The expression comes from the arguments, from --file or,
when neither is given, from stdin.`,
	Args: cobra.ArbitraryArgs,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().Bool("strict", false, "treat domain errors as failures instead of NaN/Inf")
	evalCmd.Flags().Bool("tex", false, "wrap the rendered tree in $...$")
	evalCmd.Flags().Bool("json", false, "print the result as JSON")
	evalCmd.Flags().StringP("file", "f", "", "read the expression from a file")
}

func runEval(cmd *cobra.Command, args []string) error {
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
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	if filePath != "" && len(args) > 0 {
		return fmt.Errorf("pass an expression or --file, not both")
	}

	opts := settings.evalOptions(strict)

	var result *driver.EvalResult
	var evalErr error
	switch {
	case filePath != "":
		result, evalErr = driver.Evaluate(filePath, opts)
	case len(args) > 0:
		expr := strings.Join(args, " ")
		result, evalErr = driver.EvaluateSource("expr", []byte(expr), opts)
	default:
		src, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		result, evalErr = driver.EvaluateSource("stdin", src, opts)
	}
	if result == nil {
		return fmt.Errorf("evaluation failed: %w", evalErr)
	}

	settings.printDiagnostics(result.Bag, result.FileSet)

	if evalErr != nil || result.Bag.HasErrors() || result.Root == ast.NoExprID {
		return silentExit1(cmd)
	}

	render := result.Render
	if tex {
		render = "$" + render + "$"
	}
	value := strconv.FormatFloat(result.Value, 'g', -1, 64)

	out := cmd.OutOrStdout()
	if asJSON {
		return writeEvalJSON(out, render, result.Value)
	}
	if settings.quiet {
		fmt.Fprintln(out, value)
		return nil
	}
	fmt.Fprintln(out, "tree representation: "+render)
	fmt.Fprintln(out, "tree value: "+value)
	return nil
}

type evalOutput struct {
	Render string          `json:"render"`
	Value  json.RawMessage `json:"value"`
}

func writeEvalJSON(w io.Writer, render string, value float64) error {
	text := strconv.FormatFloat(value, 'g', -1, 64)
	raw := text
	// NaN и бесконечности не являются числами JSON
	if math.IsNaN(value) || math.IsInf(value, 0) {
		raw = strconv.Quote(text)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(evalOutput{Render: render, Value: json.RawMessage(raw)})
}
