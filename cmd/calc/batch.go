package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Lkuropatkina/HSEproject/internal/driver"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] file",
	Short: "Evaluate a file line by line",
	Long: `Batch evaluates every non-empty, non-comment line of the file as an
independent expression and prints one "expr = value" line per result.
Lines are evaluated in parallel; output keeps the input order.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Bool("strict", false, "treat domain errors as failures instead of NaN/Inf")
	batchCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	batchCmd.Flags().Bool("cache", true, "reuse results from the expression cache (--cache=false to disable)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	strict, err := settings.strictMode(cmd)
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}

	opts := settings.evalOptions(strict)
	opts.Jobs = jobs
	if useCache {
		// кеш не обязателен: не открылся - просто пересчитаем
		if cache, cacheErr := driver.OpenCache("calc"); cacheErr == nil {
			opts.Cache = cache
		}
	}

	results, err := driver.EvalLines(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("batch evaluation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	broken := 0
	for _, res := range results {
		if res.Bag != nil && res.Bag.Len() > 0 {
			fmt.Fprintf(os.Stderr, "== line %d: %s ==\n", res.Line, res.Expr)
			settings.printDiagnostics(res.Bag, res.FileSet)
		}
		if res.Err != nil || (res.Bag != nil && res.Bag.HasErrors()) {
			broken++
			fmt.Fprintf(out, "%s = error\n", res.Expr)
			continue
		}
		fmt.Fprintf(out, "%s = %s\n", res.Expr, strconv.FormatFloat(res.Value, 'g', -1, 64))
	}

	if !settings.quiet && len(results) > 0 {
		fmt.Fprintf(os.Stderr, "%d lines, %d failed\n", len(results), broken)
	}
	if broken > 0 {
		return silentExit1(cmd)
	}
	return nil
}
