package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/placevalue/internal/model"
	"github.com/ppiankov/placevalue/internal/render"
	"github.com/ppiankov/placevalue/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchFormat  string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Break down many numbers from a file in parallel",
	Long: `Batch decomposes every number listed in a file concurrently:
- Read numbers from input file (one per line, # comments allowed)
- Process them in parallel with configurable worker count
- Print the breakdowns in input order, or write one file per number

Example:
  placevalue batch numbers.txt
  placevalue batch numbers.txt --format json > breakdowns.json
  placevalue batch numbers.txt --concurrency 8 --output-dir ./breakdowns --format markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "write one file per number into this directory")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "output format: text, json or markdown (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = batchFormat
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), batchTimeout)
	defer cancel()

	stderr := cmd.ErrOrStderr()
	if verbose {
		fmt.Fprintf(stderr, "  Input file:   %s\n", file)
		fmt.Fprintf(stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
		fmt.Fprintf(stderr, "  Format:       %s\n", format)
		if outputDir != "" {
			fmt.Fprintf(stderr, "  Output dir:   %s\n", outputDir)
		}
		fmt.Fprintln(stderr)
	}

	processor := worker.NewBatchProcessor(cfg.Display.Slots, cfg.Concurrency.Workers, logger)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := render.NewRenderer(format, cfg.Display.Theme, render.Options{Scientific: cfg.Display.Scientific})
	breakdowns := make([]model.Breakdown, 0, len(results))
	invalid, failed := 0, 0

	for i, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(stderr, "✗ %s: %v\n", result.Input, result.Error)
			continue
		}

		b := *result.Breakdown
		if !b.Valid {
			invalid++
			fmt.Fprintf(stderr, "✗ %s: not a valid decimal number\n", result.Input)
		}
		breakdowns = append(breakdowns, b)

		if outputDir == "" {
			continue
		}
		path := filepath.Join(outputDir, fmt.Sprintf("%03d-%s%s", i+1, sanitizeFilename(result.Input), extension(format)))
		if err := renderer.RenderFile(b, path); err != nil {
			failed++
			fmt.Fprintf(stderr, "✗ %s: %v\n", result.Input, err)
		}
	}

	if outputDir == "" {
		if err := writeBatch(cmd, renderer, format, breakdowns); err != nil {
			return err
		}
	}

	fmt.Fprintf(stderr, "\n  Total: %d  Valid: %d  Invalid: %d  Failed: %d\n",
		len(results), len(breakdowns)-invalid, invalid, failed)
	if outputDir != "" {
		fmt.Fprintf(stderr, "  Output: %s\n", outputDir)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(results))
	}
	return nil
}

func writeBatch(cmd *cobra.Command, renderer *render.Renderer, format render.Format, breakdowns []model.Breakdown) error {
	out := cmd.OutOrStdout()

	if format == render.FormatJSON {
		data, err := render.JSONAll(breakdowns)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	for i, b := range breakdowns {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := renderer.Render(out, b); err != nil {
			return err
		}
	}
	return nil
}

func extension(format render.Format) string {
	switch format {
	case render.FormatJSON:
		return ".json"
	case render.FormatMarkdown:
		return ".md"
	}
	return ".txt"
}

// sanitizeFilename makes an input usable as part of a file name
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(strings.TrimSpace(s))

	// Limit length
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "empty"
	}
	return s
}
