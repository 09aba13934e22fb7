package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ppiankov/floatchat/internal/model"
	"github.com/ppiankov/floatchat/internal/render"
	"github.com/ppiankov/floatchat/internal/resolve"
	"github.com/ppiankov/floatchat/internal/score"
	"github.com/ppiankov/floatchat/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Answer many questions from a file in parallel",
	Long: `Batch answers questions concurrently:
- Read questions from input file (one per line, # comments allowed)
- Resolve them in parallel with configurable worker count
- Write answers.json and answers.md to the output directory
- Print a confidence summary

Example:
  floatchat batch questions.txt
  floatchat batch questions.txt --concurrency 8 --output-dir ./answers`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers (default from config when unset)")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./floatchat-answers", "output directory for answers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&roleName, "role", "", "role recorded with each answer (default from config)")
	batchCmd.Flags().StringVar(&catalogPath, "catalog", "", "YAML response catalog (default: built-in demo catalog)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown output")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  FloatChat Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Role:         %s\n", cfg.Chat.DefaultRole)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	processor := worker.NewBatchProcessor(resolve.New(c), cfg.Concurrency.Workers)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "✓ Resolved %d questions\n", len(results))

	answers := make([]model.Answer, 0, len(results))
	failures := 0
	for _, r := range results {
		if r.Error != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Query, r.Error)
			continue
		}

		answers = append(answers, model.Answer{
			Query:      r.Query,
			Role:       cfg.Chat.DefaultRole,
			Matched:    r.Result.Matched,
			MatchedKey: r.Result.Key,
			Response:   r.Result.Record,
			AnsweredAt: time.Now().UTC(),
		})
		logf("  %-3d %3d%%  %s\n", r.Index+1, score.Percent(r.Result.Record.Confidence), r.Query)
	}

	renderer := render.NewRenderer(cfg.Output.IncludeFooter)
	jsonPath := filepath.Join(outputDir, "answers.json")
	mdPath := filepath.Join(outputDir, "answers.md")

	if err := renderer.RenderJSON(answers, jsonPath); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	if err := renderer.RenderMarkdown(answers, mdPath); err != nil {
		return fmt.Errorf("write Markdown: %w", err)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	renderer.PrintSummary(os.Stderr, score.Summarize(answers))
	fmt.Fprintf(os.Stderr, "  Failures:        %d\n", failures)
	fmt.Fprintf(os.Stderr, "  Output:          %s, %s\n", jsonPath, mdPath)
	fmt.Fprintf(os.Stderr, "\n")

	if failures > 0 {
		return fmt.Errorf("%d of %d questions failed", failures, len(results))
	}
	return nil
}
