package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ppiankov/floatchat/internal/render"
	"github.com/spf13/cobra"
)

var askJSON string

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <query>",
	Short: "Ask one question about ocean data",
	Long: `Ask answers one question and prints the answer with its confidence,
cited floats and physics check.

Example:
  floatchat ask "Show me salinity profiles near equator March 2023"
  floatchat ask "nearest floats to 14.5N 72.9E" --role Student --delay 0s
  floatchat ask "BGC parameters in Arabian Sea" --json answer.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	addAnswerFlags(askCmd)
	askCmd.Flags().StringVar(&askJSON, "json", "", "also write the answer as JSON to this file")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := commandConfig(cmd)
	if err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	query := strings.Join(args, " ")
	role := cfg.Chat.DefaultRole

	logf("⚙️  Role: %s (%s)\n", role, role.Context())
	if cfg.Chat.Delay > 0 {
		fmt.Fprintf(os.Stderr, "Analyzing ocean data...\n")
	}

	start := time.Now()
	ans, err := svc.Answer(ctx, uuid.NewString(), role, query)
	if err != nil {
		return fmt.Errorf("ask: %w", err)
	}
	logf("✓ Answered in %v (matched: %v)\n", time.Since(start).Round(time.Millisecond), ans.Matched)

	renderer := render.NewRenderer(cfg.Output.IncludeFooter)
	renderer.PrintAnswer(cmd.OutOrStdout(), ans)

	if askJSON != "" {
		if err := renderer.RenderJSON(ans, askJSON); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ JSON: %s\n", askJSON)
	}

	return nil
}

func parseDelay(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --delay %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid --delay %q: must not be negative", s)
	}
	return d, nil
}
