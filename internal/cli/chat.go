package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/ppiankov/floatchat/internal/alerts"
	"github.com/ppiankov/floatchat/internal/catalog"
	"github.com/ppiankov/floatchat/internal/chat"
	"github.com/ppiankov/floatchat/internal/fleet"
	"github.com/ppiankov/floatchat/internal/model"
	"github.com/ppiankov/floatchat/internal/render"
	"github.com/spf13/cobra"
)

var transcriptPath string

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Chat reads questions from stdin, one per line, and answers each one.

Commands inside the session:
  /role <name>      switch role (Scientist, Policymaker, Student)
  /suggest          list suggested questions
  /alerts           list alerts and their status
  /ack <id>         acknowledge an active alert
  /resolve <id>     resolve an acknowledged alert
  /send <id>        send an active alert to the recipient roster
  /quit             end the session

Example:
  floatchat chat
  floatchat chat --role Policymaker --transcript session.md`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	addAnswerFlags(chatCmd)
	chatCmd.Flags().StringVar(&transcriptPath, "transcript", "", "write the transcript as Markdown to this file on exit")
}

func runChat(cmd *cobra.Command, args []string) error {
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

	sessionID := uuid.NewString()
	defer svc.EndSession(sessionID)

	r := &repl{
		session:  chat.NewSession(sessionID, svc, cfg.Chat.DefaultRole),
		book:     alerts.NewBook(fleet.Default().Alerts()),
		renderer: render.NewRenderer(cfg.Output.IncludeFooter),
		out:      cmd.OutOrStdout(),
	}
	logf("⚙️  Session %s\n", sessionID)

	runErr := r.run(ctx, cmd.InOrStdin())

	if transcriptPath != "" {
		if err := r.saveTranscript(transcriptPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Transcript: %s\n", transcriptPath)
	}

	return runErr
}

// repl drives one chat session from line input
type repl struct {
	session  *chat.Session
	book     *alerts.Book
	renderer *render.Renderer
	out      io.Writer
}

var errQuit = errors.New("quit")

func (r *repl) run(ctx context.Context, in io.Reader) error {
	msgs := r.session.Messages()
	fmt.Fprintf(r.out, "%s\n", msgs[0].Content)
	r.printRole()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, scanErr := readLines(ctx, in)
	for {
		fmt.Fprint(r.out, "> ")

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var err error
		if strings.HasPrefix(line, "/") {
			err = r.command(line)
		} else {
			err = r.ask(ctx, line)
		}

		if errors.Is(err, errQuit) {
			return nil
		}
		if ctx.Err() != nil {
			fmt.Fprintln(r.out)
			return nil
		}
		if err != nil {
			fmt.Fprintf(r.out, "✗ %v\n", err)
		}
	}

	if ctx.Err() != nil {
		fmt.Fprintln(r.out)
		return nil
	}
	if err := <-scanErr; err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	fmt.Fprintln(r.out)
	return nil
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. The error channel receives exactly one value before lines
// is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	return lines, scanErr
}

func (r *repl) ask(ctx context.Context, query string) error {
	ans, err := r.session.Ask(ctx, query)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out)
	r.renderer.PrintAnswer(r.out, ans)
	fmt.Fprintln(r.out)
	return nil
}

func (r *repl) command(line string) error {
	fields := strings.Fields(line)
	name, rest := fields[0], fields[1:]

	arg := func() (string, error) {
		if len(rest) != 1 {
			return "", fmt.Errorf("usage: %s <id>", name)
		}
		return strings.ToUpper(rest[0]), nil
	}

	switch name {
	case "/quit", "/exit":
		return errQuit

	case "/role":
		if len(rest) != 1 {
			return fmt.Errorf("usage: /role <Scientist|Policymaker|Student>")
		}
		role, err := model.ParseRole(rest[0])
		if err != nil {
			return err
		}
		r.session.SetRole(role)
		r.printRole()

	case "/suggest":
		for _, q := range catalog.SuggestedQueries() {
			fmt.Fprintf(r.out, "  • %s\n", q)
		}

	case "/alerts":
		printAlerts(r.out, r.book.List())

	case "/ack":
		id, err := arg()
		if err != nil {
			return err
		}
		if err := r.book.Acknowledge(id); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "✓ %s acknowledged\n", id)

	case "/resolve":
		id, err := arg()
		if err != nil {
			return err
		}
		if err := r.book.Resolve(id); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "✓ %s resolved\n", id)

	case "/send":
		id, err := arg()
		if err != nil {
			return err
		}
		d, err := r.book.Send(id)
		if err != nil {
			return err
		}
		names := make([]string, len(d.Recipients))
		for i, rc := range d.Recipients {
			names[i] = rc.Name
		}
		fmt.Fprintf(r.out, "✓ %s sent to %s\n", id, strings.Join(names, ", "))

	default:
		return fmt.Errorf("unknown command %s (try /suggest, /role, /alerts, /quit)", name)
	}

	return nil
}

func (r *repl) printRole() {
	role := r.session.Role()
	fmt.Fprintf(r.out, "Role: %s (%s)\n", role, role.Context())
}

func (r *repl) saveTranscript(path string) error {
	var b strings.Builder
	r.renderer.WriteTranscript(&b, r.session.Messages())
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}
