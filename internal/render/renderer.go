// Package render writes answers and transcripts for people and tools.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/floatchat/internal/model"
	"github.com/ppiankov/floatchat/internal/score"
)

const footer = "_Generated by FloatChat from demo ARGO data. Answers are illustrative, not scientific results._"

// Renderer formats answers as JSON, Markdown or terminal text
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes v as indented JSON
func (r *Renderer) RenderJSON(v any, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	data = append(data, '\n')
	return writeFile(path, data)
}

// RenderMarkdown writes a Markdown report of the answers
func (r *Renderer) RenderMarkdown(answers []model.Answer, path string) error {
	var buf bytes.Buffer
	r.WriteMarkdown(&buf, answers)
	return writeFile(path, buf.Bytes())
}

// WriteMarkdown formats answers as Markdown
func (r *Renderer) WriteMarkdown(w io.Writer, answers []model.Answer) {
	fmt.Fprintf(w, "# FloatChat Answers\n\n")

	for i, a := range answers {
		fmt.Fprintf(w, "## %d. %s\n\n", i+1, a.Query)
		if a.Role != "" {
			fmt.Fprintf(w, "_Context: %s_\n\n", a.Role.Context())
		}
		fmt.Fprintf(w, "%s\n\n", a.Response.Answer)
		fmt.Fprintf(w, "| | |\n|---|---|\n")
		fmt.Fprintf(w, "| Confidence | %d%% (%s) |\n", score.Percent(a.Response.Confidence), score.Band(a.Response.Confidence))
		fmt.Fprintf(w, "| Cited Floats | %s |\n", citedList(a.Response.CitedFloats))
		fmt.Fprintf(w, "| Physics Check | %s |\n", checkMark(a.Response.PhysicsCheck.Passed))
		fmt.Fprintf(w, "| Validation | %s |\n", a.Response.PhysicsCheck.Notes)
		fmt.Fprintf(w, "| Visual | `%s` |\n", a.Response.VisualLink)
		if a.Matched {
			fmt.Fprintf(w, "| Matched | `%s` |\n", a.MatchedKey)
		} else {
			fmt.Fprintf(w, "| Matched | generic answer |\n")
		}
		fmt.Fprintln(w)
	}

	if r.includeFooter {
		fmt.Fprintf(w, "---\n\n%s\n", footer)
	}
}

// WriteTranscript formats a chat transcript as Markdown
func (r *Renderer) WriteTranscript(w io.Writer, messages []model.Message) {
	fmt.Fprintf(w, "# FloatChat Transcript\n\n")
	for _, m := range messages {
		speaker := "FloatChat"
		if m.Type == model.MessageUser {
			speaker = "You"
		}
		fmt.Fprintf(w, "**%s** (%s): %s\n\n", speaker, m.Timestamp.Format("15:04:05"), m.Content)
		if m.Response != nil {
			fmt.Fprintf(w, "> Confidence %d%% · %d floats cited (%s) · %s\n\n",
				score.Percent(m.Response.Confidence), len(m.Response.CitedFloats),
				citedList(m.Response.CitedFloats), m.Response.PhysicsCheck.Notes)
		}
	}
	if r.includeFooter {
		fmt.Fprintf(w, "---\n\n%s\n", footer)
	}
}

// PrintAnswer writes the terminal view of one answer
func (r *Renderer) PrintAnswer(w io.Writer, a *model.Answer) {
	rec := a.Response
	fmt.Fprintf(w, "%s\n\n", rec.Answer)
	fmt.Fprintf(w, "  Confidence:    %d%% (%s)\n", score.Percent(rec.Confidence), score.Band(rec.Confidence))
	fmt.Fprintf(w, "  Floats cited:  %d (%s)\n", len(rec.CitedFloats), citedList(rec.CitedFloats))
	fmt.Fprintf(w, "  Physics check: %s\n", checkMark(rec.PhysicsCheck.Passed))
	fmt.Fprintf(w, "  Validation:    %s\n", rec.PhysicsCheck.Notes)
	fmt.Fprintf(w, "  Visual:        %s\n", rec.VisualLink)
}

// PrintSummary writes the batch summary
func (r *Renderer) PrintSummary(w io.Writer, s model.BatchSummary) {
	fmt.Fprintf(w, "  Total:           %d queries\n", s.Total)
	fmt.Fprintf(w, "  Matched:         %d\n", s.Matched)
	fmt.Fprintf(w, "  Generic:         %d\n", s.Fallback)
	fmt.Fprintf(w, "  Mean confidence: %d%%\n", score.Percent(s.MeanConfidence))
	fmt.Fprintf(w, "  Bands:           high %d, medium %d, low %d\n",
		s.Bands[model.BandHigh], s.Bands[model.BandMedium], s.Bands[model.BandLow])
	fmt.Fprintf(w, "  Floats cited:    %s\n", citedList(s.CitedFloats))
}

func citedList(ids []string) string {
	if len(ids) == 0 {
		return "none"
	}
	return strings.Join(ids, ", ")
}

func checkMark(passed bool) string {
	if passed {
		return "✓ passed"
	}
	return "✗ failed"
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
