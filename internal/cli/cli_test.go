package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/floatchat/internal/alerts"
	"github.com/ppiankov/floatchat/internal/chat"
	"github.com/ppiankov/floatchat/internal/fleet"
	"github.com/ppiankov/floatchat/internal/model"
	"github.com/ppiankov/floatchat/internal/render"
	"github.com/spf13/viper"
)

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	registerDefaults(v)

	cfg, err := loadConfig(v)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	want := model.DefaultConfig()
	if cfg.Chat.Delay != want.Chat.Delay {
		t.Errorf("delay = %v, want %v", cfg.Chat.Delay, want.Chat.Delay)
	}
	if cfg.Chat.DefaultRole != model.RoleScientist {
		t.Errorf("role = %q, want Scientist", cfg.Chat.DefaultRole)
	}
	if cfg.Concurrency.Workers != want.Concurrency.Workers {
		t.Errorf("workers = %d, want %d", cfg.Concurrency.Workers, want.Concurrency.Workers)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	v := viper.New()
	registerDefaults(v)
	v.Set("chat.delay", "0s")
	v.Set("chat.default_role", "student")
	v.Set("cache.enabled", false)

	cfg, err := loadConfig(v)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Chat.Delay != 0 {
		t.Errorf("delay = %v, want 0", cfg.Chat.Delay)
	}
	if cfg.Chat.DefaultRole != model.RoleStudent {
		t.Errorf("role = %q, want Student", cfg.Chat.DefaultRole)
	}
	if cfg.Cache.Enabled {
		t.Error("cache should be disabled")
	}
}

func TestLoadConfig_BadRole(t *testing.T) {
	v := viper.New()
	registerDefaults(v)
	v.Set("chat.default_role", "captain")

	if _, err := loadConfig(v); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestConfigView(t *testing.T) {
	view := configView(model.DefaultConfig())
	if view.Chat.Delay != "1.5s" {
		t.Errorf("delay = %q, want 1.5s", view.Chat.Delay)
	}
	if view.Cache.TTL != "10m0s" {
		t.Errorf("ttl = %q, want 10m0s", view.Cache.TTL)
	}
}

func TestParseDelay(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"0s", 0, false},
		{"1.5s", 1500 * time.Millisecond, false},
		{"-1s", 0, true},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		got, err := parseDelay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDelay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDelay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCoord(t *testing.T) {
	if v, err := parseCoord("-10.5", 90); err != nil || v != -10.5 {
		t.Errorf("parseCoord(-10.5) = %v, %v", v, err)
	}
	if _, err := parseCoord("91", 90); err == nil {
		t.Error("expected range error for 91")
	}
	if _, err := parseCoord("north", 90); err == nil {
		t.Error("expected parse error")
	}
}

func newTestREPL(t *testing.T) (*repl, *bytes.Buffer) {
	t.Helper()

	cfg := model.DefaultConfig()
	cfg.Chat.Delay = 0
	cfg.Cache.Enabled = false
	cfg.RateLimiting.RequestsPerSecond = 0

	svc, err := newService(cfg)
	if err != nil {
		t.Fatalf("newService: %v", err)
	}

	var out bytes.Buffer
	return &repl{
		session:  chat.NewSession("test", svc, model.RoleScientist),
		book:     alerts.NewBook(fleet.Default().Alerts()),
		renderer: render.NewRenderer(false),
		out:      &out,
	}, &out
}

func TestREPL_Session(t *testing.T) {
	r, out := newTestREPL(t)

	input := strings.Join([]string{
		"/suggest",
		"Show me salinity profiles near equator March 2023",
		"",
		"/role student",
		"what is the weather today",
		"/ack ALT001",
		"/resolve alt001",
		"/send ALT001",
		"/send ALT002",
		"/bogus",
		"/quit",
		"this line is never read",
	}, "\n")

	if err := r.run(context.Background(), strings.NewReader(input)); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		chat.WelcomeMessage,
		"Role: Scientist",
		"Role: Student",
		"Oxygen levels in the Indian Ocean",
		"ARGO003, ARGO005",
		"89% (medium)",
		`query about "what is the weather today"`,
		"ALT001 acknowledged",
		"ALT001 resolved",
		"invalid alert transition",
		"ALT002 sent to Coastal Authority, Maritime Safety, Research Team",
		"unknown command /bogus",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// welcome + two questions and two answers
	msgs := r.session.Messages()
	if len(msgs) != 5 {
		t.Fatalf("transcript has %d messages, want 5", len(msgs))
	}
	if msgs[4].Response == nil || msgs[4].Response.Confidence != 0.75 {
		t.Errorf("last answer should be the generic answer, got %+v", msgs[4].Response)
	}
}

func TestREPL_EOF(t *testing.T) {
	r, _ := newTestREPL(t)

	if err := r.run(context.Background(), strings.NewReader("nearest floats to 14.5N 72.9E")); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := len(r.session.Messages()); n != 3 {
		t.Errorf("transcript has %d messages, want 3", n)
	}
}

func TestREPL_SaveTranscript(t *testing.T) {
	r, _ := newTestREPL(t)
	if err := r.run(context.Background(), strings.NewReader("BGC parameters\n")); err != nil {
		t.Fatalf("run: %v", err)
	}

	path := t.TempDir() + "/session.md"
	if err := r.saveTranscript(path); err != nil {
		t.Fatalf("saveTranscript: %v", err)
	}
}

func TestREPL_CancelWhileWaitingForInput(t *testing.T) {
	r, out := newTestREPL(t)

	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- r.run(ctx, pr)
	}()

	if _, err := io.WriteString(pw, "BGC parameters\n"); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Wait for the answer, then cancel while run sits at the next prompt
	deadline := time.Now().Add(time.Second)
	for len(r.session.Messages()) < 3 {
		if time.Now().After(deadline) {
			t.Fatal("question was not answered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run returned %v, want nil on cancel", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run still blocked after cancel at the prompt")
	}

	if !strings.Contains(out.String(), "ARGO") {
		t.Errorf("expected the answer before cancel, got %q", out.String())
	}
}
