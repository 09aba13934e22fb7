package alerts

import (
	"sync"
	"testing"
	"time"

	"github.com/ppiankov/floatchat/internal/fleet"
	"github.com/ppiankov/floatchat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBook() *Book {
	return NewBook(fleet.Default().Alerts())
}

func TestNewBook_AllActive(t *testing.T) {
	b := newTestBook()

	entries := b.List()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, model.AlertActive, e.Status, e.Alert.ID)
	}
	assert.Equal(t, "ALT001", entries[0].Alert.ID)
}

func TestLifecycle(t *testing.T) {
	b := newTestBook()

	require.NoError(t, b.Acknowledge("ALT001"))
	s, err := b.Status("ALT001")
	require.NoError(t, err)
	assert.Equal(t, model.AlertAcknowledged, s)

	require.NoError(t, b.Resolve("ALT001"))
	s, _ = b.Status("ALT001")
	assert.Equal(t, model.AlertResolved, s)

	// Other alerts are untouched
	s, _ = b.Status("ALT002")
	assert.Equal(t, model.AlertActive, s)
}

func TestInvalidTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Book)
		op    func(b *Book) error
	}{
		{
			name: "resolve active",
			op:   func(b *Book) error { return b.Resolve("ALT001") },
		},
		{
			name:  "acknowledge twice",
			setup: func(b *Book) { _ = b.Acknowledge("ALT001") },
			op:    func(b *Book) error { return b.Acknowledge("ALT001") },
		},
		{
			name: "acknowledge resolved",
			setup: func(b *Book) {
				_ = b.Acknowledge("ALT001")
				_ = b.Resolve("ALT001")
			},
			op: func(b *Book) error { return b.Acknowledge("ALT001") },
		},
		{
			name:  "send acknowledged",
			setup: func(b *Book) { _ = b.Acknowledge("ALT001") },
			op: func(b *Book) error {
				_, err := b.Send("ALT001")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBook()
			if tt.setup != nil {
				tt.setup(b)
			}
			assert.ErrorIs(t, tt.op(b), ErrInvalidTransition)
		})
	}
}

func TestUnknownAlert(t *testing.T) {
	b := newTestBook()

	assert.ErrorIs(t, b.Acknowledge("ALT999"), ErrUnknownAlert)
	assert.ErrorIs(t, b.Resolve("ALT999"), ErrUnknownAlert)
	_, err := b.Send("ALT999")
	assert.ErrorIs(t, err, ErrUnknownAlert)
	_, err = b.Status("ALT999")
	assert.ErrorIs(t, err, ErrUnknownAlert)
}

func TestSend(t *testing.T) {
	b := newTestBook()
	fixed := time.Date(2025, 9, 15, 7, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return fixed }

	d, err := b.Send("ALT002")
	require.NoError(t, err)
	assert.Equal(t, "ARGO006", d.Alert.FloatID)
	assert.Equal(t, fixed, d.SentAt)
	assert.Equal(t, []model.Recipient{
		{Name: "Coastal Authority", Active: true},
		{Name: "Maritime Safety", Active: true},
		{Name: "Research Team", Active: true},
	}, d.Recipients)

	// Sending does not change status
	s, _ := b.Status("ALT002")
	assert.Equal(t, model.AlertActive, s)
}

func TestRecipients(t *testing.T) {
	assert.Equal(t, []model.Recipient{
		{Name: "Coastal Authority", Active: true},
		{Name: "Maritime Safety", Active: true},
		{Name: "Research Team", Active: true},
		{Name: "Fisheries Dept", Active: false},
	}, Recipients())
}

func TestStats(t *testing.T) {
	b := newTestBook()
	require.NoError(t, b.Acknowledge("ALT002"))

	s := b.Stats()
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.BySeverity[model.SeverityHigh])
	assert.Equal(t, 1, s.BySeverity[model.SeverityMedium])
	assert.Equal(t, 0, s.BySeverity[model.SeverityLow])
	assert.Equal(t, 1, s.ByStatus[model.AlertActive])
	assert.Equal(t, 1, s.ByStatus[model.AlertAcknowledged])
	assert.Equal(t, 0, s.ByStatus[model.AlertResolved])
}

func TestConcurrentAcknowledge(t *testing.T) {
	b := newTestBook()

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.Acknowledge("ALT001") == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}
