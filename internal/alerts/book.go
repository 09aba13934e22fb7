// Package alerts tracks how operators handle float alerts.
package alerts

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ppiankov/floatchat/internal/model"
)

var (
	ErrUnknownAlert      = errors.New("unknown alert")
	ErrInvalidTransition = errors.New("invalid alert transition")
)

// Entry is an alert together with its handling status
type Entry struct {
	Alert  model.Alert       `json:"alert"`
	Status model.AlertStatus `json:"status"`
}

// Book holds alert status. Safe for concurrent use.
type Book struct {
	mu     sync.RWMutex
	alerts []model.Alert
	status map[string]model.AlertStatus
	now    func() time.Time
}

// NewBook starts every alert as active
func NewBook(alerts []model.Alert) *Book {
	b := &Book{
		alerts: append([]model.Alert(nil), alerts...),
		status: make(map[string]model.AlertStatus, len(alerts)),
		now:    time.Now,
	}
	for _, a := range alerts {
		b.status[a.ID] = model.AlertActive
	}
	return b
}

// List returns every alert with its current status
func (b *Book) List() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Entry, len(b.alerts))
	for i, a := range b.alerts {
		out[i] = Entry{Alert: a, Status: b.status[a.ID]}
	}
	return out
}

// Status returns the status of one alert
func (b *Book) Status(id string) (model.AlertStatus, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s, ok := b.status[id]
	if !ok {
		return "", fmt.Errorf("%s: %w", id, ErrUnknownAlert)
	}
	return s, nil
}

// Acknowledge moves an active alert to acknowledged
func (b *Book) Acknowledge(id string) error {
	return b.transition(id, model.AlertActive, model.AlertAcknowledged)
}

// Resolve moves an acknowledged alert to resolved
func (b *Book) Resolve(id string) error {
	return b.transition(id, model.AlertAcknowledged, model.AlertResolved)
}

func (b *Book) transition(id string, from, to model.AlertStatus) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, ok := b.status[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrUnknownAlert)
	}
	if cur != from {
		return fmt.Errorf("%s: %s -> %s: %w", id, cur, to, ErrInvalidTransition)
	}
	b.status[id] = to
	return nil
}

// Send notifies the active recipients of an active alert.
// Status is unchanged.
func (b *Book) Send(id string) (*model.Dispatch, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cur, ok := b.status[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrUnknownAlert)
	}
	if cur != model.AlertActive {
		return nil, fmt.Errorf("%s: cannot send %s alert: %w", id, cur, ErrInvalidTransition)
	}

	var alert model.Alert
	for _, a := range b.alerts {
		if a.ID == id {
			alert = a
			break
		}
	}

	var to []model.Recipient
	for _, r := range Recipients() {
		if r.Active {
			to = append(to, r)
		}
	}

	return &model.Dispatch{
		Alert:      alert,
		Recipients: to,
		SentAt:     b.now().UTC(),
	}, nil
}

// Stats counts alerts by severity and status
func (b *Book) Stats() model.AlertStats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s := model.AlertStats{
		Total: len(b.alerts),
		BySeverity: map[model.AlertSeverity]int{
			model.SeverityHigh:   0,
			model.SeverityMedium: 0,
			model.SeverityLow:    0,
		},
		ByStatus: map[model.AlertStatus]int{
			model.AlertActive:       0,
			model.AlertAcknowledged: 0,
			model.AlertResolved:     0,
		},
	}
	for _, a := range b.alerts {
		s.BySeverity[a.Severity]++
		s.ByStatus[b.status[a.ID]]++
	}
	return s
}

// Recipients is the notification roster
func Recipients() []model.Recipient {
	return []model.Recipient{
		{Name: "Coastal Authority", Active: true},
		{Name: "Maritime Safety", Active: true},
		{Name: "Research Team", Active: true},
		{Name: "Fisheries Dept", Active: false},
	}
}
