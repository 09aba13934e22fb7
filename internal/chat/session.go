package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ppiankov/floatchat/internal/model"
)

// WelcomeMessage opens every transcript
const WelcomeMessage = "Hello! I'm FloatChat, your AI assistant for ARGO ocean data. Ask me about salinity profiles, temperature trends, float locations, or any ocean data question!"

// Answerer produces answers for a session
type Answerer interface {
	Answer(ctx context.Context, sessionID string, role model.Role, query string) (*model.Answer, error)
}

// Session is one conversation and its transcript
type Session struct {
	id       string
	answerer Answerer

	mu       sync.Mutex
	role     model.Role
	messages []model.Message
	seq      int
	now      func() time.Time
}

// NewSession starts a transcript with the welcome message
func NewSession(id string, answerer Answerer, role model.Role) *Session {
	s := &Session{
		id:       id,
		answerer: answerer,
		role:     role,
		now:      time.Now,
	}
	s.append(model.MessageAssistant, WelcomeMessage, nil)
	return s
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Role returns the current audience role
func (s *Session) Role() model.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// SetRole changes the audience for later questions
func (s *Session) SetRole(role model.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
}

// Ask records the question, answers it and records the answer.
// On failure the question stays in the transcript without a reply.
func (s *Session) Ask(ctx context.Context, query string) (*model.Answer, error) {
	if err := checkQuery(query); err != nil {
		return nil, err
	}

	s.mu.Lock()
	role := s.role
	s.append(model.MessageUser, query, nil)
	s.mu.Unlock()

	ans, err := s.answerer.Answer(ctx, s.id, role, query)
	if err != nil {
		return nil, fmt.Errorf("answer: %w", err)
	}

	rec := ans.Response.Clone()
	s.mu.Lock()
	s.append(model.MessageAssistant, rec.Answer, &rec)
	s.mu.Unlock()

	return ans, nil
}

// Messages returns a copy of the transcript
func (s *Session) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Message, len(s.messages))
	for i, m := range s.messages {
		out[i] = m
		if m.Response != nil {
			rec := m.Response.Clone()
			out[i].Response = &rec
		}
	}
	return out
}

// append must be called with mu held (or before the session is shared)
func (s *Session) append(typ model.MessageType, content string, rec *model.ResponseRecord) {
	s.seq++
	s.messages = append(s.messages, model.Message{
		ID:        fmt.Sprintf("%s-%d", s.id, s.seq),
		Type:      typ,
		Content:   content,
		Timestamp: s.now().UTC(),
		Response:  rec,
	})
}

func checkQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}
	return nil
}
