// Package chat turns questions into answers for interactive sessions.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ppiankov/floatchat/internal/cache"
	"github.com/ppiankov/floatchat/internal/model"
	"github.com/ppiankov/floatchat/internal/resolve"
	"github.com/ppiankov/floatchat/internal/worker"
)

// ErrEmptyQuery is returned for blank questions
var ErrEmptyQuery = errors.New("empty query")

// Options configures a Service. Zero values disable the feature.
type Options struct {
	Delay    time.Duration   // Simulated analysis time before answering
	Cache    cache.Cache     // Answer cache
	CacheTTL time.Duration   // 0 uses the cache default
	Limiter  *worker.Limiter // Per-session throttle
}

// Service answers questions through a Resolver
type Service struct {
	resolver *resolve.Resolver
	opts     Options
	now      func() time.Time
}

// NewService creates a chat service
func NewService(resolver *resolve.Resolver, opts Options) *Service {
	return &Service{
		resolver: resolver,
		opts:     opts,
		now:      time.Now,
	}
}

// Answer resolves one question for a session.
// Blank questions fail with ErrEmptyQuery; cancellation of ctx during the
// rate-limit wait or the delay returns ctx's error.
func (s *Service) Answer(ctx context.Context, sessionID string, role model.Role, query string) (*model.Answer, error) {
	if err := checkQuery(query); err != nil {
		return nil, err
	}

	if s.opts.Limiter != nil {
		if err := s.opts.Limiter.WaitWithDelay(ctx, sessionID, s.opts.Delay); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	} else if err := Wait(ctx, s.opts.Delay); err != nil {
		return nil, err
	}

	key := cache.CacheKey(string(role), query)
	if ans, ok := s.cached(key); ok {
		ans.Query = query
		ans.AnsweredAt = s.now().UTC()
		return ans, nil
	}

	res := s.resolver.Resolve(query)
	ans := &model.Answer{
		Query:      query,
		Role:       role,
		Matched:    res.Matched,
		MatchedKey: res.Key,
		Response:   res.Record,
		AnsweredAt: s.now().UTC(),
	}

	// Fallback answers embed the query text, so only matched answers are shared
	if res.Matched {
		s.store(key, ans)
	}

	return ans, nil
}

func (s *Service) cached(key string) (*model.Answer, bool) {
	if s.opts.Cache == nil {
		return nil, false
	}
	data, ok := s.opts.Cache.Get(key)
	if !ok {
		return nil, false
	}
	var ans model.Answer
	if err := json.Unmarshal(data, &ans); err != nil {
		_ = s.opts.Cache.Delete(key)
		return nil, false
	}
	return &ans, true
}

func (s *Service) store(key string, ans *model.Answer) {
	if s.opts.Cache == nil {
		return
	}
	data, err := json.Marshal(ans)
	if err != nil {
		return
	}
	_ = s.opts.Cache.Set(key, data, s.opts.CacheTTL)
}

// EndSession releases per-session state
func (s *Service) EndSession(sessionID string) {
	if s.opts.Limiter != nil {
		s.opts.Limiter.Forget(sessionID)
	}
}

// Wait blocks for d or until ctx is done. d <= 0 returns immediately
// unless ctx is already done.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
