// Package catalog holds the prepared answers FloatChat can give.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ppiankov/floatchat/internal/model"
)

var (
	ErrEmptyKey     = errors.New("empty key")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrEmptyAnswer  = errors.New("empty answer")
	ErrConfidence   = errors.New("confidence out of range [0,1]")
)

// Entry pairs a canonical query phrase with its prepared answer
type Entry struct {
	Key    string
	Record model.ResponseRecord
}

// Catalog is an immutable, ordered set of entries.
// Iteration order is insertion order.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog, normalizing keys to trimmed lower case
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		key := NormalizeKey(e.Key)
		if key == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyKey)
		}
		if _, exists := c.index[key]; exists {
			return nil, fmt.Errorf("entry %d %q: %w", i, key, ErrDuplicateKey)
		}
		if strings.TrimSpace(e.Record.Answer) == "" {
			return nil, fmt.Errorf("entry %q: %w", key, ErrEmptyAnswer)
		}
		if e.Record.Confidence < 0 || e.Record.Confidence > 1 {
			return nil, fmt.Errorf("entry %q: %w: %v", key, ErrConfidence, e.Record.Confidence)
		}

		c.index[key] = len(c.entries)
		c.entries = append(c.entries, Entry{Key: key, Record: e.Record.Clone()})
	}

	return c, nil
}

// NormalizeKey lower-cases a phrase and trims surrounding whitespace.
// Resolver queries and cache keys use the same normalization.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the entries in insertion order
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = Entry{Key: e.Key, Record: e.Record.Clone()}
	}
	return out
}

// Lookup returns the record stored under an exact key
func (c *Catalog) Lookup(key string) (model.ResponseRecord, bool) {
	i, ok := c.index[NormalizeKey(key)]
	if !ok {
		return model.ResponseRecord{}, false
	}
	return c.entries[i].Record.Clone(), true
}

// Each calls fn for every entry in order until fn returns false.
// Records are passed by value but share the cited float slice; fn must not modify it.
func (c *Catalog) Each(fn func(key string, rec model.ResponseRecord) bool) {
	for _, e := range c.entries {
		if !fn(e.Key, e.Record) {
			return
		}
	}
}
