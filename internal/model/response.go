package model

import "time"

// ResponseRecord is a prepared answer to an ocean data question
type ResponseRecord struct {
	Answer       string     `json:"answer" yaml:"answer"`               // Natural-language answer text
	CitedFloats  []string   `json:"cited_floats" yaml:"cited_floats"`   // Float identifiers the answer draws on
	Confidence   float64    `json:"confidence" yaml:"confidence"`       // 0.0-1.0
	VisualLink   string     `json:"visual_link" yaml:"visual_link"`     // Dashboard anchor (e.g., "/dashboard#profile")
	PhysicsCheck Validation `json:"physics_check" yaml:"physics_check"` // Plausibility check attached to the answer
}

// Validation is the outcome of the physics check on an answer
type Validation struct {
	Passed bool   `json:"passed" yaml:"passed"`
	Notes  string `json:"notes" yaml:"notes"`
}

// Clone returns a deep copy of the record
func (r ResponseRecord) Clone() ResponseRecord {
	out := r
	if r.CitedFloats != nil {
		out.CitedFloats = append([]string(nil), r.CitedFloats...)
	}
	return out
}

// Answer is the result of one chat turn
type Answer struct {
	Query      string         `json:"query"`
	Role       Role           `json:"role"`
	Matched    bool           `json:"matched"`               // Whether a catalog key matched
	MatchedKey string         `json:"matched_key,omitempty"` // Catalog key that produced the record
	Response   ResponseRecord `json:"response"`
	AnsweredAt time.Time      `json:"answered_at"`
}

// MessageType distinguishes transcript participants
type MessageType string

const (
	MessageUser      MessageType = "user"
	MessageAssistant MessageType = "assistant"
)

// Message is a single line in a chat transcript
type Message struct {
	ID        string          `json:"id"`
	Type      MessageType     `json:"type"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
	Response  *ResponseRecord `json:"response,omitempty"` // Set on assistant answers only
}

// ConfidenceBand buckets a confidence value for display
type ConfidenceBand string

const (
	BandHigh   ConfidenceBand = "high"   // >= 0.9
	BandMedium ConfidenceBand = "medium" // >= 0.7
	BandLow    ConfidenceBand = "low"
)

// BatchSummary aggregates a set of answers
type BatchSummary struct {
	Total          int                    `json:"total"`
	Matched        int                    `json:"matched"`
	Fallback       int                    `json:"fallback"`
	MeanConfidence float64                `json:"mean_confidence"`
	Bands          map[ConfidenceBand]int `json:"bands"`
	CitedFloats    []string               `json:"cited_floats"` // Distinct, in first-seen order
}
