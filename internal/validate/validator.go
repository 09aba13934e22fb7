// Package validate checks a catalog for answers that cannot be trusted
// or cannot be reached.
package validate

import (
	"fmt"
	"strings"

	"github.com/ppiankov/floatchat/internal/catalog"
	"github.com/ppiankov/floatchat/internal/resolve"
)

// Severity ranks a finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code identifies the kind of finding
type Code string

const (
	CodeUnknownFloat  Code = "unknown_float"
	CodeNoCitations   Code = "no_citations"
	CodeExternalLink  Code = "external_link"
	CodePhysicsFailed Code = "physics_failed"
	CodeShadowedEntry Code = "shadowed_entry"
)

// Finding is one problem with a catalog entry
type Finding struct {
	Key      string   `json:"key"`
	Code     Code     `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s: %s", f.Severity, f.Key, f.Message)
}

// FloatIndex reports whether a float id exists
type FloatIndex interface {
	Has(id string) bool
}

// Validator checks catalog entries against the float fleet
type Validator struct {
	floats     FloatIndex
	linkPrefix string
}

// NewValidator creates a validator. Visual links must start with "/dashboard".
func NewValidator(floats FloatIndex) *Validator {
	return &Validator{
		floats:     floats,
		linkPrefix: "/dashboard",
	}
}

// Validate returns every finding, in catalog order
func (v *Validator) Validate(c *catalog.Catalog) []Finding {
	var findings []Finding
	resolver := resolve.New(c)

	for _, e := range c.Entries() {
		rec := e.Record

		if len(rec.CitedFloats) == 0 {
			findings = append(findings, Finding{
				Key:      e.Key,
				Code:     CodeNoCitations,
				Severity: SeverityWarning,
				Message:  "answer cites no floats",
			})
		}

		for _, id := range rec.CitedFloats {
			if !v.floats.Has(id) {
				findings = append(findings, Finding{
					Key:      e.Key,
					Code:     CodeUnknownFloat,
					Severity: SeverityError,
					Message:  fmt.Sprintf("cited float %s is not in the fleet", id),
				})
			}
		}

		if !strings.HasPrefix(rec.VisualLink, v.linkPrefix) {
			findings = append(findings, Finding{
				Key:      e.Key,
				Code:     CodeExternalLink,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("visual link %q is outside %s", rec.VisualLink, v.linkPrefix),
			})
		}

		if !rec.PhysicsCheck.Passed {
			findings = append(findings, Finding{
				Key:      e.Key,
				Code:     CodePhysicsFailed,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("physics check failed: %s", rec.PhysicsCheck.Notes),
			})
		}

		if res := resolver.Resolve(e.Key); res.Key != e.Key {
			findings = append(findings, Finding{
				Key:      e.Key,
				Code:     CodeShadowedEntry,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("asking the exact key resolves to earlier entry %q", res.Key),
			})
		}
	}

	return findings
}

// HasErrors reports whether any finding is error severity
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
