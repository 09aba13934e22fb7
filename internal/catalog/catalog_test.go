package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/floatchat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(answer string, confidence float64) model.ResponseRecord {
	return model.ResponseRecord{
		Answer:      answer,
		CitedFloats: []string{"ARGO001"},
		Confidence:  confidence,
		VisualLink:  "/dashboard",
		PhysicsCheck: model.Validation{
			Passed: true,
			Notes:  "ok",
		},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{
			name:    "empty catalog is valid",
			entries: nil,
		},
		{
			name:    "valid entries",
			entries: []Entry{{Key: "a b", Record: record("x", 0.5)}, {Key: "c d", Record: record("y", 1)}},
		},
		{
			name:    "blank key",
			entries: []Entry{{Key: "   ", Record: record("x", 0.5)}},
			wantErr: ErrEmptyKey,
		},
		{
			name:    "duplicate after normalization",
			entries: []Entry{{Key: "Ocean Heat", Record: record("x", 0.5)}, {Key: " ocean heat ", Record: record("y", 0.5)}},
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "empty answer",
			entries: []Entry{{Key: "a", Record: record("  ", 0.5)}},
			wantErr: ErrEmptyAnswer,
		},
		{
			name:    "confidence above one",
			entries: []Entry{{Key: "a", Record: record("x", 1.01)}},
			wantErr: ErrConfidence,
		},
		{
			name:    "negative confidence",
			entries: []Entry{{Key: "a", Record: record("x", -0.1)}},
			wantErr: ErrConfidence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.entries)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.entries), c.Len())
		})
	}
}

func TestNew_NormalizesKeysAndKeepsOrder(t *testing.T) {
	c, err := New([]Entry{
		{Key: "  Zebra Mussels ", Record: record("z", 0.1)},
		{Key: "ALGAE bloom", Record: record("a", 0.2)},
	})
	require.NoError(t, err)

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "zebra mussels", entries[0].Key)
	assert.Equal(t, "algae bloom", entries[1].Key)
}

func TestCatalog_IsImmutable(t *testing.T) {
	src := []Entry{{Key: "a b", Record: record("x", 0.5)}}
	c, err := New(src)
	require.NoError(t, err)

	src[0].Record.CitedFloats[0] = "MUTATED"

	entries := c.Entries()
	entries[0].Record.CitedFloats[0] = "MUTATED"
	entries[0].Record.Answer = "changed"

	rec, ok := c.Lookup("a b")
	require.True(t, ok)
	assert.Equal(t, "x", rec.Answer)
	assert.Equal(t, []string{"ARGO001"}, rec.CitedFloats)

	rec.CitedFloats[0] = "MUTATED"
	again, _ := c.Lookup("a b")
	assert.Equal(t, []string{"ARGO001"}, again.CitedFloats)
}

func TestLookup(t *testing.T) {
	c := Default()

	rec, ok := c.Lookup("Salinity Profiles Near Equator March 2023")
	require.True(t, ok)
	assert.Equal(t, 0.89, rec.Confidence)

	_, ok = c.Lookup("salinity")
	assert.False(t, ok)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, 3, c.Len())

	for _, e := range c.Entries() {
		assert.Equal(t, NormalizeKey(e.Key), e.Key)
		assert.NotEmpty(t, e.Record.Answer)
		assert.GreaterOrEqual(t, e.Record.Confidence, 0.0)
		assert.LessOrEqual(t, e.Record.Confidence, 1.0)
		assert.True(t, e.Record.PhysicsCheck.Passed)
	}
}

func TestEach_StopsEarly(t *testing.T) {
	var seen []string
	Default().Each(func(key string, _ model.ResponseRecord) bool {
		seen = append(seen, key)
		return len(seen) < 2
	})
	assert.Equal(t, []string{
		"salinity profiles near equator march 2023",
		"bgc parameters arabian sea last 6 months",
	}, seen)
}

func TestSuggestedQueries(t *testing.T) {
	q := SuggestedQueries()
	assert.Len(t, q, 6)
	q[0] = "changed"
	assert.NotEqual(t, "changed", SuggestedQueries()[0])
}

func TestEncodeLoad_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))
	assert.Contains(t, buf.String(), "cited_floats:")
	assert.Contains(t, buf.String(), "physics_check:")

	loaded, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default().Entries(), loaded.Entries())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(strings.NewReader("entries:\n  - key: a\n    answer: x\n    confidence: 3\n"))
	assert.ErrorIs(t, err, ErrConfidence)

	_, err = Load(strings.NewReader("entries:\n  - key: a\n    answer: x\n    bogus: 1\n"))
	assert.Error(t, err)

	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `entries:
  - key: "Ocean Heat Content"
    answer: "Heat content rose."
    cited_floats: [ARGO002]
    confidence: 0.8
    visual_link: /dashboard#heat
    physics_check:
      passed: true
      notes: checked
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	rec, ok := c.Lookup("ocean heat content")
	require.True(t, ok)
	assert.Equal(t, []string{"ARGO002"}, rec.CitedFloats)
	assert.Equal(t, "/dashboard#heat", rec.VisualLink)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
