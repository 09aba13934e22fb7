package score

import (
	"math"

	"github.com/ppiankov/floatchat/internal/model"
)

const (
	highThreshold   = 0.9
	mediumThreshold = 0.7
)

// Band classifies a confidence value for display
func Band(confidence float64) model.ConfidenceBand {
	switch {
	case confidence >= highThreshold:
		return model.BandHigh
	case confidence >= mediumThreshold:
		return model.BandMedium
	default:
		return model.BandLow
	}
}

// roundingSlack absorbs binary error in decimal halves (0.285*100 is 28.4999...)
const roundingSlack = 1e-9

// Percent renders confidence as a whole percentage, rounding halves up,
// e.g. 0.89 -> 89, 0.285 -> 29
func Percent(confidence float64) int {
	return int(math.Round(confidence*100 + roundingSlack))
}

// Summarize aggregates a batch of answers
func Summarize(answers []model.Answer) model.BatchSummary {
	s := model.BatchSummary{
		Total: len(answers),
		Bands: map[model.ConfidenceBand]int{
			model.BandHigh:   0,
			model.BandMedium: 0,
			model.BandLow:    0,
		},
		CitedFloats: []string{},
	}

	if len(answers) == 0 {
		return s
	}

	seen := make(map[string]bool)
	var sum float64
	for _, a := range answers {
		if a.Matched {
			s.Matched++
		} else {
			s.Fallback++
		}

		sum += a.Response.Confidence
		s.Bands[Band(a.Response.Confidence)]++

		for _, id := range a.Response.CitedFloats {
			if !seen[id] {
				seen[id] = true
				s.CitedFloats = append(s.CitedFloats, id)
			}
		}
	}

	s.MeanConfidence = sum / float64(len(answers))
	return s
}
