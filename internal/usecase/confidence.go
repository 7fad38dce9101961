package usecase

import "github.com/shelfmatch/backend/internal/domain"

// Field-presence confidence weights. Downstream review thresholds (e.g.
// "< 0.7 needs review") depend on these exact values.
const (
	confidenceBase        = 0.5
	confidenceName        = 0.2 // name longer than 5 characters
	confidenceBrand       = 0.1
	confidenceCategory    = 0.1
	confidenceSize        = 0.05
	confidenceDescription = 0.05
)

// ScoreConfidence computes a field-completeness confidence in [0,1] for an
// extracted or matched product. Additive heuristic, not a statistical model:
// the more identifying fields present, the more trustworthy the record.
func ScoreConfidence(p domain.Product) float64 {
	score := confidenceBase

	if len(p.Name) > 5 {
		score += confidenceName
	}
	if p.Brand != "" {
		score += confidenceBrand
	}
	if p.Category != "" {
		score += confidenceCategory
	}
	if p.Size != "" {
		score += confidenceSize
	}
	if p.Description != "" {
		score += confidenceDescription
	}

	return clamp01(score)
}

// clamp01 bounds a score to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
