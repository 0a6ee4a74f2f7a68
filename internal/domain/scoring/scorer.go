// Package scoring implements the rule-based symptom scorer. Reported
// symptoms are matched against static disease weight profiles and turned
// into a per-disease probability percentage. Scoring is pure: no state,
// no I/O, and it never fails — unknown symptom names are ignored so the
// scorer tolerates vocabulary drift between client and server.
package scoring

import "math"

// Score maps a set of reported symptoms to a probability per disease.
// Input has set semantics: duplicates collapse. For each disease the
// matched weights are summed, divided by the disease's maximum achievable
// score, and expressed as a percentage in [0, 100] rounded to two decimal
// places. Diseases scoring zero are omitted; an empty result means no
// elevated risk.
func Score(symptoms []string) map[string]float64 {
	seen := make(map[string]struct{}, len(symptoms))
	for _, s := range symptoms {
		seen[s] = struct{}{}
	}

	probabilities := make(map[string]float64)
	for disease, weights := range DiseaseProfiles {
		max := maxScores[disease]
		if max == 0 {
			continue
		}
		points := 0
		for symptom := range seen {
			points += weights[symptom]
		}
		if points == 0 {
			continue
		}
		probabilities[disease] = round2(float64(points) / float64(max) * 100)
	}
	return probabilities
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
