package scoring

// DiseaseProfiles maps each tracked vector-borne disease to its symptom
// weight table. Weights are positive integers; a disease's maximum
// achievable score is the sum of its weights. The table is static and
// immutable for the process lifetime.
var DiseaseProfiles = map[string]map[string]int{
	"dengue": {
		"fiebre_alta":    2,
		"dolor_cabeza":   1,
		"erupciones":     2,
		"dolor_muscular": 2,
		"nauseas":        1,
	},
	"zika": {
		"fiebre_baja":     2,
		"erupciones":      3,
		"conjuntivitis":   2,
		"dolor_articular": 1,
	},
	"chikungunya": {
		"fiebre_alta":     1,
		"dolor_articular": 3,
		"erupciones":      1,
		"fatiga":          2,
	},
	"malaria": {
		"fiebre_ciclica": 3,
		"escalofrios":    2,
		"sudoracion":     2,
		"fatiga":         1,
	},
	"fiebre_amarilla": {
		"fiebre_alta":     2,
		"ictericia":       3,
		"dolor_abdominal": 2,
		"vomitos":         2,
		"sangrado":        3,
	},
}

// maxScores holds the precomputed maximum achievable score per disease.
var maxScores = func() map[string]int {
	m := make(map[string]int, len(DiseaseProfiles))
	for disease, weights := range DiseaseProfiles {
		total := 0
		for _, w := range weights {
			total += w
		}
		m[disease] = total
	}
	return m
}()

// MaxScore returns the maximum achievable score for a disease, or 0 if the
// disease is unknown.
func MaxScore(disease string) int {
	return maxScores[disease]
}
