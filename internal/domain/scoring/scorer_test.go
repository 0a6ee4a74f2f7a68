package scoring

import (
	"math"
	"reflect"
	"testing"
)

func TestScore_EmptyInput(t *testing.T) {
	result := Score(nil)
	if len(result) != 0 {
		t.Errorf("expected empty result for empty symptom set, got %v", result)
	}

	result = Score([]string{})
	if len(result) != 0 {
		t.Errorf("expected empty result for empty slice, got %v", result)
	}
}

func TestScore_UnknownVocabulary(t *testing.T) {
	result := Score([]string{"tos", "estornudos", "mareo"})
	if len(result) != 0 {
		t.Errorf("expected empty result for unknown symptoms, got %v", result)
	}
}

func TestScore_BoundsAndPrecision(t *testing.T) {
	inputs := [][]string{
		{"fiebre_alta"},
		{"fiebre_alta", "dolor_articular", "erupciones"},
		{"fiebre_ciclica", "escalofrios", "sudoracion", "fatiga"},
		{"ictericia", "sangrado", "vomitos"},
		{"erupciones", "conjuntivitis", "fiebre_baja", "dolor_articular", "nauseas"},
	}
	for _, symptoms := range inputs {
		for disease, prob := range Score(symptoms) {
			if prob < 0 || prob > 100 {
				t.Errorf("Score(%v)[%s] = %v out of [0,100]", symptoms, disease, prob)
			}
			if math.Round(prob*100)/100 != prob {
				t.Errorf("Score(%v)[%s] = %v has more than 2 decimal places", symptoms, disease, prob)
			}
		}
	}
}

func TestScore_FullProfileYields100(t *testing.T) {
	for disease, weights := range DiseaseProfiles {
		symptoms := make([]string, 0, len(weights))
		for s := range weights {
			symptoms = append(symptoms, s)
		}
		result := Score(symptoms)
		if result[disease] != 100.00 {
			t.Errorf("full symptom set for %s scored %v, want 100.00", disease, result[disease])
		}
	}
}

func TestScore_DuplicatesCollapse(t *testing.T) {
	once := Score([]string{"fiebre_alta", "erupciones"})
	repeated := Score([]string{"fiebre_alta", "fiebre_alta", "erupciones", "erupciones"})
	if !reflect.DeepEqual(once, repeated) {
		t.Errorf("duplicate symptoms changed the result: %v vs %v", once, repeated)
	}
}

func TestScore_Idempotent(t *testing.T) {
	symptoms := []string{"fiebre_alta", "dolor_articular", "erupciones"}
	first := Score(symptoms)
	second := Score(symptoms)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("scoring is not idempotent: %v vs %v", first, second)
	}
}

func TestScore_ZeroDiseasesOmitted(t *testing.T) {
	// Hits dengue, chikungunya, zika and fiebre_amarilla but not malaria.
	result := Score([]string{"fiebre_alta", "dolor_articular", "erupciones"})

	if _, ok := result["malaria"]; ok {
		t.Error("malaria should be omitted when no symptom matches")
	}
	if result["chikungunya"] == 0 {
		t.Error("expected non-zero probability for chikungunya")
	}
	if result["dengue"] == 0 {
		t.Error("expected non-zero probability for dengue")
	}
}

func TestScore_ExactValues(t *testing.T) {
	// chikungunya max = 1+3+1+2 = 7; matched = 1+3+1 = 5 -> 71.43
	// dengue max = 2+1+2+2+1 = 8; matched = 2+2 = 4 -> 50.00
	result := Score([]string{"fiebre_alta", "dolor_articular", "erupciones"})

	if got := result["chikungunya"]; got != 71.43 {
		t.Errorf("chikungunya = %v, want 71.43", got)
	}
	if got := result["dengue"]; got != 50.00 {
		t.Errorf("dengue = %v, want 50.00", got)
	}
}

func TestMaxScore(t *testing.T) {
	if got := MaxScore("dengue"); got != 8 {
		t.Errorf("MaxScore(dengue) = %d, want 8", got)
	}
	if got := MaxScore("no_such_disease"); got != 0 {
		t.Errorf("MaxScore(unknown) = %d, want 0", got)
	}
}
