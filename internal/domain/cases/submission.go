package cases

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt unmarshals from either a JSON number or a numeric string.
// Client payloads historically sent age both ways.
type FlexInt struct {
	value int
	set   bool
}

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// Not convertible; leave unset so validation reports it.
		return nil
	}
	f.value = n
	f.set = true
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// Submission is the strongly-typed parse of a raw case payload. It is the
// only place untyped client input is read; everything downstream works
// with a validated Case.
type Submission struct {
	Identification string   `json:"identification"`
	Name           string   `json:"name"`
	Surname        string   `json:"surname"`
	Phone          string   `json:"phone"`
	Age            FlexInt  `json:"age"`
	Gender         string   `json:"gender"`
	CareProvider   string   `json:"care_provider"`
	Symptoms       []string `json:"symptoms"`

	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	Municipality       string   `json:"municipality"`
	Neighborhood       string   `json:"neighborhood"`
	PermanentResidence bool     `json:"permanent_residence"`
	RuralZone          bool     `json:"rural_zone"`
	RuralZoneName      string   `json:"rural_zone_name"`
}

const (
	minAge   = 1
	maxAge   = 120
	minPhone = 7
)

// Validate applies the submission field rules in precedence order, first
// failure wins. On success it returns a fully-typed Case ready for
// insertion: free text trimmed, municipality defaulted, rural zone name
// discarded when the rural flag is false, status set to pending. It
// performs no persistence; the registry's uniqueness check runs in the
// service between the identification rule and the rest of these.
//
// A latitude or longitude of exactly 0 is rejected the same as a missing
// one. That rejects a legitimate equator/prime-meridian coordinate; the
// behavior is kept as-is and pinned by tests.
func (s *Submission) Validate() (*Case, *ValidationError) {
	identification := strings.TrimSpace(s.Identification)
	if identification == "" {
		return nil, invalid("identification", "is required")
	}

	name := strings.TrimSpace(s.Name)
	if name == "" {
		return nil, invalid("name", "is required")
	}

	if !s.Age.set {
		return nil, invalid("age", "must be a whole number")
	}
	if s.Age.value < minAge || s.Age.value > maxAge {
		return nil, invalid("age", "must be between 1 and 120")
	}

	if s.Latitude == nil || *s.Latitude == 0 {
		return nil, invalid("latitude", "is required")
	}
	if s.Longitude == nil || *s.Longitude == 0 {
		return nil, invalid("longitude", "is required")
	}

	symptoms := make([]string, 0, len(s.Symptoms))
	for _, sym := range s.Symptoms {
		if trimmed := strings.TrimSpace(sym); trimmed != "" {
			symptoms = append(symptoms, trimmed)
		}
	}
	if len(symptoms) == 0 {
		return nil, invalid("symptoms", "at least one symptom is required")
	}

	phone := strings.TrimSpace(s.Phone)
	if phone != "" && len(phone) < minPhone {
		return nil, invalid("phone", "must have at least 7 characters")
	}

	municipality := strings.TrimSpace(s.Municipality)
	if municipality == "" {
		municipality = DefaultMunicipality
	}

	c := &Case{
		Identification:     identification,
		Name:               name,
		Surname:            optional(s.Surname),
		Phone:              optional(phone),
		Age:                s.Age.value,
		Gender:             optional(s.Gender),
		CareProvider:       optional(s.CareProvider),
		Symptoms:           symptoms,
		Status:             StatusPending,
		Latitude:           *s.Latitude,
		Longitude:          *s.Longitude,
		Municipality:       municipality,
		Neighborhood:       optional(s.Neighborhood),
		PermanentResidence: s.PermanentResidence,
		RuralZone:          s.RuralZone,
	}
	if s.RuralZone {
		c.RuralZoneName = optional(s.RuralZoneName)
	}
	return c, nil
}

// optional trims a free-text field and returns nil for blank values.
func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
