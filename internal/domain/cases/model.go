// Package cases owns the surveillance case registry: the validated case
// record, the submission gate in front of it, and the repository and
// service that enforce the identification-uniqueness invariant.
package cases

import "time"

// StatusPending is the lifecycle status assigned to newly created cases.
// Status is an open enumeration: the registry does not restrict which
// value may follow which.
const StatusPending = "pending"

// DefaultMunicipality is the fallback municipality recorded when a
// submission does not name one.
const DefaultMunicipality = "Cúcuta"

// Case is one persisted surveillance record for a reported suspected
// vector-borne illness. The registry assigns ID and CreatedAt; both are
// immutable afterwards, as is Identification.
type Case struct {
	ID             int64   `db:"id" json:"id"`
	Identification string  `db:"identification" json:"identification"`
	Name           string  `db:"name" json:"name"`
	Surname        *string `db:"surname" json:"surname,omitempty"`
	Phone          *string `db:"phone" json:"phone,omitempty"`
	Age            int     `db:"age" json:"age"`
	Gender         *string `db:"gender" json:"gender,omitempty"`

	CareProvider  *string            `db:"care_provider" json:"care_provider,omitempty"`
	Symptoms      []string           `db:"symptoms" json:"symptoms"`
	Probabilities map[string]float64 `db:"probabilities" json:"probabilities,omitempty"`
	Status        string             `db:"status" json:"status"`

	Latitude           float64 `db:"latitude" json:"latitude"`
	Longitude          float64 `db:"longitude" json:"longitude"`
	Municipality       string  `db:"municipality" json:"municipality"`
	Neighborhood       *string `db:"neighborhood" json:"neighborhood,omitempty"`
	PermanentResidence bool    `db:"permanent_residence" json:"permanent_residence"`
	RuralZone          bool    `db:"rural_zone" json:"rural_zone"`
	RuralZoneName      *string `db:"rural_zone_name" json:"rural_zone_name,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SearchFilter holds the optional predicates for listing cases. Set fields
// are combined with logical AND. Limit caps the result count; zero means
// the repository default.
type SearchFilter struct {
	Identification *string
	Municipality   *string
	Status         *string
	CareProvider   *string
	RuralZone      *bool
	Limit          int
}

// UpdateFields is the partial field set accepted by Update. Only these
// four attributes are mutable after creation; nil fields are left as-is.
type UpdateFields struct {
	Status             *string `json:"status,omitempty"`
	CareProvider       *string `json:"care_provider,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	PermanentResidence *bool   `json:"permanent_residence,omitempty"`
}

// Empty reports whether the update carries no mutable field at all.
func (u UpdateFields) Empty() bool {
	return u.Status == nil && u.CareProvider == nil && u.Phone == nil && u.PermanentResidence == nil
}
