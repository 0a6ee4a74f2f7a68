// Package stats computes surveillance statistics over the case registry.
// Aggregation is a point-in-time read: each grouped query reflects the
// committed state at its own execution time, and no snapshot consistency
// is promised across groups within one summary.
package stats

// Statistics is the aggregate summary served to surveillance consumers.
// AverageAge is nil (JSON null) when the registry is empty; it is never
// computed as a division by zero. Records with no value for a grouping
// dimension are excluded from that dimension's map.
type Statistics struct {
	TotalCases     int            `json:"total_cases"`
	ByMunicipality map[string]int `json:"by_municipality"`
	ByStatus       map[string]int `json:"by_status"`
	ByGender       map[string]int `json:"by_gender"`
	ByCareProvider map[string]int `json:"by_care_provider"`
	RuralCases     int            `json:"rural_cases"`
	UrbanCases     int            `json:"urban_cases"`
	AverageAge     *float64       `json:"average_age"`
}
