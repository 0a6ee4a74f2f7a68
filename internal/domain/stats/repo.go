package stats

import "context"

// Dimension names accepted by GroupCount.
const (
	DimMunicipality = "municipality"
	DimStatus       = "status"
	DimGender       = "gender"
	DimCareProvider = "care_provider"
)

// StatsRepository is the read-only aggregate contract over the registry's
// store: counts, grouped counts, and the age average. AverageAge returns
// nil when there are no cases.
type StatsRepository interface {
	CountAll(ctx context.Context) (int, error)
	GroupCount(ctx context.Context, dimension string) (map[string]int, error)
	CountRural(ctx context.Context) (rural int, urban int, err error)
	AverageAge(ctx context.Context) (*float64, error)
}
