package stats

import (
	"context"
	"math"

	"github.com/rs/zerolog"
)

// Cache is an optional read-through cache in front of Summarize. A nil
// Cache disables caching entirely; cache failures fall through to the
// repository and are never surfaced to the caller.
type Cache interface {
	Get(ctx context.Context) (*Statistics, bool)
	Set(ctx context.Context, s *Statistics)
}

type Service struct {
	repo   StatsRepository
	cache  Cache
	logger zerolog.Logger
}

func NewService(repo StatsRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// SetCache installs an optional statistics cache.
func (s *Service) SetCache(c Cache) { s.cache = c }

// Summarize computes the aggregate surveillance statistics. Each grouped
// query reads whatever state existed when it executed; an empty registry
// yields zero counts, empty maps, and a nil average age.
func (s *Service) Summarize(ctx context.Context) (*Statistics, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	result := &Statistics{TotalCases: total}

	for dimension, target := range map[string]*map[string]int{
		DimMunicipality: &result.ByMunicipality,
		DimStatus:       &result.ByStatus,
		DimGender:       &result.ByGender,
		DimCareProvider: &result.ByCareProvider,
	} {
		counts, err := s.repo.GroupCount(ctx, dimension)
		if err != nil {
			return nil, err
		}
		*target = counts
	}

	result.RuralCases, result.UrbanCases, err = s.repo.CountRural(ctx)
	if err != nil {
		return nil, err
	}

	avg, err := s.repo.AverageAge(ctx)
	if err != nil {
		return nil, err
	}
	if avg != nil {
		rounded := math.Round(*avg*10) / 10
		result.AverageAge = &rounded
	}

	if s.cache != nil {
		s.cache.Set(ctx, result)
	}
	return result, nil
}
