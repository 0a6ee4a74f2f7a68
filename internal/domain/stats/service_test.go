package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type mockStatsRepo struct {
	total    int
	groups   map[string]map[string]int
	rural    int
	urban    int
	avg      *float64
	groupErr error

	countCalls int
}

func (m *mockStatsRepo) CountAll(context.Context) (int, error) {
	m.countCalls++
	return m.total, nil
}

func (m *mockStatsRepo) GroupCount(_ context.Context, dimension string) (map[string]int, error) {
	if m.groupErr != nil {
		return nil, m.groupErr
	}
	counts, ok := m.groups[dimension]
	if !ok {
		return map[string]int{}, nil
	}
	return counts, nil
}

func (m *mockStatsRepo) CountRural(context.Context) (int, int, error) {
	return m.rural, m.urban, nil
}

func (m *mockStatsRepo) AverageAge(context.Context) (*float64, error) {
	return m.avg, nil
}

// memoryCache is a trivial in-process Cache for tests.
type memoryCache struct {
	stored *Statistics
	hits   int
}

func (c *memoryCache) Get(context.Context) (*Statistics, bool) {
	if c.stored == nil {
		return nil, false
	}
	c.hits++
	return c.stored, true
}

func (c *memoryCache) Set(_ context.Context, s *Statistics) { c.stored = s }

func TestSummarize_EmptyRegistry(t *testing.T) {
	svc := NewService(&mockStatsRepo{}, zerolog.Nop())

	got, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got.TotalCases != 0 {
		t.Errorf("total = %d", got.TotalCases)
	}
	if got.ByMunicipality == nil || len(got.ByMunicipality) != 0 {
		t.Errorf("by_municipality = %v, want empty map", got.ByMunicipality)
	}
	if got.ByStatus == nil || got.ByGender == nil || got.ByCareProvider == nil {
		t.Error("grouped maps must be empty, not nil")
	}
	if got.AverageAge != nil {
		t.Errorf("average age = %v, want nil for empty registry", *got.AverageAge)
	}
}

func TestSummarize_Populated(t *testing.T) {
	avg := 41.666
	repo := &mockStatsRepo{
		total: 7,
		groups: map[string]map[string]int{
			DimMunicipality: {"Cúcuta": 5, "Los Patios": 2},
			DimStatus:       {"pending": 6, "confirmed": 1},
			DimGender:       {"femenino": 4, "masculino": 3},
			DimCareProvider: {"Hospital Erasmo Meoz": 3},
		},
		rural: 2,
		urban: 5,
		avg:   &avg,
	}
	svc := NewService(repo, zerolog.Nop())

	got, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got.TotalCases != 7 {
		t.Errorf("total = %d", got.TotalCases)
	}
	if got.ByMunicipality["Cúcuta"] != 5 {
		t.Errorf("by_municipality = %v", got.ByMunicipality)
	}
	if got.RuralCases != 2 || got.UrbanCases != 5 {
		t.Errorf("rural/urban = %d/%d", got.RuralCases, got.UrbanCases)
	}
	if got.AverageAge == nil || *got.AverageAge != 41.7 {
		t.Errorf("average age = %v, want 41.7", got.AverageAge)
	}
}

func TestSummarize_RepoError(t *testing.T) {
	repo := &mockStatsRepo{groupErr: errors.New("connection reset")}
	svc := NewService(repo, zerolog.Nop())

	if _, err := svc.Summarize(context.Background()); err == nil {
		t.Fatal("expected error from failing grouped query")
	}
}

func TestSummarize_CacheReadThrough(t *testing.T) {
	repo := &mockStatsRepo{total: 3}
	svc := NewService(repo, zerolog.Nop())
	cache := &memoryCache{}
	svc.SetCache(cache)

	first, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("first summarize: %v", err)
	}
	if cache.stored == nil {
		t.Fatal("result not written to cache")
	}

	repo.total = 99
	second, err := svc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("second summarize: %v", err)
	}
	if second.TotalCases != first.TotalCases {
		t.Errorf("cache miss: total = %d, want cached %d", second.TotalCases, first.TotalCases)
	}
	if cache.hits != 1 {
		t.Errorf("cache hits = %d, want 1", cache.hits)
	}
	if repo.countCalls != 1 {
		t.Errorf("repo queried %d times, want 1", repo.countCalls)
	}
}
