package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type statsRepoPG struct{ pool *pgxpool.Pool }

func NewStatsRepoPG(pool *pgxpool.Pool) StatsRepository {
	return &statsRepoPG{pool: pool}
}

// groupColumns whitelists the dimensions GroupCount may interpolate into
// SQL. Anything else is a programming error.
var groupColumns = map[string]bool{
	DimMunicipality: true,
	DimStatus:       true,
	DimGender:       true,
	DimCareProvider: true,
}

func (r *statsRepoPG) CountAll(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cases`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count cases: %w", err)
	}
	return total, nil
}

func (r *statsRepoPG) GroupCount(ctx context.Context, dimension string) (map[string]int, error) {
	if !groupColumns[dimension] {
		return nil, fmt.Errorf("unknown grouping dimension %q", dimension)
	}

	// NULL and empty values are excluded: a record without a gender or
	// care provider does not form its own group.
	query := fmt.Sprintf(
		`SELECT %s, COUNT(*) FROM cases WHERE %s IS NOT NULL AND %s <> '' GROUP BY %s`,
		dimension, dimension, dimension, dimension)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("group count by %s: %w", dimension, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scan group count: %w", err)
		}
		counts[key] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("group count by %s: %w", dimension, err)
	}
	return counts, nil
}

func (r *statsRepoPG) CountRural(ctx context.Context) (int, int, error) {
	var rural, urban int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(CASE WHEN rural_zone THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN rural_zone THEN 0 ELSE 1 END), 0)
		FROM cases`).Scan(&rural, &urban)
	if err != nil {
		return 0, 0, fmt.Errorf("count rural split: %w", err)
	}
	return rural, urban, nil
}

func (r *statsRepoPG) AverageAge(ctx context.Context) (*float64, error) {
	var avg *float64
	if err := r.pool.QueryRow(ctx, `SELECT AVG(age) FROM cases`).Scan(&avg); err != nil {
		return nil, fmt.Errorf("average age: %w", err)
	}
	return avg, nil
}
