package cases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type caseRepoPG struct{ pool *pgxpool.Pool }

func NewCaseRepoPG(pool *pgxpool.Pool) CaseRepository {
	return &caseRepoPG{pool: pool}
}

const caseCols = `id, identification, name, surname, phone, age, gender,
	care_provider, symptoms, probabilities, status,
	latitude, longitude, municipality, neighborhood,
	permanent_residence, rural_zone, rural_zone_name, created_at`

func scanCase(row pgx.Row) (*Case, error) {
	var c Case
	err := row.Scan(&c.ID, &c.Identification, &c.Name, &c.Surname, &c.Phone, &c.Age, &c.Gender,
		&c.CareProvider, &c.Symptoms, &c.Probabilities, &c.Status,
		&c.Latitude, &c.Longitude, &c.Municipality, &c.Neighborhood,
		&c.PermanentResidence, &c.RuralZone, &c.RuralZoneName, &c.CreatedAt)
	return &c, err
}

func (r *caseRepoPG) Create(ctx context.Context, c *Case) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO cases (identification, name, surname, phone, age, gender,
			care_provider, symptoms, probabilities, status,
			latitude, longitude, municipality, neighborhood,
			permanent_residence, rural_zone, rural_zone_name)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING id, created_at`,
		c.Identification, c.Name, c.Surname, c.Phone, c.Age, c.Gender,
		c.CareProvider, c.Symptoms, c.Probabilities, c.Status,
		c.Latitude, c.Longitude, c.Municipality, c.Neighborhood,
		c.PermanentResidence, c.RuralZone, c.RuralZoneName)

	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateIdentification
		}
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

func (r *caseRepoPG) GetByID(ctx context.Context, id int64) (*Case, error) {
	c, err := scanCase(r.pool.QueryRow(ctx, `SELECT `+caseCols+` FROM cases WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCaseNotFound
		}
		return nil, fmt.Errorf("get case %d: %w", id, err)
	}
	return c, nil
}

func (r *caseRepoPG) FindByIdentification(ctx context.Context, identification string) (*Case, error) {
	c, err := scanCase(r.pool.QueryRow(ctx,
		`SELECT `+caseCols+` FROM cases WHERE identification = $1`, identification))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find case by identification: %w", err)
	}
	return c, nil
}

func (r *caseRepoPG) Search(ctx context.Context, filter SearchFilter) ([]*Case, int, error) {
	var (
		clauses []string
		args    []interface{}
	)
	addClause := func(column string, value interface{}) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if filter.Identification != nil {
		addClause("identification", *filter.Identification)
	}
	if filter.Municipality != nil {
		addClause("municipality", *filter.Municipality)
	}
	if filter.Status != nil {
		addClause("status", *filter.Status)
	}
	if filter.CareProvider != nil {
		addClause("care_provider", *filter.CareProvider)
	}
	if filter.RuralZone != nil {
		addClause("rural_zone", *filter.RuralZone)
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cases`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cases: %w", err)
	}

	query := `SELECT ` + caseCols + ` FROM cases` + where + ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search cases: %w", err)
	}
	defer rows.Close()

	var items []*Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan case: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("search cases: %w", err)
	}
	return items, total, nil
}

// Update applies the partial field set with COALESCE semantics: nil
// fields keep their stored value. A consequence is that a set phone or
// care provider cannot be cleared back to NULL through this path; the
// update contract only sets values, it never blanks them.
func (r *caseRepoPG) Update(ctx context.Context, id int64, fields UpdateFields) (*Case, error) {
	c, err := scanCase(r.pool.QueryRow(ctx, `
		UPDATE cases SET
			status              = COALESCE($2, status),
			care_provider       = COALESCE($3, care_provider),
			phone               = COALESCE($4, phone),
			permanent_residence = COALESCE($5, permanent_residence)
		WHERE id = $1
		RETURNING `+caseCols,
		id, fields.Status, fields.CareProvider, fields.Phone, fields.PermanentResidence))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCaseNotFound
		}
		return nil, fmt.Errorf("update case %d: %w", id, err)
	}
	return c, nil
}

func (r *caseRepoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete case %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCaseNotFound
	}
	return nil
}
