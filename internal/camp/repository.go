package camp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Camp, error)
	Popular(ctx context.Context, limit int) ([]*Camp, error)
	Search(ctx context.Context, pattern string) ([]*Camp, error)
	GetByID(ctx context.Context, id string) (*Camp, error)
	Create(ctx context.Context, c *Camp) error
	Update(ctx context.Context, id string, req UpdateRequest) (*Camp, error)
	Delete(ctx context.Context, id string) error
	IncrementParticipants(ctx context.Context, id string) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var campColumns = []string{
	"id", "name", "image", "fees", "date_time", "location", "healthcare_professional",
	"participant_count", "description", "contributor_uid", "post_time",
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func scanCamp(row pgx.Row) (*Camp, error) {
	var c Camp
	if err := row.Scan(
		&c.ID, &c.Name, &c.Image, &c.Fees, &c.DateTime, &c.Location, &c.HealthcareProfessional,
		&c.ParticipantCount, &c.Description, &c.ContributorUID, &c.PostTime,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *pgxRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]*Camp, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list camps query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		if isInvalidRegex(err) {
			return nil, ErrInvalidPattern
		}
		return nil, fmt.Errorf("list camps failed: %w", err)
	}
	defer rows.Close()

	result := make([]*Camp, 0)
	for rows.Next() {
		c, err := scanCamp(rows)
		if err != nil {
			return nil, fmt.Errorf("scan camp failed: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		if isInvalidRegex(err) {
			return nil, ErrInvalidPattern
		}
		return nil, fmt.Errorf("iterate camps failed: %w", err)
	}

	return result, nil
}

// isInvalidRegex reports whether the database rejected a search pattern.
// Depending on when the server evaluates it, the error shows up either from
// Query or from rows.Err.
func isInvalidRegex(err error) bool {
	var e *pgconn.PgError
	return errors.As(err, &e) && e.Code == pgerrcode.InvalidRegularExpression
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Camp, error) {
	q := psql().Select(campColumns...).From("public.camps")

	switch filter.Sort {
	case SortAsc:
		q = q.OrderBy("post_time ASC")
	case SortDesc:
		q = q.OrderBy("post_time DESC")
	}

	return r.query(ctx, q)
}

func (r *pgxRepository) Popular(ctx context.Context, limit int) ([]*Camp, error) {
	q := psql().Select(campColumns...).
		From("public.camps").
		OrderBy("participant_count DESC").
		Limit(uint64(limit))

	return r.query(ctx, q)
}

// Search matches pattern as a case-insensitive POSIX regex against the text columns.
func (r *pgxRepository) Search(ctx context.Context, pattern string) ([]*Camp, error) {
	q := psql().Select(campColumns...).
		From("public.camps").
		Where(squirrel.Or{
			squirrel.Expr("name ~* ?", pattern),
			squirrel.Expr("healthcare_professional ~* ?", pattern),
			squirrel.Expr("location ~* ?", pattern),
			squirrel.Expr("description ~* ?", pattern),
		})

	return r.query(ctx, q)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Camp, error) {
	query, args, err := psql().Select(campColumns...).
		From("public.camps").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get camp query failed: %w", err)
	}

	c, err := scanCamp(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get camp failed: %w", err)
	}
	return c, nil
}

func (r *pgxRepository) Create(ctx context.Context, c *Camp) error {
	query, args, err := psql().Insert("public.camps").
		Columns("name", "image", "fees", "date_time", "location", "healthcare_professional",
			"participant_count", "description", "contributor_uid").
		Values(c.Name, c.Image, c.Fees, c.DateTime, c.Location, c.HealthcareProfessional,
			c.ParticipantCount, c.Description, c.ContributorUID).
		Suffix("RETURNING id, post_time").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create camp query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.PostTime); err != nil {
		return fmt.Errorf("create camp failed: %w", err)
	}
	return nil
}

// Update sets only the supplied fields and returns the resulting row.
func (r *pgxRepository) Update(ctx context.Context, id string, req UpdateRequest) (*Camp, error) {
	setMap := map[string]any{}
	if req.Name != nil {
		setMap["name"] = *req.Name
	}
	if req.Image != nil {
		setMap["image"] = *req.Image
	}
	if req.Fees != nil {
		setMap["fees"] = *req.Fees
	}
	if req.DateTime != nil {
		setMap["date_time"] = *req.DateTime
	}
	if req.Location != nil {
		setMap["location"] = *req.Location
	}
	if req.HealthcareProfessional != nil {
		setMap["healthcare_professional"] = *req.HealthcareProfessional
	}
	if req.Description != nil {
		setMap["description"] = *req.Description
	}

	if len(setMap) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := psql().Update("public.camps").
		SetMap(setMap).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(campColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update camp query failed: %w", err)
	}

	c, err := scanCamp(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update camp failed: %w", err)
	}
	return c, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql().Delete("public.camps").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete camp query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete camp failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementParticipants bumps the counter in a single statement so concurrent
// increments never lose an update.
func (r *pgxRepository) IncrementParticipants(ctx context.Context, id string) (int, error) {
	query, args, err := psql().Update("public.camps").
		Set("participant_count", squirrel.Expr("participant_count + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING participant_count").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build increment participants query failed: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("increment participants failed: %w", err)
	}
	return count, nil
}
