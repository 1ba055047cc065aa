package feedback

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	ListPublic(ctx context.Context) ([]*Feedback, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *pgxRepository) Create(ctx context.Context, f *Feedback) error {
	query, args, err := psql().Insert("public.feedback").
		Columns("registration_id", "camp_id", "camp_name", "participant_uid", "participant_name",
			"participant_photo", "rating", "comment").
		Values(f.RegistrationID, f.CampID, f.CampName, f.ParticipantUID, f.ParticipantName,
			f.ParticipantPhoto, f.Rating, f.Comment).
		Suffix("RETURNING id, post_time").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create feedback query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&f.ID, &f.PostTime); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) {
			switch e.Code {
			case pgerrcode.ForeignKeyViolation:
				return ErrReferenceMissing
			case pgerrcode.CheckViolation:
				return ErrInvalidRating
			}
		}
		return fmt.Errorf("create feedback failed: %w", err)
	}
	return nil
}

// ListPublic returns all feedback, newest first, with participant names cut
// down to PublicNameLength characters by the database.
func (r *pgxRepository) ListPublic(ctx context.Context) ([]*Feedback, error) {
	query, args, err := psql().Select(
		"id", "registration_id", "camp_id", "camp_name", "participant_uid",
		fmt.Sprintf("LEFT(participant_name, %d)", PublicNameLength),
		"participant_photo", "rating", "comment", "post_time",
	).
		From("public.feedback").
		OrderBy("post_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list feedback query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list feedback failed: %w", err)
	}
	defer rows.Close()

	result := make([]*Feedback, 0)
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(
			&f.ID, &f.RegistrationID, &f.CampID, &f.CampName, &f.ParticipantUID,
			&f.ParticipantName, &f.ParticipantPhoto, &f.Rating, &f.Comment, &f.PostTime,
		); err != nil {
			return nil, fmt.Errorf("scan feedback failed: %w", err)
		}
		result = append(result, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback failed: %w", err)
	}

	return result, nil
}
