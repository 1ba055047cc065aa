package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, r *Registration) error
	List(ctx context.Context, filter Filter) ([]*Registration, error)
	GetByID(ctx context.Context, id string) (*Registration, error)
	SetStatus(ctx context.Context, id string, status Status) (*Registration, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const returningColumns = "id, camp_id, camp_name, camp_fees, location, healthcare_professional, " +
	"participant_uid, participant_name, participant_email, age, phone, gender, emergency_contact, " +
	"payment_status, confirmation_status, feedback_status, registered_at"

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func scanRegistration(row pgx.Row) (*Registration, error) {
	var r Registration
	if err := row.Scan(
		&r.ID, &r.CampID, &r.CampName, &r.CampFees, &r.Location, &r.HealthcareProfessional,
		&r.ParticipantUID, &r.ParticipantName, &r.ParticipantEmail, &r.Age, &r.Phone, &r.Gender, &r.EmergencyContact,
		&r.PaymentStatus, &r.ConfirmationStatus, &r.FeedbackStatus, &r.RegisteredAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *pgxRepository) Create(ctx context.Context, r *Registration) error {
	query, args, err := psql().Insert("public.registrations").
		Columns("camp_id", "camp_name", "camp_fees", "location", "healthcare_professional",
			"participant_uid", "participant_name", "participant_email", "age", "phone", "gender", "emergency_contact").
		Values(r.CampID, r.CampName, r.CampFees, r.Location, r.HealthcareProfessional,
			r.ParticipantUID, r.ParticipantName, r.ParticipantEmail, r.Age, r.Phone, r.Gender, r.EmergencyContact).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create registration query failed: %w", err)
	}

	created, err := scanRegistration(p.pool.QueryRow(ctx, query, args...))
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
			return ErrCampNotFound
		}
		return fmt.Errorf("create registration failed: %w", err)
	}
	*r = *created
	return nil
}

func (p *pgxRepository) List(ctx context.Context, filter Filter) ([]*Registration, error) {
	q := psql().Select(returningColumns).
		From("public.registrations").
		OrderBy("registered_at DESC")

	if filter.ParticipantUID != "" {
		q = q.Where(squirrel.Eq{"participant_uid": filter.ParticipantUID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list registrations query failed: %w", err)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list registrations failed: %w", err)
	}
	defer rows.Close()

	result := make([]*Registration, 0)
	for rows.Next() {
		r, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration failed: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations failed: %w", err)
	}

	return result, nil
}

func (p *pgxRepository) GetByID(ctx context.Context, id string) (*Registration, error) {
	query, args, err := psql().Select(returningColumns).
		From("public.registrations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get registration query failed: %w", err)
	}

	r, err := scanRegistration(p.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get registration failed: %w", err)
	}
	return r, nil
}

// SetStatus raises one status flag and returns the updated row.
func (p *pgxRepository) SetStatus(ctx context.Context, id string, status Status) (*Registration, error) {
	query, args, err := psql().Update("public.registrations").
		Set(string(status), true).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set registration status query failed: %w", err)
	}

	r, err := scanRegistration(p.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("set registration %s failed: %w", status, err)
	}
	return r, nil
}

func (p *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql().Delete("public.registrations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete registration query failed: %w", err)
	}

	ct, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete registration failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
