package transaction

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
	Create(ctx context.Context, t *Transaction) error
	ListHistory(ctx context.Context, uid string) ([]*History, error)
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

func (r *pgxRepository) Create(ctx context.Context, t *Transaction) error {
	query, args, err := psql().Insert("public.transactions").
		Columns("registration_id", "uid", "transaction_id", "amount", "camp_name").
		Values(t.RegistrationID, t.UID, t.TransactionID, t.Amount, t.CampName).
		Suffix("RETURNING id, paid_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create transaction query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&t.ID, &t.PaidAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
			return ErrRegistrationNotFound
		}
		return fmt.Errorf("create transaction failed: %w", err)
	}
	return nil
}

// ListHistory joins the user's transactions with their registrations so the
// caller sees current payment and confirmation state. Newest payments first.
func (r *pgxRepository) ListHistory(ctx context.Context, uid string) ([]*History, error) {
	query, args, err := psql().Select(
		"t.id", "t.registration_id", "t.uid", "t.transaction_id", "t.amount", "t.camp_name", "t.paid_at",
		"r.payment_status", "r.confirmation_status",
	).
		From("public.transactions t").
		LeftJoin("public.registrations r ON r.id = t.registration_id").
		Where(squirrel.Eq{"t.uid": uid}).
		OrderBy("t.paid_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list transactions query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions failed: %w", err)
	}
	defer rows.Close()

	result := make([]*History, 0)
	for rows.Next() {
		var h History
		if err := rows.Scan(
			&h.ID, &h.RegistrationID, &h.UID, &h.TransactionID, &h.Amount, &h.CampName, &h.PaidAt,
			&h.PaymentStatus, &h.ConfirmationStatus,
		); err != nil {
			return nil, fmt.Errorf("scan transaction failed: %w", err)
		}
		result = append(result, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions failed: %w", err)
	}

	return result, nil
}
