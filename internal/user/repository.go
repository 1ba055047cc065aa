package user

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

// Repository defines methods for accessing user data from storage.
type Repository interface {
	GetByUID(ctx context.Context, uid string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Create(ctx context.Context, u *User) error
	CreateIfAbsent(ctx context.Context, u *User) (bool, error)
	Upsert(ctx context.Context, uid string, upd ProfileUpdate) (*User, error)
}

type pgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxUserRepository{
		pool: pool,
	}
}

var userColumns = []string{"uid", "name", "email", "photo_url", "role", "phone", "address", "created_at", "updated_at"}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.UID,
		&u.Name,
		&u.Email,
		&u.PhotoURL,
		&u.Role,
		&u.Phone,
		&u.Address,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *pgxUserRepository) GetByUID(ctx context.Context, uid string) (*User, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(userColumns...).
		From("public.users").
		Where(squirrel.Eq{"uid": uid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query failed: %w", err)
	}

	u, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetByUID query failed: %w", err)
	}
	return u, nil
}

func (r *pgxUserRepository) List(ctx context.Context) ([]*User, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(userColumns...).
		From("public.users").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users failed: %w", err)
	}
	defer rows.Close()

	users := make([]*User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user failed: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users failed: %w", err)
	}

	return users, nil
}

func (r *pgxUserRepository) insert(u *User) squirrel.InsertBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Insert("public.users").
		Columns("uid", "name", "email", "photo_url", "role", "phone", "address").
		Values(u.UID, u.Name, u.Email, u.PhotoURL, u.Role, u.Phone, u.Address)
}

func (r *pgxUserRepository) Create(ctx context.Context, u *User) error {
	query, args, err := r.insert(u).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create user query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("Create user failed: %w", err)
	}

	return nil
}

// CreateIfAbsent inserts u unless a row with the same uid exists.
// The check and the insert are one statement, so concurrent callers cannot both insert.
func (r *pgxUserRepository) CreateIfAbsent(ctx context.Context, u *User) (bool, error) {
	query, args, err := r.insert(u).
		Suffix("ON CONFLICT (uid) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build create-if-absent user query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("CreateIfAbsent user failed: %w", err)
	}

	return ct.RowsAffected() == 1, nil
}

// Upsert merges the supplied fields into the user row, creating it when missing.
func (r *pgxUserRepository) Upsert(ctx context.Context, uid string, upd ProfileUpdate) (*User, error) {
	columns := []string{"uid"}
	values := []any{uid}
	sets := []string{"updated_at = now()"}

	add := func(column string, v *string) {
		if v == nil {
			return
		}
		columns = append(columns, column)
		values = append(values, *v)
		sets = append(sets, column+" = EXCLUDED."+column)
	}
	add("name", upd.Name)
	add("email", upd.Email)
	add("photo_url", upd.PhotoURL)
	add("phone", upd.Phone)
	add("address", upd.Address)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.users").
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (uid) DO UPDATE SET " + strings.Join(sets, ", ") +
			" RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert user query failed: %w", err)
	}

	u, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("upsert user failed: %w", err)
	}
	return u, nil
}
