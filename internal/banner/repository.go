package banner

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Banner) error
	List(ctx context.Context) ([]*Banner, error)
	GetByID(ctx context.Context, id string) (*Banner, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

var bannerColumns = []string{
	"id", "title", "description", "filename", "storage_path", "thumbnail_path", "content_type", "size", "created_at",
}

func psql() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func scanBanner(row pgx.Row) (*Banner, error) {
	b := &Banner{}
	if err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.Filename, &b.StoragePath,
		&b.ThumbnailPath, &b.ContentType, &b.Size, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repository) Create(ctx context.Context, b *Banner) error {
	query, args, err := psql().Insert("public.banners").
		Columns(bannerColumns...).
		Values(b.ID, b.Title, b.Description, b.Filename, b.StoragePath,
			b.ThumbnailPath, b.ContentType, b.Size, b.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create banner record: %w", err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]*Banner, error) {
	query, args, err := psql().Select(bannerColumns...).
		From("public.banners").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	defer rows.Close()

	result := make([]*Banner, 0)
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan banner: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate banners: %w", err)
	}
	return result, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Banner, error) {
	query, args, err := psql().Select(bannerColumns...).
		From("public.banners").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	b, err := scanBanner(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get banner: %w", err)
	}
	return b, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query, args, err := psql().Delete("public.banners").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	ct, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete banner record: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
