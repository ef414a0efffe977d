package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everydukan/deals-cms/internal/model"
	"github.com/everydukan/deals-cms/internal/service"
)

const bannerColumns = `id::text, title, banner_image, is_active, link_for_click, created_at, updated_at`

// BannerRepository provides data access for banners using pgx.
type BannerRepository struct {
	pool PoolInterface
}

// NewBannerRepository creates a new BannerRepository with the given pool.
func NewBannerRepository(pool *pgxpool.Pool) *BannerRepository {
	return &BannerRepository{pool: pool}
}

// NewBannerRepositoryWithPool creates a new BannerRepository with a custom pool interface.
// This is primarily used for testing.
func NewBannerRepositoryWithPool(pool PoolInterface) *BannerRepository {
	return &BannerRepository{pool: pool}
}

func scanBanner(row pgx.Row) (*model.Banner, error) {
	var b model.Banner
	err := row.Scan(&b.ID, &b.Title, &b.BannerImage, &b.IsActive, &b.LinkForClick, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Insert stores a new banner and assigns its id.
func (r *BannerRepository) Insert(ctx context.Context, banner *model.Banner) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO banners (id, title, banner_image, is_active, link_for_click, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, banner.Title, banner.BannerImage, banner.IsActive, banner.LinkForClick, banner.CreatedAt, banner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	banner.ID = id
	return nil
}

// GetByID retrieves a banner by id.
// Returns nil, nil if the banner is not found (service layer handles this).
func (r *BannerRepository) GetByID(ctx context.Context, id string) (*model.Banner, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	banner, err := scanBanner(r.pool.QueryRow(ctx, `SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner %s: %w", id, err)
	}
	return banner, nil
}

// List returns banners newest first. A non-nil active restricts the result
// to banners with that flag.
func (r *BannerRepository) List(ctx context.Context, active *bool) ([]model.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners`
	var args []any
	if active != nil {
		query += ` WHERE is_active = $1`
		args = append(args, *active)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	banners := []model.Banner{}
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		banners = append(banners, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate banner rows: %w", err)
	}
	return banners, nil
}

// Update overwrites the mutable fields and returns the stored banner.
// Returns service.ErrBannerNotFound if no banner has the id.
func (r *BannerRepository) Update(ctx context.Context, banner *model.Banner) (*model.Banner, error) {
	id, err := parseID(banner.ID)
	if err != nil {
		return nil, err
	}

	updated, err := scanBanner(r.pool.QueryRow(ctx,
		`UPDATE banners SET title = $2, banner_image = $3, is_active = $4, link_for_click = $5, updated_at = $6
		 WHERE id = $1 RETURNING `+bannerColumns,
		id, banner.Title, banner.BannerImage, banner.IsActive, banner.LinkForClick, banner.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrBannerNotFound
		}
		return nil, fmt.Errorf("update banner %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes a banner. Returns service.ErrBannerNotFound if no banner has the id.
func (r *BannerRepository) Delete(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrBannerNotFound
	}
	return nil
}
