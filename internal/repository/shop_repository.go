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

const shopColumns = `id::text, title, logo, url, category, created_at, updated_at`

// ShopRepository provides data access for shops using pgx.
type ShopRepository struct {
	pool PoolInterface
}

// NewShopRepository creates a new ShopRepository with the given pool.
func NewShopRepository(pool *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{pool: pool}
}

// NewShopRepositoryWithPool creates a new ShopRepository with a custom pool interface.
func NewShopRepositoryWithPool(pool PoolInterface) *ShopRepository {
	return &ShopRepository{pool: pool}
}

func scanShop(row pgx.Row) (*model.Shop, error) {
	var s model.Shop
	if err := row.Scan(&s.ID, &s.Title, &s.Logo, &s.URL, &s.Category, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if s.Category == nil {
		s.Category = []string{}
	}
	return &s, nil
}

func (r *ShopRepository) Insert(ctx context.Context, shop *model.Shop) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO shops (id, title, logo, url, category, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, shop.Title, shop.Logo, shop.URL, shop.Category, shop.CreatedAt, shop.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert shop: %w", err)
	}
	shop.ID = id
	return nil
}

// GetByID returns nil, nil if the shop is not found.
func (r *ShopRepository) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	shop, err := scanShop(r.pool.QueryRow(ctx, `SELECT `+shopColumns+` FROM shops WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop %s: %w", id, err)
	}
	return shop, nil
}

// List returns one page of shops newest first and the total shop count.
func (r *ShopRepository) List(ctx context.Context, q model.PageQuery) ([]model.Shop, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM shops`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count shops: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+shopColumns+` FROM shops ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`,
		q.Limit, q.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()

	shops := []model.Shop{}
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan shop: %w", err)
		}
		shops = append(shops, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate shop rows: %w", err)
	}
	return shops, total, nil
}

// Update returns service.ErrShopNotFound if no shop has the id.
func (r *ShopRepository) Update(ctx context.Context, shop *model.Shop) (*model.Shop, error) {
	id, err := parseID(shop.ID)
	if err != nil {
		return nil, err
	}

	updated, err := scanShop(r.pool.QueryRow(ctx,
		`UPDATE shops SET title = $2, logo = $3, url = $4, category = $5, updated_at = $6
		 WHERE id = $1 RETURNING `+shopColumns,
		id, shop.Title, shop.Logo, shop.URL, shop.Category, shop.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrShopNotFound
		}
		return nil, fmt.Errorf("update shop %s: %w", id, err)
	}
	return updated, nil
}

func (r *ShopRepository) Delete(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shop %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrShopNotFound
	}
	return nil
}
