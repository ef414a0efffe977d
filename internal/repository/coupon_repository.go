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

const couponColumns = `id::text, title, merchant_name, merchant_logo, click_url, coupon_code, description,
	expiration_date, discount, category, background_color, accent_color, terms, created_at, updated_at`

// CouponRepository provides data access for coupons using pgx.
type CouponRepository struct {
	pool PoolInterface
}

// NewCouponRepository creates a new CouponRepository with the given pool.
func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

// NewCouponRepositoryWithPool creates a new CouponRepository with a custom pool interface.
// This is primarily used for testing.
func NewCouponRepositoryWithPool(pool PoolInterface) *CouponRepository {
	return &CouponRepository{pool: pool}
}

func scanCoupon(row pgx.Row) (*model.Coupon, error) {
	var c model.Coupon
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.MerchantName,
		&c.MerchantLogo,
		&c.ClickURL,
		&c.CouponCode,
		&c.Description,
		&c.ExpirationDate,
		&c.Discount,
		&c.Category,
		&c.BackgroundColor,
		&c.AccentColor,
		&c.Terms,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.Terms == nil {
		c.Terms = []string{}
	}
	return &c, nil
}

// Insert inserts a new coupon into the database and assigns its id.
func (r *CouponRepository) Insert(ctx context.Context, coupon *model.Coupon) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO coupons (id, title, merchant_name, merchant_logo, click_url, coupon_code, description,
			expiration_date, discount, category, background_color, accent_color, terms, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		id, coupon.Title, coupon.MerchantName, coupon.MerchantLogo, coupon.ClickURL, coupon.CouponCode,
		coupon.Description, coupon.ExpirationDate, coupon.Discount, coupon.Category,
		coupon.BackgroundColor, coupon.AccentColor, coupon.Terms, coupon.CreatedAt, coupon.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert coupon: %w", err)
	}
	coupon.ID = id
	return nil
}

// GetByID retrieves a coupon by its id.
// Returns nil, nil if the coupon is not found (service layer handles this).
func (r *CouponRepository) GetByID(ctx context.Context, id string) (*model.Coupon, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	coupon, err := scanCoupon(r.pool.QueryRow(ctx, `SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found - let service handle
		}
		return nil, fmt.Errorf("get coupon %s: %w", id, err)
	}
	return coupon, nil
}

// List returns every coupon, newest first.
func (r *CouponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	coupons := []model.Coupon{}
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		coupons = append(coupons, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coupon rows: %w", err)
	}
	return coupons, nil
}

// Update overwrites every mutable column of a coupon.
// Returns service.ErrCouponNotFound if the coupon doesn't exist.
func (r *CouponRepository) Update(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	id, err := parseID(coupon.ID)
	if err != nil {
		return nil, err
	}

	updated, err := scanCoupon(r.pool.QueryRow(ctx,
		`UPDATE coupons SET title = $2, merchant_name = $3, merchant_logo = $4, click_url = $5, coupon_code = $6,
			description = $7, expiration_date = $8, discount = $9, category = $10, background_color = $11,
			accent_color = $12, terms = $13, updated_at = $14
		 WHERE id = $1 RETURNING `+couponColumns,
		id, coupon.Title, coupon.MerchantName, coupon.MerchantLogo, coupon.ClickURL, coupon.CouponCode,
		coupon.Description, coupon.ExpirationDate, coupon.Discount, coupon.Category,
		coupon.BackgroundColor, coupon.AccentColor, coupon.Terms, coupon.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrCouponNotFound
		}
		return nil, fmt.Errorf("update coupon %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes a coupon. Returns service.ErrCouponNotFound if the coupon doesn't exist.
func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coupon %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrCouponNotFound
	}
	return nil
}
