package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everydukan/deals-cms/internal/model"
	"github.com/everydukan/deals-cms/internal/service"
)

const dealColumns = `id::text, image_url, title, subtitle, original_price, discounted_price, shop_url,
	is_active, start_date, end_date, created_at, updated_at`

// dealSortColumns maps the accepted sort keys to columns. Only these
// strings are ever interpolated into ORDER BY.
var dealSortColumns = map[string]string{
	model.DealSortCreatedAt:       "created_at",
	model.DealSortUpdatedAt:       "updated_at",
	model.DealSortTitle:           "title",
	model.DealSortOriginalPrice:   "original_price",
	model.DealSortDiscountedPrice: "discounted_price",
	model.DealSortStartDate:       "start_date",
	model.DealSortEndDate:         "end_date",
}

// DealRepository provides data access for deals using pgx.
type DealRepository struct {
	pool PoolInterface
}

// NewDealRepository creates a new DealRepository with the given pool.
func NewDealRepository(pool *pgxpool.Pool) *DealRepository {
	return &DealRepository{pool: pool}
}

// NewDealRepositoryWithPool creates a new DealRepository with a custom pool interface.
func NewDealRepositoryWithPool(pool PoolInterface) *DealRepository {
	return &DealRepository{pool: pool}
}

func scanDeal(row pgx.Row) (*model.Deal, error) {
	var d model.Deal
	err := row.Scan(
		&d.ID,
		&d.ImageURL,
		&d.Title,
		&d.Subtitle,
		&d.OriginalPrice,
		&d.DiscountedPrice,
		&d.ShopURL,
		&d.IsActive,
		&d.StartDate,
		&d.EndDate,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DealRepository) Insert(ctx context.Context, deal *model.Deal) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO deals (id, image_url, title, subtitle, original_price, discounted_price, shop_url,
			is_active, start_date, end_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		id, deal.ImageURL, deal.Title, deal.Subtitle, deal.OriginalPrice, deal.DiscountedPrice, deal.ShopURL,
		deal.IsActive, deal.StartDate, deal.EndDate, deal.CreatedAt, deal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert deal: %w", err)
	}
	deal.ID = id
	return nil
}

// GetByID returns nil, nil if the deal is not found.
func (r *DealRepository) GetByID(ctx context.Context, id string) (*model.Deal, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	deal, err := scanDeal(r.pool.QueryRow(ctx, `SELECT `+dealColumns+` FROM deals WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deal %s: %w", id, err)
	}
	return deal, nil
}

// dealWhere renders the WHERE clause for filter and its arguments.
func dealWhere(filter model.DealFilter) (string, []any) {
	var conds []string
	var args []any

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, containsPattern(search))
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR subtitle ILIKE $%d)", len(args), len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List returns one page of deals matching filter and the total match count.
func (r *DealRepository) List(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error) {
	where, args := dealWhere(filter)

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM deals`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count deals: %w", err)
	}

	column, ok := dealSortColumns[filter.SortBy]
	if !ok {
		column = dealSortColumns[model.DealSortCreatedAt]
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}

	n := len(args)
	query := fmt.Sprintf(`SELECT %s FROM deals%s ORDER BY %s %s, id LIMIT $%d OFFSET $%d`,
		dealColumns, where, column, direction, n+1, n+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()

	deals := []model.Deal{}
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan deal: %w", err)
		}
		deals = append(deals, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate deal rows: %w", err)
	}
	return deals, total, nil
}

// Update returns service.ErrDealNotFound if no deal has the id.
func (r *DealRepository) Update(ctx context.Context, deal *model.Deal) (*model.Deal, error) {
	id, err := parseID(deal.ID)
	if err != nil {
		return nil, err
	}

	updated, err := scanDeal(r.pool.QueryRow(ctx,
		`UPDATE deals SET image_url = $2, title = $3, subtitle = $4, original_price = $5, discounted_price = $6,
			shop_url = $7, is_active = $8, start_date = $9, end_date = $10, updated_at = $11
		 WHERE id = $1 RETURNING `+dealColumns,
		id, deal.ImageURL, deal.Title, deal.Subtitle, deal.OriginalPrice, deal.DiscountedPrice, deal.ShopURL,
		deal.IsActive, deal.StartDate, deal.EndDate, deal.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrDealNotFound
		}
		return nil, fmt.Errorf("update deal %s: %w", id, err)
	}
	return updated, nil
}

func (r *DealRepository) Delete(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deal %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrDealNotFound
	}
	return nil
}

// DeactivateExpired clears is_active on active deals that ended before now.
func (r *DealRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE deals SET is_active = false, updated_at = $1 WHERE is_active AND end_date < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired deals: %w", err)
	}
	return tag.RowsAffected(), nil
}
