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

const categoryColumns = `id::text, title, created_at, updated_at`

// CategoryRepository provides data access for categories using pgx.
type CategoryRepository struct {
	pool PoolInterface
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func NewCategoryRepositoryWithPool(pool PoolInterface) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

func scanCategory(row pgx.Row) (*model.Category, error) {
	var c model.Category
	if err := row.Scan(&c.ID, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Insert(ctx context.Context, category *model.Category) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO categories (id, title, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		id, category.Title, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = id
	return nil
}

// GetByID returns nil, nil if the category is not found.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	category, err := scanCategory(r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	return category, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY title, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}
	return categories, nil
}

// Update returns service.ErrCategoryNotFound if no category has the id.
func (r *CategoryRepository) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	id, err := parseID(category.ID)
	if err != nil {
		return nil, err
	}

	updated, err := scanCategory(r.pool.QueryRow(ctx,
		`UPDATE categories SET title = $2, updated_at = $3 WHERE id = $1 RETURNING `+categoryColumns,
		id, category.Title, category.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("update category %s: %w", id, err)
	}
	return updated, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrCategoryNotFound
	}
	return nil
}
