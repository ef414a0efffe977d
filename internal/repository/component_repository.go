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
	"github.com/everydukan/deals-cms/pkg/database"
)

// componentOrderLock is the advisory lock key that serializes every write
// touching display_order.
const componentOrderLock int64 = 0x636d70_6f7264

const componentColumns = `id::text, type, display_order, title, banners, image_url, click_url, button_text,
	brands, created_at, updated_at`

// ComponentRepository provides data access for homepage components using pgx.
// Create, Delete and Reorder run in a transaction holding componentOrderLock
// so the orders always read 0..n-1 once committed.
type ComponentRepository struct {
	pool TxPoolInterface
}

// NewComponentRepository creates a new ComponentRepository with the given pool.
func NewComponentRepository(pool *pgxpool.Pool) *ComponentRepository {
	return &ComponentRepository{pool: pool}
}

// NewComponentRepositoryWithPool creates a new ComponentRepository with a custom pool interface.
// This is primarily used for testing.
func NewComponentRepositoryWithPool(pool TxPoolInterface) *ComponentRepository {
	return &ComponentRepository{pool: pool}
}

func scanComponent(row pgx.Row) (*model.Component, error) {
	var c model.Component
	err := row.Scan(
		&c.ID,
		&c.Type,
		&c.Order,
		&c.Title,
		&c.Banners,
		&c.ImageURL,
		&c.ClickURL,
		&c.ButtonText,
		&c.Brands,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func listComponents(ctx context.Context, q database.TxQuerier) ([]model.Component, error) {
	rows, err := q.Query(ctx, `SELECT `+componentColumns+` FROM components ORDER BY display_order`)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()

	components := []model.Component{}
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan component: %w", err)
		}
		components = append(components, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate component rows: %w", err)
	}
	return components, nil
}

// lockOrders takes the transaction-scoped ordering lock.
func lockOrders(ctx context.Context, tx database.TxQuerier) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, componentOrderLock); err != nil {
		return fmt.Errorf("lock component order: %w", err)
	}
	return nil
}

// Insert appends a component at order max+1 (0 when none exist) and
// assigns its id and order.
func (r *ComponentRepository) Insert(ctx context.Context, component *model.Component) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }() // Safe: no-op if committed

	if err := lockOrders(ctx, tx); err != nil {
		return err
	}

	id := uuid.NewString()
	var order int
	err = tx.QueryRow(ctx,
		`INSERT INTO components (id, type, display_order, title, banners, image_url, click_url, button_text,
			brands, created_at, updated_at)
		 SELECT $1::uuid, $2::text, COALESCE(MAX(display_order), -1) + 1, $3::text, $4::jsonb, $5::text, $6::text,
			$7::text, $8::jsonb, $9::timestamptz, $10::timestamptz
		 FROM components
		 RETURNING display_order`,
		id, component.Type, component.Title, component.Banners, component.ImageURL, component.ClickURL,
		component.ButtonText, component.Brands, component.CreatedAt, component.UpdatedAt).Scan(&order)
	if err != nil {
		return fmt.Errorf("insert component: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit insert component: %w", err)
	}
	component.ID = id
	component.Order = order
	return nil
}

// GetByID returns nil, nil if the component is not found.
func (r *ComponentRepository) GetByID(ctx context.Context, id string) (*model.Component, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	component, err := scanComponent(r.pool.QueryRow(ctx, `SELECT `+componentColumns+` FROM components WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get component %s: %w", id, err)
	}
	return component, nil
}

// List returns every component sorted by order.
func (r *ComponentRepository) List(ctx context.Context) ([]model.Component, error) {
	return listComponents(ctx, r.pool)
}

// Update replaces a component's content. display_order is never written here.
// Returns service.ErrComponentNotFound if no component has the id.
func (r *ComponentRepository) Update(ctx context.Context, component *model.Component) (*model.Component, error) {
	id, err := parseID(component.ID)
	if err != nil {
		return nil, err
	}

	updated, err := scanComponent(r.pool.QueryRow(ctx,
		`UPDATE components SET type = $2, title = $3, banners = $4, image_url = $5, click_url = $6,
			button_text = $7, brands = $8, updated_at = $9
		 WHERE id = $1 RETURNING `+componentColumns,
		id, component.Type, component.Title, component.Banners, component.ImageURL, component.ClickURL,
		component.ButtonText, component.Brands, component.UpdatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrComponentNotFound
		}
		return nil, fmt.Errorf("update component %s: %w", id, err)
	}
	return updated, nil
}

// Delete removes a component and shifts every later component down by one.
// Returns service.ErrComponentNotFound if no component has the id.
func (r *ComponentRepository) Delete(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := lockOrders(ctx, tx); err != nil {
		return err
	}

	var removed int
	err = tx.QueryRow(ctx, `DELETE FROM components WHERE id = $1 RETURNING display_order`, id).Scan(&removed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.ErrComponentNotFound
		}
		return fmt.Errorf("delete component %s: %w", id, err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE components SET display_order = display_order - 1 WHERE display_order > $1`, removed); err != nil {
		return fmt.Errorf("compact component order: %w", err)
	}

	return tx.Commit(ctx)
}

// Reorder assigns every component its new order in one statement and
// returns all components sorted by the new order. orders must name every
// stored component exactly once.
// Returns:
//   - service.ErrComponentNotFound if an id is not stored
//   - service.ErrIncompleteReorder if a stored component is not named
func (r *ComponentRepository) Reorder(ctx context.Context, orders []model.ComponentOrder) ([]model.Component, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := lockOrders(ctx, tx); err != nil {
		return nil, err
	}

	stored, err := componentIDs(ctx, tx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(orders))
	positions := make([]int, len(orders))
	for i, o := range orders {
		id, err := uuid.Parse(o.ID)
		if err != nil {
			return nil, service.ErrComponentNotFound
		}
		if _, ok := stored[id.String()]; !ok {
			return nil, service.ErrComponentNotFound
		}
		ids[i] = id.String()
		positions[i] = o.Order
	}
	if len(stored) != len(orders) {
		return nil, service.ErrIncompleteReorder
	}

	_, err = tx.Exec(ctx,
		`UPDATE components AS c SET display_order = v.ord
		 FROM unnest($1::text[], $2::int[]) AS v(id, ord)
		 WHERE c.id = v.id::uuid`,
		ids, positions)
	if err != nil {
		return nil, fmt.Errorf("apply component order: %w", err)
	}

	components, err := listComponents(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit reorder: %w", err)
	}
	return components, nil
}

func componentIDs(ctx context.Context, tx database.TxQuerier) (map[string]struct{}, error) {
	rows, err := tx.Query(ctx, `SELECT id::text FROM components`)
	if err != nil {
		return nil, fmt.Errorf("list component ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan component id: %w", err)
		}
		ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate component ids: %w", err)
	}
	return ids, nil
}
