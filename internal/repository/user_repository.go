package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/everydukan/deals-cms/internal/model"
)

// UserRepository provides data access for app users using pgx.
type UserRepository struct {
	pool PoolInterface
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func NewUserRepositoryWithPool(pool PoolInterface) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Insert(ctx context.Context, user *model.User) error {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, name, preferences, gender, fcm_token, created_at, last_visited_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, user.Name, user.Preferences, user.Gender, user.FCMToken, user.CreatedAt, user.LastVisitedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return nil
}

// GetByID returns nil, nil if the user is not found.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var u model.User
	err = r.pool.QueryRow(ctx,
		`SELECT id::text, name, preferences, gender, fcm_token, created_at, last_visited_at FROM users WHERE id = $1`,
		id).Scan(&u.ID, &u.Name, &u.Preferences, &u.Gender, &u.FCMToken, &u.CreatedAt, &u.LastVisitedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	if u.Preferences == nil {
		u.Preferences = []string{}
	}
	return &u, nil
}
