package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everydukan/deals-cms/internal/model"
)

func TestShopRepository_List_Paginates(t *testing.T) {
	var listArgs []any
	now := time.Now().UTC()
	mock := &mockPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			assert.Contains(t, sql, "count(*)")
			return &mockRow{values: []any{int64(23)}}
		},
		queryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
			listArgs = args
			return &mockRows{data: [][]any{
				{uuid.NewString(), "Gadget Hub", "https://cdn.example.com/gh.png", "https://gh.example.com", []string{"tech"}, now, now},
			}}, nil
		},
	}

	repo := NewShopRepositoryWithPool(mock)
	shops, total, err := repo.List(context.Background(), model.PageQuery{Page: 3, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(23), total)
	assert.Equal(t, []any{10, 20}, listArgs, "limit then offset")
	require.Len(t, shops, 1)
	assert.Equal(t, []string{"tech"}, shops[0].Category)
}

func TestShopRepository_List_CountError(t *testing.T) {
	dbErr := errors.New("connection reset")
	mock := &mockPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &mockRow{err: dbErr}
		},
	}

	repo := NewShopRepositoryWithPool(mock)
	_, _, err := repo.List(context.Background(), model.PageQuery{Page: 1, Limit: 10})

	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
	assert.Contains(t, err.Error(), "count shops")
}

func TestShopRepository_GetByID_NilCategory(t *testing.T) {
	now := time.Now().UTC()
	mock := &mockPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &mockRow{values: []any{uuid.NewString(), "Shop", "l", "u", []string(nil), now, now}}
		},
	}

	repo := NewShopRepositoryWithPool(mock)
	shop, err := repo.GetByID(context.Background(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, []string{}, shop.Category)
}
