package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everydukan/deals-cms/internal/model"
	"github.com/everydukan/deals-cms/internal/service"
)

func bannerRow(title string, active bool) []any {
	now := time.Now().UTC()
	return []any{uuid.NewString(), title, "https://cdn.example.com/b.png", active, "https://example.com", now, now}
}

func TestBannerRepository_List_ActiveFilter(t *testing.T) {
	testCases := []struct {
		name      string
		active    *bool
		wantWhere bool
	}{
		{"all", nil, false},
		{"active_only", func() *bool { b := true; return &b }(), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var capturedSQL string
			var capturedArgs []any
			mock := &mockPool{
				queryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
					capturedSQL = sql
					capturedArgs = args
					return &mockRows{data: [][]any{bannerRow("Hero", true)}}, nil
				},
			}

			repo := NewBannerRepositoryWithPool(mock)
			banners, err := repo.List(context.Background(), tc.active)

			require.NoError(t, err)
			assert.Len(t, banners, 1)
			if tc.wantWhere {
				assert.Contains(t, capturedSQL, "WHERE is_active = $1")
				assert.Equal(t, []any{true}, capturedArgs)
			} else {
				assert.NotContains(t, capturedSQL, "WHERE")
				assert.Empty(t, capturedArgs)
			}
		})
	}
}

func TestBannerRepository_List_Empty(t *testing.T) {
	repo := NewBannerRepositoryWithPool(&mockPool{})

	banners, err := repo.List(context.Background(), nil)

	require.NoError(t, err)
	require.NotNil(t, banners, "Should return empty slice, not nil")
	assert.Len(t, banners, 0)
}

func TestBannerRepository_Insert(t *testing.T) {
	var capturedArgs []any
	mock := &mockPool{
		execFn: func(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
			capturedArgs = arguments
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		},
	}

	repo := NewBannerRepositoryWithPool(mock)
	banner := &model.Banner{Title: "Hero", IsActive: true}
	require.NoError(t, repo.Insert(context.Background(), banner))

	assert.Equal(t, banner.ID, capturedArgs[0])
	assert.Equal(t, true, capturedArgs[3])
}

func TestBannerRepository_GetByID(t *testing.T) {
	row := bannerRow("Hero", false)
	mock := &mockPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &mockRow{values: row}
		},
	}

	repo := NewBannerRepositoryWithPool(mock)
	banner, err := repo.GetByID(context.Background(), row[0].(string))

	require.NoError(t, err)
	assert.Equal(t, "Hero", banner.Title)
	assert.False(t, banner.IsActive)
}

func TestBannerRepository_UpdateAndDelete_NotFound(t *testing.T) {
	mock := &mockPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &mockRow{err: pgx.ErrNoRows}
		},
		execFn: func(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		},
	}
	repo := NewBannerRepositoryWithPool(mock)

	_, err := repo.Update(context.Background(), &model.Banner{ID: uuid.NewString()})
	assert.True(t, errors.Is(err, service.ErrBannerNotFound))

	err = repo.Delete(context.Background(), uuid.NewString())
	assert.True(t, errors.Is(err, service.ErrBannerNotFound))

	err = repo.Delete(context.Background(), "nope")
	assert.True(t, errors.Is(err, service.ErrInvalidID))
}
