package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everydukan/deals-cms/internal/model"
)

type mockDealRepository struct {
	insertFn            func(ctx context.Context, deal *model.Deal) error
	getByIDFn           func(ctx context.Context, id string) (*model.Deal, error)
	listFn              func(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error)
	updateFn            func(ctx context.Context, deal *model.Deal) (*model.Deal, error)
	deleteFn            func(ctx context.Context, id string) error
	deactivateExpiredFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockDealRepository) Insert(ctx context.Context, deal *model.Deal) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, deal)
	}
	return nil
}

func (m *mockDealRepository) GetByID(ctx context.Context, id string) (*model.Deal, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockDealRepository) List(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return []model.Deal{}, 0, nil
}

func (m *mockDealRepository) Update(ctx context.Context, deal *model.Deal) (*model.Deal, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, deal)
	}
	return deal, nil
}

func (m *mockDealRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockDealRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.deactivateExpiredFn != nil {
		return m.deactivateExpiredFn(ctx, now)
	}
	return 0, nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func validDealRequest() *model.DealRequest {
	return &model.DealRequest{
		ImageURL:        "https://cdn.example.com/tv.png",
		Title:           "4K TV",
		Subtitle:        "55 inch",
		OriginalPrice:   decPtr("999.99"),
		DiscountedPrice: decPtr("749.50"),
		ShopURL:         "https://shop.example.com/tv",
		EndDate:         timePtr(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func fixedClock(svc *DealService, now time.Time) {
	svc.now = func() time.Time { return now }
}

func TestDealService_Create_Defaults(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	var captured *model.Deal
	repo := &mockDealRepository{
		insertFn: func(ctx context.Context, deal *model.Deal) error {
			captured = deal
			return nil
		},
	}

	svc := NewDealService(repo)
	fixedClock(svc, now)
	_, err := svc.Create(context.Background(), validDealRequest())

	require.NoError(t, err)
	assert.True(t, captured.IsActive, "IsActive should default to true")
	assert.Equal(t, now, captured.StartDate, "StartDate should default to now")
	assert.True(t, decimal.RequireFromString("749.50").Equal(captured.DiscountedPrice))
	assert.Equal(t, now, captured.CreatedAt)
}

func TestDealService_Create_ExplicitStart(t *testing.T) {
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	svc := NewDealService(&mockDealRepository{})

	req := validDealRequest()
	req.StartDate = timePtr(start)
	req.IsActive = boolPtr(false)
	deal, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, start, deal.StartDate)
	assert.False(t, deal.IsActive)
}

func TestDealService_Create_MissingPrice(t *testing.T) {
	svc := NewDealService(&mockDealRepository{})

	req := validDealRequest()
	req.OriginalPrice = nil
	_, err := svc.Create(context.Background(), req)

	assert.True(t, errors.Is(err, ErrInvalidRequest))

	_, err = svc.Create(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func TestDealService_List_DefaultsSort(t *testing.T) {
	testCases := []struct {
		name     string
		sortBy   string
		expected string
	}{
		{"empty", "", model.DealSortCreatedAt},
		{"unknown", "price; drop", model.DealSortCreatedAt},
		{"known", model.DealSortEndDate, model.DealSortEndDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got model.DealFilter
			repo := &mockDealRepository{
				listFn: func(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error) {
					got = filter
					return []model.Deal{}, 0, nil
				},
			}

			svc := NewDealService(repo)
			_, err := svc.List(context.Background(), model.DealFilter{SortBy: tc.sortBy})

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got.SortBy)
			assert.Equal(t, model.DefaultPage, got.Page)
			assert.Equal(t, model.DefaultLimit, got.Limit)
		})
	}
}

func TestDealService_List_Pagination(t *testing.T) {
	repo := &mockDealRepository{
		listFn: func(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error) {
			return []model.Deal{{ID: "d-1"}, {ID: "d-2"}}, 12, nil
		},
	}

	svc := NewDealService(repo)
	page, err := svc.List(context.Background(), model.DealFilter{PageQuery: model.PageQuery{Page: 2, Limit: 5}})

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
}

func TestDealService_List_HugePage(t *testing.T) {
	var got model.DealFilter
	repo := &mockDealRepository{
		listFn: func(ctx context.Context, filter model.DealFilter) ([]model.Deal, int64, error) {
			got = filter
			return []model.Deal{}, 4, nil
		},
	}

	svc := NewDealService(repo)
	page, err := svc.List(context.Background(), model.DealFilter{PageQuery: model.PageQuery{Page: math.MaxInt, Limit: 100}})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Offset(), 0)
	assert.Empty(t, page.Items)
	assert.False(t, page.Pagination.HasNextPage)
}

func TestDealService_Get_NotFound(t *testing.T) {
	svc := NewDealService(&mockDealRepository{})

	_, err := svc.Get(context.Background(), "d-1")

	assert.True(t, errors.Is(err, ErrDealNotFound))
}

func TestDealService_Update(t *testing.T) {
	now := time.Date(2026, 10, 2, 8, 0, 0, 0, time.UTC)
	var captured *model.Deal
	repo := &mockDealRepository{
		updateFn: func(ctx context.Context, deal *model.Deal) (*model.Deal, error) {
			captured = deal
			return deal, nil
		},
	}

	svc := NewDealService(repo)
	fixedClock(svc, now)
	_, err := svc.Update(context.Background(), "d-1", validDealRequest())

	require.NoError(t, err)
	assert.Equal(t, "d-1", captured.ID)
	assert.Equal(t, now, captured.UpdatedAt)
	assert.True(t, captured.CreatedAt.IsZero(), "update must not touch createdAt")
}

func TestDealService_DeactivateExpired(t *testing.T) {
	now := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)
	var gotNow time.Time
	repo := &mockDealRepository{
		deactivateExpiredFn: func(ctx context.Context, at time.Time) (int64, error) {
			gotNow = at
			return 4, nil
		},
	}

	svc := NewDealService(repo)
	fixedClock(svc, now)
	n, err := svc.DeactivateExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.Equal(t, now, gotNow)
}

func TestDealService_DeactivateExpired_Error(t *testing.T) {
	repo := &mockDealRepository{
		deactivateExpiredFn: func(ctx context.Context, at time.Time) (int64, error) {
			return 0, errors.New("timeout")
		},
	}

	svc := NewDealService(repo)
	n, err := svc.DeactivateExpired(context.Background())

	require.Error(t, err)
	assert.Zero(t, n)
}
