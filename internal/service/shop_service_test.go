package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everydukan/deals-cms/internal/model"
)

type mockShopRepository struct {
	insertFn  func(ctx context.Context, shop *model.Shop) error
	getByIDFn func(ctx context.Context, id string) (*model.Shop, error)
	listFn    func(ctx context.Context, q model.PageQuery) ([]model.Shop, int64, error)
	updateFn  func(ctx context.Context, shop *model.Shop) (*model.Shop, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (m *mockShopRepository) Insert(ctx context.Context, shop *model.Shop) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, shop)
	}
	return nil
}

func (m *mockShopRepository) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockShopRepository) List(ctx context.Context, q model.PageQuery) ([]model.Shop, int64, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return []model.Shop{}, 0, nil
}

func (m *mockShopRepository) Update(ctx context.Context, shop *model.Shop) (*model.Shop, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, shop)
	}
	return shop, nil
}

func (m *mockShopRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func TestShopService_Create_EmptyCategory(t *testing.T) {
	svc := NewShopService(&mockShopRepository{})

	shop, err := svc.Create(context.Background(), &model.ShopRequest{
		Title: "Gadget Hub",
		Logo:  "https://cdn.example.com/gh.png",
		URL:   "https://gadgethub.example.com",
	})

	require.NoError(t, err)
	assert.NotNil(t, shop.Category)
	assert.Empty(t, shop.Category)
}

func TestShopService_List_NormalizesQuery(t *testing.T) {
	var got model.PageQuery
	repo := &mockShopRepository{
		listFn: func(ctx context.Context, q model.PageQuery) ([]model.Shop, int64, error) {
			got = q
			return []model.Shop{{ID: "s-1"}}, 21, nil
		},
	}

	svc := NewShopService(repo)
	page, err := svc.List(context.Background(), model.PageQuery{Page: 0, Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, model.PageQuery{Page: 1, Limit: model.MaxLimit}, got)
	assert.Equal(t, int64(21), page.Pagination.TotalItems)
	assert.Equal(t, 1, page.Pagination.TotalPages)
	assert.Len(t, page.Items, 1)
}

func TestShopService_List_Pages(t *testing.T) {
	repo := &mockShopRepository{
		listFn: func(ctx context.Context, q model.PageQuery) ([]model.Shop, int64, error) {
			return []model.Shop{}, 25, nil
		},
	}

	svc := NewShopService(repo)
	page, err := svc.List(context.Background(), model.PageQuery{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasNextPage)
	assert.True(t, page.Pagination.HasPrevPage)
}

func TestShopService_List_RepositoryError(t *testing.T) {
	repo := &mockShopRepository{
		listFn: func(ctx context.Context, q model.PageQuery) ([]model.Shop, int64, error) {
			return nil, 0, errors.New("boom")
		},
	}

	svc := NewShopService(repo)
	_, err := svc.List(context.Background(), model.PageQuery{})

	require.Error(t, err)
}

func TestShopService_Get_NotFound(t *testing.T) {
	svc := NewShopService(&mockShopRepository{})

	_, err := svc.Get(context.Background(), "s-1")

	assert.True(t, errors.Is(err, ErrShopNotFound))
}

func TestShopService_UpdateAndDelete(t *testing.T) {
	repo := &mockShopRepository{
		deleteFn: func(ctx context.Context, id string) error {
			return ErrShopNotFound
		},
	}
	svc := NewShopService(repo)

	updated, err := svc.Update(context.Background(), "s-1", &model.ShopRequest{Title: "New", Category: []string{"tech"}})
	require.NoError(t, err)
	assert.Equal(t, "s-1", updated.ID)
	assert.Equal(t, []string{"tech"}, updated.Category)

	err = svc.Delete(context.Background(), "s-1")
	assert.True(t, errors.Is(err, ErrShopNotFound))
}
