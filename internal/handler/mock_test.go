package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/everydukan/deals-cms/internal/model"
	"github.com/everydukan/deals-cms/internal/validator"
)

type mockBannerService struct {
	createFn func(ctx context.Context, req *model.BannerRequest) (*model.Banner, error)
	getFn    func(ctx context.Context, id string) (*model.Banner, error)
	listFn   func(ctx context.Context, active *bool) ([]model.Banner, error)
	updateFn func(ctx context.Context, id string, req *model.BannerRequest) (*model.Banner, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockBannerService) Create(ctx context.Context, req *model.BannerRequest) (*model.Banner, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &model.Banner{}, nil
}

func (m *mockBannerService) Get(ctx context.Context, id string) (*model.Banner, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.Banner{ID: id}, nil
}

func (m *mockBannerService) List(ctx context.Context, active *bool) ([]model.Banner, error) {
	if m.listFn != nil {
		return m.listFn(ctx, active)
	}
	return []model.Banner{}, nil
}

func (m *mockBannerService) Update(ctx context.Context, id string, req *model.BannerRequest) (*model.Banner, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &model.Banner{ID: id}, nil
}

func (m *mockBannerService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockShopService struct {
	createFn func(ctx context.Context, req *model.ShopRequest) (*model.Shop, error)
	getFn    func(ctx context.Context, id string) (*model.Shop, error)
	listFn   func(ctx context.Context, q model.PageQuery) (*model.Page[model.Shop], error)
	updateFn func(ctx context.Context, id string, req *model.ShopRequest) (*model.Shop, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockShopService) Create(ctx context.Context, req *model.ShopRequest) (*model.Shop, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &model.Shop{}, nil
}

func (m *mockShopService) Get(ctx context.Context, id string) (*model.Shop, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.Shop{ID: id}, nil
}

func (m *mockShopService) List(ctx context.Context, q model.PageQuery) (*model.Page[model.Shop], error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return &model.Page[model.Shop]{Pagination: model.NewPagination(q, 0)}, nil
}

func (m *mockShopService) Update(ctx context.Context, id string, req *model.ShopRequest) (*model.Shop, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &model.Shop{ID: id}, nil
}

func (m *mockShopService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockCategoryService struct {
	createFn func(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)
	getFn    func(ctx context.Context, id string) (*model.Category, error)
	listFn   func(ctx context.Context) ([]model.Category, error)
	updateFn func(ctx context.Context, id string, req *model.CategoryRequest) (*model.Category, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockCategoryService) Create(ctx context.Context, req *model.CategoryRequest) (*model.Category, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &model.Category{Title: req.Title}, nil
}

func (m *mockCategoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.Category{ID: id}, nil
}

func (m *mockCategoryService) List(ctx context.Context) ([]model.Category, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.Category{}, nil
}

func (m *mockCategoryService) Update(ctx context.Context, id string, req *model.CategoryRequest) (*model.Category, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &model.Category{ID: id, Title: req.Title}, nil
}

func (m *mockCategoryService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockCouponService struct {
	createFn func(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error)
	getFn    func(ctx context.Context, id string) (*model.Coupon, error)
	listFn   func(ctx context.Context) ([]model.Coupon, error)
	updateFn func(ctx context.Context, id string, req *model.CouponRequest) (*model.Coupon, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockCouponService) Create(ctx context.Context, req *model.CouponRequest) (*model.Coupon, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &model.Coupon{}, nil
}

func (m *mockCouponService) Get(ctx context.Context, id string) (*model.Coupon, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.Coupon{ID: id}, nil
}

func (m *mockCouponService) List(ctx context.Context) ([]model.Coupon, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.Coupon{}, nil
}

func (m *mockCouponService) Update(ctx context.Context, id string, req *model.CouponRequest) (*model.Coupon, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &model.Coupon{ID: id}, nil
}

func (m *mockCouponService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockDealService struct {
	createFn func(ctx context.Context, req *model.DealRequest) (*model.Deal, error)
	getFn    func(ctx context.Context, id string) (*model.Deal, error)
	listFn   func(ctx context.Context, filter model.DealFilter) (*model.Page[model.Deal], error)
	updateFn func(ctx context.Context, id string, req *model.DealRequest) (*model.Deal, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockDealService) Create(ctx context.Context, req *model.DealRequest) (*model.Deal, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &model.Deal{}, nil
}

func (m *mockDealService) Get(ctx context.Context, id string) (*model.Deal, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.Deal{ID: id}, nil
}

func (m *mockDealService) List(ctx context.Context, filter model.DealFilter) (*model.Page[model.Deal], error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return &model.Page[model.Deal]{Pagination: model.NewPagination(filter.PageQuery, 0)}, nil
}

func (m *mockDealService) Update(ctx context.Context, id string, req *model.DealRequest) (*model.Deal, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &model.Deal{ID: id}, nil
}

func (m *mockDealService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockComponentService struct {
	createFn  func(ctx context.Context, req *model.ComponentRequest) (*model.Component, error)
	getFn     func(ctx context.Context, id string) (*model.Component, error)
	listFn    func(ctx context.Context) ([]model.Component, error)
	updateFn  func(ctx context.Context, id string, req *model.ComponentRequest) (*model.Component, error)
	deleteFn  func(ctx context.Context, id string) error
	reorderFn func(ctx context.Context, req *model.ReorderRequest) ([]model.Component, error)
}

func (m *mockComponentService) Create(ctx context.Context, req *model.ComponentRequest) (*model.Component, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &model.Component{Type: req.Type}, nil
}

func (m *mockComponentService) Get(ctx context.Context, id string) (*model.Component, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.Component{ID: id}, nil
}

func (m *mockComponentService) List(ctx context.Context) ([]model.Component, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []model.Component{}, nil
}

func (m *mockComponentService) Update(ctx context.Context, id string, req *model.ComponentRequest) (*model.Component, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return &model.Component{ID: id, Type: req.Type}, nil
}

func (m *mockComponentService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockComponentService) Reorder(ctx context.Context, req *model.ReorderRequest) ([]model.Component, error) {
	if m.reorderFn != nil {
		return m.reorderFn(ctx, req)
	}
	return []model.Component{}, nil
}

type mockUserService struct {
	createFn func(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	getFn    func(ctx context.Context, id string) (*model.User, error)
}

func (m *mockUserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &model.User{Name: req.Name}, nil
}

func (m *mockUserService) Get(ctx context.Context, id string) (*model.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return &model.User{ID: id}, nil
}

// mocks holds one mock per service; nil fields get a zero mock.
type mocks struct {
	ping       *mockPool
	banners    *mockBannerService
	shops      *mockShopService
	categories *mockCategoryService
	coupons    *mockCouponService
	deals      *mockDealService
	components *mockComponentService
	users      *mockUserService
}

func setupTestApp(m mocks) *fiber.App {
	if m.ping == nil {
		m.ping = &mockPool{}
	}
	if m.banners == nil {
		m.banners = &mockBannerService{}
	}
	if m.shops == nil {
		m.shops = &mockShopService{}
	}
	if m.categories == nil {
		m.categories = &mockCategoryService{}
	}
	if m.coupons == nil {
		m.coupons = &mockCouponService{}
	}
	if m.deals == nil {
		m.deals = &mockDealService{}
	}
	if m.components == nil {
		m.components = &mockComponentService{}
	}
	if m.users == nil {
		m.users = &mockUserService{}
	}

	v := validator.New()
	app := fiber.New()
	RegisterRoutes(app, Handlers{
		Health:     NewHealthHandler(m.ping, "postgres"),
		Banners:    NewBannerHandler(m.banners, v),
		Shops:      NewShopHandler(m.shops, v),
		Categories: NewCategoryHandler(m.categories, v),
		Coupons:    NewCouponHandler(m.coupons, v),
		Deals:      NewDealHandler(m.deals, v),
		Components: NewComponentHandler(m.components, v),
		Users:      NewUserHandler(m.users, v),
	})
	return app
}

// doRequest sends a JSON request and decodes the JSON response body.
func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), string(raw))
	}
	return resp.StatusCode, result
}
