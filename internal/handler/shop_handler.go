package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/everydukan/deals-cms/internal/model"
)

// ShopServiceInterface defines the interface for shop business logic.
type ShopServiceInterface interface {
	Create(ctx context.Context, req *model.ShopRequest) (*model.Shop, error)
	Get(ctx context.Context, id string) (*model.Shop, error)
	List(ctx context.Context, q model.PageQuery) (*model.Page[model.Shop], error)
	Update(ctx context.Context, id string, req *model.ShopRequest) (*model.Shop, error)
	Delete(ctx context.Context, id string) error
}

// ShopHandler handles HTTP requests for shop operations.
type ShopHandler struct {
	service   ShopServiceInterface
	validator *validator.Validate
}

func NewShopHandler(svc ShopServiceInterface, v *validator.Validate) *ShopHandler {
	return &ShopHandler{service: svc, validator: v}
}

func (h *ShopHandler) Create(c *fiber.Ctx) error {
	var req model.ShopRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	shop, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, err, "failed to create shop")
	}

	log.Info().Str("shop_id", shop.ID).Msg("shop created")
	return respondData(c, fiber.StatusCreated, shop)
}

// List handles GET /api/shops?page=&limit=.
func (h *ShopHandler) List(c *fiber.Ctx) error {
	page, err := h.service.List(c.Context(), pageQuery(c))
	if err != nil {
		return respondError(c, err, "failed to list shops")
	}
	return respondPage(c, page)
}

func (h *ShopHandler) Get(c *fiber.Ctx) error {
	shop, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "failed to get shop")
	}
	return respondData(c, fiber.StatusOK, shop)
}

func (h *ShopHandler) Update(c *fiber.Ctx) error {
	var req model.ShopRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	shop, err := h.service.Update(c.Context(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err, "failed to update shop")
	}

	log.Info().Str("shop_id", shop.ID).Msg("shop updated")
	return respondData(c, fiber.StatusOK, shop)
}

func (h *ShopHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondError(c, err, "failed to delete shop")
	}

	log.Info().Str("shop_id", id).Msg("shop deleted")
	return respondDeleted(c, "shop")
}
