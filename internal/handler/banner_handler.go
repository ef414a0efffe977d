package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/everydukan/deals-cms/internal/model"
)

// BannerServiceInterface defines the interface for banner business logic.
type BannerServiceInterface interface {
	Create(ctx context.Context, req *model.BannerRequest) (*model.Banner, error)
	Get(ctx context.Context, id string) (*model.Banner, error)
	List(ctx context.Context, active *bool) ([]model.Banner, error)
	Update(ctx context.Context, id string, req *model.BannerRequest) (*model.Banner, error)
	Delete(ctx context.Context, id string) error
}

// BannerHandler handles HTTP requests for banner operations.
type BannerHandler struct {
	service   BannerServiceInterface
	validator *validator.Validate
}

// NewBannerHandler creates a new BannerHandler with the given service and validator.
func NewBannerHandler(svc BannerServiceInterface, v *validator.Validate) *BannerHandler {
	return &BannerHandler{service: svc, validator: v}
}

// Create handles POST /api/banners.
func (h *BannerHandler) Create(c *fiber.Ctx) error {
	var req model.BannerRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	banner, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, err, "failed to create banner")
	}

	log.Info().Str("banner_id", banner.ID).Msg("banner created")
	return respondData(c, fiber.StatusCreated, banner)
}

// List handles GET /api/banners. ?active=true|false filters on the flag.
func (h *BannerHandler) List(c *fiber.Ctx) error {
	active, ok := optionalBool(c, "active")
	if !ok {
		return badRequest(c, "invalid request: active must be true or false")
	}

	banners, err := h.service.List(c.Context(), active)
	if err != nil {
		return respondError(c, err, "failed to list banners")
	}
	return respondData(c, fiber.StatusOK, banners)
}

func (h *BannerHandler) Get(c *fiber.Ctx) error {
	banner, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "failed to get banner")
	}
	return respondData(c, fiber.StatusOK, banner)
}

func (h *BannerHandler) Update(c *fiber.Ctx) error {
	var req model.BannerRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	banner, err := h.service.Update(c.Context(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err, "failed to update banner")
	}

	log.Info().Str("banner_id", banner.ID).Msg("banner updated")
	return respondData(c, fiber.StatusOK, banner)
}

func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondError(c, err, "failed to delete banner")
	}

	log.Info().Str("banner_id", id).Msg("banner deleted")
	return respondDeleted(c, "banner")
}
