package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/everydukan/deals-cms/internal/model"
)

type CategoryServiceInterface interface {
	Create(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)
	Get(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id string, req *model.CategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

type CategoryHandler struct {
	service   CategoryServiceInterface
	validator *validator.Validate
}

func NewCategoryHandler(svc CategoryServiceInterface, v *validator.Validate) *CategoryHandler {
	return &CategoryHandler{service: svc, validator: v}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req model.CategoryRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	category, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, err, "failed to create category")
	}

	log.Info().Str("category_id", category.ID).Msg("category created")
	return respondData(c, fiber.StatusCreated, category)
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, err, "failed to list categories")
	}
	return respondData(c, fiber.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	category, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "failed to get category")
	}
	return respondData(c, fiber.StatusOK, category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var req model.CategoryRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	category, err := h.service.Update(c.Context(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err, "failed to update category")
	}

	log.Info().Str("category_id", category.ID).Msg("category updated")
	return respondData(c, fiber.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondError(c, err, "failed to delete category")
	}

	log.Info().Str("category_id", id).Msg("category deleted")
	return respondDeleted(c, "category")
}
