package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/everydukan/deals-cms/internal/model"
)

// ComponentServiceInterface defines the interface for homepage component logic.
type ComponentServiceInterface interface {
	Create(ctx context.Context, req *model.ComponentRequest) (*model.Component, error)
	Get(ctx context.Context, id string) (*model.Component, error)
	List(ctx context.Context) ([]model.Component, error)
	Update(ctx context.Context, id string, req *model.ComponentRequest) (*model.Component, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, req *model.ReorderRequest) ([]model.Component, error)
}

// ComponentHandler handles HTTP requests for homepage components.
type ComponentHandler struct {
	service   ComponentServiceInterface
	validator *validator.Validate
}

// NewComponentHandler creates a new ComponentHandler with the given service and validator.
func NewComponentHandler(svc ComponentServiceInterface, v *validator.Validate) *ComponentHandler {
	return &ComponentHandler{service: svc, validator: v}
}

// Create handles POST /api/components. The new component is appended
// after the current last one.
func (h *ComponentHandler) Create(c *fiber.Ctx) error {
	var req model.ComponentRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	component, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return respondError(c, err, "failed to create component")
	}

	log.Info().
		Str("component_id", component.ID).
		Str("type", string(component.Type)).
		Int("order", component.Order).
		Msg("component created")
	return respondData(c, fiber.StatusCreated, component)
}

// List handles GET /api/components, sorted by order.
func (h *ComponentHandler) List(c *fiber.Ctx) error {
	components, err := h.service.List(c.Context())
	if err != nil {
		return respondError(c, err, "failed to list components")
	}
	return respondData(c, fiber.StatusOK, components)
}

func (h *ComponentHandler) Get(c *fiber.Ctx) error {
	component, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err, "failed to get component")
	}
	return respondData(c, fiber.StatusOK, component)
}

// Update replaces the component's content. Its order is left untouched.
func (h *ComponentHandler) Update(c *fiber.Ctx) error {
	var req model.ComponentRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	component, err := h.service.Update(c.Context(), c.Params("id"), &req)
	if err != nil {
		return respondError(c, err, "failed to update component")
	}

	log.Info().Str("component_id", component.ID).Msg("component updated")
	return respondData(c, fiber.StatusOK, component)
}

func (h *ComponentHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondError(c, err, "failed to delete component")
	}

	log.Info().Str("component_id", id).Msg("component deleted")
	return respondDeleted(c, "component")
}

// Reorder handles PUT /api/components/reorder and responds with every
// component in its new order.
func (h *ComponentHandler) Reorder(c *fiber.Ctx) error {
	var req model.ReorderRequest
	if msg := decodeBody(c, h.validator, &req); msg != "" {
		return badRequest(c, msg)
	}

	components, err := h.service.Reorder(c.Context(), &req)
	if err != nil {
		return respondError(c, err, "failed to reorder components")
	}

	log.Info().Int("components", len(components)).Msg("components reordered")
	return respondData(c, fiber.StatusOK, components)
}
