package service

import (
	"context"
	"fmt"
	"time"

	"github.com/everydukan/deals-cms/internal/model"
)

// ComponentRepositoryInterface defines the interface for component data access.
// Implementations keep the orders of all components contiguous from 0:
// Insert appends at the end, Delete closes the gap and Reorder applies a
// full permutation atomically.
type ComponentRepositoryInterface interface {
	Insert(ctx context.Context, component *model.Component) error
	GetByID(ctx context.Context, id string) (*model.Component, error)
	List(ctx context.Context) ([]model.Component, error)
	Update(ctx context.Context, component *model.Component) (*model.Component, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, orders []model.ComponentOrder) ([]model.Component, error)
}

// ComponentService provides business logic for homepage components.
type ComponentService struct {
	repo ComponentRepositoryInterface
}

// NewComponentService creates a new ComponentService with the given repository.
func NewComponentService(repo ComponentRepositoryInterface) *ComponentService {
	return &ComponentService{repo: repo}
}

// Create appends a new component after the current last one.
func (s *ComponentService) Create(ctx context.Context, req *model.ComponentRequest) (*model.Component, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	now := time.Now().UTC()
	component := componentFromRequest(req)
	component.CreatedAt = now
	component.UpdatedAt = now

	if err := s.repo.Insert(ctx, component); err != nil {
		return nil, fmt.Errorf("insert component: %w", err)
	}
	return component, nil
}

// Get retrieves a component by id.
// Returns ErrComponentNotFound if the component doesn't exist.
func (s *ComponentService) Get(ctx context.Context, id string) (*model.Component, error) {
	component, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get component: %w", err)
	}
	if component == nil {
		return nil, ErrComponentNotFound
	}
	return component, nil
}

// List returns every component sorted by order ascending.
func (s *ComponentService) List(ctx context.Context) ([]model.Component, error) {
	components, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	return components, nil
}

// Update replaces the content of a component. Its order is left unchanged.
func (s *ComponentService) Update(ctx context.Context, id string, req *model.ComponentRequest) (*model.Component, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	component := componentFromRequest(req)
	component.ID = id
	component.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, component)
	if err != nil {
		return nil, fmt.Errorf("update component: %w", err)
	}
	return updated, nil
}

// Delete removes a component and shifts every later component up by one.
func (s *ComponentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete component: %w", err)
	}
	return nil
}

// Reorder applies a drag-and-drop result. The request must name every
// component exactly once and its orders must be exactly 0..n-1.
// Returns:
//   - ErrInvalidReorder if ids repeat or orders are not a permutation of 0..n-1
//   - ErrIncompleteReorder if some stored component is missing from the request
//   - ErrComponentNotFound if an id does not exist
func (s *ComponentService) Reorder(ctx context.Context, req *model.ReorderRequest) ([]model.Component, error) {
	if req == nil || len(req.Components) == 0 {
		return nil, ErrInvalidRequest
	}

	orders, err := checkReorder(req.Components)
	if err != nil {
		return nil, err
	}

	components, err := s.repo.Reorder(ctx, orders)
	if err != nil {
		return nil, fmt.Errorf("reorder components: %w", err)
	}
	return components, nil
}

func checkReorder(updates []model.OrderUpdate) ([]model.ComponentOrder, error) {
	n := len(updates)
	seenIDs := make(map[string]struct{}, n)
	seenOrders := make([]bool, n)
	orders := make([]model.ComponentOrder, 0, n)

	for _, u := range updates {
		if u.ID == "" || u.Order == nil {
			return nil, ErrInvalidRequest
		}
		if _, dup := seenIDs[u.ID]; dup {
			return nil, ErrInvalidReorder
		}
		seenIDs[u.ID] = struct{}{}

		o := *u.Order
		if o < 0 || o >= n || seenOrders[o] {
			return nil, ErrInvalidReorder
		}
		seenOrders[o] = true

		orders = append(orders, model.ComponentOrder{ID: u.ID, Order: o})
	}
	return orders, nil
}

func componentFromRequest(req *model.ComponentRequest) *model.Component {
	c := &model.Component{
		Type:  req.Type,
		Title: req.Title,
	}
	// Only the payload of the selected variant is kept.
	switch req.Type {
	case model.ComponentReusableBanner:
		c.Banners = req.Banners
	case model.ComponentBannerCard:
		c.ImageURL = req.ImageURL
		c.ClickURL = req.ClickURL
		c.ButtonText = req.ButtonText
	case model.ComponentBrandCard:
		c.Brands = req.Brands
	}
	return c
}
