package model

import (
	"encoding/json"
	"time"
)

// ComponentType discriminates the homepage section variants.
type ComponentType string

const (
	ComponentReusableBanner ComponentType = "ReusableBanner"
	ComponentBannerCard     ComponentType = "BannerCard"
	ComponentBrandCard      ComponentType = "BrandCard"
)

// Valid reports whether t is one of the known variants.
func (t ComponentType) Valid() bool {
	switch t {
	case ComponentReusableBanner, ComponentBannerCard, ComponentBrandCard:
		return true
	}
	return false
}

// BannerItem is one slide of a ReusableBanner section.
type BannerItem struct {
	ImageURL string `json:"imageUrl" bson:"imageUrl" validate:"required,http_url"`
	ClickURL string `json:"clickUrl" bson:"clickUrl" validate:"required,http_url"`
	Title    string `json:"title" bson:"title" validate:"required,notblank"`
}

// BrandItem is one card of a BrandCard section.
type BrandItem struct {
	LogoURL    string `json:"logoUrl" bson:"logoUrl" validate:"required,http_url"`
	ClickURL   string `json:"clickUrl" bson:"clickUrl" validate:"required,http_url"`
	Title      string `json:"title" bson:"title" validate:"required,notblank"`
	Tag        string `json:"tag,omitempty" bson:"tag,omitempty"`
	ButtonText string `json:"buttonText" bson:"buttonText" validate:"required,notblank"`
}

// Component is a homepage layout section. Which payload fields are
// meaningful depends on Type. Order positions the section on the page;
// across all components the orders form the sequence 0..n-1.
type Component struct {
	ID         string        `json:"id" bson:"-"`
	Type       ComponentType `json:"type" bson:"type"`
	Order      int           `json:"order" bson:"order"`
	Title      string        `json:"title" bson:"title"`
	Banners    []BannerItem  `json:"banners,omitempty" bson:"banners,omitempty"`
	ImageURL   string        `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	ClickURL   string        `json:"clickUrl,omitempty" bson:"clickUrl,omitempty"`
	ButtonText string        `json:"buttonText,omitempty" bson:"buttonText,omitempty"`
	Brands     []BrandItem   `json:"brands,omitempty" bson:"brands,omitempty"`
	CreatedAt  time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// ComponentRequest is the DTO for creating or replacing a component.
// Variant-specific requirements are enforced by a struct-level validation.
type ComponentRequest struct {
	Type       ComponentType `json:"type" validate:"required,oneof=ReusableBanner BannerCard BrandCard"`
	Title      string        `json:"title" validate:"required,notblank,max=255"`
	Banners    []BannerItem  `json:"banners" validate:"omitempty,dive"`
	ImageURL   string        `json:"imageUrl" validate:"omitempty,http_url"`
	ClickURL   string        `json:"clickUrl" validate:"omitempty,http_url"`
	ButtonText string        `json:"buttonText" validate:"max=100"`
	Brands     []BrandItem   `json:"brands" validate:"omitempty,dive"`
}

// ReorderRequest carries the drag-and-drop result for every component.
type ReorderRequest struct {
	Components []OrderUpdate `json:"components" validate:"required,min=1,dive"`
}

// OrderUpdate moves one component. The id may also be sent as "_id".
type OrderUpdate struct {
	ID    string `json:"id" validate:"required,notblank"`
	Order *int   `json:"order" validate:"required,gte=0"`
}

func (u *OrderUpdate) UnmarshalJSON(data []byte) error {
	type fields OrderUpdate
	var raw struct {
		fields
		ObjectID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = OrderUpdate(raw.fields)
	if u.ID == "" {
		u.ID = raw.ObjectID
	}
	return nil
}

// ComponentOrder is a checked (id, order) pair handed to the store.
type ComponentOrder struct {
	ID    string
	Order int
}
