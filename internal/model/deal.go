package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal is a time-boxed discounted product offer.
// Prices are not persisted through bson tags; the document store converts them.
type Deal struct {
	ID              string          `json:"id" bson:"-"`
	ImageURL        string          `json:"imageUrl" bson:"imageUrl"`
	Title           string          `json:"title" bson:"title"`
	Subtitle        string          `json:"subtitle" bson:"subtitle"`
	OriginalPrice   decimal.Decimal `json:"originalPrice" bson:"-"`
	DiscountedPrice decimal.Decimal `json:"discountedPrice" bson:"-"`
	ShopURL         string          `json:"shopUrl" bson:"shopUrl"`
	IsActive        bool            `json:"isActive" bson:"isActive"`
	StartDate       time.Time       `json:"startDate" bson:"startDate"`
	EndDate         time.Time       `json:"endDate" bson:"endDate"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// DealRequest is the DTO for creating or replacing a deal.
// IsActive defaults to true and StartDate defaults to the current time.
type DealRequest struct {
	ImageURL        string           `json:"imageUrl" validate:"required,url"`
	Title           string           `json:"title" validate:"required,notblank,max=255"`
	Subtitle        string           `json:"subtitle" validate:"required,notblank,max=500"`
	OriginalPrice   *decimal.Decimal `json:"originalPrice" validate:"required,gte=0"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice" validate:"required,gte=0"`
	ShopURL         string           `json:"shopUrl" validate:"required,url"`
	IsActive        *bool            `json:"isActive"`
	StartDate       *time.Time       `json:"startDate"`
	EndDate         *time.Time       `json:"endDate" validate:"required"`
}

// Sort keys accepted by the deal listing, keyed by their JSON names.
const (
	DealSortCreatedAt       = "createdAt"
	DealSortUpdatedAt       = "updatedAt"
	DealSortTitle           = "title"
	DealSortOriginalPrice   = "originalPrice"
	DealSortDiscountedPrice = "discountedPrice"
	DealSortStartDate       = "startDate"
	DealSortEndDate         = "endDate"
)

// IsDealSortField reports whether key is an accepted deal sort key.
func IsDealSortField(key string) bool {
	switch key {
	case DealSortCreatedAt, DealSortUpdatedAt, DealSortTitle, DealSortOriginalPrice,
		DealSortDiscountedPrice, DealSortStartDate, DealSortEndDate:
		return true
	}
	return false
}

// DealFilter narrows and orders the deal listing.
type DealFilter struct {
	PageQuery
	Search   string
	SortBy   string
	SortDesc bool
	IsActive *bool
}
