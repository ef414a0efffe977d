package model

import "time"

// Banner is a promotional image linked to a click-through URL.
type Banner struct {
	ID           string    `json:"id" bson:"-"`
	Title        string    `json:"title" bson:"title"`
	BannerImage  string    `json:"bannerImage" bson:"bannerImage"`
	IsActive     bool      `json:"isActive" bson:"isActive"`
	LinkForClick string    `json:"linkForClick" bson:"linkForClick"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BannerRequest is the DTO for creating or replacing a banner.
// IsActive defaults to true when omitted.
type BannerRequest struct {
	Title        string `json:"title" validate:"required,notblank,max=255"`
	BannerImage  string `json:"bannerImage" validate:"required,url"`
	IsActive     *bool  `json:"isActive"`
	LinkForClick string `json:"linkForClick" validate:"required,url"`
}
