package model

import "time"

// Shop is a merchant listed on the site. Category holds free-form
// category titles; they are not checked against the Categories collection.
type Shop struct {
	ID        string    `json:"id" bson:"-"`
	Title     string    `json:"title" bson:"title"`
	Logo      string    `json:"logo" bson:"logo"`
	URL       string    `json:"url" bson:"url"`
	Category  []string  `json:"category" bson:"category"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type ShopRequest struct {
	Title    string   `json:"title" validate:"required,notblank,max=255"`
	Logo     string   `json:"logo" validate:"required,url"`
	URL      string   `json:"url" validate:"required,url"`
	Category []string `json:"category" validate:"omitempty,dive,notblank,max=255"`
}
