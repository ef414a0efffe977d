package model

import "time"

type Category struct {
	ID        string    `json:"id" bson:"-"`
	Title     string    `json:"title" bson:"title"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type CategoryRequest struct {
	Title string `json:"title" validate:"required,notblank,max=255"`
}
