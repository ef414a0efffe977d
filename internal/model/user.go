package model

import "time"

// User is an app user registered for push notifications.
type User struct {
	ID            string    `json:"id" bson:"-"`
	Name          string    `json:"name" bson:"name"`
	Preferences   []string  `json:"preferences" bson:"preferences"`
	Gender        string    `json:"gender" bson:"gender"`
	FCMToken      string    `json:"fcmToken" bson:"fcmToken"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	LastVisitedAt time.Time `json:"lastVisitedAt" bson:"lastVisitedAt"`
}

type CreateUserRequest struct {
	Name        string   `json:"name" validate:"required,notblank,max=255"`
	Gender      string   `json:"gender" validate:"required,notblank,max=32"`
	FCMToken    string   `json:"fcmToken" validate:"required,notblank,max=4096"`
	Preferences []string `json:"preferences" validate:"omitempty,dive,notblank"`
}
