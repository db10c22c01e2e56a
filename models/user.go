package models

import "time"

// UserProfile is a row of the users collection. Its ID is the owner
// identifier partitioning wardrobe items and looks.
type UserProfile struct {
	ID        string    `gorm:"primarykey" json:"id"`
	Name      string    `json:"name"`
	Avatar    *string   `json:"avatar"`
	Height    int       `json:"height"` // cm
	Weight    int       `json:"weight"` // kg
	Style     string    `json:"style"`
	CreatedAt time.Time `json:"created_at"`
}

func (UserProfile) TableName() string {
	return "users"
}

type ProfileIn struct {
	Name   string  `json:"name" validate:"required,max=100"`
	Avatar *string `json:"avatar" validate:"omitempty,max=500"`
	Height int     `json:"height" validate:"required,min=1,max=300"`
	Weight int     `json:"weight" validate:"required,min=1,max=500"`
	Style  string  `json:"style" validate:"omitempty,max=100"`
}

type ProfileOut struct {
	Profile UserProfile `json:"profile"`
	// nil while the profile only exists on this device
	OwnerID *string `json:"owner_id"`
}
