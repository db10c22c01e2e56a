package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MinRating = 0
	MaxRating = 5
)

// Look is a saved outfit. Items is a snapshot of the wardrobe pieces at the
// time of generation, stored as one json column.
type Look struct {
	ID        string                            `gorm:"primarykey" json:"id"`
	Items     datatypes.JSONSlice[ClothingItem] `gorm:"type:jsonb" json:"items"`
	Rating    int                               `json:"rating"`
	CreatedAt time.Time                         `gorm:"index" json:"created_at"`
	UserID    *string                           `gorm:"index" json:"user_id,omitempty"`
}

func (Look) TableName() string {
	return "looks"
}
