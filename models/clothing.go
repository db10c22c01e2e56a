package models

// ClothingItem is one piece of the wardrobe. RowID is the storage key of the
// remote row; ID is the opaque item id, unique within the owner's wardrobe.
type ClothingItem struct {
	RowID    uint     `gorm:"primarykey" json:"-"`
	ID       string   `gorm:"index;not null" json:"id"`
	Name     string   `json:"name"`
	Category Category `gorm:"type:text" json:"category"` // tops, pants, shoes, accessories...
	Image    string   `gorm:"type:text" json:"image"`    // url or uploaded object key
	Color    string   `json:"color"`
	Size     string   `json:"size"`
	UserID   *string  `gorm:"index" json:"user_id,omitempty"`
}

func (ClothingItem) TableName() string {
	return "wardrobe_items"
}

// CloneItems copies items so later edits of the source slice never leak into the copy.
func CloneItems(items []ClothingItem) []ClothingItem {
	cloned := make([]ClothingItem, len(items))
	for i, item := range items {
		if item.UserID != nil {
			owner := *item.UserID
			item.UserID = &owner
		}
		cloned[i] = item
	}
	return cloned
}
