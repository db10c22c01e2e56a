package models

type CreateItemIn struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"required,category"`
	Image    string `json:"image" validate:"required,max=2000"`
	Color    string `json:"color" validate:"omitempty,max=50"`
	Size     string `json:"size" validate:"omitempty,max=20"`
}

type ItemUploadUrlIn struct {
	FileName string `json:"file_name" validate:"required,max=200"`
}

type ItemUploadUrlOut struct {
	Image     string `json:"image"`
	UploadUrl string `json:"upload_url"`
}

type ItemOut struct {
	ClothingItem
	// Image resolved to something a browser can load
	ImageURL string `json:"image_url"`
}

type WardrobeListOut struct {
	Total       int       `json:"total"`
	Dresses     []ItemOut `json:"dresses"`
	Pants       []ItemOut `json:"pants"`
	Skirts      []ItemOut `json:"skirts"`
	Shorts      []ItemOut `json:"shorts"`
	Tops        []ItemOut `json:"tops"`
	Jackets     []ItemOut `json:"jackets"`
	Shoes       []ItemOut `json:"shoes"`
	Accessories []ItemOut `json:"accessories"`
	Other       []ItemOut `json:"other"`
}

type GeneratedLookOut struct {
	Items []ClothingItem `json:"items"`
	Offer UpsellOffer    `json:"offer"`
}

type SaveLookIn struct {
	Items  []ClothingItem `json:"items" validate:"required,min=1,max=4"`
	Rating *int           `json:"rating" validate:"required,min=0,max=5"`
}
