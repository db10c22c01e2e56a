package services

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Uploaded item images live under this prefix in the bucket.
const ItemImagePrefix = "wardrobe/"

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".heic", ".heif", ".webp"}

func IsAllowedImage(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	return slices.Contains(allowedImageExtensions, ext)
}

// ItemImageKey builds a collision free object key keeping the original extension.
func ItemImageKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("%s%s%s", ItemImagePrefix, uuid.NewString(), ext)
}

// IsObjectKey tells uploaded images apart from plain urls pasted by the user.
func IsObjectKey(image string) bool {
	return strings.HasPrefix(image, ItemImagePrefix)
}

func StrPointer(str string) *string {
	if str == "" {
		return nil
	}
	return &str
}
