package models

import (
	"database/sql/driver"
	"fmt"
	"slices"

	"lookupapi/languageutil"

	"github.com/go-playground/validator"
)

type Category string

const (
	Dresses     Category = "dresses"
	Pants       Category = "pants"
	Skirts      Category = "skirts"
	Shorts      Category = "shorts"
	Tops        Category = "tops"
	Jackets     Category = "jackets"
	Shoes       Category = "shoes"
	Accessories Category = "accessories"
)

// Categories lists every recognized category in display order.
var Categories = []Category{Dresses, Pants, Skirts, Shorts, Tops, Jackets, Shoes, Accessories}

// Portuguese labels used by the first version of the app; old local caches still carry them.
var portugueseLabels = map[string]Category{
	"vestidos":   Dresses,
	"calças":     Pants,
	"saias":      Skirts,
	"bermudas":   Shorts,
	"blusas":     Tops,
	"jaquetas":   Jackets,
	"sapatos":    Shoes,
	"acessórios": Accessories,
}

var categoryIndex = buildCategoryIndex()

func buildCategoryIndex() map[string]Category {
	index := make(map[string]Category, len(Categories)+len(portugueseLabels))
	for _, c := range Categories {
		index[languageutil.Fold(string(c))] = c
	}
	for label, c := range portugueseLabels {
		index[languageutil.Fold(label)] = c
	}
	return index
}

func (c *Category) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*c = Category(v)
	case []byte:
		*c = Category(v)
	case nil:
		*c = ""
	default:
		return fmt.Errorf("unsupported category type %T", value)
	}
	return nil
}

func (c Category) Value() (driver.Value, error) {
	return string(c), nil
}

// Known reports whether c is one of the enumerated categories.
func (c Category) Known() bool {
	return slices.Contains(Categories, c)
}

// Label is the title-cased display name.
func (c Category) Label() string {
	return languageutil.Title(string(c))
}

// ParseCategory maps English values and Portuguese labels to a Category.
// Unknown input is returned verbatim with ok=false: such items stay in the
// wardrobe but never take part in look generation.
func ParseCategory(value string) (Category, bool) {
	if c, ok := categoryIndex[languageutil.Fold(value)]; ok {
		return c, true
	}
	return Category(value), false
}

func ValidateCategory(fl validator.FieldLevel) bool {
	_, ok := ParseCategory(fl.Field().String())
	return ok
}
