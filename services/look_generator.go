package services

import (
	"errors"
	"math/rand/v2"

	"lookupapi/models"
)

// MinWardrobeSize is the smallest wardrobe callers may generate looks from.
const MinWardrobeSize = 3

var ErrWardrobeTooSmall = errors.New("add at least 3 items to your wardrobe to generate looks")

// Categories picked for every look, in output order.
var requiredLookCategories = []models.Category{models.Tops, models.Pants, models.Shoes}

// RandomSource is the only source of non-determinism of the generator.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int   { return rand.IntN(n) }
func (globalRandom) Float64() float64 { return rand.Float64() }

type LookGeneratorProvider interface {
	Generate(items []models.ClothingItem) []models.ClothingItem
}

type LookGenerator struct {
	random RandomSource
}

// NewLookGenerator uses the shared math/rand/v2 source when random is nil.
func NewLookGenerator(random RandomSource) *LookGenerator {
	if random == nil {
		random = globalRandom{}
	}
	return &LookGenerator{random: random}
}

// CheckWardrobeSize must be called before Generate; the generator itself
// happily returns short looks for small wardrobes.
func CheckWardrobeSize(items []models.ClothingItem) error {
	if len(items) < MinWardrobeSize {
		return ErrWardrobeTooSmall
	}
	return nil
}

// Generate picks one random item per required category (tops, pants, shoes),
// skipping empty ones, then adds a random accessory on a fair coin flip.
// Draw order: IntN per non-empty required category, then Float64, then IntN
// for the accessory. Returned items are copies.
func (g *LookGenerator) Generate(items []models.ClothingItem) []models.ClothingItem {
	look := make([]models.ClothingItem, 0, len(requiredLookCategories)+1)
	for _, category := range requiredLookCategories {
		if item, ok := g.pick(items, category); ok {
			look = append(look, item)
		}
	}

	accessories := filterCategory(items, models.Accessories)
	if len(accessories) > 0 && g.random.Float64() < 0.5 {
		look = append(look, accessories[g.random.IntN(len(accessories))])
	}
	return models.CloneItems(look)
}

func (g *LookGenerator) pick(items []models.ClothingItem, category models.Category) (models.ClothingItem, bool) {
	subset := filterCategory(items, category)
	if len(subset) == 0 {
		return models.ClothingItem{}, false
	}
	return subset[g.random.IntN(len(subset))], true
}

func filterCategory(items []models.ClothingItem, category models.Category) []models.ClothingItem {
	var subset []models.ClothingItem
	for _, item := range items {
		if item.Category == category {
			subset = append(subset, item)
		}
	}
	return subset
}
