package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"slices"
	"sync"

	"lookupapi/models"
	"lookupapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type WardrobeController struct {
	AWSService services.AWSServiceProvider
	URLCache   services.URLCacheServiceProvider
	BucketName string
}

func (controller *WardrobeController) WardrobeRoutes(g *echo.Group) {
	g.GET("/list", controller.ListItems)
	g.POST("/create", controller.CreateItem)
	g.POST("/upload-url", controller.UploadUrl)
	g.DELETE("/:id", controller.DeleteItem)
}

func (controller *WardrobeController) CreateItem(c echo.Context) error {
	var req models.CreateItemIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	persistence, ok := currentPersistence(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Storage is not available"})
	}
	owner := currentOwner(c)
	category, _ := models.ParseCategory(req.Category)

	item := models.ClothingItem{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Category: category,
		Image:    req.Image,
		Color:    req.Color,
		Size:     req.Size,
		UserID:   owner,
	}
	ctx := c.Request().Context()
	items := persistence.LoadItems(ctx, owner)
	items = append(items, item)
	persistence.SaveItems(ctx, owner, items)
	log.Printf("[Wardrobe] Item %s (%s) added, wardrobe size %d", item.ID, item.Category.Label(), len(items))

	return c.JSON(http.StatusCreated, item)
}

func (controller *WardrobeController) DeleteItem(c echo.Context) error {
	persistence, ok := currentPersistence(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Storage is not available"})
	}
	id := c.Param("id")
	owner := currentOwner(c)
	ctx := c.Request().Context()

	items := persistence.LoadItems(ctx, owner)
	remaining := slices.DeleteFunc(slices.Clone(items), func(item models.ClothingItem) bool {
		return item.ID == id
	})
	if len(remaining) == len(items) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
	}
	persistence.SaveItems(ctx, owner, remaining)

	return c.JSON(http.StatusOK, map[string]string{"message": "Item removed"})
}

func (controller *WardrobeController) UploadUrl(c echo.Context) error {
	var req models.ItemUploadUrlIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if !services.IsAllowedImage(req.FileName) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Only jpg, png, heic and webp images are supported"})
	}

	objectKey := services.ItemImageKey(req.FileName)
	uploadUrl, err := controller.AWSService.PresignLink(c.Request().Context(), controller.BucketName, objectKey)
	if err != nil {
		log.Printf("[Wardrobe] Unable to presign upload for %s: %s", objectKey, err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Could not prepare the image upload, please try again"})
	}

	return c.JSON(http.StatusOK, models.ItemUploadUrlOut{Image: objectKey, UploadUrl: uploadUrl})
}

func (controller *WardrobeController) ListItems(c echo.Context) error {
	persistence, ok := currentPersistence(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Storage is not available"})
	}
	ctx := c.Request().Context()
	items := persistence.LoadItems(ctx, currentOwner(c))
	resolved := controller.resolveItemImages(ctx, items)

	response := models.WardrobeListOut{
		Total:       len(resolved),
		Dresses:     []models.ItemOut{},
		Pants:       []models.ItemOut{},
		Skirts:      []models.ItemOut{},
		Shorts:      []models.ItemOut{},
		Tops:        []models.ItemOut{},
		Jackets:     []models.ItemOut{},
		Shoes:       []models.ItemOut{},
		Accessories: []models.ItemOut{},
		Other:       []models.ItemOut{},
	}
	for _, item := range resolved {
		switch item.Category {
		case models.Dresses:
			response.Dresses = append(response.Dresses, item)
		case models.Pants:
			response.Pants = append(response.Pants, item)
		case models.Skirts:
			response.Skirts = append(response.Skirts, item)
		case models.Shorts:
			response.Shorts = append(response.Shorts, item)
		case models.Tops:
			response.Tops = append(response.Tops, item)
		case models.Jackets:
			response.Jackets = append(response.Jackets, item)
		case models.Shoes:
			response.Shoes = append(response.Shoes, item)
		case models.Accessories:
			response.Accessories = append(response.Accessories, item)
		default:
			response.Other = append(response.Other, item)
		}
	}

	return c.JSON(http.StatusOK, response)
}

// resolveItemImages turns uploaded image keys into presigned read urls
// concurrently. Plain urls are passed through. When the url cache fails the
// bucket is asked directly; a failed item keeps an empty ImageURL.
func (controller *WardrobeController) resolveItemImages(ctx context.Context, items []models.ClothingItem) []models.ItemOut {
	resolved := make([]models.ItemOut, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		if !services.IsObjectKey(item.Image) {
			resolved[i] = models.ItemOut{ClothingItem: item, ImageURL: item.Image}
			continue
		}
		wg.Add(1)
		go func(index int, item models.ClothingItem) {
			defer wg.Done()
			resolved[index] = models.ItemOut{ClothingItem: item, ImageURL: controller.readURL(ctx, item.Image)}
		}(i, item)
	}
	wg.Wait()

	return resolved
}

func (controller *WardrobeController) readURL(ctx context.Context, objectKey string) string {
	url, err := controller.URLCache.GetReadURL(ctx, objectKey)
	if err == nil {
		return url
	}
	log.Printf("[Wardrobe] URL cache failed for '%s': %v, presigning directly", objectKey, err)
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("failure_type", "cache_system")
		scope.SetExtra("objectKey", objectKey)
		sentry.CaptureException(err)
	})

	url, err = controller.AWSService.GetPresignedR2FileReadURL(ctx, controller.BucketName, objectKey)
	if err != nil {
		log.Printf("[Wardrobe] Presign fallback failed for '%s': %v", objectKey, err)
		sentry.CaptureException(err)
		return ""
	}
	return url
}
