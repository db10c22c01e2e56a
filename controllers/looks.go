package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"lookupapi/config"
	"lookupapi/models"
	"lookupapi/services"

	"github.com/labstack/echo/v4"
)

type LooksController struct {
	Generator services.LookGeneratorProvider
	Upsell    config.UpsellConfig
}

func (controller *LooksController) LooksRoutes(g *echo.Group) {
	g.POST("/generate", controller.GenerateLook)
	g.POST("", controller.SaveLook)
	g.GET("", controller.ListLooks)
}

func (controller *LooksController) GenerateLook(c echo.Context) error {
	persistence, ok := currentPersistence(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Storage is not available"})
	}
	items := persistence.LoadItems(c.Request().Context(), currentOwner(c))
	if err := services.CheckWardrobeSize(items); err != nil {
		if errors.Is(err, services.ErrWardrobeTooSmall) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Add at least 3 items to your wardrobe to generate looks"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	look := controller.Generator.Generate(items)
	log.Printf("[Looks] Generated look with %d items from %d", len(look), len(items))

	return c.JSON(http.StatusOK, models.GeneratedLookOut{
		Items: look,
		Offer: controller.offer(time.Now()),
	})
}

func (controller *LooksController) SaveLook(c echo.Context) error {
	var req models.SaveLookIn
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

	saved := persistence.SaveLook(c.Request().Context(), currentOwner(c), models.Look{
		Items:  req.Items,
		Rating: *req.Rating,
	})

	return c.JSON(http.StatusCreated, saved)
}

func (controller *LooksController) ListLooks(c echo.Context) error {
	persistence, ok := currentPersistence(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Storage is not available"})
	}
	return c.JSON(http.StatusOK, persistence.LoadLooks(c.Request().Context(), currentOwner(c)))
}

// offer is the premium upsell shown next to a generated look; it expires
// Upsell.Window after generation.
func (controller *LooksController) offer(now time.Time) models.UpsellOffer {
	upsell := controller.Upsell
	return models.UpsellOffer{
		Plan:             models.Premium,
		Installments:     upsell.Installments,
		InstallmentPrice: upsell.InstallmentPrice,
		FullPrice:        upsell.FullPrice,
		Currency:         upsell.Currency,
		Bonus:            upsell.Bonus,
		ExpiresAt:        now.Add(upsell.Window).UTC(),
	}
}
