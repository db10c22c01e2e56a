package controllers

import (
	"fmt"
	"net/http"

	"lookupapi/models"
	"lookupapi/services"

	"github.com/labstack/echo/v4"
)

type ProfileController struct {
}

func (controller *ProfileController) ProfileRoutes(g *echo.Group) {
	g.POST("", controller.CreateProfile)
	g.GET("/me", controller.Me)
}

func (controller *ProfileController) CreateProfile(c echo.Context) error {
	var req models.ProfileIn
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

	created := persistence.CreateProfile(c.Request().Context(), models.UserProfile{
		Name:   req.Name,
		Avatar: req.Avatar,
		Height: req.Height,
		Weight: req.Weight,
		Style:  req.Style,
	})

	return c.JSON(http.StatusCreated, models.ProfileOut{
		Profile: created,
		OwnerID: services.StrPointer(created.ID),
	})
}

func (controller *ProfileController) Me(c echo.Context) error {
	persistence, ok := currentPersistence(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Storage is not available"})
	}
	profile, found := persistence.LoadProfile()
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Profile not found"})
	}
	return c.JSON(http.StatusOK, models.ProfileOut{
		Profile: profile,
		OwnerID: currentOwner(c),
	})
}
