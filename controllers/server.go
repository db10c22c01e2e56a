package controllers

import (
	"net/http"

	"lookupapi/config"
	"lookupapi/models"
	"lookupapi/services"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func SetupServer(
	persistence services.PersistenceProvider,
	generator services.LookGeneratorProvider,
	awsService services.AWSServiceProvider,
	urlCache services.URLCacheServiceProvider,
	cfg *config.Config,
) *echo.Echo {

	e := echo.New()
	v := validator.New()
	v.RegisterValidation("category", models.ValidateCategory)
	e.Validator = &CustomValidator{validator: v}
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("__persistence", persistence)
			return next(c)
		}
	})

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, OwnerHeader},
	}))

	profileController := ProfileController{}
	profileGroup := e.Group("/profile", OwnerMiddleware)
	profileController.ProfileRoutes(profileGroup)

	wardrobeController := WardrobeController{
		AWSService: awsService,
		URLCache:   urlCache,
		BucketName: cfg.R2.BucketName,
	}
	wardrobeGroup := e.Group("/wardrobe", OwnerMiddleware)
	wardrobeController.WardrobeRoutes(wardrobeGroup)

	looksController := LooksController{Generator: generator, Upsell: cfg.Upsell}
	looksGroup := e.Group("/looks", OwnerMiddleware)
	looksController.LooksRoutes(looksGroup)

	return e
}
