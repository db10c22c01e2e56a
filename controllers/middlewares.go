package controllers

import (
	"fmt"

	"lookupapi/services"

	"github.com/labstack/echo/v4"
)

// OwnerHeader lets a caller act for another profile on the same device.
const OwnerHeader = "X-Owner-Id"

// OwnerMiddleware resolves the owner of the request and stores it as
// "ownerId" (*string, nil when the device has no remote profile).
func OwnerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		persistence, ok := c.Get("__persistence").(services.PersistenceProvider)
		if !ok {
			return echo.ErrInternalServerError
		}
		var owner *string
		if header := c.Request().Header.Get(OwnerHeader); header != "" {
			owner = &header
		} else {
			owner = persistence.CurrentOwner()
		}
		if owner == nil {
			fmt.Println("[Owner] No owner on this device, using local storage")
		}
		c.Set("ownerId", owner)
		return next(c)
	}
}

func currentOwner(c echo.Context) *string {
	owner, _ := c.Get("ownerId").(*string)
	return owner
}

func currentPersistence(c echo.Context) (services.PersistenceProvider, bool) {
	persistence, ok := c.Get("__persistence").(services.PersistenceProvider)
	return persistence, ok
}
