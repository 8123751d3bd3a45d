package server

import (
	"net/http"

	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Order    *handler.OrderHandler
	Item     *handler.ItemHandler
	Product  *handler.ProductHandler
	Price    *handler.PriceHandler
	Status   *handler.StatusHandler
	Customer *handler.CustomerHandler
	User     *handler.UserHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.Order.RegisterRoutes(e)
	h.Item.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Price.RegisterRoutes(e)
	h.Status.RegisterRoutes(e)
	h.Customer.RegisterRoutes(e)
	h.User.RegisterRoutes(e)
}
