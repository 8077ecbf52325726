package server

import (
	"marketplace/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	orderH *handler.OrderHandler,
	notificationH *handler.NotificationHandler,
	discountH *handler.DiscountHandler,
) {
	orderH.RegisterRoutes(e)
	notificationH.RegisterRoutes(e)
	discountH.RegisterRoutes(e)
}
