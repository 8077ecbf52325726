package handler

import (
	"net/http"

	"marketplace/internal/middleware"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

type DiscountHandler struct {
	uc *usecase.DiscountUsecase
}

func NewDiscountHandler(uc *usecase.DiscountUsecase) *DiscountHandler {
	return &DiscountHandler{uc: uc}
}

func (h *DiscountHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/stores/:storeId/discounts")
	g.Use(middleware.Principal())

	g.GET("", h.listForStore)
}

func (h *DiscountHandler) listForStore(c echo.Context) error {
	if _, ok := getUserIDFromContext(c); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListForStore(c.Request().Context(), c.Param("storeId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
