package handler

import (
	"net/http"
	"time"

	"marketplace/internal/middleware"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orders  *usecase.OrderUsecase
	ratings *usecase.RatingUsecase
}

func NewOrderHandler(orders *usecase.OrderUsecase, ratings *usecase.RatingUsecase) *OrderHandler {
	return &OrderHandler{orders: orders, ratings: ratings}
}

type OrderCreateRequest struct {
	Items       []usecase.OrderItemInput `json:"items"`
	PaymentType string                   `json:"payment_type"`
	TimeReceive time.Time                `json:"time_receive"`
	DiscountID  *string                  `json:"discount_id"`
}

type RateOrderRequest struct {
	Star    int      `json:"star"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/orders")
	g.Use(middleware.Principal())

	g.POST("", h.create)
	g.GET("", h.history)
	g.POST("/:id/cancel", h.cancel)
	g.POST("/:id/rate", h.rate)
}

func (h *OrderHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.orders.PlaceOrder(c.Request().Context(), userID, usecase.PlaceOrderInput{
		Items:       req.Items,
		PaymentType: req.PaymentType,
		TimeReceive: req.TimeReceive,
		DiscountID:  req.DiscountID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) history(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.orders.HistoryOrder(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) cancel(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.orders.CancelOrder(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) rate(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req RateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.ratings.RateOrder(c.Request().Context(), userID, c.Param("id"), usecase.RateOrderInput{
		Star:    req.Star,
		Content: req.Content,
		Images:  req.Images,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
