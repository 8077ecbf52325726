package handler

import (
	"errors"
	"net/http"

	"marketplace/internal/middleware"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidBasket),
		errors.Is(err, usecase.ErrDiscountNotFound),
		errors.Is(err, usecase.ErrProductInactive),
		errors.Is(err, usecase.ErrOrderNotCompleted),
		errors.Is(err, usecase.ErrDuplicateRating):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, usecase.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, usecase.ErrOrderNotFound),
		errors.Is(err, usecase.ErrNotificationNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, usecase.ErrTransientConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

func getUserIDFromContext(c echo.Context) (string, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	if v == nil {
		return "", false
	}

	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}
