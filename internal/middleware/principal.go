package middleware

import (
	"net/http"
	"strings"

	"marketplace/internal/domain/model"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey   = "user_id"   // string (uuid)
	CtxUserRoleKey = "user_role" // string
)

// 認証は手前のゲートウェイが済ませている前提。
// ここでは検証済みプリンシパルをヘッダから受け取ってcontextへ移すだけ。
func Principal() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get("X-User-Id"))
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			role := strings.TrimSpace(c.Request().Header.Get("X-User-Role"))
			if role == "" {
				role = string(model.RoleUser)
			}

			//contextへ保存
			c.Set(CtxUserIDKey, userID)
			c.Set(CtxUserRoleKey, role)
			return next(c)
		}
	}
}

func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}
