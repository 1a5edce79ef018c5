package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"stayInsights/internal/rest"
	"stayInsights/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type AppClaims struct {
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware verifies a bearer token issued by the platform's auth
// service and exposes tenant_id / role to handlers. Tokens are only
// verified here, never issued.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, rest.ResponseError{Message: "Missing authorization header"})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, rest.ResponseError{Message: "Invalid authorization format"})
			}

			claims := &AppClaims{}
			token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, rest.ResponseError{Message: "Invalid token"})
			}

			if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
				return c.JSON(http.StatusForbidden, rest.ResponseError{Message: "Token expired"})
			}

			c.Set("tenant_id", claims.TenantID)
			c.Set("role", claims.Role)
			c.Set("user_id", claims.Subject)

			return next(c)
		}
	}
}

// AdminOnly restricts a route to admin tokens. Must run after AuthMiddleware.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != "admin" {
				return c.JSON(http.StatusForbidden, rest.ResponseError{Message: "Admin access required"})
			}
			return next(c)
		}
	}
}

// ErrorHandler is the echo fallback for errors that escape handlers.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprintf("%v", he.Message)
	}

	logger.Error("Unhandled request error", "path", c.Path(), "error", err)

	if jsonErr := c.JSON(code, rest.ResponseError{Message: message}); jsonErr != nil {
		logger.Error("Failed to write error response", jsonErr)
	}
}
