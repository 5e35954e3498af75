package auth

import (
	"errors"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/MajjK/ToDoAppReact/internal/domain"
)

// Claims is the token payload issued at sign-in: the user identity plus
// the role used by the access policy.
type Claims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// JWTMiddleware validates the bearer token and stores it in the echo
// context for CallerFromContext to read.
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return middleware.JWTWithConfig(middleware.JWTConfig{
		Claims:     &Claims{},
		SigningKey: []byte(secret),
	})
}

// CallerFromContext extracts the caller identity placed there by the
// JWT middleware.
func CallerFromContext(c echo.Context) (domain.Caller, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return domain.Caller{}, errors.New("missing identity token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return domain.Caller{}, errors.New("unexpected token claims")
	}
	return domain.Caller{ID: claims.UserID, Role: claims.Role}, nil
}
