package middleware

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"booking-registry/models/user"
	"booking-registry/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// JWTSecret returns the HMAC signing key.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// ParseToken verifies an HS256 token and returns its claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JWTSecret(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Authenticated verifies the bearer token and loads the acting user. The
// user row is loaded fresh so role changes and account disabling take
// effect immediately, not at next token issue.
func Authenticated(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization header missing")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return unauthorized(c, "Invalid token format")
		}

		claims, err := ParseToken(tokenParts[1])
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		userUuid, ok := claims["uuid"].(string)
		if !ok || userUuid == "" {
			return unauthorized(c, "User UUID not found in token")
		}

		var u user.User
		if err := db.Where("uuid = ?", userUuid).First(&u).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return unauthorized(c, "User not found")
			}
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Message: "Database error",
				Status:  fiber.StatusInternalServerError,
			})
		}

		if !u.IsActive() {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Account is not active",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("user", claims)
		c.Locals("authUser", &u)
		return c.Next()
	}
}

// RequireRoles allows the request through only when the authenticated
// user's role is in the given set. Must run after Authenticated.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, ok := c.Locals("authUser").(*user.User)
		if !ok || u == nil {
			return unauthorized(c, "Authentication required")
		}
		if !u.HasAnyRole(roles...) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Insufficient role",
				Status:  fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}
