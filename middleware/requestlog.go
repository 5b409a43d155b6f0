package middleware

import (
	"time"

	"booking-registry/logger"
	"booking-registry/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RequestLogger writes one row per request to the logs table through the
// async logger. Response bodies are capped so binary downloads do not land
// in the database.
func RequestLogger(asyncLogger *logger.AsyncLogger) fiber.Handler {
	const maxBody = 4096

	return func(c *fiber.Ctx) error {
		err := c.Next()

		actor := ""
		if claims, ok := c.Locals("user").(jwt.MapClaims); ok {
			if uuid, ok := claims["uuid"].(string); ok {
				actor = uuid
			}
		}

		asyncLogger.Log(types.LogEntry{
			Method:          c.Method(),
			URL:             c.OriginalURL(),
			RequestBody:     truncate(c.Body(), maxBody),
			RequestHeaders:  c.Request().Header.String(),
			ResponseBody:    truncate(c.Response().Body(), maxBody),
			ResponseHeaders: c.Response().Header.String(),
			StatusCode:      c.Response().StatusCode(),
			ActorUuid:       actor,
			CreatedAt:       time.Now(),
		})

		return err
	}
}

func truncate(b []byte, limit int) string {
	if len(b) > limit {
		return string(b[:limit])
	}
	return string(b)
}
