// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"release-notes-webhook/internal/mapper"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, status and duration. Responses of a
// trigger run also carry the named slot outcome.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	log = log.Named("http.access")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}

		fields := []interface{}{
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"bytes", len(c.Response().Body()),
			"duration_ms", float64(dur.Microseconds()) / 1000.0,
			"request_id", reqID,
		}
		if slot := c.GetRespHeader(mapper.HeaderNamedSlot); slot != "" {
			fields = append(fields, "named_slot", slot, "named_key", c.GetRespHeader(mapper.HeaderNamedKey))
		}
		log.Infow("http", fields...)
		return err
	}
}
