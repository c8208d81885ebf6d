package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/isp-backoffice/internal/infrastructure/backend"
	"github.com/jhoicas/isp-backoffice/pkg/logger"
)

// RequestLogger asigna un request id y registra método, ruta, estado y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(fiber.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Locals(LocalRequestID, reqID)
		c.Set(fiber.HeaderXRequestID, reqID)

		err := c.Next()
		if err != nil {
			// el ErrorHandler escribe la respuesta; aquí solo se registra
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = log.Warn()
		}
		if err != nil {
			ev = ev.Err(err)
		}
		ev.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Msg("request")
		return nil
	}
}

// RequestContext deja en UserContext un contexto con el request id y un plazo de
// timeout. Al vencer, o al terminar la petición, se cancelan las llamadas al backend
// que sigan abiertas. Va después de RequestLogger.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		base := c.UserContext()
		if id, ok := c.Locals(LocalRequestID).(string); ok && id != "" {
			base = backend.WithRequestID(base, id)
		}
		rctx, cancel := context.WithTimeout(base, timeout)
		defer cancel()
		c.SetUserContext(rctx)
		return c.Next()
	}
}
