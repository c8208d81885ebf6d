package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/auth"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/infrastructure/backend"
)

// Locals keys de Fiber.
const (
	LocalSession   = "session"
	LocalRequestID = "request_id"
)

// AuthMiddleware abre la cookie de sesión y deja el token en el contexto de la petición
// para que el cliente del backend lo envíe como Bearer. Sin sesión, o con un token ya
// vencido, se comporta como un 401 del backend.
func AuthMiddleware(store *SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := store.Load(c)
		if sess.Expired(time.Now()) {
			return domain.ErrUnauthorized
		}
		c.Locals(LocalSession, sess)
		c.SetUserContext(backend.WithToken(c.UserContext(), sess.Token))
		return c.Next()
	}
}

// GetSession devuelve la sesión cargada por AuthMiddleware (nil en rutas públicas).
func GetSession(c *fiber.Ctx) *auth.Session {
	s, _ := c.Locals(LocalSession).(*auth.Session)
	return s
}

// ctx contexto de la petición armado por RequestContext y AuthMiddleware: lleva el
// request id, el token y vence con el plazo de la petición.
func ctx(c *fiber.Ctx) context.Context {
	return c.UserContext()
}
