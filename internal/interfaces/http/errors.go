package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/infrastructure/backend"
	"github.com/jhoicas/isp-backoffice/pkg/logger"
)

// LoginExpiredURL destino tras un 401: la página de login avisa que la sesión venció.
const LoginExpiredURL = "/login?expired=1"

// ErrorHandler centraliza la respuesta de errores de Fiber.
//
//   - ErrUnauthorized (del backend o por token vencido): borra la cookie y 303 a /login.
//   - El resto: página de error con el mensaje crudo y el status correspondiente.
func ErrorHandler(store *SessionStore, log *logger.Logger) fiber.ErrorHandler {
	log = log.Component("http")
	return func(c *fiber.Ctx, err error) error {
		if errors.Is(err, domain.ErrUnauthorized) {
			store.Clear(c)
			return c.Redirect(LoginExpiredURL, fiber.StatusSeeOther)
		}
		status := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		}
		layout := "layouts/public"
		page := dto.Page{Title: "Error", Error: userMessage(err)}
		if sess := GetSession(c); sess != nil {
			layout = "layouts/main"
			page.User = sess.User()
		}
		c.Status(status)
		if rerr := c.Render("error", fiber.Map{"Page": page, "Status": status}, layout); rerr != nil {
			return c.Status(status).SendString(page.Error)
		}
		return nil
	}
}

// statusFor traduce el error a un status HTTP para la respuesta al navegador.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrRateLimited):
		return fiber.StatusTooManyRequests
	case errors.Is(err, domain.ErrUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// userMessage texto del banner rojo: el mensaje del backend tal cual cuando existe.
func userMessage(err error) string {
	var (
		apiErr *backend.APIError
		ve     *domain.ValidationError
		fe     *fiber.Error
	)
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.As(err, &fe):
		return fe.Message
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests, please wait a minute and try again"
	case errors.Is(err, domain.ErrUnavailable):
		return "The server could not be reached, please try again later"
	case errors.Is(err, domain.ErrNotFound):
		return "The requested record was not found"
	default:
		return err.Error()
	}
}

// isFormError errores que vuelven al formulario en lugar de a la página de error.
func isFormError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrConflict)
}
