package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/auth"
	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/pkg/logger"
)

// AuthHandler login y logout.
type AuthHandler struct {
	companyName string
	uc          *auth.AuthUseCase
	store       *SessionStore
	log         *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(companyName string, uc *auth.AuthUseCase, store *SessionStore, log *logger.Logger) *AuthHandler {
	return &AuthHandler{companyName: companyName, uc: uc, store: store, log: log.Component("auth")}
}

func (h *AuthHandler) render(c *fiber.Ctx, form dto.LoginForm, formErr error, status int) error {
	data := fiber.Map{
		"Page":    dto.Page{Title: "Sign in", CompanyName: h.companyName, Flash: popFlash(c)},
		"Form":    form,
		"Expired":    c.Query("expired") == "1",
		"Error":      "",
		"ErrorField": "",
	}
	if formErr != nil {
		data["Error"] = userMessage(formErr)
		var ve *domain.ValidationError
		if errors.As(formErr, &ve) {
			data["ErrorField"] = ve.Field
		}
	}
	c.Status(status)
	return c.Render("login", data, layoutPublic)
}

// LoginPage GET /login. Con una sesión vigente va directo al dashboard.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if sess := h.store.Load(c); sess != nil && !sess.Expired(time.Now()) {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return h.render(c, dto.LoginForm{}, nil, fiber.StatusOK)
}

// Login POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form submission")
	}
	sess, err := h.uc.Login(ctx(c), in)
	if err != nil {
		in.Password = ""
		if isFormError(err) {
			return h.render(c, in, err, fiber.StatusUnprocessableEntity)
		}
		return h.render(c, in, err, statusFor(err))
	}
	if err := h.store.Save(c, sess); err != nil {
		return err
	}
	h.log.Info().Str("user", sess.Name).Str("role", sess.Role).Msg("login")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout POST /logout. El aviso al backend es de mejor esfuerzo; la cookie se borra siempre.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(ctx(c)); err != nil {
		h.log.Warn().Err(err).Msg("logout en backend falló")
	}
	h.store.Clear(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
