package http

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
)

const flashCookie = "isp_flash"

// setFlash deja un mensaje para la próxima página (toast tras una mutación).
func setFlash(c *fiber.Ctx, kind, message string) {
	raw, _ := json.Marshal(dto.Flash{Kind: kind, Message: message})
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// popFlash lee y borra el mensaje pendiente.
func popFlash(c *fiber.Ctx) *dto.Flash {
	value := c.Cookies(flashCookie)
	if value == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{Name: flashCookie, Path: "/", Expires: time.Unix(0, 0), MaxAge: -1})
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var f dto.Flash
	if err := json.Unmarshal(raw, &f); err != nil || f.Message == "" {
		return nil
	}
	return &f
}

// redirectWithFlash 303 tras una mutación exitosa.
func redirectWithFlash(c *fiber.Ctx, to, message string) error {
	setFlash(c, "success", message)
	return c.Redirect(to, fiber.StatusSeeOther)
}
