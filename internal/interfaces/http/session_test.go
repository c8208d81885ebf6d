package http_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-backoffice/internal/application/auth"
	apphttp "github.com/jhoicas/isp-backoffice/internal/interfaces/http"
	"github.com/jhoicas/isp-backoffice/pkg/config"
)

func newStore(secret string) *apphttp.SessionStore {
	return apphttp.NewSessionStore(config.SessionConfig{CookieName: "sid", Secret: secret, MaxAge: time.Hour})
}

func TestSessionStore_SellarYAbrir(t *testing.T) {
	store := newStore("s3cret")
	in := &auth.Session{Token: "tok", Name: "admin", Role: "auditor", CompanyID: "co-1", ExpiresAt: time.Now().Add(time.Hour).UTC()}

	value, err := store.Seal(in)
	require.NoError(t, err)
	assert.NotContains(t, value, "tok", "el token no viaja en claro")

	out, err := store.Open(value)
	require.NoError(t, err)
	assert.Equal(t, in.Token, out.Token)
	assert.Equal(t, in.Role, out.Role)
	assert.True(t, in.ExpiresAt.Equal(out.ExpiresAt))
}

func TestSessionStore_RechazaManipulacionYOtraClave(t *testing.T) {
	store := newStore("s3cret")
	value, err := store.Seal(&auth.Session{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	tampered := value[:len(value)-2] + strings.Repeat("A", 2)
	if tampered == value {
		tampered = value[:len(value)-2] + "BB"
	}
	_, err = store.Open(tampered)
	assert.Error(t, err)

	_, err = newStore("otra").Open(value)
	assert.Error(t, err)

	_, err = store.Open("no-es-base64!")
	assert.Error(t, err)
}

func TestAuthMiddleware_SesionVencida(t *testing.T) {
	store := newStore("s3cret")
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		},
	})
	app.Get("/p", apphttp.AuthMiddleware(store), func(c *fiber.Ctx) error {
		return c.SendString(apphttp.GetSession(c).Role)
	})

	expired, err := store.Seal(&auth.Session{Token: "tok", ExpiresAt: time.Now().Add(-time.Minute)})
	require.NoError(t, err)
	valid, err := store.Seal(&auth.Session{Token: "tok", Role: "technician", ExpiresAt: time.Now().Add(time.Minute)})
	require.NoError(t, err)

	for name, tc := range map[string]struct {
		cookie string
		want   int
	}{
		"sin cookie": {"", http.StatusUnauthorized},
		"vencida":    {"sid=" + expired, http.StatusUnauthorized},
		"vigente":    {"sid=" + valid, http.StatusOK},
	} {
		req, _ := http.NewRequest(http.MethodGet, "/p", nil)
		if tc.cookie != "" {
			req.Header.Set("Cookie", tc.cookie)
		}
		resp, err := app.Test(req)
		require.NoError(t, err, name)
		assert.Equal(t, tc.want, resp.StatusCode, name)
	}
}

func TestIPRateLimiter_PorIP(t *testing.T) {
	rl := apphttp.NewIPRateLimiter(60, 2)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"), "ráfaga agotada")
	assert.True(t, rl.Allow("10.0.0.2"), "otro IP tiene su propio cupo")
}

func TestIPRateLimiter_Middleware429(t *testing.T) {
	rl := apphttp.NewIPRateLimiter(60, 1)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusTooManyRequests).SendString(err.Error())
		},
	})
	app.Post("/pay", rl.Middleware(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req, _ := http.NewRequest(http.MethodPost, "/pay", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	req, _ = http.NewRequest(http.MethodPost, "/pay", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
}
