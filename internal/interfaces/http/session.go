package http

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/jhoicas/isp-backoffice/internal/application/auth"
	"github.com/jhoicas/isp-backoffice/pkg/config"
)

const nonceSize = 24

var errBadCookie = errors.New("session: cookie inválida")

// SessionStore guarda la sesión sellada (nacl/secretbox) en una cookie HttpOnly.
// El servidor no guarda estado por usuario.
type SessionStore struct {
	name   string
	key    [32]byte
	maxAge time.Duration
	secure bool
}

// NewSessionStore deriva la clave de sellado con SHA-256 del secreto configurado.
func NewSessionStore(cfg config.SessionConfig) *SessionStore {
	name := cfg.CookieName
	if name == "" {
		name = "isp_session"
	}
	return &SessionStore{
		name:   name,
		key:    sha256.Sum256([]byte(cfg.Secret)),
		maxAge: cfg.MaxAge,
		secure: cfg.Secure,
	}
}

// Name nombre de la cookie.
func (s *SessionStore) Name() string { return s.name }

// Seal serializa y cifra la sesión.
func (s *SessionStore) Seal(sess *auth.Session) (string, error) {
	plain, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("session: serializar: %w", err)
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("session: nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], plain, &nonce, &s.key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open descifra una cookie; cualquier manipulación devuelve error.
func (s *SessionStore) Open(value string) (*auth.Session, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return nil, errBadCookie
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return nil, errBadCookie
	}
	var sess auth.Session
	if err := json.Unmarshal(plain, &sess); err != nil {
		return nil, errBadCookie
	}
	return &sess, nil
}

// Save escribe la cookie de sesión.
func (s *SessionStore) Save(c *fiber.Ctx, sess *auth.Session) error {
	value, err := s.Seal(sess)
	if err != nil {
		return err
	}
	expires := sess.ExpiresAt
	if s.maxAge > 0 {
		if limit := time.Now().Add(s.maxAge); limit.Before(expires) {
			expires = limit
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// Load lee la sesión; nil si no hay cookie o no se puede abrir.
func (s *SessionStore) Load(c *fiber.Ctx) *auth.Session {
	value := c.Cookies(s.name)
	if value == "" {
		return nil
	}
	sess, err := s.Open(value)
	if err != nil {
		return nil
	}
	return sess
}

// Clear borra la cookie de sesión.
func (s *SessionStore) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
