package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

var _ repository.AuthRepository = (*AuthRepository)(nil)

// AuthRepository /auth.
type AuthRepository struct {
	c *Client
}

// NewAuthRepository construye el repositorio.
func NewAuthRepository(c *Client) *AuthRepository {
	return &AuthRepository{c: c}
}

// Login POST /auth/login.
func (r *AuthRepository) Login(ctx context.Context, username, password string) (*repository.LoginResult, error) {
	in := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}
	var out repository.LoginResult
	if err := r.c.Do(ctx, http.MethodPost, "/auth/login", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout POST /auth/logout con el token del contexto.
func (r *AuthRepository) Logout(ctx context.Context) error {
	return r.c.Do(ctx, http.MethodPost, "/auth/logout", struct{}{}, nil)
}
