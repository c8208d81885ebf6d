package repository

import "context"

// LoginResult respuesta de POST /auth/login.
type LoginResult struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
}

// AuthRepository puerto de /auth.
type AuthRepository interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context) error
}
