// Package auth maneja el login contra el backend y la sesión del usuario.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
	"github.com/jhoicas/isp-backoffice/pkg/jwt"
)

// MsgInvalidCredentials mensaje del formulario de login ante un 401.
const MsgInvalidCredentials = "Invalid credentials"

// MsgExpiredToken el backend entregó un token que ya venció (reloj desfasado).
const MsgExpiredToken = "The session token issued by the server is already expired"

// DefaultTTL vigencia asumida cuando el token no trae exp.
const DefaultTTL = time.Hour

// Session lo que se sella en la cookie tras un login exitoso.
type Session struct {
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CompanyID string    `json:"company_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired la sesión ya no sirve y hay que volver a /login.
func (s *Session) Expired(now time.Time) bool {
	return s == nil || s.Token == "" || !now.Before(s.ExpiresAt)
}

// User vista de la topbar.
func (s *Session) User() *dto.SessionUser {
	if s == nil {
		return nil
	}
	return &dto.SessionUser{Name: s.Name, Role: s.Role, CompanyID: s.CompanyID}
}

// AuthUseCase login/logout delegados al backend.
type AuthUseCase struct {
	authRepo repository.AuthRepository
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(authRepo repository.AuthRepository) *AuthUseCase {
	return &AuthUseCase{authRepo: authRepo, now: time.Now}
}

// Login valida el formulario, autentica contra POST /auth/login y arma la sesión.
// Un 401 del backend aquí no es una sesión vencida: vuelve como error de formulario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginForm) (*Session, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	res, err := uc.authRepo.Login(ctx, in.Username, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.NewValidationError("password", MsgInvalidCredentials)
		}
		return nil, err
	}
	if res == nil || res.Token == "" {
		return nil, domain.NewValidationError("password", MsgInvalidCredentials)
	}
	return uc.sessionFrom(res, in.Username)
}

// Logout avisa al backend; la cookie se borra igual aunque falle.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.authRepo.Logout(ctx)
}

// sessionFrom completa la sesión con los claims del token; un token opaco deja los
// datos de la respuesta y DefaultTTL.
func (uc *AuthUseCase) sessionFrom(res *repository.LoginResult, username string) (*Session, error) {
	now := uc.now()
	s := &Session{
		Token:     res.Token,
		Name:      username,
		Role:      res.Role,
		CompanyID: res.CompanyID,
		ExpiresAt: now.Add(DefaultTTL),
	}
	claims, err := jwt.Inspect(res.Token)
	if err != nil {
		return s, nil
	}
	if claims.Expired(now) {
		return nil, domain.NewValidationError("password", MsgExpiredToken)
	}
	s.Name = claims.DisplayName(username)
	if s.Role == "" {
		s.Role = claims.Role
	}
	if s.CompanyID == "" {
		s.CompanyID = claims.CompanyID
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
