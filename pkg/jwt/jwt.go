// Package jwt inspecciona los tokens emitidos por el backend.
//
// El frontend no tiene el secreto de firma: la verificación la hace el backend en cada
// petición. Aquí solo se leen los claims para mostrar el usuario/rol y para detectar un
// token ya vencido antes de gastar una llamada HTTP.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims que agrega el backend (flask_jwt_extended: sub + additional_claims).
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
	Username  string `json:"username,omitempty"`
}

// Inspect decodifica el token SIN verificar la firma.
func Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("jwt: token vacío")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: token malformado: %w", err)
	}
	return claims, nil
}

// Expired indica si el claim exp ya pasó. Un token sin exp nunca vence localmente.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}

// DisplayName nombre a mostrar en la barra superior: el username del token o, si no
// lo trae (sub suele ser un id numérico), fallback.
func (c *Claims) DisplayName(fallback string) string {
	if c.Username != "" {
		return c.Username
	}
	return fallback
}
