package repository

import "context"

// CRUDRepository operaciones comunes de los recursos /{endpoint}/list|add|update|delete.
// payload puede ser un struct (JSON) o *MultipartForm.
type CRUDRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload any) error
	Update(ctx context.Context, id string, payload any) error
	Delete(ctx context.Context, id string) error
}
