package usecase

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// CRUDUseCase casos de uso de alta/edición/baja comunes a todos los recursos.
// Valida el formulario antes de tocar el backend.
type CRUDUseCase[T any] struct {
	repo repository.CRUDRepository[T]
}

// NewCRUDUseCase construye el caso de uso.
func NewCRUDUseCase[T any](repo repository.CRUDRepository[T]) *CRUDUseCase[T] {
	return &CRUDUseCase[T]{repo: repo}
}

// List devuelve la lista completa tal como la entrega el backend.
func (uc *CRUDUseCase[T]) List(ctx context.Context) ([]T, error) {
	return uc.repo.List(ctx)
}

// Save crea (id vacío) o actualiza.
func (uc *CRUDUseCase[T]) Save(ctx context.Context, id string, form dto.Form) error {
	if err := dto.Validate(form); err != nil {
		return err
	}
	if id == "" {
		return uc.repo.Create(ctx, form.Payload())
	}
	return uc.repo.Update(ctx, id, form.Payload())
}

// Delete elimina por ID.
func (uc *CRUDUseCase[T]) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Find busca en la lista por ID (para precargar formularios de recursos sin GET /:id).
func (uc *CRUDUseCase[T]) Find(ctx context.Context, id string, idOf func(T) string) (*T, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if idOf(items[i]) == id {
			return &items[i], nil
		}
	}
	return nil, errNotFound(id)
}
