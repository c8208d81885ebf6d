package repository

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// TaskStatusUpdate cuerpo de PUT /employee-portal/{tasks|recoveries}/:id/status.
type TaskStatusUpdate struct {
	Status          entity.TaskStatus `json:"status"`
	CompletionNotes *string           `json:"completion_notes"`
	CompletionProof *string           `json:"completion_proof"`
}

// TaskRepository puerto de /tasks.
type TaskRepository interface {
	CRUDRepository[entity.Task]
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Task, error)
	UpdateStatus(ctx context.Context, id string, in TaskStatusUpdate) error
}

// RecoveryTaskRepository puerto de /recovery-tasks.
type RecoveryTaskRepository interface {
	CRUDRepository[entity.RecoveryTask]
	UpdateStatus(ctx context.Context, id string, in TaskStatusUpdate) error
}

// InventoryRepository puerto de /inventory.
type InventoryRepository interface {
	CRUDRepository[entity.InventoryItem]
}
