package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

var (
	_ repository.TaskRepository         = (*TaskRepository)(nil)
	_ repository.RecoveryTaskRepository = (*RecoveryTaskRepository)(nil)
	_ repository.InventoryRepository    = Resource[entity.InventoryItem]{}
)

// TaskRepository /tasks; el cambio de estado va por el portal de empleados.
type TaskRepository struct {
	Resource[entity.Task]
}

// NewTaskRepository construye el repositorio.
func NewTaskRepository(c *Client) *TaskRepository {
	return &TaskRepository{Resource: NewResource[entity.Task](c, "tasks")}
}

// ListByCustomer GET /tasks/customer/:id.
func (r *TaskRepository) ListByCustomer(ctx context.Context, customerID string) ([]entity.Task, error) {
	var out []entity.Task
	if err := r.c.Get(ctx, r.path("customer", customerID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus PUT /employee-portal/tasks/:id/status.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, in repository.TaskStatusUpdate) error {
	portal := NewResource[entity.Task](r.c, "employee-portal/tasks")
	return r.c.Do(ctx, http.MethodPut, portal.path(id, "status"), in, nil)
}

// RecoveryTaskRepository /recovery-tasks.
type RecoveryTaskRepository struct {
	Resource[entity.RecoveryTask]
}

// NewRecoveryTaskRepository construye el repositorio.
func NewRecoveryTaskRepository(c *Client) *RecoveryTaskRepository {
	return &RecoveryTaskRepository{Resource: NewResource[entity.RecoveryTask](c, "recovery-tasks")}
}

// UpdateStatus PUT /employee-portal/recoveries/:id/status.
func (r *RecoveryTaskRepository) UpdateStatus(ctx context.Context, id string, in repository.TaskStatusUpdate) error {
	portal := NewResource[entity.RecoveryTask](r.c, "employee-portal/recoveries")
	return r.c.Do(ctx, http.MethodPut, portal.path(id, "status"), in, nil)
}

// NewInventoryRepository /inventory (solo CRUD).
func NewInventoryRepository(c *Client) Resource[entity.InventoryItem] {
	return NewResource[entity.InventoryItem](c, "inventory")
}
