package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// MsgCompletionNotesRequired se muestra al completar sin notas.
const MsgCompletionNotesRequired = "Completion notes are required"

// statusUpdater cambio de estado por el portal de empleados.
type statusUpdater interface {
	UpdateStatus(ctx context.Context, id string, in repository.TaskStatusUpdate) error
}

func complete(ctx context.Context, repo statusUpdater, id, notes, proof string) error {
	if dto.Blank(notes) {
		return domain.NewValidationError("notes", MsgCompletionNotesRequired)
	}
	notes = strings.TrimSpace(notes)
	in := repository.TaskStatusUpdate{Status: entity.TaskCompleted, CompletionNotes: &notes}
	if p := strings.TrimSpace(proof); p != "" {
		in.CompletionProof = &p
	}
	return repo.UpdateStatus(ctx, id, in)
}

// TaskUseCase casos de uso de tareas de campo.
type TaskUseCase struct {
	*CRUDUseCase[entity.Task]
	repo repository.TaskRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository) *TaskUseCase {
	return &TaskUseCase{CRUDUseCase: NewCRUDUseCase[entity.Task](repo), repo: repo}
}

// Get busca la tarea en la lista.
func (uc *TaskUseCase) Get(ctx context.Context, id string) (*entity.Task, error) {
	return uc.Find(ctx, id, func(t entity.Task) string { return t.ID })
}

// Complete marca la tarea como completada con notas obligatorias y prueba opcional.
func (uc *TaskUseCase) Complete(ctx context.Context, id, notes, proof string) error {
	return complete(ctx, uc.repo, id, notes, proof)
}

// RecoveryTaskUseCase casos de uso de tareas de recobro.
type RecoveryTaskUseCase struct {
	*CRUDUseCase[entity.RecoveryTask]
	repo repository.RecoveryTaskRepository
}

// NewRecoveryTaskUseCase construye el caso de uso.
func NewRecoveryTaskUseCase(repo repository.RecoveryTaskRepository) *RecoveryTaskUseCase {
	return &RecoveryTaskUseCase{CRUDUseCase: NewCRUDUseCase[entity.RecoveryTask](repo), repo: repo}
}

// Get busca la tarea en la lista.
func (uc *RecoveryTaskUseCase) Get(ctx context.Context, id string) (*entity.RecoveryTask, error) {
	return uc.Find(ctx, id, func(r entity.RecoveryTask) string { return r.ID })
}

// Complete igual que TaskUseCase.Complete.
func (uc *RecoveryTaskUseCase) Complete(ctx context.Context, id, notes, proof string) error {
	return complete(ctx, uc.repo, id, notes, proof)
}
