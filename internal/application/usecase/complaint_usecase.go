package usecase

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// MsgResolutionNotesRequired se muestra al intentar resolver sin notas.
const MsgResolutionNotesRequired = "Resolution notes are required"

// ComplaintUseCase casos de uso de quejas.
type ComplaintUseCase struct {
	*CRUDUseCase[entity.Complaint]
	repo repository.ComplaintRepository
}

// NewComplaintUseCase construye el caso de uso.
func NewComplaintUseCase(repo repository.ComplaintRepository) *ComplaintUseCase {
	return &ComplaintUseCase{CRUDUseCase: NewCRUDUseCase[entity.Complaint](repo), repo: repo}
}

// Get busca la queja en la lista.
func (uc *ComplaintUseCase) Get(ctx context.Context, id string) (*entity.Complaint, error) {
	return uc.Find(ctx, id, func(c entity.Complaint) string { return c.ID })
}

// Process open -> in_progress.
func (uc *ComplaintUseCase) Process(ctx context.Context, id string) error {
	return uc.repo.UpdateStatus(ctx, id, repository.ComplaintStatusUpdate{Status: entity.ComplaintInProgress})
}

// Resolve in_progress -> resolved con notas obligatorias y prueba opcional.
// Sin notas no se llama al backend.
func (uc *ComplaintUseCase) Resolve(ctx context.Context, id, notes string, proof *repository.File) error {
	if dto.Blank(notes) {
		return domain.NewValidationError("notes", MsgResolutionNotesRequired)
	}
	return uc.repo.UpdateStatus(ctx, id, repository.ComplaintStatusUpdate{
		Status:          entity.ComplaintResolved,
		ResolutionProof: notes,
		ProofFile:       proof,
	})
}
