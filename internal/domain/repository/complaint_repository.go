package repository

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// ComplaintStatusUpdate cuerpo de PUT /complaints/update/:id para cambiar de estado.
type ComplaintStatusUpdate struct {
	Status          entity.ComplaintStatus `json:"status"`
	ResolutionProof string                 `json:"resolution_proof,omitempty"` // notas de resolución
	ProofFile       *File                  `json:"-"`
}

// ComplaintRepository puerto del recurso /complaints.
type ComplaintRepository interface {
	CRUDRepository[entity.Complaint]
	ListByCustomer(ctx context.Context, customerID string) ([]entity.Complaint, error)
	UpdateStatus(ctx context.Context, id string, in ComplaintStatusUpdate) error
}
