package repository

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// CustomerDocument documento binario del cliente guardado en el backend.
type CustomerDocument string

const (
	DocCNICFront CustomerDocument = "cnic-front-image"
	DocCNICBack  CustomerDocument = "cnic-back-image"
	DocAgreement CustomerDocument = "agreement-document"
)

// CustomerRepository puerto del recurso /customers.
type CustomerRepository interface {
	CRUDRepository[entity.Customer]
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	ToggleStatus(ctx context.Context, id string) error
	Document(ctx context.Context, id string, doc CustomerDocument) (*Blob, error)
}
