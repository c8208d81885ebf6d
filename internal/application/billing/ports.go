package billing

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// Issuer datos de la empresa que emite la factura.
type Issuer struct {
	Name string
}

// InvoicePDFGenerator genera el documento A4 estructurado de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, issuer Issuer) ([]byte, error)
}

// SnapshotRenderer rasteriza la vista pública de la factura una sola vez y la
// pagina por altura fija de página.
type SnapshotRenderer interface {
	RenderSnapshot(ctx context.Context, invoice *entity.Invoice, issuer Issuer) ([]byte, error)
}
