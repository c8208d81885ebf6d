package billing

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// PDFUseCase genera los PDF de factura: el documento estructurado del panel interno
// y la captura paginada de la página pública.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	public    repository.PublicInvoiceRepository
	generator InvoicePDFGenerator
	snapshot  SnapshotRenderer
	issuer    Issuer
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoices repository.InvoiceRepository,
	public repository.PublicInvoiceRepository,
	generator InvoicePDFGenerator,
	snapshot SnapshotRenderer,
	issuer Issuer,
) *PDFUseCase {
	return &PDFUseCase{
		invoices:  invoices,
		public:    public,
		generator: generator,
		snapshot:  snapshot,
		issuer:    issuer,
	}
}

// DownloadInvoicePDF documento A4 de una factura (requiere sesión).
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar factura %s: %w", inv.InvoiceNumber, err)
	}
	return pdfBytes, Filename(inv), nil
}

// DownloadPublicPDF captura paginada de la factura pública.
func (uc *PDFUseCase) DownloadPublicPDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.public.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura pública: %w", err)
	}
	pdfBytes, err = uc.snapshot.RenderSnapshot(ctx, inv, uc.issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: capturar factura %s: %w", inv.InvoiceNumber, err)
	}
	return pdfBytes, Filename(inv), nil
}

// Filename "Invoice-<número>.pdf".
func Filename(inv *entity.Invoice) string {
	num := unsafeFilename.ReplaceAllString(inv.InvoiceNumber, "_")
	if num == "" {
		num = unsafeFilename.ReplaceAllString(inv.ID, "_")
	}
	return "Invoice-" + num + ".pdf"
}
