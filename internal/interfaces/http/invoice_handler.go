package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/billing"
	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain"
)

// InvoiceHandler PDF de facturas del panel interno.
type InvoiceHandler struct {
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{pdf: pdf}
}

// PDF GET /invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	body, name, err := h.pdf.DownloadInvoicePDF(ctx(c), c.Params("id"))
	if err != nil {
		return err
	}
	return sendPDF(c, body, name)
}

func sendPDF(c *fiber.Ctx, body []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}

// PublicInvoiceHandler página pública de una factura: detalle, formulario de pago y PDF.
// No requiere sesión.
type PublicInvoiceHandler struct {
	companyName string
	uc          *billing.PublicInvoiceUseCase
	pdf         *billing.PDFUseCase
}

// NewPublicInvoiceHandler construye el handler.
func NewPublicInvoiceHandler(companyName string, uc *billing.PublicInvoiceUseCase, pdf *billing.PDFUseCase) *PublicInvoiceHandler {
	return &PublicInvoiceHandler{companyName: companyName, uc: uc, pdf: pdf}
}

func (h *PublicInvoiceHandler) render(c *fiber.Ctx, view *dto.PublicInvoiceView, status int) error {
	view.CompanyName = h.companyName
	title := "Invoice"
	if view.Invoice != nil {
		title = "Invoice " + view.Invoice.InvoiceNumber
	}
	c.Status(status)
	return c.Render("public_invoice", fiber.Map{
		"Page":   dto.Page{Title: title, CompanyName: h.companyName, Flash: popFlash(c)},
		"View":   view,
		"Fields": publicPaymentFields(&view.Form, view.BankAccounts),
	}, layoutPublic)
}

// Show GET /public/invoice/:id
func (h *PublicInvoiceHandler) Show(c *fiber.Ctx) error {
	view, err := h.uc.View(ctx(c), c.Params("id"))
	if err != nil {
		return err
	}
	if c.Query("submitted") == "1" {
		view.State = dto.StateSuccess
	}
	if view.Form.PaymentDate == "" {
		view.Form.PaymentDate = time.Now().Format(time.DateOnly)
	}
	if view.Invoice != nil && view.Form.Amount == "" {
		view.Form.Amount = view.Invoice.RemainingAmount.String()
	}
	return h.render(c, view, fiber.StatusOK)
}

// Pay POST /public/invoice/:id/pay. La validación local (comprobante, cuenta bancaria)
// corre antes de cualquier llamada al backend; un error re-renderiza con el formulario lleno.
func (h *PublicInvoiceHandler) Pay(c *fiber.Ctx) error {
	id := c.Params("id")
	var form dto.PublicPaymentForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form submission")
	}
	proof, err := formFile(c, "payment_proof")
	if err != nil {
		return err
	}
	form.Proof = proof

	state := dto.StateIdle.Next(nil)
	submitErr := h.uc.Submit(ctx(c), id, &form)
	state = state.Next(submitErr)
	if state == dto.StateSuccess {
		return c.Redirect("/public/invoice/"+id+"?submitted=1", fiber.StatusSeeOther)
	}
	if errors.Is(submitErr, domain.ErrNotFound) {
		return submitErr
	}

	view, err := h.uc.View(ctx(c), id)
	if err != nil {
		return err
	}
	view.State = state
	view.Form = form
	view.Form.Proof = nil
	view.Error = userMessage(submitErr)
	return h.render(c, view, statusFor(submitErr))
}

// PDF GET /public/invoice/:id/pdf
func (h *PublicInvoiceHandler) PDF(c *fiber.Ctx) error {
	body, name, err := h.pdf.DownloadPublicPDF(ctx(c), c.Params("id"))
	if err != nil {
		return err
	}
	return sendPDF(c, body, name)
}
