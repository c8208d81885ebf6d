package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
	"github.com/jhoicas/isp-backoffice/pkg/money"
)

// CustomerHandler ficha del cliente, documentos y activación (el CRUD va por crudPage).
type CustomerHandler struct {
	base
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(b base, uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{base: b, uc: uc}
}

// detailSection tabla relacionada de la ficha; Error si su carga falló.
type detailSection struct {
	Table dto.Table
	Error string
}

// Detail GET /customers/:id
func (h *CustomerHandler) Detail(c *fiber.Ctx) error {
	detail, err := h.uc.Detail(ctx(c), c.Params("id"))
	if err != nil {
		return err
	}
	cu := detail.Customer
	sections := []detailSection{
		{Table: invoiceTable(detail.Invoices), Error: detail.Errors["invoices"]},
		{Table: paymentTable(detail.Payments), Error: detail.Errors["payments"]},
		{Table: complaintTable(detail.Complaints), Error: detail.Errors["complaints"]},
		{Table: taskTable(detail.Tasks), Error: detail.Errors["tasks"]},
	}
	for i := range sections {
		sections[i].Table.CreateHref = ""
		sections[i].Table.ExportHref = ""
	}
	return render(c, "customer_detail", fiber.Map{
		"Page":      h.page(c, cu.FullName(), "customers"),
		"Customer":  cu,
		"Profile":   customerProfile(cu),
		"Documents": customerDocuments(cu),
		"Sections":  sections,
	})
}

// Document GET /customers/:id/documents/:doc
func (h *CustomerHandler) Document(c *fiber.Ctx) error {
	doc := repository.CustomerDocument(c.Params("doc"))
	switch doc {
	case repository.DocCNICFront, repository.DocCNICBack, repository.DocAgreement:
	default:
		return fiber.ErrNotFound
	}
	blob, err := h.uc.Document(ctx(c), c.Params("id"), doc)
	if err != nil {
		return err
	}
	return sendBlob(c, blob, string(doc))
}

// Toggle POST /customers/:id/toggle
func (h *CustomerHandler) Toggle(c *fiber.Ctx) error {
	id := c.Params("id")
	back := c.Get(fiber.HeaderReferer, "/customers")
	if err := h.uc.ToggleStatus(ctx(c), id); err != nil {
		if isFormError(err) {
			setFlash(c, "error", userMessage(err))
			return c.Redirect(back, fiber.StatusSeeOther)
		}
		return err
	}
	return redirectWithFlash(c, back, "Customer status updated")
}

func customerProfile(cu *entity.Customer) [][2]string {
	rows := [][2]string{
		{"Internet ID", cu.InternetID},
		{"Email", cu.Email},
		{"Phone", cu.Phone1},
		{"Alternate Phone", cu.Phone2},
		{"CNIC", cu.CNIC},
		{"Area", cu.AreaName},
		{"Service Plan", cu.ServicePlanName},
		{"ISP", cu.ISPName},
		{"Installation Address", cu.InstallationAddress},
		{"Installation Date", cu.InstallationDate},
		{"Connection", entity.HumanizeEnum(cu.ConnectionType)},
		{"Internet Connection", entity.HumanizeEnum(cu.InternetConnType)},
		{"GPS", cu.GPSCoordinates},
		{"Discount", money.PKR(cu.DiscountAmount)},
		{"Recharge Date", cu.RechargeDate},
	}
	out := rows[:0]
	for _, r := range rows {
		if r[1] != "" {
			out = append(out, r)
		}
	}
	return out
}

// customerDocuments enlaces a los documentos que el backend tiene guardados.
func customerDocuments(cu *entity.Customer) []dto.RowAction {
	var out []dto.RowAction
	add := func(present string, label string, doc repository.CustomerDocument) {
		if present != "" {
			out = append(out, dto.RowAction{Label: label, Href: "/customers/" + cu.ID + "/documents/" + string(doc), Kind: "neutral"})
		}
	}
	add(cu.CNICFrontImage, "CNIC Front", repository.DocCNICFront)
	add(cu.CNICBackImage, "CNIC Back", repository.DocCNICBack)
	add(cu.AgreementDocument, "Agreement", repository.DocAgreement)
	return out
}
