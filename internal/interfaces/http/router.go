package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/analytics"
	"github.com/jhoicas/isp-backoffice/internal/application/auth"
	"github.com/jhoicas/isp-backoffice/internal/application/billing"
	"github.com/jhoicas/isp-backoffice/internal/application/inventory"
	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyName    string
	RefreshSeconds int
	Sessions       *SessionStore
	PublicLimiter  *IPRateLimiter
	Logger         *logger.Logger

	AuthUC          *auth.AuthUseCase
	CustomerUC      *usecase.CustomerUseCase
	ComplaintUC     *usecase.ComplaintUseCase
	TaskUC          *usecase.TaskUseCase
	RecoveryTaskUC  *usecase.RecoveryTaskUseCase
	EmployeeUC      *usecase.EmployeeUseCase
	AreaUC          *usecase.CRUDUseCase[entity.Area]
	ServicePlanUC   *usecase.CRUDUseCase[entity.ServicePlan]
	SubZoneUC       *usecase.CRUDUseCase[entity.SubZone]
	BankAccountUC   *usecase.CRUDUseCase[entity.BankAccount]
	ISPUC           *usecase.CRUDUseCase[entity.ISP]
	ExpenseUC       *usecase.CRUDUseCase[entity.Expense]
	ISPPaymentUC    *usecase.ISPPaymentUseCase
	VendorUC        *usecase.CRUDUseCase[entity.Vendor]
	AuditLogUC      *usecase.CRUDUseCase[entity.AuditLog]
	ReferenceUC     *usecase.ReferenceUseCase
	InvoiceUC       *billing.InvoiceUseCase
	PaymentUC       *billing.PaymentUseCase
	PublicInvoiceUC *billing.PublicInvoiceUseCase
	PDFUC           *billing.PDFUseCase
	InventoryUC     *inventory.InventoryUseCase
	DashboardUC     *analytics.DashboardUseCase
}

// Router registra las rutas del panel.
func Router(app *fiber.App, deps RouterDeps) {
	b := base{companyName: deps.CompanyName}

	// Factura pública (sin sesión)
	public := app.Group("/public/invoice")
	publicHandler := NewPublicInvoiceHandler(deps.CompanyName, deps.PublicInvoiceUC, deps.PDFUC)
	public.Get("/:id", publicHandler.Show)
	public.Get("/:id/pdf", publicHandler.PDF)
	if deps.PublicLimiter != nil {
		public.Post("/:id/pay", deps.PublicLimiter.Middleware(), publicHandler.Pay)
	} else {
		public.Post("/:id/pay", publicHandler.Pay)
	}

	// Auth (público)
	authHandler := NewAuthHandler(deps.CompanyName, deps.AuthUC, deps.Sessions, deps.Logger)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren sesión)
	protected := app.Group("/", AuthMiddleware(deps.Sessions))
	protected.Post("/logout", authHandler.Logout)

	dashboardHandler := NewDashboardHandler(b, deps.DashboardUC, deps.RefreshSeconds)
	protected.Get("/", dashboardHandler.Home)
	protected.Get("/reporting", dashboardHandler.Reporting)
	protected.Get("/reporting/:section", dashboardHandler.Reporting)

	workflow := NewWorkflowHandler(b, deps.ComplaintUC, deps.TaskUC, deps.RecoveryTaskUC, deps.PaymentUC)

	// Clientes: la ficha va después de /customers/new para no capturarla como :id
	customerHandler := NewCustomerHandler(b, deps.CustomerUC)
	customerPages(b, deps).register(protected)
	protected.Get("/customers/:id", customerHandler.Detail)
	protected.Get("/customers/:id/documents/:doc", customerHandler.Document)
	protected.Post("/customers/:id/toggle", customerHandler.Toggle)

	// Quejas
	complaintPages(b, deps).register(protected)
	protected.Get("/complaints/:id/process", workflow.ProcessForm)
	protected.Post("/complaints/:id/process", workflow.Process)
	protected.Get("/complaints/:id/resolve", workflow.ResolveForm)
	protected.Post("/complaints/:id/resolve", workflow.Resolve)

	// Facturas y pagos
	invoiceHandler := NewInvoiceHandler(deps.PDFUC)
	invoicePages(b, deps).register(protected)
	protected.Get("/invoices/:id/pdf", invoiceHandler.PDF)

	paymentPages(b, deps).register(protected)
	protected.Get("/payments/:id/verify", workflow.VerifyForm)
	protected.Post("/payments/:id/verify", workflow.Verify)
	protected.Get("/payments/:id/proof", workflow.Proof)

	// Tareas
	taskPages(b, deps).register(protected)
	protected.Get("/tasks/:id/complete", workflow.CompleteTaskForm)
	protected.Post("/tasks/:id/complete", workflow.CompleteTask)

	recoveryTaskPages(b, deps).register(protected)
	protected.Get("/recovery-tasks/:id/complete", workflow.CompleteRecoveryForm)
	protected.Post("/recovery-tasks/:id/complete", workflow.CompleteRecovery)

	// Inventario, empleados y catálogos
	inventoryPages(b, deps).register(protected)
	employeePages(b, deps).register(protected)
	areaPages(b, deps).register(protected)
	subZonePages(b, deps).register(protected)
	servicePlanPages(b, deps).register(protected)
	bankAccountPages(b, deps).register(protected)
	ispPages(b, deps).register(protected)

	// Gastos, pagos a ISP y proveedores
	expensePages(b, deps).register(protected)
	ispPaymentPages(b, deps).register(protected)
	protected.Get("/isp-payments/:id/proof", ispPaymentProof(deps.ISPPaymentUC))
	vendorPages(b, deps).register(protected)

	auditLogPages(b, deps).register(protected)
}
