package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/isp-backoffice/internal/application/analytics"
	"github.com/jhoicas/isp-backoffice/internal/application/auth"
	"github.com/jhoicas/isp-backoffice/internal/application/billing"
	"github.com/jhoicas/isp-backoffice/internal/application/inventory"
	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/isp-backoffice/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/isp-backoffice/internal/interfaces/http"
	"github.com/jhoicas/isp-backoffice/pkg/config"
	"github.com/jhoicas/isp-backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, log)

	customerRepo := backend.NewCustomerRepository(client)
	complaintRepo := backend.NewComplaintRepository(client)
	invoiceRepo := backend.NewInvoiceRepository(client)
	paymentRepo := backend.NewPaymentRepository(client)
	publicRepo := backend.NewPublicInvoiceRepository(client)
	taskRepo := backend.NewTaskRepository(client)
	recoveryRepo := backend.NewRecoveryTaskRepository(client)
	inventoryRepo := backend.NewInventoryRepository(client)
	referenceRepo := backend.NewReferenceRepository(client)
	analyticsRepo := backend.NewAnalyticsRepository(client)
	authRepo := backend.NewAuthRepository(client)

	customerUC := usecase.NewCustomerUseCase(customerRepo, invoiceRepo, paymentRepo, complaintRepo, taskRepo)
	complaintUC := usecase.NewComplaintUseCase(complaintRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo)
	recoveryUC := usecase.NewRecoveryTaskUseCase(recoveryRepo)
	employeeUC := usecase.NewEmployeeUseCase(backend.NewResource[entity.Employee](client, "employees"))
	areaUC := usecase.NewCRUDUseCase[entity.Area](backend.NewResource[entity.Area](client, "areas"))
	planUC := usecase.NewCRUDUseCase[entity.ServicePlan](backend.NewResource[entity.ServicePlan](client, "service-plans"))
	subZoneUC := usecase.NewCRUDUseCase[entity.SubZone](backend.NewResource[entity.SubZone](client, "sub-zones"))
	bankAccountUC := usecase.NewCRUDUseCase[entity.BankAccount](backend.NewResource[entity.BankAccount](client, "bank-accounts"))
	ispUC := usecase.NewCRUDUseCase[entity.ISP](backend.NewResource[entity.ISP](client, "isps"))
	expenseUC := usecase.NewCRUDUseCase[entity.Expense](backend.NewResource[entity.Expense](client, "expenses"))
	ispPaymentUC := usecase.NewISPPaymentUseCase(backend.NewISPPaymentRepository(client))
	vendorUC := usecase.NewCRUDUseCase[entity.Vendor](backend.NewResource[entity.Vendor](client, "vendors"))
	auditLogUC := usecase.NewCRUDUseCase[entity.AuditLog](backend.NewResource[entity.AuditLog](client, "logs"))
	referenceUC := usecase.NewReferenceUseCase(referenceRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo)
	paymentUC := billing.NewPaymentUseCase(paymentRepo)
	publicUC := billing.NewPublicInvoiceUseCase(publicRepo)
	inventoryUC := inventory.NewInventoryUseCase(inventoryRepo, cfg.Inventory.LowStock)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)
	authUC := auth.NewAuthUseCase(authRepo)

	// PDF: documento A4 del panel y captura paginada de la página pública
	pdfUC := billing.NewPDFUseCase(
		invoiceRepo, publicRepo,
		infrapdf.NewMarotoPDFGenerator(),
		infrapdf.NewSnapshotRenderer(log),
		billing.Issuer{Name: cfg.App.CompanyName},
	)

	sessions := httpRouter.NewSessionStore(cfg.Session)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        httpRouter.NewViewEngine(cfg.App.Env == "development"),
		ErrorHandler: httpRouter.ErrorHandler(sessions, log),
		BodyLimit:    20 * 1024 * 1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.RequestContext(cfg.Backend.Timeout))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyName:     cfg.App.CompanyName,
		RefreshSeconds:  cfg.Dashboard.RefreshSeconds,
		Sessions:        sessions,
		PublicLimiter:   httpRouter.NewIPRateLimiter(cfg.Public.SubmitsPerMinute, cfg.Public.Burst),
		Logger:          log,
		AuthUC:          authUC,
		CustomerUC:      customerUC,
		ComplaintUC:     complaintUC,
		TaskUC:          taskUC,
		RecoveryTaskUC:  recoveryUC,
		EmployeeUC:      employeeUC,
		AreaUC:          areaUC,
		ServicePlanUC:   planUC,
		SubZoneUC:       subZoneUC,
		BankAccountUC:   bankAccountUC,
		ISPUC:           ispUC,
		ExpenseUC:       expenseUC,
		ISPPaymentUC:    ispPaymentUC,
		VendorUC:        vendorUC,
		AuditLogUC:      auditLogUC,
		ReferenceUC:     referenceUC,
		InvoiceUC:       invoiceUC,
		PaymentUC:       paymentUC,
		PublicInvoiceUC: publicUC,
		PDFUC:           pdfUC,
		InventoryUC:     inventoryUC,
		DashboardUC:     dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
