package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/isp-backoffice/internal/application/analytics"
	"github.com/jhoicas/isp-backoffice/internal/application/auth"
	"github.com/jhoicas/isp-backoffice/internal/application/billing"
	"github.com/jhoicas/isp-backoffice/internal/application/inventory"
	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/isp-backoffice/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/isp-backoffice/internal/interfaces/http"
	"github.com/jhoicas/isp-backoffice/pkg/config"
	"github.com/jhoicas/isp-backoffice/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testCookie = "isp_session"

// fakeBackend API REST falsa: responde por "METHOD /path" y registra las llamadas.
type fakeBackend struct {
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	calls  []string
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.calls = append(f.calls, key)
	h, ok := f.routes[key]
	f.mu.Unlock()
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[]`)
		return
	}
	h(w, r)
}

// called cuenta las llamadas a "METHOD /path".
func (f *fakeBackend) called(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == key {
			n++
		}
	}
	return n
}

// mutations llamadas que no son GET.
func (f *fakeBackend) mutations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if !strings.HasPrefix(c, http.MethodGet+" ") {
			out = append(out, c)
		}
	}
	return out
}

func jsonBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func status(code int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
	}
}

type harness struct {
	app     *fiber.App
	store   *apphttp.SessionStore
	backend *fakeBackend
}

// newHarness arma la aplicación completa contra un backend falso.
func newHarness(t *testing.T, routes map[string]http.HandlerFunc) *harness {
	t.Helper()
	fb := &fakeBackend{routes: routes}
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)

	log := logger.Nop()
	client := backend.NewClient(srv.URL, 5*time.Second, log)
	invoiceRepo := backend.NewInvoiceRepository(client)
	paymentRepo := backend.NewPaymentRepository(client)
	publicRepo := backend.NewPublicInvoiceRepository(client)
	complaintRepo := backend.NewComplaintRepository(client)
	taskRepo := backend.NewTaskRepository(client)

	store := apphttp.NewSessionStore(config.SessionConfig{
		CookieName: testCookie,
		Secret:     "test-secret",
		MaxAge:     time.Hour,
	})
	app := fiber.New(fiber.Config{
		Views:        apphttp.NewViewEngine(false),
		ErrorHandler: apphttp.ErrorHandler(store, log),
	})
	app.Use(apphttp.RequestLogger(log))
	app.Use(apphttp.RequestContext(5 * time.Second))
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyName:    "MBA NET",
		RefreshSeconds: 30,
		Sessions:       store,
		PublicLimiter:  apphttp.NewIPRateLimiter(600, 100),
		Logger:         log,
		AuthUC:         auth.NewAuthUseCase(backend.NewAuthRepository(client)),
		CustomerUC: usecase.NewCustomerUseCase(
			backend.NewCustomerRepository(client), invoiceRepo, paymentRepo, complaintRepo, taskRepo,
		),
		ComplaintUC:     usecase.NewComplaintUseCase(complaintRepo),
		TaskUC:          usecase.NewTaskUseCase(taskRepo),
		RecoveryTaskUC:  usecase.NewRecoveryTaskUseCase(backend.NewRecoveryTaskRepository(client)),
		EmployeeUC:      usecase.NewEmployeeUseCase(backend.NewResource[entity.Employee](client, "employees")),
		AreaUC:          usecase.NewCRUDUseCase[entity.Area](backend.NewResource[entity.Area](client, "areas")),
		ServicePlanUC:   usecase.NewCRUDUseCase[entity.ServicePlan](backend.NewResource[entity.ServicePlan](client, "service-plans")),
		SubZoneUC:       usecase.NewCRUDUseCase[entity.SubZone](backend.NewResource[entity.SubZone](client, "sub-zones")),
		BankAccountUC:   usecase.NewCRUDUseCase[entity.BankAccount](backend.NewResource[entity.BankAccount](client, "bank-accounts")),
		ISPUC:           usecase.NewCRUDUseCase[entity.ISP](backend.NewResource[entity.ISP](client, "isps")),
		ExpenseUC:       usecase.NewCRUDUseCase[entity.Expense](backend.NewResource[entity.Expense](client, "expenses")),
		ISPPaymentUC:    usecase.NewISPPaymentUseCase(backend.NewISPPaymentRepository(client)),
		VendorUC:        usecase.NewCRUDUseCase[entity.Vendor](backend.NewResource[entity.Vendor](client, "vendors")),
		AuditLogUC:      usecase.NewCRUDUseCase[entity.AuditLog](backend.NewResource[entity.AuditLog](client, "logs")),
		ReferenceUC:     usecase.NewReferenceUseCase(backend.NewReferenceRepository(client)),
		InvoiceUC:       billing.NewInvoiceUseCase(invoiceRepo),
		PaymentUC:       billing.NewPaymentUseCase(paymentRepo),
		PublicInvoiceUC: billing.NewPublicInvoiceUseCase(publicRepo),
		PDFUC: billing.NewPDFUseCase(
			invoiceRepo, publicRepo,
			infrapdf.NewMarotoPDFGenerator(), infrapdf.NewSnapshotRenderer(log),
			billing.Issuer{Name: "MBA NET"},
		),
		InventoryUC: inventory.NewInventoryUseCase(backend.NewInventoryRepository(client), 5),
		DashboardUC: appanalytics.NewDashboardUseCase(backend.NewAnalyticsRepository(client)),
	})
	return &harness{app: app, store: store, backend: fb}
}

// sessionCookie cookie sellada de una sesión vigente.
func (h *harness) sessionCookie(t *testing.T) string {
	t.Helper()
	value, err := h.store.Seal(&auth.Session{
		Token:     "backend.jwt.token",
		Name:      "admin",
		Role:      "company_owner",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	return testCookie + "=" + value
}

// do ejecuta la petición; con withSession agrega la cookie de sesión.
func (h *harness) do(t *testing.T, req *http.Request, withSession bool) (*http.Response, string) {
	t.Helper()
	if withSession {
		req.Header.Set("Cookie", h.sessionCookie(t))
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, string(body)
}

func (h *harness) get(t *testing.T, path string) (*http.Response, string) {
	return h.do(t, httptest.NewRequest(http.MethodGet, path, nil), true)
}

func postForm(path, form string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
