package http_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-backoffice/internal/application/auth"
	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	apphttp "github.com/jhoicas/isp-backoffice/internal/interfaces/http"
)

var rowRe = regexp.MustCompile(`<tr data-id="`)

// ── Sesión ────────────────────────────────────────────────────────────────────

func TestProtected_SinSesionRedirigeALogin(t *testing.T) {
	h := newHarness(t, nil)
	resp, _ := h.do(t, httptest.NewRequest(http.MethodGet, "/customers", nil), false)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.LoginExpiredURL, resp.Header.Get("Location"))
	assert.Empty(t, h.backend.calls, "sin sesión no se llama al backend")
}

func TestBackend401_BorraCookieYRedirige(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /complaints/list": status(http.StatusUnauthorized, `{"msg":"Token has expired"}`),
	})
	resp, _ := h.get(t, "/complaints")

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, apphttp.LoginExpiredURL, resp.Header.Get("Location"))
	c := findCookie(resp, testCookie)
	require.NotNil(t, c, "la cookie de sesión debe borrarse")
	assert.Empty(t, c.Value)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"POST /auth/login": status(http.StatusUnauthorized, `{"error":"bad credentials"}`),
	})
	resp, body := h.do(t, postForm("/login", "username=admin&password=nope"), false)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, auth.MsgInvalidCredentials)
	assert.Nil(t, findCookie(resp, testCookie))
}

func TestLogin_ExitoGuardaSesion(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"POST /auth/login": jsonBody(`{"token":"not-a-jwt","role":"company_owner","company_id":"co-1"}`),
	})
	resp, _ := h.do(t, postForm("/login", "username=admin&password=secret"), false)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
	c := findCookie(resp, testCookie)
	require.NotNil(t, c)
	sess, err := h.store.Open(c.Value)
	require.NoError(t, err)
	assert.Equal(t, "not-a-jwt", sess.Token)
	assert.Equal(t, "admin", sess.Name)
}

func TestLogin_AvisoDeSesionVencida(t *testing.T) {
	h := newHarness(t, nil)
	_, body := h.do(t, httptest.NewRequest(http.MethodGet, "/login?expired=1", nil), false)
	assert.Contains(t, body, "Your session has expired")
}

// ── Listados ──────────────────────────────────────────────────────────────────

func TestCustomers_UnaFilaPorElemento(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /customers/list": jsonBody(`[
			{"id":"c1","first_name":"Ali","last_name":"Khan","is_active":true},
			{"id":"c2","first_name":"Sara","last_name":"Ahmed","is_active":false},
			{"id":"c3","first_name":"Omar","last_name":"Raza","is_active":true}
		]`),
	})
	resp, body := h.get(t, "/customers")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, rowRe.FindAllString(body, -1), 3)
	assert.Contains(t, body, "Ali Khan")
}

func TestList_ErrorDelBackendSeMuestraComoBanner(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /areas/list": status(http.StatusInternalServerError, `{"error":"database is down"}`),
	})
	resp, body := h.get(t, "/areas")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "database is down")
	assert.Empty(t, rowRe.FindAllString(body, -1))
}

func TestComplaints_BotonDeEstadoSegunEstado(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /complaints/list": jsonBody(`[
			{"id":"k1","status":"open"},
			{"id":"k2","status":"in_progress"},
			{"id":"k3","status":"resolved"},
			{"id":"k5","status":"escalated"},
			{"id":"k4","status":"closed"}
		]`),
	})
	_, body := h.get(t, "/complaints")

	assert.Contains(t, body, `href="/complaints/k1/process">Process</a>`)
	assert.Contains(t, body, `href="/complaints/k2/resolve">Resolve</a>`)
	assert.Contains(t, body, `href="/complaints/k5/process">Escalated</a>`, "un estado desconocido no deshabilita el botón")
	assert.Contains(t, body, `disabled>Resolved</button>`)
	assert.Contains(t, body, `disabled>Closed</button>`)
}

func TestExport_CSV(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /areas/list": jsonBody(`[{"id":"a1","name":"North"},{"id":"a2","name":"South"}]`),
	})
	resp, body := h.get(t, "/areas/export.csv")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, body, "North")
	assert.Contains(t, body, "South")
}

// ── Formularios ───────────────────────────────────────────────────────────────

func TestCustomerForm_SelectsVaciosSoloPlaceholder(t *testing.T) {
	h := newHarness(t, nil)
	resp, body := h.get(t, "/customers/new")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, f := range []struct{ name, label string }{{"area_id", "Area"}, {"service_plan_id", "Service Plan"}} {
		re := regexp.MustCompile(`(?s)<select id="f-` + f.name + `"[^>]*>\s*<option value="">Select ` + f.label + `</option>\s*</select>`)
		assert.Regexp(t, re, body, f.name)
	}
}

func TestCustomerForm_ErroresDeListasEnOrden(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /areas/list": status(http.StatusInternalServerError, `{"message":"areas down"}`),
		"GET /isps/list":  status(http.StatusInternalServerError, `{"message":"isps down"}`),
	})
	for i := 0; i < 5; i++ {
		resp, body := h.get(t, "/customers/new")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		areas := strings.Index(body, "Could not load areas")
		isps := strings.Index(body, "Could not load isps")
		require.NotEqual(t, -1, areas)
		require.NotEqual(t, -1, isps)
		assert.Less(t, areas, isps)
	}
}

func TestAreaForm_ValidacionNoLlamaAlBackend(t *testing.T) {
	h := newHarness(t, nil)
	resp, body := h.do(t, postForm("/areas", "name=&description=x"), true)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, `field invalid`)
	assert.Empty(t, h.backend.mutations())
}

func TestAreaForm_CreaYRedirige(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"POST /areas/add": jsonBody(`{"id":"a9"}`),
	})
	resp, _ := h.do(t, postForm("/areas", "name=East&description=x"), true)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/areas", resp.Header.Get("Location"))
	assert.Equal(t, 1, h.backend.called("POST /areas/add"))
}

// ── Diálogos ──────────────────────────────────────────────────────────────────

func TestResolveDialog_ConfirmarDeshabilitadoSinNotas(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /complaints/list": jsonBody(`[{"id":"k2","status":"in_progress"}]`),
	})
	resp, body := h.get(t, "/complaints/k2/resolve")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="d-confirm" class="btn primary" type="submit" disabled>Resolve</button>`)
}

func TestResolve_SinNotasNoLlamaAlBackend(t *testing.T) {
	h := newHarness(t, nil)
	resp, body := h.do(t, postForm("/complaints/k2/resolve", "notes=+++"), true)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, usecase.MsgResolutionNotesRequired)
	assert.Empty(t, h.backend.mutations())
}

func TestResolveDialog_QuejaCerradaVuelveAlListado(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /complaints/list": jsonBody(`[{"id":"k4","status":"closed"}]`),
	})
	resp, _ := h.get(t, "/complaints/k4/resolve")

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/complaints", resp.Header.Get("Location"))
}

func TestResolveDialog_QuejaAbiertaVuelveAlListado(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /complaints/list": jsonBody(`[{"id":"k1","status":"open"}]`),
	})
	resp, _ := h.get(t, "/complaints/k1/resolve")

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/complaints", resp.Header.Get("Location"))
}

func TestResolve_QuejaAbiertaNoSeEnvia(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /complaints/list": jsonBody(`[{"id":"k1","status":"open"}]`),
	})
	resp, _ := h.do(t, postForm("/complaints/k1/resolve", "notes=listo"), true)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Empty(t, h.backend.mutations())
}

func TestProcess_SoloQuejasAbiertas(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /complaints/list": jsonBody(`[
			{"id":"k1","status":"open"},
			{"id":"k2","status":"in_progress"},
			{"id":"k3","status":"resolved"}
		]`),
		"PUT /complaints/update/k1": jsonBody(`{}`),
	})

	for _, id := range []string{"k2", "k3"} {
		resp, _ := h.get(t, "/complaints/"+id+"/process")
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, id)
		resp, _ = h.do(t, postForm("/complaints/"+id+"/process", ""), true)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, id)
	}
	assert.Empty(t, h.backend.mutations())

	resp, _ := h.do(t, postForm("/complaints/k1/process", ""), true)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, []string{"PUT /complaints/update/k1"}, h.backend.mutations())
}

func TestCompleteTask_SinNotasNoLlamaAlBackend(t *testing.T) {
	h := newHarness(t, nil)
	resp, body := h.do(t, postForm("/tasks/t1/complete", "notes="), true)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, usecase.MsgCompletionNotesRequired)
	assert.Empty(t, h.backend.mutations())
}

// ── Factura pública ───────────────────────────────────────────────────────────

const openInvoice = `{"id":"inv-1","invoice_number":"INV-001","customer_name":"Ali Khan",
	"total_amount":"1500","total_paid":"0","remaining_amount":"1500","status":"unpaid","payments":[]}`

func TestPublicInvoice_FormularioVisibleConSaldo(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /public/invoice/inv-1": jsonBody(openInvoice),
	})
	resp, body := h.do(t, httptest.NewRequest(http.MethodGet, "/public/invoice/inv-1", nil), false)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="payment-form"`)
	assert.Contains(t, body, "INV-001")
}

func TestPublicInvoice_FormularioOcultoConPagoPendiente(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /public/invoice/inv-1": jsonBody(`{"id":"inv-1","remaining_amount":"1500",
			"payments":[{"id":"p1","status":"pending","amount":"1500"}]}`),
	})
	_, body := h.do(t, httptest.NewRequest(http.MethodGet, "/public/invoice/inv-1", nil), false)

	assert.NotContains(t, body, `id="payment-form"`)
	assert.Contains(t, body, `id="payment-pending"`)
}

func TestPublicInvoice_FormularioOcultoSinSaldo(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /public/invoice/inv-1": jsonBody(`{"id":"inv-1","remaining_amount":"0","status":"paid"}`),
	})
	_, body := h.do(t, httptest.NewRequest(http.MethodGet, "/public/invoice/inv-1", nil), false)

	assert.NotContains(t, body, `id="payment-form"`)
}

func multipartPayment(t *testing.T, fields map[string]string, proof []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if proof != nil {
		fw, err := w.CreateFormFile("payment_proof", "proof.png")
		require.NoError(t, err)
		_, err = fw.Write(proof)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/public/invoice/inv-1/pay", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestPublicPay_SinComprobanteNoEnvia(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /public/invoice/inv-1": jsonBody(openInvoice),
	})
	req := multipartPayment(t, map[string]string{
		"amount": "1500", "payment_method": "Cash", "payment_date": "2026-10-01",
	}, nil)
	resp, body := h.do(t, req, false)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, dto.MsgProofRequired)
	assert.Empty(t, h.backend.mutations(), "la validación corre antes de cualquier envío")
}

func TestPublicPay_TransferenciaSinCuenta(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /public/invoice/inv-1": jsonBody(openInvoice),
	})
	req := multipartPayment(t, map[string]string{
		"amount": "1500", "payment_method": "Bank Transfer", "payment_date": "2026-10-01",
	}, []byte("png"))
	_, body := h.do(t, req, false)

	assert.Contains(t, body, dto.MsgBankAccountRequired)
	assert.Empty(t, h.backend.mutations())
}

func TestPublicPay_ExitoRedirigeConAviso(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /public/invoice/inv-1":  jsonBody(openInvoice),
		"POST /public/payment/submit": jsonBody(`{"message":"ok"}`),
	})
	req := multipartPayment(t, map[string]string{
		"amount": "1500", "payment_method": "Cash", "payment_date": "2026-10-01",
	}, []byte("png"))
	resp, _ := h.do(t, req, false)

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/public/invoice/inv-1?submitted=1", resp.Header.Get("Location"))
	assert.Equal(t, 1, h.backend.called("POST /public/payment/submit"))

	_, body := h.do(t, httptest.NewRequest(http.MethodGet, resp.Header.Get("Location"), nil), false)
	assert.Contains(t, body, `id="payment-submitted"`)
	assert.NotContains(t, body, `id="payment-form"`)
}

func TestDashboard_PanelConErrorNoRompeLaPagina(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /dashboard/executive-summary": jsonBody(`{"total_active_customers":12,"monthly_recurring_revenue":"30000"}`),
		"GET /dashboard/financial-analytics": status(http.StatusInternalServerError, `{"error":"boom"}`),
		"GET /dashboard/service-support":     jsonBody(`{"support_ticket_volume":4}`),
	})
	resp, body := h.get(t, "/")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="panel-executive"`)
	assert.Contains(t, body, "boom")
	assert.True(t, strings.Contains(body, `id="panel-service"`))
}

func TestReporting_SeccionConPollingAgregaRefresh(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /dashboard/service-support": jsonBody(`{"support_ticket_volume":4}`),
	})
	_, body := h.get(t, "/reporting/service")
	assert.Contains(t, body, `<meta http-equiv="refresh" content="30">`)

	resp, _ := h.get(t, "/reporting/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
