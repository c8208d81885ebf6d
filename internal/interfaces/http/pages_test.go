package http_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
)

// ── Gastos y pagos a ISP ──────────────────────────────────────────────────────

func TestExpenses_UnaFilaPorElemento(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /expenses/list": jsonBody(`[
			{"id":"e1","expense_type":"utilities","amount":"4500","expense_date":"2026-10-01","payment_method":"cash"},
			{"id":"e2","expense_type":"salaries","amount":"90000","expense_date":"2026-10-05","payment_method":"bank_transfer"}
		]`),
	})
	resp, body := h.get(t, "/expenses")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, rowRe.FindAllString(body, -1), 2)
	assert.Contains(t, body, "Utilities")
	assert.Contains(t, body, `href="/expenses/new"`)
}

func TestExpenseForm_TransferenciaSinCuentaNoSeEnvia(t *testing.T) {
	h := newHarness(t, nil)
	resp, body := h.do(t, postForm("/expenses",
		"expense_type=utilities&amount=4500&expense_date=2026-10-01&payment_method=bank_transfer"), true)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, dto.MsgBankAccountRequired)
	assert.Empty(t, h.backend.mutations())
}

func TestExpenseForm_EdicionEnviaPUT(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"PUT /expenses/update/e1": jsonBody(`{}`),
	})
	resp, _ := h.do(t, postForm("/expenses/e1",
		"expense_type=other&amount=120&expense_date=2026-10-02&payment_method=cash"), true)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/expenses", resp.Header.Get("Location"))
	assert.Equal(t, []string{"PUT /expenses/update/e1"}, h.backend.mutations())
}

func TestISPPayments_BotonDeComprobanteSoloConArchivo(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /isp-payments/list": jsonBody(`[
			{"id":"p1","isp_name":"PTCL","amount":"250000","status":"completed","payment_proof":"proofs/p1.png"},
			{"id":"p2","isp_name":"Nayatel","amount":"90000","status":"pending"}
		]`),
	})
	_, body := h.get(t, "/isp-payments")

	assert.Contains(t, body, `href="/isp-payments/p1/proof"`)
	assert.NotContains(t, body, `href="/isp-payments/p2/proof"`)
}

func TestISPPaymentProof_DescargaDelBackend(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /isp-payments/proof-image/p1": func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png-bytes"))
		},
	})
	resp, body := h.get(t, "/isp-payments/p1/proof")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "png-bytes", body)
}

func TestISPPaymentForm_MultipartConComprobante(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"POST /isp-payments/add": jsonBody(`{}`),
	})
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"isp_id": "i1", "payment_type": "monthly_subscription", "amount": "250000",
		"payment_date": "2026-10-01", "billing_period": "2026-10", "payment_method": "cash",
	} {
		require.NoError(t, w.WriteField(k, v))
	}
	fw, err := w.CreateFormFile("payment_proof", "proof.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/isp-payments", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, _ := h.do(t, req, true)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, 1, h.backend.called("POST /isp-payments/add"))
}

// ── Catálogos ─────────────────────────────────────────────────────────────────

func TestSubZoneForm_CreaYRedirige(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"POST /sub-zones/add": jsonBody(`{"id":"z1"}`),
	})
	resp, _ := h.do(t, postForm("/sub-zones", "area_id=a1&name=Block+C"), true)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/sub-zones", resp.Header.Get("Location"))
	assert.Equal(t, 1, h.backend.called("POST /sub-zones/add"))
}

func TestSubZoneForm_SelectDeAreas(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /areas/list": jsonBody(`[{"id":"a1","name":"Gulberg"}]`),
	})
	resp, body := h.get(t, "/sub-zones/new")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<option value="a1">Gulberg</option>`)
}

func TestBankAccountForm_EdicionPrecargaDesdeLaLista(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /bank-accounts/list": jsonBody(`[{"id":"b1","bank_name":"HBL","account_title":"MBA NET","account_number":"0012"}]`),
	})
	resp, body := h.get(t, "/bank-accounts/b1/edit")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `value="HBL"`)
	assert.Contains(t, body, `value="0012"`)
}

func TestISPForm_EmailInvalidoNoSeEnvia(t *testing.T) {
	h := newHarness(t, nil)
	resp, _ := h.do(t, postForm("/isps",
		"name=PTCL&contact_person=Asad&email=nope&phone=042111&address=Lahore"), true)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, h.backend.mutations())
}

// ── Auditoría ─────────────────────────────────────────────────────────────────

func TestLogs_SoloLectura(t *testing.T) {
	h := newHarness(t, map[string]http.HandlerFunc{
		"GET /logs/list": jsonBody(`[
			{"id":"l1","user_name":"admin","action":"update","table_name":"customers","record_id":"c1"}
		]`),
	})
	resp, body := h.get(t, "/logs")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, rowRe.FindAllString(body, -1), 1)
	assert.NotContains(t, body, `href="/logs/new"`)
	assert.NotContains(t, body, `/logs/l1/edit`)

	resp, _ = h.get(t, "/logs/new")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
