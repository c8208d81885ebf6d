package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
	"github.com/jhoicas/isp-backoffice/internal/infrastructure/backend"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL+"/", 5*time.Second, nil)
}

func TestClient_EnviaTokenDelContexto(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		_, _ = io.WriteString(w, `[]`)
	})

	ctx := backend.WithToken(context.Background(), "abc.def.ghi")
	_, err := backend.NewCustomerRepository(c).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc.def.ghi", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClient_ReusaRequestIDEntrante(t *testing.T) {
	var gotReqID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get("X-Request-ID")
		_, _ = io.WriteString(w, `[]`)
	})

	ctx := backend.WithRequestID(context.Background(), "req-42")
	_, err := backend.NewCustomerRepository(c).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "req-42", gotReqID)
}

func TestClient_ContextoVencidoCancelaLaLlamada(t *testing.T) {
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := backend.NewCustomerRepository(c).List(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestClient_SinTokenNoEnviaAuthorization(t *testing.T) {
	var gotAuth string
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		path = r.URL.Path
		_, _ = io.WriteString(w, `{"id":"inv-1","remaining_amount":"0"}`)
	})

	inv, err := backend.NewPublicInvoiceRepository(c).GetInvoice(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "/public/invoice/inv-1", path)
	assert.Equal(t, "inv-1", inv.ID)
}

func TestClient_401SeTraduceAErrUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"msg":"Token has expired"}`)
	})

	_, err := backend.NewComplaintRepository(c).List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.True(t, backend.IsUnauthorized(err))

	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Unauthorized", apiErr.Message)
}

func TestClient_MensajeDeErrorDelCuerpo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"Amount exceeds remaining balance"}`)
	})

	err := backend.NewPaymentRepository(c).Create(context.Background(), map[string]string{"amount": "1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Amount exceeds remaining balance")
}

func TestClient_BackendCaidoEsErrUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := backend.NewClient(url, time.Second, nil)
	_, err := backend.NewReferenceRepository(c).Areas(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnavailable))
}

func TestResource_RutasYMetodos(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		_, _ = io.WriteString(w, `{}`)
	})
	repo := backend.NewTaskRepository(c)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, map[string]any{"task_type": "installation"}))
	require.NoError(t, repo.Update(ctx, "t1", map[string]any{"status": "pending"}))
	require.NoError(t, repo.Delete(ctx, "t1"))
	require.NoError(t, repo.UpdateStatus(ctx, "t1", repository.TaskStatusUpdate{Status: entity.TaskCompleted}))

	assert.Equal(t, []call{
		{http.MethodPost, "/tasks/add"},
		{http.MethodPut, "/tasks/update/t1"},
		{http.MethodDelete, "/tasks/delete/t1"},
		{http.MethodPut, "/employee-portal/tasks/t1/status"},
	}, calls)
}

func TestClient_MultipartConArchivo(t *testing.T) {
	var fields map[string]string
	var fileName string
	var fileData []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		fields = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			fields[k] = v[0]
		}
		f, h, err := r.FormFile("payment_proof")
		require.NoError(t, err)
		defer f.Close()
		fileName = h.Filename
		fileData, _ = io.ReadAll(f)
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	})

	form := repository.NewMultipartForm().
		Set("invoice_id", "inv-9").
		Set("amount", "1500").
		Set("bank_account_id", "").
		Attach(&repository.File{Field: "payment_proof", Name: "proof.png", ContentType: "image/png", Data: []byte{1, 2, 3}})

	require.NoError(t, backend.NewPublicInvoiceRepository(c).SubmitPayment(context.Background(), form))
	assert.Equal(t, map[string]string{"invoice_id": "inv-9", "amount": "1500"}, fields)
	assert.Equal(t, "proof.png", fileName)
	assert.Equal(t, []byte{1, 2, 3}, fileData)
}

func TestComplaintRepository_UpdateStatusJSON(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/complaints/update/c1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	})

	err := backend.NewComplaintRepository(c).UpdateStatus(context.Background(), "c1", repository.ComplaintStatusUpdate{
		Status:          entity.ComplaintResolved,
		ResolutionProof: "router replaced",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "resolved", "resolution_proof": "router replaced"}, body)
}

func TestCustomerRepository_Document(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/cnic-front-image/cu1", r.URL.Path)
		w.Header().Set("Content-Type", "image/jpeg")
		w.Header().Set("Content-Disposition", `inline; filename="front.jpg"`)
		_, _ = w.Write([]byte{0xff, 0xd8})
	})

	blob, err := backend.NewCustomerRepository(c).Document(context.Background(), "cu1", repository.DocCNICFront)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", blob.ContentType)
	assert.Equal(t, "front.jpg", blob.Filename)
	assert.Len(t, blob.Data, 2)
}

func TestAnalyticsRepository_ServiceSupportErrorEn200(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"error":"no data for period"}`)
	})

	_, err := backend.NewAnalyticsRepository(c).ServiceSupport(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data for period")
}
