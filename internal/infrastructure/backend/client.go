// Package backend implementa los puertos de repositorio contra la API REST del ISP.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
	"github.com/jhoicas/isp-backoffice/pkg/logger"
)

const (
	maxJSONBody     = 8 << 20
	maxDownloadBody = 25 << 20
)

type (
	tokenKey     struct{}
	requestIDKey struct{}
)

// WithToken devuelve un contexto que lleva el bearer token de la sesión.
// Las llamadas hechas con ese contexto envían Authorization: Bearer <token>.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom devuelve el token guardado en ctx ("" si no hay).
func TokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey{}).(string)
	return s
}

// WithRequestID guarda el id de la petición entrante; las llamadas al backend lo
// reenvían en X-Request-ID para cruzar ambos logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom id guardado en ctx; si no hay, uno nuevo.
func RequestIDFrom(ctx context.Context) string {
	if id, _ := ctx.Value(requestIDKey{}).(string); id != "" {
		return id
	}
	return uuid.NewString()
}

// APIError respuesta no-2xx del backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
}

// Unwrap traduce el status a los errores de dominio para que errors.Is funcione.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return domain.ErrForbidden
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusConflict:
		return domain.ErrConflict
	case e.Status == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case e.Status >= 500:
		return domain.ErrUnavailable
	}
	return nil
}

// Client cliente HTTP único hacia el backend: URL base fija, token del contexto
// y traducción de 401. Sin reintentos ni cola.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL sin "/" final.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("backend"),
	}
}

// Get GET path y decodifica el JSON en out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Do ejecuta la petición. body puede ser nil, *repository.MultipartForm (multipart/form-data)
// o cualquier valor serializable a JSON. out puede ser nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxJSONBody))
	if err != nil {
		return fmt.Errorf("backend: leer respuesta %s %s: %w", method, path, err)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("backend: deserializar %s %s: %w", method, path, err)
	}
	return nil
}

// Download GET de un recurso binario (imágenes CNIC, comprobantes, acuerdos).
func (c *Client) Download(ctx context.Context, path string) (*repository.Blob, error) {
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBody))
	if err != nil {
		return nil, fmt.Errorf("backend: descargar %s: %w", path, err)
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	return &repository.Blob{
		ContentType: ct,
		Filename:    filenameFrom(resp.Header.Get("Content-Disposition")),
		Data:        data,
	}, nil
}

// send arma y envía la petición; cualquier status fuera de 2xx vuelve como *APIError.
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	reader, contentType, err := encodeBody(body)
	if err != nil {
		return nil, fmt.Errorf("backend: serializar %s %s: %w", method, path, err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("backend: crear request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	requestID := RequestIDFrom(ctx)
	req.Header.Set("X-Request-ID", requestID)
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("backend: %s %s cancelado: %w", method, path, ctx.Err())
		}
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("backend inalcanzable")
		return nil, fmt.Errorf("backend: %s %s: %w: %v", method, path, domain.ErrUnavailable, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("request_id", requestID).
		Msg("backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
		if resp.StatusCode == http.StatusUnauthorized {
			c.log.Info().Str("path", path).Msg("token rechazado por el backend")
		}
		return nil, apiErr
	}
	return resp, nil
}

// errorMessage toma "message" o "error" del cuerpo; si no hay, el texto del status.
func errorMessage(status int, raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if json.Unmarshal(raw, &body) == nil {
		for _, m := range []string{body.Message, body.Error, body.Detail} {
			if m != "" {
				return m
			}
		}
	}
	return http.StatusText(status)
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *repository.MultipartForm:
		return encodeMultipart(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(raw), "application/json", nil
	}
}

func encodeMultipart(form *repository.MultipartForm) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range form.Fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	for _, f := range form.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Name))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func filenameFrom(disposition string) string {
	const key = "filename="
	i := strings.Index(disposition, key)
	if i < 0 {
		return ""
	}
	return strings.Trim(disposition[i+len(key):], `"; `)
}

// IsUnauthorized atajo para errors.Is(err, domain.ErrUnauthorized).
func IsUnauthorized(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
