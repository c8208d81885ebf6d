package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// Resource CRUD genérico sobre /{endpoint}/list|add|update/:id|delete/:id.
type Resource[T any] struct {
	c        *Client
	endpoint string
}

// NewResource construye el recurso. endpoint sin "/" inicial ("customers", "recovery-tasks").
func NewResource[T any](c *Client, endpoint string) Resource[T] {
	return Resource[T]{c: c, endpoint: endpoint}
}

func (r Resource[T]) path(parts ...string) string {
	p := "/" + r.endpoint
	for _, s := range parts {
		p += "/" + url.PathEscape(s)
	}
	return p
}

// List GET /{endpoint}/list.
func (r Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.Get(ctx, r.path("list"), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create POST /{endpoint}/add.
func (r Resource[T]) Create(ctx context.Context, payload any) error {
	return r.c.Do(ctx, http.MethodPost, r.path("add"), payload, nil)
}

// Update PUT /{endpoint}/update/:id.
func (r Resource[T]) Update(ctx context.Context, id string, payload any) error {
	return r.c.Do(ctx, http.MethodPut, r.path("update", id), payload, nil)
}

// Delete DELETE /{endpoint}/delete/:id.
func (r Resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.Do(ctx, http.MethodDelete, r.path("delete", id), nil, nil)
}

var _ repository.CRUDRepository[struct{}] = Resource[struct{}]{}
