// Package fanout ejecuta cargas independientes de una página en paralelo.
package fanout

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/isp-backoffice/internal/domain"
)

// Group agrupa las cargas de una página. El fallo de una sección queda aislado
// (se registra su mensaje) salvo ErrUnauthorized, que cancela el resto y se propaga.
type Group struct {
	g    *errgroup.Group
	ctx  context.Context
	mu   sync.Mutex
	errs map[string]string
}

// New crea el grupo ligado a ctx; si ctx se cancela, las llamadas pendientes se abortan.
func New(ctx context.Context) *Group {
	g, gctx := errgroup.WithContext(ctx)
	return &Group{g: g, ctx: gctx, errs: map[string]string{}}
}

// Go lanza la carga de la sección name.
func (f *Group) Go(name string, fn func(ctx context.Context) error) {
	f.g.Go(func() error {
		err := fn(f.ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		f.mu.Lock()
		f.errs[name] = err.Error()
		f.mu.Unlock()
		return nil
	})
}

// Wait espera todas las cargas. Devuelve los errores por sección y, si alguna
// devolvió ErrUnauthorized, ese error.
func (f *Group) Wait() (map[string]string, error) {
	if err := f.g.Wait(); err != nil {
		return nil, err
	}
	return f.errs, nil
}
