package backend

import (
	"context"
	"fmt"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepository)(nil)

// AnalyticsRepository /dashboard/*.
type AnalyticsRepository struct {
	c *Client
}

// NewAnalyticsRepository construye el repositorio.
func NewAnalyticsRepository(c *Client) *AnalyticsRepository {
	return &AnalyticsRepository{c: c}
}

func (r *AnalyticsRepository) ExecutiveSummary(ctx context.Context) (*entity.ExecutiveSummary, error) {
	var out entity.ExecutiveSummary
	if err := r.c.Get(ctx, "/dashboard/executive-summary", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *AnalyticsRepository) FinancialAnalytics(ctx context.Context) (*entity.FinancialAnalytics, error) {
	var out entity.FinancialAnalytics
	if err := r.c.Get(ctx, "/dashboard/financial-analytics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ServiceSupport el backend puede responder 200 con {"error": "..."}; se devuelve como error.
func (r *AnalyticsRepository) ServiceSupport(ctx context.Context) (*entity.ServiceSupportMetrics, error) {
	var out entity.ServiceSupportMetrics
	if err := r.c.Get(ctx, "/dashboard/service-support", &out); err != nil {
		return nil, err
	}
	if out.Error != "" {
		return nil, fmt.Errorf("service-support: %s", out.Error)
	}
	return &out, nil
}

// Raw GET /dashboard/{endpoint} sin tipar.
func (r *AnalyticsRepository) Raw(ctx context.Context, endpoint string) (map[string]any, error) {
	out := map[string]any{}
	if err := r.c.Get(ctx, "/dashboard/"+endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}
