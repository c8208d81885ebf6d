package repository

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

// AnalyticsRepository puerto de /dashboard/*.
type AnalyticsRepository interface {
	ExecutiveSummary(ctx context.Context) (*entity.ExecutiveSummary, error)
	FinancialAnalytics(ctx context.Context) (*entity.FinancialAnalytics, error)
	ServiceSupport(ctx context.Context) (*entity.ServiceSupportMetrics, error)
	// Raw devuelve el JSON decodificado sin normalizar para los paneles genéricos.
	Raw(ctx context.Context, endpoint string) (map[string]any, error)
}
