// Package analytics contiene los casos de uso de los dashboards de reportes.
package analytics

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/fanout"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// Section pestaña del dashboard de reportes.
type Section struct {
	Key      string // segmento de ruta /reporting/:section
	Title    string
	Endpoint string // /dashboard/{endpoint}
	Poll     bool   // se refresca sola cada N segundos
}

// Sections orden de las pestañas.
var Sections = []Section{
	{Key: "executive", Title: "Executive Summary", Endpoint: "executive-summary"},
	{Key: "customers", Title: "Customer Analytics", Endpoint: "customer-analytics"},
	{Key: "financial", Title: "Financial Analytics", Endpoint: "financial-analytics"},
	{Key: "service", Title: "Service Support", Endpoint: "service-support", Poll: true},
	{Key: "inventory", Title: "Inventory Management", Endpoint: "inventory-management"},
	{Key: "employees", Title: "Employee Analytics", Endpoint: "employee-analytics"},
	{Key: "regional", Title: "Area Analytics", Endpoint: "area-analytics"},
	{Key: "plans", Title: "Service Plan Analytics", Endpoint: "service-plan-analytics"},
	{Key: "collections", Title: "Recovery & Collections", Endpoint: "recovery-collections"},
}

// FindSection busca la sección por clave.
func FindSection(key string) (Section, bool) {
	for _, s := range Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// DashboardUseCase arma los paneles de cada sección.
//
// Fuente de datos: AnalyticsRepository (solo lectura). No normaliza nada: cada panel
// refleja la respuesta del backend.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// Panel carga una sección. Un fallo del backend vuelve como panel con Error
// (el resto de la página se renderiza); ErrUnauthorized se propaga.
func (uc *DashboardUseCase) Panel(ctx context.Context, key string) (dto.Panel, error) {
	sec, ok := FindSection(key)
	if !ok {
		return dto.Panel{}, domain.ErrNotFound
	}
	var panel dto.Panel
	g := fanout.New(ctx)
	g.Go(sec.Key, func(ctx context.Context) (err error) {
		panel, err = uc.load(ctx, sec)
		return err
	})
	errs, err := g.Wait()
	if err != nil {
		return dto.Panel{}, err
	}
	if msg, failed := errs[sec.Key]; failed {
		return dto.Panel{Key: sec.Key, Title: sec.Title, Error: msg}, nil
	}
	return panel, nil
}

// Overview resumen ejecutivo, financiero y de soporte en paralelo, cada uno con su propio error.
func (uc *DashboardUseCase) Overview(ctx context.Context) ([]dto.Panel, error) {
	keys := []string{"executive", "financial", "service"}
	panels := make([]dto.Panel, len(keys))
	g := fanout.New(ctx)
	for i, k := range keys {
		sec, _ := FindSection(k)
		panels[i] = dto.Panel{Key: sec.Key, Title: sec.Title}
		g.Go(sec.Key, func(ctx context.Context) error {
			p, err := uc.load(ctx, sec)
			if err != nil {
				return err
			}
			panels[i] = p
			return nil
		})
	}
	errs, err := g.Wait()
	if err != nil {
		return nil, err
	}
	for i := range panels {
		if msg, failed := errs[panels[i].Key]; failed {
			panels[i].Error = msg
		}
	}
	return panels, nil
}

func (uc *DashboardUseCase) load(ctx context.Context, sec Section) (dto.Panel, error) {
	switch sec.Key {
	case "executive":
		s, err := uc.analyticsRepo.ExecutiveSummary(ctx)
		if err != nil {
			return dto.Panel{}, err
		}
		return dto.ExecutivePanel(s), nil
	case "financial":
		f, err := uc.analyticsRepo.FinancialAnalytics(ctx)
		if err != nil {
			return dto.Panel{}, err
		}
		return dto.FinancialPanel(f), nil
	case "service":
		m, err := uc.analyticsRepo.ServiceSupport(ctx)
		if err != nil {
			return dto.Panel{}, err
		}
		return dto.ServicePanel(m), nil
	default:
		raw, err := uc.analyticsRepo.Raw(ctx, sec.Endpoint)
		if err != nil {
			return dto.Panel{}, err
		}
		return dto.RawPanel(sec.Key, sec.Title, raw), nil
	}
}
