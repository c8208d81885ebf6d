package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/isp-backoffice/internal/application/analytics"
)

// DashboardHandler página de inicio y dashboard de reportes por pestañas.
type DashboardHandler struct {
	base
	uc             *appanalytics.DashboardUseCase
	refreshSeconds int
}

// NewDashboardHandler construye el handler. refreshSeconds aplica a las secciones con polling.
func NewDashboardHandler(b base, uc *appanalytics.DashboardUseCase, refreshSeconds int) *DashboardHandler {
	return &DashboardHandler{base: b, uc: uc, refreshSeconds: refreshSeconds}
}

// Home GET /
//
// Resumen ejecutivo, financiero y de soporte en paralelo. Cada panel muestra su propio
// error si su endpoint falla.
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	panels, err := h.uc.Overview(ctx(c))
	if err != nil {
		return err
	}
	return render(c, "dashboard", fiber.Map{
		"Page":   h.page(c, "Dashboard", "dashboard"),
		"Panels": panels,
	})
}

// Reporting GET /reporting/:section
func (h *DashboardHandler) Reporting(c *fiber.Ctx) error {
	key := c.Params("section", appanalytics.Sections[0].Key)
	sec, ok := appanalytics.FindSection(key)
	if !ok {
		return fiber.ErrNotFound
	}
	panel, err := h.uc.Panel(ctx(c), sec.Key)
	if err != nil {
		return err
	}
	page := h.page(c, sec.Title, "reporting")
	if sec.Poll {
		page.RefreshSeconds = h.refreshSeconds
	}
	return render(c, "reporting", fiber.Map{
		"Page":     page,
		"Sections": appanalytics.Sections,
		"Current":  sec.Key,
		"Panel":    panel,
	})
}
