package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/infrastructure/export"
)

// crudPage páginas de listado, alta, edición, baja y exporte de un recurso del backend.
// T es la entidad listada y F el formulario (puntero) que se envía al guardar.
type crudPage[T any, F dto.Form] struct {
	base
	key      string // segmento de ruta: /customers
	title    string // "Customers"
	singular string // "Customer"

	list   func(context.Context) ([]T, error)
	save   func(context.Context, string, F) error
	delete func(context.Context, string) error
	load   func(context.Context, string) (F, error)

	newForm   func() F
	bind      func(*fiber.Ctx, F) error // archivos y multi-selects; opcional
	fields    func(F, *dto.ReferenceLists) []dto.Field
	table     func([]T) dto.Table
	summary   func([]T) *dto.Panel // cabecera opcional del listado
	refKinds  []dto.RefKind
	refs      *usecase.ReferenceUseCase
	multipart bool
	readOnly  bool // solo listado y exporte
}

func (p *crudPage[T, F]) href(parts ...string) string {
	out := "/" + p.key
	for _, s := range parts {
		out += "/" + s
	}
	return out
}

// register monta las rutas del recurso sobre r.
func (p *crudPage[T, F]) register(r fiber.Router) {
	g := r.Group("/" + p.key)
	g.Get("/", p.List)
	g.Get("/export.:format", p.Export)
	if p.readOnly {
		return
	}
	g.Get("/new", p.New)
	g.Post("/", p.Create)
	g.Get("/:id/edit", p.Edit)
	g.Post("/:id", p.Update)
	g.Post("/:id/delete", p.Delete)
}

// List GET /{key}. Un fallo del backend (salvo 401) se muestra como banner sobre la tabla vacía.
func (p *crudPage[T, F]) List(c *fiber.Ctx) error {
	page := p.page(c, p.title, p.key)
	items, err := p.list(ctx(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		page.Error = userMessage(err)
		items = nil
	}
	data := fiber.Map{"Page": page, "Table": p.table(items)}
	if p.summary != nil && err == nil {
		data["Summary"] = p.summary(items)
	}
	return render(c, "list", data)
}

// Export GET /{key}/export.csv|xlsx con las mismas filas que muestra la tabla.
func (p *crudPage[T, F]) Export(c *fiber.Ctx) error {
	format := c.Params("format")
	if format != export.FormatCSV && format != export.FormatXLSX {
		return fiber.ErrNotFound
	}
	items, err := p.list(ctx(c))
	if err != nil {
		return err
	}
	body, err := export.Render(format, p.table(items))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, export.ContentType(format))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+p.key+"."+format+`"`)
	return c.Send(body)
}

// New GET /{key}/new.
func (p *crudPage[T, F]) New(c *fiber.Ctx) error {
	return p.renderForm(c, "", p.newForm(), nil, fiber.StatusOK)
}

// Edit GET /{key}/:id/edit.
func (p *crudPage[T, F]) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	form, err := p.load(ctx(c), id)
	if err != nil {
		return err
	}
	return p.renderForm(c, id, form, nil, fiber.StatusOK)
}

// Create POST /{key}.
func (p *crudPage[T, F]) Create(c *fiber.Ctx) error {
	return p.submit(c, "")
}

// Update POST /{key}/:id.
func (p *crudPage[T, F]) Update(c *fiber.Ctx) error {
	return p.submit(c, c.Params("id"))
}

func (p *crudPage[T, F]) submit(c *fiber.Ctx, id string) error {
	form := p.newForm()
	if err := c.BodyParser(form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form submission")
	}
	if p.bind != nil {
		if err := p.bind(c, form); err != nil {
			return err
		}
	}
	if err := p.save(ctx(c), id, form); err != nil {
		if isFormError(err) {
			return p.renderForm(c, id, form, err, fiber.StatusUnprocessableEntity)
		}
		return err
	}
	verb := " created successfully"
	if id != "" {
		verb = " updated successfully"
	}
	return redirectWithFlash(c, p.href(), p.singular+verb)
}

// Delete POST /{key}/:id/delete.
func (p *crudPage[T, F]) Delete(c *fiber.Ctx) error {
	if err := p.delete(ctx(c), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		setFlash(c, "error", userMessage(err))
		return c.Redirect(p.href(), fiber.StatusSeeOther)
	}
	return redirectWithFlash(c, p.href(), p.singular+" deleted successfully")
}

// renderForm pinta el formulario; formErr (validación o rechazo del backend) se muestra arriba.
func (p *crudPage[T, F]) renderForm(c *fiber.Ctx, id string, form F, formErr error, status int) error {
	refs := &dto.ReferenceLists{}
	if len(p.refKinds) > 0 {
		loaded, err := p.refs.Load(ctx(c), p.refKinds...)
		if err != nil {
			return err
		}
		refs = loaded
	}
	view := dto.FormView{
		Title:      "Add " + p.singular,
		Action:     p.href(),
		CancelHref: p.href(),
		Submit:     "Create",
		Multipart:  p.multipart,
		Fields:     p.fields(form, refs),
	}
	if id != "" {
		view.Title = "Edit " + p.singular
		view.Action = p.href(id)
		view.Submit = "Update"
	}
	if formErr != nil {
		view.Error = userMessage(formErr)
		var ve *domain.ValidationError
		if errors.As(formErr, &ve) {
			view.ErrorField = ve.Field
		}
	}
	page := p.page(c, view.Title, p.key)
	page.Error = refErrors(p.refKinds, refs.Errors)
	c.Status(status)
	return render(c, "form", fiber.Map{"Page": page, "Form": view})
}

// refErrors une los fallos de las listas auxiliares en el orden de kinds.
func refErrors(kinds []dto.RefKind, errs map[dto.RefKind]string) string {
	var msgs []string
	for _, k := range kinds {
		if msg, ok := errs[k]; ok {
			msgs = append(msgs, "Could not load "+string(k)+": "+msg)
		}
	}
	return strings.Join(msgs, "; ")
}
