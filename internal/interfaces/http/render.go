package http

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

const (
	layoutMain   = "layouts/main"
	layoutPublic = "layouts/public"
)

// base datos comunes a todos los handlers con layout.
type base struct {
	companyName string
}

// page arma el encabezado común de la página (usuario, toast pendiente).
func (b base) page(c *fiber.Ctx, title, active string) dto.Page {
	return dto.Page{
		Title:       title,
		Active:      active,
		User:        GetSession(c).User(),
		Flash:       popFlash(c),
		CompanyName: b.companyName,
	}
}

// render pinta una vista dentro del layout principal.
func render(c *fiber.Ctx, view string, data fiber.Map) error {
	return c.Render(view, data, layoutMain)
}

// formValues todos los valores de un campo repetido (multi-select), urlencoded o multipart.
func formValues(c *fiber.Ctx, name string) []string {
	if mf, err := c.MultipartForm(); err == nil && mf != nil {
		return mf.Value[name]
	}
	raw := c.Request().PostArgs().PeekMulti(name)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, string(v))
	}
	return out
}

// formFile lee un archivo subido; nil si el campo vino vacío.
func formFile(c *fiber.Ctx, name string) (*repository.File, error) {
	fh, err := c.FormFile(name)
	if err != nil || fh == nil || fh.Size == 0 {
		return nil, nil
	}
	return readFileHeader(name, fh)
}

func readFileHeader(name string, fh *multipart.FileHeader) (*repository.File, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &repository.File{
		Field:       name,
		Name:        fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}

// formFiles lee varios campos de archivo, omitiendo los vacíos.
func formFiles(c *fiber.Ctx, names ...string) ([]repository.File, error) {
	var out []repository.File
	for _, n := range names {
		f, err := formFile(c, n)
		if err != nil {
			return nil, err
		}
		if f != nil {
			out = append(out, *f)
		}
	}
	return out, nil
}

// sendBlob reenvía un binario del backend (imágenes de CNIC, comprobantes).
func sendBlob(c *fiber.Ctx, blob *repository.Blob, fallbackName string) error {
	ct := blob.ContentType
	if ct == "" {
		ct = fiber.MIMEOctetStream
	}
	name := blob.Filename
	if name == "" {
		name = fallbackName
	}
	c.Set(fiber.HeaderContentType, ct)
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
	return c.Send(blob.Data)
}
