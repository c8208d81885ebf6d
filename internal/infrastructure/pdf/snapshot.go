package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"unicode/utf8"

	maroto "github.com/johnfercher/maroto/v2"
	mimage "github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	appbilling "github.com/jhoicas/isp-backoffice/internal/application/billing"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/pkg/logger"
	"github.com/jhoicas/isp-backoffice/pkg/money"
)

// Geometría A4 con márgenes de 10 mm.
const (
	marginMM        = 10.0
	contentWidthMM  = 190.0
	contentHeightMM = 277.0

	canvasWidth = 760 // px antes de escalar
	canvasScale = 2
	lineHeight  = 18
	padding     = 24
	glyphWidth  = 7 // basicfont.Face7x13
)

// SliceHeight alto en px (ya escalado) que ocupa una página de contenido.
func SliceHeight() int {
	return int(float64(canvasWidth*canvasScale) * contentHeightMM / contentWidthMM)
}

// Paginate parte una imagen de alto total en franjas de sliceHeight.
// Número de páginas = ceil(total / sliceHeight), nunca menos de una.
func Paginate(total, sliceHeight int) []image.Rectangle {
	if sliceHeight <= 0 {
		return nil
	}
	n := (total + sliceHeight - 1) / sliceHeight
	if n < 1 {
		n = 1
	}
	out := make([]image.Rectangle, n)
	for i := range out {
		top := i * sliceHeight
		bottom := top + sliceHeight
		if bottom > total {
			bottom = total
		}
		out[i] = image.Rect(0, top, canvasWidth*canvasScale, bottom)
	}
	return out
}

// SnapshotRenderer implementa billing.SnapshotRenderer: dibuja la factura pública una
// sola vez en un lienzo alto y la reparte en páginas A4.
type SnapshotRenderer struct {
	log *logger.Logger
}

// NewSnapshotRenderer construye el renderer. log nil descarta los logs.
func NewSnapshotRenderer(log *logger.Logger) *SnapshotRenderer {
	if log == nil {
		log = logger.Nop()
	}
	return &SnapshotRenderer{log: log.Component("pdf")}
}

var _ appbilling.SnapshotRenderer = (*SnapshotRenderer)(nil)

// RenderSnapshot devuelve el PDF paginado.
func (r *SnapshotRenderer) RenderSnapshot(ctx context.Context, invoice *entity.Invoice, issuer appbilling.Issuer) ([]byte, error) {
	canvas := Rasterize(invoice, issuer)
	slices := Paginate(canvas.Bounds().Dy(), SliceHeight())

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(marginMM).WithRightMargin(marginMM).
		WithTopMargin(marginMM).WithBottomMargin(marginMM).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(issuer.Name, true).
		Build()
	m := maroto.New(cfg)

	for i, rect := range slices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		png, err := encodeSlice(canvas, rect)
		if err != nil {
			return nil, fmt.Errorf("pdf: codificar página %d: %w", i+1, err)
		}
		m.AddPages(page.New().Add(
			mimage.NewFromBytesRow(contentHeightMM-0.5, png, extension.Png, props.Rect{Percent: 100}),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar captura: %w", err)
	}
	out := doc.GetBytes()
	if pages, err := PageCount(out); err == nil && pages != len(slices) {
		r.log.Warn().Int("expected", len(slices)).Int("pages", pages).Str("invoice", invoice.InvoiceNumber).Msg("pdf: páginas inesperadas")
	}
	r.log.Debug().Int("pages", len(slices)).Int("height_px", canvas.Bounds().Dy()).Msg("pdf: captura generada")
	return out, nil
}

// encodeSlice copia una franja en una página blanca de alto completo y la codifica en PNG.
func encodeSlice(src image.Image, rect image.Rectangle) ([]byte, error) {
	pageImg := image.NewRGBA(image.Rect(0, 0, rect.Dx(), SliceHeight()))
	xdraw.Draw(pageImg, pageImg.Bounds(), image.White, image.Point{}, xdraw.Src)
	xdraw.Draw(pageImg, image.Rect(0, 0, rect.Dx(), rect.Dy()), src, rect.Min, xdraw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, pageImg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ── Rasterizado ───────────────────────────────────────────────────────────────

var (
	inkText    = color.RGBA{R: 31, G: 41, B: 55, A: 255}
	inkMuted   = color.RGBA{R: 107, G: 114, B: 128, A: 255}
	inkAccent  = color.RGBA{R: 124, G: 58, B: 237, A: 255}
	inkPaid    = color.RGBA{R: 22, G: 163, B: 74, A: 255}
	inkDue     = color.RGBA{R: 220, G: 38, B: 38, A: 255}
	inkRule    = color.RGBA{R: 229, G: 231, B: 235, A: 255}
	inkBandTxt = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// snapLine una línea del lienzo: texto, regla o banda de color.
type snapLine struct {
	text  string
	right string // texto alineado a la derecha en la misma línea
	ink   color.RGBA
	bold  bool
	rule  bool
	band  bool
}

// Rasterize dibuja la factura a escala canvasScale.
func Rasterize(invoice *entity.Invoice, issuer appbilling.Issuer) image.Image {
	lines := snapshotLines(invoice, issuer)
	base := image.NewRGBA(image.Rect(0, 0, canvasWidth, padding*2+len(lines)*lineHeight))
	xdraw.Draw(base, base.Bounds(), image.White, image.Point{}, xdraw.Src)

	y := padding
	for _, ln := range lines {
		switch {
		case ln.rule:
			xdraw.Draw(base, image.Rect(padding, y+lineHeight/2, canvasWidth-padding, y+lineHeight/2+1), image.NewUniform(inkRule), image.Point{}, xdraw.Src)
		case ln.band:
			xdraw.Draw(base, image.Rect(padding, y, canvasWidth-padding, y+lineHeight), image.NewUniform(inkAccent), image.Point{}, xdraw.Src)
			drawText(base, padding+6, y, ln.text, inkBandTxt, true)
			if ln.right != "" {
				drawText(base, canvasWidth-padding-6-textWidth(ln.right), y, ln.right, inkBandTxt, true)
			}
		default:
			drawText(base, padding, y, ln.text, ln.ink, ln.bold)
			if ln.right != "" {
				drawText(base, canvasWidth-padding-textWidth(ln.right), y, ln.right, ln.ink, ln.bold)
			}
		}
		y += lineHeight
	}

	scaled := image.NewRGBA(image.Rect(0, 0, canvasWidth*canvasScale, base.Bounds().Dy()*canvasScale))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return scaled
}

func drawText(dst *image.RGBA, x, y int, s string, ink color.RGBA, bold bool) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(ink), Face: basicfont.Face7x13}
	baseline := y + 13
	d.Dot = fixed.P(x, baseline)
	d.DrawString(s)
	if bold {
		d.Dot = fixed.P(x+1, baseline)
		d.DrawString(s)
	}
}

// snapshotLines contenido de la vista pública en orden de lectura.
func snapshotLines(invoice *entity.Invoice, issuer appbilling.Issuer) []snapLine {
	width := (canvasWidth - 2*padding) / glyphWidth
	balanceInk := inkDue
	if !invoice.HasBalance() {
		balanceInk = inkPaid
	}
	txt := func(s string) snapLine { return snapLine{text: s, ink: inkText} }
	muted := func(s string) snapLine { return snapLine{text: s, ink: inkMuted} }
	rule := snapLine{rule: true}
	blank := snapLine{}

	lines := []snapLine{
		{text: issuer.Name, right: "INVOICE #" + invoice.InvoiceNumber, ink: inkAccent, bold: true},
		{text: "Internet Service Provider", right: invoice.StatusLabel(), ink: balanceInk},
		rule,
		{text: "BILL TO", ink: inkAccent, bold: true},
		{text: nonEmpty(invoice.CustomerName, "-"), ink: inkText, bold: true},
	}
	for _, w := range wrap(nonEmpty(invoice.CustomerAddress, "-"), width) {
		lines = append(lines, muted(w))
	}
	lines = append(lines,
		muted("Internet ID: "+nonEmpty(invoice.CustomerInternetID, "-")+"   Phone: "+nonEmpty(invoice.CustomerPhone, "-")),
		blank,
		snapLine{text: "Billing period: " + nonEmpty(invoice.BillingStartDate, "-") + " - " + nonEmpty(invoice.BillingEndDate, "-"),
			right: "Due: " + nonEmpty(invoice.DueDate, "-"), ink: inkText},
		rule,
		snapLine{band: true, text: fmt.Sprintf("%-44s %5s", "Description", "Qty"), right: "Total"},
	)
	for _, d := range detailLines(invoice) {
		desc := truncate(d.Description, 44)
		lines = append(lines, snapLine{
			text:  fmt.Sprintf("%-44s %5s", desc, money.Format(d.Quantity)),
			right: money.PKR(d.Total),
			ink:   inkText,
		})
	}
	lines = append(lines,
		rule,
		snapLine{text: "Subtotal", right: money.PKR(invoice.Subtotal), ink: inkText},
		snapLine{text: "Discount (" + invoice.DiscountPercentage.StringFixed(0) + "%)", right: money.PKR(invoice.Subtotal.Sub(invoice.TotalAmount)), ink: inkText},
		snapLine{text: "Total", right: money.PKR(invoice.TotalAmount), ink: inkText, bold: true},
		snapLine{text: "Paid", right: money.PKR(invoice.TotalPaid), ink: inkText},
		snapLine{text: "Balance Due", right: money.PKR(invoice.RemainingAmount), ink: balanceInk, bold: true},
	)

	if len(invoice.Payments) > 0 {
		lines = append(lines, blank, snapLine{text: "PAYMENT HISTORY", ink: inkAccent, bold: true})
		for _, p := range invoice.Payments {
			lines = append(lines, snapLine{
				text:  fmt.Sprintf("%-12s %-16s %s", p.PaymentDate, p.PaymentMethod, strings.ToUpper(p.Status)),
				right: money.PKR(p.Amount),
				ink:   inkText,
			})
		}
	}
	if !invoice.HasBalance() {
		stamp := "PAID"
		if last := invoice.LastPayment(); last != nil && last.PaymentDate != "" {
			stamp += " - " + last.PaymentDate
		}
		lines = append(lines, blank, snapLine{text: stamp, ink: inkPaid, bold: true})
	}
	if pi := invoice.PendingInvoices; pi != nil && pi.Count > 0 {
		lines = append(lines, blank,
			snapLine{text: fmt.Sprintf("OTHER PENDING INVOICES (%d)", pi.Count), right: money.PKR(pi.TotalPendingAmount), ink: inkDue, bold: true})
		for _, o := range pi.Invoices {
			lines = append(lines, snapLine{
				text:  fmt.Sprintf("#%-14s due %-12s %s", o.InvoiceNumber, o.DueDate, strings.ToUpper(o.Status)),
				right: money.PKR(o.RemainingAmount),
				ink:   inkText,
			})
		}
	}
	if invoice.Notes != "" {
		lines = append(lines, blank, txt("Notes"))
		for _, w := range wrap(invoice.Notes, width) {
			lines = append(lines, muted(w))
		}
	}
	lines = append(lines, blank, muted("Thank you for choosing "+issuer.Name+"."))
	return lines
}

// truncate corta s a max runas; si sobra, la última se reemplaza por ".".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "."
}

// textWidth ancho en px de s con la fuente monoespaciada.
func textWidth(s string) int {
	return utf8.RuneCountInString(s) * glyphWidth
}

// wrap corta el texto en líneas de hasta width caracteres respetando palabras.
func wrap(s string, width int) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(w) > width {
				out = append(out, cur)
				cur = w
				continue
			}
			cur += " " + w
		}
		out = append(out, cur)
	}
	return out
}
