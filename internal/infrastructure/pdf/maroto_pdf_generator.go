// Package pdf genera los PDF de factura.
//
// Layout de la página A4 del documento estructurado:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa              │  INVOICE N° + estado        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: cliente / dirección / Internet ID / teléfono      │
//	│  PERIODO: inicio - fin  │  vence                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant | P.Unit | Desc. | Total         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Total / Pagado / Saldo     │
//	│  PAGOS: fecha | método | monto | estado                     │
//	│  SELLO PAID (si el saldo es <= 0)                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/jhoicas/isp-backoffice/internal/application/billing"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 124, Green: 58, Blue: 237}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorPaid    = &props.Color{Red: 22, Green: 163, Blue: 74}
	colorDue     = &props.Color{Red: 220, Green: 38, Blue: 38}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	issuer appbilling.Issuer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(issuer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(invoice))
	m.AddRows(periodRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(invoice)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	if len(invoice.Payments) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(paymentRows(invoice.Payments)...)
	}
	if !invoice.HasBalance() {
		m.AddRows(paidStampRow(invoice))
	}
	if invoice.Notes != "" {
		m.AddRows(notesRow(invoice.Notes))
	}
	m.AddRows(footerRow(issuer))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y número + estado (der).
func headerRow(invoice *entity.Invoice, issuer appbilling.Issuer) core.Row {
	statusColor := colorDue
	if !invoice.HasBalance() {
		statusColor = colorPaid
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(issuer.Name, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Internet Service Provider", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("#"+invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New(invoice.StatusLabel(), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 13, Color: statusColor,
			}),
		),
	)
}

// billToRow: datos del cliente.
func billToRow(invoice *entity.Invoice) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(invoice.CustomerName, "-"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(nonEmpty(invoice.CustomerAddress, "-"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Internet ID: %s   |   Phone: %s",
				nonEmpty(invoice.CustomerInternetID, "-"),
				nonEmpty(invoice.CustomerPhone, "-"),
			), props.Text{Size: 8, Top: 15, Color: colorGray}),
		),
	)
}

// periodRow: periodo facturado y vencimiento.
func periodRow(invoice *entity.Invoice) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New(
			fmt.Sprintf("Billing period: %s - %s", nonEmpty(invoice.BillingStartDate, "-"), nonEmpty(invoice.BillingEndDate, "-")),
			props.Text{Size: 8, Top: 2},
		)),
		col.New(4).Add(text.New(
			"Due date: "+nonEmpty(invoice.DueDate, "-"),
			props.Text{Style: fontstyle.Bold, Size: 8, Top: 2, Align: align.Right},
		)),
	)
}

// tableHeaderRow: cabecera de la tabla de detalles sobre fondo de color.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 5, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Discount", 2, align.Right),
		h("Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// detailLine fila normalizada de la tabla de detalle.
type detailLine struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

// detailLines usa las líneas de la factura; sin líneas, una sola fila con el concepto.
func detailLines(invoice *entity.Invoice) []detailLine {
	if len(invoice.LineItems) == 0 {
		discount := invoice.Subtotal.Sub(invoice.TotalAmount)
		if discount.IsNegative() {
			discount = decimal.Zero
		}
		return []detailLine{{
			Description: invoice.ServiceDescription(),
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   invoice.Subtotal,
			Discount:    discount,
			Total:       invoice.TotalAmount,
		}}
	}
	out := make([]detailLine, 0, len(invoice.LineItems))
	for _, li := range invoice.LineItems {
		desc := li.Description
		if desc == "" {
			desc = entity.HumanizeEnum(li.ItemType)
		}
		out = append(out, detailLine{
			Description: desc,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Discount:    li.DiscountAmount,
			Total:       li.LineTotal,
		})
	}
	return out
}

// tableDetailRows: una fila por línea de detalle.
func tableDetailRows(invoice *entity.Invoice) []core.Row {
	lines := detailLines(invoice)
	result := make([]core.Row, 0, len(lines))
	for _, d := range lines {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(d.Description, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(money.Format(d.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(money.PKR(d.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(money.PKR(d.Discount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(money.PKR(d.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	balanceColor := colorDue
	if !invoice.HasBalance() {
		balanceColor = colorPaid
	}

	return row.New(32).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 1),
			label(fmt.Sprintf("Discount (%s%%):", invoice.DiscountPercentage.StringFixed(0)), 7),
			label("Total:", 13),
			label("Paid:", 19),
			text.New("Balance Due:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 25, Color: balanceColor,
			}),
		),
		col.New(3).Add(
			value(money.PKR(invoice.Subtotal), 1),
			value(money.PKR(invoice.Subtotal.Sub(invoice.TotalAmount)), 7),
			value(money.PKR(invoice.TotalAmount), 13),
			value(money.PKR(invoice.TotalPaid), 19),
			text.New(money.PKR(invoice.RemainingAmount), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 25, Color: balanceColor,
			}),
		),
	)
}

// paymentRows: historial de pagos.
func paymentRows(payments []entity.Payment) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(text.New("PAYMENT HISTORY", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))),
	}
	for _, p := range payments {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(p.PaymentDate, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(p.PaymentMethod, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(money.PKR(p.Amount), props.Text{Size: 8, Top: 1, Align: align.Right})),
			col.New(3).Add(text.New(strings.ToUpper(p.Status), props.Text{Size: 8, Top: 1, Align: align.Right, Color: colorGray})),
		))
	}
	return rows
}

// paidStampRow: sello PAID con la fecha del último pago.
func paidStampRow(invoice *entity.Invoice) core.Row {
	stamp := "PAID"
	if last := invoice.LastPayment(); last != nil && last.PaymentDate != "" {
		stamp += " - " + last.PaymentDate
	}
	return row.New(16).Add(
		col.New(12).Add(text.New(stamp, props.Text{
			Style: fontstyle.Bold, Size: 18, Align: align.Center, Top: 4, Color: colorPaid,
		})),
	)
}

func notesRow(notes string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Notes", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
		text.New(notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
	))
}

func footerRow(issuer appbilling.Issuer) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Thank you for choosing "+issuer.Name+".", props.Text{
			Size: 7, Top: 4, Align: align.Center, Color: colorGray,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}
