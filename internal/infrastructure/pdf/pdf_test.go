package pdf_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-backoffice/internal/application/billing"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/infrastructure/pdf"
)

var issuer = billing.Issuer{Name: "MBA NET"}

func sampleInvoice(remaining int64, payments int) *entity.Invoice {
	inv := &entity.Invoice{
		ID:                 "inv-1",
		InvoiceNumber:      "INV-2024-001",
		CustomerName:       "Ali Raza",
		CustomerAddress:    "House 12, Street 4, Lahore",
		ServicePlanName:    "Fiber 20 Mbps",
		InvoiceType:        "subscription",
		Subtotal:           decimal.NewFromInt(3000),
		DiscountPercentage: decimal.NewFromInt(10),
		TotalAmount:        decimal.NewFromInt(2700),
		TotalPaid:          decimal.NewFromInt(2700 - remaining),
		RemainingAmount:    decimal.NewFromInt(remaining),
		Status:             entity.InvoiceUnpaid,
	}
	for i := 0; i < payments; i++ {
		inv.Payments = append(inv.Payments, entity.Payment{
			PaymentDate:   fmt.Sprintf("2024-01-%02d", i%28+1),
			PaymentMethod: entity.MethodCash,
			Amount:        decimal.NewFromInt(10),
			Status:        entity.PaymentCompleted,
		})
	}
	return inv
}

func TestPaginate_Ceil(t *testing.T) {
	cases := []struct{ total, slice, want int }{
		{100, 100, 1},
		{101, 100, 2},
		{250, 100, 3},
		{1, 100, 1},
		{0, 100, 1},
	}
	for _, tc := range cases {
		rects := pdf.Paginate(tc.total, tc.slice)
		assert.Len(t, rects, tc.want, "total=%d", tc.total)
	}

	rects := pdf.Paginate(250, 100)
	assert.Equal(t, 200, rects[2].Min.Y)
	assert.Equal(t, 250, rects[2].Max.Y, "la última franja no se extiende más allá del lienzo")
}

func TestRasterize_AnchoEscalado(t *testing.T) {
	img := pdf.Rasterize(sampleInvoice(2700, 0), issuer)
	assert.Equal(t, 1520, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestRenderSnapshot_PaginasSegunAlto(t *testing.T) {
	r := pdf.NewSnapshotRenderer(nil)

	short := sampleInvoice(2700, 0)
	doc, err := r.RenderSnapshot(context.Background(), short, issuer)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	pages, err := pdf.PageCount(doc)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)

	long := sampleInvoice(0, 200)
	img := pdf.Rasterize(long, issuer)
	want := len(pdf.Paginate(img.Bounds().Dy(), pdf.SliceHeight()))
	require.Greater(t, want, 1)

	doc, err = r.RenderSnapshot(context.Background(), long, issuer)
	require.NoError(t, err)
	pages, err = pdf.PageCount(doc)
	require.NoError(t, err)
	assert.Equal(t, want, pages)
}

func TestRenderSnapshot_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdf.NewSnapshotRenderer(nil).RenderSnapshot(ctx, sampleInvoice(1, 0), issuer)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMarotoGenerator_GeneraPDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()

	doc, err := g.GenerateInvoicePDF(context.Background(), sampleInvoice(0, 2), issuer)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))

	pages, err := pdf.PageCount(doc)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}
