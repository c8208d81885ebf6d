package pdf

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/isp-backoffice/internal/application/billing"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
)

func TestTruncate_CortaPorRunas(t *testing.T) {
	long := strings.Repeat("ñ", 50)
	got := truncate(long, 44)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 44, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "."))

	assert.Equal(t, "Instalación", truncate("Instalación", 44))
}

func TestTextWidth_MideRunas(t *testing.T) {
	assert.Equal(t, 3*glyphWidth, textWidth("₨ 1"))
	assert.Equal(t, textWidth("abc"), textWidth("ñáé"))
}

func TestSnapshotLines_DescripcionMultibyteValida(t *testing.T) {
	inv := &entity.Invoice{
		InvoiceNumber:   "INV-9",
		TotalAmount:     decimal.NewFromInt(100),
		RemainingAmount: decimal.NewFromInt(100),
		LineItems: []entity.LineItem{{
			Description: strings.Repeat("Conexión de fibra óptica ", 4),
			Quantity:    decimal.NewFromInt(1),
			LineTotal:   decimal.NewFromInt(100),
		}},
	}
	for _, ln := range snapshotLines(inv, billing.Issuer{Name: "MBA NET"}) {
		assert.True(t, utf8.ValidString(ln.text), ln.text)
	}
}
