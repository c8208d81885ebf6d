package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/infrastructure/export"
)

func customersTable() dto.Table {
	return dto.Table{
		Title:   "Customers",
		Headers: []string{"Internet ID", "Name", "Area"},
		Rows: []dto.TableRow{
			{ID: "1", Cells: []dto.Cell{{Text: "MBA-001"}, {Text: "Ali, Raza"}, {Text: "Gulberg"}}},
			{ID: "2", Cells: []dto.Cell{{Text: "MBA-002"}, {Text: "Sara"}, {Text: "Model Town"}}},
		},
	}
}

func TestCSV_BOMYComillas(t *testing.T) {
	out, err := export.CSV(customersTable())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	recs, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Ali, Raza", recs[1][1])
}

func TestXLSX_UnaFilaPorRegistro(t *testing.T) {
	out, err := export.XLSX(customersTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Customers")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Internet ID", "Name", "Area"}, rows[0])
	assert.Equal(t, "Model Town", rows[2][2])
}

func TestRender_FormatoDesconocido(t *testing.T) {
	_, err := export.Render("pdf", customersTable())
	assert.Error(t, err)
	assert.Contains(t, export.ContentType(export.FormatXLSX), "spreadsheetml")
}

func TestXLSX_TituloInvalidoComoHoja(t *testing.T) {
	tbl := customersTable()
	tbl.Title = "Recovery/Collections [2024]: very long sheet title"
	out, err := export.XLSX(tbl)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 1)
}
