// Package export serializa las tablas de listado a CSV y XLSX.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
)

// Formatos soportados.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ContentType MIME por formato.
func ContentType(format string) string {
	switch format {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Render serializa la tabla en el formato pedido.
func Render(format string, t dto.Table) ([]byte, error) {
	switch format {
	case FormatCSV:
		return CSV(t)
	case FormatXLSX:
		return XLSX(t)
	default:
		return nil, fmt.Errorf("export: formato no soportado %q", format)
	}
}

// utf8BOM para que Excel abra el CSV con acentos correctos.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV encabezados + filas, con BOM UTF-8.
func CSV(t dto.Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(t.Records()); err != nil {
		return nil, fmt.Errorf("export: csv: %w", err)
	}
	return buf.Bytes(), nil
}
