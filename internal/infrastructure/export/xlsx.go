package export

import (
	"fmt"
	"regexp"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
)

var invalidSheetChars = regexp.MustCompile(`[\[\]:*?/\\]`)

// sheetName nombre de hoja válido (máx. 31 caracteres, sin []:*?/\).
func sheetName(title string) string {
	name := invalidSheetChars.ReplaceAllString(title, " ")
	if len([]rune(name)) > 31 {
		name = string([]rune(name)[:31])
	}
	if name == "" {
		return "Sheet1"
	}
	return name
}

// XLSX una hoja con la tabla, encabezado en negrita y congelado.
func XLSX(t dto.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(t.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("export: xlsx: %w", err)
	}

	for i, rec := range t.Records() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("export: xlsx: %w", err)
		}
		values := make([]any, len(rec))
		for j, v := range rec {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("export: xlsx fila %d: %w", i+1, err)
		}
	}

	if len(t.Headers) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("export: xlsx: %w", err)
		}
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), 1)
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return nil, fmt.Errorf("export: xlsx: %w", err)
		}
		if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
			return nil, fmt.Errorf("export: xlsx: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
