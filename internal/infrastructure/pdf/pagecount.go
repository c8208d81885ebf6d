package pdf

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// PageCount lee el número de páginas de un PDF ya generado.
func PageCount(doc []byte) (int, error) {
	disableConfigDir.Do(api.DisableConfigDir)
	n, err := api.PageCount(bytes.NewReader(doc), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("pdf: contar páginas: %w", err)
	}
	return n, nil
}
