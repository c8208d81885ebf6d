package usecase

import (
	"fmt"

	"github.com/jhoicas/isp-backoffice/internal/domain"
)

func errNotFound(id string) error {
	return fmt.Errorf("id %s: %w", id, domain.ErrNotFound)
}
