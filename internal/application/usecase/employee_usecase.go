package usecase

import (
	"context"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// EmployeeUseCase alta/edición de empleados; la contraseña se confirma antes de enviar.
type EmployeeUseCase struct {
	*CRUDUseCase[entity.Employee]
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.CRUDRepository[entity.Employee]) *EmployeeUseCase {
	return &EmployeeUseCase{CRUDUseCase: NewCRUDUseCase[entity.Employee](repo)}
}

// Save marca el formulario como edición cuando hay id.
func (uc *EmployeeUseCase) Save(ctx context.Context, id string, form *dto.EmployeeForm) error {
	form.Editing = id != ""
	return uc.CRUDUseCase.Save(ctx, id, form)
}

// Get busca el empleado en la lista.
func (uc *EmployeeUseCase) Get(ctx context.Context, id string) (*entity.Employee, error) {
	return uc.Find(ctx, id, func(e entity.Employee) string { return e.ID })
}
