package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	"github.com/jhoicas/isp-backoffice/internal/domain"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
	"github.com/jhoicas/isp-backoffice/mocks"
)

func TestCRUDUseCase_SaveValidaAntesDeLlamar(t *testing.T) {
	repo := new(mocks.MockCRUDRepository[entity.Area])
	uc := usecase.NewCRUDUseCase[entity.Area](repo)

	err := uc.Save(context.Background(), "", &dto.AreaForm{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCRUDUseCase_SaveCreaOActualiza(t *testing.T) {
	repo := new(mocks.MockCRUDRepository[entity.Area])
	uc := usecase.NewCRUDUseCase[entity.Area](repo)
	form := &dto.AreaForm{Name: "Gulberg"}

	repo.On("Create", mock.Anything, form).Return(nil).Once()
	repo.On("Update", mock.Anything, "a1", form).Return(nil).Once()

	require.NoError(t, uc.Save(context.Background(), "", form))
	require.NoError(t, uc.Save(context.Background(), "a1", form))
	repo.AssertExpectations(t)
}

func TestCRUDUseCase_FindNoEncontrado(t *testing.T) {
	repo := new(mocks.MockCRUDRepository[entity.Area])
	repo.On("List", mock.Anything).Return([]entity.Area{{ID: "a1"}}, nil)
	uc := usecase.NewCRUDUseCase[entity.Area](repo)

	got, err := uc.Find(context.Background(), "a1", func(a entity.Area) string { return a.ID })
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	_, err = uc.Find(context.Background(), "zz", func(a entity.Area) string { return a.ID })
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestReferenceUseCase_ListaFallidaQuedaVacia(t *testing.T) {
	repo := new(mocks.MockReferenceRepository)
	repo.On("Areas", mock.Anything).Return([]entity.Area{}, nil)
	repo.On("ServicePlans", mock.Anything).Return(nil, errors.New("backend HTTP 500: plans down"))
	repo.On("BankAccounts", mock.Anything, true).Return([]entity.BankAccount{{ID: "b1"}}, nil)

	refs, err := usecase.NewReferenceUseCase(repo).Load(context.Background(), dto.RefAreas, dto.RefServicePlans, dto.RefBankAccounts)
	require.NoError(t, err)
	assert.Empty(t, refs.Areas)
	assert.Empty(t, refs.ServicePlans)
	assert.Len(t, refs.BankAccounts, 1)
	assert.Equal(t, "backend HTTP 500: plans down", refs.Errors[dto.RefServicePlans])
	repo.AssertNotCalled(t, "Employees", mock.Anything)
}

func TestReferenceUseCase_UnauthorizedCorta(t *testing.T) {
	repo := new(mocks.MockReferenceRepository)
	repo.On("Areas", mock.Anything).Return(nil, fmt.Errorf("x: %w", domain.ErrUnauthorized))

	_, err := usecase.NewReferenceUseCase(repo).Load(context.Background(), dto.RefAreas)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestCustomerUseCase_DetailSeccionesAisladas(t *testing.T) {
	customers := new(mocks.MockCustomerRepository)
	invoices := new(mocks.MockInvoiceRepository)
	payments := new(mocks.MockPaymentRepository)
	complaints := new(mocks.MockComplaintRepository)
	tasks := new(mocks.MockTaskRepository)

	customers.On("GetByID", mock.Anything, "cu1").Return(&entity.Customer{ID: "cu1", FirstName: "Ali"}, nil)
	invoices.On("ListByCustomer", mock.Anything, "cu1").Return([]entity.Invoice{{ID: "i1"}, {ID: "i2"}}, nil)
	payments.On("ListByCustomer", mock.Anything, "cu1").Return(nil, errors.New("payments down"))
	complaints.On("ListByCustomer", mock.Anything, "cu1").Return([]entity.Complaint{}, nil)
	tasks.On("ListByCustomer", mock.Anything, "cu1").Return([]entity.Task{{ID: "t1"}}, nil)

	uc := usecase.NewCustomerUseCase(customers, invoices, payments, complaints, tasks)
	d, err := uc.Detail(context.Background(), "cu1")
	require.NoError(t, err)
	assert.Equal(t, "Ali", d.Customer.FirstName)
	assert.Len(t, d.Invoices, 2)
	assert.Len(t, d.Tasks, 1)
	assert.Nil(t, d.Payments)
	assert.Equal(t, map[string]string{"payments": "payments down"}, d.Errors)
}

func TestCustomerUseCase_DetailClienteInexistente(t *testing.T) {
	customers := new(mocks.MockCustomerRepository)
	customers.On("GetByID", mock.Anything, "x").Return(nil, fmt.Errorf("get: %w", domain.ErrNotFound))

	uc := usecase.NewCustomerUseCase(customers, nil, nil, nil, nil)
	_, err := uc.Detail(context.Background(), "x")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestComplaintUseCase_Process(t *testing.T) {
	repo := new(mocks.MockComplaintRepository)
	repo.On("UpdateStatus", mock.Anything, "c1", repository.ComplaintStatusUpdate{Status: entity.ComplaintInProgress}).Return(nil)

	require.NoError(t, usecase.NewComplaintUseCase(repo).Process(context.Background(), "c1"))
	repo.AssertExpectations(t)
}

func TestComplaintUseCase_ResolveSinNotasNoLlamaAlBackend(t *testing.T) {
	repo := new(mocks.MockComplaintRepository)
	uc := usecase.NewComplaintUseCase(repo)

	err := uc.Resolve(context.Background(), "c1", "   \n", nil)
	require.Error(t, err)
	assert.Equal(t, usecase.MsgResolutionNotesRequired, err.Error())
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestComplaintUseCase_Resolve(t *testing.T) {
	repo := new(mocks.MockComplaintRepository)
	repo.On("UpdateStatus", mock.Anything, "c1", repository.ComplaintStatusUpdate{
		Status: entity.ComplaintResolved, ResolutionProof: "fiber spliced",
	}).Return(nil)

	require.NoError(t, usecase.NewComplaintUseCase(repo).Resolve(context.Background(), "c1", "fiber spliced", nil))
	repo.AssertExpectations(t)
}

func TestTaskUseCase_Complete(t *testing.T) {
	repo := new(mocks.MockTaskRepository)
	uc := usecase.NewTaskUseCase(repo)

	require.Error(t, uc.Complete(context.Background(), "t1", "", "photo.jpg"))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)

	repo.On("UpdateStatus", mock.Anything, "t1", mock.MatchedBy(func(in repository.TaskStatusUpdate) bool {
		return in.Status == entity.TaskCompleted &&
			in.CompletionNotes != nil && *in.CompletionNotes == "installed" &&
			in.CompletionProof == nil
	})).Return(nil)
	require.NoError(t, uc.Complete(context.Background(), "t1", " installed ", ""))
	repo.AssertExpectations(t)
}

func TestRecoveryTaskUseCase_Complete(t *testing.T) {
	repo := new(mocks.MockRecoveryTaskRepository)
	repo.On("UpdateStatus", mock.Anything, "r1", mock.MatchedBy(func(in repository.TaskStatusUpdate) bool {
		return in.CompletionProof != nil && *in.CompletionProof == "receipt #42"
	})).Return(nil)

	require.NoError(t, usecase.NewRecoveryTaskUseCase(repo).Complete(context.Background(), "r1", "collected", "receipt #42"))
	repo.AssertExpectations(t)
}

func TestEmployeeUseCase_SaveEdicionSinPassword(t *testing.T) {
	repo := new(mocks.MockCRUDRepository[entity.Employee])
	uc := usecase.NewEmployeeUseCase(repo)
	form := &dto.EmployeeForm{
		FirstName: "Sara", LastName: "Khan", ContactNumber: "0301", CNIC: "35201",
		Username: "sara", Role: "employee", Salary: "40000",
	}

	require.Error(t, uc.Save(context.Background(), "", form))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	repo.On("Update", mock.Anything, "e1", form).Return(nil)
	require.NoError(t, uc.Save(context.Background(), "e1", form))
	assert.True(t, form.Editing)
}
