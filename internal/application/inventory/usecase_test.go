package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/isp-backoffice/internal/application/dto"
	"github.com/jhoicas/isp-backoffice/internal/application/inventory"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/mocks"
)

func item(id, typ string, qty int, price int64, active bool) entity.InventoryItem {
	return entity.InventoryItem{ID: id, ItemType: typ, Quantity: qty, UnitPrice: decimal.NewFromInt(price), IsActive: active}
}

func TestSummarize_AgrupaPorTipo(t *testing.T) {
	items := []entity.InventoryItem{
		item("1", "Router", 10, 3000, true),
		item("2", "Router", 2, 3000, true),
		item("3", "Fiber Cable", 500, 40, true),
		item("4", "Dish", 100, 1, false),
	}

	s := inventory.Summarize(items, 5)

	assert.Len(t, s.Items, 4)
	assert.Equal(t, 512, s.Units)
	assert.True(t, decimal.NewFromInt(56000).Equal(s.Value))
	require.Len(t, s.ByType, 2)
	assert.Equal(t, "Router", s.ByType[0].ItemType)
	assert.Equal(t, 2, s.ByType[0].Items)
	require.Len(t, s.LowStock, 1)
	assert.Equal(t, "2", s.LowStock[0].ID)
}

func TestInventoryUseCase_SaveValidaAntesDelBackend(t *testing.T) {
	repo := new(mocks.MockCRUDRepository[entity.InventoryItem])
	uc := inventory.NewInventoryUseCase(repo, 0)

	err := uc.Save(context.Background(), "", &dto.InventoryForm{ItemType: "Router"})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	form := &dto.InventoryForm{ItemType: "Router", Model: "TP-Link", Quantity: "3", UnitPrice: "4500"}
	repo.On("Update", mock.Anything, "9", form).Return(nil)
	require.NoError(t, uc.Save(context.Background(), "9", form))
	repo.AssertExpectations(t)
}

func TestInventoryUseCase_Get(t *testing.T) {
	repo := new(mocks.MockCRUDRepository[entity.InventoryItem])
	repo.On("List", mock.Anything).Return([]entity.InventoryItem{item("1", "Router", 1, 1, true)}, nil)

	it, err := inventory.NewInventoryUseCase(repo, 0).Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Router", it.ItemType)

	_, err = inventory.NewInventoryUseCase(repo, 0).Get(context.Background(), "nope")
	assert.Error(t, err)
}
