// Package inventory casos de uso del inventario de equipos (routers, cable, ONTs...).
package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/isp-backoffice/internal/application/usecase"
	"github.com/jhoicas/isp-backoffice/internal/domain/entity"
	"github.com/jhoicas/isp-backoffice/internal/domain/repository"
)

// DefaultLowStock por debajo de esta cantidad un ítem se marca para reponer.
const DefaultLowStock = 5

// TypeSummary existencias agrupadas por tipo de ítem.
type TypeSummary struct {
	ItemType string
	Items    int
	Units    int
	Value    decimal.Decimal
}

// Summary totales de la bodega para la cabecera del listado.
type Summary struct {
	Items    []entity.InventoryItem
	ByType   []TypeSummary
	Units    int
	Value    decimal.Decimal
	LowStock []entity.InventoryItem
}

// InventoryUseCase CRUD de /inventory más el resumen de existencias.
type InventoryUseCase struct {
	*usecase.CRUDUseCase[entity.InventoryItem]
	lowStock int
}

// NewInventoryUseCase construye el caso de uso. lowStock <= 0 usa DefaultLowStock.
func NewInventoryUseCase(repo repository.CRUDRepository[entity.InventoryItem], lowStock int) *InventoryUseCase {
	if lowStock <= 0 {
		lowStock = DefaultLowStock
	}
	return &InventoryUseCase{CRUDUseCase: usecase.NewCRUDUseCase(repo), lowStock: lowStock}
}

// Get busca un ítem para precargar el formulario de edición.
func (uc *InventoryUseCase) Get(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return uc.Find(ctx, id, func(it entity.InventoryItem) string { return it.ID })
}

// Summarize lista el inventario y calcula totales por tipo, ordenados por valor descendente.
// Los ítems inactivos se listan pero no suman.
func (uc *InventoryUseCase) Summarize(ctx context.Context) (*Summary, error) {
	items, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(items, uc.lowStock), nil
}

// Summary agrega una lista ya cargada con el umbral configurado.
func (uc *InventoryUseCase) Summary(items []entity.InventoryItem) *Summary {
	return Summarize(items, uc.lowStock)
}

// Summarize agrega una lista ya cargada.
func Summarize(items []entity.InventoryItem, lowStock int) *Summary {
	s := &Summary{Items: items, Value: decimal.Zero}
	byType := map[string]*TypeSummary{}
	for _, it := range items {
		if !it.IsActive {
			continue
		}
		value := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		ts, ok := byType[it.ItemType]
		if !ok {
			ts = &TypeSummary{ItemType: it.ItemType, Value: decimal.Zero}
			byType[it.ItemType] = ts
		}
		ts.Items++
		ts.Units += it.Quantity
		ts.Value = ts.Value.Add(value)
		s.Units += it.Quantity
		s.Value = s.Value.Add(value)
		if it.Quantity < lowStock {
			s.LowStock = append(s.LowStock, it)
		}
	}
	for _, ts := range byType {
		s.ByType = append(s.ByType, *ts)
	}
	sort.Slice(s.ByType, func(i, j int) bool {
		if !s.ByType[i].Value.Equal(s.ByType[j].Value) {
			return s.ByType[i].Value.GreaterThan(s.ByType[j].Value)
		}
		return s.ByType[i].ItemType < s.ByType[j].ItemType
	})
	return s
}
