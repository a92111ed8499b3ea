package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

func TestReplenishment_PrioridadYCantidades(t *testing.T) {
	f := newFixture(t, false)
	s := f.store
	s.PutProduct(entity.Product{
		ID: "p2", TenantID: tenant, Name: "Aceite", SKU: "ACE-1", CostPrice: d("8"), MinStockLevel: d("4"),
		Suppliers: []entity.ProductSupplier{
			{SupplierID: "s1", SupplierName: "Distribuidora Sur", IsPrimary: true, MinimumOrderQuantity: d("12")},
		},
	})
	s.PutProduct(entity.Product{ID: "p3", TenantID: tenant, Name: "Azúcar", SKU: "AZU-1", CostPrice: d("2"), MinStockLevel: d("10")})
	s.PutProduct(entity.Product{ID: "p4", TenantID: tenant, Name: "Sal", SKU: "SAL-1", CostPrice: d("1.5"), MinStockLevel: d("4")})

	s.PutStock(entity.StockLevel{TenantID: tenant, ProductID: "p2", BranchID: "b1", CurrentStock: d("0"), MinStockLevel: d("4")})
	s.PutStock(entity.StockLevel{TenantID: tenant, ProductID: "p3", BranchID: "b1", CurrentStock: d("3"), MinStockLevel: d("10")})
	s.PutStock(entity.StockLevel{TenantID: tenant, ProductID: "p4", BranchID: "b1", CurrentStock: d("2"), MinStockLevel: d("4")})
	// Otra sucursal: no debe aparecer al filtrar por b1
	s.PutStock(entity.StockLevel{TenantID: tenant, ProductID: "p4", BranchID: "b2", CurrentStock: d("0"), MinStockLevel: d("4")})

	require.NoError(t, s.SaleRepo().Create(context.Background(), &entity.Sale{
		ID: "sale-1", TenantID: tenant, BranchID: "b1", Timestamp: time.Now().Add(-24 * time.Hour),
		Items: []entity.SaleItem{{ProductID: "p3", ProductName: "Azúcar", Quantity: d("5"), UnitPrice: d("3"), LineTotal: d("15")}},
	}))

	uc := inventory.NewReplenishmentUseCase(s.StockRepo(), s.ProductRepo(), s.AnalyticsRepo())
	list, err := uc.GenerateReplenishmentList(context.Background(), tenant, "b1")
	require.NoError(t, err)
	require.Len(t, list, 3, "p1 está sobre el mínimo y no se sugiere")

	// Agotado primero
	assert.Equal(t, "p2", list[0].ProductID)
	assert.Equal(t, 1, list[0].Priority)
	assert.True(t, list[0].IdealStock.Equal(d("6")))
	assert.True(t, list[0].SuggestedOrderQty.Equal(d("12")), "se eleva al mínimo de compra del proveedor")
	assert.True(t, list[0].EstimatedOrderCost.Equal(d("96")))
	assert.Equal(t, "s1", list[0].SupplierID)

	// Luego el de más ventas recientes
	assert.Equal(t, "p3", list[1].ProductID)
	assert.True(t, list[1].UnitsSoldLast90Days.Equal(d("5")))
	assert.True(t, list[1].SuggestedOrderQty.Equal(d("12")), "ceil(10 × 1.5) − 3")

	assert.Equal(t, "p4", list[2].ProductID)
	assert.Equal(t, "b1", list[2].BranchID)
	assert.True(t, list[2].SuggestedOrderQty.Equal(d("4")))
	assert.Equal(t, 3, list[2].Priority)
}

func TestReplenishment_SinFaltantesListaVacia(t *testing.T) {
	f := newFixture(t, false)
	uc := inventory.NewReplenishmentUseCase(f.store.StockRepo(), f.store.ProductRepo(), f.store.AnalyticsRepo())

	list, err := uc.GenerateReplenishmentList(context.Background(), tenant, "b1")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
