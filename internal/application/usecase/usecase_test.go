package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chukwumela909/Web-App-sub001/internal/application/apptest"
	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/application/usecase"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

const tenant = "tenant-1"

var owner = ports.Actor{TenantID: tenant, UserID: tenant, Role: entity.RoleOwner}

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }
func ptr[T any](v T) *T         { return &v }

func newStore() *apptest.Store {
	s := apptest.NewStore()
	s.PutBranch(entity.Branch{ID: "b1", TenantID: tenant, Name: "Centro", IsActive: true})
	s.PutBranch(entity.Branch{ID: "b2", TenantID: tenant, Name: "Norte", IsActive: true})
	return s
}

func newProductUseCase(s *apptest.Store, rec *apptest.Recorder) *usecase.ProductUseCase {
	stock := inventory.NewStockUseCase(inventory.Deps{
		TxRunner:  s.TxRunner(),
		Products:  s.ProductRepo(),
		Branches:  s.BranchRepo(),
		Suppliers: s.SupplierRepo(),
		Stock:     s.StockRepo(),
		Movements: s.MovementRepo(),
		Transfers: s.TransferRepo(),
	})
	var activity ports.ActivityRecorder
	if rec != nil {
		activity = rec
	}
	return usecase.NewProductUseCase(s.ProductRepo(), s.StockRepo(), s.BranchRepo(), stock, activity)
}

func TestProduct_CreateConStockInicial(t *testing.T) {
	s := newStore()
	rec := &apptest.Recorder{}
	uc := newProductUseCase(s, rec)
	ctx := context.Background()

	resp, err := uc.Create(ctx, owner, dto.CreateProductRequest{
		Name:          "Café molido",
		SKU:           "CAF-1",
		Category:      "  bebidas   calientes ",
		CostPrice:     d("40"),
		SellingPrice:  d("65"),
		MinStockLevel: d("5"),
		Quantity:      d("12"),
		BranchID:      "b1",
		Suppliers: []dto.ProductSupplierDTO{
			{SupplierID: "sup1", SupplierName: "Tostadora"},
			{SupplierID: "sup2", SupplierName: "Granos"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bebidas Calientes", resp.Category)
	assert.Equal(t, "pieza", resp.Unit)
	assert.True(t, resp.Quantity.Equal(d("12")))
	assert.True(t, resp.Suppliers[0].IsPrimary, "el primero pasa a principal")
	assert.False(t, resp.Suppliers[1].IsPrimary)

	l, ok := s.StockOf(tenant, resp.ID, "b1")
	require.True(t, ok)
	assert.True(t, l.CurrentStock.Equal(d("12")))
	movs := s.MovementsOf(entity.MovementAdjustment)
	require.Len(t, movs, 1)
	assert.Equal(t, "INITIAL", movs[0].Reason)
	assert.True(t, s.Product(resp.ID).Quantity.Equal(d("12")))

	got, err := uc.GetByID(ctx, tenant, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Inventory)
	assert.True(t, got.Inventory.TotalStock.Equal(d("12")))
	require.Len(t, got.Inventory.Branches, 1)
	assert.Equal(t, "Centro", got.Inventory.Branches[0].BranchName)
	assert.False(t, got.IsLowStock)
	assert.Contains(t, rec.Actions(), "product.create")
}

func TestProduct_CreateErrores(t *testing.T) {
	s := newStore()
	uc := newProductUseCase(s, nil)
	ctx := context.Background()
	_, err := uc.Create(ctx, owner, dto.CreateProductRequest{Name: "A", SKU: "X1"})
	require.NoError(t, err)

	_, err = uc.Create(ctx, owner, dto.CreateProductRequest{Name: "B", SKU: "X1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, owner, dto.CreateProductRequest{Name: "C", Quantity: d("3")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "stock inicial sin sucursal")

	_, err = uc.Create(ctx, owner, dto.CreateProductRequest{Name: "D", SellingPrice: d("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, owner, dto.CreateProductRequest{Name: "E", Suppliers: []dto.ProductSupplierDTO{
		{SupplierID: "s1", IsPrimary: true}, {SupplierID: "s2", IsPrimary: true},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_UpdateConservaEstadisticasDeProveedor(t *testing.T) {
	s := newStore()
	uc := newProductUseCase(s, nil)
	ctx := context.Background()
	s.PutProduct(entity.Product{
		ID: "p1", TenantID: tenant, Name: "Té", SKU: "TE", Quantity: d("2"), MinStockLevel: d("5"),
		Suppliers: []entity.ProductSupplier{{SupplierID: "sup1", IsPrimary: true, LastPurchasePrice: d("7"), PurchaseCount: 3}},
	})
	s.PutProduct(entity.Product{ID: "p2", TenantID: tenant, Name: "Mate", SKU: "MA"})

	resp, err := uc.Update(ctx, owner, "p1", dto.UpdateProductRequest{
		SellingPrice: ptr(d("12")),
		Suppliers:    []dto.ProductSupplierDTO{{SupplierID: "sup1", LeadTimeDays: 4}},
	})
	require.NoError(t, err)
	assert.True(t, resp.SellingPrice.Equal(d("12")))
	assert.True(t, resp.IsLowStock, "sin filas de stock se clasifica por la cantidad en mano")
	stored := s.Product("p1")
	assert.Equal(t, 3, stored.Suppliers[0].PurchaseCount)
	assert.True(t, stored.Suppliers[0].LastPurchasePrice.Equal(d("7")))
	assert.Equal(t, 4, stored.Suppliers[0].LeadTimeDays)

	_, err = uc.Update(ctx, owner, "p1", dto.UpdateProductRequest{SKU: ptr("MA")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	require.NoError(t, uc.Delete(ctx, owner, "p2"))
	_, err = uc.Update(ctx, owner, "p2", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx, tenant, dto.ProductFilterRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, 20, list.Page.Limit)
}

func TestBranch_CRUDYUltimaActiva(t *testing.T) {
	s := apptest.NewStore()
	cache := apptest.NewCache()
	uc := usecase.NewBranchUseCase(s.BranchRepo(), cache, nil)
	ctx := context.Background()
	key := ports.DashboardKey(ports.DashboardBranches, tenant)

	a, err := uc.Create(ctx, owner, dto.CreateBranchRequest{Name: " Centro "})
	require.NoError(t, err)
	assert.Equal(t, "Centro", a.Name)
	b, err := uc.Create(ctx, owner, dto.CreateBranchRequest{Name: "Norte", City: "Monterrey"})
	require.NoError(t, err)

	require.NoError(t, cache.Set(ctx, key, 1))
	upd, err := uc.Update(ctx, owner, b.ID, dto.UpdateBranchRequest{Phone: ptr("555")})
	require.NoError(t, err)
	assert.Equal(t, "555", upd.Phone)
	assert.False(t, cache.Has(key))

	require.NoError(t, uc.Delete(ctx, owner, a.ID))
	err = uc.Delete(ctx, owner, b.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	active, err := uc.List(ctx, tenant, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)
	all, err := uc.List(ctx, tenant, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.GetByID(ctx, "otro", a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplier_CategoriasYDesempeño(t *testing.T) {
	s := apptest.NewStore()
	uc := usecase.NewSupplierUseCase(s.SupplierRepo(), s.SupplierOrderRepo(), nil)
	ctx := context.Background()

	created, err := uc.Create(ctx, owner, dto.CreateSupplierRequest{
		Name:       "Granos del Sur",
		Categories: []string{"café", "Café", " té verde "},
		Rating:     ptr(d("4.5")),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Café", "Té Verde"}, created.Categories)
	assert.Nil(t, created.Performance)

	_, err = uc.Create(ctx, owner, dto.CreateSupplierRequest{Name: "X", Rating: ptr(d("6"))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	late := time.Now().Add(-48 * time.Hour)
	require.NoError(t, s.SupplierOrderRepo().Create(ctx, &entity.SupplierOrder{
		ID: "o1", TenantID: tenant, SupplierID: created.ID, Quantity: d("10"), UnitCost: d("5"),
		ReceivedAt: time.Now(), ExpectedDate: &late, Rating: ptr(d("3")),
	}))
	require.NoError(t, s.SupplierOrderRepo().Create(ctx, &entity.SupplierOrder{
		ID: "o2", TenantID: tenant, SupplierID: created.ID, Quantity: d("2"), UnitCost: d("5"),
		ReceivedAt: time.Now(), Rating: ptr(d("5")),
	}))

	got, err := uc.GetByID(ctx, tenant, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Performance)
	assert.Equal(t, 2, got.Performance.TotalOrders)
	assert.Equal(t, 1, got.Performance.OnTimeOrders)
	assert.True(t, got.Performance.TotalSpent.Equal(d("60")))
	assert.True(t, got.Performance.AverageRating.Equal(d("4")))

	upd, err := uc.Update(ctx, owner, created.ID, dto.UpdateSupplierRequest{IsActive: ptr(false), Categories: []string{}})
	require.NoError(t, err)
	assert.False(t, upd.IsActive)
	assert.Empty(t, upd.Categories)

	list, err := uc.List(ctx, tenant, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.NotNil(t, list.Items[0].Performance)
}

func TestExpenseYDebtor(t *testing.T) {
	s := newStore()
	exp := usecase.NewExpenseUseCase(s.ExpenseRepo(), s.BranchRepo(), nil)
	debt := usecase.NewDebtorUseCase(s.DebtorRepo(), nil)
	ctx := context.Background()

	e, err := exp.Create(ctx, owner, dto.CreateExpenseRequest{BranchID: "b1", Category: "renta", Amount: d("1500.456"), Date: "2026-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "Renta", e.Category)
	assert.True(t, e.Amount.Equal(d("1500.46")))

	_, err = exp.Create(ctx, owner, dto.CreateExpenseRequest{Category: "luz", Amount: d("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = exp.Create(ctx, owner, dto.CreateExpenseRequest{BranchID: "zz", Category: "luz", Amount: d("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := exp.List(ctx, tenant, dto.ExpenseFilterRequest{From: "2026-03-01", To: "2026-03-31"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NoError(t, exp.Delete(ctx, owner, e.ID))
	assert.ErrorIs(t, exp.Delete(ctx, owner, e.ID), domain.ErrNotFound)

	dr, err := debt.Create(ctx, owner, dto.CreateDebtorRequest{Name: "Doña Rosa", TotalOwed: d("300")})
	require.NoError(t, err)
	after, err := debt.AddPayment(ctx, owner, dr.ID, dto.DebtorPaymentRequest{Amount: d("120")})
	require.NoError(t, err)
	assert.True(t, after.Balance.Equal(d("180")))
	require.Len(t, after.Payments, 1)
	assert.Equal(t, entity.PaymentCash, after.Payments[0].Method)

	_, err = debt.AddPayment(ctx, owner, dr.ID, dto.DebtorPaymentRequest{Amount: d("181")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no se abona más que el saldo")
	_, err = debt.AddPayment(ctx, owner, "nope", dto.DebtorPaymentRequest{Amount: d("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReport_DailySummaryRellenaDias(t *testing.T) {
	s := newStore()
	uc := usecase.NewReportUseCase(s.SaleRepo(), s.ExpenseRepo(), s.AnalyticsRepo())
	ctx := context.Background()
	s.Sales["s1"] = entity.Sale{ID: "s1", TenantID: tenant, Date: "2026-03-01", Total: d("100"), TotalProfit: d("40")}
	s.Sales["s2"] = entity.Sale{ID: "s2", TenantID: tenant, Date: "2026-03-03", Total: d("50"), TotalProfit: d("20")}
	s.Sales["s3"] = entity.Sale{ID: "s3", TenantID: tenant, Date: "2026-03-03", Total: d("70"), TotalProfit: d("30"), IsDeleted: true}
	s.Expenses["e1"] = entity.Expense{ID: "e1", TenantID: tenant, Date: "2026-03-03", Amount: d("35")}

	days, err := uc.DailySummary(ctx, tenant, dto.DailySummaryRequest{From: "2026-03-01", To: "2026-03-03"})
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, 1, days[0].SalesCount)
	assert.True(t, days[0].NetProfit.Equal(d("40")))
	assert.Equal(t, 0, days[1].SalesCount)
	assert.True(t, days[1].NetProfit.IsZero())
	assert.Equal(t, 1, days[2].SalesCount, "la venta borrada no cuenta")
	assert.True(t, days[2].NetProfit.Equal(d("-15")))

	_, err = uc.DailySummary(ctx, tenant, dto.DailySummaryRequest{From: "2026-03-05", To: "2026-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.DailySummary(ctx, tenant, dto.DailySummaryRequest{From: "2024-01-01", To: "2026-03-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReport_ProductRankingPareto(t *testing.T) {
	s := newStore()
	uc := usecase.NewReportUseCase(s.SaleRepo(), s.ExpenseRepo(), s.AnalyticsRepo())
	ts := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	item := func(id string, rev, profit string) entity.SaleItem {
		return entity.SaleItem{ProductID: id, ProductName: id, Quantity: d("1"), LineTotal: d(rev), Profit: d(profit)}
	}
	s.Sales["s1"] = entity.Sale{
		ID: "s1", TenantID: tenant, Timestamp: ts, Total: d("100"), TotalProfit: d("40"),
		Items: []entity.SaleItem{item("a", "70", "30"), item("b", "20", "5"), item("c", "10", "5")},
	}

	rep, err := uc.ProductReport(context.Background(), tenant, dto.ProductReportRequest{StartDate: "2026-03-01", EndDate: "2026-03-10"})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.SalesCount)
	assert.True(t, rep.OverallMarginPct.Equal(d("40")))
	require.Len(t, rep.Ranking, 3)
	assert.Equal(t, "a", rep.Ranking[0].ProductID)
	assert.True(t, rep.Ranking[0].MarginPct.Equal(d("42.86")))
	assert.True(t, rep.Ranking[1].CumulativeRevPct.Equal(d("90")))
	require.Len(t, rep.ParetoProducts, 2, "a (70%) y b, que cruza el 80%")
	assert.False(t, rep.Ranking[2].IsTopPareto)
}
