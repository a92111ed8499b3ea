package sales_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chukwumela909/Web-App-sub001/internal/application/apptest"
	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/application/sales"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	domainsales "github.com/chukwumela909/Web-App-sub001/internal/domain/sales"
)

const tenant = "tenant-1"

var actor = ports.Actor{TenantID: tenant, UserID: "u1", StaffID: "st1", Role: entity.RoleCashier}

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }
func dp(v string) *decimal.Decimal {
	x := d(v)
	return &x
}

type fakeReceipts struct {
	got ports.ReceiptData
	err error
}

func (f *fakeReceipts) GenerateReceipt(data ports.ReceiptData) ([]byte, error) {
	f.got = data
	return []byte("%PDF-fake"), f.err
}

type fixture struct {
	store    *apptest.Store
	cache    *apptest.Cache
	receipts *fakeReceipts
	uc       *sales.SaleUseCase
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()
	s := apptest.NewStore()
	s.Users["tenant-1"] = entity.User{ID: tenant, BusinessName: "Tienda Ana"}
	s.PutBranch(entity.Branch{ID: "b1", TenantID: tenant, Name: "Centro", IsActive: true})
	s.PutProduct(entity.Product{ID: "p1", TenantID: tenant, Name: "Camisa", CostPrice: d("60"), SellingPrice: d("100"), Quantity: d("5"), MinStockLevel: d("1")})
	s.PutProduct(entity.Product{ID: "p2", TenantID: tenant, Name: "Gorra", CostPrice: d("20"), SellingPrice: d("50"), Quantity: d("1"), MinStockLevel: d("1")})
	s.PutStock(entity.StockLevel{TenantID: tenant, ProductID: "p1", BranchID: "b1", CurrentStock: d("5"), MinStockLevel: d("1"), UpdatedAt: time.Now()})
	s.PutStock(entity.StockLevel{TenantID: tenant, ProductID: "p2", BranchID: "b1", CurrentStock: d("1"), MinStockLevel: d("1"), UpdatedAt: time.Now()})

	cache := apptest.NewCache()
	stock := inventory.NewStockUseCase(inventory.Deps{
		TxRunner:    s.TxRunner(),
		Products:    s.ProductRepo(),
		Branches:    s.BranchRepo(),
		Suppliers:   s.SupplierRepo(),
		Stock:       s.StockRepo(),
		Movements:   s.MovementRepo(),
		Transfers:   s.TransferRepo(),
		Cache:       cache,
		StrictSales: strict,
	})
	receipts := &fakeReceipts{}
	uc := sales.NewSaleUseCase(sales.Deps{
		TxRunner: s.TxRunner(),
		Stock:    stock,
		Products: s.ProductRepo(),
		Branches: s.BranchRepo(),
		Sales:    s.SaleRepo(),
		Legacy:   s.LegacySaleRepo(),
		Users:    s.UserRepo(),
		Receipts: receipts,
		Activity: &apptest.Recorder{},
	})
	return &fixture{store: s, cache: cache, receipts: receipts, uc: uc}
}

func twoItemSale() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		BranchID: "b1",
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: d("2")},
			{ProductID: "p2", Quantity: d("1")},
		},
		TaxRate:       d("10"),
		DiscountType:  entity.DiscountFixed,
		DiscountValue: d("5"),
		PaymentMethod: entity.PaymentCash,
	}
}

func TestCreateSale_TotalesYDescuentoDeStock(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	key := ports.DashboardKey(ports.DashboardBranches, tenant)
	require.NoError(t, f.cache.Set(ctx, key, 1))

	resp, err := f.uc.CreateSale(ctx, actor, twoItemSale())
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(d("250")))
	assert.True(t, resp.Tax.Equal(d("25")))
	assert.True(t, resp.Discount.Equal(d("5")))
	assert.True(t, resp.Total.Equal(d("270")))
	assert.True(t, resp.TotalProfit.Equal(d("110")))
	assert.Equal(t, "Camisa", resp.Items[0].ProductName)
	assert.Equal(t, "st1", resp.StaffID)
	assert.True(t, strings.HasPrefix(resp.SaleNumber, "SALE-"))
	assert.Empty(t, resp.Warnings)

	l1, _ := f.store.StockOf(tenant, "p1", "b1")
	l2, _ := f.store.StockOf(tenant, "p2", "b1")
	assert.True(t, l1.CurrentStock.Equal(d("3")))
	assert.True(t, l2.CurrentStock.IsZero())

	movs := f.store.MovementsOf(entity.MovementSale)
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, resp.ID, m.ReferenceID)
	}
	assert.False(t, f.cache.Has(key))

	stored, err := f.uc.GetSale(ctx, tenant, resp.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(resp.Total))
}

func TestCreateSale_FaltanteGeneraAviso(t *testing.T) {
	f := newFixture(t, false)
	req := twoItemSale()
	req.Items[1].Quantity = d("3")

	resp, err := f.uc.CreateSale(context.Background(), actor, req)
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "Gorra")
}

func TestCreateSale_ModoEstrictoRevierteTodaLaVenta(t *testing.T) {
	f := newFixture(t, true)
	req := twoItemSale()
	req.Items[1].Quantity = d("3")

	_, err := f.uc.CreateSale(context.Background(), actor, req)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	l1, _ := f.store.StockOf(tenant, "p1", "b1")
	assert.True(t, l1.CurrentStock.Equal(d("5")), "el primer ítem también se revierte")
	assert.Empty(t, f.store.Sales)
	assert.Empty(t, f.store.MovementsOf(""))
}

func TestCreateSale_Validaciones(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	cases := map[string]func(r *dto.CreateSaleRequest){
		"sin items":              func(r *dto.CreateSaleRequest) { r.Items = nil },
		"cantidad cero":          func(r *dto.CreateSaleRequest) { r.Items[0].Quantity = d("0") },
		"precio negativo":        func(r *dto.CreateSaleRequest) { r.Items[0].UnitPrice = dp("-1") },
		"impuesto > 100":         func(r *dto.CreateSaleRequest) { r.TaxRate = d("101") },
		"porcentaje > 100":       func(r *dto.CreateSaleRequest) { r.DiscountType = entity.DiscountPercentage; r.DiscountValue = d("150") },
		"descuento sin tipo":     func(r *dto.CreateSaleRequest) { r.DiscountType = "" },
		"descuento mayor total":  func(r *dto.CreateSaleRequest) { r.DiscountValue = d("1000") },
		"tipo de descuento raro": func(r *dto.CreateSaleRequest) { r.DiscountType = "BOGO" },
		"descuento 3 decimales":  func(r *dto.CreateSaleRequest) { r.DiscountType = entity.DiscountPercentage; r.DiscountValue = d("12.345") },
		"impuesto 4 decimales":   func(r *dto.CreateSaleRequest) { r.TaxRate = d("8.1255") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := twoItemSale()
			mutate(&req)
			_, err := f.uc.CreateSale(ctx, actor, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	req := twoItemSale()
	req.Items[0].ProductID = "no-existe"
	_, err := f.uc.CreateSale(ctx, actor, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Con la escala de las columnas (tasa 3 decimales, descuento 2) la venta guardada se recalcula igual.
func TestCreateSale_RecalculoDesdeLoGuardado(t *testing.T) {
	f := newFixture(t, false)
	req := twoItemSale()
	req.TaxRate = d("8.125")
	req.DiscountType = entity.DiscountPercentage
	req.DiscountValue = d("12.35")

	resp, err := f.uc.CreateSale(context.Background(), actor, req)
	require.NoError(t, err)

	stored, err := f.store.SaleRepo().GetByID(context.Background(), tenant, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	stored.TaxRate = stored.TaxRate.Round(3)
	stored.DiscountValue = stored.DiscountValue.Round(2)

	again := domainsales.Recompute(*stored)
	assert.True(t, again.Total.Equal(resp.Total), "recalculado %s, original %s", again.Total, resp.Total)
	assert.True(t, again.Discount.Equal(resp.Discount))
	assert.True(t, again.Tax.Equal(resp.Tax))
}

func TestCreateSale_PrecioYCostoExplicitos(t *testing.T) {
	f := newFixture(t, false)
	req := dto.CreateSaleRequest{
		BranchID:      "b1",
		Items:         []dto.SaleItemRequest{{ProductID: "p1", ProductName: "Camisa promo", Quantity: d("1"), UnitPrice: dp("80"), CostPrice: dp("-5")}},
		DiscountType:  "percentage",
		DiscountValue: d("10"),
		PaymentMethod: entity.PaymentCard,
	}
	resp, err := f.uc.CreateSale(context.Background(), actor, req)
	require.NoError(t, err)
	assert.Equal(t, "Camisa promo", resp.Items[0].ProductName)
	assert.True(t, resp.Items[0].Profit.Equal(d("80")), "costo negativo cuenta como cero")
	assert.True(t, resp.Total.Equal(d("72")))
	assert.Equal(t, entity.DiscountPercentage, resp.DiscountType)
}

func TestDeleteSale_EsLogicoYNoReponeStock(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	resp, err := f.uc.CreateSale(ctx, actor, twoItemSale())
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteSale(ctx, actor, resp.ID))
	assert.ErrorIs(t, f.uc.DeleteSale(ctx, actor, resp.ID), domain.ErrNotFound)

	got, err := f.uc.GetSale(ctx, tenant, resp.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.NotNil(t, got.DeletedAt)

	l1, _ := f.store.StockOf(tenant, "p1", "b1")
	assert.True(t, l1.CurrentStock.Equal(d("3")))

	list, err := f.uc.ListSales(ctx, tenant, dto.SaleFilterRequest{}, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
	list, err = f.uc.ListSales(ctx, tenant, dto.SaleFilterRequest{IncludeDeleted: true}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListSales_RangoDeFechas(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	_, err := f.uc.CreateSale(ctx, actor, twoItemSale())
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")
	list, err := f.uc.ListSales(ctx, tenant, dto.SaleFilterRequest{From: today, To: today}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = f.uc.ListSales(ctx, tenant, dto.SaleFilterRequest{To: "2000-01-01"}, nil)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.uc.ListSales(ctx, tenant, dto.SaleFilterRequest{From: "ayer"}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceipt(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	resp, err := f.uc.CreateSale(ctx, actor, twoItemSale())
	require.NoError(t, err)

	pdf, name, err := f.uc.Receipt(ctx, tenant, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, resp.SaleNumber+".pdf", name)
	assert.Equal(t, "Tienda Ana", f.receipts.got.BusinessName)
	require.NotNil(t, f.receipts.got.Branch)
	assert.Equal(t, "Centro", f.receipts.got.Branch.Name)

	_, _, err = f.uc.Receipt(ctx, tenant, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	f.receipts.err = errors.New("maroto")
	_, _, err = f.uc.Receipt(ctx, tenant, resp.ID)
	assert.Error(t, err)
}

func TestMigrateLegacySales_Idempotente(t *testing.T) {
	f := newFixture(t, false)
	ts := time.Date(2023, 11, 2, 10, 0, 0, 0, time.UTC)
	f.store.LegacySales = []entity.LegacySale{
		{ID: "aaaaaaaa-1111", TenantID: tenant, ProductID: "p1", ProductName: "Camisa", Quantity: d("2"), SellingPrice: d("100"), CostPrice: d("60"), PaymentMethod: "cash", Timestamp: ts},
		{ID: "bbbbbbbb-2222", TenantID: tenant, ProductID: "p2", ProductName: "Gorra", Quantity: d("1"), SellingPrice: d("50"), CostPrice: d("20"), PaymentMethod: "card", Timestamp: ts, IsDeleted: true},
		{ID: "cccccccc-3333", TenantID: "otro", ProductID: "x", Quantity: d("1"), SellingPrice: d("1"), Timestamp: ts},
	}
	ctx := context.Background()

	res, err := f.uc.MigrateLegacySales(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Migrated)
	assert.Equal(t, 0, res.Skipped)

	res, err = f.uc.MigrateLegacySales(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Migrated)
	assert.Equal(t, 2, res.Skipped)

	got, err := f.uc.GetSale(ctx, tenant, "bbbbbbbb-2222")
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, "2023-11-02", got.Date)
	assert.True(t, got.Total.Equal(d("50")))

	l1, _ := f.store.StockOf(tenant, "p1", "b1")
	assert.True(t, l1.CurrentStock.Equal(d("5")), "migrar no toca el stock")
}
