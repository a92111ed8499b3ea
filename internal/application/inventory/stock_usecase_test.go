package inventory_test

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chukwumela909/Web-App-sub001/internal/application/apptest"
	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
	"github.com/chukwumela909/Web-App-sub001/pkg/logger"
)

const tenant = "tenant-1"

var actor = ports.Actor{TenantID: tenant, UserID: "owner-1", Role: entity.RoleOwner}

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

type fixture struct {
	store    *apptest.Store
	cache    *apptest.Cache
	recorder *apptest.Recorder
	logBuf   *bytes.Buffer
	uc       *inventory.StockUseCase
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()
	s := apptest.NewStore()
	s.PutBranch(entity.Branch{ID: "b1", TenantID: tenant, Name: "Centro", IsActive: true})
	s.PutBranch(entity.Branch{ID: "b2", TenantID: tenant, Name: "Norte", IsActive: true})
	s.PutBranch(entity.Branch{ID: "b3", TenantID: tenant, Name: "Cerrada", IsActive: false})
	s.PutProduct(entity.Product{
		ID: "p1", TenantID: tenant, Name: "Arroz", SKU: "ARR-1",
		CostPrice: d("10"), SellingPrice: d("15"), Quantity: d("10"), MinStockLevel: d("5"),
	})
	s.PutStock(entity.StockLevel{
		TenantID: tenant, ProductID: "p1", BranchID: "b1",
		CurrentStock: d("10"), MinStockLevel: d("5"), UpdatedAt: time.Now(),
	})

	f := &fixture{store: s, cache: apptest.NewCache(), recorder: &apptest.Recorder{}, logBuf: &bytes.Buffer{}}
	f.uc = inventory.NewStockUseCase(inventory.Deps{
		TxRunner:    s.TxRunner(),
		Products:    s.ProductRepo(),
		Branches:    s.BranchRepo(),
		Suppliers:   s.SupplierRepo(),
		Stock:       s.StockRepo(),
		Movements:   s.MovementRepo(),
		Transfers:   s.TransferRepo(),
		Cache:       f.cache,
		Activity:    f.recorder,
		Logger:      logger.NewWriter(f.logBuf, "debug"),
		StrictSales: strict,
	})
	return f
}

func (f *fixture) level(t *testing.T, productID, branchID string) entity.StockLevel {
	t.Helper()
	l, ok := f.store.StockOf(tenant, productID, branchID)
	require.True(t, ok, "no existe fila de stock %s/%s", productID, branchID)
	return l
}

// ── escenario principal ──────────────────────────────────────────────────────

func TestStock_EscenarioVentasYAjuste(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.uc.RecordSale(ctx, actor, "b1", "p1", d("3"), "sale-1")
	require.NoError(t, err)
	stock, err := f.uc.GetStock(ctx, tenant, repository.StockFilter{BranchID: "b1"})
	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.True(t, stock[0].CurrentStock.Equal(d("7")))
	assert.False(t, stock[0].IsLowStock)

	_, err = f.uc.RecordSale(ctx, actor, "b1", "p1", d("5"), "sale-2")
	require.NoError(t, err)
	stock, _ = f.uc.GetStock(ctx, tenant, repository.StockFilter{BranchID: "b1"})
	assert.True(t, stock[0].CurrentStock.Equal(d("2")))
	assert.True(t, stock[0].IsLowStock)
	assert.False(t, stock[0].IsOutOfStock)

	mov, err := f.uc.AdjustStock(ctx, actor, inventory.AdjustStockInput{
		ProductID: "p1", BranchID: "b1", Delta: d("-2"), Reason: "Damaged goods",
	})
	require.NoError(t, err)
	assert.Equal(t, "DAMAGED", mov.Reason)
	assert.True(t, mov.PreviousStock.Equal(d("2")))
	assert.True(t, mov.NewStock.IsZero())

	stock, _ = f.uc.GetStock(ctx, tenant, repository.StockFilter{BranchID: "b1"})
	assert.True(t, stock[0].IsOutOfStock)
	assert.True(t, f.store.Product("p1").Quantity.IsZero())

	sales := f.store.MovementsOf(entity.MovementSale)
	require.Len(t, sales, 2)
	assert.True(t, sales[0].Quantity.Equal(d("-3")))
	assert.Equal(t, "sale-2", sales[1].ReferenceID)
	assert.Len(t, f.store.MovementsOf(entity.MovementAdjustment), 1)
}

// ── ventas ───────────────────────────────────────────────────────────────────

func TestRecordSale_SinStockSuficienteFijaEnCeroYAvisa(t *testing.T) {
	f := newFixture(t, false)

	res, err := f.uc.RecordSale(context.Background(), actor, "b1", "p1", d("12"), "sale-x")
	require.NoError(t, err)
	assert.True(t, res.NewStock.IsZero())
	assert.True(t, res.Shortfall.Equal(d("2")))
	assert.True(t, f.level(t, "p1", "b1").CurrentStock.IsZero())

	movs := f.store.MovementsOf(entity.MovementSale)
	require.Len(t, movs, 1)
	assert.True(t, movs[0].Quantity.Equal(d("-10")), "el movimiento refleja lo realmente descontado")
	assert.Contains(t, movs[0].Notes, "faltante")
	assert.Contains(t, f.logBuf.String(), `"shortfall":"2"`)
}

// Con faltante la cantidad del producto sigue igual a la suma de sus sucursales.
func TestRecordSale_FaltanteMantieneTotalDelProducto(t *testing.T) {
	f := newFixture(t, false)

	res, err := f.uc.RecordSale(context.Background(), actor, "b2", "p1", d("3"), "sale-x")
	require.NoError(t, err)
	assert.True(t, res.Shortfall.Equal(d("3")))

	b1 := f.level(t, "p1", "b1")
	b2 := f.level(t, "p1", "b2")
	assert.True(t, b2.CurrentStock.IsZero())
	sum := b1.CurrentStock.Add(b2.CurrentStock)
	qty := f.store.Product("p1").Quantity
	assert.True(t, qty.Equal(sum), "producto %s, suma de sucursales %s", qty, sum)

	// La fila creada por la venta hereda el mínimo del producto
	assert.True(t, b2.MinStockLevel.Equal(d("5")))

	_, err = f.uc.RecordSale(context.Background(), actor, "b1", "p1", d("12"), "sale-y")
	require.NoError(t, err)
	assert.True(t, f.store.Product("p1").Quantity.IsZero())
}

func TestRecordSale_ModoEstrictoRechazaYNoEscribe(t *testing.T) {
	f := newFixture(t, true)

	_, err := f.uc.RecordSale(context.Background(), actor, "b1", "p1", d("11"), "sale-x")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.level(t, "p1", "b1").CurrentStock.Equal(d("10")))
	assert.Empty(t, f.store.MovementsOf(""))
}

func TestRecordSale_Validaciones(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.uc.RecordSale(ctx, actor, "b1", "p1", d("0"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = f.uc.RecordSale(ctx, actor, "b1", "no-existe", d("1"), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.RecordSale(ctx, actor, "b3", "p1", d("1"), "")
	assert.ErrorIs(t, err, domain.ErrConflict)

	other := ports.Actor{TenantID: "otro-tenant", UserID: "u9"}
	_, err = f.uc.RecordSale(ctx, other, "b1", "p1", d("1"), "")
	assert.ErrorIs(t, err, domain.ErrNotFound, "otro tenant no ve la sucursal")
}

func TestRecordSale_ConcurrenteNoPierdeDescuentos(t *testing.T) {
	f := newFixture(t, false)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.RecordSale(context.Background(), actor, "b1", "p1", d("1"), "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.True(t, f.level(t, "p1", "b1").CurrentStock.IsZero())
	movs := f.store.MovementsOf(entity.MovementSale)
	require.Len(t, movs, 10)
	seen := map[string]bool{}
	for _, m := range movs {
		seen[m.PreviousStock.String()] = true
	}
	assert.Len(t, seen, 10, "cada venta parte de un stock previo distinto")
}

// ── ajustes ──────────────────────────────────────────────────────────────────

func TestAdjustStock_Validaciones(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.uc.AdjustStock(ctx, actor, inventory.AdjustStockInput{ProductID: "p1", BranchID: "b1", Delta: d("1"), Reason: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidReason)
	_, err = f.uc.AdjustStock(ctx, actor, inventory.AdjustStockInput{ProductID: "p1", BranchID: "b1", Delta: d("1"), Reason: "porque sí"})
	assert.ErrorIs(t, err, domain.ErrInvalidReason)
	_, err = f.uc.AdjustStock(ctx, actor, inventory.AdjustStockInput{ProductID: "p1", BranchID: "b1", Delta: d("0"), Reason: "OTHER"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.AdjustStock(ctx, actor, inventory.AdjustStockInput{ProductID: "p1", BranchID: "b1", Delta: d("-11"), Reason: "THEFT"})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.level(t, "p1", "b1").CurrentStock.Equal(d("10")))
	assert.Empty(t, f.store.MovementsOf(""))
	assert.Empty(t, f.cache.Deleted, "un ajuste fallido no invalida la caché")
}

func TestAdjustStock_InvalidaCacheYRegistraActividad(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	key := ports.DashboardKey(ports.DashboardInventory, tenant)
	require.NoError(t, f.cache.Set(ctx, key, map[string]int{"x": 1}))

	_, err := f.uc.AdjustStock(ctx, actor, inventory.AdjustStockInput{
		ProductID: "p1", BranchID: "b2", Delta: d("4"), Reason: "RETURN", Notes: " devolución ",
	})
	require.NoError(t, err)

	assert.False(t, f.cache.Has(key))
	assert.Equal(t, []string{"stock.adjust"}, f.recorder.Actions())

	l := f.level(t, "p1", "b2")
	assert.True(t, l.CurrentStock.Equal(d("4")))
	assert.True(t, l.MinStockLevel.Equal(d("5")), "fila nueva hereda el mínimo del producto")
	assert.Equal(t, "devolución", f.store.MovementsOf(entity.MovementAdjustment)[0].Notes)
	assert.True(t, f.store.Product("p1").Quantity.Equal(d("14")))
}

// ── traslados ────────────────────────────────────────────────────────────────

func TestTransferStock(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	tr, err := f.uc.TransferStock(ctx, actor, inventory.TransferInput{
		ProductID: "p1", FromBranchID: "b1", ToBranchID: "b2", Quantity: d("4"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tr.TransferNumber, "TRF-"))
	assert.Equal(t, "Centro", tr.FromBranchName)
	assert.Equal(t, "Norte", tr.ToBranchName)

	assert.True(t, f.level(t, "p1", "b1").CurrentStock.Equal(d("6")))
	assert.True(t, f.level(t, "p1", "b2").CurrentStock.Equal(d("4")))
	assert.True(t, f.store.Product("p1").Quantity.Equal(d("10")), "un traslado no cambia el total")

	out := f.store.MovementsOf(entity.MovementTransferOut)
	in := f.store.MovementsOf(entity.MovementTransferIn)
	require.Len(t, out, 1)
	require.Len(t, in, 1)
	assert.Equal(t, tr.ID, out[0].ReferenceID)
	assert.True(t, in[0].PreviousStock.IsZero())

	list, err := f.uc.ListTransfers(ctx, tenant, "b2", 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestTransferStock_Errores(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.uc.TransferStock(ctx, actor, inventory.TransferInput{ProductID: "p1", FromBranchID: "b1", ToBranchID: "b1", Quantity: d("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.TransferStock(ctx, actor, inventory.TransferInput{ProductID: "p1", FromBranchID: "b1", ToBranchID: "b2", Quantity: d("11")})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	_, ok := f.store.StockOf(tenant, "p1", "b2")
	assert.False(t, ok, "rollback: no se crea la fila destino")

	_, err = f.uc.TransferStock(ctx, actor, inventory.TransferInput{ProductID: "p1", FromBranchID: "b1", ToBranchID: "b3", Quantity: d("1")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTransferStock_RespetaReservado(t *testing.T) {
	f := newFixture(t, false)
	f.store.PutStock(entity.StockLevel{
		TenantID: tenant, ProductID: "p1", BranchID: "b1",
		CurrentStock: d("10"), ReservedStock: d("8"), MinStockLevel: d("5"), UpdatedAt: time.Now(),
	})
	_, err := f.uc.TransferStock(context.Background(), actor, inventory.TransferInput{
		ProductID: "p1", FromBranchID: "b1", ToBranchID: "b2", Quantity: d("3"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// ── compras ──────────────────────────────────────────────────────────────────

func TestReceivePurchase_CostoPromedioYVinculoProveedor(t *testing.T) {
	f := newFixture(t, false)
	f.store.PutSupplier(entity.Supplier{ID: "s1", TenantID: tenant, Name: "Molinos", IsActive: true})
	ctx := context.Background()
	rating := d("4")

	order, err := f.uc.ReceivePurchase(ctx, actor, inventory.PurchaseInput{
		SupplierID: "s1", ProductID: "p1", BranchID: "b1", Quantity: d("10"), UnitCost: d("20"), Rating: &rating,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)

	p := f.store.Product("p1")
	assert.True(t, p.CostPrice.Equal(d("15")), "(10*10 + 10*20) / 20 = 15, obtenido %s", p.CostPrice)
	assert.True(t, p.Quantity.Equal(d("20")))
	require.Len(t, p.Suppliers, 1)
	assert.True(t, p.Suppliers[0].IsPrimary)
	assert.Equal(t, "Molinos", p.Suppliers[0].SupplierName)

	_, err = f.uc.ReceivePurchase(ctx, actor, inventory.PurchaseInput{
		SupplierID: "s1", ProductID: "p1", BranchID: "b1", Quantity: d("5"), UnitCost: d("30"),
	})
	require.NoError(t, err)
	p = f.store.Product("p1")
	assert.True(t, p.Suppliers[0].LastPurchasePrice.Equal(d("30")))
	assert.True(t, p.Suppliers[0].AveragePurchasePrice.Equal(d("25")))
	assert.Equal(t, 2, p.Suppliers[0].PurchaseCount)

	assert.True(t, f.level(t, "p1", "b1").CurrentStock.Equal(d("25")))
	assert.Len(t, f.store.MovementsOf(entity.MovementPurchase), 2)
	assert.Len(t, f.store.SupplierOrders, 2)
}

func TestReceivePurchase_Validaciones(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.uc.ReceivePurchase(ctx, actor, inventory.PurchaseInput{SupplierID: "nope", ProductID: "p1", BranchID: "b1", Quantity: d("1"), UnitCost: d("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bad := d("9")
	_, err = f.uc.ReceivePurchase(ctx, actor, inventory.PurchaseInput{SupplierID: "s1", ProductID: "p1", BranchID: "b1", Quantity: d("1"), UnitCost: d("1"), Rating: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── inicialización ───────────────────────────────────────────────────────────

func TestInitializeInventory_Idempotente(t *testing.T) {
	f := newFixture(t, false)
	f.store.PutProduct(entity.Product{ID: "p2", TenantID: tenant, Name: "Frijol", MinStockLevel: d("2")})
	f.store.PutProduct(entity.Product{ID: "p3", TenantID: tenant, Name: "Borrado", IsDeleted: true})
	ctx := context.Background()

	res, err := f.uc.InitializeInventory(ctx, actor, "b2", d("3"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 0, res.Skipped)
	assert.True(t, f.level(t, "p2", "b2").CurrentStock.Equal(d("3")))
	assert.True(t, f.level(t, "p2", "b2").MinStockLevel.Equal(d("2")))

	_, err = f.uc.AdjustStock(ctx, actor, inventory.AdjustStockInput{ProductID: "p2", BranchID: "b2", Delta: d("-1"), Reason: "OTHER"})
	require.NoError(t, err)

	res, err = f.uc.InitializeInventory(ctx, actor, "b2", d("3"))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 2, res.Skipped)
	assert.True(t, f.level(t, "p2", "b2").CurrentStock.Equal(d("2")), "las filas existentes no se tocan")

	_, err = f.uc.InitializeInventory(ctx, actor, "b1", d("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── consultas ────────────────────────────────────────────────────────────────

func TestBranchStockSummaryYMovimientos(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	_, err := f.uc.RecordSale(ctx, actor, "b1", "p1", d("6"), "s")
	require.NoError(t, err)

	summary, err := f.uc.BranchStockSummary(ctx, tenant)
	require.NoError(t, err)
	require.Len(t, summary, 2, "sólo sucursales activas")
	assert.Equal(t, "b1", summary[0].BranchID)
	assert.True(t, summary[0].InventoryValue.Equal(d("40")))
	assert.Equal(t, 1, summary[0].LowStockCount)

	movs, err := f.uc.ListMovements(ctx, tenant, repository.MovementFilter{Type: entity.MovementSale})
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, "Arroz", movs[0].ProductName)

	_, err = f.uc.ListMovements(ctx, tenant, repository.MovementFilter{Type: "ROBO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Len(t, f.uc.Reasons(), 7)
}
