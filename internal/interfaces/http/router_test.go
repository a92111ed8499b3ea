package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/chukwumela909/Web-App-sub001/internal/application/analytics"
	"github.com/chukwumela909/Web-App-sub001/internal/application/apptest"
	"github.com/chukwumela909/Web-App-sub001/internal/application/auth"
	"github.com/chukwumela909/Web-App-sub001/internal/application/dto"
	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/application/sales"
	"github.com/chukwumela909/Web-App-sub001/internal/application/staff"
	"github.com/chukwumela909/Web-App-sub001/internal/application/usecase"
	apphttp "github.com/chukwumela909/Web-App-sub001/internal/interfaces/http"
)

type envelope struct {
	Success bool               `json:"success"`
	Data    json.RawMessage    `json:"data"`
	Error   *dto.ErrorResponse `json:"error"`
}

type apiHarness struct {
	t     *testing.T
	app   *fiber.App
	store *apptest.Store
}

// newAPI arma el router completo sobre repositorios en memoria.
func newAPI(t *testing.T) *apiHarness {
	t.Helper()
	s := apptest.NewStore()
	cache := apptest.NewCache()
	rec := &apptest.Recorder{}

	stockUC := inventory.NewStockUseCase(inventory.Deps{
		TxRunner:  s.TxRunner(),
		Products:  s.ProductRepo(),
		Branches:  s.BranchRepo(),
		Suppliers: s.SupplierRepo(),
		Stock:     s.StockRepo(),
		Movements: s.MovementRepo(),
		Transfers: s.TransferRepo(),
		Cache:     cache,
		Activity:  rec,
	})
	deps := apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(s.UserRepo(), s.StaffRepo(), s.BranchRepo(), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		UserUC:        usecase.NewUserUseCase(s.UserRepo(), s.StaffRepo()),
		BranchUC:      usecase.NewBranchUseCase(s.BranchRepo(), cache, rec),
		StaffUC:       staff.NewStaffUseCase(s.StaffRepo(), s.BranchRepo(), s.ActivityRepo(), rec),
		SupplierUC:    usecase.NewSupplierUseCase(s.SupplierRepo(), s.SupplierOrderRepo(), rec),
		ProductUC:     usecase.NewProductUseCase(s.ProductRepo(), s.StockRepo(), s.BranchRepo(), stockUC, rec),
		ExpenseUC:     usecase.NewExpenseUseCase(s.ExpenseRepo(), s.BranchRepo(), rec),
		DebtorUC:      usecase.NewDebtorUseCase(s.DebtorRepo(), rec),
		ReportUC:      usecase.NewReportUseCase(s.SaleRepo(), s.ExpenseRepo(), s.AnalyticsRepo()),
		StockUC:       stockUC,
		Replenishment: inventory.NewReplenishmentUseCase(s.StockRepo(), s.ProductRepo(), s.AnalyticsRepo()),
		SaleUC: sales.NewSaleUseCase(sales.Deps{
			TxRunner: s.TxRunner(),
			Stock:    stockUC,
			Products: s.ProductRepo(),
			Branches: s.BranchRepo(),
			Sales:    s.SaleRepo(),
			Legacy:   s.LegacySaleRepo(),
			Users:    s.UserRepo(),
			Activity: rec,
		}),
		DashboardUC: appanalytics.NewDashboardUseCase(appanalytics.Deps{
			Branches:  s.BranchRepo(),
			Stock:     s.StockRepo(),
			Movements: s.MovementRepo(),
			Sales:     s.SaleRepo(),
			Suppliers: s.SupplierRepo(),
			Orders:    s.SupplierOrderRepo(),
			Analytics: s.AnalyticsRepo(),
			Cache:     cache,
		}),
		StaffRepo: s.StaffRepo(),
		JWTSecret: testJWTSecret,
	}

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, deps)
	return &apiHarness{t: t, app: app, store: s}
}

// call envía la petición y decodifica el sobre; out recibe data si no es nil.
func (h *apiHarness) call(method, path, token string, body any, out any) (int, envelope) {
	h.t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(h.t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(h.t, err)
	if len(raw) > 0 {
		require.NoError(h.t, json.Unmarshal(raw, &env), "cuerpo: %s", raw)
	}
	if out != nil && len(env.Data) > 0 {
		require.NoError(h.t, json.Unmarshal(env.Data, out))
	}
	return resp.StatusCode, env
}

// registerOwner registra un negocio y devuelve el token del dueño y su sucursal principal.
func (h *apiHarness) registerOwner(email string) (string, string) {
	h.t.Helper()
	status, _ := h.call(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: email, Password: "secreto123", Name: "Ana", BusinessName: "Tienda Ana",
	}, nil)
	require.Equal(h.t, http.StatusCreated, status)

	var login dto.LoginResponse
	status, _ = h.call(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: "secreto123"}, &login)
	require.Equal(h.t, http.StatusOK, status)
	require.NotEmpty(h.t, login.Token)

	var branches []dto.BranchResponse
	status, _ = h.call(http.MethodGet, "/api/branches", login.Token, nil, &branches)
	require.Equal(h.t, http.StatusOK, status)
	require.Len(h.t, branches, 1)
	return login.Token, branches[0].ID
}

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestRouter_FlujoVentaDescuentaStock(t *testing.T) {
	h := newAPI(t)
	owner, branchID := h.registerOwner("ana@tienda.test")

	var product dto.ProductResponse
	status, env := h.call(http.MethodPost, "/api/products", owner, dto.CreateProductRequest{
		Name: "Camisa", SKU: "CAM-1", CostPrice: d("60"), SellingPrice: d("100"),
		MinStockLevel: d("2"), Quantity: d("10"), BranchID: branchID,
	}, &product)
	require.Equal(t, http.StatusCreated, status, "%+v", env.Error)
	assert.True(t, env.Success)
	assert.True(t, product.Quantity.Equal(d("10")))

	var sale dto.SaleResponse
	status, env = h.call(http.MethodPost, "/api/sales", owner, dto.CreateSaleRequest{
		BranchID:      branchID,
		Items:         []dto.SaleItemRequest{{ProductID: product.ID, Quantity: d("3")}},
		PaymentMethod: "cash",
	}, &sale)
	require.Equal(t, http.StatusCreated, status, "%+v", env.Error)
	assert.True(t, sale.Total.Equal(d("300")), "total %s", sale.Total)
	assert.True(t, sale.TotalProfit.Equal(d("120")), "utilidad %s", sale.TotalProfit)

	var levels []dto.StockLevelResponse
	status, _ = h.call(http.MethodGet, "/api/inventory/stock?branch_id="+branchID, owner, nil, &levels)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, levels, 1)
	assert.True(t, levels[0].CurrentStock.Equal(d("7")), "stock %s", levels[0].CurrentStock)

	var movements []dto.MovementResponse
	status, _ = h.call(http.MethodGet, "/api/inventory/movements?type=SALE", owner, nil, &movements)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, movements, 1)
	assert.Equal(t, sale.ID, movements[0].ReferenceID)
}

func TestRouter_ErroresUsanSobreComun(t *testing.T) {
	h := newAPI(t)
	owner, _ := h.registerOwner("ana@tienda.test")

	status, env := h.call(http.MethodGet, "/api/products/no-existe", owner, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	status, env = h.call(http.MethodPost, "/api/products", owner, map[string]any{"sku": "sin-nombre"}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION", env.Error.Code)

	status, env = h.call(http.MethodGet, "/api/inventory/movements?type=ROBO", owner, nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)

	status, env = h.call(http.MethodGet, "/api/no-existe", owner, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
}

func TestRouter_LoginCredencialesInvalidas(t *testing.T) {
	h := newAPI(t)
	h.registerOwner("ana@tienda.test")

	status, env := h.call(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@tienda.test", Password: "incorrecta"}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	status, _ = h.call(http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "nadie@tienda.test", Password: "secreto123"}, nil)
	assert.Equal(t, http.StatusUnauthorized, status, "un email desconocido responde igual que una contraseña incorrecta")

	status, env = h.call(http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "ana@tienda.test", Password: "secreto123", Name: "Otra",
	}, nil)
	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EMAIL_EXISTS", env.Error.Code)
}

func TestRouter_CajeroLimitadoASusPermisosYSucursales(t *testing.T) {
	h := newAPI(t)
	owner, mainBranch := h.registerOwner("ana@tienda.test")

	var other dto.BranchResponse
	status, _ := h.call(http.MethodPost, "/api/branches", owner, dto.CreateBranchRequest{Name: "Norte"}, &other)
	require.Equal(t, http.StatusCreated, status)

	var product dto.ProductResponse
	status, _ = h.call(http.MethodPost, "/api/products", owner, dto.CreateProductRequest{
		Name: "Gorra", CostPrice: d("20"), SellingPrice: d("50"), Quantity: d("5"), BranchID: mainBranch,
	}, &product)
	require.Equal(t, http.StatusCreated, status)

	status, env := h.call(http.MethodPost, "/api/staff", owner, dto.CreateStaffRequest{
		Name: "Luis", Email: "luis@tienda.test", Password: "caja123", Role: "cashier", BranchIDs: []string{mainBranch},
	}, nil)
	require.Equal(t, http.StatusCreated, status, "%+v", env.Error)

	var login dto.LoginResponse
	status, _ = h.call(http.MethodPost, "/api/auth/staff/login", "", dto.LoginRequest{Email: "luis@tienda.test", Password: "caja123"}, &login)
	require.Equal(t, http.StatusOK, status)
	cashierTok := login.Token

	// sin inventory:adjust
	status, env = h.call(http.MethodPost, "/api/inventory/stock/adjust", cashierTok, dto.AdjustStockRequest{
		ProductID: product.ID, BranchID: mainBranch, Quantity: d("1"), Reason: "DAMAGED",
	}, nil)
	assert.Equal(t, http.StatusForbidden, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	// sucursal no asignada
	status, env = h.call(http.MethodPost, "/api/sales", cashierTok, dto.CreateSaleRequest{
		BranchID:      other.ID,
		Items:         []dto.SaleItemRequest{{ProductID: product.ID, Quantity: d("1")}},
		PaymentMethod: "cash",
	}, nil)
	assert.Equal(t, http.StatusForbidden, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BRANCH_FORBIDDEN", env.Error.Code)

	// sucursal asignada
	status, env = h.call(http.MethodPost, "/api/sales", cashierTok, dto.CreateSaleRequest{
		BranchID:      mainBranch,
		Items:         []dto.SaleItemRequest{{ProductID: product.ID, Quantity: d("1")}},
		PaymentMethod: "card",
	}, nil)
	assert.Equal(t, http.StatusCreated, status, "%+v", env.Error)

	// migrate-legacy sólo con all:*
	status, _ = h.call(http.MethodPost, "/api/sales/migrate-legacy", cashierTok, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)

	var profile dto.ProfileResponse
	status, _ = h.call(http.MethodGet, "/api/me", cashierTok, nil, &profile)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cashier", profile.Role)
	require.NotNil(t, profile.Staff)
	assert.Equal(t, "luis@tienda.test", profile.Staff.Email)
	require.NotNil(t, profile.User)
	assert.Equal(t, "Tienda Ana", profile.User.BusinessName)
}

// staffLogin crea un empleado asignado a branchIDs y devuelve su token.
func (h *apiHarness) staffLogin(owner, email, role string, branchIDs []string) string {
	h.t.Helper()
	status, env := h.call(http.MethodPost, "/api/staff", owner, dto.CreateStaffRequest{
		Name: "Empleado", Email: email, Password: "clave123", Role: role, BranchIDs: branchIDs,
	}, nil)
	require.Equal(h.t, http.StatusCreated, status, "%+v", env.Error)

	var login dto.LoginResponse
	status, _ = h.call(http.MethodPost, "/api/auth/staff/login", "", dto.LoginRequest{Email: email, Password: "clave123"}, &login)
	require.Equal(h.t, http.StatusOK, status)
	return login.Token
}

func TestRouter_VentasDeOtraSucursalNoVisibles(t *testing.T) {
	h := newAPI(t)
	owner, mainBranch := h.registerOwner("ana@tienda.test")

	var norte dto.BranchResponse
	status, _ := h.call(http.MethodPost, "/api/branches", owner, dto.CreateBranchRequest{Name: "Norte"}, &norte)
	require.Equal(t, http.StatusCreated, status)

	var product dto.ProductResponse
	status, _ = h.call(http.MethodPost, "/api/products", owner, dto.CreateProductRequest{
		Name: "Gorra", CostPrice: d("20"), SellingPrice: d("50"), Quantity: d("5"), BranchID: mainBranch,
	}, &product)
	require.Equal(t, http.StatusCreated, status)

	sell := func(branchID string) dto.SaleResponse {
		var sale dto.SaleResponse
		status, env := h.call(http.MethodPost, "/api/sales", owner, dto.CreateSaleRequest{
			BranchID:      branchID,
			Items:         []dto.SaleItemRequest{{ProductID: product.ID, Quantity: d("1")}},
			PaymentMethod: "cash",
		}, &sale)
		require.Equal(t, http.StatusCreated, status, "%+v", env.Error)
		return sale
	}
	mainSale := sell(mainBranch)
	norteSale := sell(norte.ID)

	cashierTok := h.staffLogin(owner, "luis@tienda.test", "cashier", []string{mainBranch})
	managerTok := h.staffLogin(owner, "sofi@tienda.test", "manager", []string{mainBranch})

	// Listado sin branch_id: sólo las sucursales asignadas
	var list []dto.SaleResponse
	status, _ = h.call(http.MethodGet, "/api/sales", cashierTok, nil, &list)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	assert.Equal(t, mainSale.ID, list[0].ID)

	status, env := h.call(http.MethodGet, "/api/sales?branch_id="+norte.ID, cashierTok, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BRANCH_FORBIDDEN", env.Error.Code)

	// El dueño sigue viendo todo
	status, _ = h.call(http.MethodGet, "/api/sales", owner, nil, &list)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, list, 2)

	// Detalle, comprobante y anulación de una venta ajena
	status, _ = h.call(http.MethodGet, "/api/sales/"+mainSale.ID, cashierTok, nil, nil)
	assert.Equal(t, http.StatusOK, status)

	for _, req := range []struct{ method, path, token string }{
		{http.MethodGet, "/api/sales/" + norteSale.ID, cashierTok},
		{http.MethodGet, "/api/sales/" + norteSale.ID + "/receipt", cashierTok},
		{http.MethodDelete, "/api/sales/" + norteSale.ID, managerTok},
	} {
		status, env := h.call(req.method, req.path, req.token, nil, nil)
		assert.Equal(t, http.StatusForbidden, status, "%s %s", req.method, req.path)
		require.NotNil(t, env.Error)
		assert.Equal(t, "BRANCH_FORBIDDEN", env.Error.Code)
	}

	// La venta ajena no se anuló
	var got dto.SaleResponse
	status, _ = h.call(http.MethodGet, "/api/sales/"+norteSale.ID, owner, nil, &got)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, got.IsDeleted)

	status, _ = h.call(http.MethodDelete, "/api/sales/"+mainSale.ID, managerTok, nil, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestRouter_TrasladoYDashboards(t *testing.T) {
	h := newAPI(t)
	owner, mainBranch := h.registerOwner("ana@tienda.test")

	var norte dto.BranchResponse
	status, _ := h.call(http.MethodPost, "/api/branches", owner, dto.CreateBranchRequest{Name: "Norte"}, &norte)
	require.Equal(t, http.StatusCreated, status)

	var product dto.ProductResponse
	status, _ = h.call(http.MethodPost, "/api/products", owner, dto.CreateProductRequest{
		Name: "Arroz", CostPrice: d("10"), SellingPrice: d("15"), MinStockLevel: d("5"), Quantity: d("20"), BranchID: mainBranch,
	}, &product)
	require.Equal(t, http.StatusCreated, status)

	var tr dto.TransferResponse
	status, env := h.call(http.MethodPost, "/api/transfers", owner, dto.TransferRequest{
		ProductID: product.ID, FromBranchID: mainBranch, ToBranchID: norte.ID, Quantity: d("8"),
	}, &tr)
	require.Equal(t, http.StatusCreated, status, "%+v", env.Error)
	assert.NotEmpty(t, tr.TransferNumber)

	status, env = h.call(http.MethodPost, "/api/transfers", owner, dto.TransferRequest{
		ProductID: product.ID, FromBranchID: mainBranch, ToBranchID: norte.ID, Quantity: d("100"),
	}, nil)
	assert.Equal(t, http.StatusConflict, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INSUFFICIENT_STOCK", env.Error.Code)

	var dash dto.BranchDashboardDTO
	status, _ = h.call(http.MethodGet, "/api/branches/dashboard", owner, nil, &dash)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, dash.TotalBranches)
	assert.True(t, dash.InventoryValue.Equal(d("200")), "valor %s", dash.InventoryValue)

	var inv dto.InventoryDashboardDTO
	status, _ = h.call(http.MethodGet, "/api/inventory/dashboard", owner, nil, &inv)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, inv.TotalUnits.Equal(d("20")), "unidades %s", inv.TotalUnits)

	var transfers []dto.TransferResponse
	status, _ = h.call(http.MethodGet, "/api/transfers?branch_id="+norte.ID, owner, nil, &transfers)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, transfers, 1)
}
