package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/chukwumela909/Web-App-sub001/internal/application/analytics"
	"github.com/chukwumela909/Web-App-sub001/internal/application/auth"
	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/application/sales"
	"github.com/chukwumela909/Web-App-sub001/internal/application/staff"
	"github.com/chukwumela909/Web-App-sub001/internal/application/usecase"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/permission"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	BranchUC      *usecase.BranchUseCase
	StaffUC       *staff.StaffUseCase
	SupplierUC    *usecase.SupplierUseCase
	ProductUC     *usecase.ProductUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	DebtorUC      *usecase.DebtorUseCase
	ReportUC      *usecase.ReportUseCase
	StockUC       *inventory.StockUseCase
	Replenishment *inventory.ReplenishmentUseCase
	SaleUC        *sales.SaleUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	StaffRepo     repository.StaffRepository
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/staff/login", authHandler.StaffLogin)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	perm := NewGuard(deps.StaffRepo).Require

	protected.Get("/me", authHandler.Me)

	dashboards := NewDashboardHandler(deps.DashboardUC)

	// Branches
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches := protected.Group("/branches")
	branches.Get("/dashboard", perm(permission.DashboardRead), dashboards.Branches)
	branches.Get("/", perm(permission.BranchesRead), branchHandler.List)
	branches.Post("/", perm(permission.BranchesCreate), branchHandler.Create)
	branches.Get("/:id", perm(permission.BranchesRead), branchHandler.GetByID)
	branches.Put("/:id", perm(permission.BranchesUpdate), branchHandler.Update)
	branches.Delete("/:id", perm(permission.BranchesDelete), branchHandler.Delete)

	// Staff
	staffHandler := NewStaffHandler(deps.StaffUC)
	staffGroup := protected.Group("/staff")
	staffGroup.Get("/", perm(permission.StaffRead), staffHandler.List)
	staffGroup.Post("/", perm(permission.StaffCreate), staffHandler.Create)
	staffGroup.Get("/:id", perm(permission.StaffRead), staffHandler.GetByID)
	staffGroup.Patch("/:id", perm(permission.StaffUpdate), staffHandler.Update)
	staffGroup.Delete("/:id", perm(permission.StaffDelete), staffHandler.Delete)
	staffGroup.Get("/:id/activity", perm(permission.StaffRead), staffHandler.Activity)

	// Suppliers
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.StockUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Get("/dashboard", perm(permission.SuppliersRead), dashboards.Suppliers)
	suppliers.Get("/", perm(permission.SuppliersRead), supplierHandler.List)
	suppliers.Post("/", perm(permission.SuppliersCreate), supplierHandler.Create)
	suppliers.Get("/:id", perm(permission.SuppliersRead), supplierHandler.GetByID)
	suppliers.Put("/:id", perm(permission.SuppliersUpdate), supplierHandler.Update)
	suppliers.Post("/:id/purchases", perm(permission.InventoryAdjust), supplierHandler.Purchase)

	// Inventory
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.Replenishment)
	inv := protected.Group("/inventory")
	inv.Get("/branches", perm(permission.InventoryRead), inventoryHandler.BranchSummary)
	inv.Get("/dashboard", perm(permission.InventoryRead), dashboards.Inventory)
	inv.Get("/stock", perm(permission.InventoryRead), inventoryHandler.Stock)
	inv.Get("/movements", perm(permission.InventoryRead), inventoryHandler.Movements)
	inv.Get("/reasons", perm(permission.InventoryRead), inventoryHandler.Reasons)
	inv.Get("/replenishment", perm(permission.InventoryRead), inventoryHandler.Replenishment)
	inv.Post("/stock/adjust", perm(permission.InventoryAdjust), inventoryHandler.Adjust)
	inv.Post("/initialize", perm(permission.InventoryAdjust), inventoryHandler.Initialize)

	// Transfers
	transfers := protected.Group("/transfers")
	transfers.Get("/", perm(permission.TransfersRead), inventoryHandler.Transfers)
	transfers.Post("/", perm(permission.TransfersCreate), inventoryHandler.Transfer)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Get("/", perm(permission.ProductsRead), productHandler.List)
	products.Post("/", perm(permission.ProductsCreate), productHandler.Create)
	products.Get("/:id", perm(permission.ProductsRead), productHandler.GetByID)
	products.Put("/:id", perm(permission.ProductsUpdate), productHandler.Update)
	products.Delete("/:id", perm(permission.ProductsDelete), productHandler.Delete)

	// Sales
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup := protected.Group("/sales")
	salesGroup.Post("/migrate-legacy", perm(permission.AllPermissions), saleHandler.MigrateLegacy)
	salesGroup.Get("/", perm(permission.SalesRead), saleHandler.List)
	salesGroup.Post("/", perm(permission.SalesCreate), saleHandler.Create)
	salesGroup.Get("/:id", perm(permission.SalesRead), saleHandler.GetByID)
	salesGroup.Delete("/:id", perm(permission.SalesDelete), saleHandler.Delete)
	salesGroup.Get("/:id/receipt", perm(permission.SalesRead), saleHandler.Receipt)

	// Expenses
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses := protected.Group("/expenses")
	expenses.Get("/", perm(permission.ExpensesRead), expenseHandler.List)
	expenses.Post("/", perm(permission.ExpensesCreate), expenseHandler.Create)
	expenses.Delete("/:id", perm(permission.ExpensesDelete), expenseHandler.Delete)

	// Debtors
	debtorHandler := NewDebtorHandler(deps.DebtorUC)
	debtors := protected.Group("/debtors")
	debtors.Get("/", perm(permission.CustomersRead), debtorHandler.List)
	debtors.Post("/", perm(permission.CustomersCreate), debtorHandler.Create)
	debtors.Get("/:id", perm(permission.CustomersRead), debtorHandler.GetByID)
	debtors.Post("/:id/payments", perm(permission.CustomersUpdate), debtorHandler.AddPayment)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports")
	reports.Get("/daily-summary", perm(permission.ReportsRead), reportHandler.DailySummary)
	reports.Get("/products", perm(permission.ReportsRead), reportHandler.Products)
}
