// Package apptest provee repositorios en memoria para probar los casos de uso sin base de datos.
// Store es seguro para uso concurrente; los repositorios devuelven copias, igual que un driver real.
package apptest

import (
	"context"
	"maps"
	"sync"

	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
)

// Store estado compartido por todos los repositorios fake.
type Store struct {
	mu sync.Mutex

	Users          map[string]entity.User
	Products       map[string]entity.Product
	Branches       map[string]entity.Branch
	Suppliers      map[string]entity.Supplier
	Stock          map[string]entity.StockLevel // clave tenant|product|branch
	Movements      []entity.StockMovement
	Transfers      []entity.StockTransfer
	Sales          map[string]entity.Sale
	LegacySales    []entity.LegacySale
	SupplierOrders []entity.SupplierOrder
	Staff          map[string]entity.Staff
	Activities     []entity.StaffActivity
	Expenses       map[string]entity.Expense
	Debtors        map[string]entity.Debtor
	Payments       []entity.DebtorPayment
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		Users:     map[string]entity.User{},
		Products:  map[string]entity.Product{},
		Branches:  map[string]entity.Branch{},
		Suppliers: map[string]entity.Supplier{},
		Stock:     map[string]entity.StockLevel{},
		Sales:     map[string]entity.Sale{},
		Staff:     map[string]entity.Staff{},
		Expenses:  map[string]entity.Expense{},
		Debtors:   map[string]entity.Debtor{},
	}
}

func stockKey(tenantID, productID, branchID string) string {
	return tenantID + "|" + productID + "|" + branchID
}

// snapshot copia el estado mutable por transacciones para poder revertirlo.
type snapshot struct {
	products       map[string]entity.Product
	stock          map[string]entity.StockLevel
	sales          map[string]entity.Sale
	movements      []entity.StockMovement
	transfers      []entity.StockTransfer
	supplierOrders []entity.SupplierOrder
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		products:       maps.Clone(s.Products),
		stock:          maps.Clone(s.Stock),
		sales:          maps.Clone(s.Sales),
		movements:      append([]entity.StockMovement(nil), s.Movements...),
		transfers:      append([]entity.StockTransfer(nil), s.Transfers...),
		supplierOrders: append([]entity.SupplierOrder(nil), s.SupplierOrders...),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Products = snap.products
	s.Stock = snap.stock
	s.Sales = snap.sales
	s.Movements = snap.movements
	s.Transfers = snap.transfers
	s.SupplierOrders = snap.supplierOrders
}

// TxRunner ejecuta fn serializado y revierte el Store si fn devuelve error.
type TxRunner struct {
	s  *Store
	mu sync.Mutex
}

var _ ports.TxRunner = (*TxRunner)(nil)

// Run implementa ports.TxRunner.
func (r *TxRunner) Run(_ context.Context, fn func(repos ports.TxRepos) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	snap := r.s.snapshot()
	if err := fn(r.s.TxRepos()); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

// TxRunner devuelve un runner transaccional sobre el Store.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// TxRepos repositorios que comparten el Store.
func (s *Store) TxRepos() ports.TxRepos {
	return ports.TxRepos{
		Products:       s.ProductRepo(),
		Stock:          s.StockRepo(),
		Movements:      s.MovementRepo(),
		Transfers:      s.TransferRepo(),
		Sales:          s.SaleRepo(),
		SupplierOrders: s.SupplierOrderRepo(),
	}
}

// ── siembra ──────────────────────────────────────────────────────────────────

// PutProduct inserta o reemplaza un producto.
func (s *Store) PutProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Products[p.ID] = p
}

// PutBranch inserta o reemplaza una sucursal.
func (s *Store) PutBranch(b entity.Branch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Branches[b.ID] = b
}

// PutSupplier inserta o reemplaza un proveedor.
func (s *Store) PutSupplier(sp entity.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Suppliers[sp.ID] = sp
}

// PutStock inserta o reemplaza un nivel de stock.
func (s *Store) PutStock(l entity.StockLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Stock[stockKey(l.TenantID, l.ProductID, l.BranchID)] = l
}

// PutStaff inserta o reemplaza un miembro del personal.
func (s *Store) PutStaff(st entity.Staff) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Staff[st.ID] = st
}

// ── lectura para asserts ─────────────────────────────────────────────────────

// StockOf devuelve el nivel de stock (ok=false si no existe la fila).
func (s *Store) StockOf(tenantID, productID, branchID string) (entity.StockLevel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.Stock[stockKey(tenantID, productID, branchID)]
	return l, ok
}

// Product devuelve el producto guardado.
func (s *Store) Product(id string) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Products[id]
}

// MovementsOf copia de los movimientos del tipo indicado (vacío = todos).
func (s *Store) MovementsOf(typ string) []entity.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []entity.StockMovement
	for _, m := range s.Movements {
		if typ == "" || m.Type == typ {
			out = append(out, m)
		}
	}
	return out
}
