package apptest

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/entity"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
)

// ── users ────────────────────────────────────────────────────────────────────

// UserRepo fake de repository.UserRepository.
type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo devuelve el repositorio de usuarios dueños.
func (s *Store) UserRepo() *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.Users {
		if o.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.Users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.Users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.Users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

// ── branches ─────────────────────────────────────────────────────────────────

// BranchRepo fake de repository.BranchRepository.
type BranchRepo struct{ s *Store }

var _ repository.BranchRepository = (*BranchRepo)(nil)

// BranchRepo devuelve el repositorio de sucursales.
func (s *Store) BranchRepo() *BranchRepo { return &BranchRepo{s: s} }

func (r *BranchRepo) Create(_ context.Context, b *entity.Branch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Branches[b.ID] = *b
	return nil
}

func (r *BranchRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.Branches[id]
	if !ok || b.TenantID != tenantID {
		return nil, nil
	}
	return &b, nil
}

func (r *BranchRepo) Update(_ context.Context, b *entity.Branch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.Branches[b.ID]
	if !ok || cur.TenantID != b.TenantID {
		return domain.ErrNotFound
	}
	r.s.Branches[b.ID] = *b
	return nil
}

func (r *BranchRepo) List(_ context.Context, tenantID string, includeInactive bool) ([]*entity.Branch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Branch
	for _, b := range r.s.Branches {
		if b.TenantID == tenantID && (b.IsActive || includeInactive) {
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── suppliers ────────────────────────────────────────────────────────────────

// SupplierRepo fake de repository.SupplierRepository.
type SupplierRepo struct{ s *Store }

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo devuelve el repositorio de proveedores.
func (s *Store) SupplierRepo() *SupplierRepo { return &SupplierRepo{s: s} }

func (r *SupplierRepo) Create(_ context.Context, sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *sp
	c.Categories = slices.Clone(sp.Categories)
	r.s.Suppliers[sp.ID] = c
	return nil
}

func (r *SupplierRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sp, ok := r.s.Suppliers[id]
	if !ok || sp.TenantID != tenantID {
		return nil, nil
	}
	sp.Categories = slices.Clone(sp.Categories)
	return &sp, nil
}

func (r *SupplierRepo) Update(_ context.Context, sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.Suppliers[sp.ID]
	if !ok || cur.TenantID != sp.TenantID {
		return domain.ErrNotFound
	}
	r.s.Suppliers[sp.ID] = *sp
	return nil
}

func (r *SupplierRepo) List(_ context.Context, tenantID string, limit, offset int) ([]*entity.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Supplier
	for _, sp := range r.s.Suppliers {
		if sp.TenantID == tenantID {
			out = append(out, &sp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

// SupplierOrderRepo fake de repository.SupplierOrderRepository.
type SupplierOrderRepo struct{ s *Store }

var _ repository.SupplierOrderRepository = (*SupplierOrderRepo)(nil)

// SupplierOrderRepo devuelve el repositorio de órdenes a proveedor.
func (s *Store) SupplierOrderRepo() *SupplierOrderRepo { return &SupplierOrderRepo{s: s} }

func (r *SupplierOrderRepo) Create(_ context.Context, o *entity.SupplierOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.SupplierOrders = append(r.s.SupplierOrders, *o)
	return nil
}

func (r *SupplierOrderRepo) Performance(_ context.Context, tenantID string) ([]entity.SupplierPerformance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	type acc struct {
		perf      entity.SupplierPerformance
		ratingSum decimal.Decimal
		rated     int64
	}
	by := map[string]*acc{}
	for _, o := range r.s.SupplierOrders {
		if o.TenantID != tenantID {
			continue
		}
		a, ok := by[o.SupplierID]
		if !ok {
			a = &acc{perf: entity.SupplierPerformance{SupplierID: o.SupplierID}}
			by[o.SupplierID] = a
		}
		a.perf.TotalOrders++
		if o.OnTime() {
			a.perf.OnTimeOrders++
		}
		a.perf.TotalSpent = a.perf.TotalSpent.Add(o.Quantity.Mul(o.UnitCost))
		if o.Rating != nil {
			a.ratingSum = a.ratingSum.Add(*o.Rating)
			a.rated++
		}
		if a.perf.LastOrderAt == nil || o.ReceivedAt.After(*a.perf.LastOrderAt) {
			t := o.ReceivedAt
			a.perf.LastOrderAt = &t
		}
	}
	out := make([]entity.SupplierPerformance, 0, len(by))
	for _, a := range by {
		p := a.perf
		p.OnTimeDeliveryRate = entity.OnTimeRate(p.OnTimeOrders, p.TotalOrders)
		if a.rated > 0 {
			p.AverageRating = a.ratingSum.Div(decimal.NewFromInt(a.rated)).Round(2)
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SupplierID < out[j].SupplierID })
	return out, nil
}

// ── staff ────────────────────────────────────────────────────────────────────

// StaffRepo fake de repository.StaffRepository.
type StaffRepo struct{ s *Store }

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo devuelve el repositorio de personal.
func (s *Store) StaffRepo() *StaffRepo { return &StaffRepo{s: s} }

func cloneStaff(st entity.Staff) *entity.Staff {
	st.Permissions = slices.Clone(st.Permissions)
	st.BranchIDs = slices.Clone(st.BranchIDs)
	return &st
}

func (r *StaffRepo) Create(_ context.Context, st *entity.Staff) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.Staff {
		if o.Email == st.Email {
			return domain.ErrDuplicate
		}
	}
	r.s.Staff[st.ID] = *cloneStaff(*st)
	return nil
}

func (r *StaffRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Staff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.Staff[id]
	if !ok || st.TenantID != tenantID {
		return nil, nil
	}
	return cloneStaff(st), nil
}

func (r *StaffRepo) GetByEmail(_ context.Context, email string) (*entity.Staff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.Staff {
		if st.Email == email {
			return cloneStaff(st), nil
		}
	}
	return nil, nil
}

func (r *StaffRepo) Update(_ context.Context, st *entity.Staff) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.Staff[st.ID]
	if !ok || cur.TenantID != st.TenantID {
		return domain.ErrNotFound
	}
	r.s.Staff[st.ID] = *cloneStaff(*st)
	return nil
}

func (r *StaffRepo) List(_ context.Context, tenantID, branchID string) ([]*entity.Staff, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Staff
	for _, st := range r.s.Staff {
		if st.TenantID != tenantID {
			continue
		}
		if branchID != "" && !slices.Contains(st.BranchIDs, branchID) {
			continue
		}
		out = append(out, cloneStaff(st))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ActivityRepo fake de repository.StaffActivityRepository.
type ActivityRepo struct{ s *Store }

var _ repository.StaffActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo devuelve el repositorio de actividad.
func (s *Store) ActivityRepo() *ActivityRepo { return &ActivityRepo{s: s} }

func (r *ActivityRepo) Append(_ context.Context, a *entity.StaffActivity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Activities = append(r.s.Activities, *a)
	return nil
}

func (r *ActivityRepo) List(_ context.Context, tenantID, staffID string, limit int) ([]*entity.StaffActivity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.StaffActivity
	for i := len(r.s.Activities) - 1; i >= 0; i-- {
		a := r.s.Activities[i]
		if a.TenantID != tenantID || (staffID != "" && a.StaffID != staffID) {
			continue
		}
		out = append(out, &a)
	}
	return page(out, limit, 0), nil
}

// ── expenses / debtors ───────────────────────────────────────────────────────

// ExpenseRepo fake de repository.ExpenseRepository.
type ExpenseRepo struct{ s *Store }

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo devuelve el repositorio de gastos.
func (s *Store) ExpenseRepo() *ExpenseRepo { return &ExpenseRepo{s: s} }

func (r *ExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Expenses[e.ID] = *e
	return nil
}

func inRange(date, from, to string) bool {
	return (from == "" || date >= from) && (to == "" || date <= to)
}

func (r *ExpenseRepo) List(_ context.Context, tenantID string, f repository.ExpenseFilter) ([]*entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Expense
	for _, e := range r.s.Expenses {
		if e.TenantID != tenantID || e.IsDeleted || !inRange(e.Date, f.From, f.To) {
			continue
		}
		if f.BranchID != "" && e.BranchID != f.BranchID {
			continue
		}
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return page(out, f.Limit, f.Offset), nil
}

func (r *ExpenseRepo) SoftDelete(_ context.Context, tenantID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.Expenses[id]
	if !ok || e.TenantID != tenantID || e.IsDeleted {
		return domain.ErrNotFound
	}
	e.IsDeleted = true
	r.s.Expenses[id] = e
	return nil
}

func (r *ExpenseRepo) DailyTotals(_ context.Context, tenantID, from, to string) (map[string]decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[string]decimal.Decimal{}
	for _, e := range r.s.Expenses {
		if e.TenantID == tenantID && !e.IsDeleted && inRange(e.Date, from, to) {
			out[e.Date] = out[e.Date].Add(e.Amount)
		}
	}
	return out, nil
}

// DebtorRepo fake de repository.DebtorRepository.
type DebtorRepo struct{ s *Store }

var _ repository.DebtorRepository = (*DebtorRepo)(nil)

// DebtorRepo devuelve el repositorio de deudores.
func (s *Store) DebtorRepo() *DebtorRepo { return &DebtorRepo{s: s} }

func (r *DebtorRepo) Create(_ context.Context, d *entity.Debtor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.Debtors[d.ID] = *d
	return nil
}

func (r *DebtorRepo) GetByID(_ context.Context, tenantID, id string) (*entity.Debtor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.Debtors[id]
	if !ok || d.TenantID != tenantID {
		return nil, nil
	}
	return &d, nil
}

func (r *DebtorRepo) List(_ context.Context, tenantID string, limit, offset int) ([]*entity.Debtor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Debtor
	for _, d := range r.s.Debtors {
		if d.TenantID == tenantID {
			out = append(out, &d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r *DebtorRepo) AddPayment(_ context.Context, p *entity.DebtorPayment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.Debtors[p.DebtorID]
	if !ok || d.TenantID != p.TenantID {
		return domain.ErrNotFound
	}
	d.TotalPaid = d.TotalPaid.Add(p.Amount)
	d.UpdatedAt = time.Now()
	r.s.Debtors[d.ID] = d
	r.s.Payments = append(r.s.Payments, *p)
	return nil
}

func (r *DebtorRepo) ListPayments(_ context.Context, tenantID, debtorID string) ([]*entity.DebtorPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.DebtorPayment
	for _, p := range r.s.Payments {
		if p.TenantID == tenantID && p.DebtorID == debtorID {
			out = append(out, &p)
		}
	}
	return out, nil
}
