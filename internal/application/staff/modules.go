package staff

import (
	"fmt"
	"slices"
	"strings"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/permission"
)

// moduleTable agrupación de permisos por pantalla de la aplicación.
// Editar módulos es sólo una forma cómoda de editar la lista de permisos.
var moduleTable = map[string][]string{
	"dashboard": {permission.DashboardRead},
	"sales":     {permission.SalesCreate, permission.SalesRead, permission.SalesDelete},
	"inventory": {permission.InventoryRead, permission.InventoryAdjust},
	"products": {
		permission.ProductsRead, permission.ProductsCreate,
		permission.ProductsUpdate, permission.ProductsDelete,
	},
	"customers": {permission.CustomersRead, permission.CustomersCreate, permission.CustomersUpdate},
	"transfers": {permission.TransfersRead, permission.TransfersCreate},
	"staff": {
		permission.StaffRead, permission.StaffCreate,
		permission.StaffUpdate, permission.StaffDelete,
	},
	"branches": {
		permission.BranchesRead, permission.BranchesCreate,
		permission.BranchesUpdate, permission.BranchesDelete,
	},
	"suppliers": {permission.SuppliersRead, permission.SuppliersCreate, permission.SuppliersUpdate},
	"reports":   {permission.ReportsRead},
	"expenses":  {permission.ExpensesRead, permission.ExpensesCreate, permission.ExpensesDelete},
	"settings":  {permission.SettingsRead, permission.SettingsUpdate},
}

// Modules nombres de módulo conocidos, ordenados.
func Modules() []string {
	out := make([]string, 0, len(moduleTable))
	for m := range moduleTable {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// ExpandModules convierte módulos en permisos estructurados, sin duplicados y ordenados.
// Un módulo desconocido es ErrInvalidInput.
func ExpandModules(modules []string) ([]string, error) {
	seen := map[string]bool{}
	for _, m := range modules {
		perms, ok := moduleTable[strings.ToLower(strings.TrimSpace(m))]
		if !ok {
			return nil, fmt.Errorf("%w: módulo desconocido %q", domain.ErrInvalidInput, m)
		}
		for _, p := range perms {
			seen[p] = true
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.Sort(out)
	return out, nil
}

// ModulesFromPermissions módulos con al menos un permiso presente. "all:*" implica todos.
func ModulesFromPermissions(perms []string) []string {
	if slices.Contains(perms, permission.AllPermissions) {
		return Modules()
	}
	var out []string
	for _, m := range Modules() {
		for _, p := range moduleTable[m] {
			if slices.Contains(perms, p) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}
