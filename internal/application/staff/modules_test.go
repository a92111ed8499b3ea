package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/permission"
)

func TestExpandModules(t *testing.T) {
	perms, err := ExpandModules([]string{"inventory", " Sales ", "inventory"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		permission.InventoryAdjust, permission.InventoryRead,
		permission.SalesCreate, permission.SalesDelete, permission.SalesRead,
	}, perms)

	_, err = ExpandModules([]string{"nomina"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestModulesFromPermissions(t *testing.T) {
	assert.Equal(t, []string{"inventory", "sales"},
		ModulesFromPermissions([]string{permission.SalesRead, permission.InventoryRead}))
	assert.Equal(t, Modules(), ModulesFromPermissions([]string{permission.AllPermissions}))
	assert.Empty(t, ModulesFromPermissions(nil))
}

func TestModulesIdaYVuelta(t *testing.T) {
	for _, m := range Modules() {
		perms, err := ExpandModules([]string{m})
		require.NoError(t, err)
		assert.Equal(t, []string{m}, ModulesFromPermissions(perms), m)
	}
}
