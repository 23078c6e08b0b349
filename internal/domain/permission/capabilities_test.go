package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

func TestResolve_Admin(t *testing.T) {
	caps := Resolve(entity.RoleAdmin)

	assert.True(t, caps.CanViewAllLeads)
	assert.True(t, caps.CanManageUsers)
	assert.True(t, caps.CanActOnAnyLead)
	assert.True(t, caps.CanExport)
}

func TestResolve_Vendedor(t *testing.T) {
	caps := Resolve(entity.RoleVendedor)

	assert.False(t, caps.CanViewAllLeads, "un vendedor solo ve sus propios leads")
	assert.False(t, caps.CanManageUsers)
	assert.False(t, caps.CanActOnAnyLead)
	assert.True(t, caps.CanExport)
}

func TestResolve_RolDesconocido(t *testing.T) {
	caps := Resolve("superusuario")

	assert.Equal(t, Capabilities{}, caps, "rol desconocido recibe el conjunto vacío")
}

func TestMayMutateLead(t *testing.T) {
	admin := Resolve(entity.RoleAdmin)
	vendedor := Resolve(entity.RoleVendedor)

	assert.True(t, admin.MayMutateLead("otro", "u1"), "el admin actúa sobre leads de cualquiera")
	assert.True(t, vendedor.MayMutateLead("u1", "u1"))
	assert.False(t, vendedor.MayMutateLead("otro", "u1"), "el vendedor solo actúa sobre lo suyo")
}
