// Package permission resuelve qué puede hacer un usuario según su rol.
// La resolución es síncrona y se calcula junto con la identidad: el resto del
// sistema nunca consulta el rol crudo, consulta Capabilities. Estos chequeos
// son un atajo de experiencia; la frontera de seguridad real es el filtro por
// empresa del almacén.
package permission

import "github.com/jhoicas/crm-api/internal/domain/entity"

// Capabilities conjunto cerrado de permisos derivados del rol.
type Capabilities struct {
	// CanViewAllLeads: ve todos los leads de la empresa, no solo los propios.
	CanViewAllLeads bool
	// CanManageUsers: puede listar y modificar usuarios de la empresa.
	CanManageUsers bool
	// CanActOnAnyLead: puede editar, mover y eliminar leads de cualquier
	// dueño. Sin este permiso solo se actúa sobre leads propios.
	CanActOnAnyLead bool
	// CanExport: puede generar exportes CSV/PDF.
	CanExport bool
}

// MayMutateLead reporta si un usuario puede mutar (editar, mover, eliminar)
// el lead con ese dueño.
func (c Capabilities) MayMutateLead(ownerID, selfID string) bool {
	return c.CanActOnAnyLead || ownerID == selfID
}

// Resolve deriva los permisos de un rol. Un rol desconocido recibe el conjunto
// vacío (todo denegado), nunca un error: la sesión sigue viva con lo mínimo.
func Resolve(role string) Capabilities {
	switch role {
	case entity.RoleAdmin:
		return Capabilities{
			CanViewAllLeads: true,
			CanManageUsers:  true,
			CanActOnAnyLead: true,
			CanExport:       true,
		}
	case entity.RoleVendedor:
		return Capabilities{
			CanExport: true,
		}
	default:
		return Capabilities{}
	}
}
