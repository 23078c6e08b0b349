// Package leads coordina las mutaciones del pipeline sobre el conjunto en
// memoria de la sesión. Ediciones, movimientos y borrados son optimistas:
// aplican primero al conjunto local y revierten (o resincronizan) si la
// persistencia falla; las creaciones solo tocan el conjunto tras confirmar.
// Todo fallo termina en un aviso al usuario, nunca se propaga más arriba.
package leads

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/state"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/permission"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// Coordinator aplica las mutaciones de una sesión.
type Coordinator struct {
	store    *state.Store
	repo     repository.LeadRepository
	notifier Notifier

	companyID string
	ownerID   string
	caps      permission.Capabilities
}

// NewCoordinator crea el coordinador de una sesión.
func NewCoordinator(store *state.Store, repo repository.LeadRepository, notifier Notifier, companyID, ownerID string, caps permission.Capabilities) *Coordinator {
	return &Coordinator{
		store:     store,
		repo:      repo,
		notifier:  notifier,
		companyID: companyID,
		ownerID:   ownerID,
		caps:      caps,
	}
}

// Load carga el conjunto de trabajo desde el almacén según el alcance de la
// sesión. Reemplaza cualquier estado previo.
func (c *Coordinator) Load(ctx context.Context) error {
	var (
		all []entity.Lead
		err error
	)
	if c.caps.CanViewAllLeads {
		all, err = c.repo.ListByCompany(ctx, c.companyID)
	} else {
		all, err = c.repo.ListByOwner(ctx, c.companyID, c.ownerID)
	}
	if err != nil {
		return err
	}
	c.store.SetLeads(all)
	return nil
}

// Leads devuelve el conjunto actual de la sesión.
func (c *Coordinator) Leads() []entity.Lead {
	return c.store.Leads()
}

// Get devuelve un lead del conjunto de la sesión.
func (c *Coordinator) Get(id string) (entity.Lead, bool) {
	return c.store.Get(id)
}

// deny publica el aviso de permiso denegado. La mutación ni siquiera llega al
// almacén.
func (c *Coordinator) deny() error {
	c.notifier.Error("Permiso denegado", "No puedes modificar leads de otro usuario")
	return domain.ErrForbidden
}

// Create inserta un lead. A diferencia de las demás operaciones no es
// optimista: el conjunto local solo cambia tras confirmar la persistencia,
// así nunca hay un lead provisional que revertir. El dueño es el indicado o,
// por defecto, el usuario de la sesión.
func (c *Coordinator) Create(ctx context.Context, lead entity.Lead) (entity.Lead, error) {
	if lead.Source == "" {
		lead.Source = entity.SourceOther
	}
	if lead.Stage == "" {
		lead.Stage = entity.StageNew
	}
	if !entity.ValidStage(lead.Stage) || !entity.ValidSource(lead.Source) {
		return entity.Lead{}, domain.ErrInvalidInput
	}
	if lead.OwnerID == "" {
		lead.OwnerID = c.ownerID
	}
	if !c.caps.MayMutateLead(lead.OwnerID, c.ownerID) {
		return entity.Lead{}, c.deny()
	}
	lead.ID = uuid.NewString()
	lead.CompanyID = c.companyID
	lead.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := c.repo.Insert(ctx, &lead); err != nil {
		c.notifier.Error("Error al crear el lead", "Los cambios no se guardaron")
		return entity.Lead{}, err
	}
	c.store.PrependLead(lead)
	c.notifier.Success("Lead creado", lead.Name)
	return lead, nil
}

// Update reemplaza los campos mutables de un lead de forma optimista. Si la
// persistencia falla no hay rollback campo a campo: se resincroniza el
// conjunto completo desde el almacén, en silencio.
func (c *Coordinator) Update(ctx context.Context, updated entity.Lead) (entity.Lead, error) {
	if !entity.ValidStage(updated.Stage) || !entity.ValidSource(updated.Source) {
		return entity.Lead{}, domain.ErrInvalidInput
	}
	prev, ok := c.store.Get(updated.ID)
	if !ok {
		return entity.Lead{}, domain.ErrNotFound
	}
	if !c.caps.MayMutateLead(prev.OwnerID, c.ownerID) {
		return entity.Lead{}, c.deny()
	}
	// CompanyID, dueño y fecha de creación son inmutables.
	updated.CompanyID = prev.CompanyID
	updated.CreatedAt = prev.CreatedAt
	updated.OwnerID = prev.OwnerID

	c.store.ReplaceLead(updated)
	if err := c.repo.Update(ctx, &updated); err != nil {
		// El error de la recarga no tapa al original: si también falla, el
		// siguiente Load lo arregla.
		_ = c.Load(ctx)
		c.notifier.Error("Error al actualizar el lead", "Los cambios no se guardaron")
		return entity.Lead{}, err
	}
	c.notifier.Success("Lead actualizado", updated.Name)
	return updated, nil
}

// UpdateStage mueve un lead de columna de forma optimista, restaurando la
// instantánea previa exacta si la persistencia falla.
func (c *Coordinator) UpdateStage(ctx context.Context, id, stage string) (entity.Lead, error) {
	if !entity.ValidStage(stage) {
		return entity.Lead{}, domain.ErrInvalidInput
	}
	prev, ok := c.store.Get(id)
	if !ok {
		return entity.Lead{}, domain.ErrNotFound
	}
	if !c.caps.MayMutateLead(prev.OwnerID, c.ownerID) {
		return entity.Lead{}, c.deny()
	}
	moved := prev
	moved.Stage = stage

	c.store.ReplaceLead(moved)
	if err := c.repo.UpdateStage(ctx, c.companyID, id, stage); err != nil {
		c.store.ReplaceLead(prev)
		c.notifier.Error("Error al mover el lead", "Los cambios no se guardaron")
		return entity.Lead{}, err
	}
	c.notifier.Success("Lead actualizado", entity.StageLabels[stage])
	return moved, nil
}

// Delete quita un lead de forma optimista, recordando su posición; si la
// persistencia falla, lo reinserta exactamente donde estaba.
func (c *Coordinator) Delete(ctx context.Context, id string) error {
	current, ok := c.store.Get(id)
	if !ok {
		// Borrar algo que ya no está es un no-op: sin aviso y sin llamada
		// remota.
		return nil
	}
	if !c.caps.MayMutateLead(current.OwnerID, c.ownerID) {
		return c.deny()
	}
	removed, pos, _ := c.store.RemoveLead(id)
	if err := c.repo.Delete(ctx, c.companyID, id); err != nil {
		c.store.InsertLeadAt(removed, pos)
		c.notifier.Error("Error al eliminar el lead", "Los cambios no se guardaron")
		return err
	}
	c.notifier.Success("Lead eliminado", removed.Name)
	return nil
}
