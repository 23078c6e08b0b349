// Package state mantiene el conjunto de trabajo de leads de una sesión.
// Todas las mutaciones optimistas operan primero aquí; la versión crece con
// cada cambio para que las vistas derivadas (dashboard) puedan cachear.
package state

import (
	"sync"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// Store contenedor de leads de una sesión. Seguro para uso concurrente.
type Store struct {
	mu      sync.RWMutex
	leads   []entity.Lead
	version uint64
}

// NewStore crea un contenedor vacío.
func NewStore() *Store {
	return &Store{}
}

// Leads devuelve una copia del conjunto actual, los nuevos primero.
func (s *Store) Leads() []entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

// Version número de versión del conjunto; crece con cada mutación.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// SetLeads reemplaza el conjunto completo (carga inicial o recarga).
func (s *Store) SetLeads(leads []entity.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = make([]entity.Lead, len(leads))
	copy(s.leads, leads)
	s.version++
}

// PrependLead inserta un lead al frente del conjunto.
func (s *Store) PrependLead(lead entity.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append([]entity.Lead{lead}, s.leads...)
	s.version++
}

// ReplaceLead sustituye el lead con el mismo id, conservando su posición.
// Devuelve el valor previo y si existía.
func (s *Store) ReplaceLead(lead entity.Lead) (entity.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.leads {
		if l.ID == lead.ID {
			prev := l
			s.leads[i] = lead
			s.version++
			return prev, true
		}
	}
	return entity.Lead{}, false
}

// RemoveLead quita el lead con ese id. Devuelve el valor quitado y su
// posición, para poder restaurarlo en un rollback.
func (s *Store) RemoveLead(id string) (entity.Lead, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.leads {
		if l.ID == id {
			removed := l
			s.leads = append(s.leads[:i], s.leads[i+1:]...)
			s.version++
			return removed, i, true
		}
	}
	return entity.Lead{}, 0, false
}

// InsertLeadAt restaura un lead en una posición concreta (rollback de borrado).
func (s *Store) InsertLeadAt(lead entity.Lead, pos int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.leads) {
		pos = len(s.leads)
	}
	s.leads = append(s.leads, entity.Lead{})
	copy(s.leads[pos+1:], s.leads[pos:])
	s.leads[pos] = lead
	s.version++
}

// Get devuelve el lead con ese id.
func (s *Store) Get(id string) (entity.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return entity.Lead{}, false
}

// Clear vacía el conjunto (cierre de sesión).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = nil
	s.version++
}
