package session

import (
	"sync"
	"time"

	"github.com/jhoicas/crm-api/internal/application/leads"
	"github.com/jhoicas/crm-api/internal/application/notify"
	"github.com/jhoicas/crm-api/internal/application/state"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/permission"
)

// Session estado vivo de un usuario autenticado: su identidad resuelta, sus
// permisos, su conjunto de trabajo de leads y su cola de avisos.
type Session struct {
	User         entity.User
	CompanyName  string
	Capabilities permission.Capabilities
	Store        *state.Store
	Notices      *notify.Center
	Leads        *leads.Coordinator
	StartedAt    time.Time
}

// Registry sesiones activas indexadas por id de usuario. Una sesión por
// usuario: un login nuevo reemplaza (y cierra) la anterior.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry crea un registro vacío.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Get devuelve la sesión activa del usuario, si existe.
func (r *Registry) Get(userID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[userID]
	return s, ok
}

// Put instala la sesión del usuario, cerrando la previa si la había.
func (r *Registry) Put(userID string, s *Session) {
	r.mu.Lock()
	prev := r.sessions[userID]
	r.sessions[userID] = s
	r.mu.Unlock()
	if prev != nil {
		prev.Notices.Close()
		prev.Store.Clear()
	}
}

// Remove cierra y quita la sesión del usuario.
func (r *Registry) Remove(userID string) {
	r.mu.Lock()
	s := r.sessions[userID]
	delete(r.sessions, userID)
	r.mu.Unlock()
	if s != nil {
		s.Notices.Close()
		s.Store.Clear()
	}
}

// Len cantidad de sesiones activas.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
