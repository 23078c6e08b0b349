// Package notify gestiona los avisos efímeros (toasts) de una sesión.
// Cada aviso vive una ventana fija y luego desaparece solo; el usuario puede
// descartarlo antes.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// Center cola de avisos de una sesión. Seguro para uso concurrente.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	notices []entity.Notice
	timers  map[string]*time.Timer
}

// NewCenter crea un centro de avisos con la ventana de visibilidad dada.
func NewCenter(ttl time.Duration) *Center {
	return &Center{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
	}
}

// Publish encola un aviso y programa su auto-descarte. Devuelve el id.
func (c *Center) Publish(title, description, severity string) string {
	n := entity.Notice{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   time.Now(),
	}
	c.mu.Lock()
	c.notices = append(c.notices, n)
	c.timers[n.ID] = time.AfterFunc(c.ttl, func() { c.Dismiss(n.ID) })
	c.mu.Unlock()
	return n.ID
}

// Success publica un aviso de éxito.
func (c *Center) Success(title, description string) string {
	return c.Publish(title, description, entity.SeveritySuccess)
}

// Error publica un aviso de error.
func (c *Center) Error(title, description string) string {
	return c.Publish(title, description, entity.SeverityError)
}

// Pending devuelve los avisos vivos en orden de llegada.
func (c *Center) Pending() []entity.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// Dismiss descarta un aviso. Descartar un id inexistente no hace nada.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	for i, n := range c.notices {
		if n.ID == id {
			c.notices = append(c.notices[:i], c.notices[i+1:]...)
			return
		}
	}
}

// Close detiene todos los timers pendientes (cierre de sesión).
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.notices = nil
}
