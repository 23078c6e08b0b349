package leads

import (
	"strings"

	"github.com/jhoicas/crm-api/internal/domain/entity"
)

// Filter criterios de la tabla de leads. Los campos vacíos no filtran.
type Filter struct {
	Stage  string
	Source string
	Owner  string // id del dueño
	Query  string // busca en nombre, empresa y email, sin mayúsculas
}

// Apply devuelve los leads que cumplen todos los criterios, en el orden
// recibido.
func (f Filter) Apply(in []entity.Lead) []entity.Lead {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]entity.Lead, 0, len(in))
	for _, l := range in {
		if f.Stage != "" && l.Stage != f.Stage {
			continue
		}
		if f.Source != "" && l.Source != f.Source {
			continue
		}
		if f.Owner != "" && l.OwnerID != f.Owner {
			continue
		}
		if query != "" && !matchesQuery(l, query) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesQuery(l entity.Lead, query string) bool {
	return strings.Contains(strings.ToLower(l.Name), query) ||
		strings.Contains(strings.ToLower(l.Company), query) ||
		strings.Contains(strings.ToLower(l.Email), query)
}
