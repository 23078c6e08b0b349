package entity

import "time"

// Company representa una organización/tenant del sistema. Todos los usuarios
// y leads visibles en una sesión pertenecen a una sola Company.
type Company struct {
	ID        string
	Name      string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
