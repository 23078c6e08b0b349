package leads

// Notifier publica avisos efímeros hacia el usuario de la sesión.
type Notifier interface {
	Success(title, description string) string
	Error(title, description string) string
}
