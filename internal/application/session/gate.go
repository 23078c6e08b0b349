// Package session implementa el guardián de sesión: orquesta el login contra
// el colaborador de credenciales, resuelve el perfil CRM y sus permisos, y
// mantiene el registro de sesiones vivas con su conjunto de trabajo.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/crm-api/internal/application/authsvc"
	"github.com/jhoicas/crm-api/internal/application/leads"
	"github.com/jhoicas/crm-api/internal/application/notify"
	"github.com/jhoicas/crm-api/internal/application/state"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/permission"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/jwt"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// Tipos de evento del ciclo de vida de sesiones.
const (
	EventLogin  = "login"
	EventLogout = "logout"
	EventResume = "resume"
)

// Event cambio en el ciclo de vida de una sesión.
type Event struct {
	Type      string
	UserID    string
	CompanyID string
	At        time.Time
}

// Config parámetros del guardián.
type Config struct {
	JWTSecret     string
	JWTIssuer     string
	JWTExpMinutes int
	NoticeTTL     time.Duration
}

// Gate guardián de sesión e identidad.
type Gate struct {
	auth      *authsvc.Service
	users     repository.UserRepository
	companies repository.CompanyRepository
	leadRepo  repository.LeadRepository
	registry  *Registry
	cfg       Config
	log       *logger.Logger
	events    chan Event
}

// NewGate crea el guardián.
func NewGate(auth *authsvc.Service, users repository.UserRepository, companies repository.CompanyRepository, leadRepo repository.LeadRepository, registry *Registry, cfg Config, log *logger.Logger) *Gate {
	return &Gate{
		auth:      auth,
		users:     users,
		companies: companies,
		leadRepo:  leadRepo,
		registry:  registry,
		cfg:       cfg,
		log:       log,
		events:    make(chan Event, 64),
	}
}

// Events flujo de cambios de ciclo de vida. Si nadie consume, los eventos se
// descartan en silencio; nunca bloquean una operación de sesión.
func (g *Gate) Events() <-chan Event {
	return g.events
}

func (g *Gate) emit(eventType, userID, companyID string) {
	select {
	case g.events <- Event{Type: eventType, UserID: userID, CompanyID: companyID, At: time.Now()}:
	default:
	}
}

// resolveProfile valida el perfil vinculado a una credencial y lo clasifica:
// recursión de política es fatal, perfil ausente y cuenta inactiva tienen
// cada uno su error propio.
func (g *Gate) resolveProfile(ctx context.Context, authUserID string) (*entity.User, error) {
	profile, err := g.users.GetByAuthUserID(ctx, authUserID)
	if err != nil {
		if errors.Is(err, domain.ErrPolicyRecursion) {
			g.log.Error().Str("auth_user_id", authUserID).Msg("política de acceso recursiva, sesión no establecida")
		}
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileMissing
	}
	if !profile.IsActive {
		return nil, domain.ErrInactiveAccount
	}
	return profile, nil
}

// install crea la sesión viva del perfil: permisos resueltos, contenedor de
// estado, cola de avisos y coordinador, con el conjunto de trabajo cargado.
func (g *Gate) install(ctx context.Context, profile *entity.User) (*Session, error) {
	caps := permission.Resolve(profile.Role)
	st := state.NewStore()
	notices := notify.NewCenter(g.cfg.NoticeTTL)
	coordinator := leads.NewCoordinator(st, g.leadRepo, notices, profile.CompanyID, profile.ID, caps)
	if err := coordinator.Load(ctx); err != nil {
		notices.Close()
		return nil, err
	}
	companyName := ""
	if company, err := g.companies.GetByID(ctx, profile.CompanyID); err == nil && company != nil {
		companyName = company.Name
	}
	s := &Session{
		User:         *profile,
		CompanyName:  companyName,
		Capabilities: caps,
		Store:        st,
		Notices:      notices,
		Leads:        coordinator,
		StartedAt:    time.Now(),
	}
	g.registry.Put(profile.ID, s)
	return s, nil
}

// Login autentica credenciales, resuelve el perfil y establece la sesión.
// Devuelve el token de acceso y la sesión instalada.
func (g *Gate) Login(ctx context.Context, email, password string) (string, *Session, error) {
	account, err := g.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	profile, err := g.resolveProfile(ctx, account.ID)
	if err != nil {
		return "", nil, err
	}
	s, err := g.install(ctx, profile)
	if err != nil {
		return "", nil, err
	}
	token, err := jwt.Generate(g.cfg.JWTSecret, profile.ID, profile.CompanyID, profile.Role, g.cfg.JWTIssuer, g.cfg.JWTExpMinutes)
	if err != nil {
		g.registry.Remove(profile.ID)
		return "", nil, err
	}
	g.emit(EventLogin, profile.ID, profile.CompanyID)
	g.log.Info().Str("user_id", profile.ID).Str("company_id", profile.CompanyID).Msg("sesión establecida")
	return token, s, nil
}

// Resume devuelve la sesión viva del usuario; si el proceso se reinició y el
// token sigue siendo válido, la reconstruye desde el perfil persistido. Un
// perfil desactivado después de emitirse el token corta aquí.
func (g *Gate) Resume(ctx context.Context, userID string) (*Session, error) {
	if s, ok := g.registry.Get(userID); ok {
		return s, nil
	}
	profile, err := g.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileMissing
	}
	if !profile.IsActive {
		return nil, domain.ErrInactiveAccount
	}
	s, err := g.install(ctx, profile)
	if err != nil {
		return nil, err
	}
	g.emit(EventResume, profile.ID, profile.CompanyID)
	return s, nil
}

// Logout cierra la sesión del usuario y libera su estado. Idempotente.
func (g *Gate) Logout(userID string) {
	g.registry.Remove(userID)
	g.emit(EventLogout, userID, "")
	g.log.Info().Str("user_id", userID).Msg("sesión cerrada")
}
