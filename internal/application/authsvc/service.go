// Package authsvc es el colaborador de autenticación: custodia credenciales
// y las verifica. No sabe nada de perfiles CRM ni de sesiones; eso es del
// guardián de sesión.
package authsvc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// Service verifica y registra credenciales.
type Service struct {
	accounts repository.AccountRepository
	log      *logger.Logger
}

// NewService crea el servicio de credenciales.
func NewService(accounts repository.AccountRepository, log *logger.Logger) *Service {
	return &Service{accounts: accounts, log: log}
}

// SignInWithPassword verifica email y contraseña. Credencial inexistente y
// contraseña errada responden igual (ErrUnauthorized): el llamador no puede
// distinguir cuál de las dos falló.
func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (*entity.AuthAccount, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return account, nil
}

// CreateAccount registra una credencial nueva con la contraseña hasheada.
func (s *Service) CreateAccount(ctx context.Context, email, password string) (*entity.AuthAccount, error) {
	existing, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	account := &entity.AuthAccount{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	s.log.Info().Str("email", email).Msg("credencial registrada")
	return account, nil
}
