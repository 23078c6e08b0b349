package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-api/internal/application/authsvc"
	"github.com/jhoicas/crm-api/internal/application/dto"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
	"github.com/jhoicas/crm-api/pkg/logger"
)

// UserUseCase administración de empresas y perfiles.
type UserUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	auth      *authsvc.Service
	log       *logger.Logger
}

// NewUserUseCase crea el caso de uso de usuarios.
func NewUserUseCase(users repository.UserRepository, companies repository.CompanyRepository, auth *authsvc.Service, log *logger.Logger) *UserUseCase {
	return &UserUseCase{users: users, companies: companies, auth: auth, log: log}
}

// Register da de alta una empresa nueva con su primer usuario administrador:
// empresa, credencial y perfil, en ese orden.
func (uc *UserUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*entity.User, error) {
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.NewString(),
		Name:      req.CompanyName,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	account, err := uc.auth.CreateAccount(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:         uuid.NewString(),
		AuthUserID: account.ID,
		CompanyID:  company.ID,
		Email:      req.Email,
		Name:       req.Name,
		Role:       entity.RoleAdmin,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_id", company.ID).Str("user_id", user.ID).Msg("empresa registrada")
	return user, nil
}

// ListUsers devuelve los perfiles de la empresa.
func (uc *UserUseCase) ListUsers(ctx context.Context, companyID string) ([]entity.User, error) {
	return uc.users.ListByCompany(ctx, companyID)
}

// UpdateUser aplica los campos presentes del request al perfil. Solo se
// pueden tocar perfiles de la misma empresa.
func (uc *UserUseCase) UpdateUser(ctx context.Context, companyID, userID string, req dto.UpdateUserRequest) (*entity.User, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrUserNotFound
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
