package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// AccountRepository implementación Postgres de repository.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository crea el repositorio de credenciales.
func NewAccountRepository(pool *pgxpool.Pool) repository.AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(ctx context.Context, account *entity.AuthAccount) error {
	query := `
		INSERT INTO auth_accounts (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, account.ID, account.Email, account.PasswordHash, account.CreatedAt)
	return translateError(err)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.AuthAccount, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM auth_accounts
		WHERE email = $1`
	var a entity.AuthAccount
	err := r.pool.QueryRow(ctx, query, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &a, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (*entity.AuthAccount, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM auth_accounts
		WHERE id = $1`
	var a entity.AuthAccount
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &a, nil
}
