package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/application/mapper"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// UserRepository implementación Postgres de repository.UserRepository.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository crea el repositorio de perfiles.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, auth_user_id, company_id, email, name, role, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var rec mapper.UserRecord
	err := row.Scan(&rec.ID, &rec.AuthUserID, &rec.CompanyID, &rec.Email, &rec.Name, &rec.Role, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	u := mapper.UserFromRecord(rec)
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO crm_users (id, auth_user_id, company_id, email, name, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.AuthUserID, user.CompanyID, user.Email, user.Name, user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt)
	return translateError(err)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM crm_users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) GetByAuthUserID(ctx context.Context, authUserID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM crm_users WHERE auth_user_id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, authUserID))
}

func (r *UserRepository) ListByCompany(ctx context.Context, companyID string) ([]entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM crm_users WHERE company_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		var rec mapper.UserRecord
		if err := rows.Scan(&rec.ID, &rec.AuthUserID, &rec.CompanyID, &rec.Email, &rec.Name, &rec.Role, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, translateError(err)
		}
		users = append(users, mapper.UserFromRecord(rec))
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE crm_users
		SET name = $1, role = $2, is_active = $3, updated_at = $4
		WHERE id = $5 AND company_id = $6`
	tag, err := r.pool.Exec(ctx, query, user.Name, user.Role, user.IsActive, user.UpdatedAt, user.ID, user.CompanyID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
