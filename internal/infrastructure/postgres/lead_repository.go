package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-api/internal/application/mapper"
	"github.com/jhoicas/crm-api/internal/domain"
	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

// LeadRepository implementación Postgres de repository.LeadRepository. Lee
// filas crudas y las pasa por el mapper; el resto del sistema nunca ve NULLs
// ni la columna de fecha heredada.
type LeadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository crea el repositorio de leads.
func NewLeadRepository(pool *pgxpool.Pool) repository.LeadRepository {
	return &LeadRepository{pool: pool}
}

const leadColumns = `id, name, company, email, phone, source, value, created_at, creation_date, stage, user_id, notes, company_id`

// El orden es por la columna vigente con la heredada de respaldo, los nuevos
// primero.
const leadOrder = ` ORDER BY COALESCE(created_at, creation_date) DESC NULLS LAST`

func (r *LeadRepository) list(ctx context.Context, query string, args ...any) ([]entity.Lead, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var records []mapper.LeadRecord
	for rows.Next() {
		var rec mapper.LeadRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Company, &rec.Email, &rec.Phone, &rec.Source,
			&rec.Value, &rec.CreatedAt, &rec.CreationDate, &rec.Stage, &rec.OwnerID, &rec.Notes, &rec.CompanyID); err != nil {
			return nil, translateError(err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err)
	}
	return mapper.LeadsFromRecords(records), nil
}

func (r *LeadRepository) ListByCompany(ctx context.Context, companyID string) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM crm_leads WHERE company_id = $1` + leadOrder
	return r.list(ctx, query, companyID)
}

func (r *LeadRepository) ListByOwner(ctx context.Context, companyID, ownerID string) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM crm_leads WHERE company_id = $1 AND user_id = $2` + leadOrder
	return r.list(ctx, query, companyID, ownerID)
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	rec := mapper.LeadToRecord(*lead)
	query := `
		INSERT INTO crm_leads (id, name, company, email, phone, source, value, created_at, stage, user_id, notes, company_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.Name, rec.Company, rec.Email, rec.Phone, rec.Source,
		rec.Value, rec.CreatedAt, rec.Stage, rec.OwnerID, rec.Notes, rec.CompanyID)
	return translateError(err)
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	rec := mapper.LeadToRecord(*lead)
	query := `
		UPDATE crm_leads
		SET name = $1, company = $2, email = $3, phone = $4, source = $5, value = $6, stage = $7, notes = $8
		WHERE id = $9 AND company_id = $10`
	tag, err := r.pool.Exec(ctx, query,
		rec.Name, rec.Company, rec.Email, rec.Phone, rec.Source, rec.Value, rec.Stage, rec.Notes,
		rec.ID, rec.CompanyID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) UpdateStage(ctx context.Context, companyID, id, stage string) error {
	query := `UPDATE crm_leads SET stage = $1 WHERE id = $2 AND company_id = $3`
	tag, err := r.pool.Exec(ctx, query, stage, id, companyID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, companyID, id string) error {
	query := `DELETE FROM crm_leads WHERE id = $1 AND company_id = $2`
	_, err := r.pool.Exec(ctx, query, id, companyID)
	return translateError(err)
}
