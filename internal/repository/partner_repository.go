package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/jmoiron/sqlx"
)

type PartnerRepository struct {
	db *sqlx.DB
}

func NewPartnerRepository(db *sqlx.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) Create(partner *models.Partner) error {
	partner.CreatedAt = time.Now()

	query := `
		INSERT INTO partners (partner_id, name, company_name, address, city, country,
			email, phone, ninea, rccm, logo_url, notes, created_at)
		VALUES (:partner_id, :name, :company_name, :address, :city, :country,
			:email, :phone, :ninea, :rccm, :logo_url, :notes, :created_at)`

	if _, err := r.db.NamedExec(query, partner); err != nil {
		return fmt.Errorf("failed to create partner: %w", err)
	}
	return nil
}

func (r *PartnerRepository) GetByID(partnerID string) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.Get(&partner, `SELECT * FROM partners WHERE partner_id = $1`, partnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	return &partner, nil
}

func (r *PartnerRepository) List() ([]models.Partner, error) {
	var partners []models.Partner
	query := `SELECT * FROM partners ORDER BY name`

	if err := r.db.Select(&partners, query); err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return partners, nil
}

func (r *PartnerRepository) Update(partner *models.Partner) error {
	now := time.Now()
	partner.UpdatedAt = &now

	query := `
		UPDATE partners
		SET name = :name,
			company_name = :company_name,
			address = :address,
			city = :city,
			country = :country,
			email = :email,
			phone = :phone,
			ninea = :ninea,
			rccm = :rccm,
			logo_url = :logo_url,
			notes = :notes,
			updated_at = :updated_at
		WHERE partner_id = :partner_id`

	result, err := r.db.NamedExec(query, partner)
	if err != nil {
		return fmt.Errorf("failed to update partner: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a partner unless commercial documents still reference it.
func (r *PartnerRepository) Delete(partnerID string) error {
	referenced, err := r.CountDocuments(partnerID)
	if err != nil {
		return err
	}
	if referenced > 0 {
		return models.ErrPartnerInUse
	}

	result, err := r.db.Exec(`DELETE FROM partners WHERE partner_id = $1`, partnerID)
	if err != nil {
		return fmt.Errorf("failed to delete partner: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// CountDocuments counts quotes, invoices and contracts referencing the
// partner.
func (r *PartnerRepository) CountDocuments(partnerID string) (int, error) {
	var count int
	query := `
		SELECT (SELECT COUNT(*) FROM quotes WHERE partner_id = $1)
			+ (SELECT COUNT(*) FROM invoices WHERE partner_id = $1)
			+ (SELECT COUNT(*) FROM contracts WHERE partner_id = $1)`

	if err := r.db.Get(&count, query, partnerID); err != nil {
		return 0, fmt.Errorf("failed to count partner documents: %w", err)
	}
	return count, nil
}

func (r *PartnerRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM partners`); err != nil {
		return 0, fmt.Errorf("failed to count partners: %w", err)
	}
	return count, nil
}
