package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/jmoiron/sqlx"
)

type ContractRepository struct {
	db *sqlx.DB
}

func NewContractRepository(db *sqlx.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(contract *models.Contract) error {
	contract.CreatedAt = time.Now()

	query := `
		INSERT INTO contracts (contract_id, contract_number, partner_id, contract_type,
			title, description, clauses, start_date, end_date, value, notes, status, created_at)
		VALUES (:contract_id, :contract_number, :partner_id, :contract_type,
			:title, :description, :clauses, :start_date, :end_date, :value, :notes, :status, :created_at)`

	if _, err := r.db.NamedExec(query, contract); err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateNumber
		}
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

func (r *ContractRepository) GetByID(contractID string) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.Get(&contract, `SELECT * FROM contracts WHERE contract_id = $1`, contractID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return &contract, nil
}

func (r *ContractRepository) List(status models.ContractStatus, contractType models.ContractType, partnerID string) ([]models.Contract, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, status)
		argPos++
	}
	if contractType != "" {
		conditions = append(conditions, fmt.Sprintf("contract_type = $%d", argPos))
		args = append(args, contractType)
		argPos++
	}
	if partnerID != "" {
		conditions = append(conditions, fmt.Sprintf("partner_id = $%d", argPos))
		args = append(args, partnerID)
		argPos++
	}

	query := fmt.Sprintf(`SELECT * FROM contracts WHERE %s ORDER BY created_at DESC`,
		strings.Join(conditions, " AND "))

	var contracts []models.Contract
	if err := r.db.Select(&contracts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return contracts, nil
}

// Allowed source statuses per contract transition. A draft can be signed
// directly; activation is an optional intermediate step.
var (
	contractActivateFrom = []models.ContractStatus{models.ContractDraft}
	contractSignFrom     = []models.ContractStatus{models.ContractDraft, models.ContractActive, models.ContractSigned}
	contractExpireFrom   = []models.ContractStatus{models.ContractActive, models.ContractSigned}
)

// statusSet renders an allowed-from slice as a SQL IN list.
func statusSet(statuses []models.ContractStatus) string {
	quoted := make([]string, len(statuses))
	for i, status := range statuses {
		quoted[i] = "'" + string(status) + "'"
	}
	return strings.Join(quoted, ", ")
}

func (r *ContractRepository) Activate(contractID string) (*models.Contract, error) {
	query := fmt.Sprintf(`
		UPDATE contracts
		SET status = 'active', updated_at = now()
		WHERE contract_id = $1 AND status IN (%s)
		RETURNING *`, statusSet(contractActivateFrom))

	return r.transition(query, contractID)
}

// Sign records the signature timestamp. Signing twice keeps the first
// timestamp.
func (r *ContractRepository) Sign(contractID string) (*models.Contract, error) {
	query := fmt.Sprintf(`
		UPDATE contracts
		SET status = 'signed',
			signed_at = COALESCE(signed_at, now()),
			updated_at = now()
		WHERE contract_id = $1 AND status IN (%s)
		RETURNING *`, statusSet(contractSignFrom))

	return r.transition(query, contractID)
}

func (r *ContractRepository) Expire(contractID string) (*models.Contract, error) {
	query := fmt.Sprintf(`
		UPDATE contracts
		SET status = 'expired', updated_at = now()
		WHERE contract_id = $1 AND status IN (%s)
		RETURNING *`, statusSet(contractExpireFrom))

	return r.transition(query, contractID)
}

func (r *ContractRepository) SetPDFURL(contractID, url string) error {
	return setPDFURL(r.db, "contracts", "contract_id", contractID, url)
}

func (r *ContractRepository) StatusCounts() ([]models.StatusCount, error) {
	return statusCounts(r.db, "contracts")
}

func (r *ContractRepository) Delete(contractID string) error {
	result, err := r.db.Exec(`DELETE FROM contracts WHERE contract_id = $1`, contractID)
	if err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
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

func (r *ContractRepository) transition(query, contractID string) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.Get(&contract, query, contractID)
	if err == nil {
		return &contract, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to update contract status: %w", err)
	}

	if _, gerr := r.GetByID(contractID); gerr != nil {
		return nil, gerr
	}
	return nil, models.ErrInvalidTransition
}
