package repository

import (
	"testing"

	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestContractSignAllowedFromDraft(t *testing.T) {
	assert.Contains(t, contractSignFrom, models.ContractDraft, "a draft contract must be signable without activating it first")
	assert.Contains(t, contractSignFrom, models.ContractActive)
	assert.Contains(t, contractSignFrom, models.ContractSigned, "signing twice is a no-op, not an error")
	assert.NotContains(t, contractSignFrom, models.ContractExpired)
}

func TestContractActivateAllowedFromDraftOnly(t *testing.T) {
	assert.Equal(t, []models.ContractStatus{models.ContractDraft}, contractActivateFrom)
}

func TestContractExpireNotAllowedFromDraft(t *testing.T) {
	assert.NotContains(t, contractExpireFrom, models.ContractDraft)
	assert.Contains(t, contractExpireFrom, models.ContractActive)
	assert.Contains(t, contractExpireFrom, models.ContractSigned)
}

func TestStatusSetRendersInList(t *testing.T) {
	assert.Equal(t, "'draft', 'active', 'signed'", statusSet(contractSignFrom))
	assert.Equal(t, "'draft'", statusSet(contractActivateFrom))
}
