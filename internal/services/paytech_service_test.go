package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/Amadoujf/nouveauyama/internal/config"
	"github.com/Amadoujf/nouveauyama/internal/models"
	"github.com/stretchr/testify/assert"
)

func ipnSignature(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:])
}

func TestHandleIPN_RejectsMissingSignature(t *testing.T) {
	svc := NewPayTechService(config.PayTechConfig{APIKey: "pt_cle_test"}, nil)

	_, err := svc.HandleIPN(IPNEvent{TypeEvent: "sale_complete", RefCommand: "CMD-001"})
	assert.ErrorIs(t, err, models.ErrBadSignature)
}

func TestHandleIPN_RejectsWrongSignature(t *testing.T) {
	svc := NewPayTechService(config.PayTechConfig{APIKey: "pt_cle_test"}, nil)

	_, err := svc.HandleIPN(IPNEvent{
		TypeEvent:  "sale_complete",
		RefCommand: "CMD-001",
		APIKeySHA:  ipnSignature("une_autre_cle"),
	})
	assert.ErrorIs(t, err, models.ErrBadSignature)
}

func TestHandleIPN_ValidSignaturePasses(t *testing.T) {
	svc := NewPayTechService(config.PayTechConfig{APIKey: "pt_cle_test"}, nil)

	// An unknown event type fails after the signature check, which is enough
	// to show a correctly signed event gets through.
	_, err := svc.HandleIPN(IPNEvent{
		TypeEvent:  "sale_unknown",
		RefCommand: "CMD-001",
		APIKeySHA:  ipnSignature("pt_cle_test"),
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrBadSignature)
	assert.Contains(t, err.Error(), "unknown ipn event type")
}

func TestHandleIPN_SignatureCaseInsensitive(t *testing.T) {
	svc := NewPayTechService(config.PayTechConfig{APIKey: "pt_cle_test"}, nil)

	_, err := svc.HandleIPN(IPNEvent{
		TypeEvent:  "sale_unknown",
		RefCommand: "CMD-001",
		APIKeySHA:  strings.ToUpper(ipnSignature("pt_cle_test")),
	})
	assert.NotErrorIs(t, err, models.ErrBadSignature)
}

func TestHandleIPN_RequiresRefCommand(t *testing.T) {
	svc := NewPayTechService(config.PayTechConfig{APIKey: "pt_cle_test"}, nil)

	_, err := svc.HandleIPN(IPNEvent{
		TypeEvent: "sale_complete",
		APIKeySHA: ipnSignature("pt_cle_test"),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ref_command")
}
