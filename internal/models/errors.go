package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced document or partner does
	// not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidTransition is returned when a status mutation is requested
	// from a state that does not allow it.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyConverted is returned on a second attempt to convert the
	// same quote into an invoice.
	ErrAlreadyConverted = errors.New("quote already converted to invoice")

	// ErrDuplicateNumber is surfaced by the repositories when an insert
	// collides on a document number unique index.
	ErrDuplicateNumber = errors.New("duplicate document number")

	// ErrAlreadyPlayed is returned when an email has already used its one
	// spin on the wheel.
	ErrAlreadyPlayed = errors.New("email already played")

	// ErrEmailTaken is returned on registration with an existing email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrOutOfStock is returned when a cart or order operation asks for
	// more units than the product has.
	ErrOutOfStock = errors.New("insufficient stock")

	// ErrPartnerInUse guards partner deletion while documents reference it.
	ErrPartnerInUse = errors.New("partner referenced by documents")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrBadSignature rejects webhook notifications whose signature does
	// not match the configured gateway key.
	ErrBadSignature = errors.New("signature mismatch")
)

// InvalidLineItemError reports which field of a line item failed validation.
type InvalidLineItemError struct {
	Index int
	Field string
}

func (e *InvalidLineItemError) Error() string {
	return fmt.Sprintf("invalid line item %d: field %s", e.Index, e.Field)
}
