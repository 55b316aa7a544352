package errors

import (
	"encoding/json"
)

// ValidationErr signals malformed or missing required input, caller's fault
type ValidationErr struct {
	target  string
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

func (e *ValidationErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

func NewValidationErr(target string, msg string) error {
	return &ValidationErr{
		target:  target,
		message: msg,
	}
}

// EntryNotFoundErr signals that referenced customer or reward does not exist
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// InsufficientPointsErr signals a debit which would drive balance negative
type InsufficientPointsErr struct {
	message string
}

func (e *InsufficientPointsErr) Error() string {
	return e.message
}

func NewInsufficientPointsErr(msg string) *InsufficientPointsErr {
	return &InsufficientPointsErr{message: msg}
}

// IneligibleRedemptionErr signals redemption of inactive reward or
// redemption with insufficient balance at redemption time
type IneligibleRedemptionErr struct {
	message string
}

func (e *IneligibleRedemptionErr) Error() string {
	return e.message
}

func NewIneligibleRedemptionErr(msg string) *IneligibleRedemptionErr {
	return &IneligibleRedemptionErr{message: msg}
}
