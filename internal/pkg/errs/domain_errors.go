package errs

import "errors"

// Sentinel errors shared by the console usecase layers
var (
	// Form errors
	ErrFormInvalid     = errors.New("form validation failed")
	ErrEditorNotOpen   = errors.New("editor is not open")
	ErrInvalidLookupID = errors.New("invalid lookup identifier")

	// Store errors
	ErrEntryNotFound = errors.New("entry not found in view")

	// Workflow errors
	ErrStatusTransitionFailed = errors.New("status transition failed after field update")
	ErrDeleteDeclined         = errors.New("delete not confirmed")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrForbiddenRole   = errors.New("role not allowed")

	// Gateway errors
	ErrGatewayFailed = errors.New("gateway call failed")
)
