package errs

import "errors"

// Sentinel errors shared by the view-model layer
var (
	// Session errors
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAdminRequired          = errors.New("admin role required")

	// Catalog errors
	ErrFetchFailed = errors.New("fetch failed")

	// Reservation flow errors
	ErrValidationFailed     = errors.New("validation failed")
	ErrSubmitInProgress     = errors.New("reservation submit already in progress")
	ErrCloseWhileSubmitting = errors.New("reservation flow cannot be closed while submitting")
	ErrFlowNotFound         = errors.New("reservation flow not found")
	ErrFlowFinished         = errors.New("reservation flow already finished")
	ErrRequesterChanged     = errors.New("signed-in user changed, review the reservation form")

	// Simulation errors
	ErrNoLotSelected = errors.New("no parking lot selected")
	ErrUnknownAction = errors.New("unknown simulation action")
)
