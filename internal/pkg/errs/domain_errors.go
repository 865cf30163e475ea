package errs

import "errors"

// Sentinel errors shared between usecase layers and the HTTP boundary.
// Domain and usecase errors are marked with exactly one of these at
// their definition site, and httperr.StatusFor resolves the mark to a
// status code. Check marks with errs.Is; the standard errors.Is does
// not follow them.
var (
	// Actor errors
	ErrPermissionDenied = errors.New("permission denied")

	// Lifecycle errors
	ErrInvalidState       = errors.New("transition not allowed from current state")
	ErrPreconditionFailed = errors.New("transition precondition failed")
	ErrInvalidInterval    = errors.New("end must be after start")

	// Booking errors
	ErrNotBookable     = errors.New("babysitter not bookable for this date and shift")
	ErrBookingConflict = errors.New("date and shift already booked")

	// Review errors
	ErrStillActive     = errors.New("service has not ended yet")
	ErrDuplicateReview = errors.New("review already exists for this service")

	// Lookup errors
	ErrUserNotFound       = errors.New("user not found")
	ErrBabysitterNotFound = errors.New("babysitter not found")
	ErrServiceNotFound    = errors.New("service not found")
	ErrReviewNotFound     = errors.New("review not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
