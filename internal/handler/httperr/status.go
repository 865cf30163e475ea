package httperr

import (
	"net/http"

	"hisitter/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var statusByMark = []struct {
	mark    error
	status  int
	message string
}{
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrBabysitterNotFound, http.StatusNotFound, "Babysitter not found"},
	{errs.ErrServiceNotFound, http.StatusNotFound, "Service not found"},
	{errs.ErrReviewNotFound, http.StatusNotFound, "Review not found"},
	{errs.ErrPermissionDenied, http.StatusForbidden, "Permission denied"},
	{errs.ErrInvalidState, http.StatusConflict, "Operation not allowed in the current state"},
	{errs.ErrDuplicateReview, http.StatusConflict, "Service already has a review"},
	{errs.ErrBookingConflict, http.StatusConflict, "Date and shift already booked"},
	{errs.ErrPreconditionFailed, http.StatusUnprocessableEntity, "Precondition failed"},
	{errs.ErrInvalidInterval, http.StatusUnprocessableEntity, "End time must be after start time"},
	{errs.ErrStillActive, http.StatusUnprocessableEntity, "Service is not completed"},
	{errs.ErrNotBookable, http.StatusUnprocessableEntity, "Babysitter is not available for that date and shift"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request data"},
}

// StatusFor resolves an error to a status code and generic message via
// the errs sentinel it is marked with. Handlers keep explicit cases for
// errors that deserve a tailored message and use this as the fallback
// before giving up with a 500.
func StatusFor(err error) (int, string, bool) {
	for _, entry := range statusByMark {
		if errs.Is(err, entry.mark) {
			return entry.status, entry.message, true
		}
	}
	return 0, "", false
}

// AbortWithMappedError translates err through StatusFor, defaulting to
// an internal server error when no taxonomy mark is attached.
func AbortWithMappedError(c *gin.Context, err error) {
	if status, msg, ok := StatusFor(err); ok {
		AbortWithError(c, status, err, msg, nil)
		return
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
