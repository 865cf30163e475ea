//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	domreview "hisitter/internal/domain/review"
	domservice "hisitter/internal/domain/service"
	"hisitter/internal/handler/httperr"
	"hisitter/internal/pkg/errs"
	"hisitter/internal/usecase/commands"
	"hisitter/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForResolvesTaxonomyMarks(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"service not found", commands.ErrServiceNotFound, http.StatusNotFound},
		{"babysitter not found", queries.ErrBabysitterNotFound, http.StatusNotFound},
		{"review not found", queries.ErrReviewNotFound, http.StatusNotFound},
		{"permission denied", domservice.ErrNotParticipant, http.StatusForbidden},
		{"invalid state", domservice.ErrAlreadyStarted, http.StatusConflict},
		{"duplicate review", domreview.ErrAlreadyReviewed, http.StatusConflict},
		{"double booking", commands.ErrSlotAlreadyBooked, http.StatusConflict},
		{"service not completed", domreview.ErrServiceNotCompleted, http.StatusUnprocessableEntity},
		{"end before start", domservice.ErrEndBeforeStart, http.StatusUnprocessableEntity},
		{"not bookable", commands.ErrNotBookable, http.StatusUnprocessableEntity},
		{"invalid rating", domreview.ErrInvalidRating, http.StatusBadRequest},
		{"invalid cursor", queries.ErrInvalidCursor, http.StatusBadRequest},
		{"wrapping keeps the mark", errs.Wrap(domservice.ErrNotStarted, "end transition"), http.StatusConflict},
		{"fresh precondition mark", errs.Mark(errs.New("departure window closed"), errs.ErrPreconditionFailed), http.StatusUnprocessableEntity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, msg, ok := httperr.StatusFor(c.err)
			require.True(t, ok)
			assert.Equal(t, c.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestStatusForLeavesUnmarkedErrorsAlone(t *testing.T) {
	_, _, ok := httperr.StatusFor(errs.New("opaque failure"))
	assert.False(t, ok)

	// Database failures carry a mark too, but one that must surface as a
	// plain 500 rather than leak through the taxonomy table.
	_, _, ok = httperr.StatusFor(commands.ErrDatabaseOperationFailed)
	assert.False(t, ok)
}
