//go:build unit

package review_test

import (
	"testing"
	"time"

	domreview "hisitter/internal/domain/review"
	"hisitter/internal/domain/user"
	"hisitter/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	cases := []struct {
		name  string
		value int
		errIs error
	}{
		{"minimum valid rating", 1, nil},
		{"maximum valid rating", 5, nil},
		{"zero rating", 0, domreview.ErrInvalidRating},
		{"above maximum", 6, domreview.ErrInvalidRating},
		{"negative rating", -1, domreview.ErrInvalidRating},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rating, err := domreview.NewRating(c.value)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.value, rating.Int())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewComment(t *testing.T) {
	t.Run("empty comment is allowed", func(t *testing.T) {
		comment, err := domreview.NewComment("")
		require.NoError(t, err)
		assert.Equal(t, "", comment.String())
	})

	t.Run("whitespace trims to empty", func(t *testing.T) {
		comment, err := domreview.NewComment("   ")
		require.NoError(t, err)
		assert.Equal(t, "", comment.String())
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		comment, err := domreview.NewComment("  great sitter  ")
		require.NoError(t, err)
		assert.Equal(t, "great sitter", comment.String())
	})

	t.Run("maximum length", func(t *testing.T) {
		long := make([]byte, domreview.MaxCommentLength)
		for i := range long {
			long[i] = 'a'
		}
		_, err := domreview.NewComment(string(long))
		require.NoError(t, err)
	})

	t.Run("over maximum length", func(t *testing.T) {
		long := make([]byte, domreview.MaxCommentLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := domreview.NewComment(string(long))
		require.ErrorIs(t, err, domreview.ErrCommentTooLong)
	})
}

func TestNewReview(t *testing.T) {
	started := time.Date(2026, time.June, 6, 18, 0, 0, 0, time.UTC)
	ended := started.Add(2 * time.Hour)

	clientRole, _ := user.NewRole("client")
	babysitterRole, _ := user.NewRole("babysitter")

	t.Run("basic success case", func(t *testing.T) {
		review, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, review)

		assert.NotEqual(t, uuid.Nil, review.ID())
		assert.Equal(t, 5, review.Rating().Int())
		assert.Equal(t, "Excellent babysitter!", review.Comment().String())
	})

	t.Run("only the service client can review", func(t *testing.T) {
		b := builder.NewServiceBuilder().AsCompleted(started, ended, 5000)
		svc := b.BuildReconstructed()

		_, err := builder.NewReviewBuilder().BuildDomainFor(svc, user.NewActor(b.BabysitterID, babysitterRole))
		require.ErrorIs(t, err, domreview.ErrNotServiceClient)

		_, err = builder.NewReviewBuilder().BuildDomainFor(svc, user.NewActor(uuid.New(), clientRole))
		require.ErrorIs(t, err, domreview.ErrNotServiceClient)
	})

	t.Run("uncompleted service cannot be reviewed", func(t *testing.T) {
		for _, b := range []*builder.ServiceBuilder{
			builder.NewServiceBuilder(),
			builder.NewServiceBuilder().AsOnMyWay(started),
			builder.NewServiceBuilder().AsInProgress(started),
		} {
			svc := b.BuildReconstructed()
			_, err := builder.NewReviewBuilder().BuildDomainFor(svc, user.NewActor(b.ClientID, clientRole))
			require.ErrorIs(t, err, domreview.ErrServiceNotCompleted)
		}
	})

	t.Run("review binds to the service", func(t *testing.T) {
		b := builder.NewServiceBuilder().AsCompleted(started, ended, 5000)
		svc := b.BuildReconstructed()

		review, err := builder.NewReviewBuilder().BuildDomainFor(svc, user.NewActor(b.ClientID, clientRole))
		require.NoError(t, err)
		assert.Equal(t, svc.ID(), review.ServiceID())
		assert.Equal(t, b.ClientID, review.ClientID())
	})
}
