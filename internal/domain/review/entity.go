package review

import (
	"errors"
	"time"

	"hisitter/internal/domain/service"
	"hisitter/internal/domain/user"
	"hisitter/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrServiceNotCompleted = errs.Mark(errors.New("only a completed service can be reviewed"), errs.ErrStillActive)
	ErrNotServiceClient    = errs.Mark(errors.New("only the client of the service can review it"), errs.ErrPermissionDenied)
	ErrAlreadyReviewed     = errs.Mark(errors.New("service already has a review"), errs.ErrDuplicateReview)
)

// Review is a client's one-time verdict on a completed service. A
// service carries at most one review, which is what makes reputation a
// well-defined mean.
type Review struct {
	id        uuid.UUID
	serviceID uuid.UUID
	clientID  uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

// NewReview checks eligibility against the service itself: the actor
// must be its client and the service must be completed. Uniqueness per
// service is the repository's job (a unique index backs it).
func NewReview(svc *service.Service, actor user.Actor, rating Rating, comment Comment) (*Review, error) {
	if actor.ID != svc.ClientID() {
		return nil, ErrNotServiceClient
	}
	if !svc.IsCompleted() {
		return nil, ErrServiceNotCompleted
	}

	return &Review{
		id:        uuid.New(),
		serviceID: svc.ID(),
		clientID:  actor.ID,
		rating:    rating,
		comment:   comment,
	}, nil
}

func ReconstructReview(
	id, serviceID, clientID uuid.UUID,
	rating Rating,
	comment Comment,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:        id,
		serviceID: serviceID,
		clientID:  clientID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) ServiceID() uuid.UUID { return r.serviceID }
func (r *Review) ClientID() uuid.UUID  { return r.clientID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
