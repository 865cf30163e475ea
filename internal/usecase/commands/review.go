package commands

import (
	"context"

	"hisitter/internal/domain/babysitter"
	domreview "hisitter/internal/domain/review"
	"hisitter/internal/domain/user"
	"hisitter/internal/infra"
	"hisitter/internal/pkg/errs"
	"hisitter/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateReview = errs.Mark(errs.New("service already has a review"), errs.ErrDuplicateReview)

type CreateReviewRequest struct {
	ServiceID uuid.UUID
	Rating    int
	Comment   string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, actor user.Actor) (*CreateReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewReviewUseCase(uow shared.UnitOfWork) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow}
}

// CreateReview posts the verdict and refreshes the babysitter's
// reputation in the same transaction, so a listed score can never be
// out of date with the reviews backing it.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, actor user.Actor) (*CreateReviewResult, error) {
	rating, err := domreview.NewRating(req.Rating)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, derr := tx.Reads().ServiceByID(ctx, req.ServiceID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return derr
		}

		exists, derr := tx.Reads().ReviewExistsForService(ctx, req.ServiceID)
		if derr != nil {
			return derr
		}
		if exists {
			return ErrDuplicateReview
		}

		rev, derr := domreview.NewReview(svc, actor, rating, comment)
		if derr != nil {
			return derr
		}

		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id

		profile, derr := tx.Reads().BabysitterByUserID(ctx, svc.BabysitterID())
		if derr != nil {
			return derr
		}
		ratings, derr := tx.Reads().RatingsForBabysitter(ctx, svc.BabysitterID())
		if derr != nil {
			return derr
		}

		reputation := babysitter.RecomputeReputation(profile.Reputation, ratings)
		return tx.Babysitters().UpdateReputation(ctx, tx.DB(), svc.BabysitterID(), reputation)
	})
	if err != nil {
		return nil, err
	}

	return &CreateReviewResult{ReviewID: createdID}, nil
}
