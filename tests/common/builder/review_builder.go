//go:build unit || e2e

package builder

import (
	"time"

	domreview "hisitter/internal/domain/review"
	domservice "hisitter/internal/domain/service"
	"hisitter/internal/domain/user"
	reqdto "hisitter/internal/handler/dto/request"
	"hisitter/internal/usecase/commands"
	"hisitter/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ServiceID      uuid.UUID
	ClientID       uuid.UUID
	ClientUsername string
	Rating         int
	Comment        string
	CreatedAt      time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ServiceID:      uuid.New(),
		ClientID:       uuid.New(),
		ClientUsername: "testclient",
		Rating:         5,
		Comment:        "Excellent babysitter!",
		CreatedAt:      time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods

// BuildDomain reviews a freshly completed service owned by ClientID.
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}

	started := time.Date(2026, time.June, 6, 18, 0, 0, 0, time.UTC)
	svc := NewServiceBuilder().
		WithClientID(r.ClientID).
		AsCompleted(started, started.Add(2*time.Hour), 5000).
		BuildReconstructed()

	actor := user.NewActor(r.ClientID, mustRole("client"))
	return domreview.NewReview(svc, actor, rating, comment)
}

func (r *ReviewBuilder) BuildDomainFor(svc *domservice.Service, actor user.Actor) (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(svc, actor, rating, comment)
}

func (r *ReviewBuilder) BuildCreateCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		ServiceID: r.ServiceID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ServiceID: r.ServiceID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:             uuid.New(),
		ServiceID:      r.ServiceID,
		ClientID:       r.ClientID,
		ClientUsername: r.ClientUsername,
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithServiceID(id uuid.UUID) *ReviewBuilder {
	r.ServiceID = id
	return r
}

func (r *ReviewBuilder) WithClientID(id uuid.UUID) *ReviewBuilder {
	r.ClientID = id
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func mustRole(s string) user.Role {
	role, err := user.NewRole(s)
	if err != nil {
		panic(err)
	}
	return role
}
