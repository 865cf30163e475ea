package request

import (
	"github.com/google/uuid"

	"hisitter/internal/usecase/commands"
)

type CreateReviewRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		ServiceID: r.ServiceID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}
