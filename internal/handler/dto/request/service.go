package request

import (
	"time"

	"github.com/google/uuid"

	"hisitter/internal/usecase/commands"
)

type BookServiceRequest struct {
	BabysitterID   uuid.UUID  `json:"babysitter_id" binding:"required"`
	Date           string     `json:"date" binding:"required"`
	Shift          string     `json:"shift" binding:"required,oneof=morning afternoon evening night"`
	Address        string     `json:"address" binding:"required"`
	CountChildren  int        `json:"count_children" binding:"required,min=1,max=10"`
	SpecialCares   string     `json:"special_cares"`
	ScheduledStart *time.Time `json:"scheduled_start,omitempty"`
}

func (r *BookServiceRequest) ToCommand() (commands.BookServiceRequest, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return commands.BookServiceRequest{}, err
	}
	return commands.BookServiceRequest{
		BabysitterID:   r.BabysitterID,
		Date:           date,
		Shift:          r.Shift,
		Address:        r.Address,
		CountChildren:  r.CountChildren,
		SpecialCares:   r.SpecialCares,
		ScheduledStart: r.ScheduledStart,
	}, nil
}
