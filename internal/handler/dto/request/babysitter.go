package request

import (
	"hisitter/internal/usecase/commands"
)

type UpdateScheduleRequest struct {
	Slots []SlotRequest `json:"slots" binding:"required,dive"`
}

func (r *UpdateScheduleRequest) ToSlotInputs() []commands.SlotInput {
	return toSlotInputs(r.Slots)
}
