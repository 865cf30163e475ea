package request

import (
	"hisitter/internal/usecase/commands"
)

type SlotRequest struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Shift   string `json:"shift" binding:"required,oneof=morning afternoon evening night"`
}

type BabysitterProfileRequest struct {
	EducationDegree string        `json:"education_degree" binding:"required"`
	About           string        `json:"about" binding:"required"`
	HourlyRateCents int64         `json:"hourly_rate_cents" binding:"required,gt=0"`
	Slots           []SlotRequest `json:"slots" binding:"dive"`
}

type SignupRequest struct {
	Email       string                    `json:"email" binding:"required,email"`
	Username    string                    `json:"username" binding:"required,min=4,max=20"`
	Password    string                    `json:"password" binding:"required,min=8"`
	Role        string                    `json:"role" binding:"required,oneof=client babysitter"`
	FirstName   string                    `json:"first_name" binding:"required"`
	LastName    string                    `json:"last_name" binding:"required"`
	PhoneNumber string                    `json:"phone_number" binding:"required"`
	Address     string                    `json:"address"`
	Babysitter  *BabysitterProfileRequest `json:"babysitter,omitempty"`
}

func (r *SignupRequest) ToCommand() commands.SignupRequest {
	cmd := commands.SignupRequest{
		Email:       r.Email,
		Username:    r.Username,
		Password:    r.Password,
		Role:        r.Role,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
	}
	if r.Babysitter != nil {
		profile := commands.BabysitterProfileInput{
			EducationDegree: r.Babysitter.EducationDegree,
			About:           r.Babysitter.About,
			HourlyRateCents: r.Babysitter.HourlyRateCents,
			Slots:           toSlotInputs(r.Babysitter.Slots),
		}
		cmd.Babysitter = &profile
	}
	return cmd
}

func toSlotInputs(slots []SlotRequest) []commands.SlotInput {
	inputs := make([]commands.SlotInput, len(slots))
	for i, s := range slots {
		inputs[i] = commands.SlotInput{Weekday: s.Weekday, Shift: s.Shift}
	}
	return inputs
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}
