package notify

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Task types carried on the Redis-backed queue.
const (
	TypeBookingConfirmation = "email:booking_confirmation"
	TypeServiceEvent        = "email:service_event"
	TypeVerificationEmail   = "email:verification"
)

type BookingConfirmationPayload struct {
	ServiceID uuid.UUID `json:"service_id"`
}

type ServiceEventPayload struct {
	ServiceID uuid.UUID `json:"service_id"`
	Event     string    `json:"event"`
}

type VerificationEmailPayload struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Token  string    `json:"token"`
}

func NewBookingConfirmationTask(payload BookingConfirmationPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmation, b, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)), nil
}

func NewServiceEventTask(payload ServiceEventPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeServiceEvent, b, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)), nil
}

func NewVerificationEmailTask(payload VerificationEmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeVerificationEmail, b, asynq.MaxRetry(5), asynq.Timeout(30*time.Second)), nil
}
