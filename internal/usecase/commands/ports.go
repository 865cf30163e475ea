package commands

import (
	"context"

	"github.com/google/uuid"
)

// Notifier hands delivery work to the background queue. Enqueue
// failures are logged and swallowed: a lost email never fails the
// command that triggered it.
type Notifier interface {
	BookingConfirmed(ctx context.Context, serviceID uuid.UUID) error
	ServiceEvent(ctx context.Context, serviceID uuid.UUID, event string) error
	VerificationEmail(ctx context.Context, userID uuid.UUID, email, token string) error
}

// Service lifecycle events carried on the notification queue.
const (
	EventOnMyWay   = "on_my_way"
	EventStarted   = "started"
	EventCompleted = "completed"
)
