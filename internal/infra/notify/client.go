package notify

import (
	"context"

	"hisitter/internal/pkg/config"
	"hisitter/internal/pkg/errs"
	"hisitter/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

func RedisClientOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.QueueDB,
	}
}

func NewAsynqClient(cfg config.RedisConfig) (*asynq.Client, func()) {
	client := asynq.NewClient(RedisClientOpt(cfg))
	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup
}

// AsynqNotifier enqueues delivery work; the worker process drains it.
type AsynqNotifier struct {
	client *asynq.Client
}

func NewAsynqNotifier(client *asynq.Client) commands.Notifier {
	return &AsynqNotifier{client: client}
}

func (n *AsynqNotifier) BookingConfirmed(ctx context.Context, serviceID uuid.UUID) error {
	task, err := NewBookingConfirmationTask(BookingConfirmationPayload{ServiceID: serviceID})
	if err != nil {
		return errs.Wrap(err, "failed to build booking confirmation task")
	}
	return n.enqueue(ctx, task)
}

func (n *AsynqNotifier) ServiceEvent(ctx context.Context, serviceID uuid.UUID, event string) error {
	task, err := NewServiceEventTask(ServiceEventPayload{ServiceID: serviceID, Event: event})
	if err != nil {
		return errs.Wrap(err, "failed to build service event task")
	}
	return n.enqueue(ctx, task)
}

func (n *AsynqNotifier) VerificationEmail(ctx context.Context, userID uuid.UUID, email, token string) error {
	task, err := NewVerificationEmailTask(VerificationEmailPayload{UserID: userID, Email: email, Token: token})
	if err != nil {
		return errs.Wrap(err, "failed to build verification email task")
	}
	return n.enqueue(ctx, task)
}

func (n *AsynqNotifier) enqueue(ctx context.Context, task *asynq.Task) error {
	if _, err := n.client.EnqueueContext(ctx, task); err != nil {
		return errs.Wrap(err, "failed to enqueue task")
	}
	return nil
}
