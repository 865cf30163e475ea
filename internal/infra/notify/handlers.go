package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"hisitter/internal/pkg/errs"
	"hisitter/internal/usecase/queries"

	"github.com/hibiken/asynq"
)

// Mailer abstracts the actual delivery channel. The default
// implementation only logs; a real SMTP or push sender plugs in behind
// the same interface.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to, subject, body string) error {
	slog.Info("sending email", "to", to, "subject", subject, "body", body)
	return nil
}

// NewMux wires the task handlers the worker process serves.
func NewMux(mailer Mailer, serviceQueries queries.ServiceReadStore, userQueries queries.UserReadStore) *asynq.ServeMux {
	h := &handlers{mailer: mailer, services: serviceQueries, users: userQueries}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingConfirmation, h.handleBookingConfirmation)
	mux.HandleFunc(TypeServiceEvent, h.handleServiceEvent)
	mux.HandleFunc(TypeVerificationEmail, h.handleVerificationEmail)
	return mux
}

type handlers struct {
	mailer   Mailer
	services queries.ServiceReadStore
	users    queries.UserReadStore
}

func (h *handlers) handleBookingConfirmation(ctx context.Context, task *asynq.Task) error {
	var p BookingConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return errs.Wrap(err, "invalid booking confirmation payload")
	}

	svc, err := h.services.FindByID(ctx, p.ServiceID)
	if err != nil {
		return err
	}
	client, err := h.users.FindByID(ctx, svc.ClientID)
	if err != nil {
		return err
	}

	return h.mailer.Send(ctx, client.Email,
		"Your booking is confirmed",
		"Your babysitting service on "+svc.Date.Format("2006-01-02")+" ("+svc.Shift+") is confirmed.")
}

func (h *handlers) handleServiceEvent(ctx context.Context, task *asynq.Task) error {
	var p ServiceEventPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return errs.Wrap(err, "invalid service event payload")
	}

	svc, err := h.services.FindByID(ctx, p.ServiceID)
	if err != nil {
		return err
	}
	client, err := h.users.FindByID(ctx, svc.ClientID)
	if err != nil {
		return err
	}

	var subject string
	switch p.Event {
	case "on_my_way":
		subject = "Your babysitter is on the way"
	case "started":
		subject = "Your babysitting service has started"
	case "completed":
		subject = "Your babysitting service is complete"
	default:
		slog.Warn("unknown service event", "event", p.Event)
		return nil
	}

	return h.mailer.Send(ctx, client.Email, subject,
		"Update for your service on "+svc.Date.Format("2006-01-02")+".")
}

func (h *handlers) handleVerificationEmail(ctx context.Context, task *asynq.Task) error {
	var p VerificationEmailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return errs.Wrap(err, "invalid verification email payload")
	}

	return h.mailer.Send(ctx, p.Email,
		"Verify your account",
		"Use this token to verify your account: "+p.Token)
}
