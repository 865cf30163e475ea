package commands

import (
	"context"
	"log/slog"
	"time"

	"hisitter/internal/domain/availability"
	domservice "hisitter/internal/domain/service"
	"hisitter/internal/domain/user"
	"hisitter/internal/infra"
	"hisitter/internal/pkg/clock"
	"hisitter/internal/pkg/errs"
	"hisitter/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBabysitterNotFound      = errs.Mark(errs.New("babysitter not found"), errs.ErrBabysitterNotFound)
	ErrServiceNotFound         = errs.Mark(errs.New("service not found"), errs.ErrServiceNotFound)
	ErrNotBookable             = errs.Mark(errs.New("babysitter is not available for that date and shift"), errs.ErrNotBookable)
	ErrSlotAlreadyBooked       = errs.Mark(errs.New("babysitter is already booked for that date and shift"), errs.ErrBookingConflict)
	ErrClientsOnly             = errs.Mark(errs.New("only clients can book services"), errs.ErrPermissionDenied)
	ErrServiceConflict         = errs.Mark(errs.New("service was modified concurrently"), errs.ErrInvalidState)
	ErrDatabaseOperationFailed = errs.Mark(errs.New("database operation failed"), errs.ErrDatabaseOperationFailed)
)

type BookServiceRequest struct {
	BabysitterID   uuid.UUID
	Date           time.Time
	Shift          string
	Address        string
	CountChildren  int
	SpecialCares   string
	ScheduledStart *time.Time
}

type BookServiceResult struct {
	ServiceID uuid.UUID
}

type ServiceCommands interface {
	BookService(ctx context.Context, req BookServiceRequest, actor user.Actor) (*BookServiceResult, error)
	MarkOnMyWay(ctx context.Context, serviceID uuid.UUID, actor user.Actor) error
	StartService(ctx context.Context, serviceID uuid.UUID, actor user.Actor) error
	EndService(ctx context.Context, serviceID uuid.UUID, actor user.Actor) error
	DeleteService(ctx context.Context, serviceID uuid.UUID, actor user.Actor) error
}

type serviceUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	notifier Notifier
}

func NewServiceUseCase(uow shared.UnitOfWork, clk clock.Clock, notifier Notifier) ServiceCommands {
	return &serviceUseCaseImpl{uow: uow, clock: clk, notifier: notifier}
}

func (uc *serviceUseCaseImpl) BookService(ctx context.Context, req BookServiceRequest, actor user.Actor) (*BookServiceResult, error) {
	if !actor.IsClient() {
		return nil, ErrClientsOnly
	}

	shift, err := availability.NewShift(req.Shift)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().BabysitterByUserID(ctx, req.BabysitterID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBabysitterNotFound
			}
			return derr
		}

		schedule, derr := tx.Reads().ScheduleForBabysitter(ctx, req.BabysitterID)
		if derr != nil {
			return derr
		}
		if !schedule.Covers(req.Date, shift) {
			return ErrNotBookable
		}

		booked, derr := tx.Reads().HasActiveBooking(ctx, req.BabysitterID, req.Date, shift)
		if derr != nil {
			return derr
		}
		if booked {
			return ErrSlotAlreadyBooked
		}

		svc, derr := domservice.NewService(
			actor.ID,
			req.BabysitterID,
			req.Date,
			shift,
			req.Address,
			req.CountChildren,
			req.SpecialCares,
			req.ScheduledStart,
		)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		id, derr := tx.Services().Create(ctx, tx.DB(), svc)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	if nerr := uc.notifier.BookingConfirmed(ctx, createdID); nerr != nil {
		slog.Warn("failed to enqueue booking confirmation", "service_id", createdID, "error", nerr.Error())
	}

	return &BookServiceResult{ServiceID: createdID}, nil
}

func (uc *serviceUseCaseImpl) MarkOnMyWay(ctx context.Context, serviceID uuid.UUID, actor user.Actor) error {
	return uc.transition(ctx, serviceID, EventOnMyWay, func(svc *domservice.Service) error {
		return svc.MarkOnMyWay(actor, uc.clock.Now())
	})
}

func (uc *serviceUseCaseImpl) StartService(ctx context.Context, serviceID uuid.UUID, actor user.Actor) error {
	return uc.transition(ctx, serviceID, EventStarted, func(svc *domservice.Service) error {
		return svc.Start(actor, uc.clock.Now())
	})
}

func (uc *serviceUseCaseImpl) EndService(ctx context.Context, serviceID uuid.UUID, actor user.Actor) error {
	return uc.withService(ctx, serviceID, EventCompleted, func(tx shared.Tx, svc *domservice.Service) error {
		profile, derr := tx.Reads().BabysitterByUserID(ctx, svc.BabysitterID())
		if derr != nil {
			return derr
		}
		return svc.End(actor, uc.clock.Now(), profile.HourlyRateCents)
	})
}

func (uc *serviceUseCaseImpl) DeleteService(ctx context.Context, serviceID uuid.UUID, actor user.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, derr := tx.Reads().ServiceByID(ctx, serviceID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return derr
		}
		if svc.ClientID() != actor.ID && svc.BabysitterID() != actor.ID {
			return domservice.ErrNotParticipant
		}
		if derr = svc.SoftDelete(); derr != nil {
			return derr
		}
		return tx.Services().SoftDelete(ctx, tx.DB(), serviceID)
	})
}

func (uc *serviceUseCaseImpl) transition(ctx context.Context, serviceID uuid.UUID, event string, apply func(*domservice.Service) error) error {
	return uc.withService(ctx, serviceID, event, func(_ shared.Tx, svc *domservice.Service) error {
		return apply(svc)
	})
}

// withService loads the engagement, applies the transition and writes
// it back guarded by the status it was loaded with.
func (uc *serviceUseCaseImpl) withService(ctx context.Context, serviceID uuid.UUID, event string, apply func(shared.Tx, *domservice.Service) error) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, derr := tx.Reads().ServiceByID(ctx, serviceID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrServiceNotFound
			}
			return derr
		}

		priorStatus := svc.Status()
		if derr = apply(tx, svc); derr != nil {
			return derr
		}

		if derr = tx.Services().UpdateTransition(ctx, tx.DB(), svc, priorStatus); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrServiceConflict
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if nerr := uc.notifier.ServiceEvent(ctx, serviceID, event); nerr != nil {
		slog.Warn("failed to enqueue service event", "service_id", serviceID, "event", event, "error", nerr.Error())
	}
	return nil
}
