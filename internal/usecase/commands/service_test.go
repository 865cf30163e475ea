//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"hisitter/internal/domain/availability"
	"hisitter/internal/domain/babysitter"
	"hisitter/internal/domain/review"
	domservice "hisitter/internal/domain/service"
	"hisitter/internal/domain/user"
	"hisitter/internal/infra"
	"hisitter/internal/infra/db"
	"hisitter/internal/pkg/clock"
	"hisitter/internal/pkg/errs"
	"hisitter/internal/usecase/commands"
	"hisitter/internal/usecase/shared"
	"hisitter/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- hand-rolled fakes ----
// The unit of work is a plumbing seam, not behavior under test, so a
// small in-memory fake keeps these tests free of a live database.

type fakeReads struct {
	userByEmail  func(ctx context.Context, email string) (*shared.UserSnapshot, error)
	userByID     func(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error)
	babysitterBy func(ctx context.Context, userID uuid.UUID) (*shared.BabysitterSnapshot, error)
	schedule     func(ctx context.Context, userID uuid.UUID) (availability.Schedule, error)
	hasBooking   func(ctx context.Context, babysitterID uuid.UUID, date time.Time, shift availability.Shift) (bool, error)
	serviceByID  func(ctx context.Context, id uuid.UUID) (*domservice.Service, error)
	reviewExists func(ctx context.Context, serviceID uuid.UUID) (bool, error)
	ratings      func(ctx context.Context, babysitterID uuid.UUID) ([]int, error)
}

func (f *fakeReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	return f.userByEmail(ctx, email)
}

func (f *fakeReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return f.userByID(ctx, id)
}

func (f *fakeReads) BabysitterByUserID(ctx context.Context, userID uuid.UUID) (*shared.BabysitterSnapshot, error) {
	return f.babysitterBy(ctx, userID)
}

func (f *fakeReads) ScheduleForBabysitter(ctx context.Context, userID uuid.UUID) (availability.Schedule, error) {
	return f.schedule(ctx, userID)
}

func (f *fakeReads) HasActiveBooking(ctx context.Context, babysitterID uuid.UUID, date time.Time, shift availability.Shift) (bool, error) {
	if f.hasBooking == nil {
		return false, nil
	}
	return f.hasBooking(ctx, babysitterID, date, shift)
}

func (f *fakeReads) ServiceByID(ctx context.Context, id uuid.UUID) (*domservice.Service, error) {
	return f.serviceByID(ctx, id)
}

func (f *fakeReads) ReviewExistsForService(ctx context.Context, serviceID uuid.UUID) (bool, error) {
	return f.reviewExists(ctx, serviceID)
}

func (f *fakeReads) RatingsForBabysitter(ctx context.Context, babysitterID uuid.UUID) ([]int, error) {
	return f.ratings(ctx, babysitterID)
}

type fakeServiceRepo struct {
	created           *domservice.Service
	createdID         uuid.UUID
	updated           *domservice.Service
	updatedPrior      domservice.Status
	updateErr         error
	softDeletedID     uuid.UUID
	softDeleteCalled  bool
	updateCalledTimes int
}

func (f *fakeServiceRepo) Create(_ context.Context, _ db.DBTX, svc *domservice.Service) (uuid.UUID, error) {
	f.created = svc
	f.createdID = svc.ID()
	return svc.ID(), nil
}

func (f *fakeServiceRepo) UpdateTransition(_ context.Context, _ db.DBTX, svc *domservice.Service, priorStatus domservice.Status) error {
	f.updateCalledTimes++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = svc
	f.updatedPrior = priorStatus
	return nil
}

func (f *fakeServiceRepo) SoftDelete(_ context.Context, _ db.DBTX, serviceID uuid.UUID) error {
	f.softDeleteCalled = true
	f.softDeletedID = serviceID
	return nil
}

type fakeBabysitterRepo struct {
	reputationSet  bool
	reputation     float64
	reputationUser uuid.UUID
}

func (f *fakeBabysitterRepo) Create(_ context.Context, _ db.DBTX, _ *babysitter.Babysitter) error {
	return nil
}

func (f *fakeBabysitterRepo) ReplaceSchedule(_ context.Context, _ db.DBTX, _ uuid.UUID, _ availability.Schedule) error {
	return nil
}

func (f *fakeBabysitterRepo) UpdateReputation(_ context.Context, _ db.DBTX, userID uuid.UUID, reputation float64) error {
	f.reputationSet = true
	f.reputation = reputation
	f.reputationUser = userID
	return nil
}

type fakeReviewRepo struct {
	created   *review.Review
	createErr error
}

func (f *fakeReviewRepo) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = rev
	return rev.ID(), nil
}

type fakeUserRepo struct{}

func (fakeUserRepo) Create(_ context.Context, _ db.DBTX, _ *user.User) (uuid.UUID, error) {
	return uuid.New(), nil
}
func (fakeUserRepo) MarkVerified(_ context.Context, _ db.DBTX, _ uuid.UUID) error    { return nil }
func (fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, _ uuid.UUID) error { return nil }

type fakeTx struct {
	reads       *fakeReads
	services    *fakeServiceRepo
	babysitters *fakeBabysitterRepo
	reviews     *fakeReviewRepo
}

func (f *fakeTx) Users() shared.UserRepository             { return fakeUserRepo{} }
func (f *fakeTx) Babysitters() shared.BabysitterRepository { return f.babysitters }
func (f *fakeTx) Services() shared.ServiceRepository       { return f.services }
func (f *fakeTx) Reviews() shared.ReviewRepository         { return f.reviews }
func (f *fakeTx) Reads() shared.CommandReads               { return f.reads }
func (f *fakeTx) DB() db.DBTX                              { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f.tx)
}

func (f *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads { return f.tx.reads }

type fakeNotifier struct {
	bookings []uuid.UUID
	events   []string
}

func (f *fakeNotifier) BookingConfirmed(_ context.Context, serviceID uuid.UUID) error {
	f.bookings = append(f.bookings, serviceID)
	return nil
}

func (f *fakeNotifier) ServiceEvent(_ context.Context, _ uuid.UUID, event string) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeNotifier) VerificationEmail(_ context.Context, _ uuid.UUID, _, _ string) error {
	return nil
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(slog.Default(), infra.KindNotFound, msg, nil)
}

// ---- tests ----

func clientOf(b *builder.ServiceBuilder) user.Actor {
	role, _ := user.NewRole("client")
	return user.NewActor(b.ClientID, role)
}

func sitterOf(b *builder.ServiceBuilder) user.Actor {
	role, _ := user.NewRole("babysitter")
	return user.NewActor(b.BabysitterID, role)
}

func TestBookService(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	setup := func(schedule availability.Schedule) (*fakeTx, commands.ServiceCommands, *fakeNotifier) {
		tx := &fakeTx{
			services:    &fakeServiceRepo{},
			babysitters: &fakeBabysitterRepo{},
			reviews:     &fakeReviewRepo{},
			reads: &fakeReads{
				babysitterBy: func(_ context.Context, userID uuid.UUID) (*shared.BabysitterSnapshot, error) {
					return &shared.BabysitterSnapshot{UserID: userID, HourlyRateCents: 2500, Reputation: 5.0}, nil
				},
				schedule: func(_ context.Context, _ uuid.UUID) (availability.Schedule, error) {
					return schedule, nil
				},
			},
		}
		notifier := &fakeNotifier{}
		uc := commands.NewServiceUseCase(&fakeUoW{tx: tx}, clock.NewMockClock(now), notifier)
		return tx, uc, notifier
	}

	evening, _ := availability.NewShift("evening")
	saturdayEvening := availability.NewSchedule([]availability.Slot{mustSlot(t, time.Saturday, evening)})

	t.Run("books when the schedule covers the slot", func(t *testing.T) {
		tx, uc, notifier := setup(saturdayEvening)
		b := builder.NewServiceBuilder() // 2026-06-06 is a Saturday, evening shift

		result, err := uc.BookService(ctx, b.BuildBookCommand(), clientOf(b))
		require.NoError(t, err)
		require.NotNil(t, result)

		require.NotNil(t, tx.services.created)
		assert.Equal(t, domservice.StatusScheduled, tx.services.created.Status())
		assert.Equal(t, b.ClientID, tx.services.created.ClientID())
		assert.Equal(t, []uuid.UUID{result.ServiceID}, notifier.bookings)
	})

	t.Run("rejects when the schedule does not cover the slot", func(t *testing.T) {
		tx, uc, _ := setup(saturdayEvening)
		b := builder.NewServiceBuilder().WithShift("morning")

		_, err := uc.BookService(ctx, b.BuildBookCommand(), clientOf(b))
		require.ErrorIs(t, err, commands.ErrNotBookable)
		assert.Nil(t, tx.services.created)
	})

	t.Run("rejects a double booking for the same date and shift", func(t *testing.T) {
		tx, uc, _ := setup(saturdayEvening)
		tx.reads.hasBooking = func(_ context.Context, _ uuid.UUID, _ time.Time, _ availability.Shift) (bool, error) {
			return true, nil
		}
		b := builder.NewServiceBuilder()

		_, err := uc.BookService(ctx, b.BuildBookCommand(), clientOf(b))
		require.ErrorIs(t, err, commands.ErrSlotAlreadyBooked)
		assert.Nil(t, tx.services.created)
	})

	t.Run("rejects babysitter actors", func(t *testing.T) {
		_, uc, _ := setup(saturdayEvening)
		b := builder.NewServiceBuilder()

		_, err := uc.BookService(ctx, b.BuildBookCommand(), sitterOf(b))
		require.ErrorIs(t, err, commands.ErrClientsOnly)
	})

	t.Run("rejects unknown babysitters", func(t *testing.T) {
		tx, uc, _ := setup(saturdayEvening)
		tx.reads.babysitterBy = func(_ context.Context, _ uuid.UUID) (*shared.BabysitterSnapshot, error) {
			return nil, notFoundErr("babysitter profile not found")
		}
		b := builder.NewServiceBuilder()

		_, err := uc.BookService(ctx, b.BuildBookCommand(), clientOf(b))
		require.ErrorIs(t, err, commands.ErrBabysitterNotFound)
	})

	t.Run("rejects invalid shift", func(t *testing.T) {
		_, uc, _ := setup(saturdayEvening)
		b := builder.NewServiceBuilder().WithShift("midnight")

		_, err := uc.BookService(ctx, b.BuildBookCommand(), clientOf(b))
		require.True(t, errs.Is(err, commands.ErrDomainValidation), "expected a validation mark, got %v", err)
	})
}

func TestMarkOnMyWayCommand(t *testing.T) {
	ctx := context.Background()
	scheduledStart := time.Date(2026, time.June, 6, 18, 0, 0, 0, time.UTC)

	setup := func(svc *domservice.Service, now time.Time) (*fakeTx, commands.ServiceCommands, *fakeNotifier) {
		tx := &fakeTx{
			services:    &fakeServiceRepo{},
			babysitters: &fakeBabysitterRepo{},
			reviews:     &fakeReviewRepo{},
			reads: &fakeReads{
				serviceByID: func(_ context.Context, _ uuid.UUID) (*domservice.Service, error) {
					return svc, nil
				},
			},
		}
		notifier := &fakeNotifier{}
		uc := commands.NewServiceUseCase(&fakeUoW{tx: tx}, clock.NewMockClock(now), notifier)
		return tx, uc, notifier
	}

	t.Run("persists the transition guarded by the loaded status", func(t *testing.T) {
		b := builder.NewServiceBuilder().WithScheduledStart(&scheduledStart)
		svc := b.BuildReconstructed()
		tx, uc, notifier := setup(svc, scheduledStart.Add(-time.Hour))

		require.NoError(t, uc.MarkOnMyWay(ctx, svc.ID(), sitterOf(b)))

		assert.Equal(t, domservice.StatusScheduled, tx.services.updatedPrior)
		assert.Equal(t, domservice.StatusOnMyWay, tx.services.updated.Status())
		assert.Equal(t, []string{commands.EventOnMyWay}, notifier.events)
	})

	t.Run("propagates the too-early error without persisting", func(t *testing.T) {
		b := builder.NewServiceBuilder().WithScheduledStart(&scheduledStart)
		svc := b.BuildReconstructed()
		tx, uc, notifier := setup(svc, scheduledStart.Add(-3*time.Hour))

		err := uc.MarkOnMyWay(ctx, svc.ID(), sitterOf(b))
		var tooEarly *domservice.TooEarlyError
		require.ErrorAs(t, err, &tooEarly)
		assert.Equal(t, int64(180), tooEarly.MinutesUntilService)
		assert.Equal(t, 0, tx.services.updateCalledTimes)
		assert.Empty(t, notifier.events)
	})

	t.Run("maps a lost write race to a conflict", func(t *testing.T) {
		b := builder.NewServiceBuilder().WithScheduledStart(&scheduledStart)
		svc := b.BuildReconstructed()
		tx, uc, _ := setup(svc, scheduledStart.Add(-time.Hour))
		tx.services.updateErr = infra.WrapRepoErr(slog.Default(), infra.KindConflict, "stale status", nil)

		err := uc.MarkOnMyWay(ctx, svc.ID(), sitterOf(b))
		require.ErrorIs(t, err, commands.ErrServiceConflict)
	})

	t.Run("missing service maps to not found", func(t *testing.T) {
		b := builder.NewServiceBuilder()
		tx, uc, _ := setup(nil, scheduledStart)
		tx.reads.serviceByID = func(_ context.Context, _ uuid.UUID) (*domservice.Service, error) {
			return nil, notFoundErr("service not found")
		}

		err := uc.MarkOnMyWay(ctx, uuid.New(), sitterOf(b))
		require.ErrorIs(t, err, commands.ErrServiceNotFound)
	})
}

func TestEndServiceCommand(t *testing.T) {
	ctx := context.Background()
	startedAt := time.Date(2026, time.June, 6, 18, 0, 0, 0, time.UTC)

	t.Run("bills with the rate read inside the transaction", func(t *testing.T) {
		b := builder.NewServiceBuilder().AsInProgress(startedAt)
		svc := b.BuildReconstructed()

		tx := &fakeTx{
			services:    &fakeServiceRepo{},
			babysitters: &fakeBabysitterRepo{},
			reviews:     &fakeReviewRepo{},
			reads: &fakeReads{
				serviceByID: func(_ context.Context, _ uuid.UUID) (*domservice.Service, error) {
					return svc, nil
				},
				babysitterBy: func(_ context.Context, userID uuid.UUID) (*shared.BabysitterSnapshot, error) {
					return &shared.BabysitterSnapshot{UserID: userID, HourlyRateCents: 3000}, nil
				},
			},
		}
		notifier := &fakeNotifier{}
		uc := commands.NewServiceUseCase(&fakeUoW{tx: tx}, clock.NewMockClock(startedAt.Add(2*time.Hour+15*time.Minute)), notifier)

		require.NoError(t, uc.EndService(ctx, svc.ID(), clientOf(b)))

		require.NotNil(t, tx.services.updated.TotalCost())
		assert.Equal(t, int64(6000), tx.services.updated.TotalCost().Cents())
		assert.Equal(t, domservice.StatusInProgress, tx.services.updatedPrior)
		assert.Equal(t, []string{commands.EventCompleted}, notifier.events)
	})
}

func TestDeleteServiceCommand(t *testing.T) {
	ctx := context.Background()
	startedAt := time.Date(2026, time.June, 6, 18, 0, 0, 0, time.UTC)

	setup := func(svc *domservice.Service) (*fakeTx, commands.ServiceCommands) {
		tx := &fakeTx{
			services:    &fakeServiceRepo{},
			babysitters: &fakeBabysitterRepo{},
			reviews:     &fakeReviewRepo{},
			reads: &fakeReads{
				serviceByID: func(_ context.Context, _ uuid.UUID) (*domservice.Service, error) {
					return svc, nil
				},
			},
		}
		uc := commands.NewServiceUseCase(&fakeUoW{tx: tx}, clock.NewMockClock(startedAt), &fakeNotifier{})
		return tx, uc
	}

	t.Run("soft deletes a scheduled service", func(t *testing.T) {
		b := builder.NewServiceBuilder()
		svc := b.BuildReconstructed()
		tx, uc := setup(svc)

		require.NoError(t, uc.DeleteService(ctx, svc.ID(), clientOf(b)))
		assert.True(t, tx.services.softDeleteCalled)
		assert.Equal(t, svc.ID(), tx.services.softDeletedID)
	})

	t.Run("rejects while in progress", func(t *testing.T) {
		b := builder.NewServiceBuilder().AsInProgress(startedAt)
		svc := b.BuildReconstructed()
		tx, uc := setup(svc)

		err := uc.DeleteService(ctx, svc.ID(), clientOf(b))
		require.ErrorIs(t, err, domservice.ErrStillActive)
		assert.False(t, tx.services.softDeleteCalled)
	})

	t.Run("rejects outsiders", func(t *testing.T) {
		b := builder.NewServiceBuilder()
		svc := b.BuildReconstructed()
		_, uc := setup(svc)

		role, _ := user.NewRole("client")
		err := uc.DeleteService(ctx, svc.ID(), user.NewActor(uuid.New(), role))
		require.ErrorIs(t, err, domservice.ErrNotParticipant)
	})
}

func mustSlot(t *testing.T, weekday time.Weekday, shift availability.Shift) availability.Slot {
	t.Helper()
	slot, err := availability.NewSlot(weekday, shift)
	require.NoError(t, err)
	return slot
}
