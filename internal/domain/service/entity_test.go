//go:build unit

package service_test

import (
	"errors"
	"testing"
	"time"

	domservice "hisitter/internal/domain/service"
	"hisitter/internal/domain/user"
	"hisitter/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func babysitterActor(id uuid.UUID) user.Actor {
	role, _ := user.NewRole("babysitter")
	return user.NewActor(id, role)
}

func clientActor(id uuid.UUID) user.Actor {
	role, _ := user.NewRole("client")
	return user.NewActor(id, role)
}

func TestNewService(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		svc, err := builder.NewServiceBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, svc)

		assert.NotEqual(t, uuid.Nil, svc.ID())
		assert.Equal(t, domservice.StatusScheduled, svc.Status())
		assert.Equal(t, domservice.RecordActive, svc.RecordStatus())
		assert.Nil(t, svc.OnMyWayAt())
		assert.Nil(t, svc.StartedAt())
		assert.Nil(t, svc.TotalCost())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ServiceBuilder)
			errIs  error
		}{
			{
				name:   "empty address",
				mutate: func(b *builder.ServiceBuilder) { b.WithAddress("   ") },
				errIs:  domservice.ErrEmptyAddress,
			},
			{
				name:   "zero children",
				mutate: func(b *builder.ServiceBuilder) { b.WithCountChildren(0) },
				errIs:  domservice.ErrInvalidCountChildren,
			},
			{
				name:   "too many children",
				mutate: func(b *builder.ServiceBuilder) { b.WithCountChildren(domservice.MaxCountChildren + 1) },
				errIs:  domservice.ErrInvalidCountChildren,
			},
			{
				name:   "maximum children",
				mutate: func(b *builder.ServiceBuilder) { b.WithCountChildren(domservice.MaxCountChildren) },
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				svc, err := builder.NewServiceBuilder().With(c.mutate).BuildDomain()
				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, svc)
				} else {
					require.Nil(t, svc)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})
}

func TestMarkOnMyWay(t *testing.T) {
	scheduledStart := time.Date(2026, time.June, 6, 18, 0, 0, 0, time.UTC)

	newScheduled := func() (*domservice.Service, user.Actor) {
		b := builder.NewServiceBuilder().WithScheduledStart(&scheduledStart)
		svc := b.BuildReconstructed()
		return svc, babysitterActor(b.BabysitterID)
	}

	t.Run("exactly at window boundary", func(t *testing.T) {
		svc, sitter := newScheduled()
		now := scheduledStart.Add(-domservice.OnMyWayWindow)

		require.NoError(t, svc.MarkOnMyWay(sitter, now))
		assert.Equal(t, domservice.StatusOnMyWay, svc.Status())
		require.NotNil(t, svc.OnMyWayAt())
		assert.Equal(t, now, *svc.OnMyWayAt())
	})

	t.Run("one minute outside window", func(t *testing.T) {
		svc, sitter := newScheduled()
		now := scheduledStart.Add(-domservice.OnMyWayWindow - time.Minute)

		err := svc.MarkOnMyWay(sitter, now)
		var tooEarly *domservice.TooEarlyError
		require.ErrorAs(t, err, &tooEarly)
		assert.Equal(t, int64(91), tooEarly.MinutesUntilService)
		assert.Equal(t, domservice.StatusScheduled, svc.Status())
	})

	t.Run("after scheduled start still allowed", func(t *testing.T) {
		svc, sitter := newScheduled()
		now := scheduledStart.Add(20 * time.Minute)

		require.NoError(t, svc.MarkOnMyWay(sitter, now))
		assert.Equal(t, domservice.StatusOnMyWay, svc.Status())
	})

	t.Run("only the assigned babysitter", func(t *testing.T) {
		b := builder.NewServiceBuilder().WithScheduledStart(&scheduledStart)
		svc := b.BuildReconstructed()

		err := svc.MarkOnMyWay(clientActor(b.ClientID), scheduledStart.Add(-time.Hour))
		require.ErrorIs(t, err, domservice.ErrNotAssignedBabysitter)

		err = svc.MarkOnMyWay(babysitterActor(uuid.New()), scheduledStart.Add(-time.Hour))
		require.ErrorIs(t, err, domservice.ErrNotAssignedBabysitter)
	})

	t.Run("already flagged", func(t *testing.T) {
		svc, sitter := newScheduled()
		now := scheduledStart.Add(-time.Hour)

		require.NoError(t, svc.MarkOnMyWay(sitter, now))
		err := svc.MarkOnMyWay(sitter, now.Add(time.Minute))
		require.ErrorIs(t, err, domservice.ErrAlreadyOnMyWay)
	})

	t.Run("no scheduled start", func(t *testing.T) {
		b := builder.NewServiceBuilder().WithScheduledStart(nil)
		svc := b.BuildReconstructed()

		err := svc.MarkOnMyWay(babysitterActor(b.BabysitterID), time.Now())
		require.ErrorIs(t, err, domservice.ErrNoScheduledStart)
	})

	t.Run("already in progress", func(t *testing.T) {
		b := builder.NewServiceBuilder().
			WithScheduledStart(&scheduledStart).
			AsInProgress(scheduledStart)
		svc := b.BuildReconstructed()

		err := svc.MarkOnMyWay(babysitterActor(b.BabysitterID), scheduledStart.Add(time.Minute))
		require.ErrorIs(t, err, domservice.ErrAlreadyStarted)
	})

	t.Run("already completed", func(t *testing.T) {
		b := builder.NewServiceBuilder().
			WithScheduledStart(&scheduledStart).
			AsCompleted(scheduledStart, scheduledStart.Add(2*time.Hour), 5000)
		svc := b.BuildReconstructed()

		err := svc.MarkOnMyWay(babysitterActor(b.BabysitterID), scheduledStart.Add(3*time.Hour))
		require.ErrorIs(t, err, domservice.ErrAlreadyCompleted)
	})
}

func TestStart(t *testing.T) {
	now := time.Date(2026, time.June, 6, 18, 5, 0, 0, time.UTC)

	t.Run("babysitter starts", func(t *testing.T) {
		b := builder.NewServiceBuilder()
		svc := b.BuildReconstructed()

		require.NoError(t, svc.Start(babysitterActor(b.BabysitterID), now))
		assert.Equal(t, domservice.StatusInProgress, svc.Status())
		require.NotNil(t, svc.StartedAt())
		assert.Equal(t, now, *svc.StartedAt())
	})

	t.Run("client starts", func(t *testing.T) {
		b := builder.NewServiceBuilder()
		svc := b.BuildReconstructed()

		require.NoError(t, svc.Start(clientActor(b.ClientID), now))
		assert.Equal(t, domservice.StatusInProgress, svc.Status())
	})

	t.Run("start without on-my-way is allowed", func(t *testing.T) {
		b := builder.NewServiceBuilder()
		svc := b.BuildReconstructed()

		require.NoError(t, svc.Start(babysitterActor(b.BabysitterID), now))
		assert.Nil(t, svc.OnMyWayAt())
	})

	t.Run("outsider cannot start", func(t *testing.T) {
		svc := builder.NewServiceBuilder().BuildReconstructed()

		err := svc.Start(clientActor(uuid.New()), now)
		require.ErrorIs(t, err, domservice.ErrNotParticipant)
	})

	t.Run("cannot start twice", func(t *testing.T) {
		b := builder.NewServiceBuilder().AsInProgress(now)
		svc := b.BuildReconstructed()

		err := svc.Start(babysitterActor(b.BabysitterID), now.Add(time.Minute))
		require.ErrorIs(t, err, domservice.ErrAlreadyStarted)
	})

	t.Run("cannot start completed service", func(t *testing.T) {
		b := builder.NewServiceBuilder().AsCompleted(now, now.Add(2*time.Hour), 5000)
		svc := b.BuildReconstructed()

		err := svc.Start(babysitterActor(b.BabysitterID), now.Add(3*time.Hour))
		require.ErrorIs(t, err, domservice.ErrAlreadyCompleted)
	})
}

func TestEnd(t *testing.T) {
	startedAt := time.Date(2026, time.June, 6, 18, 0, 0, 0, time.UTC)
	const rate = int64(2500)

	t.Run("derives duration and cost", func(t *testing.T) {
		b := builder.NewServiceBuilder().AsInProgress(startedAt)
		svc := b.BuildReconstructed()
		endedAt := startedAt.Add(2*time.Hour + 30*time.Minute)

		require.NoError(t, svc.End(clientActor(b.ClientID), endedAt, rate))

		assert.Equal(t, domservice.StatusCompleted, svc.Status())
		require.NotNil(t, svc.Duration())
		assert.Equal(t, 2*time.Hour+30*time.Minute, *svc.Duration())
		require.NotNil(t, svc.TotalCost())
		assert.Equal(t, int64(5000), svc.TotalCost().Cents())
		require.NotNil(t, svc.EndedAt())
		assert.Equal(t, endedAt, *svc.EndedAt())
	})

	t.Run("sub-hour service bills zero", func(t *testing.T) {
		b := builder.NewServiceBuilder().AsInProgress(startedAt)
		svc := b.BuildReconstructed()

		require.NoError(t, svc.End(clientActor(b.ClientID), startedAt.Add(45*time.Minute), rate))
		assert.Equal(t, int64(0), svc.TotalCost().Cents())
	})

	t.Run("end before start", func(t *testing.T) {
		b := builder.NewServiceBuilder().AsInProgress(startedAt)
		svc := b.BuildReconstructed()

		err := svc.End(clientActor(b.ClientID), startedAt, rate)
		require.ErrorIs(t, err, domservice.ErrEndBeforeStart)
		assert.Equal(t, domservice.StatusInProgress, svc.Status())
	})

	t.Run("cannot end before starting", func(t *testing.T) {
		b := builder.NewServiceBuilder()
		svc := b.BuildReconstructed()

		err := svc.End(clientActor(b.ClientID), startedAt.Add(time.Hour), rate)
		require.ErrorIs(t, err, domservice.ErrNotStarted)
	})

	t.Run("outsider cannot end", func(t *testing.T) {
		svc := builder.NewServiceBuilder().AsInProgress(startedAt).BuildReconstructed()

		err := svc.End(babysitterActor(uuid.New()), startedAt.Add(time.Hour), rate)
		require.ErrorIs(t, err, domservice.ErrNotParticipant)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		b := builder.NewServiceBuilder().AsInProgress(startedAt)
		svc := b.BuildReconstructed()
		require.NoError(t, svc.End(clientActor(b.ClientID), startedAt.Add(time.Hour), rate))

		err := svc.End(clientActor(b.ClientID), startedAt.Add(2*time.Hour), rate)
		require.ErrorIs(t, err, domservice.ErrAlreadyCompleted)
	})
}

func TestSoftDelete(t *testing.T) {
	startedAt := time.Date(2026, time.June, 6, 18, 0, 0, 0, time.UTC)

	t.Run("scheduled service can be deleted", func(t *testing.T) {
		svc := builder.NewServiceBuilder().BuildReconstructed()

		require.NoError(t, svc.SoftDelete())
		assert.Equal(t, domservice.RecordSoftDeleted, svc.RecordStatus())
	})

	t.Run("completed service can be deleted", func(t *testing.T) {
		svc := builder.NewServiceBuilder().
			AsCompleted(startedAt, startedAt.Add(time.Hour), 2500).
			BuildReconstructed()

		require.NoError(t, svc.SoftDelete())
	})

	t.Run("on-my-way service cannot be deleted", func(t *testing.T) {
		svc := builder.NewServiceBuilder().AsOnMyWay(startedAt).BuildReconstructed()

		err := svc.SoftDelete()
		require.ErrorIs(t, err, domservice.ErrStillActive)
		assert.Equal(t, domservice.RecordActive, svc.RecordStatus())
	})

	t.Run("in-progress service cannot be deleted", func(t *testing.T) {
		svc := builder.NewServiceBuilder().AsInProgress(startedAt).BuildReconstructed()

		require.True(t, errors.Is(svc.SoftDelete(), domservice.ErrStillActive))
	})
}
