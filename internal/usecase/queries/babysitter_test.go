//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hisitter/internal/domain/availability"
	"hisitter/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBabysitterReadStore struct {
	firstPage   []*queries.BabysitterListItem
	keysetPage  []*queries.BabysitterListItem
	gotWeekday  int
	gotShift    string
	gotLimit    int32
	keysetCalls int
}

func (f *fakeBabysitterReadStore) FindByUserID(_ context.Context, _ uuid.UUID) (*queries.BabysitterView, error) {
	return nil, nil
}

func (f *fakeBabysitterReadStore) FindAvailableFirstPage(_ context.Context, weekday int, shift string, limit int32) ([]*queries.BabysitterListItem, error) {
	f.gotWeekday = weekday
	f.gotShift = shift
	f.gotLimit = limit
	return f.firstPage, nil
}

func (f *fakeBabysitterReadStore) FindAvailableKeyset(_ context.Context, weekday int, shift string, _ float64, _ uuid.UUID, limit int32) ([]*queries.BabysitterListItem, error) {
	f.keysetCalls++
	f.gotWeekday = weekday
	f.gotShift = shift
	f.gotLimit = limit
	return f.keysetPage, nil
}

func listItems(n int) []*queries.BabysitterListItem {
	items := make([]*queries.BabysitterListItem, n)
	for i := range items {
		items[i] = &queries.BabysitterListItem{
			UserID:     uuid.New(),
			Reputation: 5.0 - float64(i)*0.1,
		}
	}
	return items
}

func TestListAvailable(t *testing.T) {
	ctx := context.Background()
	// 2026-06-06 is a Saturday
	saturday := time.Date(2026, time.June, 6, 0, 0, 0, 0, time.UTC)
	evening, _ := availability.NewShift("evening")

	t.Run("first page without next cursor", func(t *testing.T) {
		store := &fakeBabysitterReadStore{firstPage: listItems(3)}
		q := queries.NewBabysitterQueries(store)

		items, next, err := q.ListAvailable(ctx, saturday, evening, nil, 20)
		require.NoError(t, err)

		assert.Len(t, items, 3)
		assert.Nil(t, next)
		assert.Equal(t, int(time.Saturday), store.gotWeekday)
		assert.Equal(t, "evening", store.gotShift)
		assert.Equal(t, int32(21), store.gotLimit, "fetches limit+1 to detect a next page")
	})

	t.Run("full page yields a next cursor pointing at the last item", func(t *testing.T) {
		store := &fakeBabysitterReadStore{firstPage: listItems(4)}
		q := queries.NewBabysitterQueries(store)

		items, next, err := q.ListAvailable(ctx, saturday, evening, nil, 3)
		require.NoError(t, err)

		require.Len(t, items, 3)
		require.NotNil(t, next)

		reputation, id, derr := queries.DecodeReputationCursor(next.After)
		require.NoError(t, derr)
		assert.Equal(t, items[2].UserID, id)
		assert.Equal(t, items[2].Reputation, reputation, "cursor must carry the exact stored value")
	})

	t.Run("cursor page uses the keyset query", func(t *testing.T) {
		store := &fakeBabysitterReadStore{keysetPage: listItems(2)}
		q := queries.NewBabysitterQueries(store)

		cursor := &queries.Cursor{After: queries.EncodeReputationCursor(4.5, uuid.New())}
		items, next, err := q.ListAvailable(ctx, saturday, evening, cursor, 20)
		require.NoError(t, err)

		assert.Len(t, items, 2)
		assert.Nil(t, next)
		assert.Equal(t, 1, store.keysetCalls)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		q := queries.NewBabysitterQueries(&fakeBabysitterReadStore{})

		_, _, err := q.ListAvailable(ctx, saturday, evening, &queries.Cursor{After: "garbage"}, 20)
		require.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("invalid shift", func(t *testing.T) {
		q := queries.NewBabysitterQueries(&fakeBabysitterReadStore{})

		_, _, err := q.ListAvailable(ctx, saturday, availability.Shift("midnight"), nil, 20)
		require.ErrorIs(t, err, availability.ErrInvalidShift)
	})
}
