//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"hisitter/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, time.June, 6, 18, 30, 15, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(at, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	assert.Equal(t, id, gotID)
	assert.True(t, at.Equal(gotTime), "expected %v, got %v", at, gotTime)
}

func TestReputationCursorRoundTrip(t *testing.T) {
	id := uuid.New()

	// 13.0/3 is the mean of ratings like [5,4,4]; repeating decimals must
	// survive the round trip bit for bit or the keyset predicate
	// `(reputation, user_id) < (key, id)` skips rows tying on reputation.
	for _, reputation := range []float64{5.0, 4.333333, 13.0 / 3.0, 0.1 + 0.2, 0.0, 1.5} {
		encoded := queries.EncodeReputationCursor(reputation, id)
		got, gotID, err := queries.DecodeReputationCursor(encoded)
		require.NoError(t, err)

		assert.Equal(t, id, gotID)
		assert.Equal(t, reputation, got)
	}
}

func TestDecodeAfterCursorErrors(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "not-base64!!!"},
		{"wrong version", base64.URLEncoding.EncodeToString([]byte("v2:123-" + uuid.NewString()))},
		{"missing separator", base64.URLEncoding.EncodeToString([]byte("v1:123"))},
		{"bad number", base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{"bad uuid", base64.URLEncoding.EncodeToString([]byte("v1:123-not-a-uuid"))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(c.cursor)
			require.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
