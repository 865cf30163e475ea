package queries

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MaxListLimit    = 200
	CursorVersionV1 = "v1"
)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, t.UnixMicro(), id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	n, id, err := decodeCursorPayload(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}
	return time.UnixMicro(n), id, nil
}

// Reputation cursors order babysitter listings. The raw float bits ride
// in the shared integer payload so the decoded key compares equal to the
// stored DOUBLE PRECISION value; any rounding here would make the keyset
// predicate skip rows that tie on reputation.
func EncodeReputationCursor(reputation float64, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, int64(math.Float64bits(reputation)), id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeReputationCursor(cursor string) (float64, uuid.UUID, error) {
	n, id, err := decodeCursorPayload(cursor)
	if err != nil {
		return 0, uuid.Nil, err
	}
	return math.Float64frombits(uint64(n)), id, nil
}

func decodeCursorPayload(cursor string) (int64, uuid.UUID, error) {
	if cursor == "" {
		return 0, uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return 0, uuid.Nil, fmt.Errorf("unsupported cursor version")
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return 0, uuid.Nil, fmt.Errorf("invalid cursor format: expected '<n>-<uuid>'")
	}

	n, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, uuid.Nil, fmt.Errorf("invalid cursor value: %w", err)
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return 0, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return n, id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
