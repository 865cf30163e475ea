//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status code and, for 2xx responses,
// decodes the JSON body into target. The raw body rides along in the
// failure message so a broken test shows what the handler actually sent.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}

	if wantStatus >= 200 && wantStatus < 300 && target != nil {
		err := json.Unmarshal(w.Body.Bytes(), target)
		assert.NoError(t, err, "response is not valid JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status code and that the error
// envelope's message contains wantMsg. Pass an empty wantMsg to assert
// only on the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &envelope)
	assert.NoError(t, err, "error response is not valid JSON: %s", w.Body.String())

	if wantMsg != "" {
		assert.Contains(t, envelope.Error.Message, wantMsg)
	}
}
