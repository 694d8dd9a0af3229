package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelbook/internal/domain"
)

// The stream handler writes each snapshot as one SSE event and flushes.
// The test closes the channel after two snapshots so ServeHTTP returns.
func TestStream_WritesSnapshotEvents(t *testing.T) {
	tripID := uuid.New()

	ch := make(chan domain.Snapshot, 2)
	ch <- domain.Snapshot{Trip: domain.Trip{ID: tripID, Name: "Kyoto", Days: 5}}
	ch <- domain.Snapshot{Trip: domain.Trip{ID: tripID, Name: "Kyoto v2", Days: 6}}
	close(ch)

	h := newHTTPHandler(nil, nil, nil, &mockSubscriber{
		subscribe: func(_ context.Context, _ uuid.UUID) (<-chan domain.Snapshot, error) {
			return ch, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+tripID.String()+"/stream", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: snapshot\n"))
	assert.Contains(t, body, `"Kyoto v2"`)
}

func TestStream_TripNotFoundReturns404(t *testing.T) {
	h := newHTTPHandler(nil, nil, nil, &mockSubscriber{
		subscribe: func(_ context.Context, _ uuid.UUID) (<-chan domain.Snapshot, error) {
			return nil, domain.ErrNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/trips/"+uuid.NewString()+"/stream", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth_ReturnsOK(t *testing.T) {
	h := newHTTPHandler(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestOpenAPI_ServesSpec(t *testing.T) {
	h := newHTTPHandler(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi:")
}
