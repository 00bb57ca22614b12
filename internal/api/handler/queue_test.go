package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablerota/rotation-api/internal/domain"
	"github.com/tablerota/rotation-api/internal/usecases/queueing"
	queueingmocks "github.com/tablerota/rotation-api/internal/usecases/queueing/mocks"
	"github.com/tablerota/rotation-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestEnqueueEntryParsesScheduledForDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	queueService := queueingmocks.NewMockQueueService(ctrl)

	var enqueued queueing.EnqueueRequest
	queueService.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req queueing.EnqueueRequest) (*domain.QueueEntry, error) {
			enqueued = req
			return &domain.QueueEntry{ID: "e1"}, nil
		})

	body := `{"restaurant_id": "rest-1", "scheduled_for": "2026-09-07"}`
	r := httptest.NewRequest(http.MethodPost, "/v1/queue", strings.NewReader(body))
	w := httptest.NewRecorder()

	EnqueueEntry(queueService).ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, enqueued.ScheduledFor)
	assert.Equal(t, time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC), *enqueued.ScheduledFor)
}

func TestEnqueueEntryWithoutScheduledFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	queueService := queueingmocks.NewMockQueueService(ctrl)

	var enqueued queueing.EnqueueRequest
	queueService.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req queueing.EnqueueRequest) (*domain.QueueEntry, error) {
			enqueued = req
			return &domain.QueueEntry{ID: "e1"}, nil
		})

	r := httptest.NewRequest(http.MethodPost, "/v1/queue", strings.NewReader(`{"restaurant_id": "rest-1"}`))
	w := httptest.NewRecorder()

	EnqueueEntry(queueService).ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, enqueued.ScheduledFor)
}

func TestEnqueueEntryRejectsMalformedScheduledFor(t *testing.T) {
	ctrl := gomock.NewController(t)
	queueService := queueingmocks.NewMockQueueService(ctrl)

	body := `{"restaurant_id": "rest-1", "scheduled_for": "next monday"}`
	r := httptest.NewRequest(http.MethodPost, "/v1/queue", strings.NewReader(body))
	w := httptest.NewRecorder()

	EnqueueEntry(queueService).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(w.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
}
