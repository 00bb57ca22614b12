package maintaining

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/tablerota/rotation-api/infrastructure/repository/mocks"
	"github.com/tablerota/rotation-api/internal/domain"
	"github.com/tablerota/rotation-api/internal/usecases/queueing"
	queueingmocks "github.com/tablerota/rotation-api/internal/usecases/queueing/mocks"
	"github.com/tablerota/rotation-api/internal/usecases/selecting"
	selectingmocks "github.com/tablerota/rotation-api/internal/usecases/selecting/mocks"
	"go.uber.org/mock/gomock"
)

type maintainerMocks struct {
	selector       *selectingmocks.MockSelector
	queueService   *queueingmocks.MockQueueService
	restaurantRepo *repomocks.MockRestaurantRepository
}

func newTestMaintainer(t *testing.T) (*Service, maintainerMocks) {
	ctrl := gomock.NewController(t)

	m := maintainerMocks{
		selector:       selectingmocks.NewMockSelector(ctrl),
		queueService:   queueingmocks.NewMockQueueService(ctrl),
		restaurantRepo: repomocks.NewMockRestaurantRepository(ctrl),
	}

	service := &Service{
		selector:       m.selector,
		queueService:   m.queueService,
		restaurantRepo: m.restaurantRepo,
		requestDelay:   time.Second,
		sleep:          func(time.Duration) {},
	}

	return service, m
}

func TestMaintainNoDeficit(t *testing.T) {
	service, m := newTestMaintainer(t)

	m.queueService.EXPECT().CountPending().Return(10, nil)

	result, err := service.Maintain(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Requested)
	assert.Equal(t, 0, result.Added)
	assert.Empty(t, result.Results)
}

func TestMaintainOverfullQueueIsNotDrained(t *testing.T) {
	service, m := newTestMaintainer(t)

	m.queueService.EXPECT().CountPending().Return(15, nil)

	result, err := service.Maintain(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Requested)
}

func TestMaintainFillsDeficitWithPartialFailures(t *testing.T) {
	service, m := newTestMaintainer(t)

	// 17 pending against a target of 20: three draws, of which the second
	// fails. The run still completes and reports added=2.
	m.queueService.EXPECT().CountPending().Return(17, nil)
	m.restaurantRepo.EXPECT().ListExternalIDs().Return(map[string]struct{}{}, nil)

	gomock.InOrder(
		m.selector.EXPECT().SelectOne(gomock.Any()).Return(&domain.Candidate{
			ExternalID: "yelp-1", Name: "First Bite",
		}, nil),
		m.selector.EXPECT().SelectOne(gomock.Any()).Return(nil, &selecting.SelectionError{
			Err: selecting.ErrNoCandidateFound, Attempts: 5,
		}),
		m.selector.EXPECT().SelectOne(gomock.Any()).Return(&domain.Candidate{
			ExternalID: "yelp-3", Name: "Third Spoon",
		}, nil),
	)

	m.restaurantRepo.EXPECT().GetByExternalID("yelp-1").Return(nil, nil)
	m.restaurantRepo.EXPECT().GetByExternalID("yelp-3").Return(nil, nil)
	m.restaurantRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	m.queueService.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(&domain.QueueEntry{}, nil).Times(2)

	result, err := service.Maintain(context.Background(), 20)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 2, result.Added)
	require.Len(t, result.Results, 3)
	assert.True(t, result.Results[0].Success)
	assert.False(t, result.Results[1].Success)
	assert.True(t, result.Results[2].Success)
}

func TestMaintainMarksSelectedExternalIDsAsKnown(t *testing.T) {
	service, m := newTestMaintainer(t)

	m.queueService.EXPECT().CountPending().Return(0, nil)
	existing := map[string]struct{}{}
	m.restaurantRepo.EXPECT().ListExternalIDs().Return(existing, nil)

	m.selector.EXPECT().SelectOne(existing).Return(&domain.Candidate{
		ExternalID: "yelp-1", Name: "First Bite",
	}, nil)
	m.restaurantRepo.EXPECT().GetByExternalID("yelp-1").Return(nil, nil)
	m.restaurantRepo.EXPECT().Create(gomock.Any()).Return(nil)
	m.queueService.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(&domain.QueueEntry{}, nil)

	// Second draw must see yelp-1 in the known set.
	m.selector.EXPECT().SelectOne(gomock.Any()).DoAndReturn(
		func(known map[string]struct{}) (*domain.Candidate, error) {
			_, seen := known["yelp-1"]
			assert.True(t, seen, "first pick should be excluded from the second draw")
			return nil, &selecting.SelectionError{Err: selecting.ErrNoCandidateFound, Attempts: 5}
		})

	_, err := service.Maintain(context.Background(), 2)
	require.NoError(t, err)
}

func TestMaintainReusesPersistedRestaurant(t *testing.T) {
	service, m := newTestMaintainer(t)

	m.queueService.EXPECT().CountPending().Return(0, nil)
	m.restaurantRepo.EXPECT().ListExternalIDs().Return(map[string]struct{}{}, nil)

	m.selector.EXPECT().SelectOne(gomock.Any()).Return(&domain.Candidate{
		ExternalID: "yelp-1", Name: "First Bite",
	}, nil)

	// Already persisted from an earlier run: no Create, straight to the
	// queue.
	m.restaurantRepo.EXPECT().GetByExternalID("yelp-1").Return(&domain.Restaurant{
		ID: "rest-1", Name: "First Bite",
	}, nil)

	var enqueued queueing.EnqueueRequest
	m.queueService.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req queueing.EnqueueRequest) (*domain.QueueEntry, error) {
			enqueued = req
			return &domain.QueueEntry{}, nil
		})

	result, err := service.Maintain(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Added)
	assert.Equal(t, "rest-1", enqueued.RestaurantID)
	assert.Equal(t, "queue-maintainer", enqueued.AddedBy)
}

func TestMaintainEnqueueConflictIsNotFatal(t *testing.T) {
	service, m := newTestMaintainer(t)

	m.queueService.EXPECT().CountPending().Return(0, nil)
	m.restaurantRepo.EXPECT().ListExternalIDs().Return(map[string]struct{}{}, nil)

	m.selector.EXPECT().SelectOne(gomock.Any()).Return(&domain.Candidate{
		ExternalID: "yelp-1", Name: "First Bite",
	}, nil)
	m.restaurantRepo.EXPECT().GetByExternalID("yelp-1").Return(&domain.Restaurant{ID: "rest-1"}, nil)
	m.queueService.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(nil, queueing.ErrAlreadyQueued)

	result, err := service.Maintain(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Added)
	require.Len(t, result.Results, 1)
	assert.False(t, result.Results[0].Success)
}

func TestMaintainPropagatesCountError(t *testing.T) {
	service, m := newTestMaintainer(t)

	m.queueService.EXPECT().CountPending().Return(0, errors.New("connection refused"))

	_, err := service.Maintain(context.Background(), 10)
	assert.Error(t, err)
}
