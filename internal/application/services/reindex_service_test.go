package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/tests/mocks"
)

func turnPage(start, n int) []entities.ConversationTurn {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	page := make([]entities.ConversationTurn, n)
	for i := range page {
		page[i] = sampleTurn(fmt.Sprintf("c%d", start+i), entities.MessageTypeGeneral)
		page[i].Timestamp = base.Add(time.Duration(start+i) * time.Minute)
	}
	return page
}

func TestReindexService_RunPagesByTimestamp(t *testing.T) {
	repo := mocks.NewMockConversationRepository(t)
	index := mocks.NewMockConversationIndex(t)

	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := turnPage(0, 2)
	second := turnPage(2, 1)

	repo.EXPECT().ListSince(mock.Anything, since, 2).Return(first, nil).Once()
	repo.EXPECT().ListSince(mock.Anything, first[1].Timestamp, 2).Return(second, nil).Once()
	index.EXPECT().IndexTurn(mock.Anything, mock.Anything).Return(nil).Times(3)

	svc := services.NewReindexService(repo, index, 2, 2, 1)
	summary, err := svc.Run(context.Background(), since)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalProcessed)
	assert.Equal(t, 3, summary.SuccessCount)
	assert.Equal(t, 0, summary.FailureCount)
	assert.Equal(t, second[0].Timestamp, summary.LastTimestamp)
}

func TestReindexService_RunStopsOnEmptyPage(t *testing.T) {
	repo := mocks.NewMockConversationRepository(t)
	index := mocks.NewMockConversationIndex(t)

	first := turnPage(0, 2)
	repo.EXPECT().ListSince(mock.Anything, time.Time{}, 2).Return(first, nil).Once()
	repo.EXPECT().ListSince(mock.Anything, first[1].Timestamp, 2).Return(nil, nil).Once()
	index.EXPECT().IndexTurn(mock.Anything, mock.Anything).Return(nil).Times(2)

	summary, err := services.NewReindexService(repo, index, 1, 2, 1).Run(context.Background(), time.Time{})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.SuccessCount)
}

func TestReindexService_RunCountsIndexFailures(t *testing.T) {
	repo := mocks.NewMockConversationRepository(t)
	index := mocks.NewMockConversationIndex(t)

	repo.EXPECT().ListSince(mock.Anything, mock.Anything, services.DefaultReindexBatchSize).Return(turnPage(0, 3), nil).Once()
	index.EXPECT().IndexTurn(mock.Anything, mock.MatchedBy(func(turn *entities.ConversationTurn) bool {
		return turn.ID == "c1"
	})).Return(errors.New("typesense down"))
	index.EXPECT().IndexTurn(mock.Anything, mock.MatchedBy(func(turn *entities.ConversationTurn) bool {
		return turn.ID != "c1"
	})).Return(nil)

	summary, err := services.NewReindexService(repo, index, 3, 0, 1).Run(context.Background(), time.Time{})

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalProcessed)
	assert.Equal(t, 2, summary.SuccessCount)
	assert.Equal(t, 1, summary.FailureCount)
}

func TestReindexService_RunRetriesTransientFailures(t *testing.T) {
	repo := mocks.NewMockConversationRepository(t)
	index := mocks.NewMockConversationIndex(t)

	repo.EXPECT().ListSince(mock.Anything, mock.Anything, services.DefaultReindexBatchSize).Return(turnPage(0, 1), nil).Once()
	index.EXPECT().IndexTurn(mock.Anything, mock.Anything).Return(errors.New("timeout")).Once()
	index.EXPECT().IndexTurn(mock.Anything, mock.Anything).Return(nil).Once()

	summary, err := services.NewReindexService(repo, index, 1, 0, 2).Run(context.Background(), time.Time{})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 0, summary.FailureCount)
}

func TestReindexService_RunListError(t *testing.T) {
	repo := mocks.NewMockConversationRepository(t)
	index := mocks.NewMockConversationIndex(t)

	repo.EXPECT().ListSince(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	summary, err := services.NewReindexService(repo, index, 2, 10, 1).Run(context.Background(), time.Time{})

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "failed to list conversation turns")
}
