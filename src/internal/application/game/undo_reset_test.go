package game

import (
	"errors"
	"testing"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, repo *MockGameRecordRepository, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		r, err := mahjong.NewGameRecord(mahjong.MustPlayer("A"),
			[]mahjong.Player{mahjong.MustPlayer("B")}, mahjong.WinTypeDiscard, 3+i%8)
		require.NoError(t, err)
		_, err = repo.Append(nil, r)
		require.NoError(t, err)
	}
}

// ===== UndoLastGame =====

func TestUndoLastGameUseCase_DeletesMostRecent(t *testing.T) {
	// Arrange
	repo := NewMockGameRecordRepository()
	seed(t, repo, 2)
	tx := NewMockTransactionManager()
	pub := &MockEventPublisher{}
	uc := NewUndoLastGameUseCase(repo, tx, pub, nil)

	// Act
	result, err := uc.Execute()

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, MessageUndoDeleted, result.Message)
	assert.Equal(t, 1, tx.InTransactionCallCount)
	assert.Equal(t, []string{"mahjong.last_game_undone"}, pub.Types())

	records, _ := repo.ListAll(nil)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].ID())
}

func TestUndoLastGameUseCase_EmptyIsNoop(t *testing.T) {
	repo := NewMockGameRecordRepository()
	pub := &MockEventPublisher{}
	uc := NewUndoLastGameUseCase(repo, NewMockTransactionManager(), pub, nil)

	result, err := uc.Execute()

	require.NoError(t, err)
	assert.False(t, result.Deleted)
	assert.Equal(t, MessageUndoEmpty, result.Message)
	assert.Empty(t, pub.Events)
}

func TestUndoLastGameUseCase_StoreError(t *testing.T) {
	repo := NewMockGameRecordRepository()
	repo.DeleteErr = mahjong.ErrStoreUnavailable
	uc := NewUndoLastGameUseCase(repo, NewMockTransactionManager(), nil, nil)

	result, err := uc.Execute()

	assert.Nil(t, result)
	assert.ErrorIs(t, err, mahjong.ErrStoreUnavailable)
}

// ===== ResetGames =====

func TestResetGamesUseCase_ClearsAndReportsCount(t *testing.T) {
	// Arrange
	repo := NewMockGameRecordRepository()
	seed(t, repo, 4)
	pub := &MockEventPublisher{}
	uc := NewResetGamesUseCase(repo, NewMockTransactionManager(), pub, nil)

	// Act
	result, err := uc.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 4, result.Cleared)
	assert.Equal(t, MessageGamesReset, result.Message)
	records, _ := repo.ListAll(nil)
	assert.Empty(t, records)
	require.Len(t, pub.Events, 1)
	reset, ok := pub.Events[0].(*mahjong.GameLogResetEvent)
	require.True(t, ok)
	assert.Equal(t, 4, reset.Cleared())
}

func TestResetGamesUseCase_EmptyLogIsFine(t *testing.T) {
	repo := NewMockGameRecordRepository()
	uc := NewResetGamesUseCase(repo, NewMockTransactionManager(), nil, nil)

	result, err := uc.Execute()

	require.NoError(t, err)
	assert.Equal(t, 0, result.Cleared)
	assert.Equal(t, 1, repo.ClearCallCount)
}

// 日誌無法讀取時仍然可以清空
func TestResetGamesUseCase_DoesNotReadRecords(t *testing.T) {
	// Arrange
	repo := NewMockGameRecordRepository()
	seed(t, repo, 2)
	repo.ListErr = mahjong.ErrInvalidRecord.WithContext("reason", "corrupted row in game_log")
	uc := NewResetGamesUseCase(repo, NewMockTransactionManager(), nil, nil)

	// Act
	result, err := uc.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Cleared)
	assert.Equal(t, 1, repo.ClearCallCount)
}

func TestResetGamesUseCase_CountError(t *testing.T) {
	repo := NewMockGameRecordRepository()
	repo.CountErr = mahjong.ErrStoreUnavailable
	uc := NewResetGamesUseCase(repo, NewMockTransactionManager(), nil, nil)

	_, err := uc.Execute()

	assert.ErrorIs(t, err, mahjong.ErrStoreUnavailable)
	assert.Equal(t, 0, repo.ClearCallCount)
}

func TestResetGamesUseCase_ClearError(t *testing.T) {
	repo := NewMockGameRecordRepository()
	repo.ClearErr = mahjong.ErrStoreUnavailable.WithCause(errors.New("locked"))
	pub := &MockEventPublisher{}
	uc := NewResetGamesUseCase(repo, NewMockTransactionManager(), pub, nil)

	_, err := uc.Execute()

	assert.ErrorIs(t, err, mahjong.ErrStoreUnavailable)
	assert.Empty(t, pub.Events)
}
