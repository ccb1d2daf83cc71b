package game

import (
	"errors"
	"testing"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeTable(t *testing.T, names ...string) stubTable {
	t.Helper()
	active, err := mahjong.NewActivePlayers(mahjong.NewDefaultRoster(), names)
	require.NoError(t, err)
	return stubTable{active: active}
}

func newRecordUseCase(t *testing.T) (*RecordGameUseCase, *MockGameRecordRepository, *MockTransactionManager, *MockEventPublisher) {
	t.Helper()
	repo := NewMockGameRecordRepository()
	tx := NewMockTransactionManager()
	pub := &MockEventPublisher{}
	uc := NewRecordGameUseCase(repo, tx, pub, activeTable(t, "NEL", "WAI", "CAM", "BOS"), nil)
	return uc, repo, tx, pub
}

// Test 1: 出銃成功寫入並發布事件
func TestRecordGameUseCase_Discard_Success(t *testing.T) {
	// Arrange
	uc, repo, tx, pub := newRecordUseCase(t)

	// Act
	result, err := uc.Execute(RecordGameCommand{Winner: "wai", Loser: "nel", WinType: "出銃", Points: 8})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.RecordID)
	assert.Equal(t, "WAI", result.Winner)
	assert.Equal(t, []string{"NEL"}, result.Losers)
	assert.Equal(t, "出銃", result.WinType)
	assert.Equal(t, 8, result.Points)

	assert.Equal(t, 1, repo.AppendCallCount)
	assert.Equal(t, 1, tx.InTransactionCallCount)
	require.Len(t, pub.Events, 1)
	recorded, ok := pub.Events[0].(*mahjong.GameRecordedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(1), recorded.RecordID())
	assert.Equal(t, "WAI", recorded.Winner().String())
}

// Test 2: 自摸自動帶出三位輸家
func TestRecordGameUseCase_SelfDraw_DerivesLosers(t *testing.T) {
	uc, repo, _, _ := newRecordUseCase(t)

	result, err := uc.Execute(RecordGameCommand{Winner: "CAM", WinType: "自摸", Points: 5})

	require.NoError(t, err)
	assert.Equal(t, []string{"NEL", "WAI", "BOS"}, result.Losers)
	records, _ := repo.ListAll(nil)
	require.Len(t, records, 1)
	assert.Equal(t, mahjong.WinTypeSelfDraw, records[0].WinType())
}

// Test 3: 驗證失敗不寫入
func TestRecordGameUseCase_InvalidSubmission_NotAppended(t *testing.T) {
	tests := []struct {
		name string
		cmd  RecordGameCommand
		rule string
	}{
		{"贏家等於輸家", RecordGameCommand{Winner: "NEL", Loser: "NEL", WinType: "出銃", Points: 3}, "Winner cannot have same name as Loser"},
		{"沒有胡牌方式", RecordGameCommand{Winner: "NEL", Loser: "WAI", Points: 3}, "Win Type cannot be empty"},
		{"沒有番數", RecordGameCommand{Winner: "NEL", Loser: "WAI", WinType: "出銃"}, "Points cannot be empty"},
		{"沒有輸家", RecordGameCommand{Winner: "NEL", WinType: "包自摸", Points: 3}, "Loser cannot be nameless"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _, pub := newRecordUseCase(t)

			result, err := uc.Execute(tt.cmd)

			assert.Nil(t, result)
			require.ErrorIs(t, err, mahjong.ErrInvalidRecord)
			var domainErr *mahjong.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.rule, domainErr.Context["rule"])
			assert.Equal(t, 0, repo.AppendCallCount)
			assert.Empty(t, pub.Events)
		})
	}
}

// Test 4: 尚未選定牌桌
func TestRecordGameUseCase_NoActiveTable(t *testing.T) {
	repo := NewMockGameRecordRepository()
	uc := NewRecordGameUseCase(repo, NewMockTransactionManager(), nil,
		stubTable{err: mahjong.ErrInvalidActivePlayers}, nil)

	_, err := uc.Execute(RecordGameCommand{Winner: "NEL", Loser: "WAI", WinType: "出銃", Points: 3})

	assert.ErrorIs(t, err, mahjong.ErrInvalidActivePlayers)
	assert.Equal(t, 0, repo.AppendCallCount)
}

// Test 5: 倉儲錯誤向上傳遞，不發布事件
func TestRecordGameUseCase_StoreUnavailable(t *testing.T) {
	uc, repo, _, pub := newRecordUseCase(t)
	repo.AppendErr = mahjong.ErrStoreUnavailable.WithCause(errors.New("disk full"))

	_, err := uc.Execute(RecordGameCommand{Winner: "NEL", Loser: "WAI", WinType: "出銃", Points: 3})

	assert.ErrorIs(t, err, mahjong.ErrStoreUnavailable)
	assert.Empty(t, pub.Events)
}

// Test 6: ExecuteWithContext 不開啟事務、不發布事件
func TestRecordGameUseCase_ExecuteWithContext(t *testing.T) {
	uc, repo, tx, pub := newRecordUseCase(t)

	result, err := uc.ExecuteWithContext(nil, RecordGameCommand{Winner: "BOS", Loser: "CAM", WinType: "包自摸", Points: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.RecordID)
	assert.Equal(t, 1, repo.AppendCallCount)
	assert.Equal(t, 0, tx.InTransactionCallCount)
	assert.Empty(t, pub.Events)
}
