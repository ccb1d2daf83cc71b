package game

import (
	"testing"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultMultiplier() FixedMultiplier {
	return FixedMultiplier(mahjong.DefaultMultiplier())
}

func recordAll(t *testing.T, repo *MockGameRecordRepository, cmds ...RecordGameCommand) {
	t.Helper()
	uc := NewRecordGameUseCase(repo, NewMockTransactionManager(), nil, activeTable(t, "NEL", "WAI", "CAM", "BOS"), nil)
	for _, cmd := range cmds {
		_, err := uc.Execute(cmd)
		require.NoError(t, err)
	}
}

// ===== GetSettlement =====

func TestGetSettlementUseCase_Empty(t *testing.T) {
	uc := NewGetSettlementUseCase(NewMockGameRecordRepository(), defaultMultiplier())

	result, err := uc.Execute(GetSettlementQuery{})

	require.NoError(t, err)
	assert.True(t, result.NoGames)
	assert.Empty(t, result.Balances)
	assert.Equal(t, "$0.15", result.Multiplier)
}

func TestGetSettlementUseCase_FormatsBalances(t *testing.T) {
	// Arrange
	repo := NewMockGameRecordRepository()
	recordAll(t, repo,
		RecordGameCommand{Winner: "NEL", WinType: "自摸", Points: 5},
		RecordGameCommand{Winner: "NEL", Loser: "WAI", WinType: "出銃", Points: 8},
	)
	uc := NewGetSettlementUseCase(repo, defaultMultiplier())

	// Act
	result, err := uc.Execute(GetSettlementQuery{})

	// Assert
	require.NoError(t, err)
	assert.False(t, result.NoGames)
	assert.Equal(t, 2, result.Games)

	got := make(map[string]string)
	for _, b := range result.Balances {
		got[b.Player] = b.Display
	}
	assert.Equal(t, map[string]string{
		"NEL": "+$15.00",
		"WAI": "-$11.40",
		"CAM": "-$1.80",
		"BOS": "-$1.80",
	}, got)
	assert.Equal(t, "BOS", result.Balances[0].Player, "依名稱排序")
}

func TestGetSettlementUseCase_MultiplierOverride(t *testing.T) {
	repo := NewMockGameRecordRepository()
	recordAll(t, repo, RecordGameCommand{Winner: "NEL", Loser: "WAI", WinType: "出銃", Points: 10})
	uc := NewGetSettlementUseCase(repo, defaultMultiplier())

	result, err := uc.Execute(GetSettlementQuery{Multiplier: "0.10"})
	require.NoError(t, err)
	assert.Equal(t, "$0.10", result.Multiplier)
	assert.True(t, decimal.RequireFromString("12.8").Equal(result.Balances[0].Amount))

	_, err = uc.Execute(GetSettlementQuery{Multiplier: "0.30"})
	assert.ErrorIs(t, err, mahjong.ErrInvalidMultiplier)
}

func TestGetSettlementUseCase_StoreError(t *testing.T) {
	repo := NewMockGameRecordRepository()
	repo.ListErr = mahjong.ErrStoreUnavailable
	uc := NewGetSettlementUseCase(repo, defaultMultiplier())

	_, err := uc.Execute(GetSettlementQuery{})

	assert.ErrorIs(t, err, mahjong.ErrStoreUnavailable)
}

// ===== GetAwards =====

func TestGetAwardsUseCase_Empty(t *testing.T) {
	uc := NewGetAwardsUseCase(NewMockGameRecordRepository())

	result, err := uc.Execute()

	require.NoError(t, err)
	assert.True(t, result.NoGames)
	require.Len(t, result.Awards, 5)
	for _, a := range result.Awards {
		assert.False(t, a.HasData)
		assert.Equal(t, a.Title+": no data", a.Display())
	}
}

func TestGetAwardsUseCase_TwoSelfDraws(t *testing.T) {
	// Arrange
	repo := NewMockGameRecordRepository()
	recordAll(t, repo,
		RecordGameCommand{Winner: "NEL", WinType: "自摸", Points: 4},
		RecordGameCommand{Winner: "NEL", WinType: "自摸", Points: 7},
	)
	uc := NewGetAwardsUseCase(repo)

	// Act
	result, err := uc.Execute()

	// Assert
	require.NoError(t, err)
	byTitle := make(map[string]AwardView)
	for _, a := range result.Awards {
		byTitle[a.Title] = a
	}

	king := byTitle["Self Draw King/Queen"]
	assert.Equal(t, "Self Draw King/Queen: NEL (Games won: 2)", king.Display())

	bystander := byTitle["Innocent Bystander"]
	assert.Equal(t, []string{"BOS", "CAM", "WAI"}, bystander.Holders)
	assert.Equal(t, "2", bystander.Value)

	goBig := byTitle["Go Big or Go Home"]
	assert.Equal(t, "5.5", goBig.Value)

	assert.False(t, byTitle["Arch Nemesis"].HasData)
	assert.False(t, byTitle["Charity Champion"].HasData)
}

// ===== ListGames =====

func TestListGamesUseCase(t *testing.T) {
	repo := NewMockGameRecordRepository()
	recordAll(t, repo,
		RecordGameCommand{Winner: "NEL", WinType: "自摸", Points: 5},
		RecordGameCommand{Winner: "WAI", Loser: "BOS", WinType: "包自摸", Points: 3},
	)

	result, err := NewListGamesUseCase(repo).Execute()

	require.NoError(t, err)
	require.Len(t, result.Games, 2)
	assert.Equal(t, GameView{ID: 1, Winner: "NEL", Loser1: "WAI", Loser2: "CAM", Loser3: "BOS", WinType: "自摸", Points: 5}, result.Games[0])
	assert.Equal(t, GameView{ID: 2, Winner: "WAI", Loser1: "BOS", WinType: "包自摸", Points: 3}, result.Games[1])
}

// ===== PayoutSchedule =====

func TestGetPayoutScheduleUseCase(t *testing.T) {
	result := NewGetPayoutScheduleUseCase(defaultMultiplier()).Execute()

	require.Len(t, result.Rows, 8)
	assert.Equal(t, "$0.15", result.Multiplier)
	assert.Equal(t, PayoutScheduleRow{
		Points: 10, SelfDraw: 64, OutRight: 128,
		SelfDrawAmount: "+$9.60", OutRightAmount: "+$19.20",
	}, result.Rows[7])
}

// ===== FormatAmount =====

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"10.8", "+$10.80"},
		{"-3.6", "-$3.60"},
		{"0", "$0.00"},
		{"-0.001", "$0.00"},
		{"1234.5", "+$1,234.50"},
		{"-1234567.891", "-$1,234,567.89"},
		{"0.005", "+$0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.input)))
		})
	}
}
