package mahjong_test

import (
	"testing"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== 測試輔助 =====

func p(name string) mahjong.Player {
	return mahjong.MustPlayer(name)
}

func selfDraw(t *testing.T, winner string, points int, losers ...string) *mahjong.GameRecord {
	t.Helper()
	ls := make([]mahjong.Player, 0, len(losers))
	for _, l := range losers {
		ls = append(ls, p(l))
	}
	r, err := mahjong.NewGameRecord(p(winner), ls, mahjong.WinTypeSelfDraw, points)
	require.NoError(t, err)
	return r
}

func single(t *testing.T, winType mahjong.WinType, winner, loser string, points int) *mahjong.GameRecord {
	t.Helper()
	r, err := mahjong.NewGameRecord(p(winner), []mahjong.Player{p(loser)}, winType, points)
	require.NoError(t, err)
	return r
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entryFor(entries []mahjong.LedgerEntry, name string) decimal.Decimal {
	for _, e := range entries {
		if e.Player.String() == name {
			return e.Amount
		}
	}
	return decimal.Zero
}

// ===== ScoringService 測試 =====

// Test 1: 自摸 5 番，倍率 0.15
func TestScoringService_Score_SelfDraw(t *testing.T) {
	// Arrange
	service := mahjong.NewScoringService()
	record := selfDraw(t, "A", 5, "B", "C", "D")

	// Act
	entries, err := service.Score(record, mahjong.DefaultPayoutSchedule(), mahjong.DefaultMultiplier())

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.True(t, dec("10.80").Equal(entryFor(entries, "A")), "got %s", entryFor(entries, "A"))
	for _, loser := range []string{"B", "C", "D"} {
		assert.True(t, dec("-3.60").Equal(entryFor(entries, loser)), "loser %s", loser)
	}
	assert.True(t, mahjong.SumEntries(entries).IsZero())
}

// Test 2: 出銃 8 番
func TestScoringService_Score_Discard(t *testing.T) {
	// Arrange
	service := mahjong.NewScoringService()
	record := single(t, mahjong.WinTypeDiscard, "A", "B", 8)

	// Act
	entries, err := service.Score(record, mahjong.DefaultPayoutSchedule(), mahjong.DefaultMultiplier())

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, dec("9.60").Equal(entryFor(entries, "A")))
	assert.True(t, dec("-9.60").Equal(entryFor(entries, "B")))
}

// Test 3: 包自摸 3 番
func TestScoringService_Score_SelfDrawCharged(t *testing.T) {
	// Arrange
	service := mahjong.NewScoringService()
	record := single(t, mahjong.WinTypeSelfDrawCharged, "A", "B", 3)

	// Act
	entries, err := service.Score(record, mahjong.DefaultPayoutSchedule(), mahjong.DefaultMultiplier())

	// Assert
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, dec("1.80").Equal(entryFor(entries, "A")))
	assert.True(t, dec("-1.80").Equal(entryFor(entries, "B")))
}

// Test 4: 所有番數、倍率、胡牌方式皆為零和
func TestScoringService_Score_AlwaysZeroSum(t *testing.T) {
	service := mahjong.NewScoringService()
	schedule := mahjong.DefaultPayoutSchedule()

	for _, m := range mahjong.AllowedMultipliers {
		multiplier, err := mahjong.NewMultiplier(m)
		require.NoError(t, err)

		for points := mahjong.MinPoints; points <= mahjong.MaxPoints; points++ {
			records := []*mahjong.GameRecord{
				selfDraw(t, "NEL", points, "WAI", "CAM", "BOS"),
				single(t, mahjong.WinTypeSelfDrawCharged, "NEL", "WAI", points),
				single(t, mahjong.WinTypeDiscard, "NEL", "WAI", points),
			}
			for _, r := range records {
				entries, err := service.Score(r, schedule, multiplier)
				require.NoError(t, err)
				assert.True(t, mahjong.SumEntries(entries).IsZero(),
					"%s %d 番 倍率 %s 應為零和", r.WinType(), points, m)
			}
		}
	}
}

// Test 5: 包自摸與自摸的贏家收入相同
func TestScoringService_Score_ChargedMatchesSelfDrawWinnerAmount(t *testing.T) {
	service := mahjong.NewScoringService()
	schedule := mahjong.DefaultPayoutSchedule()
	multiplier := mahjong.DefaultMultiplier()

	for points := mahjong.MinPoints; points <= mahjong.MaxPoints; points++ {
		sd, err := service.Score(selfDraw(t, "A", points, "B", "C", "D"), schedule, multiplier)
		require.NoError(t, err)
		charged, err := service.Score(single(t, mahjong.WinTypeSelfDrawCharged, "A", "B", points), schedule, multiplier)
		require.NoError(t, err)

		assert.True(t, entryFor(sd, "A").Equal(entryFor(charged, "A")))
		assert.True(t, entryFor(charged, "B").Equal(entryFor(sd, "B").Mul(decimal.NewFromInt(3))))
	}
}

// Test 6: nil 記錄返回 ErrInvalidRecord
func TestScoringService_Score_NilRecord(t *testing.T) {
	service := mahjong.NewScoringService()

	entries, err := service.Score(nil, mahjong.DefaultPayoutSchedule(), mahjong.DefaultMultiplier())

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, mahjong.ErrInvalidRecord)
}

// ===== PayoutSchedule / Multiplier 測試 =====

func TestPayoutSchedule_Rows(t *testing.T) {
	rows := mahjong.DefaultPayoutSchedule().Rows()

	require.Len(t, rows, 8)
	assert.Equal(t, mahjong.PayoutRow{Points: 3, SelfDraw: 4, OutRight: 8}, rows[0])
	assert.Equal(t, mahjong.PayoutRow{Points: 7, SelfDraw: 24, OutRight: 48}, rows[4])
	assert.Equal(t, mahjong.PayoutRow{Points: 10, SelfDraw: 64, OutRight: 128}, rows[7])
}

func TestPayoutSchedule_OutOfRange(t *testing.T) {
	schedule := mahjong.DefaultPayoutSchedule()

	for _, points := range []int{0, 2, 11, -1} {
		_, err := schedule.SelfDraw(points)
		assert.ErrorIs(t, err, mahjong.ErrInvalidRecord)
		_, err = schedule.OutRight(points)
		assert.ErrorIs(t, err, mahjong.ErrInvalidRecord)
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"0.10 合法", "0.10", false},
		{"0.1 等同 0.10", "0.1", false},
		{"0.15 合法", "0.15", false},
		{"0.20 合法", "0.2", false},
		{"0.25 不在選項內", "0.25", true},
		{"非數字", "abc", true},
		{"空字串", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := mahjong.ParseMultiplier(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, mahjong.ErrInvalidMultiplier)
				return
			}
			require.NoError(t, err)
			assert.True(t, m.Value().Equal(dec(tt.input)))
		})
	}
}

func TestMultiplier_DefaultAndString(t *testing.T) {
	m := mahjong.DefaultMultiplier()

	assert.True(t, m.Value().Equal(dec("0.15")))
	assert.Equal(t, "$0.15", m.String())
}
