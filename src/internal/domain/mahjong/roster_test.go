package mahjong_test

import (
	"testing"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(players []mahjong.Player) []string {
	out := make([]string, 0, len(players))
	for _, pl := range players {
		out = append(out, pl.String())
	}
	return out
}

// ===== Player =====

func TestNewPlayer_Normalizes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"nel", "NEL"},
		{"  Wai ", "WAI"},
		{"BOS", "BOS"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pl, err := mahjong.NewPlayer(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pl.String())
		})
	}
}

func TestNewPlayer_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		_, err := mahjong.NewPlayer(input)
		assert.ErrorIs(t, err, mahjong.ErrInvalidPlayer)
	}
}

// ===== Roster =====

func TestNewDefaultRoster_SortedDefaults(t *testing.T) {
	roster := mahjong.NewDefaultRoster()

	assert.Equal(t, []string{"AMA", "BOS", "CAM", "JEN", "LIL", "LIS", "NEL", "WAI"}, names(roster.Players()))
	assert.Equal(t, 8, roster.Len())
}

func TestRoster_AddNormalizesAndDeduplicates(t *testing.T) {
	// Arrange
	roster := mahjong.NewDefaultRoster()

	// Act
	added, err := roster.Add("  kit ")
	require.NoError(t, err)
	_, err = roster.Add("KIT")
	require.NoError(t, err)
	_, err = roster.Add("nel")
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "KIT", added.String())
	assert.Equal(t, 9, roster.Len())
	assert.True(t, roster.Contains(p("KIT")))
	assert.Equal(t, "KIT", names(roster.Players())[4])
}

func TestRoster_AddEmptyRejected(t *testing.T) {
	roster := mahjong.NewDefaultRoster()

	_, err := roster.Add(" ")

	assert.ErrorIs(t, err, mahjong.ErrInvalidPlayer)
	assert.Equal(t, 8, roster.Len())
}

func TestRoster_ResetRestoresDefaults(t *testing.T) {
	roster, err := mahjong.NewRoster([]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, names(roster.Players()))

	roster.Reset()

	assert.False(t, roster.Contains(p("X")))
	assert.Equal(t, len(mahjong.DefaultRosterNames), roster.Len())
}

// ===== ActivePlayers =====

func TestNewActivePlayers(t *testing.T) {
	roster := mahjong.NewDefaultRoster()

	tests := []struct {
		name    string
		input   []string
		wantErr bool
	}{
		{"四位合法", []string{"nel", "WAI", "CAM", "BOS"}, false},
		{"三位", []string{"NEL", "WAI", "CAM"}, true},
		{"五位", []string{"NEL", "WAI", "CAM", "BOS", "LIL"}, true},
		{"重複", []string{"NEL", "WAI", "CAM", "nel"}, true},
		{"不在名單", []string{"NEL", "WAI", "CAM", "ZED"}, true},
		{"空名稱", []string{"NEL", "WAI", "CAM", ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, err := mahjong.NewActivePlayers(roster, tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, mahjong.ErrInvalidActivePlayers)
				assert.True(t, active.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"NEL", "WAI", "CAM", "BOS"}, names(active.Players()))
		})
	}
}

func TestNewActivePlayers_NilRosterSkipsMembership(t *testing.T) {
	active, err := mahjong.NewActivePlayers(nil, []string{"A", "B", "C", "D"})

	require.NoError(t, err)
	assert.True(t, active.Contains(p("a")))
}

func TestActivePlayers_Opponents(t *testing.T) {
	active := table(t, "LIS", "AMA", "JEN", "LIL")

	opponents, ok := active.Opponents(p("JEN"))
	require.True(t, ok)
	assert.Equal(t, []string{"LIS", "AMA", "LIL"}, names(opponents))

	_, ok = active.Opponents(p("NEL"))
	assert.False(t, ok)
}
