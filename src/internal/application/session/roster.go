package session

import (
	"fmt"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"go.uber.org/zap"
)

// ===========================
// AddPlayer
// ===========================

// AddPlayerCommand 新增玩家命令
type AddPlayerCommand struct {
	Name string
}

// AddPlayerResult 新增結果
type AddPlayerResult struct {
	Player  string   // 正規化後的名稱
	Players []string // 新增後的完整名單
	Message string   // 例如 "Welcome to the den, KIT."
}

// AddPlayerUseCase 新增玩家到名單（重複新增為 no-op）
type AddPlayerUseCase struct {
	session *Session
	logger  *zap.Logger
}

// NewAddPlayerUseCase 創建 Use Case 實例
func NewAddPlayerUseCase(session *Session, logger *zap.Logger) *AddPlayerUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddPlayerUseCase{session: session, logger: logger}
}

// Execute 執行新增
func (uc *AddPlayerUseCase) Execute(cmd AddPlayerCommand) (*AddPlayerResult, error) {
	p, err := uc.session.addPlayer(cmd.Name)
	if err != nil {
		return nil, fmt.Errorf("invalid player name: %w", err)
	}

	uc.logger.Info("player added", zap.String("player", p.String()))
	return &AddPlayerResult{
		Player:  p.String(),
		Players: playerNames(uc.session.Players()),
		Message: fmt.Sprintf("Welcome to the den, %s.", p),
	}, nil
}

// ===========================
// ResetRoster
// ===========================

// MessageRosterReset 重置名單後的提示
const MessageRosterReset = "Reset to default players."

// ResetRosterResult 重置結果
type ResetRosterResult struct {
	Players      []string
	TableCleared bool
	Message      string
}

// ResetRosterUseCase 將名單重置為預設名單
type ResetRosterUseCase struct {
	session *Session
	logger  *zap.Logger
}

// NewResetRosterUseCase 創建 Use Case 實例
func NewResetRosterUseCase(session *Session, logger *zap.Logger) *ResetRosterUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResetRosterUseCase{session: session, logger: logger}
}

// Execute 執行重置
func (uc *ResetRosterUseCase) Execute() *ResetRosterResult {
	cleared := uc.session.resetRoster()
	uc.logger.Info("roster reset", zap.Bool("table_cleared", cleared))
	return &ResetRosterResult{
		Players:      playerNames(uc.session.Players()),
		TableCleared: cleared,
		Message:      MessageRosterReset,
	}
}

// ===========================
// ListPlayers
// ===========================

// ListPlayersResult 名單與當前牌桌
type ListPlayersResult struct {
	Players []string
	Table   []string // 尚未選定時為空
}

// ListPlayersUseCase 列出名單
type ListPlayersUseCase struct {
	session *Session
}

// NewListPlayersUseCase 創建 Use Case 實例
func NewListPlayersUseCase(session *Session) *ListPlayersUseCase {
	return &ListPlayersUseCase{session: session}
}

// Execute 執行查詢
func (uc *ListPlayersUseCase) Execute() *ListPlayersResult {
	result := &ListPlayersResult{Players: playerNames(uc.session.Players())}
	if active, err := uc.session.ActiveTable(); err == nil {
		result.Table = playerNames(active.Players())
	}
	return result
}

func playerNames(players []mahjong.Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.String())
	}
	return out
}
