package mahjong

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// GameLogAggregateID 牌局日誌的聚合 ID（整個日誌為單一聚合）
const GameLogAggregateID = "game_log"

// ===========================
// GameRecorded 領域事件
// ===========================

// GameRecordedEvent 新增牌局事件
type GameRecordedEvent struct {
	eventID    string
	recordID   int64
	winner     Player
	winType    WinType
	points     int
	occurredAt time.Time
}

// NewGameRecordedEvent 創建新增牌局事件（record 必須已持久化）
func NewGameRecordedEvent(record *GameRecord) *GameRecordedEvent {
	return &GameRecordedEvent{
		eventID:    uuid.New().String(),
		recordID:   record.ID(),
		winner:     record.Winner(),
		winType:    record.WinType(),
		points:     record.Points(),
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *GameRecordedEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *GameRecordedEvent) EventType() string {
	return "mahjong.game_recorded"
}

// OccurredAt 實現 DomainEvent 介面
func (e *GameRecordedEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *GameRecordedEvent) AggregateID() string {
	return GameLogAggregateID
}

// RecordID 牌局流水號
func (e *GameRecordedEvent) RecordID() int64 {
	return e.recordID
}

// Winner 贏家
func (e *GameRecordedEvent) Winner() Player {
	return e.winner
}

// WinType 胡牌方式
func (e *GameRecordedEvent) WinType() WinType {
	return e.winType
}

// Points 番數
func (e *GameRecordedEvent) Points() int {
	return e.points
}

// ===========================
// LastGameUndone 領域事件
// ===========================

// LastGameUndoneEvent 撤銷最後一局事件
type LastGameUndoneEvent struct {
	eventID    string
	occurredAt time.Time
}

// NewLastGameUndoneEvent 創建撤銷事件
func NewLastGameUndoneEvent() *LastGameUndoneEvent {
	return &LastGameUndoneEvent{
		eventID:    uuid.New().String(),
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *LastGameUndoneEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *LastGameUndoneEvent) EventType() string {
	return "mahjong.last_game_undone"
}

// OccurredAt 實現 DomainEvent 介面
func (e *LastGameUndoneEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *LastGameUndoneEvent) AggregateID() string {
	return GameLogAggregateID
}

// ===========================
// GameLogReset 領域事件
// ===========================

// GameLogResetEvent 清空牌局日誌事件
type GameLogResetEvent struct {
	eventID    string
	cleared    int
	occurredAt time.Time
}

// NewGameLogResetEvent 創建清空事件
func NewGameLogResetEvent(cleared int) *GameLogResetEvent {
	return &GameLogResetEvent{
		eventID:    uuid.New().String(),
		cleared:    cleared,
		occurredAt: time.Now(),
	}
}

// EventID 實現 DomainEvent 介面
func (e *GameLogResetEvent) EventID() string {
	return e.eventID
}

// EventType 實現 DomainEvent 介面
func (e *GameLogResetEvent) EventType() string {
	return "mahjong.game_log_reset"
}

// OccurredAt 實現 DomainEvent 介面
func (e *GameLogResetEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e *GameLogResetEvent) AggregateID() string {
	return GameLogAggregateID
}

// Cleared 清空前的牌局數
func (e *GameLogResetEvent) Cleared() int {
	return e.cleared
}

// String 事件摘要（供日誌使用）
func (e *GameRecordedEvent) String() string {
	return "#" + strconv.FormatInt(e.recordID, 10) + " " + e.winner.String() + " " + e.winType.String() + " " + strconv.Itoa(e.points)
}
