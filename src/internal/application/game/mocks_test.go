package game

import (
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/shared"
)

// ===========================
// Mock Repository
// ===========================

// MockGameRecordRepository 記憶體中的牌局日誌
type MockGameRecordRepository struct {
	records []*mahjong.GameRecord
	nextID  int64

	AppendCallCount int
	DeleteCallCount int
	ClearCallCount  int

	// 注入錯誤
	AppendErr error
	ListErr   error
	CountErr  error
	DeleteErr error
	ClearErr  error
}

func NewMockGameRecordRepository() *MockGameRecordRepository {
	return &MockGameRecordRepository{nextID: 1}
}

func (m *MockGameRecordRepository) Append(ctx shared.TransactionContext, record *mahjong.GameRecord) (int64, error) {
	m.AppendCallCount++
	if m.AppendErr != nil {
		return 0, m.AppendErr
	}
	id := m.nextID
	m.nextID++
	persisted, err := mahjong.ReconstructGameRecord(id, record.Winner(), record.Losers(), record.WinType(), record.Points())
	if err != nil {
		return 0, err
	}
	m.records = append(m.records, persisted)
	return id, nil
}

func (m *MockGameRecordRepository) ListAll(ctx shared.TransactionContext) ([]*mahjong.GameRecord, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]*mahjong.GameRecord, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *MockGameRecordRepository) Count(ctx shared.TransactionContext) (int64, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return int64(len(m.records)), nil
}

func (m *MockGameRecordRepository) DeleteMostRecent(ctx shared.TransactionContext) (bool, error) {
	m.DeleteCallCount++
	if m.DeleteErr != nil {
		return false, m.DeleteErr
	}
	if len(m.records) == 0 {
		return false, nil
	}
	m.records = m.records[:len(m.records)-1]
	return true, nil
}

func (m *MockGameRecordRepository) ClearAll(ctx shared.TransactionContext) error {
	m.ClearCallCount++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.records = nil
	m.nextID = 1
	return nil
}

// ===========================
// Mock TransactionManager
// ===========================

type MockTransactionManager struct {
	InTransactionCallCount int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	return fn(struct{}{})
}

// ===========================
// Mock EventPublisher
// ===========================

type MockEventPublisher struct {
	Events []shared.DomainEvent
}

func (m *MockEventPublisher) Publish(event shared.DomainEvent) error {
	m.Events = append(m.Events, event)
	return nil
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	m.Events = append(m.Events, events...)
	return nil
}

func (m *MockEventPublisher) Types() []string {
	out := make([]string, 0, len(m.Events))
	for _, e := range m.Events {
		out = append(out, e.EventType())
	}
	return out
}

// ===========================
// Stub TableProvider
// ===========================

type stubTable struct {
	active mahjong.ActivePlayers
	err    error
}

func (s stubTable) ActiveTable() (mahjong.ActivePlayers, error) {
	return s.active, s.err
}
