package events

import (
	"fmt"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/shared"
	"go.uber.org/zap"
)

// ===========================
// ZapEventPublisher
// ===========================

// ZapEventPublisher 把領域事件寫入結構化日誌
type ZapEventPublisher struct {
	logger *zap.Logger
}

// NewZapEventPublisher 建構函數
func NewZapEventPublisher(logger *zap.Logger) *ZapEventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapEventPublisher{logger: logger.Named("events")}
}

// Publish 實現 shared.EventPublisher 介面
func (p *ZapEventPublisher) Publish(event shared.DomainEvent) error {
	if event == nil {
		return nil
	}

	fields := []zap.Field{
		zap.String("event_id", event.EventID()),
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_id", event.AggregateID()),
		zap.Time("occurred_at", event.OccurredAt()),
	}
	if s, ok := event.(fmt.Stringer); ok {
		fields = append(fields, zap.String("summary", s.String()))
	}
	p.logger.Info("domain event", fields...)
	return nil
}

// PublishBatch 實現 shared.EventPublisher 介面
func (p *ZapEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	for _, e := range events {
		if err := p.Publish(e); err != nil {
			return err
		}
	}
	return nil
}
