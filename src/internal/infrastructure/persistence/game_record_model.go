package persistence

import (
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
)

// ===========================
// GORM Model 定義
// ===========================

// GameRecordModel 牌局日誌資料表 game_log
//
// - ID 自動遞增
// - Loser2 / Loser3 只在自摸時有值
// - WinType 存中文標籤（出銃 / 包自摸 / 自摸）
type GameRecordModel struct {
	ID      int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Winner  string  `gorm:"column:winner;size:32;not null"`
	Loser1  string  `gorm:"column:loser1;size:32;not null"`
	Loser2  *string `gorm:"column:loser2;size:32"`
	Loser3  *string `gorm:"column:loser3;size:32"`
	WinType string  `gorm:"column:win_type;size:16;not null"`
	Points  int     `gorm:"column:points;not null"`
}

// TableName 指定表名
func (GameRecordModel) TableName() string {
	return "game_log"
}

// ===========================
// Domain ↔ GORM Model 轉換函數
// ===========================

// toDomain 將資料列重建為 GameRecord
//
// 重建時重新驗證；資料表中的損壞資料返回 ErrInvalidRecord（附帶 record_id）
func toDomain(model *GameRecordModel) (*mahjong.GameRecord, error) {
	winner, err := mahjong.NewPlayer(model.Winner)
	if err != nil {
		return nil, corrupted(model.ID, "winner", err)
	}

	winType, err := mahjong.ParseWinType(model.WinType)
	if err != nil {
		return nil, corrupted(model.ID, "win_type", err)
	}

	losers := make([]mahjong.Player, 0, 3)
	for i, name := range []*string{&model.Loser1, model.Loser2, model.Loser3} {
		if name == nil || *name == "" {
			continue
		}
		l, err := mahjong.NewPlayer(*name)
		if err != nil {
			return nil, corrupted(model.ID, "loser"+string(rune('1'+i)), err)
		}
		losers = append(losers, l)
	}

	record, err := mahjong.ReconstructGameRecord(model.ID, winner, losers, winType, model.Points)
	if err != nil {
		return nil, corrupted(model.ID, "record", err)
	}
	return record, nil
}

// toGORM 將 GameRecord 轉為資料列（ID 由資料庫分配）
func toGORM(record *mahjong.GameRecord) *GameRecordModel {
	model := &GameRecordModel{
		ID:      record.ID(),
		Winner:  record.Winner().String(),
		Loser1:  record.Loser1().String(),
		WinType: record.WinType().String(),
		Points:  record.Points(),
	}
	if l2, ok := record.Loser2(); ok {
		s := l2.String()
		model.Loser2 = &s
	}
	if l3, ok := record.Loser3(); ok {
		s := l3.String()
		model.Loser3 = &s
	}
	return model
}

func corrupted(id int64, field string, cause error) error {
	return mahjong.ErrInvalidRecord.WithContext(
		"record_id", id,
		"field", field,
		"reason", "corrupted row in game_log",
	).WithCause(cause)
}
