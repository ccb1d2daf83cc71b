package persistence

import (
	"errors"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM GameRecordRepository 實作
// ===========================

// GORMGameRecordRepository GORM 實作的牌局日誌倉儲
//
// 職責：
// - Domain ↔ GORM 轉換（toDomain / toGORM）
// - 執行 GORM 操作
// - 把資料庫錯誤映射為 mahjong.ErrStoreUnavailable
type GORMGameRecordRepository struct {
	db *gorm.DB
}

// NewGameRecordRepository 創建倉儲實例
func NewGameRecordRepository(db *gorm.DB) mahjong.GameRecordRepository {
	return &GORMGameRecordRepository{db: db}
}

// Append 追加一筆記錄
//
// 資料庫分配自動遞增 ID，返回該 ID
func (r *GORMGameRecordRepository) Append(ctx shared.TransactionContext, record *mahjong.GameRecord) (int64, error) {
	if record == nil {
		return 0, mahjong.ErrInvalidRecord.WithContext("rule", "record is nil")
	}
	if record.ID() != 0 {
		return 0, mahjong.ErrInvalidRecord.WithContext(
			"rule", "record already persisted",
			"record_id", record.ID(),
		)
	}

	model := toGORM(record)
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return 0, r.mapError("append", err)
	}
	return model.ID, nil
}

// ListAll 依 ID 遞增返回全部記錄
func (r *GORMGameRecordRepository) ListAll(ctx shared.TransactionContext) ([]*mahjong.GameRecord, error) {
	var models []GameRecordModel
	if err := r.getDB(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, r.mapError("list", err)
	}

	records := make([]*mahjong.GameRecord, 0, len(models))
	for i := range models {
		record, err := toDomain(&models[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Count 資料列數量
//
// 只做 COUNT 查詢，損壞的資料列同樣計入
func (r *GORMGameRecordRepository) Count(ctx shared.TransactionContext) (int64, error) {
	var n int64
	if err := r.getDB(ctx).Model(&GameRecordModel{}).Count(&n).Error; err != nil {
		return 0, r.mapError("count", err)
	}
	return n, nil
}

// DeleteMostRecent 刪除 ID 最大的記錄
//
// 空表時返回 (false, nil)
func (r *GORMGameRecordRepository) DeleteMostRecent(ctx shared.TransactionContext) (bool, error) {
	db := r.getDB(ctx)

	var latest GameRecordModel
	err := db.Order("id DESC").Take(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, r.mapError("find latest", err)
	}

	result := db.Delete(&GameRecordModel{}, latest.ID)
	if result.Error != nil {
		return false, r.mapError("delete latest", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ClearAll 刪除並重建 game_log（自動遞增 ID 從頭開始）
//
// 資料表不存在時同樣成功
func (r *GORMGameRecordRepository) ClearAll(ctx shared.TransactionContext) error {
	migrator := r.getDB(ctx).Migrator()

	if err := migrator.DropTable(&GameRecordModel{}); err != nil {
		return r.mapError("drop table", err)
	}
	if err := migrator.CreateTable(&GameRecordModel{}); err != nil {
		return r.mapError("create table", err)
	}
	return nil
}

// ===========================
// 私有輔助方法
// ===========================

func (r *GORMGameRecordRepository) getDB(ctx shared.TransactionContext) *gorm.DB {
	return dbFrom(ctx, r.db)
}

// mapError 資料庫錯誤 → ErrStoreUnavailable（保留原始錯誤作為 Cause）
func (r *GORMGameRecordRepository) mapError(op string, err error) error {
	return mahjong.ErrStoreUnavailable.WithContext(
		"operation", op,
		"database_error", err.Error(),
	).WithCause(err)
}
