package persistence

import (
	"testing"

	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ===========================
// 測試輔助函數
// ===========================

// setupTestDB 創建測試用的 SQLite in-memory 資料庫
//
// 每個測試使用獨立的 in-memory DB；連線數限制為 1，
// 否則連線池中的每條連線都會看到不同的空資料庫
func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cleanup := func() {
		_ = sqlDB.Close()
	}
	return db, cleanup
}

// newTestRecord 創建測試用的 GameRecord
func newTestRecord(t *testing.T, winType mahjong.WinType, winner string, points int, losers ...string) *mahjong.GameRecord {
	t.Helper()
	ls := make([]mahjong.Player, 0, len(losers))
	for _, l := range losers {
		ls = append(ls, mahjong.MustPlayer(l))
	}
	record, err := mahjong.NewGameRecord(mahjong.MustPlayer(winner), ls, winType, points)
	require.NoError(t, err)
	return record
}
