package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackyeh168/mahjong_ledger/src/internal/infrastructure/config"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open 依設定連線資料庫並確保 game_log 資料表存在
//
// 支援 sqlite（預設）、postgres、mysql
func Open(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(logger, ParseGormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("連接資料庫失敗: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("獲取資料庫實例失敗: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if isInMemorySQLite(cfg) {
		// 每條連線各自擁有一個 in-memory 資料庫
		maxOpen = 1
	}
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("資料庫連接測試失敗: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	logger.Info("資料庫連接成功",
		zap.String("driver", cfg.Driver),
		zap.Int("max_open", maxOpen),
	)
	return db, nil
}

// Migrate 建立 game_log 資料表（已存在時不變更資料）
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&GameRecordModel{}); err != nil {
		return fmt.Errorf("遷移 game_log 失敗: %w", err)
	}
	return nil
}

// Close 關閉底層連線
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	case "postgres", "postgresql":
		return postgres.Open(cfg.DSN), nil
	case "sqlite", "sqlite3", "":
		if !isInMemorySQLite(cfg) {
			if dir := filepath.Dir(cfg.DSN); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, fmt.Errorf("建立資料目錄失敗: %w", err)
				}
			}
		}
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("不支援的資料庫驅動: %s", cfg.Driver)
	}
}

func isInMemorySQLite(cfg config.DatabaseConfig) bool {
	if cfg.Driver != "sqlite" && cfg.Driver != "sqlite3" && cfg.Driver != "" {
		return false
	}
	return cfg.DSN == ":memory:" || strings.Contains(cfg.DSN, "mode=memory") || strings.HasPrefix(cfg.DSN, "file::memory:")
}
