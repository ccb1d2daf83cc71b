package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix 環境變數前綴，例如 MAHJONG_SCORING_MULTIPLIER
const EnvPrefix = "MAHJONG"

// Config 全局設定
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Scoring  ScoringConfig  `mapstructure:"scoring"`
}

// DatabaseConfig 牌局記錄倉儲的資料庫設定
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	LogLevel        string        `mapstructure:"log_level"`
}

// LogConfig 日誌設定
type LogConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	Output string        `mapstructure:"output"`
	File   LogFileConfig `mapstructure:"file"`
}

// LogFileConfig 日誌檔案輪轉設定
type LogFileConfig struct {
	Path       string `mapstructure:"path"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// ScoringConfig 計分設定
type ScoringConfig struct {
	// Multiplier 必須為 0.10 / 0.15 / 0.20 之一
	Multiplier string `mapstructure:"multiplier"`
	// Roster 初始玩家名單，留空使用預設名單
	Roster []string `mapstructure:"roster"`
	// Table 當前牌桌的四位玩家（可留空，由指令參數指定）
	Table []string `mapstructure:"table"`
}

// ParsedMultiplier 解析倍率
func (s ScoringConfig) ParsedMultiplier() (mahjong.Multiplier, error) {
	return mahjong.ParseMultiplier(s.Multiplier)
}

// Validate 檢查設定值
func (c *Config) Validate() error {
	if _, err := c.Scoring.ParsedMultiplier(); err != nil {
		return fmt.Errorf("scoring.multiplier: %w", err)
	}
	switch c.Database.Driver {
	case "sqlite", "sqlite3", "postgres", "postgresql", "mysql":
	default:
		return fmt.Errorf("database.driver: unsupported driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database.dsn: cannot be empty")
	}
	return nil
}

// ===========================
// Loader
// ===========================

// Loader 持有 viper 實例與目前生效的設定
type Loader struct {
	v   *viper.Viper
	mu  sync.RWMutex
	cfg *Config
}

// New 建立 Loader（尚未讀取設定）
//
// configPath 為空時依序搜尋 ./config/mahjong.yaml 與 ./mahjong.yaml
func New(configPath string) *Loader {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("mahjong")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	return &Loader{v: v}
}

// BindFlags 將指令參數綁定到設定鍵（參數優先於設定檔與環境變數）
//
// 只綁定 flag set 中存在的參數：
// - multiplier → scoring.multiplier
// - dsn        → database.dsn
// - driver     → database.driver
// - log-level  → log.level
// - players    → scoring.roster
// - table      → scoring.table
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"multiplier": "scoring.multiplier",
		"dsn":        "database.dsn",
		"driver":     "database.driver",
		"log-level":  "log.level",
		"players":    "scoring.roster",
		"table":      "scoring.table",
	}
	for flagName, key := range bindings {
		f := fs.Lookup(flagName)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", flagName, err)
		}
	}
	return nil
}

// Load 讀取並驗證設定
//
// 設定檔不存在時使用預設值（僅限未指定路徑的搜尋模式）
func (l *Loader) Load() (*Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("讀取設定檔失敗: %w", err)
		}
	}

	cfg, err := l.unmarshal()
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cfg = cfg
	l.mu.Unlock()

	return cfg, nil
}

// Get 目前生效的設定（尚未 Load 時為 nil）
func (l *Loader) Get() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cfg
}

// Watch 監聽設定檔變化
//
// 重新載入失敗（例如倍率不合法）時保留舊設定，並將錯誤交給 onError
func (l *Loader) Watch(callback func(*Config), onError func(error)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := l.unmarshal()
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("重新載入 %s 失敗: %w", e.Name, err))
			}
			return
		}

		l.mu.Lock()
		l.cfg = cfg
		l.mu.Unlock()

		if callback != nil {
			callback(cfg)
		}
	})
	l.v.WatchConfig()
}

// ConfigFileUsed 實際讀取的設定檔路徑（未讀取時為空字串）
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func (l *Loader) unmarshal() (*Config, error) {
	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("解析設定失敗: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load 便利函數：New(configPath).Load()
func Load(configPath string) (*Config, error) {
	return New(configPath).Load()
}

// setDefaults 設定預設值
func setDefaults(v *viper.Viper) {
	// 資料庫
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "./data/mahjong.db")
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.max_open_conns", 4)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.log_level", "warn")

	// 日誌
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "file")
	v.SetDefault("log.file.path", "./logs")
	v.SetDefault("log.file.filename", "mahjong.log")
	v.SetDefault("log.file.max_size", 10)
	v.SetDefault("log.file.max_age", 30)
	v.SetDefault("log.file.max_backups", 5)
	v.SetDefault("log.file.compress", true)

	// 計分
	v.SetDefault("scoring.multiplier", mahjong.DefaultMultiplier().Value().StringFixed(2))
	v.SetDefault("scoring.roster", mahjong.DefaultRosterNames)
	v.SetDefault("scoring.table", []string{})
}
