package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jackyeh168/mahjong_ledger/src/internal/application/session"
	"github.com/jackyeh168/mahjong_ledger/src/internal/infrastructure/config"
	"github.com/jackyeh168/mahjong_ledger/src/internal/infrastructure/events"
	"github.com/jackyeh168/mahjong_ledger/src/internal/infrastructure/logging"
	"github.com/jackyeh168/mahjong_ledger/src/internal/infrastructure/persistence"
)

// 版本信息
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run 解析參數、組裝依賴並執行指令，返回 exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// .env 只補充環境變數，不存在時略過
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "讀取 .env 失敗: %v\n", err)
		return 1
	}

	flags := pflag.NewFlagSet("mahjong", pflag.ContinueOnError)
	flags.SetInterspersed(false)
	flags.SetOutput(stderr)
	configPath := flags.StringP("config", "c", "", "設定檔路徑（預設搜尋 ./config/mahjong.yaml 與 ./mahjong.yaml）")
	flags.String("multiplier", "", "倍率：0.10 / 0.15 / 0.20")
	flags.String("dsn", "", "資料庫連線字串")
	flags.String("driver", "", "資料庫：sqlite / postgres / mysql")
	flags.String("log-level", "", "日誌等級：debug / info / warn / error")
	flags.StringSlice("players", nil, "玩家名單（逗號分隔）")
	flags.StringSlice("table", nil, "當前牌桌四位玩家（逗號分隔，依座位順序）")
	showVersion := flags.Bool("version", false, "顯示版本信息")
	flags.Usage = func() { printUsage(stderr, flags) }

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "mahjong %s\n", Version)
		return 0
	}
	if flags.NArg() == 0 {
		printUsage(stderr, flags)
		return 2
	}

	// 加載配置
	loader := config.New(*configPath)
	if err := loader.BindFlags(flags); err != nil {
		fmt.Fprintf(stderr, "綁定參數失敗: %v\n", err)
		return 1
	}
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(stderr, "加載配置失敗: %v\n", err)
		return 1
	}

	// 初始化日誌系統
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "初始化日誌失敗: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	// 初始化資料庫
	db, err := persistence.Open(cfg.Database, logger)
	if err != nil {
		logger.Error("open database failed", zap.Error(err))
		fmt.Fprintf(stderr, "初始化資料庫失敗: %v\n", err)
		return 1
	}
	defer func() {
		if err := persistence.Close(db); err != nil {
			logger.Warn("close database failed", zap.Error(err))
		}
	}()

	multiplier, err := cfg.Scoring.ParsedMultiplier()
	if err != nil {
		fmt.Fprintf(stderr, "加載配置失敗: %v\n", err)
		return 1
	}
	sess, err := session.NewSession(cfg.Scoring.Roster, cfg.Scoring.Table, multiplier)
	if err != nil {
		fmt.Fprintf(stderr, "初始化牌桌失敗: %s\n", userMessage(err))
		return 1
	}

	app := NewApp(sess, persistence.NewGameRecordRepository(db), persistence.NewGORMTransactionManager(db),
		events.NewZapEventPublisher(logger), logger, stdout)

	cmdArgs := flags.Args()
	if cmdArgs[0] == "shell" {
		// 互動模式下設定檔變更即時套用到倍率
		if loader.ConfigFileUsed() != "" {
			loader.Watch(func(newCfg *config.Config) {
				app.applyConfig(newCfg)
			}, func(err error) {
				logger.Warn("config reload rejected", zap.Error(err))
			})
		}
		app.Shell(stdin)
		return 0
	}

	if err := app.Dispatch(cmdArgs); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", app.fail(err))
		if errors.Is(err, errUnknownCommand) {
			return 2
		}
		return 1
	}
	return 0
}
