package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jackyeh168/mahjong_ledger/src/internal/application/game"
	"github.com/jackyeh168/mahjong_ledger/src/internal/application/session"
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/mahjong"
	"github.com/jackyeh168/mahjong_ledger/src/internal/domain/shared"
	"github.com/jackyeh168/mahjong_ledger/src/internal/infrastructure/config"
)

var errUnknownCommand = errors.New("unknown command")

// messageOperationFailed 資料庫失敗時的介面訊息（原因只寫入日誌）
const messageOperationFailed = "Operation failed, please try again."

// App 指令層：把文字指令轉成 Use Case 呼叫並輸出結果
type App struct {
	out    io.Writer
	logger *zap.Logger

	recordGame  *game.RecordGameUseCase
	undoLast    *game.UndoLastGameUseCase
	resetGames  *game.ResetGamesUseCase
	settlement  *game.GetSettlementUseCase
	awards      *game.GetAwardsUseCase
	listGames   *game.ListGamesUseCase
	schedule    *game.GetPayoutScheduleUseCase
	addPlayer   *session.AddPlayerUseCase
	resetRoster *session.ResetRosterUseCase
	listPlayers *session.ListPlayersUseCase
	selectTable *session.SelectTableUseCase
	setMult     *session.SetMultiplierUseCase
}

// NewApp 組裝全部 Use Case
func NewApp(
	sess *session.Session,
	repo mahjong.GameRecordRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	logger *zap.Logger,
	out io.Writer,
) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		out:         out,
		logger:      logger,
		recordGame:  game.NewRecordGameUseCase(repo, txManager, publisher, sess, logger),
		undoLast:    game.NewUndoLastGameUseCase(repo, txManager, publisher, logger),
		resetGames:  game.NewResetGamesUseCase(repo, txManager, publisher, logger),
		settlement:  game.NewGetSettlementUseCase(repo, sess),
		awards:      game.NewGetAwardsUseCase(repo),
		listGames:   game.NewListGamesUseCase(repo),
		schedule:    game.NewGetPayoutScheduleUseCase(sess),
		addPlayer:   session.NewAddPlayerUseCase(sess, logger),
		resetRoster: session.NewResetRosterUseCase(sess, logger),
		listPlayers: session.NewListPlayersUseCase(sess),
		selectTable: session.NewSelectTableUseCase(sess, logger),
		setMult:     session.NewSetMultiplierUseCase(sess, logger),
	}
}

// Dispatch 執行一個指令（args[0] 為指令名稱）
func (a *App) Dispatch(args []string) error {
	if len(args) == 0 {
		return nil
	}
	name, rest := args[0], args[1:]

	switch name {
	case "add":
		return a.cmdAdd(rest)
	case "undo":
		return a.cmdUndo()
	case "reset":
		return a.cmdReset(rest)
	case "settle":
		return a.cmdSettle(rest)
	case "awards":
		return a.cmdAwards()
	case "games":
		return a.cmdGames()
	case "players":
		return a.cmdPlayers(rest)
	case "table":
		return a.cmdTable(rest)
	case "multiplier":
		return a.cmdMultiplier(rest)
	case "schedule":
		return a.cmdSchedule()
	case "help":
		printCommands(a.out)
		return nil
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, name)
	}
}

// applyConfig 套用重新載入的設定（目前只有倍率可以熱更新）
func (a *App) applyConfig(cfg *config.Config) {
	result, err := a.setMult.Execute(session.SetMultiplierCommand{Multiplier: cfg.Scoring.Multiplier})
	if err != nil {
		a.logger.Warn("config multiplier rejected", zap.Error(err))
		return
	}
	a.logger.Info("config reloaded", zap.String("multiplier", result.Multiplier))
}

// ===========================
// 牌局
// ===========================

func (a *App) cmdAdd(args []string) error {
	fs := newCommandFlags("add")
	winner := fs.StringP("winner", "w", "", "贏家")
	loser := fs.StringP("loser", "l", "", "輸家（自摸時可省略）")
	winType := fs.StringP("type", "t", "", "胡牌方式：出銃 / 包自摸 / 自摸")
	points := fs.IntP("points", "p", 0, "番數 3-10")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.recordGame.Execute(game.RecordGameCommand{
		Winner:  *winner,
		Loser:   *loser,
		WinType: *winType,
		Points:  *points,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "#%d %s %s %d番 ← %s\n",
		result.RecordID, result.Winner, result.WinType, result.Points, strings.Join(result.Losers, ", "))
	return nil
}

func (a *App) cmdUndo() error {
	result, err := a.undoLast.Execute()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, result.Message)
	return nil
}

func (a *App) cmdReset(args []string) error {
	fs := newCommandFlags("reset")
	yes := fs.BoolP("yes", "y", false, "確認清除全部牌局")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*yes {
		fmt.Fprintln(a.out, "Refusing to clear the game log without --yes")
		return nil
	}

	result, err := a.resetGames.Execute()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s Cleared %d games.\n", result.Message, result.Cleared)
	return nil
}

func (a *App) cmdSettle(args []string) error {
	fs := newCommandFlags("settle")
	multiplier := fs.StringP("multiplier", "m", "", "以指定倍率結算（不改變目前倍率）")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.settlement.Execute(game.GetSettlementQuery{Multiplier: *multiplier})
	if err != nil {
		return err
	}
	renderSettlement(a.out, result)
	return nil
}

func (a *App) cmdAwards() error {
	result, err := a.awards.Execute()
	if err != nil {
		return err
	}
	renderAwards(a.out, result)
	return nil
}

func (a *App) cmdGames() error {
	result, err := a.listGames.Execute()
	if err != nil {
		return err
	}
	renderGames(a.out, result)
	return nil
}

func (a *App) cmdSchedule() error {
	renderSchedule(a.out, a.schedule.Execute())
	return nil
}

// ===========================
// 名單 / 牌桌 / 倍率
// ===========================

// cmdPlayers
//
//	players            列出名單
//	players add NAME   新增玩家
//	players reset      重置為預設名單
func (a *App) cmdPlayers(args []string) error {
	if len(args) == 0 {
		renderPlayers(a.out, a.listPlayers.Execute())
		return nil
	}

	switch args[0] {
	case "add":
		if len(args) != 2 {
			return fmt.Errorf("usage: players add NAME")
		}
		result, err := a.addPlayer.Execute(session.AddPlayerCommand{Name: args[1]})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, result.Message)
		return nil
	case "reset":
		result := a.resetRoster.Execute()
		fmt.Fprintln(a.out, result.Message)
		if result.TableCleared {
			fmt.Fprintln(a.out, "Table cleared, please select four players again.")
		}
		return nil
	default:
		return fmt.Errorf("%w: players %s", errUnknownCommand, args[0])
	}
}

func (a *App) cmdTable(args []string) error {
	if len(args) == 1 {
		args = strings.Split(args[0], ",")
	}
	result, err := a.selectTable.Execute(session.SelectTableCommand{Players: args})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Table: %s\n", strings.Join(result.Table, ", "))
	return nil
}

func (a *App) cmdMultiplier(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: multiplier 0.10|0.15|0.20")
	}
	result, err := a.setMult.Execute(session.SetMultiplierCommand{Multiplier: args[0]})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, result.Message)
	return nil
}

func newCommandFlags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// fail 記錄資料庫錯誤並返回介面訊息
func (a *App) fail(err error) string {
	if errors.Is(err, mahjong.ErrStoreUnavailable) {
		a.logger.Error("store unavailable", zap.Error(err))
	}
	return userMessage(err)
}

// userMessage 介面顯示用的錯誤訊息
//
// 提交驗證失敗時直接顯示規則訊息，例如 "Points cannot be empty"
// 資料庫失敗只顯示 messageOperationFailed
func userMessage(err error) string {
	if errors.Is(err, mahjong.ErrStoreUnavailable) {
		return messageOperationFailed
	}
	var domainErr *mahjong.DomainError
	if errors.As(err, &domainErr) {
		if rule, ok := domainErr.Context["rule"].(string); ok {
			return rule
		}
	}
	return err.Error()
}
