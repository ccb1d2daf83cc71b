package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/jackyeh168/mahjong_ledger/src/internal/application/game"
	"github.com/jackyeh168/mahjong_ledger/src/internal/application/session"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func renderSettlement(out io.Writer, result *game.GetSettlementResult) {
	if result.NoGames {
		fmt.Fprintln(out, game.MessageNoGames)
		return
	}

	fmt.Fprintf(out, "Settlement over %d games at %s per point\n", result.Games, result.Multiplier)
	w := newTable(out)
	for _, b := range result.Balances {
		fmt.Fprintf(w, "%s\t%s\n", b.Player, b.Display)
	}
	_ = w.Flush()
}

func renderAwards(out io.Writer, result *game.GetAwardsResult) {
	for _, a := range result.Awards {
		fmt.Fprintln(out, a.Display())
	}
}

func renderGames(out io.Writer, result *game.ListGamesResult) {
	if len(result.Games) == 0 {
		fmt.Fprintln(out, game.MessageNoGames)
		return
	}

	w := newTable(out)
	fmt.Fprintln(w, "ID\tWINNER\tLOSER1\tLOSER2\tLOSER3\tWIN TYPE\tPOINTS")
	for _, g := range result.Games {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
			g.ID, g.Winner, g.Loser1, g.Loser2, g.Loser3, g.WinType, g.Points)
	}
	_ = w.Flush()
}

func renderSchedule(out io.Writer, result *game.GetPayoutScheduleResult) {
	fmt.Fprintf(out, "Payout schedule at %s per point\n", result.Multiplier)
	w := newTable(out)
	fmt.Fprintln(w, "POINTS\tSELF DRAW\t\tOUT RIGHT\t")
	for _, r := range result.Rows {
		fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%s\n", r.Points, r.SelfDraw, r.SelfDrawAmount, r.OutRight, r.OutRightAmount)
	}
	_ = w.Flush()
}

func renderPlayers(out io.Writer, result *session.ListPlayersResult) {
	fmt.Fprintf(out, "Players: %s\n", strings.Join(result.Players, ", "))
	if len(result.Table) == 0 {
		fmt.Fprintln(out, "Table: not selected")
		return
	}
	fmt.Fprintf(out, "Table: %s\n", strings.Join(result.Table, ", "))
}

func printCommands(out io.Writer) {
	fmt.Fprint(out, `Commands:
  add -w WINNER -t TYPE -p POINTS [-l LOSER]   record a game (TYPE: 出銃 / 包自摸 / 自摸)
  undo                                         delete the most recent game
  reset --yes                                  clear the whole game log
  settle [-m MULTIPLIER]                       net balance per player
  awards                                       the five awards
  games                                        list every recorded game
  schedule                                     payout schedule
  players [add NAME | reset]                   roster
  table A B C D                                select the four seated players
  multiplier 0.10|0.15|0.20                    change the multiplier
  shell                                        interactive session
`)
}

func printUsage(out io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(out, "Usage: mahjong [flags] <command> [args]")
	fmt.Fprintln(out)
	printCommands(out)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprint(out, flags.FlagUsages())
}
