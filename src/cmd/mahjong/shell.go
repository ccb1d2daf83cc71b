package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Shell 互動模式：名單、牌桌與倍率在整個工作階段內保留
func (a *App) Shell(in io.Reader) {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(a.out, "Mahjong ledger. Type 'help' for commands, 'quit' to exit.")

	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(a.out)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		args := strings.Fields(line)
		if args[0] == "quit" || args[0] == "exit" {
			return
		}

		if err := a.Dispatch(args); err != nil {
			fmt.Fprintf(a.out, "Error: %s\n", a.fail(err))
		}
	}
}
