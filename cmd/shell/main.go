package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kaifcoder/codecrafters-shell/internal/config"
	"github.com/kaifcoder/codecrafters-shell/internal/session"
	"github.com/kaifcoder/codecrafters-shell/internal/shell"

	// Registers the builtin set.
	_ "github.com/kaifcoder/codecrafters-shell/internal/commands"
)

func main() {
	var (
		oneShot     string
		noColor     bool
		historyFile string
	)

	flags := pflag.NewFlagSet("shell", pflag.ContinueOnError)
	flags.StringVarP(&oneShot, "command", "c", "", "execute one command line and exit")
	flags.BoolVar(&noColor, "no-color", false, "disable prompt styling")
	flags.StringVar(&historyFile, "history-file", "", "override the history file path")
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if os.Getenv("NO_COLOR") != "" {
		noColor = true
	}

	env, err := session.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shell: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "shell: %v\n", err)
		os.Exit(1)
	}

	if historyFile == "" {
		historyFile, err = config.HistoryPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "shell: %v\n", err)
			os.Exit(1)
		}
	}
	_ = env.LoadHistory(historyFile)

	if oneShot != "" {
		code := shell.RunLine(context.Background(), env, oneShot, os.Stdin, os.Stdout, os.Stderr)
		_ = env.SaveHistory(historyFile)
		os.Exit(normalizeExitCode(code))
	}

	colorEnabled := !noColor && cfg.Theme != "none"
	sh, err := shell.New(env, historyFile, colorEnabled)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shell: %v\n", err)
		os.Exit(1)
	}
	os.Exit(normalizeExitCode(sh.Run()))
}

// normalizeExitCode folds an arbitrary exit() argument into a valid
// process status byte, matching the n mod 256 contract.
func normalizeExitCode(code int) int {
	code %= 256
	if code < 0 {
		code += 256
	}
	return code
}
