package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kaifcoder/codecrafters-shell/internal/session"
	"github.com/kaifcoder/codecrafters-shell/internal/ui"
)

// Shell drives the interactive read-eval-print loop: it reads a line with
// readline, parses and executes it, and repeats until exit or EOF.
type Shell struct {
	env         *session.Environment
	rl          *readline.Instance
	historyFile string
}

// New builds a Shell wired to the given environment. historyFile is
// handed to readline directly so line-recall (up-arrow) sees it; the
// dedup/500-cap policy is layered on top by Environment itself on save.
func New(env *session.Environment, historyFile string, colorEnabled bool) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            ui.Prompt(colorEnabled),
		HistoryFile:       historyFile,
		HistorySearchFold: true,
		AutoComplete:      NewCompleter(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	})
	if err != nil {
		return nil, err
	}
	return &Shell{env: env, rl: rl, historyFile: historyFile}, nil
}

// Run executes the read-eval-print loop until the shell exits, returning
// its final status.
func (sh *Shell) Run() int {
	defer sh.rl.Close()
	ctx := context.Background()

	for {
		line, err := sh.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Println()
			continue
		}
		if err != nil { // io.EOF or an unrecoverable read error
			sh.saveHistory()
			return 0
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		sh.env.AppendHistory(trimmed)

		// A child running in the foreground should see SIGINT, not the
		// shell itself; the prompt's own ^C handling is readline's job.
		// Catching SIGINT (rather than ignoring it) keeps the default
		// disposition in exec'd children.
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT)
		RunLine(ctx, sh.env, trimmed, os.Stdin, os.Stdout, os.Stderr)
		signal.Stop(sigint)

		if exitCode, exit := sh.env.ExitRequested(); exit {
			sh.saveHistory()
			return exitCode
		}
	}
}

func (sh *Shell) saveHistory() {
	_ = sh.env.SaveHistory(sh.historyFile)
}
