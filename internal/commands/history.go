package commands

import (
	"fmt"
	"io"

	"github.com/kaifcoder/codecrafters-shell/internal/session"
)

func init() {
	register(&Command{Name: "history", Run: history})
}

func history(args []string, stdin io.Reader, stdout, stderr io.Writer, env *session.Environment) int {
	for i, line := range env.History() {
		fmt.Fprintf(stdout, "    %d  %s\n", i+1, line)
	}
	return 0
}
