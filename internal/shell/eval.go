package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/kaifcoder/codecrafters-shell/internal/session"
)

// RunLine parses and executes a single line, the shared path between the
// interactive loop and -c/--command. A parse error is reported to stderr
// and the line contributes no side effects beyond that.
func RunLine(ctx context.Context, env *session.Environment, line string, stdin io.Reader, stdout, stderr io.Writer) int {
	p, err := Parse(line)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if p == nil {
		return 0
	}
	return Execute(ctx, env, p, stdin, stdout, stderr)
}
