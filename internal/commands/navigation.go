package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kaifcoder/codecrafters-shell/internal/session"
)

func init() {
	register(&Command{Name: "pwd", Run: pwd})
	register(&Command{Name: "cd", Run: cd})
	register(&Command{Name: "exit", Run: exitCmd})
}

func pwd(args []string, stdin io.Reader, stdout, stderr io.Writer, env *session.Environment) int {
	fmt.Fprintln(stdout, env.CWD)
	return 0
}

// cd supports a bare DIR, a leading "~" (expands to $HOME), and "-"
// (switches to $OLDPWD, or stays put if unset). On success it records the
// previous directory in $OLDPWD.
func cd(args []string, stdin io.Reader, stdout, stderr io.Writer, env *session.Environment) int {
	var display, target string
	switch {
	case len(args) == 0:
		target = env.Getenv("HOME")
		display = target
	case args[0] == "-":
		target = env.Getenv("OLDPWD")
		if target == "" {
			target = env.CWD
		}
		display = args[0]
	default:
		display = args[0]
		target = env.ResolveDir(args[0])
	}

	prev := env.CWD
	if err := env.Chdir(target); err != nil {
		fmt.Fprintf(stderr, "cd: %s: No such file or directory\n", display)
		return 1
	}
	env.Setenv("OLDPWD", prev)
	return 0
}

// exitCmd terminates the shell. A missing argument exits 0; a numeric
// argument is taken modulo 256 by the caller when the process actually
// exits. A non-integer argument is a usage error: it's reported and the
// shell still exits, with status 2 (matching the real shell's behavior
// for this case rather than the source prototype's uncaught exception).
func exitCmd(args []string, stdin io.Reader, stdout, stderr io.Writer, env *session.Environment) int {
	code := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "exit: %s: numeric argument required\n", args[0])
			env.RequestExit(2)
			return 2
		}
		code = n
	}
	env.RequestExit(code)
	return code
}
