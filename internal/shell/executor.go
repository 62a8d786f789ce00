package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/kaifcoder/codecrafters-shell/internal/commands"
	"github.com/kaifcoder/codecrafters-shell/internal/pathsearch"
	"github.com/kaifcoder/codecrafters-shell/internal/session"
)

// Execute runs a parsed pipeline to completion and returns the exit
// status of its last segment, per the shell's own exit-status contract.
func Execute(ctx context.Context, env *session.Environment, p *Pipeline, stdin io.Reader, stdout, stderr io.Writer) int {
	if p == nil || len(p.Segments) == 0 {
		return 0
	}
	if len(p.Segments) == 1 {
		return executeSingle(ctx, env, p.Segments[0], stdin, stdout, stderr)
	}
	return executeMulti(ctx, env, p, stdin, stdout, stderr)
}

func executeSingle(ctx context.Context, env *session.Environment, seg *Segment, stdin io.Reader, stdout, stderr io.Writer) int {
	stdoutOverride, stderrOverride, opened, err := openRedirs(seg)
	defer closeAll(opened)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	out := stdout
	if stdoutOverride != nil {
		out = stdoutOverride
	}
	errw := stderr
	if stderrOverride != nil {
		errw = stderrOverride
	}

	return runSegment(ctx, env, seg, stdin, out, errw)
}

func executeMulti(ctx context.Context, env *session.Environment, p *Pipeline, stdin io.Reader, stdout, stderr io.Writer) int {
	n := len(p.Segments)

	stdoutOverride := make([]*os.File, n)
	stderrOverride := make([]*os.File, n)
	var opened []*os.File
	// Every segment's redirection targets are opened up front, before any
	// process is spawned; a failure here aborts the whole pipeline with
	// whatever was already opened released.
	for i, seg := range p.Segments {
		so, se, o, err := openRedirs(seg)
		opened = append(opened, o...)
		if err != nil {
			fmt.Fprintln(stderr, err)
			closeAll(opened)
			return 1
		}
		stdoutOverride[i] = so
		stderrOverride[i] = se
	}
	defer closeAll(opened)

	pr := make([]*os.File, n-1)
	pw := make([]*os.File, n-1)
	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			fmt.Fprintf(stderr, "pipe: %v\n", err)
			for j := 0; j < i; j++ {
				pr[j].Close()
				pw[j].Close()
			}
			return 1
		}
		pr[i], pw[i] = r, w
	}

	var wg sync.WaitGroup
	codes := make([]int, n)
	for i := 0; i < n; i++ {
		var in io.Reader = stdin
		if i > 0 {
			in = pr[i-1]
		}
		var out io.Writer = stdout
		if i < n-1 {
			out = pw[i]
		}
		if stdoutOverride[i] != nil {
			out = stdoutOverride[i]
		}
		errw := stderr
		if stderrOverride[i] != nil {
			errw = stderrOverride[i]
		}

		wg.Add(1)
		go func(idx int, in io.Reader, out, errw io.Writer) {
			defer wg.Done()
			codes[idx] = runSegment(ctx, env, p.Segments[idx], in, out, errw)
			// Release this stage's pipe ends as soon as it's done with
			// them, so the neighboring stage observes EOF / can't block
			// a reader that will never show up.
			if idx < n-1 {
				pw[idx].Close()
			}
			if idx > 0 {
				pr[idx-1].Close()
			}
		}(i, in, out, errw)
	}
	wg.Wait()

	return codes[n-1]
}

func runSegment(ctx context.Context, env *session.Environment, seg *Segment, stdin io.Reader, stdout, stderr io.Writer) int {
	name := seg.Words[0]
	args := seg.Words[1:]

	if cmd, ok := commands.Get(name); ok {
		return cmd.Run(args, stdin, stdout, stderr, env)
	}
	return runExternal(ctx, env, name, args, stdin, stdout, stderr)
}

func runExternal(ctx context.Context, env *session.Environment, name string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	path, ok := pathsearch.Find(name)
	if !ok {
		fmt.Fprintf(stderr, "%s: command not found\n", name)
		return 127
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Args = append([]string{name}, args...) // preserve the caller's argv[0]
	cmd.Dir = env.CWD
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	return 0
}

// openRedirs opens every redirection target on a segment, in order. When
// more than one redirection targets the same fd, all of them are opened
// (and therefore truncated or created) but the last one wins the fd.
func openRedirs(seg *Segment) (stdoutOverride, stderrOverride *os.File, opened []*os.File, err error) {
	for _, r := range seg.Redirs {
		flag := os.O_CREATE | os.O_WRONLY
		if r.Append {
			flag |= os.O_APPEND
		} else {
			flag |= os.O_TRUNC
		}
		f, ferr := os.OpenFile(r.Target, flag, 0o644)
		if ferr != nil {
			closeAll(opened)
			return nil, nil, nil, fmt.Errorf("%s: %v", r.Target, ferr)
		}
		opened = append(opened, f)
		if r.FD == 1 {
			stdoutOverride = f
		} else {
			stderrOverride = f
		}
	}
	return stdoutOverride, stderrOverride, opened, nil
}

func closeAll(files []*os.File) {
	for _, f := range files {
		f.Close()
	}
}
