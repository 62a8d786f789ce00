// Package session holds the environment handle passed to every builtin
// and consulted by the executor: the shell's working directory, process
// environment access, and its in-memory history buffer.
package session

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// historyFileCap is the maximum number of entries kept in the persisted
// history file; the in-memory buffer the `history` builtin reads from is
// unbounded.
const historyFileCap = 500

// Environment is the handle every builtin receives. It tracks the shell's
// current directory (mirrored from the process's real cwd so external
// children inherit it correctly), the in-memory history buffer, and the
// exit request a running pipeline may raise.
type Environment struct {
	CWD string

	mu            sync.Mutex
	history       []string
	exitRequested bool
	exitCode      int
}

// New builds an Environment rooted at the process's actual working
// directory.
func New() (*Environment, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &Environment{CWD: cwd}, nil
}

func (e *Environment) Getenv(key string) string { return os.Getenv(key) }

func (e *Environment) Setenv(key, value string) error { return os.Setenv(key, value) }

// Chdir changes both the process's and the handle's working directory.
func (e *Environment) Chdir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	if err := os.Chdir(dir); err != nil {
		return err
	}
	e.CWD = abs
	return nil
}

// ResolveDir expands the leading-tilde forms `cd` accepts: a bare "~" or a
// "~/"-prefixed path resolve against $HOME. Everything else passes
// through unchanged; variable expansion beyond tilde is out of scope.
func (e *Environment) ResolveDir(arg string) string {
	home := e.Getenv("HOME")
	if arg == "~" {
		return home
	}
	if strings.HasPrefix(arg, "~/") {
		return filepath.Join(home, arg[2:])
	}
	return arg
}

// AppendHistory records a line, skipping one identical to the
// immediately preceding entry.
func (e *Environment) AppendHistory(line string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n := len(e.history); n > 0 && e.history[n-1] == line {
		return
	}
	e.history = append(e.history, line)
}

// History returns a snapshot of the in-memory buffer, oldest first.
func (e *Environment) History() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.history))
	copy(out, e.history)
	return out
}

// RequestExit records the shell's intent to terminate with the given
// status. Only the first call in a given pipeline takes effect.
func (e *Environment) RequestExit(code int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.exitRequested {
		e.exitRequested = true
		e.exitCode = code
	}
}

// ExitRequested reports whether a builtin asked the shell to terminate,
// and with what status.
func (e *Environment) ExitRequested() (code int, requested bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exitCode, e.exitRequested
}

// LoadHistory replaces the in-memory buffer with the contents of a
// history file, one entry per line. A missing file is not an error.
func (e *Environment) LoadHistory(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	e.mu.Lock()
	defer e.mu.Unlock()
	e.history = e.history[:0]
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if n := len(e.history); n > 0 && e.history[n-1] == line {
			continue
		}
		e.history = append(e.history, line)
	}
	return scanner.Err()
}

// SaveHistory persists the in-memory buffer to path, keeping only the
// most recent historyFileCap entries.
func (e *Environment) SaveHistory(path string) error {
	e.mu.Lock()
	hist := make([]string, len(e.history))
	copy(hist, e.history)
	e.mu.Unlock()

	if len(hist) > historyFileCap {
		hist = hist[len(hist)-historyFileCap:]
	}

	if dir := filepath.Dir(path); dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range hist {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}
