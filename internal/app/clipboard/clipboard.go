// Package clipboard copies transcript text to the host clipboard.
package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	apperrors "voxscribe/internal/app/errors"
)

// ErrNoBackend is returned when no clipboard command is installed.
var ErrNoBackend = errors.New("no clipboard command found")

// Copier writes text to a clipboard. Failures are *errors.ClipboardError.
type Copier interface {
	Copy(ctx context.Context, text string) error
}

// Command is one clipboard program and its arguments.
type Command struct {
	Name string
	Args []string
}

// DefaultCommands are tried in order until one is found on PATH.
var DefaultCommands = []Command{
	{Name: "wl-copy"},
	{Name: "xclip", Args: []string{"-selection", "clipboard"}},
	{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	{Name: "pbcopy"},
	{Name: "clip.exe"},
}

// ExecCopier pipes text into the first available clipboard command.
type ExecCopier struct {
	Commands []Command
	lookPath func(string) (string, error)
}

// NewExecCopier uses DefaultCommands.
func NewExecCopier() *ExecCopier {
	return &ExecCopier{Commands: DefaultCommands, lookPath: exec.LookPath}
}

// Resolve returns the first command present on PATH.
func (c *ExecCopier) Resolve() (Command, string, error) {
	lookPath := c.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, cmd := range c.Commands {
		if path, err := lookPath(cmd.Name); err == nil {
			return cmd, path, nil
		}
	}
	return Command{}, "", ErrNoBackend
}

func (c *ExecCopier) Copy(ctx context.Context, text string) error {
	cmd, path, err := c.Resolve()
	if err != nil {
		return &apperrors.ClipboardError{Err: err}
	}

	var stderr bytes.Buffer
	command := exec.CommandContext(ctx, path, cmd.Args...)
	command.Stdin = strings.NewReader(text)
	command.Stderr = &stderr
	if err := command.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%s: %w: %s", cmd.Name, err, msg)
		} else {
			err = fmt.Errorf("%s: %w", cmd.Name, err)
		}
		return &apperrors.ClipboardError{Err: err}
	}
	return nil
}

// MemoryCopier keeps the last copied text. Set Fail to simulate a host that
// rejects the copy.
type MemoryCopier struct {
	mu   sync.Mutex
	text string
	Fail error
}

func (m *MemoryCopier) Copy(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return &apperrors.ClipboardError{Err: m.Fail}
	}
	m.text = text
	return nil
}

// Text returns the last copied text.
func (m *MemoryCopier) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}
