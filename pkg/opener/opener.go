// Package opener shows a path in the platform's file manager.
package opener

//go:generate mockgen -source=opener.go -destination=opener_mock.go -package=opener

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Opener opens a path in an external file browser.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// PathPlaceholder in a command template is replaced with the path to open.
const PathPlaceholder = "{path}"

var ErrEmptyCommand = errors.New("open command is empty")

var execCommandContext = exec.CommandContext

// Command runs Args with the path substituted for PathPlaceholder, or appended
// when no argument contains it. The process is started and not waited for.
type Command struct {
	Args []string
}

var _ Opener = Command{}

func (c Command) Open(ctx context.Context, path string) error {
	if len(c.Args) == 0 {
		return ErrEmptyCommand
	}
	args := make([]string, 0, len(c.Args)+1)
	substituted := false
	for _, arg := range c.Args[1:] {
		if strings.Contains(arg, PathPlaceholder) {
			arg = strings.ReplaceAll(arg, PathPlaceholder, path)
			substituted = true
		}
		args = append(args, arg)
	}
	if !substituted {
		args = append(args, path)
	}
	cmd := execCommandContext(context.WithoutCancel(ctx), c.Args[0], args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", c.Args[0], err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// ForOS returns the default file-manager command for goos.
func ForOS(goos string) Command {
	switch goos {
	case "windows":
		return Command{Args: []string{"explorer"}}
	case "darwin":
		return Command{Args: []string{"open"}}
	default:
		return Command{Args: []string{"xdg-open"}}
	}
}

// New returns the custom command when args is not empty, otherwise the
// default command for the running OS.
func New(args []string) Command {
	if len(args) > 0 {
		return Command{Args: args}
	}
	return ForOS(runtime.GOOS)
}
