// Package installer runs a package manager inside a generated project.
package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Result reports how an install finished.
type Result struct {
	ExitCode int
	// Output holds the combined output when it was captured rather than
	// streamed to the terminal.
	Output []byte
}

// PackageInstaller installs dependencies for the project in dir. A non-zero
// exit is reported in Result, not as an error; errors mean the installer
// could not be started at all.
type PackageInstaller interface {
	Install(ctx context.Context, dir string) (Result, error)
}

type binaryDefinition struct {
	name   string
	binary string
	args   []string
}

var binaries = []binaryDefinition{
	{"npm", "npm", []string{"install"}},
	{"yarn", "yarn", []string{"install"}},
	{"pnpm", "pnpm", []string{"install"}},
	{"bun", "bun", []string{"install"}},
}

// Supported returns the package managers New accepts.
func Supported() []string {
	names := make([]string, 0, len(binaries))
	for _, b := range binaries {
		names = append(names, b.name)
	}
	return names
}

// SpinnerFunc runs fn while showing title.
type SpinnerFunc func(title string, fn func() error) error

// CommandInstaller runs Binary with Args in the project directory.
type CommandInstaller struct {
	Binary string
	Args   []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Quiet captures output instead of inheriting the terminal. When Spinner
	// is set it wraps quiet runs.
	Quiet   bool
	Spinner SpinnerFunc
}

// New returns an installer for the named package manager.
func New(packageManager string) (*CommandInstaller, error) {
	for _, b := range binaries {
		if b.name == packageManager {
			return &CommandInstaller{
				Binary: b.binary,
				Args:   append([]string{}, b.args...),
			}, nil
		}
	}
	return nil, fmt.Errorf("unsupported package manager %q (supported: %s)", packageManager, strings.Join(Supported(), ", "))
}

// CommandLine renders the command for display.
func (c *CommandInstaller) CommandLine() string {
	return strings.Join(append([]string{c.Binary}, c.Args...), " ")
}

func (c *CommandInstaller) Install(ctx context.Context, dir string) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Binary, c.Args...)
	cmd.Dir = dir

	var captured bytes.Buffer
	if c.Quiet {
		cmd.Stdout = &captured
		cmd.Stderr = &captured
	} else {
		cmd.Stdin = orReader(c.Stdin, os.Stdin)
		cmd.Stdout = orWriter(c.Stdout, os.Stdout)
		cmd.Stderr = orWriter(c.Stderr, os.Stderr)
	}

	var err error
	if c.Quiet && c.Spinner != nil {
		err = c.Spinner("Installing dependencies with "+c.Binary, cmd.Run)
	} else {
		err = cmd.Run()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode(), Output: captured.Bytes()}, nil
		}
		return Result{ExitCode: -1, Output: captured.Bytes()}, fmt.Errorf("running %s: %w", c.CommandLine(), err)
	}

	return Result{Output: captured.Bytes()}, nil
}

func orReader(r, fallback io.Reader) io.Reader {
	if r == nil {
		return fallback
	}
	return r
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
