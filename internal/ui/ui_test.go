package ui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	SetOutput(&stdout, &stderr)
	SetColor(false)
	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetColor(true)
	})
	return &stdout, &stderr
}

func TestPrintHelpers(t *testing.T) {
	stdout, stderr := capture(t)

	PrintStep("Creating project")
	PrintInfo("info line")
	PrintSuccess("Success!")
	PrintWarning("careful")
	PrintErrorWithHint("npm install failed", "run it again")

	assert.Equal(t, "🚀 Creating project\ninfo line\n✨ Success!\n", stdout.String())
	assert.Equal(t, "! careful\n❌ npm install failed\nrun it again\n", stderr.String())
}

func TestPrintDone(t *testing.T) {
	stdout, _ := capture(t)

	PrintDone("Success!", []Command{
		{Line: "cd my-app"},
		{Line: "npm run install-plugin", Comment: "Installs this node to your local Node-RED"},
		{Line: "npm run watch", Comment: "Develop with auto-restart"},
	})

	got := stdout.String()
	assert.Contains(t, got, "To get started:")
	assert.Contains(t, got, "  cd my-app\n")
	assert.Contains(t, got, "  npm run install-plugin  # Installs this node to your local Node-RED\n")
	assert.Contains(t, got, "  npm run watch           # Develop with auto-restart\n")
}

func TestPrintBanner(t *testing.T) {
	capture(t)
	var buf bytes.Buffer

	PrintBanner(&buf, "Let's set up your Node-RED Plugin project!")

	assert.Contains(t, buf.String(), "Node-RED Plugins with Passion")
	assert.Contains(t, buf.String(), "📝 Let's set up your Node-RED Plugin project!")
	assert.True(t, strings.HasPrefix(buf.String(), logo[0]))
}

func TestRenderTable(t *testing.T) {
	capture(t)

	out := RenderTable([]string{"VARIANT", "DESCRIPTION"}, [][]string{
		{"node-plugin", "Node-RED node package"},
		{"web", "Static web project"},
	})

	assert.Contains(t, out, "VARIANT")
	assert.Contains(t, out, "node-plugin")
	assert.Contains(t, out, "Static web project")
}

func TestAbort(t *testing.T) {
	assert.True(t, IsAbort(huh.ErrUserAborted))
	assert.True(t, IsAbort(fmt.Errorf("asking: %w", ErrAborted)))
	assert.False(t, IsAbort(errors.New("other")))
	assert.False(t, IsAbort(nil))

	assert.Equal(t, ErrAborted, NormalizeAbort(huh.ErrUserAborted))
	other := errors.New("other")
	assert.Equal(t, other, NormalizeAbort(other))
}

func TestRunWithSpinner_NonInteractive(t *testing.T) {
	if IsInteractive() {
		t.Skip("requires a non-terminal stdin")
	}

	called := false
	err := RunWithSpinner("working", func() error {
		called = true
		return errors.New("failed")
	})
	assert.True(t, called)
	assert.EqualError(t, err, "failed")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, log.DebugLevel, NewLogger(&buf, true, true).GetLevel())
	assert.Equal(t, log.ErrorLevel, NewLogger(&buf, false, true).GetLevel())
	assert.Equal(t, log.InfoLevel, NewLogger(&buf, false, false).GetLevel())

	NewLogger(&buf, false, false).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "k=v")
}
