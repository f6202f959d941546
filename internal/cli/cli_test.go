package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/lnsy/pochade/internal/config"
	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/fs"
	"github.com/lnsy/pochade/internal/ui"
)

type harness struct {
	fs     *fs.MockFS
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	opened int
}

// newHarness replaces the run context with an in-memory filesystem rooted
// at /work and feeds input to the line prompts.
func newHarness(t *testing.T, input string) *harness {
	t.Helper()
	h := &harness{
		fs:     fs.NewMockFS(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	original := openContext
	openContext = func() (*RunContext, error) {
		h.opened++
		return &RunContext{
			CWD:    "/work",
			Config: config.Defaults(),
			FS:     h.fs,
			Stdin:  strings.NewReader(input),
			Stdout: h.stdout,
			Stderr: h.stderr,
		}, nil
	}

	t.Cleanup(func() {
		openContext = original
		ui.SetOutput(os.Stdout, os.Stderr)
		ui.SetColor(true)
	})
	return h
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute()
	return out.String(), err
}

func TestCreate_MissingNameTouchesNothing(t *testing.T) {
	h := newHarness(t, "")

	_, err := execute(t, "--no-interactive")

	require.Error(t, err)
	assert.Equal(t, apperrors.EUsage, apperrors.GetCode(err))
	assert.ErrorIs(t, err, apperrors.ErrNameRequired)
	assert.Equal(t, 0, h.opened, "no context should be opened")
	assert.Equal(t, 0, h.fs.Writes())
}

func TestCreate_TooManyArguments(t *testing.T) {
	h := newHarness(t, "")

	_, err := execute(t, "one", "two")

	assert.Equal(t, apperrors.EUsage, apperrors.GetCode(err))
	assert.Equal(t, 0, h.opened)
}

func TestCreate_UnknownFlagIsUsageError(t *testing.T) {
	newHarness(t, "")

	_, err := execute(t, "my-node", "--colour")

	assert.Equal(t, apperrors.EUsage, apperrors.GetCode(err))
}

func TestCreate_InvalidName(t *testing.T) {
	h := newHarness(t, "")

	_, err := execute(t, "My Node", "--no-interactive", "--skip-install")

	assert.Equal(t, apperrors.EUsage, apperrors.GetCode(err))
	assert.Equal(t, 0, h.fs.Writes())
}

func TestCreate_NodePlugin(t *testing.T) {
	// description, sidebar, node name, purpose, author, license
	h := newHarness(t, "\n\n\n\nAda\n\n")

	_, err := execute(t, "node-red-contrib-lamp", "--no-interactive", "--skip-install", "--no-color")
	require.NoError(t, err)

	project := filepath.Join("/work", "node-red-contrib-lamp")
	assert.True(t, h.fs.FileExists(filepath.Join(project, "src", "lamp.js")))
	assert.True(t, h.fs.FileExists(filepath.Join(project, ".gitignore")))

	pkg, err := h.fs.ReadFile(filepath.Join(project, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, "node-red-contrib-lamp", gjson.GetBytes(pkg, "name").String())
	assert.Equal(t, "Ada", gjson.GetBytes(pkg, "author").String())
	assert.JSONEq(t, `{"lamp":"src/lamp.js"}`, gjson.GetBytes(pkg, "node-red.nodes").Raw)

	out := h.stdout.String()
	assert.Contains(t, out, "Project description (A Node-RED node): ")
	assert.Contains(t, out, "npm install", "skipped install is listed as a next step")
}

func TestCreate_Web(t *testing.T) {
	// description, author, email, username, license
	h := newHarness(t, "My site\nAda\nada@example.com\nada\nISC\n")

	_, err := execute(t, "my-site", "-V", "web", "--no-interactive", "--skip-install", "--package-manager", "pnpm")
	require.NoError(t, err)

	pkg, err := h.fs.ReadFile(filepath.Join("/work", "my-site", "package.json"))
	require.NoError(t, err)
	assert.Equal(t, "Ada <ada@example.com>", gjson.GetBytes(pkg, "author").String())
	assert.Equal(t, "ISC", gjson.GetBytes(pkg, "license").String())
	assert.False(t, gjson.GetBytes(pkg, "bin").Exists())

	assert.Contains(t, h.stdout.String(), "pnpm run dev")
}

func TestCreate_ExistingTarget(t *testing.T) {
	h := newHarness(t, "")
	h.fs.AddFile("/work/taken/keep.txt", []byte("mine"), 0644)

	_, err := execute(t, "taken", "--no-interactive")

	assert.Equal(t, apperrors.ETargetConflict, apperrors.GetCode(err))
	assert.Equal(t, 0, h.fs.Writes())
	data, _ := h.fs.ReadFile("/work/taken/keep.txt")
	assert.Equal(t, "mine", string(data))
}

func TestCreate_DryRun(t *testing.T) {
	h := newHarness(t, "\n\n\n\n\n\n")

	_, err := execute(t, "my-node", "--no-interactive", "--dry-run", "--no-color")
	require.NoError(t, err)

	assert.Equal(t, 0, h.fs.Writes())
	out := h.stdout.String()
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "CopyingTemplate")
	assert.Contains(t, out, "planned")
}

func TestCreate_MissingTemplateDir(t *testing.T) {
	h := newHarness(t, "\n\n\n\n\n\n")

	_, err := execute(t, "my-node", "--no-interactive", "--skip-install",
		"--template-dir", filepath.Join(t.TempDir(), "nope"))

	assert.Equal(t, apperrors.ETemplateMissing, apperrors.GetCode(err))
	assert.Equal(t, 0, h.fs.Writes())
}

func TestCreate_UnsupportedPackageManager(t *testing.T) {
	h := newHarness(t, "")

	_, err := execute(t, "my-node", "--no-interactive", "--package-manager", "pip")

	assert.Equal(t, apperrors.EUsage, apperrors.GetCode(err))
	assert.Equal(t, 0, h.fs.Writes())
}

func TestCreate_PromptInputEnds(t *testing.T) {
	h := newHarness(t, "only one answer\n")

	_, err := execute(t, "my-node", "--no-interactive", "--skip-install")

	assert.Equal(t, apperrors.EPrompt, apperrors.GetCode(err))
	assert.Equal(t, 0, h.fs.Writes())
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "create-pochade version dev (commit: unknown, built: unknown)\n", out)
}

func TestVariantsCommand(t *testing.T) {
	out, err := execute(t, "variants", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "node-plugin")
	assert.Contains(t, out, "web")
}

func TestConfigCommands(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("PATH", t.TempDir())
	var stderr bytes.Buffer
	ui.SetOutput(&bytes.Buffer{}, &stderr)
	t.Cleanup(func() { ui.SetOutput(os.Stdout, os.Stderr) })

	want := filepath.Join(xdg, "pochade", "config.yaml")

	t.Run("path", func(t *testing.T) {
		out, err := execute(t, "config", "path")
		require.NoError(t, err)
		assert.Equal(t, want+"\n", out)
	})

	t.Run("init writes defaults", func(t *testing.T) {
		_, err := execute(t, "config", "init", "--author-name", "Ada", "--package-manager", "yarn", "--no-color")
		require.NoError(t, err)

		cfg, err := config.LoadFrom(filepath.Join(xdg, "pochade"))
		require.NoError(t, err)
		assert.Equal(t, "Ada", cfg.AuthorName)
		assert.Equal(t, "yarn", cfg.PackageManager)
		assert.Equal(t, config.DefaultLicense, cfg.License)

		assert.Contains(t, stderr.String(), "! yarn was not found on PATH")
	})

	t.Run("init refuses to overwrite", func(t *testing.T) {
		before, err := os.ReadFile(want)
		require.NoError(t, err)

		_, err = execute(t, "config", "init", "--author-name", "Grace")
		assert.Equal(t, apperrors.ETargetConflict, apperrors.GetCode(err))

		after, err := os.ReadFile(want)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestHandleError(t *testing.T) {
	var stderr bytes.Buffer
	ui.SetOutput(&bytes.Buffer{}, &stderr)
	ui.SetColor(false)
	t.Cleanup(func() {
		ui.SetOutput(os.Stdout, os.Stderr)
		ui.SetColor(true)
	})

	t.Run("nil is success", func(t *testing.T) {
		assert.Equal(t, 0, HandleError(nil))
		assert.Empty(t, stderr.String())
	})

	t.Run("usage error prints message and hint", func(t *testing.T) {
		stderr.Reset()
		code := HandleError(apperrors.Wrap(apperrors.EUsage, "missing argument", apperrors.ErrNameRequired))

		assert.Equal(t, 1, code)
		assert.Equal(t, "❌ missing argument: project name required\nUsage: create-pochade <project-name>\n", stderr.String())
	})

	t.Run("plain error has no hint", func(t *testing.T) {
		stderr.Reset()
		assert.Equal(t, 1, HandleError(errors.New("boom")))
		assert.Equal(t, "❌ boom\n", stderr.String())
	})
}
