package steps

import (
	"io"
	iofs "io/fs"

	"github.com/charmbracelet/log"

	"github.com/lnsy/pochade/internal/config"
	"github.com/lnsy/pochade/internal/fs"
	"github.com/lnsy/pochade/internal/installer"
	"github.com/lnsy/pochade/internal/presets"
	"github.com/lnsy/pochade/internal/scaffold/prompts"
	"github.com/lnsy/pochade/internal/scaffold/types"
)

// Env holds the collaborators shared by every step of a run.
type Env struct {
	FS        fs.FS
	Templates iofs.FS
	// TemplateRoot overrides Preset.TemplateRoot when set.
	TemplateRoot string
	Preset       presets.Preset
	Source       prompts.AnswerSource
	Installer    installer.PackageInstaller
	Defaults     *config.Config
	// Out receives prompt validation messages.
	Out    io.Writer
	Logger *log.Logger
}

func (e *Env) templateRoot() string {
	if e.TemplateRoot != "" {
		return e.TemplateRoot
	}
	return e.Preset.TemplateRoot()
}

func (e *Env) logger() *log.Logger {
	if e.Logger == nil {
		return log.New(io.Discard)
	}
	return e.Logger
}

type readOnly struct{}

// ReadOnly marks steps that never write and so also run during a dry run.
func (readOnly) ReadOnly() bool { return true }

type always struct{}

func (always) Condition(*types.ScaffoldContext, types.StepOptions) bool { return true }
