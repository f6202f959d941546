package steps

import (
	"context"

	"github.com/lnsy/pochade/internal/config"
	"github.com/lnsy/pochade/internal/scaffold/types"
	"github.com/lnsy/pochade/internal/ui"
)

type DoneStep struct {
	env *Env
}

func NewDoneStep(env *Env) *DoneStep {
	return &DoneStep{env: env}
}

func (s *DoneStep) Name() string {
	return string(types.Done)
}

func (s *DoneStep) Condition(_ *types.ScaffoldContext, opts types.StepOptions) bool {
	return !opts.Quiet
}

// Run prints the next-step commands. When the install was skipped the
// install command is listed right after cd.
func (s *DoneStep) Run(_ context.Context, sc *types.ScaffoldContext, opts types.StepOptions) error {
	next := s.env.Preset.NextSteps(sc.ProjectName, sc.PackageManager)

	commands := make([]ui.Command, 0, len(next)+1)
	for i, step := range next {
		commands = append(commands, ui.Command{Line: step.Command, Comment: step.Comment})
		if i == 0 && opts.SkipInstall {
			commands = append(commands, ui.Command{Line: packageManager(sc) + " install", Comment: "Install dependencies"})
		}
	}

	ui.PrintDone("Success!", commands)
	return nil
}

func packageManager(sc *types.ScaffoldContext) string {
	if sc.PackageManager == "" {
		return config.DefaultPackageManager
	}
	return sc.PackageManager
}
