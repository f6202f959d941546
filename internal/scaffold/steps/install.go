package steps

import (
	"context"
	"fmt"

	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/scaffold/types"
	"github.com/lnsy/pochade/internal/ui"
)

type InstallStep struct {
	env *Env
}

func NewInstallStep(env *Env) *InstallStep {
	return &InstallStep{env: env}
}

func (s *InstallStep) Name() string {
	return string(types.InstallingDependencies)
}

func (s *InstallStep) Condition(_ *types.ScaffoldContext, opts types.StepOptions) bool {
	return !opts.SkipInstall && s.env.Installer != nil
}

// Run installs dependencies. A failure leaves the project on disk.
func (s *InstallStep) Run(ctx context.Context, sc *types.ScaffoldContext, opts types.StepOptions) error {
	if !opts.Quiet {
		ui.PrintStep("Installing dependencies...")
	}

	res, err := s.env.Installer.Install(ctx, sc.TargetDir)
	if err != nil {
		return apperrors.Wrap(apperrors.EInstall, "installing dependencies", err)
	}
	if res.ExitCode != 0 {
		if len(res.Output) > 0 {
			s.env.logger().Error("install output", "output", string(res.Output))
		}
		return apperrors.New(apperrors.EInstall, fmt.Sprintf("%s install failed with exit code %d", packageManager(sc), res.ExitCode))
	}
	return nil
}
