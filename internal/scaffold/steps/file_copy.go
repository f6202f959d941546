package steps

import (
	"context"
	"fmt"
	iofs "io/fs"

	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/fs"
	"github.com/lnsy/pochade/internal/scaffold/types"
	"github.com/lnsy/pochade/internal/ui"
)

type CopyTemplateStep struct {
	always
	env *Env
}

func NewCopyTemplateStep(env *Env) *CopyTemplateStep {
	return &CopyTemplateStep{env: env}
}

func (s *CopyTemplateStep) Name() string {
	return string(types.CopyingTemplate)
}

func (s *CopyTemplateStep) Run(_ context.Context, sc *types.ScaffoldContext, opts types.StepOptions) error {
	root := s.env.templateRoot()
	if s.env.Templates == nil {
		return apperrors.New(apperrors.ETemplateMissing, "template directory not found")
	}
	if _, err := iofs.Stat(s.env.Templates, root); err != nil {
		return apperrors.Wrap(apperrors.ETemplateMissing, "template directory not found", err)
	}

	if !opts.Quiet {
		ui.PrintStep(fmt.Sprintf("Creating a new %s in %s...", s.env.Preset.Description(), sc.TargetDir))
	}

	if err := fs.CopyTree(s.env.Templates, root, s.env.FS, sc.TargetDir); err != nil {
		return apperrors.Wrap(apperrors.EFilesystem, "copying template", err)
	}

	s.env.logger().Debug("copied template", "root", root, "target", sc.TargetDir)
	return nil
}
