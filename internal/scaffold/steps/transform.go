package steps

import (
	"context"

	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/scaffold/template"
	"github.com/lnsy/pochade/internal/scaffold/types"
)

type TransformStep struct {
	always
	env *Env
}

func NewTransformStep(env *Env) *TransformStep {
	return &TransformStep{env: env}
}

func (s *TransformStep) Name() string {
	return string(types.TransformingTree)
}

func (s *TransformStep) Run(_ context.Context, sc *types.ScaffoldContext, _ types.StepOptions) error {
	report, err := template.Transform(s.env.FS, sc.TargetDir, sc.Tokens(), s.env.Preset.TextExtensions())
	if err != nil {
		return apperrors.Wrap(apperrors.EFilesystem, "substituting tokens", err)
	}

	logger := s.env.logger()
	logger.Debug("substituted tokens", "files", len(report.Substituted), "untouched", len(report.Opaque))
	for file, keys := range report.Orphans {
		logger.Debug("unknown tokens left as-is", "file", file, "keys", keys)
	}
	return nil
}
