package steps

import (
	"context"
	"fmt"
	"path/filepath"

	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/fs"
	"github.com/lnsy/pochade/internal/scaffold/types"
	"github.com/lnsy/pochade/internal/scaffold/validation"
)

type ValidateNameStep struct {
	readOnly
	always
	env *Env
}

func NewValidateNameStep(env *Env) *ValidateNameStep {
	return &ValidateNameStep{env: env}
}

func (s *ValidateNameStep) Name() string {
	return string(types.ValidatingName)
}

func (s *ValidateNameStep) Run(_ context.Context, sc *types.ScaffoldContext, _ types.StepOptions) error {
	if sc.ProjectName == "" {
		return apperrors.Wrap(apperrors.EUsage, "missing argument", apperrors.ErrNameRequired)
	}
	if err := validation.ValidateProjectName(sc.ProjectName); err != nil {
		return apperrors.Wrap(apperrors.EUsage, fmt.Sprintf("invalid project name %q", sc.ProjectName), err)
	}
	return nil
}

type CheckTargetStep struct {
	readOnly
	always
	env *Env
}

func NewCheckTargetStep(env *Env) *CheckTargetStep {
	return &CheckTargetStep{env: env}
}

func (s *CheckTargetStep) Name() string {
	return string(types.CheckingTarget)
}

// Run refuses any existing entry at the target path, file or directory.
func (s *CheckTargetStep) Run(_ context.Context, sc *types.ScaffoldContext, _ types.StepOptions) error {
	if fs.Exists(s.env.FS, sc.TargetDir) {
		return apperrors.Wrap(apperrors.ETargetConflict, filepath.Base(sc.TargetDir), apperrors.ErrTargetExists)
	}
	return nil
}
