package steps

import (
	"context"
	"path/filepath"

	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/scaffold/manifest"
	"github.com/lnsy/pochade/internal/scaffold/types"
)

type ManifestStep struct {
	always
	env *Env
}

func NewManifestStep(env *Env) *ManifestStep {
	return &ManifestStep{env: env}
}

func (s *ManifestStep) Name() string {
	return string(types.PatchingManifest)
}

func (s *ManifestStep) Run(_ context.Context, sc *types.ScaffoldContext, _ types.StepOptions) error {
	path := filepath.Join(sc.TargetDir, manifest.FileName)

	data, err := s.env.FS.ReadFile(path)
	if err != nil {
		return apperrors.Wrap(apperrors.EManifest, "reading "+manifest.FileName, err)
	}

	patched, err := manifest.Patch(data, sc.Config)
	if err != nil {
		return apperrors.Wrap(apperrors.EManifest, "patching "+manifest.FileName, err)
	}

	if err := s.env.FS.WriteFile(path, patched, 0644); err != nil {
		return apperrors.Wrap(apperrors.EFilesystem, "writing "+manifest.FileName, err)
	}
	return nil
}
