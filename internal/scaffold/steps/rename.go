package steps

import (
	"context"
	"fmt"
	"path/filepath"

	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/fs"
	"github.com/lnsy/pochade/internal/scaffold/types"
)

// RenameStep restores dotfiles and renames entry files. Missing sources are
// skipped.
type RenameStep struct {
	always
	env *Env
}

func NewRenameStep(env *Env) *RenameStep {
	return &RenameStep{env: env}
}

func (s *RenameStep) Name() string {
	return string(types.RenamingEntryFiles)
}

func (s *RenameStep) Run(_ context.Context, sc *types.ScaffoldContext, _ types.StepOptions) error {
	for _, r := range s.env.Preset.Renames(sc.Config) {
		from := filepath.Join(sc.TargetDir, filepath.FromSlash(r.From))
		to := filepath.Join(sc.TargetDir, filepath.FromSlash(r.To))

		if !fs.Exists(s.env.FS, from) {
			s.env.logger().Debug("skipping rename, source missing", "file", r.From)
			continue
		}
		if err := s.env.FS.Rename(from, to); err != nil {
			return apperrors.Wrap(apperrors.EFilesystem, fmt.Sprintf("renaming %s to %s", r.From, r.To), err)
		}
		s.env.logger().Debug("renamed", "from", r.From, "to", r.To)
	}
	return nil
}
