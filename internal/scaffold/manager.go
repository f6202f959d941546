package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lnsy/pochade/internal/config"
	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/presets"
	"github.com/lnsy/pochade/internal/scaffold/steps"
	"github.com/lnsy/pochade/internal/scaffold/types"
)

type ScaffoldManager struct {
	presets  *presets.Manager
	registry StepRegistry
}

// StepRegistry defines the interface for step creation.
// This abstraction allows for dependency injection and testing.
type StepRegistry interface {
	Create(name string, env *steps.Env) (types.ScaffoldStep, error)
	ListRegistered() []string
}

// Options configures a single scaffold run.
type Options struct {
	ProjectName string
	// BaseDir is the directory the project is created in.
	BaseDir        string
	Variant        string
	PackageManager string
	DryRun         bool
	Verbose        bool
	Quiet          bool
	SkipInstall    bool
}

// Result describes a finished or failed run.
type Result struct {
	Context *types.ScaffoldContext
	Steps   []ExecutionResult
}

// NewScaffoldManager creates a scaffold manager using the global step registry.
func NewScaffoldManager() *ScaffoldManager {
	return NewScaffoldManagerWithRegistry(nil)
}

// NewScaffoldManagerWithRegistry creates a scaffold manager with the given step registry.
// If registry is nil, the global registry is used.
func NewScaffoldManagerWithRegistry(registry StepRegistry) *ScaffoldManager {
	if registry == nil {
		registry = &globalStepRegistryAdapter{}
	}
	return &ScaffoldManager{
		presets:  presets.NewManager(),
		registry: registry,
	}
}

type globalStepRegistryAdapter struct{}

func (a *globalStepRegistryAdapter) Create(name string, env *steps.Env) (types.ScaffoldStep, error) {
	return steps.Create(name, env)
}

func (a *globalStepRegistryAdapter) ListRegistered() []string {
	return steps.ListRegistered()
}

func (m *ScaffoldManager) Presets() *presets.Manager {
	return m.presets
}

// GetSteps builds the pipeline in state order.
func (m *ScaffoldManager) GetSteps(env *steps.Env) ([]types.ScaffoldStep, error) {
	stepsList := make([]types.ScaffoldStep, 0, len(types.Pipeline))
	for _, state := range types.Pipeline {
		step, err := m.registry.Create(string(state), env)
		if err != nil {
			return nil, fmt.Errorf("creating step %q: %w", state, err)
		}
		stepsList = append(stepsList, step)
	}
	return stepsList, nil
}

// RunScaffold drives one project through the pipeline. The Result is
// returned even on failure so callers can inspect how far the run got.
func (m *ScaffoldManager) RunScaffold(ctx context.Context, env *steps.Env, opts Options) (*Result, error) {
	preset, err := m.presets.Resolve(opts.Variant)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.EUsage, "selecting variant", err)
	}
	env.Preset = preset
	if env.Defaults == nil {
		env.Defaults = config.Defaults()
	}
	if env.Logger == nil {
		env.Logger = log.Default()
	}

	pm := opts.PackageManager
	if pm == "" {
		pm = config.DefaultPackageManager
	}

	sc := &types.ScaffoldContext{
		ProjectName:    opts.ProjectName,
		TargetDir:      filepath.Join(opts.BaseDir, opts.ProjectName),
		Variant:        preset.Name(),
		PackageManager: pm,
	}

	stepsList, err := m.GetSteps(env)
	if err != nil {
		return nil, fmt.Errorf("getting scaffold steps: %w", err)
	}

	env.Logger.Debug("starting scaffold", "project", sc.ProjectName, "variant", sc.Variant, "target", sc.TargetDir)

	executor := NewStepExecutor(stepsList, sc, m.stepOptions(opts), env.Logger)
	err = executor.Execute(ctx)

	return &Result{Context: sc, Steps: executor.Results()}, err
}

func (m *ScaffoldManager) stepOptions(opts Options) types.StepOptions {
	return types.StepOptions{
		DryRun:      opts.DryRun,
		Verbose:     opts.Verbose,
		Quiet:       opts.Quiet,
		SkipInstall: opts.SkipInstall,
	}
}
