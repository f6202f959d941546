package scaffold

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/scaffold/types"
)

type ExecutionResult struct {
	Step    types.ScaffoldStep
	Error   error
	Skipped bool
	// DryRun is set for steps that were planned but not run.
	DryRun bool
}

// StepExecutor runs steps strictly in order and stops at the first failure.
type StepExecutor struct {
	steps   []types.ScaffoldStep
	sc      *types.ScaffoldContext
	opts    types.StepOptions
	logger  *log.Logger
	results []ExecutionResult
}

func NewStepExecutor(steps []types.ScaffoldStep, sc *types.ScaffoldContext, opts types.StepOptions, logger *log.Logger) *StepExecutor {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &StepExecutor{
		steps:  steps,
		sc:     sc,
		opts:   opts,
		logger: logger,
	}
}

// Execute runs every step. The returned error carries the state it failed in.
func (e *StepExecutor) Execute(ctx context.Context) error {
	e.results = make([]ExecutionResult, 0, len(e.steps))

	for _, step := range e.steps {
		if err := ctx.Err(); err != nil {
			return apperrors.WithState(err, step.Name())
		}
		if err := e.executeStep(ctx, step); err != nil {
			return err
		}
	}

	return nil
}

func (e *StepExecutor) executeStep(ctx context.Context, step types.ScaffoldStep) error {
	if !step.Condition(e.sc, e.opts) {
		e.logger.Debug("Skipping step (condition not met)", "step", step.Name())
		e.results = append(e.results, ExecutionResult{Step: step, Skipped: true})
		return nil
	}

	if e.opts.DryRun && !isReadOnly(step) {
		e.logger.Debug("[DRY-RUN] Would execute", "step", step.Name())
		e.results = append(e.results, ExecutionResult{Step: step, DryRun: true})
		return nil
	}

	e.logger.Debug("Executing step", "step", step.Name())
	if err := step.Run(ctx, e.sc, e.opts); err != nil {
		e.results = append(e.results, ExecutionResult{Step: step, Error: err})
		return apperrors.WithState(err, step.Name())
	}

	e.results = append(e.results, ExecutionResult{Step: step})
	return nil
}

func isReadOnly(step types.ScaffoldStep) bool {
	ro, ok := step.(interface{ ReadOnly() bool })
	return ok && ro.ReadOnly()
}

func (e *StepExecutor) Results() []ExecutionResult {
	return e.results
}
