package steps

import (
	"context"

	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/scaffold/prompts"
	"github.com/lnsy/pochade/internal/scaffold/types"
	"github.com/lnsy/pochade/internal/ui"
)

type PromptStep struct {
	readOnly
	always
	env *Env
}

func NewPromptStep(env *Env) *PromptStep {
	return &PromptStep{env: env}
}

func (s *PromptStep) Name() string {
	return string(types.Prompting)
}

func (s *PromptStep) Run(_ context.Context, sc *types.ScaffoldContext, opts types.StepOptions) error {
	if !opts.Quiet {
		ui.PrintBanner(ui.Output(), s.env.Preset.Greeting())
	}

	questions := s.env.Preset.Questions(sc.ProjectName, s.env.Defaults)
	answers, err := prompts.NewPrompter(s.env.Source, s.env.Out).Run(questions)
	if err != nil {
		return apperrors.Wrap(apperrors.EPrompt, "collecting answers", err)
	}

	values := answers.Map()
	values["project_name"] = sc.ProjectName

	cfg, err := types.DecodeConfig(sc.Variant, values)
	if err != nil {
		return apperrors.Wrap(apperrors.EPrompt, "building configuration", err)
	}

	sc.Answers = values
	sc.Config = cfg
	s.env.logger().Debug("collected answers", "variant", sc.Variant, "keys", answers.Keys())
	return nil
}
