package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/installer"
	"github.com/lnsy/pochade/internal/scaffold"
	"github.com/lnsy/pochade/internal/scaffold/prompts"
	"github.com/lnsy/pochade/internal/scaffold/steps"
	"github.com/lnsy/pochade/internal/scaffold/types"
	"github.com/lnsy/pochade/internal/templates"
	"github.com/lnsy/pochade/internal/ui"
)

func runCreate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return apperrors.Wrap(apperrors.EUsage, "missing argument", apperrors.ErrNameRequired)
	}
	projectName := args[0]

	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	dryRun := mustGetBool(cmd, "dry-run")
	noInteractive := mustGetBool(cmd, "no-interactive")

	rc, err := openContext()
	if err != nil {
		return err
	}

	interactive := ui.IsInteractive()
	ui.SetOutput(rc.Stdout, rc.Stderr)

	logger := ui.NewLogger(rc.Stderr, verbose, quiet)

	templateDir := mustGetString(cmd, "template-dir")
	if templateDir == "" {
		templateDir = rc.Config.TemplateDir
	}
	packageManager := mustGetString(cmd, "package-manager")
	if packageManager == "" {
		packageManager = rc.Config.PackageManager
	}
	skipInstall := mustGetBool(cmd, "skip-install") || rc.Config.SkipInstall

	env := &steps.Env{
		FS:        rc.FS,
		Templates: templates.FS(),
		Defaults:  rc.Config,
		Out:       rc.Stdout,
		Logger:    logger,
	}
	if templateDir != "" {
		logger.Debug("using template directory", "dir", templateDir)
		env.Templates = templates.Dir(templateDir)
		env.TemplateRoot = "."
	}

	promptMode := types.PromptMode{
		Interactive:   interactive,
		NoInteractive: noInteractive,
		CI:            os.Getenv("CI") != "",
	}
	if promptMode.Allow() {
		env.Source = ui.HuhAnswerSource{}
	} else {
		env.Source = prompts.NewLineAnswerSource(rc.Stdin, rc.Stdout)
	}

	if !skipInstall {
		inst, err := installer.New(packageManager)
		if err != nil {
			return apperrors.Wrap(apperrors.EUsage, "selecting package manager", err)
		}
		inst.Stdin = rc.Stdin
		inst.Stdout = rc.Stdout
		inst.Stderr = rc.Stderr
		inst.Quiet = quiet
		inst.Spinner = ui.RunWithSpinner
		env.Installer = inst
	}

	result, err := rc.ScaffoldManager().RunScaffold(cmd.Context(), env, scaffold.Options{
		ProjectName:    projectName,
		BaseDir:        rc.CWD,
		Variant:        mustGetString(cmd, "variant"),
		PackageManager: packageManager,
		DryRun:         dryRun,
		Verbose:        verbose,
		Quiet:          quiet,
		SkipInstall:    skipInstall,
	})
	if err != nil {
		logger.Debug("scaffold failed", "state", apperrors.GetState(err), "code", apperrors.GetCode(err))
		return err
	}

	if dryRun && !quiet {
		printPlan(result)
	}
	return nil
}

func printPlan(result *scaffold.Result) {
	ui.PrintInfo(fmt.Sprintf("Dry run: nothing was written to %s", result.Context.TargetDir))

	rows := make([][]string, 0, len(result.Steps))
	for _, r := range result.Steps {
		status := "ran"
		switch {
		case r.Skipped:
			status = "skipped"
		case r.DryRun:
			status = "planned"
		}
		rows = append(rows, []string{r.Step.Name(), status})
	}
	fmt.Fprintln(ui.Output(), ui.RenderTable([]string{"STATE", "STATUS"}, rows))
}
