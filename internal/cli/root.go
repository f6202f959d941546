package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "create-pochade [project-name]",
	Short: "Scaffold a Node-RED plugin or web project",
	Long: `create-pochade creates a new project directory from a built-in template.

It asks a few questions, copies the template, substitutes your answers
into the files, fixes up package.json and installs dependencies.`,
	Example: `  create-pochade my-node
  create-pochade my-site --variant web --package-manager pnpm
  create-pochade my-node --no-interactive < answers.txt`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
			return apperrors.Wrap(apperrors.EUsage, "too many arguments", err)
		}
		return nil
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetColor(!noColor && ui.IsInteractive())
	},
	RunE: runCreate,
}

var noColor bool

func Execute() error {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		if ui.IsAbort(err) {
			return nil
		}
		return err
	}
	return nil
}

// HandleError reports err on the error stream and returns the exit code.
func HandleError(err error) int {
	if err == nil {
		return 0
	}
	ui.PrintErrorWithHint(err.Error(), apperrors.Hint(err))
	return apperrors.ExitCode(err)
}

func init() {
	rootCmd.Flags().StringP("variant", "V", "", "Project variant (node-plugin or web)")
	rootCmd.Flags().String("template-dir", "", "Use templates from this directory instead of the built-in ones")
	rootCmd.Flags().Bool("skip-install", false, "Do not install dependencies")
	rootCmd.Flags().String("package-manager", "", "Package manager used to install dependencies (npm, yarn, pnpm, bun)")
	rootCmd.Flags().Bool("dry-run", false, "Ask the questions and show the plan without writing anything")

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("no-interactive", false, "Read answers line by line from stdin")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.Wrap(apperrors.EUsage, "invalid flags", err)
	})
}

func mustGetString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: flag %q not defined: %v", name, err))
	}
	return value
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: flag %q not defined: %v", name, err))
	}
	return value
}
