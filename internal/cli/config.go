package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/lnsy/pochade/internal/config"
	apperrors "github.com/lnsy/pochade/internal/errors"
	"github.com/lnsy/pochade/internal/fs"
	"github.com/lnsy/pochade/internal/installer"
	"github.com/lnsy/pochade/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the global defaults file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the global defaults file",
	Long: `Writes config.yaml with the defaults used to pre-fill prompts.

Values come from the flags, then POCHADE_* environment variables, then the
built-in defaults. An existing file is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet := mustGetBool(cmd, "quiet")

		path, err := config.GetGlobalConfigPath()
		if err != nil {
			return fmt.Errorf("getting config path: %w", err)
		}
		if fs.Exists(fs.Default, path) {
			return apperrors.New(apperrors.ETargetConflict, fmt.Sprintf("config file already exists: %s", path))
		}

		cfg, err := config.LoadGlobal()
		if err != nil {
			return fmt.Errorf("loading global config: %w", err)
		}

		for flag, field := range map[string]*string{
			"author-name":     &cfg.AuthorName,
			"author-email":    &cfg.AuthorEmail,
			"github-username": &cfg.GitHubUsername,
			"license":         &cfg.License,
			"package-manager": &cfg.PackageManager,
		} {
			if cmd.Flags().Changed(flag) {
				*field = mustGetString(cmd, flag)
			}
		}
		if _, err := installer.New(cfg.PackageManager); err != nil {
			return apperrors.Wrap(apperrors.EUsage, "invalid package manager", err)
		}

		if err := config.SaveGlobal(path, cfg); err != nil {
			return apperrors.Wrap(apperrors.EFilesystem, "saving global config", err)
		}

		if quiet {
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTable([]string{"PACKAGE MANAGER", "STATUS", "PATH"}, detectPackageManagers()))
		if _, err := exec.LookPath(cfg.PackageManager); err != nil {
			ui.PrintWarning(fmt.Sprintf("%s was not found on PATH; installs will fail until it is available", cfg.PackageManager))
		}
		ui.PrintSuccess(fmt.Sprintf("Configuration saved to %s", path))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the global defaults file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetGlobalConfigPath()
		if err != nil {
			return fmt.Errorf("getting config path: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func detectPackageManagers() [][]string {
	var rows [][]string
	for _, name := range installer.Supported() {
		path, err := exec.LookPath(name)
		if err != nil {
			rows = append(rows, []string{name, "✗ not found", "-"})
			continue
		}
		rows = append(rows, []string{name, "✓ found", path})
	}
	return rows
}

func init() {
	configInitCmd.Flags().String("author-name", "", "Default author name")
	configInitCmd.Flags().String("author-email", "", "Default author email")
	configInitCmd.Flags().String("github-username", "", "Default GitHub username")
	configInitCmd.Flags().String("license", config.DefaultLicense, "Default license")
	configInitCmd.Flags().String("package-manager", config.DefaultPackageManager, "Default package manager")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
