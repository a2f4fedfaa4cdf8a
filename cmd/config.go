package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/glint/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		path := configFlag
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "# config file: %s\n\n", path)

		fmt.Fprintf(out, "log_level = %q\n\n", appConfig.LogLevel)

		fmt.Fprintln(out, "[git_branch]")
		fmt.Fprintf(out, "disabled = %v\n", appConfig.GitBranch.Disabled)
		fmt.Fprintf(out, "format = %q\n", appConfig.GitBranch.Format)
		fmt.Fprintf(out, "style = %q\n", appConfig.GitBranch.Style)
		fmt.Fprintf(out, "symbol = %q\n", appConfig.GitBranch.Symbol)
		fmt.Fprintf(out, "truncation_length = %d\n\n", appConfig.GitBranch.TruncationLength)

		fmt.Fprintln(out, "[git_status]")
		fmt.Fprintf(out, "disabled = %v\n", appConfig.GitStatus.Disabled)
		fmt.Fprintf(out, "format = %q\n", appConfig.GitStatus.Format)
		fmt.Fprintf(out, "style = %q\n", appConfig.GitStatus.Style)
		fmt.Fprintf(out, "conflicted = %q\n", appConfig.GitStatus.Conflicted)
		fmt.Fprintf(out, "ahead = %q\n", appConfig.GitStatus.Ahead)
		fmt.Fprintf(out, "behind = %q\n", appConfig.GitStatus.Behind)
		fmt.Fprintf(out, "diverged = %q\n", appConfig.GitStatus.Diverged)
		fmt.Fprintf(out, "untracked = %q\n", appConfig.GitStatus.Untracked)
		fmt.Fprintf(out, "stashed = %q\n", appConfig.GitStatus.Stashed)
		fmt.Fprintf(out, "modified = %q\n", appConfig.GitStatus.Modified)
		fmt.Fprintf(out, "staged = %q\n", appConfig.GitStatus.Staged)
		fmt.Fprintf(out, "added = %q\n", appConfig.GitStatus.Added)
		fmt.Fprintf(out, "renamed = %q\n", appConfig.GitStatus.Renamed)
		fmt.Fprintf(out, "deleted = %q\n", appConfig.GitStatus.Deleted)

		return nil
	},
}
