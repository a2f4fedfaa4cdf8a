package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/glint/internal/adapters/git"
	"github.com/xvierd/glint/internal/config"
	"github.com/xvierd/glint/internal/modules"
	"github.com/xvierd/glint/internal/style"
	"go.uber.org/zap"
)

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Show what each module would render and why",
	Long: `Show, per module, the rendered output, its plain text, and any
format-string error. Useful when a prompt fragment unexpectedly shows
nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if repo == nil {
			fmt.Fprintln(out, "no git repository found; all modules inapplicable")
			return nil
		}
		fmt.Fprintf(out, "repository root: %s\n", repo.RootDir)
		fmt.Fprintf(out, "control dir:     %s\n\n", repo.ControlDir)

		type renderFn func(*git.Repository, *config.Config, *zap.SugaredLogger) (*modules.Module, error)
		for _, entry := range []struct {
			name   string
			render renderFn
		}{
			{"git_branch", func(r *git.Repository, c *config.Config, l *zap.SugaredLogger) (*modules.Module, error) {
				return modules.GitBranch(r, c.GitBranch, l)
			}},
			{"git_status", func(r *git.Repository, c *config.Config, l *zap.SugaredLogger) (*modules.Module, error) {
				return modules.GitStatus(r, c.GitStatus, l)
			}},
		} {
			module, err := entry.render(repo, appConfig, log)
			switch {
			case err != nil:
				fmt.Fprintf(out, "%-12s error: %v\n", entry.name, err)
			case module == nil:
				fmt.Fprintf(out, "%-12s (nothing to display)\n", entry.name)
			default:
				fmt.Fprintf(out, "%-12s %s  (plain: %q)\n",
					entry.name, style.Render(module.Segments, noColor), module.Text())
			}
		}
		return nil
	},
}
