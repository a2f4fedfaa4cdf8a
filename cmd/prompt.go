package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/glint/internal/domain"
	"github.com/xvierd/glint/internal/modules"
	"github.com/xvierd/glint/internal/style"
)

// promptCmd represents the prompt command
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Render the prompt fragment for the current directory",
	Long: `Render the styled git fragment and print it to stdout, without a
trailing newline. Prints nothing when there is no repository or the working
tree is clean and every module vanished.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		segments := collectSegments()
		if len(segments) == 0 {
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), style.Render(segments, noColor))
		return nil
	},
}

// collectSegments renders every module in prompt order. A module with a
// broken format string is logged and skipped; the rest still render.
func collectSegments() []domain.Segment {
	var segments []domain.Segment

	branch, err := modules.GitBranch(repo, appConfig.GitBranch, log)
	if err != nil {
		log.Warnw("error in module git_branch", "error", err)
	} else if branch != nil {
		segments = append(segments, branch.Segments...)
	}

	status, err := modules.GitStatus(repo, appConfig.GitStatus, log)
	if err != nil {
		log.Warnw("error in module git_status", "error", err)
	} else if status != nil {
		segments = append(segments, status.Segments...)
	}

	return segments
}
