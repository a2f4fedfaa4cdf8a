package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/xvierd/glint/internal/modules"
	"github.com/xvierd/glint/internal/style"
	"github.com/xvierd/glint/internal/tui"
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactively try out git_status format strings",
	Long: `Open a small interactive editor: type a format string and see the
rendered fragment for the current repository update live, including any
format errors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		render := func(format string) (string, error) {
			cfg := appConfig.GitStatus
			cfg.Format = format
			module, err := modules.GitStatus(repo, cfg, log)
			if err != nil {
				return "", err
			}
			if module == nil {
				return "", nil
			}
			return style.Render(module.Segments, noColor), nil
		}

		model := tui.NewPreview(appConfig.GitStatus.Format, render)
		_, err := tea.NewProgram(model).Run()
		return err
	},
}
