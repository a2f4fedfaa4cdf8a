// Package cmd provides the CLI commands for glint.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/glint/internal/adapters/execx"
	"github.com/xvierd/glint/internal/adapters/git"
	"github.com/xvierd/glint/internal/config"
	"github.com/xvierd/glint/internal/logging"
	"go.uber.org/zap"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Global flags
	pathFlag   string
	configFlag string
	logLevel   string
	noColor    bool

	// Global dependencies
	appConfig *config.Config
	log       *zap.SugaredLogger
	repo      *git.Repository
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "glint",
	Short: "glint - a styled git status fragment for your shell prompt",
	Long: `glint probes the nearest git repository and prints a compact styled
summary (branch, dirty-state counts) for embedding in a shell prompt.

Run "glint prompt" from your prompt hook; it prints nothing at all when
there is no repository or nothing to report.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&pathFlag, "path", "", "Directory to probe (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to the config file (default: ~/.config/glint/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Print plain text without styling")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("glint\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
}

// initializeServices loads config, builds the logger, and probes for the
// repository. A missing repository is not an error here: commands decide
// what absence means for them.
func initializeServices() error {
	cfg, cfgErr := config.Load(configFlag)
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}
	appConfig = cfg

	level := appConfig.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	log = logging.New(level)
	if cfgErr != nil {
		log.Warnw("failed to load config, using defaults", "error", cfgErr)
	}

	dir := pathFlag
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repo = git.Discover(dir, execx.New(log))
	if repo == nil {
		log.Debugw("no git repository found", "path", dir)
	}
	return nil
}
