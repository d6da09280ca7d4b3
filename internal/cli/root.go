// Package cli wires the cobra command surface: the interactive shell on the
// root command, plus run, browse, and version subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mibnrashid/NinjaFiles2/internal/config"
	"github.com/mibnrashid/NinjaFiles2/internal/logging"
	"github.com/mibnrashid/NinjaFiles2/internal/shell"
	"github.com/mibnrashid/NinjaFiles2/internal/tui"
	"github.com/mibnrashid/NinjaFiles2/internal/vfs"
	"github.com/mibnrashid/NinjaFiles2/pkg/ninja"
)

var rootCmd = &cobra.Command{
	Use:   "ninjafiles",
	Short: "In-memory file system simulator",
	Long: asciiLogo + `

NinjaFiles is an in-memory hierarchical file system simulator. It keeps a
tree of directories and files in process memory for the lifetime of one
session and exposes familiar commands against it: mkdir, touch, echo, ls,
cd, pwd, rm, tree, grep, and du.

Running ninjafiles without a subcommand starts the interactive shell.
Nothing is ever written to your real file system.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration file
  11 - Command script failed
  12 - Interactive feature requested without a terminal`,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().String("config", "", "Directory containing "+config.ConfigFileName)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))
	colored := useColor(cmd, cfg)

	if cfg.Greeting && tui.IsInteractive() {
		fmt.Fprintln(os.Stderr, asciiLogo)
		fmt.Fprintln(os.Stderr)
	}

	sh := shell.New(vfs.New(), shell.Options{
		Logger:  logger,
		Colored: colored,
		Prompt:  cfg.Prompt,
	})
	return sh.Run(os.Stdin)
}

// loadConfig resolves the config directory (flag, then environment, then
// the working directory) and loads settings with .env and environment
// overrides applied.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = os.Getenv(ninja.ConfigDirEnv)
	}
	if dir == "" {
		dir = "."
	}

	cfg, err := config.LoadWithEnv(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ninja.ErrInvalidConfig, err)
	}
	return cfg, nil
}

func useColor(cmd *cobra.Command, cfg *config.Config) bool {
	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil || noColor || cfg.NoColor {
		return false
	}
	return tui.IsInteractive()
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
