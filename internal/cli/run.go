package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mibnrashid/NinjaFiles2/internal/logging"
	"github.com/mibnrashid/NinjaFiles2/internal/shell"
	"github.com/mibnrashid/NinjaFiles2/internal/vfs"
	"github.com/mibnrashid/NinjaFiles2/pkg/ninja"
)

var runCmd = &cobra.Command{
	Use:   "run <script_path>",
	Short: "Execute a command script against a fresh file system",
	Long: `Reads a newline-separated command script and executes it against a fresh
in-memory file system, printing the same output the interactive shell
would. Execution stops at an exit command or the end of the script.`,
	Args: RequireScriptPath,
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ninja.ErrScriptFailed, err)
	}
	defer file.Close()

	sh := shell.New(vfs.New(), shell.Options{Logger: logger})
	logger.Verbose("running script %s as session %s", args[0], sh.SessionID())

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if !sh.Eval(scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", ninja.ErrScriptFailed, err)
	}
	return nil
}
