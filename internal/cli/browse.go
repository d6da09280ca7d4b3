package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mibnrashid/NinjaFiles2/internal/shell"
	"github.com/mibnrashid/NinjaFiles2/internal/tui"
	"github.com/mibnrashid/NinjaFiles2/internal/vfs"
	"github.com/mibnrashid/NinjaFiles2/pkg/ninja"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Navigate a file system tree interactively",
	Long: `Opens an arrow-key tree navigator over an in-memory file system.

A fresh file system is empty; use --script to populate it with a command
script before browsing:

  ninjafiles browse --script demo.txt`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("script", "", "Command script to populate the tree before browsing")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !tui.IsInteractive() {
		return ninja.ErrNotInteractive
	}

	fs := vfs.New()

	script, err := cmd.Flags().GetString("script")
	if err != nil {
		return err
	}
	if script != "" {
		if err := populate(fs, script); err != nil {
			return err
		}
	}

	return tui.Browse(fs.Root())
}

// populate runs a command script against fs with output discarded, leaving
// only the resulting tree.
func populate(fs *vfs.FileSystem, scriptPath string) error {
	file, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ninja.ErrScriptFailed, err)
	}
	defer file.Close()

	sh := shell.New(fs, shell.Options{Out: io.Discard})

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if !sh.Eval(scanner.Text()) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", ninja.ErrScriptFailed, err)
	}
	return nil
}
