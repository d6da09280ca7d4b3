package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/mibnrashid/NinjaFiles2/internal/logging"
	"github.com/mibnrashid/NinjaFiles2/internal/vfs"
	"github.com/mibnrashid/NinjaFiles2/pkg/ninja"
)

const availableCommands = "mkdir, touch, echo, ls, cd, pwd, rm, tree, grep, du, exit"

// Shell drives one simulator session: it reads command lines, dispatches
// them to the file system, and writes results to its output writer. Every
// session carries a random UUID, surfaced in verbose logs and transcripts.
type Shell struct {
	fs      *vfs.FileSystem
	out     io.Writer
	log     ninja.Logger
	render  *Renderer
	prompt  string
	session uuid.UUID
}

// Options configures a Shell. Zero values select stdout, a null logger,
// plain output, and the default prompt suffix.
type Options struct {
	Out     io.Writer
	Logger  ninja.Logger
	Colored bool
	Prompt  string
}

// New creates a shell over fs.
func New(fs *vfs.FileSystem, opts Options) *Shell {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNullLogger()
	}
	if opts.Prompt == "" {
		opts.Prompt = ninja.DefaultPromptSuffix
	}

	return &Shell{
		fs:      fs,
		out:     opts.Out,
		log:     opts.Logger,
		render:  NewRenderer(opts.Colored),
		prompt:  opts.Prompt,
		session: uuid.New(),
	}
}

// SessionID returns the session's unique identifier.
func (s *Shell) SessionID() uuid.UUID { return s.session }

// Run reads command lines from r until exit, quit, or EOF, printing a
// prompt before each line.
func (s *Shell) Run(r io.Reader) error {
	s.log.Verbose("session %s started", s.session)

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(s.out, s.render.Prompt(s.fs.CurrentPath(), s.prompt))
		if !scanner.Scan() {
			break
		}
		if !s.Eval(scanner.Text()) {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	s.log.Verbose("session %s ended at EOF", s.session)
	return nil
}

// Eval executes a single command line. Returns false when the session
// should end. Blank lines are no-ops.
func (s *Shell) Eval(line string) bool {
	req, ok := Parse(line)
	if !ok {
		return true
	}

	s.log.Verbose("session %s: %s", s.session, line)

	switch req.Name {
	case "mkdir":
		s.evalMkdir(req)
	case "touch":
		s.evalTouch(req)
	case "echo":
		s.evalEcho(req)
	case "ls":
		s.evalList(req)
	case "cd":
		s.evalChangeDir(req)
	case "pwd":
		fmt.Fprintln(s.out, s.fs.CurrentPath())
	case "rm":
		s.evalRemove(req)
	case "tree":
		s.evalTree(req)
	case "grep":
		s.evalGrep(req)
	case "du":
		s.evalDiskUsage(req)
	case "help":
		fmt.Fprintln(s.out, "Available commands: "+availableCommands)
	case "exit", "quit":
		fmt.Fprintln(s.out, "Exiting NinjaFiles. Goodbye!")
		return false
	default:
		fmt.Fprintln(s.out, "Unknown command: "+req.Name)
		fmt.Fprintln(s.out, "Available commands: "+availableCommands)
	}

	return true
}

func (s *Shell) evalMkdir(req Request) {
	if len(req.Args) == 0 {
		return
	}

	createParents := false
	names := req.Args
	if names[0] == "-p" {
		createParents = true
		names = names[1:]
	}

	for _, res := range s.fs.MakeDirectories(names, createParents) {
		if res.Err != nil {
			fmt.Fprintln(s.out, s.render.Errorf("Error: '%s' already exists.", failedName(res.Err, res.Path)))
		}
	}
}

func (s *Shell) evalTouch(req Request) {
	if len(req.Args) == 0 {
		return
	}

	name := req.Args[0]
	size := 0
	if len(req.Args) > 1 {
		if n, err := strconv.Atoi(req.Args[1]); err == nil {
			size = n
		}
	}

	if err := s.fs.CreateOrResetFile(name, size); err != nil {
		fmt.Fprintln(s.out, s.render.Errorf("Error: '%s' is a directory.", name))
	}
}

func (s *Shell) evalEcho(req Request) {
	content, path, ok := ParseRedirect(req.Rest)
	if !ok {
		return
	}

	err := s.fs.WriteFile(content, path)
	switch {
	case errors.Is(err, vfs.ErrNotFound):
		fmt.Fprintln(s.out, s.render.Errorf("Error: Path '%s' not found.", path))
	case errors.Is(err, vfs.ErrIsADirectory):
		fmt.Fprintln(s.out, s.render.Errorf("Error: '%s' is a directory.", failedName(err, path)))
	}
}

func (s *Shell) evalList(req Request) {
	path := ""
	if len(req.Args) > 0 {
		path = req.Args[0]
	}

	entries, err := s.fs.List(path)
	if err != nil {
		s.printDirError(err, path)
		return
	}
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(s.out, s.render.Listing(entries))
}

func (s *Shell) evalChangeDir(req Request) {
	path := "/"
	if len(req.Args) > 0 {
		path = req.Args[0]
	}

	if err := s.fs.ChangeDirectory(path); err != nil {
		s.printDirError(err, path)
	}
}

func (s *Shell) evalRemove(req Request) {
	if len(req.Args) == 0 {
		fmt.Fprintln(s.out, "Usage: rm <file_name> or rm -r <directory_name>")
		return
	}

	if req.Args[0] == "-r" && len(req.Args) > 1 {
		name := req.Args[1]
		if err := s.fs.RemoveRecursive(name); err != nil {
			fmt.Fprintln(s.out, s.render.Errorf("Error: '%s' not found.", name))
		}
		return
	}

	name := req.Args[0]
	err := s.fs.Remove(name)
	switch {
	case errors.Is(err, vfs.ErrNotFound):
		fmt.Fprintln(s.out, s.render.Errorf("Error: '%s' not found.", name))
	case errors.Is(err, vfs.ErrNotEmpty):
		fmt.Fprintln(s.out, s.render.Errorf("Error: Cannot remove directory '%s'. It is not empty.", name))
	}
}

func (s *Shell) evalTree(req Request) {
	path := ""
	if len(req.Args) > 0 {
		path = req.Args[0]
	}

	rendered, err := s.fs.Tree(path)
	if err != nil {
		s.printDirError(err, path)
		return
	}
	fmt.Fprint(s.out, rendered)
}

func (s *Shell) evalGrep(req Request) {
	pattern, path, ok := ParseQuotedArg(req.Rest)
	if !ok {
		return
	}

	found, err := s.fs.Search(pattern, path)
	switch {
	case errors.Is(err, vfs.ErrNotFound):
		fmt.Fprintln(s.out, s.render.Errorf("Error: '%s' not found.", path))
		return
	case errors.Is(err, vfs.ErrNotAFile):
		fmt.Fprintln(s.out, s.render.Errorf("Error: '%s' is not a file.", path))
		return
	}

	if found {
		fmt.Fprintf(s.out, "Pattern \"%s\" found in %s.\n", pattern, path)
	} else {
		fmt.Fprintf(s.out, "Pattern \"%s\" not found in %s.\n", pattern, path)
	}
}

func (s *Shell) evalDiskUsage(req Request) {
	path := ""
	if len(req.Args) > 0 {
		path = req.Args[0]
	}

	total, err := s.fs.DiskUsage(path)
	if err != nil {
		s.printDirError(err, path)
		return
	}
	fmt.Fprintf(s.out, "Total size: %dB\n", total)
}

// printDirError reports the two failure modes shared by the operations
// that target a directory path.
func (s *Shell) printDirError(err error, path string) {
	switch {
	case errors.Is(err, vfs.ErrNotFound):
		fmt.Fprintln(s.out, s.render.Errorf("Error: Path '%s' not found.", path))
	case errors.Is(err, vfs.ErrNotADirectory):
		fmt.Fprintln(s.out, s.render.Errorf("Error: '%s' is not a directory.", path))
	}
}

// failedName extracts the offending name from a *vfs.PathError, falling
// back to the full argument when the error carries no path.
func failedName(err error, fallback string) string {
	var pathErr *vfs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Path
	}
	return fallback
}
