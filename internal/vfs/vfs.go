package vfs

import (
	"strings"

	"github.com/mibnrashid/NinjaFiles2/internal/search"
)

// FileSystem owns the root directory and the current-directory cursor, and
// implements every operation the shell exposes. It is created once per
// session and mutated in place; the cursor only ever points at a directory
// reachable from the root.
type FileSystem struct {
	root    *Directory
	current *Directory
}

// New creates a file system containing only the root directory "/", which
// is also the initial current directory.
func New() *FileSystem {
	root := NewDirectory("/")
	return &FileSystem{root: root, current: root}
}

// Root returns the root directory.
func (fs *FileSystem) Root() *Directory { return fs.root }

// Current returns the current directory.
func (fs *FileSystem) Current() *Directory { return fs.current }

// CurrentPath returns the absolute path of the current directory, built by
// walking parent references up to the root. Returns "/" at the root.
func (fs *FileSystem) CurrentPath() string {
	if fs.current == fs.root {
		return "/"
	}

	var names []string
	for node := Node(fs.current); node.Parent() != nil; node = node.Parent() {
		names = append(names, node.Name())
	}

	var b strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		b.WriteString("/")
		b.WriteString(names[i])
	}
	return b.String()
}

// ChangeDirectory moves the current-directory cursor.
//
// An empty path or "/" returns to the root. A bare "." moves up one level;
// this contradicts path-resolution semantics, where "." inside a longer
// path means "stay", but it is the simulator's observed behavior and is
// kept as-is. Everything else resolves normally and must name a directory.
func (fs *FileSystem) ChangeDirectory(path string) error {
	if path == "" || path == "/" {
		fs.current = fs.root
		return nil
	}

	if path == "." {
		if fs.current.Parent() != nil {
			fs.current = fs.current.Parent()
		}
		return nil
	}

	node := fs.resolveNode(path)
	if node == nil {
		return pathErr("cd", path, ErrNotFound)
	}
	dir, ok := node.(*Directory)
	if !ok {
		return pathErr("cd", path, ErrNotADirectory)
	}

	fs.current = dir
	return nil
}

// MakeDirResult reports the outcome of creating one directory path.
type MakeDirResult struct {
	Path string
	Err  error
}

// MakeDirectories creates one directory per entry in paths and reports a
// per-item result, so one failure does not stop the remaining entries.
//
// Without createParents each entry names a single new child of the current
// directory and fails with ErrAlreadyExists if any same-named child exists.
// With createParents each entry is walked component by component from the
// root (absolute) or current directory (relative), reusing existing
// directories and creating missing ones; a component occupied by a file
// fails with ErrAlreadyExists. Creation is incremental: components created
// before a failure remain.
func (fs *FileSystem) MakeDirectories(paths []string, createParents bool) []MakeDirResult {
	results := make([]MakeDirResult, 0, len(paths))
	for _, p := range paths {
		var err error
		if createParents {
			err = fs.makeDirPath(p)
		} else {
			err = fs.makeDir(p, fs.current)
		}
		results = append(results, MakeDirResult{Path: p, Err: err})
	}
	return results
}

func (fs *FileSystem) makeDir(name string, parent *Directory) error {
	if parent.Child(name) != nil {
		return pathErr("mkdir", name, ErrAlreadyExists)
	}
	parent.Attach(NewDirectory(name))
	return nil
}

func (fs *FileSystem) makeDirPath(path string) error {
	if path == "" {
		return nil
	}

	walk := fs.current
	if strings.HasPrefix(path, "/") {
		walk = fs.root
	}

	for _, component := range strings.Split(path, "/") {
		if component == "" {
			continue
		}

		existing := walk.Child(component)
		if existing == nil {
			next := NewDirectory(component)
			walk.Attach(next)
			walk = next
			continue
		}
		dir, ok := existing.(*Directory)
		if !ok {
			return pathErr("mkdir", component, ErrAlreadyExists)
		}
		walk = dir
	}

	return nil
}

// CreateOrResetFile creates a file with the given size and empty content as
// a child of the current directory. If a file with that name already exists
// its size is reset and its content cleared; a same-named directory fails
// with ErrIsADirectory.
func (fs *FileSystem) CreateOrResetFile(name string, size int) error {
	switch existing := fs.current.Child(name).(type) {
	case nil:
		fs.current.Attach(NewFile(name, size))
	case *Directory:
		return pathErr("touch", name, ErrIsADirectory)
	case *File:
		existing.SetSize(size)
	}
	return nil
}

// WriteFile writes content to the file at path, creating it if absent. The
// path may be nested; its parent directories must already exist. Writing
// over an existing file replaces the content and recomputes the size; a
// same-named directory fails with ErrIsADirectory.
func (fs *FileSystem) WriteFile(content, path string) error {
	parent := fs.current
	name := path

	if strings.Contains(path, "/") {
		parent = fs.resolveParentDir(path)
		if parent == nil {
			return pathErr("write", path, ErrNotFound)
		}
		name = leafName(path)
	}

	switch existing := parent.Child(name).(type) {
	case nil:
		parent.Attach(NewFileWithContent(name, content))
	case *Directory:
		return pathErr("write", name, ErrIsADirectory)
	case *File:
		existing.SetContent(content)
	}
	return nil
}

// ReadFile returns the content of the file at path.
func (fs *FileSystem) ReadFile(path string) (string, error) {
	node := fs.resolveNode(path)
	if node == nil {
		return "", pathErr("read", path, ErrNotFound)
	}
	file, ok := node.(*File)
	if !ok {
		return "", pathErr("read", path, ErrIsADirectory)
	}
	return file.Content(), nil
}

// Entry is one row of a directory listing. Size is meaningful for files
// only; directory sizes are served by DiskUsage.
type Entry struct {
	Name  string
	IsDir bool
	Size  int
}

// List returns the immediate children of the directory at path, sorted by
// name. An empty path lists the current directory.
func (fs *FileSystem) List(path string) ([]Entry, error) {
	dir, err := fs.targetDir("ls", path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, dir.Len())
	for _, child := range dir.Children() {
		switch node := child.(type) {
		case *Directory:
			entries = append(entries, Entry{Name: node.Name(), IsDir: true})
		case *File:
			entries = append(entries, Entry{Name: node.Name(), Size: node.Size()})
		}
	}
	return entries, nil
}

// Remove detaches the named child of the current directory. Directories
// must be empty; use RemoveRecursive otherwise.
func (fs *FileSystem) Remove(name string) error {
	target := fs.current.Child(name)
	if target == nil {
		return pathErr("rm", name, ErrNotFound)
	}

	if dir, ok := target.(*Directory); ok && dir.Len() > 0 {
		return pathErr("rm", name, ErrNotEmpty)
	}

	fs.current.Detach(name)
	return nil
}

// RemoveRecursive detaches the named child of the current directory along
// with its entire subtree, depth first. A file target behaves like Remove.
func (fs *FileSystem) RemoveRecursive(name string) error {
	target := fs.current.Child(name)
	if target == nil {
		return pathErr("rm", name, ErrNotFound)
	}

	if dir, ok := target.(*Directory); ok {
		removeSubtree(dir)
	}
	fs.current.Detach(name)
	return nil
}

// removeSubtree detaches every descendant of dir, children before parents.
func removeSubtree(dir *Directory) {
	for _, child := range dir.Children() {
		if sub, ok := child.(*Directory); ok {
			removeSubtree(sub)
		}
		dir.Detach(child.Name())
	}
}

// DiskUsage returns the total size in bytes of the directory at path,
// recomputed by depth-first summation over the whole subtree.
func (fs *FileSystem) DiskUsage(path string) (int, error) {
	dir, err := fs.targetDir("du", path)
	if err != nil {
		return 0, err
	}
	return dir.Size(), nil
}

// Search reports whether pattern occurs in the content of the file at path.
// An empty pattern is reported as not found.
func (fs *FileSystem) Search(pattern, path string) (bool, error) {
	node := fs.resolveNode(path)
	if node == nil {
		return false, pathErr("grep", path, ErrNotFound)
	}
	file, ok := node.(*File)
	if !ok {
		return false, pathErr("grep", path, ErrNotAFile)
	}
	return search.Found(pattern, file.Content()), nil
}

// targetDir resolves the directory an inspection operation acts on: the
// current directory for an empty path, the resolved directory otherwise.
func (fs *FileSystem) targetDir(op, path string) (*Directory, error) {
	if path == "" {
		return fs.current, nil
	}
	node := fs.resolveNode(path)
	if node == nil {
		return nil, pathErr(op, path, ErrNotFound)
	}
	dir, ok := node.(*Directory)
	if !ok {
		return nil, pathErr(op, path, ErrNotADirectory)
	}
	return dir, nil
}
