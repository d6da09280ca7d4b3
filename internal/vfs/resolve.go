package vfs

import "strings"

// resolveNode translates a path string into a concrete node, or nil when
// the path does not resolve. Resolution never mutates the tree.
//
// An empty path resolves to the current directory, "/" to the root, "." to
// the current directory, and ".." to the current directory's parent (the
// root's parent is itself). Any other path walks child lookups component by
// component, starting from the root for absolute paths and from the current
// directory otherwise. Empty components from repeated or trailing slashes
// are skipped. Descending into a file, or ascending from one, fails.
func (fs *FileSystem) resolveNode(path string) Node {
	if path == "" {
		return fs.current
	}

	switch path {
	case "/":
		return fs.root
	case ".":
		return fs.current
	case "..":
		if fs.current.Parent() != nil {
			return fs.current.Parent()
		}
		return fs.root
	}

	var walk Node
	if strings.HasPrefix(path, "/") {
		walk = fs.root
	} else {
		walk = fs.current
	}

	for _, component := range strings.Split(path, "/") {
		if component == "" || component == "." {
			continue
		}

		dir, ok := walk.(*Directory)
		if !ok {
			// Cannot descend into or ascend from a file.
			return nil
		}

		if component == ".." {
			if dir.Parent() != nil {
				walk = dir.Parent()
			} else {
				walk = fs.root
			}
			continue
		}

		child := dir.Child(component)
		if child == nil {
			return nil
		}
		walk = child
	}

	return walk
}

// resolveDir resolves path to a directory, or nil when the path does not
// resolve or names a file.
func (fs *FileSystem) resolveDir(path string) *Directory {
	if dir, ok := fs.resolveNode(path).(*Directory); ok {
		return dir
	}
	return nil
}

// resolveParentDir resolves the directory that would contain the leaf of
// path: no slash means the current directory, a leading slash alone means
// the root, anything else resolves the substring before the last slash.
// Returns nil for the root path itself or when the parent does not resolve
// to a directory.
func (fs *FileSystem) resolveParentDir(path string) *Directory {
	if path == "" {
		return fs.current
	}
	if path == "/" {
		return nil
	}

	lastSlash := strings.LastIndex(path, "/")
	if lastSlash == -1 {
		return fs.current
	}
	if lastSlash == 0 {
		return fs.root
	}

	return fs.resolveDir(path[:lastSlash])
}

// leafName returns the final path component, the part after the last slash.
func leafName(path string) string {
	if i := strings.LastIndex(path, "/"); i != -1 {
		return path[i+1:]
	}
	return path
}
