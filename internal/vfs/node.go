package vfs

import "sort"

// Node is a single entry in the tree, either a *File or a *Directory.
// Dispatch on the concrete variant with a type switch; there is no
// runtime kind flag.
type Node interface {
	// Name returns the node's name, unique among its siblings.
	Name() string

	// Parent returns the owning directory, or nil for the root.
	Parent() *Directory

	// Size returns the stored byte length for files and the recursive
	// sum of all descendant file sizes for directories. Directory sizes
	// are recomputed on every call, never cached.
	Size() int

	// setParent is called only by the directory that attaches or
	// detaches the node, keeping the back-reference in lockstep with
	// the owning child map.
	setParent(d *Directory)
}

// File holds text content and a derived size.
//
// Size and content can be set independently: SetSize truncates the content,
// while SetContent always recomputes the size from the new content.
type File struct {
	name    string
	parent  *Directory
	content string
	size    int
}

// NewFile creates a detached file with the given size and empty content.
func NewFile(name string, size int) *File {
	return &File{name: name, size: size}
}

// NewFileWithContent creates a detached file whose size is derived from content.
func NewFileWithContent(name, content string) *File {
	return &File{name: name, content: content, size: len(content)}
}

func (f *File) Name() string           { return f.name }
func (f *File) Parent() *Directory     { return f.parent }
func (f *File) Size() int              { return f.size }
func (f *File) setParent(d *Directory) { f.parent = d }

// Content returns the file's text content.
func (f *File) Content() string { return f.content }

// SetContent replaces the content and recomputes the size from it.
func (f *File) SetContent(content string) {
	f.content = content
	f.size = len(content)
}

// SetSize sets the size explicitly and clears the content.
func (f *File) SetSize(size int) {
	f.size = size
	f.content = ""
}

// Directory owns a name-indexed collection of child nodes.
//
// Invariant: for every (name, node) entry, node.Name() == name and
// node.Parent() is this directory. Attach and Detach are the only
// operations that touch the map, so the invariant cannot be observed
// broken.
type Directory struct {
	name     string
	parent   *Directory
	children map[string]Node
}

// NewDirectory creates a detached, empty directory.
func NewDirectory(name string) *Directory {
	return &Directory{name: name, children: make(map[string]Node)}
}

func (d *Directory) Name() string           { return d.name }
func (d *Directory) Parent() *Directory     { return d.parent }
func (d *Directory) setParent(p *Directory) { d.parent = p }

// Size sums the sizes of all children recursively.
func (d *Directory) Size() int {
	total := 0
	for _, child := range d.children {
		total += child.Size()
	}
	return total
}

// Child looks up an immediate child by name. Average O(1).
func (d *Directory) Child(name string) Node {
	return d.children[name]
}

// Len returns the number of immediate children.
func (d *Directory) Len() int { return len(d.children) }

// Attach adds child to the directory and updates its parent reference.
// The caller is responsible for rejecting name collisions first.
func (d *Directory) Attach(child Node) {
	d.children[child.Name()] = child
	child.setParent(d)
}

// Detach removes the named child and clears its parent reference.
// Returns the removed node, or nil if no such child exists.
func (d *Directory) Detach(name string) Node {
	child, ok := d.children[name]
	if !ok {
		return nil
	}
	delete(d.children, name)
	child.setParent(nil)
	return child
}

// Children returns the immediate children sorted by name.
func (d *Directory) Children() []Node {
	nodes := make([]Node, 0, len(d.children))
	for _, child := range d.children {
		nodes = append(nodes, child)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Name() < nodes[j].Name()
	})
	return nodes
}
