package vfs

import (
	"fmt"
	"strings"
)

// Tree renders the directory at path as an indented tree, one line per
// node. The target itself is rendered as "."; children are rendered in
// name-sorted order with the classic connector scheme, where the last
// sibling uses a corner connector and suppresses the continuation guide
// for its own children.
func (fs *FileSystem) Tree(path string) (string, error) {
	dir, err := fs.targetDir("tree", path)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(".\n")

	children := dir.Children()
	for i, child := range children {
		renderTree(&b, child, "", i == len(children)-1)
	}
	return b.String(), nil
}

func renderTree(b *strings.Builder, node Node, prefix string, isLast bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}
	b.WriteString(prefix)
	b.WriteString(connector)

	dir, isDir := node.(*Directory)
	if isDir {
		b.WriteString(node.Name())
		b.WriteString("/\n")
	} else {
		fmt.Fprintf(b, "%s (%dB)\n", node.Name(), node.Size())
	}

	if !isDir {
		return
	}

	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}

	children := dir.Children()
	for i, child := range children {
		renderTree(b, child, childPrefix, i == len(children)-1)
	}
}
