package vfs

import (
	"fmt"
	"hash/fnv"
	"strings"
)

const (
	folderIcon = "📁"
	fileIcon   = "📄"

	listingOwner = "nassim staff"
	listingDate  = "Jan 15 10:30"
	folderSize   = 4096
)

// List returns one entry per root-level node, in insertion order. The long
// form mimics `ls -la` and starts with a "total" line. Listing never
// descends into folders.
func List(tree []Node, long bool) []string {
	if !long {
		entries := make([]string, 0, len(tree))
		for _, n := range tree {
			entries = append(entries, shortEntry(n))
		}
		return entries
	}

	entries := make([]string, 0, len(tree)+3)
	entries = append(entries,
		fmt.Sprintf("total %d", len(tree)),
		longEntry("drwxr-xr-x", folderSize, "."),
		longEntry("drwxr-xr-x", folderSize, ".."),
	)
	for _, n := range tree {
		if n.IsFolder() {
			entries = append(entries, longEntry("drwxr-xr-x", folderSize, n.Name+"/"))
		} else {
			entries = append(entries, longEntry("-rw-r--r--", FileSize(n), n.Name))
		}
	}
	return entries
}

func shortEntry(n Node) string {
	if n.IsFolder() {
		return fmt.Sprintf("%s %s/", folderIcon, n.Name)
	}
	return fmt.Sprintf("%s %s", fileIcon, n.Name)
}

func longEntry(perms string, size int, name string) string {
	return fmt.Sprintf("%s  1 %s %6d %s %s", perms, listingOwner, size, listingDate, name)
}

// FileSize returns the pseudo-random size reported for a node. It is derived
// from the name so repeated listings agree.
func FileSize(n Node) int {
	if n.IsFolder() {
		return folderSize
	}
	h := fnv.New32a()
	h.Write([]byte(n.Name))
	return 128 + int(h.Sum32()%9872)
}

// FindFile searches the whole tree depth-first and returns the first file
// whose name is exactly name.
func FindFile(tree []Node, name string) (Node, bool) {
	for _, n := range tree {
		if n.Kind == File && n.Name == name {
			return n, true
		}
		if n.IsFolder() {
			if found, ok := FindFile(n.Children, name); ok {
				return found, true
			}
		}
	}
	return Node{}, false
}

// Files returns the names of every file in the tree, depth-first.
func Files(tree []Node) []string {
	var names []string
	for _, n := range tree {
		if n.IsFolder() {
			names = append(names, Files(n.Children)...)
			continue
		}
		names = append(names, n.Name)
	}
	return names
}

// Render draws the tree with box-drawing connectors, root first.
func Render(root string, tree []Node) string {
	var s strings.Builder
	s.WriteString(root + "/\n")
	renderChildren(&s, tree, "")
	return s.String()
}

func renderChildren(s *strings.Builder, nodes []Node, prefix string) {
	for i, n := range nodes {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(nodes)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		name := n.Name
		if n.IsFolder() {
			name += "/"
		}
		s.WriteString(prefix + connector + name + "\n")
		if n.IsFolder() {
			renderChildren(s, n.Children, childPrefix)
		}
	}
}
