// Package vfs holds the static, read-only file trees of the repositories that
// can be cloned inside the simulated terminal.
package vfs

// Kind distinguishes files from folders
type Kind int

const (
	File Kind = iota
	Folder
)

func (k Kind) String() string {
	if k == Folder {
		return "folder"
	}
	return "file"
}

// Node is one entry of a repository tree. Each node owns its children;
// there are no parent pointers, moving up is tracked by the terminal session.
type Node struct {
	Name     string
	Kind     Kind
	Content  string
	Children []Node
}

// IsFolder reports whether the node is a folder
func (n Node) IsFolder() bool {
	return n.Kind == Folder
}

func file(name, content string) Node {
	return Node{Name: name, Kind: File, Content: content}
}

func folder(name string, children ...Node) Node {
	return Node{Name: name, Kind: Folder, Children: children}
}

type repoTree struct {
	id    string
	nodes []Node
}

// registry keeps the repositories in registration order, which is also the
// order of the clone allow-list.
var registry []repoTree

func register(id string, nodes ...Node) {
	registry = append(registry, repoTree{id: id, nodes: nodes})
}

// Repos returns the ids of every repository that has a tree, in
// registration order.
func Repos() []string {
	ids := make([]string, 0, len(registry))
	for _, r := range registry {
		ids = append(ids, r.id)
	}
	return ids
}

// Has reports whether a tree exists for repoID
func Has(repoID string) bool {
	for _, r := range registry {
		if r.id == repoID {
			return true
		}
	}
	return false
}

// LoadTree returns a copy of the static tree for repoID. The returned slice is
// independent of the registry, so callers cannot alter what later loads see.
func LoadTree(repoID string) ([]Node, bool) {
	for _, r := range registry {
		if r.id == repoID {
			return cloneNodes(r.nodes), true
		}
	}
	return nil, false
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
		out[i].Children = cloneNodes(n.Children)
	}
	return out
}
