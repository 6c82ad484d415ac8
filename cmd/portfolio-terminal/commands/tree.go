package commands

import (
	"fmt"
	"strings"

	"github.com/nassimmaaoui/portfolio-terminal/internal/vfs"
	"github.com/spf13/cobra"
)

// NewTreeCommand creates the tree command
func NewTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <repo>",
		Short: "Print the file tree of a cloneable repository",
		Args:  cobra.ExactArgs(1),
		RunE:  runTree,
	}
}

func runTree(cmd *cobra.Command, args []string) error {
	repo := args[0]

	tree, ok := vfs.LoadTree(repo)
	if !ok {
		return fmt.Errorf("unknown repository %q (available: %s)", repo, strings.Join(vfs.Repos(), ", "))
	}

	fmt.Fprint(cmd.OutOrStdout(), vfs.Render(repo, tree))
	return nil
}
