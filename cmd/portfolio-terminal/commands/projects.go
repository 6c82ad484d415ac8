package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/nassimmaaoui/portfolio-terminal/internal/catalog"
	"github.com/nassimmaaoui/portfolio-terminal/pkg/models"
	"github.com/spf13/cobra"
)

// NewProjectsCommand creates the projects command
func NewProjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "projects [id]",
		Short: "List catalog projects or show one",
		Long: `Show the project catalog in a non-interactive format.
Without arguments: lists all projects
With a project id: shows the full project card`,
		Args: cobra.MaximumNArgs(1),
		RunE: runProjects,
	}
}

func runProjects(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		showProjects(out, a.projects)
		return nil
	}

	project, ok := catalog.Find(a.projects, args[0])
	if !ok {
		return fmt.Errorf("project %q not found", args[0])
	}
	showProject(out, project)
	return nil
}

func showProjects(w io.Writer, projects []models.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects found")
		return
	}

	fmt.Fprintln(w, "Projects:")
	fmt.Fprintln(w, "=========")
	for i, p := range projects {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, p.Name, p.ID)
		fmt.Fprintf(w, "   Category: %s\n", p.Category)
		fmt.Fprintf(w, "   Stars: %d  Forks: %d  Commits: %d\n", p.Stats.Stars, p.Stats.Forks, p.Stats.Commits)
		fmt.Fprintln(w)
	}
}

func showProject(w io.Writer, p models.Project) {
	fmt.Fprintf(w, "%s\n", p.Name)
	fmt.Fprintln(w, strings.Repeat("=", len(p.Name)))
	if p.Description != "" {
		fmt.Fprintf(w, "%s\n\n", p.Description)
	}
	fmt.Fprintf(w, "Category:   %s\n", p.Category)
	fmt.Fprintf(w, "Tech stack: %s\n", strings.Join(p.TechStack, ", "))
	fmt.Fprintf(w, "Stats:      %d stars, %d forks, %d commits\n", p.Stats.Stars, p.Stats.Forks, p.Stats.Commits)
	fmt.Fprintf(w, "GitHub:     %s\n", p.GitHubURL)
	if p.LiveURL != "" {
		fmt.Fprintf(w, "Live:       %s\n", p.LiveURL)
	}
}
