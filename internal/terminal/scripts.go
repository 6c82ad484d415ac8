package terminal

import (
	"fmt"

	"github.com/nassimmaaoui/portfolio-terminal/internal/config"
	"github.com/nassimmaaoui/portfolio-terminal/internal/vfs"
)

func welcomeBanner(cfg *config.Config) []Step {
	example := "git clone https://github.com/" + cfg.GitHubOrg + "/<repo>.git"
	if repos := vfs.Repos(); len(repos) > 0 {
		example = "git clone https://github.com/" + cfg.GitHubOrg + "/" + repos[0] + ".git"
	}
	return []Step{
		success(fmt.Sprintf("Welcome to %s's technical portfolio terminal!", cfg.User)),
		output("Type 'help' to see available commands or 'tutorial' for a guided tour."),
		output("Try: " + example),
	}
}

type helpEntry struct {
	usage, summary string
}

var baseHelp = []helpEntry{
	{"help", "Show this help message"},
	{"clear", "Clear the terminal"},
	{"pwd", "Print the working directory"},
	{"whoami", "Print the current user"},
	{"date", "Print the current date and time"},
	{"echo <msg>", "Print a message"},
	{"history", "List previously entered commands"},
	{"tutorial", "Walk through the terminal step by step"},
	{"git clone <url>", "Clone one of the portfolio repositories"},
}

var repoHelp = []helpEntry{
	{"ls [-la]", "List the repository root"},
	{"cat <file>", "Print a file, nested files are found by name"},
	{"npm start", "Start the development server"},
	{"docker-compose up -d", "Start every service in containers"},
	{"details", "Show the project card from the catalog"},
	{"cd ..", "Leave the repository"},
}

func (t *Terminal) helpSteps() []Step {
	steps := []Step{success("Available commands:")}
	for _, h := range baseHelp {
		steps = append(steps, output(helpLine(h)))
	}

	switch {
	case t.session.IsInRepo:
		steps = append(steps, success(fmt.Sprintf("Inside %s:", t.session.ClonedRepo)))
		for _, h := range repoHelp {
			steps = append(steps, output(helpLine(h)))
		}
	case t.session.HasClone():
		steps = append(steps, output(helpLine(helpEntry{"cd " + t.session.ClonedRepo, "Enter the cloned repository"})))
	default:
		steps = append(steps, output("Repositories available to clone:"))
		for _, repo := range vfs.Repos() {
			steps = append(steps, output("  "+t.cloneURL(repo)))
		}
	}
	return steps
}

func helpLine(h helpEntry) string {
	return fmt.Sprintf("  %-22s %s", h.usage, h.summary)
}

func (t *Terminal) tutorialSteps() []Step {
	repo := "<repo>"
	if repos := vfs.Repos(); len(repos) > 0 {
		repo = repos[0]
	}
	return []Step{
		success("Terminal tutorial"),
		output("1. Clone a project:       git clone " + t.cloneURL(repo)),
		output("2. Enter it:              cd " + repo),
		output("3. Look around:           ls -la"),
		output("4. Read the docs:         cat README.md"),
		output("5. See the project card:  details"),
		output("6. Run it:                npm start  or  docker-compose up -d"),
		output("7. Go back:               cd .."),
		output("Tip: press Tab to complete commands and ↑/↓ to browse history."),
	}
}

func cloneProgress(repo string) []string {
	objects := 180 + len(repo)*7
	compressed := objects * 2 / 3
	deltas := objects / 3
	return []string{
		fmt.Sprintf("remote: Enumerating objects: %d, done.", objects),
		fmt.Sprintf("remote: Counting objects: 100%% (%d/%d), done.", objects, objects),
		fmt.Sprintf("remote: Compressing objects: 100%% (%d/%d), done.", compressed, compressed),
		fmt.Sprintf("Receiving objects: 100%% (%d/%d), 1.%02d MiB | 2.15 MiB/s, done.", objects, objects, objects%100),
		fmt.Sprintf("Resolving deltas: 100%% (%d/%d), done.", deltas, deltas),
	}
}

func npmStartScript(repo string) []string {
	return []string{
		fmt.Sprintf("> %s@1.0.0 start", repo),
		"Installing dependencies...",
		"added 1423 packages in 12s",
		"Starting the development server...",
		"Compiling...",
	}
}

func composeUpScript(repo string) []string {
	return []string{
		fmt.Sprintf("Creating network \"%s_default\" with the default driver", repo),
		fmt.Sprintf("Creating %s_db_1    ... done", repo),
		fmt.Sprintf("Creating %s_api_1   ... done", repo),
		fmt.Sprintf("Creating %s_web_1   ... done", repo),
	}
}
