package terminal

import (
	"fmt"
	"path"
	"strings"

	"github.com/nassimmaaoui/portfolio-terminal/internal/vfs"
	"github.com/nassimmaaoui/portfolio-terminal/pkg/models"
	"go.uber.org/zap"
)

const notFoundHint = "Type 'help' to see available commands."

// dispatch turns a parsed command into the steps that execute it. Every
// failure becomes a printed line; nothing here returns an error.
func (t *Terminal) dispatch(cmd Command) *Sequence {
	switch c := cmd.(type) {
	case Help:
		return NewSequence(t.helpSteps()...)
	case Clear:
		return NewSequence(effect(t.clearScreen))
	case Pwd:
		return NewSequence(output(t.session.CurrentDirectory))
	case Whoami:
		return NewSequence(output(t.cfg.User))
	case Date:
		return NewSequence(output(t.now().Format("Mon Jan 2 15:04:05 MST 2006")))
	case Echo:
		return NewSequence(output(c.Message))
	case ShowHistory:
		return NewSequence(t.historySteps()...)
	case Tutorial:
		return NewSequence(t.tutorialSteps()...)
	case GitClone:
		return NewSequence(t.cloneSteps(c)...)
	case Cd:
		return NewSequence(t.cdSteps(c)...)
	case Ls:
		return NewSequence(t.lsSteps(c)...)
	case Cat:
		return NewSequence(t.catSteps(c)...)
	case RunService:
		return NewSequence(t.serviceSteps(c)...)
	case Details:
		return NewSequence(t.detailsSteps()...)
	case Unknown:
		return NewSequence(
			failure("Command not found: "+c.Input),
			output(notFoundHint),
		)
	}
	return NewSequence(failure("Command not found: " + cmd.Name()))
}

func (t *Terminal) historySteps() []Step {
	entries := t.history.Entries()
	steps := make([]Step, 0, len(entries))
	for i, e := range entries {
		steps = append(steps, output(fmt.Sprintf("%5d  %s", i+1, e)))
	}
	return steps
}

func (t *Terminal) cloneSteps(c GitClone) []Step {
	url := "https://github.com/" + c.Org + "/" + c.Repo + ".git"
	if !vfs.Has(c.Repo) {
		return []Step{failure(fmt.Sprintf("fatal: repository '%s' not found", url))}
	}

	repo := c.Repo
	steps := []Step{output(fmt.Sprintf("Cloning into '%s'...", repo))}
	for _, line := range cloneProgress(repo) {
		steps = append(steps, after(t.stepDelay(), output(line)))
	}
	steps = append(steps,
		after(t.stepDelay(), effect(func() {
			tree, _ := vfs.LoadTree(repo)
			t.tree = tree
			t.session.Reset(t.cfg.BaseDirectory)
			t.session.ClonedRepo = repo
			t.logger.Info("repository cloned", zap.String("repo", repo), zap.Int("root_entries", len(tree)))
		})),
		success(fmt.Sprintf("✓ Repository '%s' cloned successfully!", repo)),
		output(fmt.Sprintf("Run 'cd %s' to enter the project directory.", repo)),
	)
	return steps
}

func (t *Terminal) cdSteps(c Cd) []Step {
	if c.Target == ".." {
		return []Step{effect(func() {
			t.session.leaveRepo(t.cfg.BaseDirectory)
		})}
	}
	return []Step{
		effect(func() {
			t.session.enterRepo(t.cfg.BaseDirectory)
		}),
		output(fmt.Sprintf("Entered %s. Try 'ls', 'cat README.md' or 'details'.", path.Join(t.cfg.BaseDirectory, c.Target))),
	}
}

func (t *Terminal) lsSteps(c Ls) []Step {
	entries := vfs.List(t.tree, c.Long)
	steps := make([]Step, 0, len(entries))
	for _, e := range entries {
		steps = append(steps, output(e))
	}
	return steps
}

func (t *Terminal) catSteps(c Cat) []Step {
	if c.File == "" {
		return []Step{failure("usage: cat <file>")}
	}
	node, ok := vfs.FindFile(t.tree, c.File)
	if !ok {
		return []Step{failure(fmt.Sprintf("cat: %s: No such file or directory", c.File))}
	}

	if strings.HasSuffix(strings.ToLower(node.Name), ".md") {
		content := strings.TrimRight(node.Content, "\n")
		return []Step{{Line: &Entry{Kind: KindOutput, Content: content, Markdown: true}}}
	}

	lines := strings.Split(strings.TrimRight(node.Content, "\n"), "\n")
	steps := make([]Step, 0, len(lines))
	for _, l := range lines {
		steps = append(steps, output(l))
	}
	return steps
}

func (t *Terminal) serviceSteps(c RunService) []Step {
	repo := t.session.ClonedRepo

	var script []string
	var done string
	switch c.Service {
	case ServiceNpm:
		script = npmStartScript(repo)
		done = "✓ Compiled successfully! The app is running at http://localhost:3000"
	case ServiceCompose:
		script = composeUpScript(repo)
		done = "✓ All services are up and running"
	}

	steps := []Step{output(script[0])}
	for _, line := range script[1:] {
		steps = append(steps, after(t.stepDelay(), output(line)))
	}
	steps = append(steps, after(t.stepDelay(), success(done)))

	if p, ok := t.findProject(repo); ok && p.LiveURL != "" {
		steps = append(steps, output("Live demo: "+p.LiveURL))
	}
	return steps
}

func (t *Terminal) detailsSteps() []Step {
	repo := t.session.ClonedRepo
	p, ok := t.findProject(repo)
	if !ok {
		return []Step{failure(fmt.Sprintf("No project details found for '%s'", repo))}
	}

	steps := []Step{
		success("📦 " + p.Name),
		output(p.Description),
		output("Category:   " + p.Category),
		output("Tech stack: " + strings.Join(p.TechStack, ", ")),
		output(fmt.Sprintf("⭐ %d stars   🍴 %d forks   📝 %d commits", p.Stats.Stars, p.Stats.Forks, p.Stats.Commits)),
		output("GitHub:     " + p.GitHubURL),
	}
	if p.LiveURL != "" {
		steps = append(steps, output("Live:       "+p.LiveURL))
	}
	return steps
}

// findProject returns the first catalog entry whose GitHub URL mentions repo
func (t *Terminal) findProject(repo string) (models.Project, bool) {
	if repo == "" {
		return models.Project{}, false
	}
	for _, p := range t.catalog {
		if strings.Contains(p.GitHubURL, repo) {
			return p, true
		}
	}
	return models.Project{}, false
}
