package terminal

import (
	"regexp"
	"strings"
)

// Command is one variant of the closed command set produced by Parse.
type Command interface {
	Name() string
	command()
}

type (
	Help        struct{}
	Clear       struct{}
	Pwd         struct{}
	Whoami      struct{}
	Date        struct{}
	ShowHistory struct{}
	Tutorial    struct{}
	Details     struct{}

	Echo struct {
		Message string
	}

	GitClone struct {
		Org  string
		Repo string
	}

	Cd struct {
		Target string
	}

	Ls struct {
		Long bool
	}

	Cat struct {
		File string
	}

	RunService struct {
		Service Service
	}

	Unknown struct {
		Input string
	}
)

// Service names a scripted long-running process
type Service int

const (
	ServiceNpm Service = iota
	ServiceCompose
)

func (Help) Name() string        { return "help" }
func (Clear) Name() string       { return "clear" }
func (Pwd) Name() string         { return "pwd" }
func (Whoami) Name() string      { return "whoami" }
func (Date) Name() string        { return "date" }
func (ShowHistory) Name() string { return "history" }
func (Tutorial) Name() string    { return "tutorial" }
func (Details) Name() string     { return "details" }
func (Echo) Name() string        { return "echo" }
func (GitClone) Name() string    { return "git-clone" }
func (Cd) Name() string          { return "cd" }
func (Ls) Name() string          { return "ls" }
func (Cat) Name() string         { return "cat" }
func (RunService) Name() string  { return "run-service" }
func (Unknown) Name() string     { return "unknown" }

func (Help) command()        {}
func (Clear) command()       {}
func (Pwd) command()         {}
func (Whoami) command()      {}
func (Date) command()        {}
func (ShowHistory) command() {}
func (Tutorial) command()    {}
func (Details) command()     {}
func (Echo) command()        {}
func (GitClone) command()    {}
func (Cd) command()          {}
func (Ls) command()          {}
func (Cat) command()         {}
func (RunService) command()  {}
func (Unknown) command()     {}

// URL must match exactly; anything else falls through to Unknown.
var cloneURL = regexp.MustCompile(`^git clone https://github\.com/([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+)\.git$`)

// Parse maps raw input to a command. Which commands exist depends on s:
// cd into the clone is only legal outside it, and the repository commands
// only inside it.
func Parse(raw string, s Session) Command {
	input := strings.TrimSpace(raw)
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Unknown{Input: input}
	}

	normalized := strings.Join(fields, " ")
	switch normalized {
	case "help":
		return Help{}
	case "clear":
		return Clear{}
	case "pwd":
		return Pwd{}
	case "whoami":
		return Whoami{}
	case "date":
		return Date{}
	case "history":
		return ShowHistory{}
	case "tutorial":
		return Tutorial{}
	}

	if fields[0] == "echo" {
		return Echo{Message: strings.TrimSpace(strings.TrimPrefix(input, "echo"))}
	}

	if m := cloneURL.FindStringSubmatch(normalized); m != nil {
		return GitClone{Org: m[1], Repo: m[2]}
	}

	if s.IsInRepo {
		if cmd, ok := parseInRepo(normalized, fields); ok {
			return cmd
		}
	} else if s.HasClone() && len(fields) == 2 && fields[0] == "cd" && fields[1] == s.ClonedRepo {
		return Cd{Target: s.ClonedRepo}
	}

	return Unknown{Input: input}
}

func parseInRepo(normalized string, fields []string) (Command, bool) {
	switch normalized {
	case "ls":
		return Ls{}, true
	case "ls -la":
		return Ls{Long: true}, true
	case "npm start":
		return RunService{Service: ServiceNpm}, true
	case "docker-compose up -d":
		return RunService{Service: ServiceCompose}, true
	case "details":
		return Details{}, true
	case "cd ..":
		return Cd{Target: ".."}, true
	case "cat":
		return Cat{}, true
	}

	if fields[0] == "cat" && len(fields) == 2 {
		return Cat{File: fields[1]}, true
	}
	return nil, false
}
