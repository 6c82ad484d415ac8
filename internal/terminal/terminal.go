// Package terminal implements the simulated shell session: the context
// sensitive grammar, the command dispatcher, history, completion and the
// transcript log.
//
// A Terminal is not safe for concurrent use. It is owned by a single event
// loop; timed steps are driven from outside through Pending and Step.
package terminal

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/nassimmaaoui/portfolio-terminal/internal/config"
	"github.com/nassimmaaoui/portfolio-terminal/internal/vfs"
	"github.com/nassimmaaoui/portfolio-terminal/pkg/models"
	"go.uber.org/zap"
)

// Terminal owns the session, history and transcript of one terminal
// instance. Commands submitted while a timed sequence runs are queued and
// dispatched in order once it finishes, so output never interleaves.
type Terminal struct {
	cfg     *config.Config
	logger  *zap.Logger
	catalog []models.Project
	now     func() time.Time
	rng     *rand.Rand

	session Session
	tree    []vfs.Node
	history *History
	output  *Output

	banner  *Sequence
	running *Sequence
	queue   []string
}

// Option configures a Terminal
type Option func(*Terminal)

// WithLogger sets the logger used for dispatch diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(t *Terminal) {
		t.logger = logger
	}
}

// WithClock replaces time.Now for timestamps and the date command
func WithClock(now func() time.Time) Option {
	return func(t *Terminal) {
		t.now = now
	}
}

// WithCatalog sets the project catalog consulted by details
func WithCatalog(projects []models.Project) Option {
	return func(t *Terminal) {
		t.catalog = projects
	}
}

// New creates a terminal with a fresh session and the welcome banner.
func New(cfg *config.Config, opts ...Option) *Terminal {
	t := &Terminal{
		cfg:     cfg,
		logger:  zap.NewNop(),
		now:     time.Now,
		history: NewHistory(),
		session: NewSession(cfg.BaseDirectory),
	}
	for _, opt := range opts {
		opt(t)
	}

	seed := uint64(cfg.Timing.Seed)
	if seed == 0 {
		seed = uint64(t.now().UnixNano())
	}
	t.rng = rand.New(rand.NewPCG(seed, seed>>1))
	t.output = newOutput(t.now)
	t.banner = NewSequence(welcomeBanner(cfg)...)
	t.replay(t.banner)
	return t
}

// Submit handles one line of input. Blank input is ignored. History records
// the input right away, even when it has to wait behind a running sequence.
func (t *Terminal) Submit(raw string) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return
	}
	t.history.Submit(input)
	if t.running != nil {
		t.queue = append(t.queue, input)
		t.logger.Debug("queued command behind running sequence",
			zap.String("input", input),
			zap.String("run_id", t.running.ID),
			zap.Int("queued", len(t.queue)))
		return
	}
	t.begin(input)
	t.advance()
}

// begin echoes and parses input, then makes its sequence the running one.
func (t *Terminal) begin(input string) {
	t.output.Append(Entry{Kind: KindCommand, Content: input})

	cmd := Parse(input, t.session)
	t.logger.Debug("dispatching command",
		zap.String("input", input),
		zap.String("command", cmd.Name()),
		zap.String("directory", t.session.CurrentDirectory))

	t.running = t.dispatch(cmd)
}

// advance runs every step that is due without waiting, then dispatches
// queued input once nothing is running.
func (t *Terminal) advance() {
	for {
		if t.running != nil {
			if t.running.Done() {
				t.running = nil
				continue
			}
			step, _ := t.running.Peek()
			if step.Delay > 0 {
				return
			}
			t.running.Next()
			t.apply(step)
			continue
		}

		if len(t.queue) == 0 {
			return
		}
		input := t.queue[0]
		t.queue = t.queue[1:]
		t.begin(input)
	}
}

// replay rewinds seq and runs all of it at once, ignoring delays
func (t *Terminal) replay(seq *Sequence) {
	seq.Reset()
	for !seq.Done() {
		step, _ := seq.Next()
		t.apply(step)
	}
}

// clearScreen empties the transcript and shows the welcome banner again, so
// the transcript is never blank.
func (t *Terminal) clearScreen() {
	t.output.Clear()
	t.replay(t.banner)
}

func (t *Terminal) apply(step Step) {
	if step.Apply != nil {
		step.Apply()
	}
	if step.Line != nil {
		t.output.Append(*step.Line)
	}
}

// Pending describes the next timed step of the running sequence
type Pending struct {
	RunID string
	Pos   int
	Delay time.Duration
}

// Pending reports the step the caller should wait for, if any
func (t *Terminal) Pending() (Pending, bool) {
	if t.running == nil {
		return Pending{}, false
	}
	step, ok := t.running.Peek()
	if !ok {
		return Pending{}, false
	}
	return Pending{RunID: t.running.ID, Pos: t.running.Pos(), Delay: step.Delay}, true
}

// Step runs the pending step once its delay has elapsed. A stale p, one
// that no longer names the next step, is ignored and Step returns false.
func (t *Terminal) Step(p Pending) bool {
	if t.running == nil || t.running.ID != p.RunID || t.running.Pos() != p.Pos {
		return false
	}
	step, _ := t.running.Next()
	t.apply(step)
	t.advance()
	return true
}

// Drain runs everything that is running or queued, calling sleep with each
// step's delay first. A nil sleep does not wait.
func (t *Terminal) Drain(sleep func(time.Duration)) {
	for {
		p, ok := t.Pending()
		if !ok {
			return
		}
		if sleep != nil {
			sleep(p.Delay)
		}
		t.Step(p)
	}
}

// Busy reports whether a timed sequence is still running
func (t *Terminal) Busy() bool {
	return t.running != nil
}

// Progress returns how far the running sequence is, as done and total steps
func (t *Terminal) Progress() (done, total int) {
	if t.running == nil {
		return 0, 0
	}
	return t.running.Pos(), t.running.Len()
}

// Session returns a snapshot of the session state
func (t *Terminal) Session() Session {
	return t.session
}

// Lines returns a snapshot of the transcript
func (t *Terminal) Lines() []Line {
	return t.output.Lines()
}

// History returns the command history. Navigation mutates its cursor.
func (t *Terminal) History() *History {
	return t.history
}

// SetCatalog replaces the project catalog, for example after a reload
func (t *Terminal) SetCatalog(projects []models.Project) {
	t.catalog = projects
}

// Prompt returns the shell prompt for the current directory
func (t *Terminal) Prompt() string {
	return t.cfg.User + "@" + t.cfg.Host + ":" + t.session.CurrentDirectory + "$"
}

// Complete runs autocompletion for partial against the commands that are
// valid right now.
func (t *Terminal) Complete(partial string) Completion {
	return Complete(partial, t.AvailableCommands(), t.cfg.MaxSuggestions)
}

// AvailableCommands lists completion candidates for the current session.
func (t *Terminal) AvailableCommands() []string {
	cmds := []string{"help", "clear", "pwd", "whoami", "date", "echo", "history", "tutorial"}

	switch {
	case !t.session.HasClone():
		for _, repo := range vfs.Repos() {
			cmds = append(cmds, "git clone "+t.cloneURL(repo))
		}
	case !t.session.IsInRepo:
		cmds = append(cmds, "cd "+t.session.ClonedRepo)
	default:
		cmds = append(cmds, "ls", "ls -la", "npm start", "docker-compose up -d", "details", "cd ..")
		for _, f := range vfs.Files(t.tree) {
			cmds = append(cmds, "cat "+f)
		}
	}
	return cmds
}

func (t *Terminal) cloneURL(repo string) string {
	return "https://github.com/" + t.cfg.GitHubOrg + "/" + repo + ".git"
}

// stepDelay returns the base delay plus a random share of the jitter.
func (t *Terminal) stepDelay() time.Duration {
	d := t.cfg.StepDelay()
	if j := t.cfg.Jitter(); j > 0 {
		d += time.Duration(t.rng.Int64N(int64(j)))
	}
	return d
}
