package terminal

import (
	"time"

	"github.com/google/uuid"
)

// Step is one unit of a command's execution: wait Delay, run Apply, then
// append Line. Either Apply or Line may be absent.
type Step struct {
	Delay time.Duration
	Apply func()
	Line  *Entry
}

// Sequence is the finite, ordered list of steps a command produces. It is
// consumed one step at a time and can be restarted from the beginning.
type Sequence struct {
	ID    string
	steps []Step
	pos   int
}

// NewSequence wraps steps in a sequence with a fresh run ID
func NewSequence(steps ...Step) *Sequence {
	return &Sequence{ID: uuid.NewString(), steps: steps}
}

// Peek returns the next step without consuming it
func (s *Sequence) Peek() (Step, bool) {
	if s.pos >= len(s.steps) {
		return Step{}, false
	}
	return s.steps[s.pos], true
}

// Next consumes and returns the next step
func (s *Sequence) Next() (Step, bool) {
	step, ok := s.Peek()
	if ok {
		s.pos++
	}
	return step, ok
}

// Done reports whether every step has been consumed
func (s *Sequence) Done() bool {
	return s.pos >= len(s.steps)
}

// Pos returns the index of the next step
func (s *Sequence) Pos() int {
	return s.pos
}

// Len returns the total number of steps
func (s *Sequence) Len() int {
	return len(s.steps)
}

// Reset rewinds the sequence to its first step
func (s *Sequence) Reset() {
	s.pos = 0
}

func emit(kind Kind, content string) Step {
	return Step{Line: &Entry{Kind: kind, Content: content}}
}

func output(content string) Step  { return emit(KindOutput, content) }
func failure(content string) Step { return emit(KindError, content) }
func success(content string) Step { return emit(KindSuccess, content) }

func effect(fn func()) Step {
	return Step{Apply: fn}
}

func after(d time.Duration, step Step) Step {
	step.Delay = d
	return step
}
