package terminal

import "time"

// Kind selects how a transcript line is presented
type Kind int

const (
	KindCommand Kind = iota
	KindOutput
	KindError
	KindSuccess
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindError:
		return "error"
	case KindSuccess:
		return "success"
	default:
		return "output"
	}
}

// Entry is a line that has not been stamped yet
type Entry struct {
	Kind     Kind
	Content  string
	Markdown bool // content is a markdown document the UI may render
}

// Line is an entry of the transcript. IDs increase monotonically and are
// never reused, not even after a clear.
type Line struct {
	ID        int64
	Kind      Kind
	Content   string
	Markdown  bool
	Timestamp time.Time
}

// Output is the append-only transcript log.
type Output struct {
	lines  []Line
	nextID int64
	now    func() time.Time
}

func newOutput(now func() time.Time) *Output {
	return &Output{now: now}
}

// Append stamps e and adds it to the end of the log
func (o *Output) Append(e Entry) Line {
	o.nextID++
	line := Line{
		ID:        o.nextID,
		Kind:      e.Kind,
		Content:   e.Content,
		Markdown:  e.Markdown,
		Timestamp: o.now(),
	}
	o.lines = append(o.lines, line)
	return line
}

// Clear empties the log. IDs keep counting from where they were.
func (o *Output) Clear() {
	o.lines = nil
}

// Lines returns a copy of the transcript
func (o *Output) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}
