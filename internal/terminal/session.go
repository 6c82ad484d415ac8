package terminal

import "path"

// Session is the state the grammar depends on. ClonedRepo is empty until a
// clone completes, and IsInRepo implies ClonedRepo is set.
type Session struct {
	CurrentDirectory string
	ClonedRepo       string
	IsInRepo         bool
}

// NewSession returns the session a freshly mounted terminal starts with
func NewSession(baseDir string) Session {
	return Session{CurrentDirectory: baseDir}
}

// Reset drops the cloned repository and returns to baseDir
func (s *Session) Reset(baseDir string) {
	*s = NewSession(baseDir)
}

// HasClone reports whether a repository has been cloned
func (s Session) HasClone() bool {
	return s.ClonedRepo != ""
}

func (s *Session) enterRepo(baseDir string) {
	s.IsInRepo = true
	s.CurrentDirectory = path.Join(baseDir, s.ClonedRepo)
}

func (s *Session) leaveRepo(baseDir string) {
	s.IsInRepo = false
	s.CurrentDirectory = baseDir
}
