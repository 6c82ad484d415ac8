package models

// ProjectStats holds the repository counters shown by `details`
type ProjectStats struct {
	Stars   int `json:"stars" yaml:"stars"`
	Forks   int `json:"forks" yaml:"forks"`
	Commits int `json:"commits" yaml:"commits"`
}

// Project represents one entry of the portfolio's project catalog.
// The terminal only reads projects, it never mutates them.
type Project struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Category    string       `json:"category" yaml:"category"`
	TechStack   []string     `json:"techStack" yaml:"tech_stack"`
	Stats       ProjectStats `json:"stats" yaml:"stats"`
	GitHubURL   string       `json:"githubUrl" yaml:"github_url"`
	LiveURL     string       `json:"liveUrl,omitempty" yaml:"live_url,omitempty"` // Empty when the project has no deployment
}
