// Package catalog provides the read-only project catalog the terminal's
// details command consults.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/nassimmaaoui/portfolio-terminal/internal/db"
	"github.com/nassimmaaoui/portfolio-terminal/pkg/models"
)

// Default returns the built-in catalog
func Default() []models.Project {
	return []models.Project{
		{
			ID:          "cession-app",
			Name:        "Cession App",
			Description: "Digital workflow for salary assignment requests, from submission to repayment schedule.",
			Category:    "Full-stack web",
			TechStack:   []string{"React", "Spring Boot", "PostgreSQL", "Docker"},
			Stats:       models.ProjectStats{Stars: 24, Forks: 6, Commits: 312},
			GitHubURL:   "https://github.com/nassimmaaoui/cession-app",
			LiveURL:     "https://cession-app.vercel.app",
		},
		{
			ID:          "smart-parking",
			Name:        "Smart Parking",
			Description: "IoT sensors and a live dashboard showing parking availability in real time.",
			Category:    "IoT",
			TechStack:   []string{"ESP32", "MQTT", "Node.js", "Socket.IO", "React"},
			Stats:       models.ProjectStats{Stars: 41, Forks: 11, Commits: 198},
			GitHubURL:   "https://github.com/nassimmaaoui/smart-parking",
		},
		{
			ID:          "e-learning-platform",
			Name:        "E-Learning Platform",
			Description: "Course authoring, quizzes with automatic grading and certificates.",
			Category:    "Web",
			TechStack:   []string{"Angular", "NestJS", "MongoDB"},
			Stats:       models.ProjectStats{Stars: 17, Forks: 4, Commits: 256},
			GitHubURL:   "https://github.com/nassimmaaoui/e-learning-platform",
			LiveURL:     "https://e-learning-platform.netlify.app",
		},
		{
			ID:          "devops-dashboard",
			Name:        "DevOps Dashboard",
			Description: "CI pipelines, container health and deployment history in one place.",
			Category:    "DevOps",
			TechStack:   []string{"Vue", "Prometheus", "Grafana", "GitHub Actions"},
			Stats:       models.ProjectStats{Stars: 33, Forks: 9, Commits: 174},
			GitHubURL:   "https://github.com/nassimmaaoui/devops-dashboard",
		},
	}
}

// Find returns the project with the given id
func Find(projects []models.Project, id string) (models.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// projectColumns is the schema of a catalog file, keyed like the website's JSON
var projectColumns = map[string]string{
	"id":          "VARCHAR",
	"name":        "VARCHAR",
	"description": "VARCHAR",
	"category":    "VARCHAR",
	"techStack":   "VARCHAR[]",
	"stats":       "STRUCT(stars INTEGER, forks INTEGER, commits INTEGER)",
	"githubUrl":   "VARCHAR",
	"liveUrl":     "VARCHAR",
}

// Load reads a JSON array of projects from path through DuckDB's read_json.
// The file uses the same camelCase keys as the website's catalog.
func Load(ctx context.Context, path string) ([]models.Project, error) {
	database, err := db.GetDB()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT
			id,
			name,
			description,
			category,
			array_to_string(techStack, '|') as tech_stack,
			stats.stars,
			stats.forks,
			stats.commits,
			githubUrl,
			liveUrl
		FROM %s
	`, db.ReadJSONArray(path, projectColumns))

	rows, err := database.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var (
			id, name, description, category sql.NullString
			techStack, githubURL, liveURL   sql.NullString
			stars, forks, commits           sql.NullInt64
		)
		if err := rows.Scan(&id, &name, &description, &category, &techStack,
			&stars, &forks, &commits, &githubURL, &liveURL); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		if !id.Valid || id.String == "" {
			continue
		}

		project := models.Project{
			ID:          id.String,
			Name:        name.String,
			Description: description.String,
			Category:    category.String,
			Stats: models.ProjectStats{
				Stars:   int(stars.Int64),
				Forks:   int(forks.Int64),
				Commits: int(commits.Int64),
			},
			GitHubURL: githubURL.String,
			LiveURL:   liveURL.String,
		}
		if techStack.String != "" {
			project.TechStack = strings.Split(techStack.String, "|")
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	return projects, nil
}
