package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nassimmaaoui/portfolio-terminal/internal/db"
	"github.com/nassimmaaoui/portfolio-terminal/internal/vfs"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleCatalog = `[
  {
    "id": "cession-app",
    "name": "Cession App",
    "description": "Salary assignment workflow",
    "category": "Web",
    "techStack": ["React", "Spring Boot"],
    "stats": {"stars": 3, "forks": 1, "commits": 42},
    "githubUrl": "https://github.com/nassimmaaoui/cession-app",
    "liveUrl": "https://cession.example.com"
  },
  {
    "id": "smart-parking",
    "name": "Smart Parking",
    "description": "Sensors and a dashboard",
    "category": "IoT",
    "techStack": [],
    "stats": {"stars": 0, "forks": 0, "commits": 7},
    "githubUrl": "https://github.com/nassimmaaoui/smart-parking"
  }
]`

func requireDuckDB(t *testing.T) {
	t.Helper()
	if _, err := db.GetDB(); err != nil {
		t.Skipf("DuckDB not available: %v", err)
	}
}

func writeCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultCoversEveryRepo(t *testing.T) {
	projects := Default()
	for _, repo := range vfs.Repos() {
		p, ok := Find(projects, repo)
		require.True(t, ok, "missing catalog entry for %s", repo)
		require.Contains(t, p.GitHubURL, repo)
		require.NotEmpty(t, p.TechStack)
	}
}

func TestFind(t *testing.T) {
	_, ok := Find(Default(), "does-not-exist")
	require.False(t, ok)

	p, ok := Find(Default(), "smart-parking")
	require.True(t, ok)
	require.Equal(t, "Smart Parking", p.Name)
}

func TestLoad(t *testing.T) {
	requireDuckDB(t)
	path := writeCatalog(t, t.TempDir(), sampleCatalog)

	projects, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	cession, ok := Find(projects, "cession-app")
	require.True(t, ok)
	require.Equal(t, []string{"React", "Spring Boot"}, cession.TechStack)
	require.Equal(t, 42, cession.Stats.Commits)
	require.Equal(t, "https://cession.example.com", cession.LiveURL)

	parking, ok := Find(projects, "smart-parking")
	require.True(t, ok)
	require.Empty(t, parking.TechStack)
	require.Empty(t, parking.LiveURL)
}

func TestLoadMissingFile(t *testing.T) {
	requireDuckDB(t)
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	requireDuckDB(t)
	dir := t.TempDir()
	path := writeCatalog(t, dir, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, zap.NewNop())
	require.NoError(t, err)
	defer w.Close()

	writeCatalog(t, dir, sampleCatalog)

	select {
	case projects := <-w.Updates():
		require.Len(t, projects, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for catalog reload")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`[]`), 0o644))

	select {
	case <-w.Updates():
		t.Fatal("unrelated file should not trigger a reload")
	case <-time.After(2 * debounceInterval):
	}
	require.NoError(t, w.Close())
}
