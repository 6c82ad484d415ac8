package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/nassimmaaoui/portfolio-terminal/internal/catalog"
	"github.com/nassimmaaoui/portfolio-terminal/internal/config"
	"github.com/nassimmaaoui/portfolio-terminal/internal/logging"
	"github.com/nassimmaaoui/portfolio-terminal/internal/terminal"
	"github.com/nassimmaaoui/portfolio-terminal/pkg/models"
	"go.uber.org/zap"
)

// app bundles what every subcommand needs
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	projects []models.Project
}

func newApp(ctx context.Context) (*app, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		projects: loadCatalog(ctx, cfg.CatalogPath, logger),
	}, nil
}

// loadCatalog reads the catalog at path, falling back to the built-in one
func loadCatalog(ctx context.Context, path string, logger *zap.Logger) []models.Project {
	if path == "" {
		return catalog.Default()
	}
	projects, err := catalog.Load(ctx, path)
	if err != nil {
		logger.Warn("failed to load catalog, using built-in projects",
			zap.String("path", path), zap.Error(err))
		return catalog.Default()
	}
	logger.Info("catalog loaded", zap.String("path", path), zap.Int("projects", len(projects)))
	return projects
}

func (a *app) newTerminal() *terminal.Terminal {
	return terminal.New(a.cfg,
		terminal.WithLogger(a.logger),
		terminal.WithCatalog(a.projects))
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// writeLines prints every line newer than after and returns the newest ID.
// Command lines get a "$ " prefix, everything else is printed as is.
func writeLines(w io.Writer, lines []terminal.Line, after int64) int64 {
	last := after
	for _, line := range lines {
		if line.ID <= after {
			continue
		}
		if line.Kind == terminal.KindCommand {
			fmt.Fprintf(w, "$ %s\n", line.Content)
		} else {
			fmt.Fprintln(w, line.Content)
		}
		last = line.ID
	}
	return last
}
