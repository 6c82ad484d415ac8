package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nassimmaaoui/portfolio-terminal/internal/catalog"
	"github.com/nassimmaaoui/portfolio-terminal/internal/terminal"
	"github.com/nassimmaaoui/portfolio-terminal/internal/tui"
	"github.com/nassimmaaoui/portfolio-terminal/pkg/models"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	catalogPath  string
	watchCatalog bool
	debugMode    bool
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolio-terminal",
		Short: "Explore a technical portfolio from a simulated shell",
		Long: `portfolio-terminal is a TUI that simulates a shell session over a portfolio of projects.
Clone a repository, cd into it, read its files and start its services.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file (default ~/.config/portfolio-terminal/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a JSON project catalog")
	rootCmd.Flags().BoolVar(&watchCatalog, "watch", false, "Reload the catalog file when it changes")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Run in line mode (read commands from stdin without TUI)")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewProjectsCommand())
	rootCmd.AddCommand(NewTreeCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	term := a.newTerminal()

	// Debug mode: read commands line by line without TUI
	if debugMode {
		return runLineMode(term, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	var updates <-chan []models.Project
	if watchCatalog {
		if a.cfg.CatalogPath == "" {
			return fmt.Errorf("--watch needs a catalog file, set --catalog or catalog_path")
		}
		w, err := catalog.Watch(cmd.Context(), a.cfg.CatalogPath, a.logger)
		if err != nil {
			return fmt.Errorf("failed to watch catalog: %w", err)
		}
		defer w.Close()
		updates = w.Updates()
	}

	if err := tui.ShowTUI(term, updates); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func runLineMode(term *terminal.Terminal, in io.Reader, out io.Writer) error {
	last := writeLines(out, term.Lines(), 0)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		term.Submit(scanner.Text())
		term.Drain(nil)
		last = writeLines(out, term.Lines(), last)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
