package commands

import (
	"time"

	"github.com/spf13/cobra"
)

var realtime bool

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <command>...",
		Short: "Run terminal commands and print the transcript",
		Long: `Run each argument as one terminal command, in order, and print what the terminal shows.
Quote commands that contain spaces:

  portfolio-terminal run "git clone https://github.com/nassimmaaoui/cession-app.git" "cd cession-app" ls`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCommands,
	}

	runCmd.Flags().BoolVar(&realtime, "realtime", false, "Wait out step delays like the interactive terminal")
	return runCmd
}

func runCommands(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	term := a.newTerminal()
	out := cmd.OutOrStdout()

	// Skip the welcome banner
	lines := term.Lines()
	last := lines[len(lines)-1].ID

	for _, input := range args {
		term.Submit(input)
		last = writeLines(out, term.Lines(), last)

		// Print each timed step as it lands
		for {
			p, ok := term.Pending()
			if !ok {
				break
			}
			if realtime {
				time.Sleep(p.Delay)
			}
			term.Step(p)
			last = writeLines(out, term.Lines(), last)
		}
	}
	return nil
}
