package cmd

import (
	"errors"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/boxrow/pkg/rowview"
)

var errNoTerminal = errors.New("boxrow needs an interactive terminal (try \"boxrow window\" or \"boxrow snapshot\")")

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Edit the row in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func runTUI(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	m, err := rowview.New(cfg, slog.Default())
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(cmd.Context()),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(rowview.Model); ok {
		slog.Info("tui closed", "labels", fm.Row().Labels())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
