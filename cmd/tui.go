package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"studydash/internal/core/clock"
	"studydash/internal/core/model"
	"studydash/internal/tui"
	"studydash/internal/worldclock"
)

func newTUICmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the dashboard in the terminal",
		Args:  cobra.NoArgs,
		RunE:  state.runTUI,
	}
}

func (state *rootState) runTUI(cmd *cobra.Command, _ []string) error {
	s, err := state.openSession(nil)
	if err != nil {
		return err
	}
	s.run()
	defer s.close()

	dash := tui.New(tui.Deps{
		Cycle:         s.cycle,
		Timer:         s.timer,
		Clock:         worldclock.New(clock.System),
		ClockSettings: func() model.ClockSettings { return s.store.Settings().Clock },
	})
	program := tea.NewProgram(dash,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = program.Run()
	return err
}
