package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studydash/internal/storage"
)

func newSettingsCmd(state *rootState) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect the preferences file",
	}

	settingsCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the preferences file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := state.settingsPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	settingsCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective preferences as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := state.settingsPath()
			if err != nil {
				return err
			}
			settings, err := storage.LoadSettings(path)
			if err != nil {
				return err
			}
			data, err := storage.EncodeSettings(settings)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return settingsCmd
}
