package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/marcus/boxrow/internal/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Edit the row in a desktop window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		w, err := window.New(cfg, slog.Default())
		if err != nil {
			return err
		}
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		w.SetInitialSize(width, height)
		return w.Run()
	},
}

func init() {
	windowCmd.Flags().Int("width", 0, "initial window width in pixels (default: fit the row)")
	windowCmd.Flags().Int("height", 0, "initial window height in pixels (default: fit the row)")
	rootCmd.AddCommand(windowCmd)
}
