package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/boxrow/internal/output"
	"github.com/marcus/boxrow/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the row to a PNG file",
	Example: `  boxrow snapshot -o row.png
  boxrow snapshot -o row.png --label A --label B --label C --active 1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		labels, err := labelsFromFlags(cmd.Flags(), cfg)
		if err != nil {
			return err
		}

		opts := snapshot.DefaultOptions()
		opts.FontSize = cfg.FontSize
		opts.Gap = cfg.PixelGap
		opts.Active, _ = cmd.Flags().GetInt("active")
		if opts.Active >= len(labels) {
			return fmt.Errorf("--active %d out of range for %d boxes", opts.Active, len(labels))
		}

		path, _ := cmd.Flags().GetString("output")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := snapshot.WritePNG(f, labels, opts); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		output.Success("wrote %s (%d boxes)", path, len(labels))
		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringP("output", "o", "", "PNG file to write")
	addLabelFlag(snapshotCmd.Flags())
	snapshotCmd.Flags().Int("active", -1, "index drawn as being edited")
	snapshotCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(snapshotCmd)
}
