package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/boxrow/internal/geometry"
	"github.com/marcus/boxrow/internal/layout"
	"github.com/marcus/boxrow/internal/output"
	"github.com/marcus/boxrow/pkg/rowview"
)

// resolveResult is what a click at one point would do to the row.
type resolveResult struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Action string `json:"action"`
	Index  *int   `json:"index,omitempty"`
	Label  string `json:"label,omitempty"`
}

func (r resolveResult) String() string {
	switch r.Action {
	case "edit":
		return fmt.Sprintf("edit box %d (%q)", *r.Index, r.Label)
	case "insert":
		return fmt.Sprintf("insert at %d", *r.Index)
	default:
		return "no match"
	}
}

// resolveClick classifies a click against labels laid out with m.
func resolveClick(labels []string, m layout.Metrics, p geometry.Point) resolveResult {
	rects := layout.Compute(labels, -1, m)
	res := resolveResult{X: p.X, Y: p.Y, Action: "none"}
	if i, ok := geometry.HitBox(p, rects); ok {
		res.Action = "edit"
		res.Index = &i
		res.Label = labels[i]
		return res
	}
	if gap, ok := geometry.Resolve(p, rects); ok {
		res.Action = "insert"
		res.Index = &gap
	}
	return res
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show what a click at a terminal cell would do",
	Long: `Resolve a click position against the row as the terminal view draws it.

The first box starts at column 2 on line 2. A click strictly between two boxes
inserts a placeholder before the right-hand box; a click on a box edits it.`,
	Example: `  boxrow resolve --x 13 --y 3
  boxrow resolve --x 13 --y 3 --label A --label B --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		labels, err := labelsFromFlags(cmd.Flags(), cfg)
		if err != nil {
			return err
		}
		x, _ := cmd.Flags().GetInt("x")
		y, _ := cmd.Flags().GetInt("y")

		res := resolveClick(labels, rowview.Metrics(cfg.Gap), geometry.Point{X: x, Y: y})

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(res)
		}
		fmt.Fprintln(output.Stdout, res.String())
		return nil
	},
}

func init() {
	resolveCmd.Flags().Int("x", 0, "click column")
	resolveCmd.Flags().Int("y", 0, "click line")
	addLabelFlag(resolveCmd.Flags())
	resolveCmd.Flags().Bool("json", false, "print the result as JSON")
	resolveCmd.MarkFlagRequired("x")
	resolveCmd.MarkFlagRequired("y")
	rootCmd.AddCommand(resolveCmd)
}
