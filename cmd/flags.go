package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/marcus/boxrow/internal/boxes"
	"github.com/marcus/boxrow/internal/config"
)

const labelFlag = "label"

// addLabelFlag registers the repeatable --label flag.
func addLabelFlag(fs *pflag.FlagSet) {
	fs.StringArray(labelFlag, nil, "box label (repeatable; default: a fresh row)")
}

// labelsFromFlags returns the --label values, or a fresh row's labels when
// none were given.
func labelsFromFlags(fs *pflag.FlagSet, cfg *config.Config) ([]string, error) {
	labels, err := fs.GetStringArray(labelFlag)
	if err != nil {
		return nil, err
	}
	return rowLabels(cfg, labels)
}

// rowLabels returns explicit labels, or the labels a fresh row starts with.
func rowLabels(cfg *config.Config, labels []string) ([]string, error) {
	if len(labels) > 0 {
		for _, l := range labels {
			if err := boxes.ValidateLabel(l); err != nil {
				return nil, fmt.Errorf("--%s: %w", labelFlag, err)
			}
		}
		return labels, nil
	}
	return boxes.Generate(cfg.InitialCount, cfg.LabelFormat)
}
