package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/boxrow/internal/boxes"
	"github.com/marcus/boxrow/internal/config"
	"github.com/marcus/boxrow/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(cfg)
		}
		values, err := configValues(cfg)
		if err != nil {
			return err
		}
		output.KeyValues(config.Keys(), values)
		output.Muted("from %s", config.Path(getBaseDir()))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		err := config.Update(getBaseDir(), func(c *config.Config) error {
			return c.Set(key, value)
		})
		if err != nil {
			return err
		}
		output.Success("%s = %s", key, value)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Choose settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errNoTerminal
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		fields, err := newConfigFields(cfg)
		if err != nil {
			return err
		}
		if err := configForm(fields).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				output.Warning("config unchanged")
				return nil
			}
			return err
		}
		if err := applyConfigFields(cfg, fields); err != nil {
			return err
		}
		if err := config.Save(getBaseDir(), cfg); err != nil {
			return err
		}
		output.Success("saved %s", config.Path(getBaseDir()))
		return nil
	},
}

func configValues(cfg *config.Config) (map[string]string, error) {
	values := make(map[string]string)
	for _, k := range config.Keys() {
		v, err := cfg.Get(k)
		if err != nil {
			return nil, err
		}
		values[k] = v
	}
	return values, nil
}

// configField is one editable setting in the init form.
type configField struct {
	key   string
	title string
	value string
}

func newConfigFields(cfg *config.Config) ([]*configField, error) {
	fields := []*configField{
		{key: "initial_count", title: "Boxes in a new row"},
		{key: "label_format", title: "Label format"},
		{key: "placeholder", title: "Label for inserted boxes"},
		{key: "gap", title: "Terminal gap (cells)"},
		{key: "pixel_gap", title: "Window gap (pixels)"},
		{key: "font_size", title: "Window font size"},
	}
	for _, f := range fields {
		v, err := cfg.Get(f.key)
		if err != nil {
			return nil, err
		}
		f.value = v
	}
	return fields, nil
}

// validator checks one value in isolation against a copy of cfg.
func validator(cfg *config.Config, key string) func(string) error {
	return func(s string) error {
		next := *cfg
		return next.Set(key, s)
	}
}

func configForm(fields []*configField) *huh.Form {
	base := config.Default()
	var items []huh.Field
	for _, f := range fields {
		if f.key == "label_format" {
			items = append(items, labelFormatSelect(f))
			continue
		}
		items = append(items, huh.NewInput().
			Title(f.title).
			Value(&f.value).
			Validate(validator(base, f.key)))
	}
	return huh.NewForm(huh.NewGroup(items...))
}

// labelFormatSelect offers the built-in formats plus the current one when it is
// a custom format set with "config set".
func labelFormatSelect(f *configField) *huh.Select[string] {
	opts := []huh.Option[string]{
		huh.NewOption("Box 00, Box 01, ...", boxes.FormatPlain),
		huh.NewOption("Box #00, Box #01, ...", boxes.FormatHash),
	}
	if f.value != boxes.FormatPlain && f.value != boxes.FormatHash {
		opts = append(opts, huh.NewOption(f.value+" (current)", f.value))
	}
	return huh.NewSelect[string]().
		Title(f.title).
		Options(opts...).
		Value(&f.value)
}

func applyConfigFields(cfg *config.Config, fields []*configField) error {
	next := *cfg
	for _, f := range fields {
		if err := next.Set(f.key, f.value); err != nil {
			return fmt.Errorf("%s: %w", f.title, err)
		}
	}
	*cfg = next
	return nil
}

func init() {
	configShowCmd.Flags().Bool("json", false, "print as JSON")
	configCmd.AddCommand(configShowCmd, configSetCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
