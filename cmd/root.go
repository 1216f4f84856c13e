package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/marcus/boxrow/internal/config"
	"github.com/marcus/boxrow/internal/output"
)

var (
	version string
	baseDir string

	logFile string
	debug   bool

	logCloser io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "boxrow",
	Short: "A row of editable boxes",
	Long: `boxrow - a row of labelled boxes you edit with the mouse.

Click between two boxes to insert a placeholder there. Click a box to edit its
label. Runs in the terminal by default; use "boxrow window" for a desktop window.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if name := firstNonFlagArg(os.Args[1:]); name != "" && isUnknownCommand(err) {
			output.Error("unknown command %q", name)
			if s := suggestCommand(name); s != "" {
				output.Muted("did you mean %q?", s)
			}
		} else {
			output.Error("%v", err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory holding .boxrow/config.json
func getBaseDir() string {
	return baseDir
}

// setupLogging installs the default slog logger. Without --log-file logs are
// dropped so they never corrupt the terminal UI.
func setupLogging() error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = f
		logCloser = f
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// loadConfig reads the config for the working directory.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// firstNonFlagArg returns the first argument that does not start with "-".
func firstNonFlagArg(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}

func isUnknownCommand(err error) bool {
	return strings.HasPrefix(err.Error(), "unknown command")
}

// suggestCommand returns the closest command name to name, or "".
func suggestCommand(name string) string {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.Hidden {
			continue
		}
		names = append(names, c.Name())
	}
	if matches := fuzzy.Find(name, names); len(matches) > 0 {
		return matches[0].Str
	}
	return ""
}
