package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"stepcount/internal/bootstrap"
	sessiondomain "stepcount/internal/modules/session/domain"
	"stepcount/internal/platform/config"
	"stepcount/internal/platform/logging"
)

type globalFlags struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "stepcount",
		Short:         "Track daily step counts against a goal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd.Context(), flags, stdin, stdout, stderr)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")

	root.AddCommand(newRunCmd(flags, stdin, stdout, stderr))
	root.AddCommand(newTUICmd(flags, stdout, stderr))
	root.AddCommand(newReportCmd(flags, stdout, stderr))
	return root
}

func loadApp(flags *globalFlags, stdout, stderr io.Writer) (*bootstrap.App, error) {
	cfg, err := config.New(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(cfg.LogLevel, stderr), stdout, bootstrap.Options{})
}

func runConsole(ctx context.Context, flags *globalFlags, stdin io.Reader, stdout, stderr io.Writer) error {
	app, err := loadApp(flags, stdout, stderr)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	_, err = bootstrap.RunConsole(ctx, app, stdin, stdout)
	return err
}

func newRunCmd(flags *globalFlags, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Enter a goal, a day count and each day's steps, then print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd.Context(), flags, stdin, stdout, stderr)
		},
	}
}

func newTUICmd(flags *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the step counter terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(flags, stdout, stderr)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newReportCmd(flags *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	var goal float64

	cmd := &cobra.Command{
		Use:   "report <steps>...",
		Short: "Print the weekly report for steps given as arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(flags, stdout, stderr)
			if err != nil {
				return err
			}
			samples := make([]float64, 0, len(args))
			for i, arg := range args {
				v, err := sessiondomain.ValidateSample(arg)
				if err != nil {
					return fmt.Errorf("day %d (%q): %w", i+1, arg, err)
				}
				samples = append(samples, v)
			}
			if !cmd.Flags().Changed("goal") {
				goal = app.Config.Goal
			}
			if goal <= 0 {
				return fmt.Errorf("goal must be positive, got %v", goal)
			}
			summary, err := app.WeekCLI.Analyze(cmd.Context(), samples, goal)
			if err != nil {
				return err
			}
			_, err = io.WriteString(stdout, app.SessionCLI.ReportSummary(summary))
			return err
		},
	}
	cmd.Flags().Float64Var(&goal, "goal", config.DefaultGoal, "daily step goal")
	return cmd
}
