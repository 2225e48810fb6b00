package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/romshark/coop"
	"github.com/romshark/coop/internal/config"
	"github.com/romshark/coop/internal/logx"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		backend    string
		unit       string
	)

	cmd := &cobra.Command{
		Use:          "coopdemo",
		Short:        "Run two chained delays joined with a third on a cooperative scheduler",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("timers") {
				cfg.Timers.Backend = backend
			}
			if flags.Changed("unit") {
				cfg.Demo.Unit = unit
			}
			if err := cfg.Normalize(); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	f.StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error, off)")
	f.StringVar(&backend, "timers", config.BackendRuntime, "timer backend (runtime, loop)")
	f.StringVar(&unit, "unit", config.DefaultUnit.String(), "length of one scenario step")
	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	log := logx.NewConsole(cmd.ErrOrStderr(), cfg.Log.Level)

	var provider coop.TimeProvider
	if cfg.Timers.Backend == config.BackendLoop {
		loop := coop.NewTimerLoop()
		defer loop.Close()
		provider = loop
	}

	s := coop.NewWith(provider, nil, &log)
	log.Info().
		Str("scheduler", s.ID().String()).
		Str("timers", cfg.Timers.Backend).
		Dur("unit", cfg.Demo.UnitDur).
		Msg("starting scenario")

	out := cmd.OutOrStdout()
	label := color.New(color.FgCyan).SprintFunc()
	elapsed := color.New(color.Bold).SprintFunc()

	err := s.Run(cmd.Context(), scenario(s, cfg.Demo.UnitDur,
		func(l string, d time.Duration) {
			fmt.Fprintf(out, "%s: %s\n", label(l), elapsed(fmt.Sprintf("%dms", d.Milliseconds())))
		},
	))
	if err != nil {
		log.Error().Err(err).Msg("scenario failed")
		return errors.Join(err, s.Close())
	}
	return nil
}
