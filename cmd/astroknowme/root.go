package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Mfaj-cod/AstroKnowMe/internal/config"
)

// logsToStderr marks commands whose stdout carries data, not logs.
const logsToStderr = "logs-to-stderr"

type app struct {
	v       *viper.Viper
	cfg     *config.Config
	logFile io.Closer
}

func newApp() *app {
	return &app{v: config.NewViper()}
}

// execute runs the command tree and releases the log file however it ends.
func (a *app) execute(ctx context.Context, root *cobra.Command) error {
	defer a.closeLog()
	return root.ExecuteContext(ctx)
}

func (a *app) closeLog() {
	if a.logFile == nil {
		return
	}
	if err := a.logFile.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "close log file:", err)
	}
	a.logFile = nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "astroknowme",
		Short:         "Astronomy dashboard backed by NASA and NOAA public APIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromViper(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg

			var out io.Writer = os.Stdout
			if cmd.Annotations[logsToStderr] != "" {
				out = cmd.ErrOrStderr()
			}
			return a.setupLogging(out)
		},
	}

	flags := root.PersistentFlags()
	flags.String("api-key", "", "NASA API key (env NASA_API_KEY)")
	flags.String("log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
	flags.Duration("fetch-timeout", 0, "per-request upstream timeout (env FETCH_TIMEOUT)")
	bindFlag(a.v, "nasa_api_key", flags.Lookup("api-key"))
	bindFlag(a.v, "log_level", flags.Lookup("log-level"))
	bindFlag(a.v, "fetch_timeout", flags.Lookup("fetch-timeout"))

	root.AddCommand(
		newServeCmd(a),
		newFetchCmd(a),
		newVersionCmd(),
	)
	return root
}

// setupLogging installs the default slog logger. Records go to out and, when
// LOG_FILE is set, are also appended to that file.
func (a *app) setupLogging(out io.Writer) error {
	level, err := config.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}

	if a.cfg.LogFile != "" {
		f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		out = io.MultiWriter(out, f)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if a.cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("failed to bind %s flag: %v", key, err))
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
