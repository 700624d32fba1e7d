// Command ctlmap-sim runs a mapping file against simulated targets.
//
// Control messages are typed at an interactive prompt and routed through the
// mappings. Feedback sent back to the controller is printed.
//
// Usage:
//
//	ctlmap-sim [flags]
//
// Flags:
//
//	-mappings string   Mapping file (overrides CTLMAP_MAPPINGS)
//	-trace string      Trace file (overrides CTLMAP_TRACE_FILE)
//	-log-level string  Log level: debug, info, warn, error (overrides CTLMAP_LOG_LEVEL)
//	-log-events        Also log every control event
//
// Target values are restored from CTLMAP_STATE_FILE at start and saved there
// on exit.
//
// Examples:
//
//	# Run with a mapping file
//	ctlmap-sim -mappings mixer.yaml
//
//	# Record a trace for ctlmap-log
//	CTLMAP_TRACE_FILE=session.ctrace ctlmap-sim -mappings mixer.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"gitlab.com/gomidi/midi/v2"

	"github.com/ctlmap/ctlmap-go/cmd/ctlmap-sim/interactive"
	"github.com/ctlmap/ctlmap-go/pkg/log"
	"github.com/ctlmap/ctlmap-go/pkg/mapping"
	"github.com/ctlmap/ctlmap-go/pkg/persistence"
)

var (
	mappingsFile = flag.String("mappings", "", "Mapping file (overrides CTLMAP_MAPPINGS)")
	traceFile    = flag.String("trace", "", "Trace file (overrides CTLMAP_TRACE_FILE)")
	logLevel     = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides CTLMAP_LOG_LEVEL)")
	logEvents    = flag.Bool("log-events", false, "Also log every control event at debug level")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fatal(err)
	}
}

// run executes the simulator until the shell exits or a signal arrives.
func run() error {
	cfg, err := mapping.LoadEnvConfig()
	if err != nil {
		return err
	}
	if *mappingsFile != "" {
		cfg.MappingsFile = *mappingsFile
	}
	if *traceFile != "" {
		cfg.TraceFile = *traceFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if cfg.MappingsFile == "" {
		return errors.New("no mapping file: set -mappings or CTLMAP_MAPPINGS")
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	f, err := mapping.LoadFile(cfg.MappingsFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shell, err := interactive.New()
	if err != nil {
		return err
	}

	// Log through readline to avoid interfering with input.
	logger := slog.New(tint.NewHandler(shell.Stdout(), &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))

	session, closeTrace, err := newSession(cfg, f, logger, *logEvents)
	if err != nil {
		return err
	}
	defer closeTrace()
	shell.Bind(session)

	var store *persistence.Store
	if cfg.StateFile != "" {
		store = persistence.NewStore(cfg.StateFile)
		state, err := store.Load()
		if err != nil {
			logger.Warn("failed to load state", "file", cfg.StateFile, "error", err)
		}
		shell.PrintFeedback(session.Restore(state))
	}

	logger.Info("session started",
		"session_id", session.ID(),
		"mappings", len(session.Mappings()),
		"targets", len(session.Targets()),
		"trace", cfg.TraceFile)

	if session.WantsToBePolled() {
		go poll(ctx, session, cfg.PollInterval, shell.PrintFeedback, logger)
	}

	go shell.Run(ctx, cancel)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig)
	case <-ctx.Done():
	}

	cancel()

	if store != nil {
		if err := store.Save(session.State()); err != nil {
			logger.Warn("failed to save state", "file", cfg.StateFile, "error", err)
		}
	}
	logger.Info("session stopped")
	return nil
}

// newSession opens the trace outputs and builds the session from f. The
// returned function closes the trace file. On error nothing stays open.
func newSession(cfg mapping.EnvConfig, f *mapping.File, logger *slog.Logger, logEvents bool) (*mapping.Session, func() error, error) {
	closeTrace := func() error { return nil }

	var traces []log.Logger
	if cfg.TraceFile != "" {
		fl, err := log.NewFileLogger(cfg.TraceFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open trace file: %w", err)
		}
		closeTrace = fl.Close
		traces = append(traces, fl)
	}
	if logEvents {
		traces = append(traces, log.NewSlogAdapter(logger))
	}

	sessionCfg := mapping.SessionConfig{Logger: logger}
	if len(traces) > 0 {
		sessionCfg.Trace = log.NewMultiLogger(traces...)
	}

	session, err := mapping.NewSessionFromFile(f, sessionCfg)
	if err != nil {
		_ = closeTrace()
		return nil, nil, err
	}
	return session, closeTrace, nil
}

// poll runs the session's poll loop until ctx is canceled.
func poll(ctx context.Context, session *mapping.Session, interval time.Duration, out func([]midi.Message), logger *slog.Logger) {
	err := session.Run(ctx, interval, out)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("poll loop stopped", "error", err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
