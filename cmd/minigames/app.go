package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-minigames/internal/config"
	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/games/bouncingball"
	"github.com/vovakirdan/tui-minigames/internal/games/life"
	"github.com/vovakirdan/tui-minigames/internal/games/randomwalk"
	"github.com/vovakirdan/tui-minigames/internal/platform/term"
	"github.com/vovakirdan/tui-minigames/internal/platform/tui"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

// app holds everything a command needs, built from the global flags.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	logFile io.Closer
	reg     *registry.Registry
	term    *term.Unix
}

func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	out := logOutput(os.Stderr, xterm.IsTerminal(int(os.Stderr.Fd())))
	var logFile io.Closer
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, logFile = f, f
	}

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, err
	}

	rt := core.RuntimeConfig{Seed: flagSeed, QuitKey: cfg.QuitRune()}
	logger.Debug("configuration loaded", "seed", rt.Seed, "quit", string(rt.QuitKey))

	return &app{
		cfg:     cfg,
		logger:  logger,
		logFile: logFile,
		reg:     buildRegistry(rt, cfg, logger),
		term:    term.Stdio(),
	}, nil
}

// logOutput picks the log destination when no log file is set. A terminal
// stderr is the screen the menu and visualizers draw on, so logs are dropped.
func logOutput(stderr io.Writer, stderrIsTerminal bool) io.Writer {
	if stderrIsTerminal {
		return io.Discard
	}
	return stderr
}

// newLogger creates the process logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "minigames",
		Level:           lvl,
	}), nil
}

// buildRegistry lists the visualizers in menu order.
func buildRegistry(rt core.RuntimeConfig, cfg config.Config, logger *log.Logger) *registry.Registry {
	return registry.New(
		life.Descriptor(rt, cfg.Life, logger),
		randomwalk.Descriptor(rt, cfg.RandomWalk, logger),
		bouncingball.Descriptor(rt, cfg.BouncingBall, logger),
	)
}

func (a *app) dispatcher() *tui.Dispatcher {
	var picker tui.Picker = tui.TeaPicker{}
	if flagPlain {
		picker = tui.KeyPicker{Term: a.term}
	}
	return tui.NewDispatcher(a.reg, picker, a.term, a.logger)
}

// Close releases the log file, if any.
func (a *app) Close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// notifyContext cancels on SIGINT or SIGTERM. In raw mode Ctrl+C arrives
// as a key instead, so this only covers signals from outside.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
