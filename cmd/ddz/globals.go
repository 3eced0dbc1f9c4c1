package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/ddz/ddz"
	"github.com/lox/ddz/internal/config"
	"github.com/lox/ddz/internal/logging"
	"github.com/lox/ddz/internal/render"
)

// Globals are flags shared by every command.
type Globals struct {
	Config    string `kong:"default='ddz.hcl',type='path',help='HCL configuration file (missing file means defaults)'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
	LogFormat string `kong:"help='Log format: text or json (default from config)'"`
	NoColor   bool   `kong:"help='Disable coloured output'"`

	out    io.Writer `kong:"-"`
	logOut io.Writer `kong:"-"`
}

// env is everything a command needs once flags and config are merged.
type env struct {
	cfg    *config.Config
	logger *log.Logger
	render *render.Renderer
	finder *ddz.Finder
	out    io.Writer
}

func (g *Globals) env() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", g.Config, err)
	}

	out := g.out
	if out == nil {
		out = os.Stdout
	}
	logOut := g.logOut
	if logOut == nil {
		logOut = os.Stderr
	}

	logger, err := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded configuration", "path", g.Config, "hand_size", cfg.Deck.HandSize, "workers", cfg.Finder.Workers)

	return &env{
		cfg:    cfg,
		logger: logger,
		render: render.New(out, cfg.Color() && !g.NoColor, cfg.ShowSuit()),
		finder: ddz.NewFinder(ddz.WithLogger(logger), ddz.WithWorkers(cfg.Finder.Workers)),
		out:    out,
	}, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// parseHandArgs joins positional card arguments so both `3c 3d` and
// "3c 3d" forms parse.
func parseHandArgs(args []string) (ddz.Hand, error) {
	h, err := ddz.ParseHand(strings.Join(args, " "))
	if err != nil {
		return ddz.Hand{}, err
	}
	if h.Len() == 0 {
		return ddz.Hand{}, fmt.Errorf("no cards given")
	}
	return h, nil
}
