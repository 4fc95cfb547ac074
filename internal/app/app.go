// Package app wires the page loader and the HTTP server together.
// Startup is split in two: New loads everything that can fail before a
// socket is touched, Start binds and serves.
package app

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/corey/loading-server/internal/adapters/web"
	"github.com/corey/loading-server/internal/domain/page"
)

// State is the lifecycle phase of an App.
type State int32

const (
	StateStarting State = iota
	StateServing
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateServing:
		return "serving"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// App is the loaded page plus the server that will serve it.
type App struct {
	Page   *page.Page
	Server *web.Server

	port  string
	log   *logrus.Logger
	state atomic.Int32
}

// New reads the page named by cfg. Any error here is fatal to the process;
// no listener has been bound yet.
func New(cfg Config) (*App, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("file path required")
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.Logger == nil {
		cfg.Logger = NewLogger()
	}

	p, err := page.Load(cfg.Fs, cfg.FilePath)
	if err != nil {
		return nil, err
	}

	return &App{
		Page:   p,
		Server: web.NewServer(p),
		port:   cfg.Port,
		log:    cfg.Logger,
	}, nil
}

// State reports the current lifecycle phase.
func (a *App) State() State {
	return State(a.state.Load())
}

// Start binds the listener and logs the port. A bind error is fatal.
func (a *App) Start() error {
	if err := a.Server.Start(a.port); err != nil {
		return err
	}
	a.state.Store(int32(StateServing))
	a.log.Infof("Loading page server listening on port %d", a.Server.Port())
	return nil
}

// Run starts the server and blocks until ctx is cancelled or the serve loop
// fails. Cancellation is a clean exit.
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return a.Stop()
	case err := <-a.Server.Done():
		a.state.Store(int32(StateStopped))
		return fmt.Errorf("serve: %w", err)
	}
}

// Stop shuts the server down. Safe to call more than once.
func (a *App) Stop() error {
	err := a.Server.Stop()
	a.state.Store(int32(StateStopped))
	return err
}

// Port returns the bound port, or 0 before Start.
func (a *App) Port() int {
	return a.Server.Port()
}
