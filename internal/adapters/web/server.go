// Package web answers every HTTP request with the same page.
// There is no routing: the handler ignores method, path, headers and body.
package web

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/corey/loading-server/internal/domain/page"
)

const (
	contentType  = "text/html"
	cacheControl = "no-cache"
)

// Server serves a single page on all interfaces.
type Server struct {
	page     *page.Page
	listener net.Listener
	httpSrv  *http.Server
	port     int
	serveErr chan error
	stopOnce sync.Once
}

// NewServer creates a server for p. Nothing is bound until Start.
func NewServer(p *page.Page) *Server {
	return &Server{
		page:     p,
		serveErr: make(chan error, 1),
	}
}

// Handler returns the constant response handler for p.
func Handler(p *page.Page) http.Handler {
	length := strconv.Itoa(p.Len())
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		h := w.Header()
		h.Set("Content-Type", contentType)
		h.Set("Cache-Control", cacheControl)
		h.Set("Content-Length", length)
		w.WriteHeader(http.StatusOK)
		// Write errors mean the client went away; nothing to do.
		p.WriteTo(w)
	})
}

// Start binds :port on all interfaces and begins serving in the background.
// The port string is passed to the listener unchecked.
func (s *Server) Start(port string) error {
	addr := ":" + port
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.port = ln.Addr().(*net.TCPAddr).Port

	s.httpSrv = &http.Server{
		Handler: Handler(s.page),
		// OPTIONS * gets the page too.
		DisableGeneralOptionsHandler: true,
	}

	go func() {
		s.serveErr <- s.httpSrv.Serve(ln)
	}()
	return nil
}

// Done delivers the error that ended Serve. After Stop it carries
// http.ErrServerClosed.
func (s *Server) Done() <-chan error {
	return s.serveErr
}

// Stop gracefully shuts down the HTTP server. Idempotent.
func (s *Server) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		if s.httpSrv == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.httpSrv.Shutdown(ctx)
	})
	return err
}

// Port returns the bound port number.
func (s *Server) Port() int {
	return s.port
}

// URL returns the base URL of the bound listener.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.port)
}
