// Package web provides the browser front end: a question form over the
// topic registry with an optional AI-authored answer, and topic detail
// pages. It drives the core through the AskService port and holds no
// state of its own beyond the parsed templates.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/ports/driving"
	"github.com/marikraa/metropolia-first-year-helper/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the helper web UI.
type Server struct {
	addr      string
	ask       driving.AskService
	templates *template.Template
	server    *http.Server
	listener  net.Listener
}

// NewServer creates a web server for the given listen address.
func NewServer(addr string, ask driving.AskService) (*Server, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		addr:      addr,
		ask:       ask,
		templates: templates,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleAsk)
	mux.HandleFunc("GET /topic/{id}", s.handleTopic)

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	return s, nil
}

// Start begins listening on the configured address. It returns once the
// listener is bound; the server itself runs in a background goroutine.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Warn("web server: %v", err)
		}
	}()

	logger.Info("web server listening on %s", s.Addr())
	return nil
}

// Addr returns the bound address. Only valid after Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// ServeHTTP exposes the handler for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}
