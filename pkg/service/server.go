package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	oqlog "github.com/oscquery-protocol/oscquery-go/pkg/log"
	"github.com/oscquery-protocol/oscquery-go/pkg/model"
	"github.com/oscquery-protocol/oscquery-go/pkg/query"
)

// Config holds configuration for the OSCQuery HTTP server.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// Logger is the operational logger. Defaults to slog.Default().
	Logger *slog.Logger

	// QueryLogger receives one event per resolved request.
	// Defaults to oqlog.Discard.
	QueryLogger oqlog.Logger

	// ReadHeaderTimeout guards against slow clients. Default 5s.
	ReadHeaderTimeout time.Duration
}

// Server answers OSCQuery discovery requests for one published tree.
type Server struct {
	config   Config
	tree     *model.Tree
	resolver *query.Resolver
	mux      *http.ServeMux
	server   *http.Server

	logger      *slog.Logger
	queryLogger oqlog.Logger
}

// New creates a server for the given tree. The tree is frozen here:
// publishing is the point of no return for structural mutation.
func New(cfg Config, tree *model.Tree) (*Server, error) {
	if tree == nil {
		return nil, errors.New("nil tree")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.QueryLogger == nil {
		cfg.QueryLogger = oqlog.Discard
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = 5 * time.Second
	}

	tree.Freeze()

	s := &Server{
		config:      cfg,
		tree:        tree,
		resolver:    query.New(tree),
		mux:         http.NewServeMux(),
		logger:      cfg.Logger,
		queryLogger: cfg.QueryLogger,
	}
	s.mux.HandleFunc("/", s.handleQuery)

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	return s, nil
}

// Handler returns the HTTP handler, for tests and embedding into an
// existing mux.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe starts the HTTP server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("oscquery server listening", slog.String("addr", s.config.Addr))
	return s.server.ListenAndServe()
}

// Serve serves connections from an existing listener.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("oscquery server listening", slog.String("addr", ln.Addr().String()))
	return s.server.Serve(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleQuery resolves one OSCQuery request.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	attr := attributeFilter(r.URL.RawQuery)

	body, err := s.resolver.Query(r.URL.Path, attr)
	status := http.StatusOK
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			// Serialization over a frozen tree cannot fail; treat
			// anything else as a server bug rather than a client error.
			s.logger.Error("query failed",
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}
		status = http.StatusNotFound
		body = notFoundBody(r.URL.Path)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)

	s.queryLogger.Log(oqlog.Event{
		Timestamp:  start,
		RequestID:  uuid.NewString(),
		RemoteAddr: r.RemoteAddr,
		Path:       r.URL.Path,
		Attribute:  attr,
		Status:     status,
		Duration:   time.Since(start),
		BodyBytes:  len(body),
	})
}

// attributeFilter extracts the single-attribute filter from the raw
// query string. OSCQuery filters are bare words ("?VALUE"), but lenient
// parsing also accepts "?VALUE=" and ignores anything after a '&'.
func attributeFilter(rawQuery string) string {
	if i := strings.IndexAny(rawQuery, "=&"); i >= 0 {
		rawQuery = rawQuery[:i]
	}
	return rawQuery
}

// notFoundBody builds the 404 response body.
func notFoundBody(path string) []byte {
	body, _ := json.Marshal(map[string]string{
		"error": fmt.Sprintf("no node at path %q", path),
	})
	return body
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
