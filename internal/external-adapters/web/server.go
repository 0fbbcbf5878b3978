// Package web is the HTTP transport in front of the interpreter: routes,
// multipart upload handling and HTML report rendering. The core takes
// bytes in and hands a view model out; everything else lives here.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ochairo/sbomview/internal/domain/entities"
	"github.com/ochairo/sbomview/internal/domain/interfaces"
	"github.com/ochairo/sbomview/internal/domain/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// Interpreter is the slice of the domain the transport depends on.
type Interpreter interface {
	Interpret(ctx context.Context, filename string, data []byte) (*entities.Report, error)
}

// Server serves the upload page and rendered SBOM reports
type Server struct {
	httpServer *http.Server
	templates  *template.Template
	interp     Interpreter
	maxUpload  int64
	logger     interfaces.Logger
}

// NewServer wires the routes and parses the embedded templates.
func NewServer(cfg *entities.ServerConfig, interp Interpreter, logger interfaces.Logger) (*Server, error) {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"purl": services.PurlBreakdown,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		templates: tmpl,
		interp:    interp,
		maxUpload: cfg.MaxUploadBytes,
		logger:    logger,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/upload", s.handleUpload).Methods(http.MethodPost)

	s.httpServer = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler exposes the route tree (used by tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
