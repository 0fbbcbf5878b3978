package web

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ochairo/sbomview/internal/domain/entities"
	"github.com/ochairo/sbomview/internal/domain/interfaces"
)

// errorView is the input of error.html.
type errorView struct {
	Message string
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.render(w, http.StatusOK, "upload.html", nil)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		s.renderError(w, http.StatusBadRequest, "the upload must carry a single file field named \"file\"")
		return
	}
	//nolint:errcheck // Defer close on the received multipart part
	defer file.Close()

	// Full receipt first; the ceiling is enforced before any parsing.
	data, err := io.ReadAll(io.LimitReader(file, s.maxUpload+1))
	if err != nil {
		s.logger.Error("failed to read upload", interfaces.F("error", err))
		s.renderError(w, http.StatusInternalServerError, "failed to read the uploaded file")
		return
	}
	if int64(len(data)) > s.maxUpload {
		s.renderError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("the uploaded file exceeds the %d byte limit", s.maxUpload))
		return
	}

	report, err := s.interp.Interpret(r.Context(), header.Filename, data)
	if err != nil {
		var unrecognized *entities.UnrecognizedFormatError
		if errors.As(err, &unrecognized) {
			s.renderError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("interpretation failed",
			interfaces.F("filename", header.Filename),
			interfaces.F("error", err))
		s.renderError(w, http.StatusInternalServerError, "internal error while interpreting the document")
		return
	}

	s.logger.Info("document interpreted",
		interfaces.F("filename", header.Filename),
		interfaces.F("format", report.Format),
		interfaces.F("bytes", len(data)))
	s.render(w, http.StatusOK, "report.html", report)
}

// render executes the template into a buffer first so a rendering
// failure never leaks a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("template rendering failed",
			interfaces.F("template", name),
			interfaces.F("error", err))
		http.Error(w, "internal rendering error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	//nolint:errcheck // Response writes past the header are best-effort
	buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, status int, msg string) {
	s.render(w, status, "error.html", errorView{Message: msg})
}
