package routes

import (
	"log/slog"
	"net/http"

	"github.com/charmbracelet/lipgloss"
	"github.com/dasdy/tabstyle/table"
	"github.com/dasdy/tabstyle/web/components"
	"github.com/muesli/termenv"
)

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Title string
	// Load builds a freshly styled table for every request, so requests never share a configuration.
	Load func() (*table.Table, error)
}

// TableHandle serves the styled table as HTML, or as plain text with ?format=text.
func (s *ServerHandler) TableHandle(w http.ResponseWriter, r *http.Request) {
	slog.InfoContext(logCtx, "Got request to table page", "path", r.URL.Path)

	t, err := s.Load()
	if err != nil {
		slog.ErrorContext(logCtx, "Could not load table", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "html":
		if err := SafeRenderTemplate(components.Page(s.Title, components.Table(t)), w); err != nil {
			slog.ErrorContext(logCtx, "Could not render table", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	case "text":
		renderer := lipgloss.NewRenderer(w)
		renderer.SetColorProfile(termenv.Ascii)

		w.Header().Set("Content-Type", "text/plain; charset=UTF-8")

		if _, err := w.Write([]byte(t.Render(renderer) + "\n")); err != nil {
			slog.ErrorContext(logCtx, "Failed to write response", "error", err)
		}
	default:
		http.Error(w, "unknown format "+format, http.StatusBadRequest)
	}
}
