package view

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/mrunankdekhane/task-manager/internal/common"
	"github.com/mrunankdekhane/task-manager/internal/domain/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page carries everything a template may need; handlers fill in only the
// fields their page uses.
type Page struct {
	Title string
	Error string
	User  *model.User
	Tasks []model.Task
	Stats model.TaskStats
	Form  map[string]string
}

type Renderer struct {
	templates *template.Template
}

func New() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render executes the named page into a buffer first so a template
// failure can still produce a clean error response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, page, data); err != nil {
		slog.Error("template_render_failed", "page", page, "error", err)
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
