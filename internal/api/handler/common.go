package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mrunankdekhane/task-manager/internal/api/view"
	"github.com/mrunankdekhane/task-manager/internal/common"
)

// renderFailure handles non-user-correctable errors: log the cause, show
// the generic failure page. Never leaks the underlying error to the client.
func renderFailure(views *view.Renderer, w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request_failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	views.Render(w, common.HTTPStatusFromError(err), "error.html", view.Page{Title: "Error"})
}

// userMessage turns a user-correctable error into form feedback.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateIdentity):
		return "That username or email is already taken."
	case errors.Is(err, common.ErrValidation):
		return "Please check your input: " + err.Error()
	default:
		return "Something went wrong. Please try again."
	}
}
