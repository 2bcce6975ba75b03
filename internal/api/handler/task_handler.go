package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/mrunankdekhane/task-manager/internal/api/middleware"
	"github.com/mrunankdekhane/task-manager/internal/api/view"
	"github.com/mrunankdekhane/task-manager/internal/app/service"
	"github.com/mrunankdekhane/task-manager/internal/common"
	"github.com/mrunankdekhane/task-manager/internal/domain/model"
	"github.com/mrunankdekhane/task-manager/internal/domain/repository"

	"github.com/go-chi/chi/v5"
)

const dueDateLayout = "2006-01-02"

type TaskHandler struct {
	taskService *service.TaskService
	userRepo    repository.UserRepository
	views       *view.Renderer
}

func NewTaskHandler(taskService *service.TaskService, userRepo repository.UserRepository, views *view.Renderer) *TaskHandler {
	return &TaskHandler{taskService: taskService, userRepo: userRepo, views: views}
}

func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
	r.Post("/tasks", h.createTask)
	r.Post("/tasks/{taskID}/status", h.updateStatus)
	r.Post("/tasks/{taskID}/delete", h.deleteTask)
}

func (h *TaskHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.renderDashboard(w, r, http.StatusOK, "")
}

func (h *TaskHandler) createTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	req := service.CreateTaskRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Priority:    model.TaskPriority(r.FormValue("priority")),
	}
	if raw := r.FormValue("due_date"); raw != "" {
		due, err := time.Parse(dueDateLayout, raw)
		if err != nil {
			h.renderDashboard(w, r, http.StatusUnprocessableEntity, "Due date must look like 2026-01-31.")
			return
		}
		req.DueDate = &due
	}

	if _, err := h.taskService.Create(r.Context(), ownerID, req); err != nil {
		if errors.Is(err, common.ErrValidation) {
			h.renderDashboard(w, r, http.StatusUnprocessableEntity, userMessage(err))
			return
		}
		renderFailure(h.views, w, r, err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *TaskHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	taskID := chi.URLParam(r, "taskID")
	status := model.TaskStatus(r.FormValue("status"))

	err := h.taskService.UpdateStatus(r.Context(), ownerID, taskID, status)
	switch {
	case err == nil, errors.Is(err, common.ErrNotFound):
		// Missing or foreign task: silent no-op, back to the dashboard.
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	case errors.Is(err, common.ErrValidation):
		h.renderDashboard(w, r, http.StatusUnprocessableEntity, userMessage(err))
	default:
		renderFailure(h.views, w, r, err)
	}
}

func (h *TaskHandler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	taskID := chi.URLParam(r, "taskID")

	err := h.taskService.Delete(r.Context(), ownerID, taskID)
	switch {
	case err == nil, errors.Is(err, common.ErrNotFound):
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	default:
		renderFailure(h.views, w, r, err)
	}
}

func (h *TaskHandler) renderDashboard(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), ownerID)
	if err != nil {
		renderFailure(h.views, w, r, err)
		return
	}
	user.HashedPassword = "" // never hand the hash to the view layer

	tasks, err := h.taskService.ListByOwner(r.Context(), ownerID)
	if err != nil {
		renderFailure(h.views, w, r, err)
		return
	}

	h.views.Render(w, status, "dashboard.html", view.Page{
		Title: "Dashboard",
		Error: errMsg,
		User:  user,
		Tasks: tasks,
		Stats: service.ComputeStats(tasks),
	})
}
