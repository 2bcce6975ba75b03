package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mrunankdekhane/task-manager/internal/common"
	"github.com/mrunankdekhane/task-manager/internal/domain/model"
	"github.com/mrunankdekhane/task-manager/internal/domain/repository"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepo repository.TaskRepository
}

func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

type CreateTaskRequest struct {
	Title       string
	Description string
	Priority    model.TaskPriority
	DueDate     *time.Time
}

func (s *TaskService) Create(ctx context.Context, ownerID string, req CreateTaskRequest) (*model.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required: %w", common.ErrValidation)
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("unknown priority %q: %w", priority, common.ErrValidation)
	}

	now := time.Now().UTC()
	task := &model.Task{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Status:      model.StatusPending,
		Priority:    priority,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Insert(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// ListByOwner returns the owner's tasks newest-created-first; among equal
// creation timestamps the most recently inserted comes first.
func (s *TaskService) ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus mutates the task's status only when it belongs to ownerID.
// A missing task and someone else's task both answer common.ErrNotFound.
func (s *TaskService) UpdateStatus(ctx context.Context, ownerID, taskID string, status model.TaskStatus) error {
	if taskID == "" {
		return common.ErrNotFound
	}
	if !status.Valid() {
		return fmt.Errorf("unknown status %q: %w", status, common.ErrValidation)
	}
	return s.taskRepo.UpdateStatus(ctx, ownerID, taskID, status)
}

// Delete removes the task under the same ownership scoping as UpdateStatus.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if taskID == "" {
		return common.ErrNotFound
	}
	return s.taskRepo.Delete(ctx, ownerID, taskID)
}

// ComputeStats is a pure aggregation over an already-fetched task list.
func ComputeStats(tasks []model.Task) model.TaskStats {
	stats := model.TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusInProgress:
			stats.InProgress++
		case model.StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
