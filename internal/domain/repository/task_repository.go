package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mrunankdekhane/task-manager/internal/common"
	"github.com/mrunankdekhane/task-manager/internal/domain/model"
)

type TaskRepository interface {
	Insert(ctx context.Context, task *model.Task) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error)
	// UpdateStatus and Delete are owner-scoped: they report
	// common.ErrNotFound both for a missing task and for a task owned by
	// someone else, so the caller learns nothing about foreign tasks.
	UpdateStatus(ctx context.Context, ownerID, taskID string, status model.TaskStatus) error
	Delete(ctx context.Context, ownerID, taskID string) error
}

type pgTaskRepository struct {
	db *sql.DB
}

func NewPgTaskRepository(db *sql.DB) TaskRepository {
	return &pgTaskRepository{db: db}
}

func (r *pgTaskRepository) Insert(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (id, owner_id, title, description, status, priority, due_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING seq`
	err := r.db.QueryRowContext(ctx, query,
		task.ID, task.OwnerID, task.Title, task.Description, task.Status, task.Priority,
		task.DueDate, task.CreatedAt, task.UpdatedAt,
	).Scan(&task.Seq)
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Insert: %v: %w", err, common.ErrStorageUnavailable)
	}
	return nil
}

func (r *pgTaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Task, error) {
	query := `SELECT id, owner_id, title, description, status, priority, due_date, seq, created_at, updated_at
	          FROM tasks WHERE owner_id = $1
	          ORDER BY created_at DESC, seq DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("pgTaskRepository.ListByOwner query: %v: %w", err, common.ErrStorageUnavailable)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Status, &t.Priority,
			&t.DueDate, &t.Seq, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgTaskRepository.ListByOwner scan: %v: %w", err, common.ErrStorageUnavailable)
		}
		tasks = append(tasks, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgTaskRepository.ListByOwner rows.Err: %v: %w", err, common.ErrStorageUnavailable)
	}

	return tasks, nil
}

func (r *pgTaskRepository) UpdateStatus(ctx context.Context, ownerID, taskID string, status model.TaskStatus) error {
	query := `UPDATE tasks SET status = $1, updated_at = CURRENT_TIMESTAMP
	          WHERE id = $2 AND owner_id = $3`
	res, err := r.db.ExecContext(ctx, query, status, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("pgTaskRepository.UpdateStatus: %v: %w", err, common.ErrStorageUnavailable)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgTaskRepository.UpdateStatus rows affected: %v: %w", err, common.ErrStorageUnavailable)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgTaskRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, query, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Delete: %v: %w", err, common.ErrStorageUnavailable)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgTaskRepository.Delete rows affected: %v: %w", err, common.ErrStorageUnavailable)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
