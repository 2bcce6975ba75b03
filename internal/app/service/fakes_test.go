package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mrunankdekhane/task-manager/internal/common"
	"github.com/mrunankdekhane/task-manager/internal/domain/model"
)

// fakeUserRepo is a mutex-guarded in-memory UserRepository with the same
// duplicate and not-found semantics as the postgres implementation.
type fakeUserRepo struct {
	mu    sync.RWMutex
	users map[string]model.User // keyed by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return common.ErrDuplicateIdentity
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			out := user
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := user
	return &out, nil
}

// fakeTaskRepo mirrors the postgres ordering contract: newest created
// first, insertion sequence breaking timestamp ties.
type fakeTaskRepo struct {
	mu      sync.Mutex
	nextSeq int64
	tasks   map[string]model.Task // keyed by ID
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextSeq: 1, tasks: make(map[string]model.Task)}
}

func cloneTask(t model.Task) model.Task {
	out := t
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	return out
}

func (r *fakeTaskRepo) Insert(_ context.Context, task *model.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.Seq = r.nextSeq
	r.nextSeq++
	r.tasks[task.ID] = cloneTask(*task)
	return nil
}

func (r *fakeTaskRepo) ListByOwner(_ context.Context, ownerID string) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Task{}
	for _, task := range r.tasks {
		if task.OwnerID == ownerID {
			out = append(out, cloneTask(task))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Seq > out[j].Seq
	})
	return out, nil
}

func (r *fakeTaskRepo) UpdateStatus(_ context.Context, ownerID, taskID string, status model.TaskStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return common.ErrNotFound
	}
	task.Status = status
	task.UpdatedAt = time.Now().UTC()
	r.tasks[taskID] = task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, ownerID, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return common.ErrNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

// get returns the stored task directly, for asserting non-mutation.
func (r *fakeTaskRepo) get(taskID string) (model.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[taskID]
	return task, ok
}

// insertAt seeds a task with a fixed creation time, bypassing the service.
func (r *fakeTaskRepo) insertAt(task model.Task, createdAt time.Time) model.Task {
	task.CreatedAt = createdAt
	task.UpdatedAt = createdAt
	r.Insert(context.Background(), &task)
	return task
}
