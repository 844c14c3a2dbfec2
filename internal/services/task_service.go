package services

import (
	"context"

	model "pomoplanner.com/pomoplanner/internal/models"
)

// TaskStore is the persistence surface the task and chat services need.
type TaskStore interface {
	Create(ctx context.Context, task *model.Task) (*model.Task, error)
	ListByUser(ctx context.Context, userID string) ([]model.Task, error)
	FindByID(ctx context.Context, id string) (*model.Task, error)
	Update(ctx context.Context, id string, fields map[string]any) (*model.Task, error)
}

// updatableFields is the full set of task fields a partial update may
// touch. Anything else in the request is dropped here.
var updatableFields = map[string]struct{}{
	"title":     {},
	"date":      {},
	"time":      {},
	"pomodoros": {},
	"completed": {},
}

type TaskService struct {
	store TaskStore
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{store: store}
}

// CreateTask persists a new task. The store assigns the id and forces
// completed to false regardless of the request.
func (s *TaskService) CreateTask(ctx context.Context, title, date, timeOfDay string, pomodoros int, userID string) (*model.Task, error) {
	return s.store.Create(ctx, &model.Task{
		Title:     title,
		Date:      date,
		Time:      timeOfDay,
		Pomodoros: pomodoros,
		UserID:    userID,
	})
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	return s.store.FindByID(ctx, id)
}

// UpdateTask applies only the provided fields, filtered against the
// updatable set. Fields absent from the map keep their stored values.
func (s *TaskService) UpdateTask(ctx context.Context, id string, fields map[string]any) (*model.Task, error) {
	filtered := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, ok := updatableFields[k]; ok {
			filtered[k] = v
		}
	}
	return s.store.Update(ctx, id, filtered)
}
