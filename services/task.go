package services

import (
	"context"
	"time"

	"resell-dashboard/model"
	"resell-dashboard/utils"
)

const priorityRank = "CASE priority WHEN 'High' THEN 3 WHEN 'Medium' THEN 2 WHEN 'Low' THEN 1 ELSE 0 END"

var taskColumns = newColumnSet(
	"id", "title", "description", "category", "priority", "status", "due_date",
	"completed_date", "created_at", "updated_at",
)

type TaskFilter struct {
	Status model.TaskStatus
	Limit  int
}

type TaskService struct {
	store
}

// List returns tasks by due date, undated ones last.
func (s *TaskService) List(ctx context.Context, f TaskFilter) ([]model.Task, error) {
	return list[model.Task](ctx, s.store, ListOptions{
		Filters: []Filter{Eq("status", f.Status)},
		Order:   []Order{Asc("due_date").WithNulls(NullsLast), Asc("created_at")},
		Limit:   f.Limit,
	})
}

// Pending returns unfinished tasks, highest priority first, then by due date.
func (s *TaskService) Pending(ctx context.Context, limit int) ([]model.Task, error) {
	if limit <= 0 {
		limit = MaxLimit
	}
	return list[model.Task](ctx, s.store, ListOptions{
		Filters: []Filter{In("status", model.PendingTaskStatuses...)},
		Order: []Order{
			orderByExpr(priorityRank, true),
			Asc("due_date").WithNulls(NullsLast),
			Asc("created_at"),
		},
		Limit: limit,
	})
}

func (s *TaskService) CountPending(ctx context.Context) (int64, error) {
	return s.count(ctx, &model.Task{}, In("status", model.PendingTaskStatuses...))
}

func (s *TaskService) GetByID(ctx context.Context, id string) (*model.Task, error) {
	return getByID[model.Task](ctx, s.store, id)
}

// Create inserts a task in the Todo state.
func (s *TaskService) Create(ctx context.Context, task *model.Task) error {
	task.Status = model.TaskTodo
	task.CompletedDate = nil
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	return s.create(ctx, task)
}

// Update merges fields into the task. Moving a task to Done without a
// completed date stamps it with today.
func (s *TaskService) Update(ctx context.Context, id string, fields Fields) (*model.Task, error) {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}

	if status, ok := merged["status"].(model.TaskStatus); ok && status == model.TaskDone && !hasDate(merged, "completed_date") {
		current, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.Status != model.TaskDone || current.CompletedDate == nil {
			today := utils.Today()
			merged["completed_date"] = &today
		}
	}

	if err := s.update(ctx, &model.Task{}, id, merged); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, &model.Task{}, id)
}

func hasDate(fields Fields, column string) bool {
	v, ok := fields[column].(*time.Time)
	return ok && v != nil
}
