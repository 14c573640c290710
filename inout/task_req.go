package inout

import (
	"strings"

	"resell-dashboard/model"
	"resell-dashboard/services"
)

type TaskListReq struct {
	Status string `form:"status" binding:"omitempty,oneof=Todo 'In Progress' Done"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=10000"`
}

func (r TaskListReq) Filter() services.TaskFilter {
	return services.TaskFilter{Status: model.TaskStatus(r.Status), Limit: r.Limit}
}

// AddTaskReq 新增任务
type AddTaskReq struct {
	Title       string `form:"title" binding:"required,max=255"`
	Description string `form:"description"`
	Category    string `form:"category" binding:"max=64"`
	Priority    string `form:"priority" binding:"omitempty,oneof=Low Medium High"`
	DueDate     string `form:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r AddTaskReq) ToModel() (*model.Task, error) {
	var p parser
	task := &model.Task{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Category:    r.Category,
		Priority:    model.TaskPriority(r.Priority),
		Status:      model.TaskTodo,
		DueDate:     p.date("due_date", r.DueDate),
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	if p.err != nil {
		return nil, p.err
	}
	return task, nil
}

// UpdateTaskReq moves a task to a new status.
type UpdateTaskReq struct {
	Status        string `form:"status" binding:"required,oneof=Todo 'In Progress' Done"`
	CompletedDate string `form:"completed_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r UpdateTaskReq) ToFields() (services.Fields, error) {
	fields := services.Fields{"status": model.TaskStatus(r.Status)}
	completed, err := date("completed_date", r.CompletedDate)
	if err != nil {
		return nil, err
	}
	if completed != nil {
		fields["completed_date"] = completed
	}
	return fields, nil
}
