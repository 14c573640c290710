package pages

import (
	"errors"

	"github.com/gin-gonic/gin"

	"resell-dashboard/inout"
	"resell-dashboard/model"
	"resell-dashboard/pkg/session"
	"resell-dashboard/services"
)

// Tasks GET /tasks
func (ctl *Controller) Tasks(c *gin.Context) {
	var req inout.TaskListReq
	if !bindQuery(c, &req) {
		req = inout.TaskListReq{}
	}

	tasks, err := ctl.svc.Tasks.List(c.Request.Context(), req.Filter())
	if err != nil {
		ctl.readFailed(c, "tasks", err)
		tasks = []model.Task{}
	}

	ctl.render(c, "tasks.html", "tasks", gin.H{
		"tasks":      tasks,
		"statuses":   model.TaskStatuses,
		"priorities": model.TaskPriorities,
		"filter":     req,
	})
}

// AddTask POST /tasks/add
func (ctl *Controller) AddTask(c *gin.Context) {
	const back = "/tasks"

	var req inout.AddTaskReq
	if !bind(c, &req, back) {
		return
	}
	task, err := req.ToModel()
	if err != nil {
		done(c, session.FlashWarning, err.Error(), back)
		return
	}
	if err := ctl.svc.Tasks.Create(c.Request.Context(), task); err != nil {
		ctl.failed(c, "add the task", err, back)
		return
	}
	done(c, session.FlashSuccess, "Task added.", back)
}

// UpdateTask POST /tasks/update/:id
func (ctl *Controller) UpdateTask(c *gin.Context) {
	const back = "/tasks"

	var req inout.UpdateTaskReq
	if !bind(c, &req, back) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		done(c, session.FlashWarning, err.Error(), back)
		return
	}

	_, err = ctl.svc.Tasks.Update(c.Request.Context(), c.Param("id"), fields)
	switch {
	case errors.Is(err, services.ErrNotFound):
		done(c, session.FlashWarning, "That task no longer exists.", back)
	case err != nil:
		ctl.failed(c, "update the task", err, back)
	default:
		done(c, session.FlashSuccess, "Task updated.", back)
	}
}

// DeleteTask POST /tasks/delete/:id
func (ctl *Controller) DeleteTask(c *gin.Context) {
	ctl.remove(c, "task", ctl.svc.Tasks.Delete, "/tasks")
}
