package model

import "time"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "Todo"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

var TaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskDone}

// PendingTaskStatuses are tasks not yet finished.
var PendingTaskStatuses = []TaskStatus{TaskTodo, TaskInProgress}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

var TaskPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh}

// Task is a to-do item for the business.
type Task struct {
	Record
	Title         string       `json:"title" gorm:"column:title"`
	Description   string       `json:"description" gorm:"column:description;type:text"`
	Category      string       `json:"category" gorm:"column:category"`
	Priority      TaskPriority `json:"priority" gorm:"column:priority;size:16"`
	Status        TaskStatus   `json:"status" gorm:"column:status;size:16;index"`
	DueDate       *time.Time   `json:"due_date" gorm:"column:due_date;type:date"`
	CompletedDate *time.Time   `json:"completed_date" gorm:"column:completed_date;type:date"`
}

func (Task) TableName() string {
	return "tasks"
}

// AllModels lists every persisted model, in migration order.
func AllModels() []interface{} {
	return []interface{}{
		&Setting{},
		&InventoryItem{},
		&Sale{},
		&Shipment{},
		&ReturnCase{},
		&Task{},
	}
}
