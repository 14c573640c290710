package services

import (
	"testing"
	"time"

	"resell-dashboard/model"
	"resell-dashboard/utils"
)

func TestTaskCreateDefaults(t *testing.T) {
	svc := newTestService(t).Tasks

	task := &model.Task{Title: "Photograph stock", Status: model.TaskDone}
	if err := svc.Create(ctx, task); err != nil {
		t.Fatal(err)
	}
	if task.Status != model.TaskTodo {
		t.Errorf("status = %q, want Todo", task.Status)
	}
	if task.Priority != model.PriorityMedium {
		t.Errorf("priority = %q, want Medium", task.Priority)
	}
}

func TestTaskDoneStampsCompletedDate(t *testing.T) {
	svc := newTestService(t).Tasks

	task := &model.Task{Title: "List new items"}
	if err := svc.Create(ctx, task); err != nil {
		t.Fatal(err)
	}
	got, err := svc.Update(ctx, task.ID, Fields{"status": model.TaskDone})
	if err != nil {
		t.Fatal(err)
	}
	if got.CompletedDate == nil || !got.CompletedDate.Equal(utils.Today()) {
		t.Errorf("completed date = %v, want today", got.CompletedDate)
	}
}

func TestTaskDoneKeepsSuppliedDate(t *testing.T) {
	svc := newTestService(t).Tasks

	task := &model.Task{Title: "Post parcels"}
	if err := svc.Create(ctx, task); err != nil {
		t.Fatal(err)
	}
	supplied := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	got, err := svc.Update(ctx, task.ID, Fields{"status": model.TaskDone, "completed_date": &supplied})
	if err != nil {
		t.Fatal(err)
	}
	if got.CompletedDate == nil || !got.CompletedDate.Equal(supplied) {
		t.Errorf("completed date = %v, want %v", got.CompletedDate, supplied)
	}

	// already done: a second Done keeps the original date
	got, err = svc.Update(ctx, task.ID, Fields{"status": model.TaskDone})
	if err != nil {
		t.Fatal(err)
	}
	if !got.CompletedDate.Equal(supplied) {
		t.Errorf("completed date overwritten: %v", got.CompletedDate)
	}
}

func TestTaskOrdering(t *testing.T) {
	svc := newTestService(t).Tasks

	day := func(d int) *time.Time {
		v := time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	seed := []*model.Task{
		{Title: "low soon", Priority: model.PriorityLow, DueDate: day(1)},
		{Title: "high undated", Priority: model.PriorityHigh},
		{Title: "high later", Priority: model.PriorityHigh, DueDate: day(20)},
		{Title: "medium", Priority: model.PriorityMedium, DueDate: day(5)},
		{Title: "finished", Priority: model.PriorityHigh, DueDate: day(2)},
	}
	for _, task := range seed {
		if err := svc.Create(ctx, task); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.Update(ctx, seed[4].ID, Fields{"status": model.TaskDone}); err != nil {
		t.Fatal(err)
	}

	pending, err := svc.Pending(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"high later", "high undated", "medium", "low soon"}
	if len(pending) != len(want) {
		t.Fatalf("pending = %d tasks, want %d", len(pending), len(want))
	}
	for i, title := range want {
		if pending[i].Title != title {
			t.Errorf("pending[%d] = %q, want %q", i, pending[i].Title, title)
		}
	}

	all, err := svc.List(ctx, TaskFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if all[0].Title != "low soon" || all[len(all)-1].Title != "high undated" {
		t.Errorf("list not ordered by due date with nulls last: first %q, last %q", all[0].Title, all[len(all)-1].Title)
	}

	top, err := svc.Pending(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Errorf("Pending(2) = %d tasks", len(top))
	}
}
