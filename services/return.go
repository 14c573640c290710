package services

import (
	"context"

	"resell-dashboard/model"
	"resell-dashboard/utils"
)

var returnColumns = newColumnSet(
	"id", "order_id", "reason", "status", "date_opened", "expected_loss", "notes",
	"created_at", "updated_at",
)

type ReturnFilter struct {
	Status model.ReturnStatus
	Limit  int
}

type ReturnService struct {
	store
}

// List returns cases most recently opened first.
func (s *ReturnService) List(ctx context.Context, f ReturnFilter) ([]model.ReturnCase, error) {
	return list[model.ReturnCase](ctx, s.store, ListOptions{
		Filters: []Filter{Eq("status", f.Status)},
		Order:   []Order{Desc("date_opened"), Desc("created_at")},
		Limit:   f.Limit,
	})
}

// Open returns cases that are opened or in progress.
func (s *ReturnService) Open(ctx context.Context) ([]model.ReturnCase, error) {
	return list[model.ReturnCase](ctx, s.store, ListOptions{
		Filters: []Filter{In("status", model.OpenReturnStatuses...)},
		Order:   []Order{Desc("date_opened"), Desc("created_at")},
		Limit:   MaxLimit,
	})
}

func (s *ReturnService) CountOpen(ctx context.Context) (int64, error) {
	return s.count(ctx, &model.ReturnCase{}, In("status", model.OpenReturnStatuses...))
}

func (s *ReturnService) GetByID(ctx context.Context, id string) (*model.ReturnCase, error) {
	return getByID[model.ReturnCase](ctx, s.store, id)
}

func (s *ReturnService) Create(ctx context.Context, rc *model.ReturnCase) error {
	if rc.Status == "" {
		rc.Status = model.ReturnOpened
	}
	if rc.DateOpened.IsZero() {
		rc.DateOpened = utils.Today()
	} else {
		rc.DateOpened = utils.TruncateDay(rc.DateOpened)
	}
	return s.create(ctx, rc)
}

func (s *ReturnService) Update(ctx context.Context, id string, fields Fields) (*model.ReturnCase, error) {
	if err := s.update(ctx, &model.ReturnCase{}, id, fields); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *ReturnService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, &model.ReturnCase{}, id)
}
