package inout

import (
	"strings"

	"resell-dashboard/model"
	"resell-dashboard/services"
)

type ReturnListReq struct {
	Status string `form:"status" binding:"omitempty,oneof=Opened 'In Progress' Resolved Closed"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=10000"`
}

func (r ReturnListReq) Filter() services.ReturnFilter {
	return services.ReturnFilter{Status: model.ReturnStatus(r.Status), Limit: r.Limit}
}

// AddReturnReq 新增退货
type AddReturnReq struct {
	OrderID      string `form:"order_id" binding:"required,max=128"`
	Reason       string `form:"reason" binding:"max=255"`
	Status       string `form:"status" binding:"omitempty,oneof=Opened 'In Progress' Resolved Closed"`
	DateOpened   string `form:"date_opened" binding:"omitempty,datetime=2006-01-02"`
	ExpectedLoss string `form:"expected_loss" binding:"omitempty,numeric"`
	Notes        string `form:"notes"`
}

// ToModel converts the form. A blank open date is filled in by the service.
func (r AddReturnReq) ToModel() (*model.ReturnCase, error) {
	var p parser
	rc := &model.ReturnCase{
		OrderID:      strings.TrimSpace(r.OrderID),
		Reason:       r.Reason,
		Status:       model.ReturnStatus(r.Status),
		ExpectedLoss: p.money("expected_loss", r.ExpectedLoss),
		Notes:        r.Notes,
	}
	if opened := p.date("date_opened", r.DateOpened); opened != nil {
		rc.DateOpened = *opened
	}
	if p.err != nil {
		return nil, p.err
	}
	return rc, nil
}

type UpdateReturnReq struct {
	Status string `form:"status" binding:"required,oneof=Opened 'In Progress' Resolved Closed"`
	Notes  string `form:"notes"`
}

func (r UpdateReturnReq) ToFields() services.Fields {
	return services.Fields{
		"status": model.ReturnStatus(r.Status),
		"notes":  r.Notes,
	}
}
