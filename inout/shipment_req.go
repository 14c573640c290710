package inout

import (
	"strings"

	"resell-dashboard/model"
	"resell-dashboard/services"
)

type ShipmentListReq struct {
	Status string `form:"status" binding:"omitempty,oneof='Pending Label' 'Label Created' Shipped Delivered Cancelled"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=10000"`
}

func (r ShipmentListReq) Filter() services.ShipmentFilter {
	return services.ShipmentFilter{Status: model.ShipmentStatus(r.Status), Limit: r.Limit}
}

// AddShipmentReq creates a shipment for the sale with the given order id.
type AddShipmentReq struct {
	OrderID          string `form:"order_id" binding:"required,max=128"`
	Status           string `form:"status" binding:"omitempty,oneof='Pending Label' 'Label Created' Shipped Delivered Cancelled"`
	TrackingNumber   string `form:"tracking_number" binding:"max=128"`
	Carrier          string `form:"carrier" binding:"max=64"`
	DispatchDeadline string `form:"dispatch_deadline" binding:"omitempty,datetime=2006-01-02"`
	Notes            string `form:"notes"`
}

func (r AddShipmentReq) ToModel(saleID string) (*model.Shipment, error) {
	var p parser
	shipment := &model.Shipment{
		SaleID:           &saleID,
		Status:           model.ShipmentStatus(r.Status),
		TrackingNumber:   strings.TrimSpace(r.TrackingNumber),
		Carrier:          r.Carrier,
		DispatchDeadline: p.date("dispatch_deadline", r.DispatchDeadline),
		Notes:            r.Notes,
	}
	if p.err != nil {
		return nil, p.err
	}
	return shipment, nil
}

// UpdateShipmentReq updates a shipment. Dates are only written when supplied.
type UpdateShipmentReq struct {
	Status         string `form:"status" binding:"required,oneof='Pending Label' 'Label Created' Shipped Delivered Cancelled"`
	TrackingNumber string `form:"tracking_number" binding:"max=128"`
	Carrier        string `form:"carrier" binding:"max=64"`
	Notes          string `form:"notes"`
	ShippedDate    string `form:"shipped_date" binding:"omitempty,datetime=2006-01-02"`
	DeliveredDate  string `form:"delivered_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r UpdateShipmentReq) ToFields() (services.Fields, error) {
	var p parser
	fields := services.Fields{
		"status":          model.ShipmentStatus(r.Status),
		"tracking_number": strings.TrimSpace(r.TrackingNumber),
		"carrier":         r.Carrier,
		"notes":           r.Notes,
	}
	if shipped := p.date("shipped_date", r.ShippedDate); shipped != nil {
		fields["shipped_date"] = shipped
	}
	if delivered := p.date("delivered_date", r.DeliveredDate); delivered != nil {
		fields["delivered_date"] = delivered
	}
	if p.err != nil {
		return nil, p.err
	}
	return fields, nil
}
