package pages

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"resell-dashboard/inout"
	"resell-dashboard/model"
	"resell-dashboard/pkg/session"
	"resell-dashboard/services"
)

const recentOrders = 100

// Shipping GET /shipping
func (ctl *Controller) Shipping(c *gin.Context) {
	var req inout.ShipmentListReq
	if !bindQuery(c, &req) {
		req = inout.ShipmentListReq{}
	}

	ctx := c.Request.Context()
	shipments, err := ctl.svc.Shipments.List(ctx, req.Filter())
	if err != nil {
		ctl.readFailed(c, "shipments", err)
		shipments = []model.Shipment{}
	}
	pending, err := ctl.svc.Shipments.Pending(ctx)
	if err != nil {
		ctl.readFailed(c, "pending shipments", err)
		pending = []model.Shipment{}
	}
	sales, err := ctl.svc.Sales.List(ctx, services.SaleFilter{Limit: recentOrders})
	if err != nil {
		ctl.readFailed(c, "sales", err)
		sales = []model.Sale{}
	}

	ctl.render(c, "shipping.html", "shipping", gin.H{
		"shipments": shipments,
		"pending":   pending,
		"sales":     sales,
		"statuses":  model.ShipmentStatuses,
		"filter":    req,
	})
}

// AddShipment POST /shipping/add
func (ctl *Controller) AddShipment(c *gin.Context) {
	const back = "/shipping"

	var req inout.AddShipmentReq
	if !bind(c, &req, back) {
		return
	}

	ctx := c.Request.Context()
	sale, err := ctl.svc.Sales.GetByOrderID(ctx, req.OrderID)
	if errors.Is(err, services.ErrNotFound) {
		done(c, session.FlashWarning, fmt.Sprintf("No sale has order ID %s.", req.OrderID), back)
		return
	}
	if err != nil {
		ctl.failed(c, "look up the order", err, back)
		return
	}

	shipment, err := req.ToModel(sale.ID)
	if err != nil {
		done(c, session.FlashWarning, err.Error(), back)
		return
	}
	if err := ctl.svc.Shipments.Create(ctx, shipment); err != nil {
		ctl.failed(c, "add the shipment", err, back)
		return
	}
	done(c, session.FlashSuccess, fmt.Sprintf("Added a shipment for order %s.", sale.OrderID), back)
}

// UpdateShipment POST /shipping/update/:id
func (ctl *Controller) UpdateShipment(c *gin.Context) {
	const back = "/shipping"

	var req inout.UpdateShipmentReq
	if !bind(c, &req, back) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		done(c, session.FlashWarning, err.Error(), back)
		return
	}

	_, err = ctl.svc.Shipments.Update(c.Request.Context(), c.Param("id"), fields)
	switch {
	case errors.Is(err, services.ErrNotFound):
		done(c, session.FlashWarning, "That shipment no longer exists.", back)
	case err != nil:
		ctl.failed(c, "update the shipment", err, back)
	default:
		done(c, session.FlashSuccess, "Shipment updated.", back)
	}
}

// DeleteShipment POST /shipping/delete/:id
func (ctl *Controller) DeleteShipment(c *gin.Context) {
	ctl.remove(c, "shipment", ctl.svc.Shipments.Delete, "/shipping")
}
