package services

import (
	"testing"
	"time"

	"resell-dashboard/model"
	"resell-dashboard/utils"
)

func TestShipmentPendingOrderingAndExpansion(t *testing.T) {
	svc := newTestService(t)

	sale := exampleSale("ORD-10")
	sale.BuyerName = "Sam"
	if _, err := svc.Sales.Create(ctx, sale, ""); err != nil {
		t.Fatal(err)
	}

	day := func(d int) *time.Time {
		v := time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
		return &v
	}
	seed := []model.Shipment{
		{Status: model.ShipmentLabelCreated, DispatchDeadline: day(12), SaleID: &sale.ID},
		{Status: model.ShipmentPendingLabel},
		{Status: model.ShipmentShipped, DispatchDeadline: day(1)},
		{Status: model.ShipmentPendingLabel, DispatchDeadline: day(3)},
		{Status: model.ShipmentDelivered, DispatchDeadline: day(2)},
	}
	for i := range seed {
		if err := svc.Shipments.Create(ctx, &seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	pending, err := svc.Shipments.Pending(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 3 {
		t.Fatalf("pending = %d rows, want 3", len(pending))
	}
	if !pending[0].DispatchDeadline.Equal(*day(3)) || !pending[1].DispatchDeadline.Equal(*day(12)) {
		t.Errorf("pending not ordered by deadline: %v, %v", pending[0].DispatchDeadline, pending[1].DispatchDeadline)
	}
	if pending[2].DispatchDeadline != nil {
		t.Errorf("undated shipment should sort last, got %v", pending[2].DispatchDeadline)
	}
	if pending[1].Sale == nil || pending[1].Sale.OrderID != "ORD-10" || pending[1].Sale.BuyerName != "Sam" {
		t.Errorf("sale not expanded: %+v", pending[1].Sale)
	}

	count, err := svc.Shipments.CountPending(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("CountPending = %d, want 3", count)
	}

	limited, err := svc.Shipments.Find(ctx, ListOptions{
		Filters: []Filter{In("status", model.ShipmentShipped, model.ShipmentDelivered)},
		Order:   []Order{Asc("dispatch_deadline")},
		Limit:   1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 || limited[0].Status != model.ShipmentShipped {
		t.Errorf("in-list filter = %+v", limited)
	}
}

func TestShipmentUpdate(t *testing.T) {
	svc := newTestService(t).Shipments

	shipment := &model.Shipment{}
	if err := svc.Create(ctx, shipment); err != nil {
		t.Fatal(err)
	}
	if shipment.Status != model.ShipmentPendingLabel {
		t.Errorf("default status = %q", shipment.Status)
	}

	shipped := utils.Today()
	got, err := svc.Update(ctx, shipment.ID, Fields{
		"status":          model.ShipmentShipped,
		"tracking_number": "TRK1",
		"carrier":         "Royal Mail",
		"shipped_date":    &shipped,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != model.ShipmentShipped || got.TrackingNumber != "TRK1" || got.ShippedDate == nil {
		t.Errorf("update not applied: %+v", got)
	}

	list, err := svc.List(ctx, ShipmentFilter{Status: model.ShipmentShipped})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("shipped list = %d rows", len(list))
	}
	if err := svc.Delete(ctx, shipment.ID); err != nil {
		t.Fatal(err)
	}
}
