package services

import (
	"testing"

	"resell-dashboard/model"
)

func TestDashboardOverview(t *testing.T) {
	svc := newTestService(t)

	for _, sku := range []string{"D1", "D2"} {
		if err := svc.Inventory.Create(ctx, exampleItem(sku)); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := svc.Sales.Create(ctx, exampleSale("ORD-D"), "D1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.Shipments.Create(ctx, &model.Shipment{}); err != nil {
		t.Fatal(err)
	}
	if err := svc.Returns.Create(ctx, &model.ReturnCase{OrderID: "ORD-D"}); err != nil {
		t.Fatal(err)
	}
	if err := svc.Tasks.Create(ctx, &model.Task{Title: "Reply to buyer"}); err != nil {
		t.Fatal(err)
	}

	overview, err := svc.Dashboard.Overview(ctx)
	if err != nil {
		t.Fatal(err)
	}
	stats := overview.Stats
	if stats.Inventory.Total != 2 || stats.Inventory.Sold != 1 || stats.Inventory.Draft != 1 {
		t.Errorf("inventory stats = %+v", stats.Inventory)
	}
	if stats.Sales30d.TotalSales != 1 || stats.Sales30d.Days != 30 {
		t.Errorf("sales stats = %+v", stats.Sales30d)
	}
	if stats.PendingShipments != 1 || stats.OpenReturns != 1 || stats.PendingTasks != 1 {
		t.Errorf("counts = %+v", stats)
	}
	if len(overview.RecentSales) != 1 || len(overview.RecentInventory) != 2 || len(overview.PendingTasks) != 1 {
		t.Errorf("recent activity = %d sales, %d items, %d tasks",
			len(overview.RecentSales), len(overview.RecentInventory), len(overview.PendingTasks))
	}
}
