package services

import (
	"context"

	"resell-dashboard/model"
)

const (
	recentSalesLimit     = 5
	recentInventoryLimit = 8
	topPendingTasks      = 5
)

// DashboardStats are the headline KPIs.
type DashboardStats struct {
	Inventory        model.InventoryStats `json:"inventory"`
	Sales30d         model.SalesStats     `json:"sales_30d"`
	PendingShipments int64                `json:"pending_shipments"`
	OpenReturns      int64                `json:"open_returns"`
	PendingTasks     int64                `json:"pending_tasks"`
}

// DashboardOverview is everything the dashboard page shows.
type DashboardOverview struct {
	Stats           DashboardStats        `json:"stats"`
	RecentSales     []model.Sale          `json:"recent_sales"`
	RecentInventory []model.InventoryItem `json:"recent_inventory"`
	PendingTasks    []model.Task          `json:"pending_tasks"`
}

type DashboardService struct {
	inventory *InventoryService
	sales     *SaleService
	shipments *ShipmentService
	returns   *ReturnService
	tasks     *TaskService
}

func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.Inventory, err = s.inventory.Stats(ctx); err != nil {
		return stats, err
	}
	if stats.Sales30d, err = s.sales.Stats(ctx, DefaultStatsDays); err != nil {
		return stats, err
	}
	if stats.PendingShipments, err = s.shipments.CountPending(ctx); err != nil {
		return stats, err
	}
	if stats.OpenReturns, err = s.returns.CountOpen(ctx); err != nil {
		return stats, err
	}
	if stats.PendingTasks, err = s.tasks.CountPending(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}

// Overview adds recent activity to the KPIs.
func (s *DashboardService) Overview(ctx context.Context) (DashboardOverview, error) {
	overview := DashboardOverview{
		RecentSales:     []model.Sale{},
		RecentInventory: []model.InventoryItem{},
		PendingTasks:    []model.Task{},
	}
	var err error

	if overview.Stats, err = s.Stats(ctx); err != nil {
		return overview, err
	}
	if overview.RecentSales, err = s.sales.List(ctx, SaleFilter{Limit: recentSalesLimit}); err != nil {
		return overview, err
	}
	if overview.RecentInventory, err = s.inventory.List(ctx, InventoryFilter{Limit: recentInventoryLimit}); err != nil {
		return overview, err
	}
	if overview.PendingTasks, err = s.tasks.Pending(ctx, topPendingTasks); err != nil {
		return overview, err
	}
	return overview, nil
}
