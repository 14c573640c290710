package pages

import (
	"github.com/gin-gonic/gin"

	"resell-dashboard/model"
	"resell-dashboard/services"
)

// Dashboard GET /
func (ctl *Controller) Dashboard(c *gin.Context) {
	overview, err := ctl.svc.Dashboard.Overview(c.Request.Context())
	if err != nil {
		ctl.readFailed(c, "dashboard", err)
		overview = services.DashboardOverview{
			RecentSales:     []model.Sale{},
			RecentInventory: []model.InventoryItem{},
			PendingTasks:    []model.Task{},
		}
	}
	ctl.render(c, "dashboard.html", "dashboard", gin.H{"overview": overview})
}
