package pages

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"resell-dashboard/inout"
	"resell-dashboard/model"
	"resell-dashboard/pkg/export"
	"resell-dashboard/pkg/session"
	"resell-dashboard/services"
	"resell-dashboard/utils"
)

// Sales GET /sales
func (ctl *Controller) Sales(c *gin.Context) {
	var req inout.SaleListReq
	if !bindQuery(c, &req) {
		req = inout.SaleListReq{}
	}

	sales, err := ctl.svc.Sales.List(c.Request.Context(), req.Filter())
	if err != nil {
		ctl.readFailed(c, "sales", err)
		sales = []model.Sale{}
	}

	revenue, profit := decimal.Zero, decimal.Zero
	for _, s := range sales {
		revenue = revenue.Add(s.SalePrice)
		profit = profit.Add(s.NetProfit)
	}

	ctl.render(c, "sales.html", "sales", gin.H{
		"sales":         sales,
		"platforms":     model.Platforms,
		"filter":        req,
		"total_revenue": revenue,
		"total_profit":  profit,
	})
}

func (ctl *Controller) saleForm(c *gin.Context, sale *model.Sale, edit bool) {
	data := gin.H{
		"title":           "Record sale",
		"action":          "/sales/add",
		"is_edit":         edit,
		"sale":            sale,
		"platforms":       model.Platforms,
		"payout_statuses": model.PayoutStatuses,
		"today":           utils.Today().Format(utils.DateFormat),
		"available":       []model.InventoryItem{},
	}
	if edit {
		data["title"] = "Edit order " + sale.OrderID
		data["action"] = "/sales/edit/" + sale.ID
	} else {
		items, err := ctl.svc.Inventory.List(c.Request.Context(), services.InventoryFilter{Status: model.ListingListed, Limit: 500})
		if err != nil {
			ctl.readFailed(c, "inventory", err)
		} else {
			data["available"] = items
		}
	}
	ctl.render(c, "sales_form.html", "sales", data)
}

// AddSaleForm GET /sales/add
func (ctl *Controller) AddSaleForm(c *gin.Context) {
	ctl.saleForm(c, &model.Sale{}, false)
}

// AddSale POST /sales/add
func (ctl *Controller) AddSale(c *gin.Context) {
	const back = "/sales/add"

	var req inout.AddSaleReq
	if !bind(c, &req, back) {
		return
	}
	sale, err := req.ToModel()
	if err != nil {
		done(c, session.FlashWarning, err.Error(), back)
		return
	}

	sku := req.SKU()
	linked, err := ctl.svc.Sales.Create(c.Request.Context(), sale, sku)
	switch {
	case err != nil:
		ctl.failed(c, "record the sale", err, back)
	case linked != nil:
		done(c, session.FlashSuccess, fmt.Sprintf("Recorded order %s and marked %s as sold.", sale.OrderID, linked.SKU), "/sales")
	case sku != "":
		done(c, session.FlashWarning, fmt.Sprintf("Recorded order %s, but no inventory item has SKU %s.", sale.OrderID, sku), "/sales")
	default:
		done(c, session.FlashSuccess, fmt.Sprintf("Recorded order %s.", sale.OrderID), "/sales")
	}
}

// EditSaleForm GET /sales/edit/:id
func (ctl *Controller) EditSaleForm(c *gin.Context) {
	sale, err := ctl.svc.Sales.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctl.missing(c, "sale", err, "/sales")
		return
	}
	ctl.saleForm(c, sale, true)
}

// EditSale POST /sales/edit/:id
func (ctl *Controller) EditSale(c *gin.Context) {
	id := c.Param("id")
	back := "/sales/edit/" + id

	var req inout.EditSaleReq
	if !bind(c, &req, back) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		done(c, session.FlashWarning, err.Error(), back)
		return
	}

	sale, err := ctl.svc.Sales.Update(c.Request.Context(), id, fields)
	switch {
	case errors.Is(err, services.ErrNotFound):
		done(c, session.FlashWarning, "That sale no longer exists.", "/sales")
	case err != nil:
		ctl.failed(c, "update the sale", err, back)
	default:
		done(c, session.FlashSuccess, fmt.Sprintf("Updated order %s.", sale.OrderID), "/sales")
	}
}

// DeleteSale POST /sales/delete/:id
func (ctl *Controller) DeleteSale(c *gin.Context) {
	ctl.remove(c, "sale", ctl.svc.Sales.Delete, "/sales")
}

// ExportSales GET /sales/export
func (ctl *Controller) ExportSales(c *gin.Context) {
	sales, err := ctl.svc.Sales.List(c.Request.Context(), services.SaleFilter{Limit: export.MaxRows})
	if err != nil {
		ctl.failed(c, "export sales", err, "/sales")
		return
	}
	var buf bytes.Buffer
	if err := export.WriteSales(&buf, sales); err != nil {
		ctl.failed(c, "export sales", err, "/sales")
		return
	}
	attachment(c, export.SalesFileName(utils.Now()), buf.Bytes())
}
