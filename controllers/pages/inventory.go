package pages

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resell-dashboard/inout"
	"resell-dashboard/model"
	"resell-dashboard/pkg/export"
	"resell-dashboard/pkg/session"
	"resell-dashboard/services"
	"resell-dashboard/utils"
)

var shippingPayers = []model.ShippingPayer{model.PaidByBuyer, model.PaidBySeller}

// Inventory GET /inventory
func (ctl *Controller) Inventory(c *gin.Context) {
	var req inout.InventoryListReq
	if !bindQuery(c, &req) {
		req = inout.InventoryListReq{}
	}

	ctx := c.Request.Context()
	items, err := ctl.svc.Inventory.List(ctx, req.Filter())
	if err != nil {
		ctl.readFailed(c, "inventory", err)
		items = []model.InventoryItem{}
	}
	brands, err := ctl.svc.Inventory.Brands(ctx)
	if err != nil {
		ctl.readFailed(c, "brands", err)
		brands = []string{}
	}

	ctl.render(c, "inventory.html", "inventory", gin.H{
		"items":    items,
		"brands":   brands,
		"statuses": model.ListingStatuses,
		"filter":   req,
	})
}

func (ctl *Controller) inventoryForm(c *gin.Context, item *model.InventoryItem, edit bool) {
	title, action := "Add item", "/inventory/add"
	if edit {
		title, action = "Edit "+item.SKU, "/inventory/edit/"+item.ID
	}
	ctl.render(c, "inventory_form.html", "inventory", gin.H{
		"title":     title,
		"action":    action,
		"is_edit":   edit,
		"item":      item,
		"statuses":  model.ListingStatuses,
		"platforms": model.Platforms,
		"payers":    shippingPayers,
	})
}

// AddInventoryForm GET /inventory/add
func (ctl *Controller) AddInventoryForm(c *gin.Context) {
	ctl.inventoryForm(c, &model.InventoryItem{}, false)
}

// AddInventory POST /inventory/add
func (ctl *Controller) AddInventory(c *gin.Context) {
	const back = "/inventory/add"

	var req inout.AddInventoryReq
	if !bind(c, &req, back) {
		return
	}
	item, err := req.ToModel()
	if err != nil {
		done(c, session.FlashWarning, err.Error(), back)
		return
	}

	err = ctl.svc.Inventory.Create(c.Request.Context(), item)
	switch {
	case errors.Is(err, services.ErrDuplicateSKU):
		done(c, session.FlashWarning, fmt.Sprintf("SKU %s already exists.", item.SKU), back)
	case err != nil:
		ctl.failed(c, "add the item", err, back)
	default:
		done(c, session.FlashSuccess, fmt.Sprintf("Added %s.", item.SKU), "/inventory")
	}
}

// EditInventoryForm GET /inventory/edit/:id
func (ctl *Controller) EditInventoryForm(c *gin.Context) {
	item, err := ctl.svc.Inventory.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctl.missing(c, "item", err, "/inventory")
		return
	}
	ctl.inventoryForm(c, item, true)
}

// EditInventory POST /inventory/edit/:id
func (ctl *Controller) EditInventory(c *gin.Context) {
	id := c.Param("id")
	back := "/inventory/edit/" + id

	var req inout.EditInventoryReq
	if !bind(c, &req, back) {
		return
	}
	fields, err := req.ToFields()
	if err != nil {
		done(c, session.FlashWarning, err.Error(), back)
		return
	}

	item, err := ctl.svc.Inventory.Update(c.Request.Context(), id, fields)
	switch {
	case errors.Is(err, services.ErrNotFound):
		done(c, session.FlashWarning, "That item no longer exists.", "/inventory")
	case err != nil:
		ctl.failed(c, "update the item", err, back)
	default:
		done(c, session.FlashSuccess, fmt.Sprintf("Updated %s.", item.SKU), "/inventory")
	}
}

// DeleteInventory POST /inventory/delete/:id
func (ctl *Controller) DeleteInventory(c *gin.Context) {
	ctl.remove(c, "item", ctl.svc.Inventory.Delete, "/inventory")
}

// ExportInventory GET /inventory/export
func (ctl *Controller) ExportInventory(c *gin.Context) {
	items, err := ctl.svc.Inventory.List(c.Request.Context(), services.InventoryFilter{Limit: export.MaxRows})
	if err != nil {
		ctl.failed(c, "export inventory", err, "/inventory")
		return
	}
	var buf bytes.Buffer
	if err := export.WriteInventory(&buf, items); err != nil {
		ctl.failed(c, "export inventory", err, "/inventory")
		return
	}
	attachment(c, export.InventoryFileName(utils.Now()), buf.Bytes())
}

func attachment(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType+"; charset=utf-8", data)
}

// missing redirects when a record to edit cannot be loaded.
func (ctl *Controller) missing(c *gin.Context, what string, err error, location string) {
	if errors.Is(err, services.ErrNotFound) {
		done(c, session.FlashWarning, fmt.Sprintf("That %s no longer exists.", what), location)
		return
	}
	ctl.failed(c, "load the "+what, err, location)
}

// remove deletes the record named by the :id param and flashes the outcome.
func (ctl *Controller) remove(c *gin.Context, what string, del func(context.Context, string) error, location string) {
	err := del(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrNotFound):
		done(c, session.FlashWarning, fmt.Sprintf("That %s no longer exists.", what), location)
	case err != nil:
		ctl.failed(c, "delete the "+what, err, location)
	default:
		done(c, session.FlashSuccess, fmt.Sprintf("Deleted the %s.", what), location)
	}
}
