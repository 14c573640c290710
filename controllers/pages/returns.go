package pages

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"resell-dashboard/inout"
	"resell-dashboard/model"
	"resell-dashboard/pkg/session"
	"resell-dashboard/services"
	"resell-dashboard/utils"
)

// Returns GET /returns
func (ctl *Controller) Returns(c *gin.Context) {
	var req inout.ReturnListReq
	if !bindQuery(c, &req) {
		req = inout.ReturnListReq{}
	}

	returns, err := ctl.svc.Returns.List(c.Request.Context(), req.Filter())
	if err != nil {
		ctl.readFailed(c, "returns", err)
		returns = []model.ReturnCase{}
	}

	ctl.render(c, "returns.html", "returns", gin.H{
		"returns":  returns,
		"statuses": model.ReturnStatuses,
		"filter":   req,
	})
}

// AddReturnForm GET /returns/add
func (ctl *Controller) AddReturnForm(c *gin.Context) {
	sales, err := ctl.svc.Sales.List(c.Request.Context(), services.SaleFilter{Limit: recentOrders})
	if err != nil {
		ctl.readFailed(c, "sales", err)
		sales = []model.Sale{}
	}
	ctl.render(c, "returns_form.html", "returns", gin.H{
		"sales":    sales,
		"statuses": model.ReturnStatuses,
		"today":    utils.Today().Format(utils.DateFormat),
	})
}

// AddReturn POST /returns/add
func (ctl *Controller) AddReturn(c *gin.Context) {
	const back = "/returns/add"

	var req inout.AddReturnReq
	if !bind(c, &req, back) {
		return
	}
	rc, err := req.ToModel()
	if err != nil {
		done(c, session.FlashWarning, err.Error(), back)
		return
	}
	if err := ctl.svc.Returns.Create(c.Request.Context(), rc); err != nil {
		ctl.failed(c, "open the return", err, back)
		return
	}
	done(c, session.FlashSuccess, fmt.Sprintf("Opened a return for order %s.", rc.OrderID), "/returns")
}

// UpdateReturn POST /returns/update/:id
func (ctl *Controller) UpdateReturn(c *gin.Context) {
	const back = "/returns"

	var req inout.UpdateReturnReq
	if !bind(c, &req, back) {
		return
	}

	_, err := ctl.svc.Returns.Update(c.Request.Context(), c.Param("id"), req.ToFields())
	switch {
	case errors.Is(err, services.ErrNotFound):
		done(c, session.FlashWarning, "That return no longer exists.", back)
	case err != nil:
		ctl.failed(c, "update the return", err, back)
	default:
		done(c, session.FlashSuccess, "Return updated.", back)
	}
}

// DeleteReturn POST /returns/delete/:id
func (ctl *Controller) DeleteReturn(c *gin.Context) {
	ctl.remove(c, "return", ctl.svc.Returns.Delete, "/returns")
}
