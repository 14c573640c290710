package pages

import (
	"github.com/gin-gonic/gin"

	"resell-dashboard/inout"
	"resell-dashboard/pkg/session"
)

// Settings GET /settings
func (ctl *Controller) Settings(c *gin.Context) {
	settings, err := ctl.svc.Settings.All(c.Request.Context())
	if err != nil {
		ctl.readFailed(c, "settings", err)
		settings = map[string]string{}
	}
	ctl.render(c, "settings.html", "settings", gin.H{"settings": settings})
}

// UpdateSettings POST /settings/update
func (ctl *Controller) UpdateSettings(c *gin.Context) {
	const back = "/settings"

	var req inout.UpdateSettingsReq
	if !bind(c, &req, back) {
		return
	}
	values := req.Values()
	if len(values) == 0 {
		done(c, session.FlashInfo, "Nothing to update.", back)
		return
	}
	if err := ctl.svc.Settings.SetMany(c.Request.Context(), values); err != nil {
		ctl.failed(c, "save settings", err, back)
		return
	}
	done(c, session.FlashSuccess, "Settings saved.", back)
}
