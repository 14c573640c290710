// Package pages serves the server-rendered dashboard.
package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resell-dashboard/inout"
	"resell-dashboard/model"
	"resell-dashboard/pkg/session"
	"resell-dashboard/services"
	"resell-dashboard/utils"
)

// Controller serves the HTML pages, one per process.
type Controller struct {
	svc  *services.Service
	log  *zap.Logger
	auth Auth
}

// Auth holds the optional dashboard password.
type Auth struct {
	PasswordHash string
}

func (a Auth) Enabled() bool {
	return a.PasswordHash != ""
}

func New(svc *services.Service, log *zap.Logger, auth Auth) *Controller {
	return &Controller{svc: svc, log: log, auth: auth}
}

// render adds the shared template context to data.
func (ctl *Controller) render(c *gin.Context, name, active string, data gin.H) {
	settings, err := ctl.svc.Settings.All(c.Request.Context())
	if err != nil {
		ctl.log.Warn("load settings for template context", zap.Error(err))
		settings = map[string]string{}
	}

	page := gin.H{
		"app_name":      settingOr(settings, model.SettingAppName, model.DefaultAppName),
		"app_version":   settingOr(settings, model.SettingAppVersion, model.DefaultAppVersion),
		"currency":      settingOr(settings, model.SettingCurrency, model.DefaultCurrency),
		"current_year":  utils.Now().Year(),
		"active":        active,
		"authenticated": ctl.auth.Enabled() && session.IsAuthenticated(c),
	}
	for k, v := range data {
		page[k] = v
	}
	flashes, err := session.Flashes(c)
	if err != nil {
		ctl.log.Warn("drain flashes", zap.Error(err))
	}
	page["flashes"] = flashes

	c.HTML(http.StatusOK, name, page)
}

func settingOr(settings map[string]string, key, fallback string) string {
	if v := settings[key]; v != "" {
		return v
	}
	return fallback
}

// readFailed flashes a store failure on a page that still renders.
func (ctl *Controller) readFailed(c *gin.Context, what string, err error) {
	ctl.log.Error("read failed", zap.String("what", what), zap.String("path", c.Request.URL.Path), zap.Error(err))
	flash(c, session.FlashDanger, "Could not load "+what+". Please try again.")
}

// flash queues a message. A failed session save is attached to the request
// so RequestLogger reports it.
func flash(c *gin.Context, category, message string) {
	if err := session.AddFlash(c, category, message); err != nil {
		_ = c.Error(err)
	}
}

// done flashes and redirects after a mutation.
func done(c *gin.Context, category, message, location string) {
	flash(c, category, message)
	c.Redirect(http.StatusFound, location)
}

// failed logs a write failure and redirects with a danger flash.
func (ctl *Controller) failed(c *gin.Context, action string, err error, location string) {
	ctl.log.Error("write failed", zap.String("action", action), zap.String("path", c.Request.URL.Path), zap.Error(err))
	done(c, session.FlashDanger, "Could not "+action+". Please try again.", location)
}

// bind binds the form into obj, flashing a warning on invalid input.
func bind(c *gin.Context, obj interface{}, location string) bool {
	if err := c.ShouldBind(obj); err != nil {
		done(c, session.FlashWarning, inout.ValidationMessage(err), location)
		return false
	}
	return true
}

// bindQuery binds list filters, flashing a warning when they are invalid.
// Callers reset the filter and show everything in that case.
func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		flash(c, session.FlashWarning, inout.ValidationMessage(err))
		return false
	}
	return true
}
