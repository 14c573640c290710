package pages

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resell-dashboard/inout"
	"resell-dashboard/pkg/monitoring"
	"resell-dashboard/pkg/security"
	"resell-dashboard/pkg/session"
)

// LoginForm GET /login
func (ctl *Controller) LoginForm(c *gin.Context) {
	if !ctl.auth.Enabled() || session.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	ctl.render(c, "login.html", "", gin.H{"next": safeNext(c.Query("next"))})
}

// Login POST /login
func (ctl *Controller) Login(c *gin.Context) {
	if !ctl.auth.Enabled() {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var req inout.LoginReq
	if !bind(c, &req, "/login") {
		return
	}
	ok := security.CheckPasswordHash(req.Password, ctl.auth.PasswordHash)
	monitoring.RecordLogin(ok)
	if !ok {
		ctl.log.Warn("dashboard login failed", zap.String("ip", c.ClientIP()))
		done(c, session.FlashDanger, "Incorrect password.", "/login?next="+url.QueryEscape(safeNext(req.Next)))
		return
	}

	if err := session.SetAuthenticated(c, true); err != nil {
		ctl.failed(c, "log in", err, "/login")
		return
	}
	done(c, session.FlashSuccess, "Welcome back.", safeNext(req.Next))
}

// Logout POST /logout
func (ctl *Controller) Logout(c *gin.Context) {
	if err := session.SetAuthenticated(c, false); err != nil {
		ctl.log.Warn("clear session", zap.Error(err))
	}
	done(c, session.FlashInfo, "Logged out.", "/login")
}

// safeNext only allows local redirect targets.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
