// Package api serves the JSON endpoints.
package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resell-dashboard/inout"
	"resell-dashboard/pkg/jwt"
	"resell-dashboard/pkg/monitoring"
	"resell-dashboard/pkg/response"
	"resell-dashboard/pkg/security"
	"resell-dashboard/services"
)

const (
	tokenSubject = "dashboard"
	tokenScope   = "api"
)

// Controller JSON API控制器
type Controller struct {
	svc          *services.Service
	log          *zap.Logger
	passwordHash string
	tokens       *jwt.Manager
}

// New builds the API controller. tokens may be nil when login is disabled.
func New(svc *services.Service, log *zap.Logger, passwordHash string, tokens *jwt.Manager) *Controller {
	return &Controller{svc: svc, log: log, passwordHash: passwordHash, tokens: tokens}
}

// Token POST /api/token
func (ctl *Controller) Token(c *gin.Context) {
	if ctl.tokens == nil || ctl.passwordHash == "" {
		response.Error(c, response.NOT_FOUND, "authentication is disabled")
		return
	}

	var req inout.TokenReq
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, response.INVALID_PARAMS, inout.ValidationMessage(err))
		return
	}
	ok := security.CheckPasswordHash(req.Password, ctl.passwordHash)
	monitoring.RecordLogin(ok)
	if !ok {
		response.Error(c, response.AUTH_ERROR, "incorrect password")
		return
	}

	token, expiresAt, err := ctl.tokens.GenerateToken(tokenSubject, tokenScope)
	if err != nil {
		ctl.log.Error("generate token", zap.Error(err))
		response.Error(c, response.INTERNAL_ERROR)
		return
	}
	response.Success(c, inout.TokenRes{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}

// Dashboard GET /api/dashboard
func (ctl *Controller) Dashboard(c *gin.Context) {
	stats, err := ctl.svc.Dashboard.Stats(c.Request.Context())
	if err != nil {
		ctl.log.Error("dashboard stats", zap.Error(err))
		response.Error(c, response.INTERNAL_ERROR, "could not load dashboard stats")
		return
	}
	response.Success(c, stats)
}
