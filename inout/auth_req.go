package inout

import "time"

type LoginReq struct {
	Password string `form:"password" json:"password" binding:"required"`
	Next     string `form:"next" json:"-"`
}

type TokenReq struct {
	Password string `form:"password" json:"password" binding:"required"`
}

type TokenRes struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
