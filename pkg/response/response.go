package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 统一错误码定义
const (
	SUCCESS           = 200
	ERROR             = 500
	INVALID_PARAMS    = 20001
	AUTH_ERROR        = 20002
	NOT_FOUND         = 20003
	TOO_MANY_REQUESTS = 20005
	INTERNAL_ERROR    = 20006
	UNAVAILABLE       = 20007
)

var codeMsg = map[int]string{
	SUCCESS:           "OK",
	ERROR:             "internal server error",
	INVALID_PARAMS:    "invalid parameters",
	AUTH_ERROR:        "authentication failed",
	NOT_FOUND:         "not found",
	TOO_MANY_REQUESTS: "too many requests",
	INTERNAL_ERROR:    "internal error",
	UNAVAILABLE:       "service unavailable",
}

var codeStatus = map[int]int{
	INVALID_PARAMS:    http.StatusBadRequest,
	AUTH_ERROR:        http.StatusUnauthorized,
	NOT_FOUND:         http.StatusNotFound,
	TOO_MANY_REQUESTS: http.StatusTooManyRequests,
	UNAVAILABLE:       http.StatusServiceUnavailable,
}

// Response 统一响应结构
type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	OriginUrl string      `json:"originUrl"`
}

// GetMsg 获取错误码对应的消息
func GetMsg(code int) string {
	if msg, ok := codeMsg[code]; ok {
		return msg
	}
	return codeMsg[ERROR]
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:      SUCCESS,
		Message:   GetMsg(SUCCESS),
		Data:      data,
		OriginUrl: c.Request.URL.Path,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message ...string) {
	msg := GetMsg(code)
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	status, ok := codeStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, Response{
		Code:      code,
		Message:   msg,
		Error:     "error",
		OriginUrl: c.Request.URL.Path,
	})
}

// Abort 中断请求并返回错误
func Abort(c *gin.Context, code int, message ...string) {
	Error(c, code, message...)
	c.Abort()
}
