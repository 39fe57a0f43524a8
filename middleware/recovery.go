package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/forum_service/response"
)

// Recovery 捕获 panic 并以统一信封返回 500。
func Recovery(logger *core.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("请求处理发生 panic",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Envelope{
					Status:  false,
					Message: "服务器内部错误",
					Errors:  []string{fmt.Sprint(r)},
				})
			}
		}()
		c.Next()
	}
}
