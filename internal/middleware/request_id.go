package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ==================== 请求 ID ====================

// RequestIDHeader 请求 ID 透传头
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID 请求 ID 中间件
// 调用方未携带时生成 uuid，注入 request context 并回写响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), requestIDKey{}, id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID 从 context 取请求 ID，不存在返回空串
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
