package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/auth"
	"github.com/Xushengqwer/forum_service/constant"
	"github.com/Xushengqwer/forum_service/models/entities"
	"github.com/Xushengqwer/forum_service/models/enums"
	"github.com/Xushengqwer/forum_service/myErrors"
	"github.com/Xushengqwer/forum_service/response"
)

// IdentityResolver 把请求携带的令牌解析为用户实体。
type IdentityResolver interface {
	ResolveToken(ctx context.Context, token string) (*entities.User, error)
}

// ExtractToken 依次读取 token 头与 Authorization: Bearer。
func ExtractToken(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader("token")); token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// Authenticate 解析身份并写入上下文，失败时直接返回 401。
func Authenticate(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			response.Failure(c, myErrors.NewUnauthorized("缺少登录令牌"))
			return
		}
		user, err := resolver.ResolveToken(c.Request.Context(), token)
		if err != nil {
			response.Failure(c, err)
			return
		}
		c.Set(constant.ContextUserKey, user)
		c.Next()
	}
}

// RequireRole 需放在 Authenticate 之后
func RequireRole(role enums.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Authorize(CurrentUser(c), role); err != nil {
			response.Failure(c, err)
			return
		}
		c.Next()
	}
}

// CurrentUser 取出 Authenticate 写入的用户，未登录返回 nil。
func CurrentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(constant.ContextUserKey)
	if !exists {
		return nil
	}
	user, _ := value.(*entities.User)
	return user
}
