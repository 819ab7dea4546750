package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"luct-report/backend/pkg/jwt"
	"luct-report/backend/pkg/redis"
	"luct-report/backend/pkg/response"
)

// ClaimsKey gin.Context 中存放 *jwt.Claims 的键
const ClaimsKey = "claims"

// authenticate 解析 Authorization: Bearer <token>
// claims 与 msg 均为空表示匿名请求；msg 非空表示凭证无效
func authenticate(c *gin.Context, jwtMgr *jwt.Manager, rdb *redis.Client) (*jwt.Claims, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return nil, "Invalid authorization header"
	}

	claims, err := jwtMgr.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, "Token expired"
		}
		return nil, "Invalid token"
	}

	// Redis 不可用时降级放行
	if rdb != nil {
		revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
		if err == nil && revoked {
			return nil, "Token revoked"
		}
	}

	return claims, ""
}

// JWTAuth 必须认证：缺少或无效的 Token 一律 401
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, msg := authenticate(c, jwtMgr, rdb)
		if claims == nil {
			if msg == "" {
				msg = "Authorization required"
			}
			response.Unauthorized(c, msg)
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// OptionalJWTAuth 可选认证：未携带 Token 按匿名处理，携带但无效仍返回 401
func OptionalJWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, msg := authenticate(c, jwtMgr, rdb)
		if msg != "" {
			response.Unauthorized(c, msg)
			c.Abort()
			return
		}

		if claims != nil {
			c.Set(ClaimsKey, claims)
		}
		c.Next()
	}
}

// GetClaims 读取认证中间件注入的声明；匿名请求返回 nil
func GetClaims(c *gin.Context) *jwt.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*jwt.Claims)
	return claims
}
