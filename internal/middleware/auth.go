package middleware

import (
	"peerlearn_backend/internal/config"
	"peerlearn_backend/internal/util"
	"peerlearn_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

type ActivityRecorder interface {
	RecordActivity(userID string) error
}

// ActivityMiddleware feeds the streak tracker without blocking the request.
// The recorder only writes the streak columns, so it is safe to run
// alongside the handler's own user updates.
func ActivityMiddleware(recorder ActivityRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims != nil {
			go func(userID string) {
				if err := recorder.RecordActivity(userID); err != nil {
					logger.Log.Warn("Failed to record activity",
						zap.String("user_id", userID), zap.Error(err))
				}
			}(claims.UserID)
		}
		c.Next()
	}
}
