package middlewares

import (
	"log/slog"
	"runtime/debug"

	"github.com/Erebuz/3-api-validator/internal/domain"
	"github.com/gin-gonic/gin"
)

func RecoveryLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("PANIC CAUGHT",
					"panic", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"client_ip", c.ClientIP(),
				)

				// Выводим стек трейс отдельно для читаемости
				log.Error("Stack trace:",
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(domain.StatusInternalError, gin.H{
					"error": domain.StatusText(domain.StatusInternalError),
					"code":  domain.StatusInternalError,
				})
			}
		}()
		c.Next()
	}
}
