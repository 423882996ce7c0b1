package healthcheckController

import (
	"log/slog"

	"github.com/Erebuz/3-api-validator/internal/ports/store"
	"github.com/gin-gonic/gin"
)

type HealthCheckController struct {
	store store.Store
	log   *slog.Logger
}

func New(st store.Store, log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		store: st,
		log:   log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health базовая проверка (всегда возвращает 200)
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status": "ok",
	})
}

// ready проверка готовности (проверяет подключение к хранилищу)
func (c *HealthCheckController) ready(ctx *gin.Context) {
	if err := c.store.Ping(ctx.Request.Context()); err != nil {
		c.log.Error("store not ready", "error", err)
		ctx.JSON(503, gin.H{
			"status": "not ready",
			"error":  "store unavailable",
		})
		return
	}

	ctx.JSON(200, gin.H{
		"status": "ready",
	})
}
