package method

import (
	"fmt"
	"log/slog"

	"github.com/Erebuz/3-api-validator/internal/domain"
	"github.com/Erebuz/3-api-validator/internal/usecases/scoring"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

type Controller struct {
	Scoring *scoring.Service
	Log     *slog.Logger
}

func New(scoringService *scoring.Service, log *slog.Logger) *Controller {
	return &Controller{
		Scoring: scoringService,
		Log:     log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/method", c.handleMethod)
}

func (c *Controller) handleMethod(ctx *gin.Context) {
	rctx := &scoring.RequestContext{RequestID: requestID(ctx)}

	var body map[string]any
	if err := ctx.ShouldBindJSON(&body); err != nil {
		c.Log.Warn("failed to parse request body",
			"error", err,
			"request_id", rctx.RequestID,
		)
		ctx.JSON(domain.StatusBadRequest, ErrorResponse{
			Error: domain.StatusText(domain.StatusBadRequest),
			Code:  domain.StatusBadRequest,
		})
		return
	}

	payload, code := c.Scoring.HandleMethod(ctx.Request.Context(), rctx, body)

	if code == domain.StatusOK {
		c.Log.Info("method handled",
			"request_id", rctx.RequestID,
			"has", rctx.Has,
			"nclients", rctx.NClients,
		)
		ctx.JSON(code, SuccessResponse{Response: payload, Code: code})
		return
	}

	message, _ := payload.(string)
	if message == "" {
		message = domain.StatusText(code)
	}

	c.Log.Warn("method rejected",
		"request_id", rctx.RequestID,
		"code", code,
		"error", message,
		"has", rctx.Has,
		"nclients", rctx.NClients,
	)
	ctx.JSON(code, ErrorResponse{Error: message, Code: code})
}

// requestID идентификатор запроса: из заголовка или сгенерированный.
func requestID(ctx *gin.Context) string {
	if id := ctx.GetHeader(requestIDHeader); id != "" {
		return id
	}
	return fmt.Sprintf("%x", uuid.New())
}
