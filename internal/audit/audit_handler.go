package audit

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-chms/internal/shared/apperror"
	"go-chms/internal/shared/contextutil"
	"go-chms/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
		logger:  zap.L().Named("audit_handler"),
	}
}

func (h *Handler) List(c *gin.Context) {
	var query ListLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	logs, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		logger := contextutil.GetLogger(c.Request.Context(), h.logger)
		logger.Error("failed to list audit logs", zap.Error(err))
		appErr := apperror.ToHTTP(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	out := make([]LogResponse, 0, len(logs))
	for _, entry := range logs {
		out = append(out, LogResponse{
			ID:         entry.ID.String(),
			Action:     entry.Action,
			Details:    entry.Details,
			Actor:      entry.Actor,
			OccurredAt: entry.OccurredAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			Attributes: []byte(entry.Attributes),
		})
	}

	c.JSON(http.StatusOK, response.Success(out, nil))
}
