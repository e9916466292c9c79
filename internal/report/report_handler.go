package report

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
		logger:  zap.L().Named("report_handler"),
	}
}

func (h *Handler) Download(c *gin.Context) {
	serviceName := c.Param("serviceName")
	format := c.DefaultQuery("format", FormatDocx)

	export, err := h.service.Generate(c.Request.Context(), serviceName, format)
	if err != nil {
		logger := contextutil.GetLogger(c.Request.Context(), h.logger)
		appErr := apperror.ToHTTP(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.Error("failed to generate report", zap.Error(err))
		} else {
			logger.Warn("failed to generate report", zap.String("code", appErr.Code))
		}
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK, export.ContentType, export.Data)
}
