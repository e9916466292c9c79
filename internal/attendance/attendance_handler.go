package attendance

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
		logger:  zap.L().Named("attendance_handler"),
	}
}

func (h *Handler) Add(c *gin.Context) {
	var req AddAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	record, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "failed to add attendance")
		return
	}

	c.JSON(http.StatusCreated, response.Success(toAttendanceResponse(record), nil))
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, "failed to list services")
		return
	}

	c.JSON(http.StatusOK, response.Success(services, nil))
}

func (h *Handler) DeleteService(c *gin.Context) {
	serviceName := c.Param("serviceName")

	removed, err := h.service.DeleteService(c.Request.Context(), serviceName)
	if err != nil {
		h.writeServiceError(c, err, "failed to delete service")
		return
	}

	c.JSON(http.StatusOK, response.Success(DeleteServiceResponse{
		ServiceName: serviceName,
		Removed:     removed,
	}, nil))
}

func (h *Handler) writeServiceError(c *gin.Context, err error, msg string) {
	logger := contextutil.GetLogger(c.Request.Context(), h.logger)
	appErr := apperror.ToHTTP(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
	} else {
		logger.Warn(msg, zap.String("code", appErr.Code))
	}
	c.JSON(appErr.HTTPStatus, response.Error(appErr))
}

func toAttendanceResponse(a *Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Category:    a.Category,
		ServiceName: a.ServiceName,
		Date:        a.DateKey(),
		CreatedAt:   a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
