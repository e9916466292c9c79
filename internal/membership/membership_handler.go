package membership

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
		logger:  zap.L().Named("membership_handler"),
	}
}

func (h *Handler) List(c *gin.Context) {
	var query ListMembersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	members, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.writeServiceError(c, err, "failed to list members")
		return
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 || limit > 200 {
		limit = 50
	}

	total := len(members)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	out := make([]MemberResponse, 0, end-start)
	for _, m := range members[start:end] {
		out = append(out, toMemberResponse(m))
	}

	meta := response.NewPaginationMeta(page, limit, int64(total))
	c.JSON(http.StatusOK, response.Success(out, &meta))
}

func (h *Handler) Rename(c *gin.Context) {
	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	res, err := h.service.Rename(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "failed to rename member")
		return
	}

	c.JSON(http.StatusOK, response.Success(res, nil))
}

func (h *Handler) Recategorize(c *gin.Context) {
	var req RecategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	res, err := h.service.Recategorize(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "failed to recategorize member")
		return
	}

	c.JSON(http.StatusOK, response.Success(res, nil))
}

func (h *Handler) BulkRecategorize(c *gin.Context) {
	var req BulkRecategorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	res, err := h.service.BulkRecategorize(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "failed to bulk recategorize")
		return
	}

	c.JSON(http.StatusOK, response.Success(res, nil))
}

func (h *Handler) Import(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.MapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Error(appErr))
		return
	}

	res, err := h.service.Import(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err, "failed to import members")
		return
	}

	c.JSON(http.StatusCreated, response.Success(res, nil))
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

func toMemberResponse(m Member) MemberResponse {
	out := MemberResponse{
		ID:       m.ID.String(),
		Name:     m.Name,
		Category: m.Category,
	}
	if m.RecordedAt != nil {
		out.RecordedAt = m.RecordedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return out
}
