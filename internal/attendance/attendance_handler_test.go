package attendance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	attendanceerrors "go-chms/internal/attendance/errors"
)

type fakeService struct {
	addFn           func(ctx context.Context, req AddAttendanceRequest) (*Attendance, error)
	listServicesFn  func(ctx context.Context) ([]string, error)
	deleteServiceFn func(ctx context.Context, serviceName string) (int64, error)
}

func (f *fakeService) Add(ctx context.Context, req AddAttendanceRequest) (*Attendance, error) {
	return f.addFn(ctx, req)
}

func (f *fakeService) ListServices(ctx context.Context) ([]string, error) {
	return f.listServicesFn(ctx)
}

func (f *fakeService) DeleteService(ctx context.Context, serviceName string) (int64, error) {
	return f.deleteServiceFn(ctx, serviceName)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	r.POST("/attendances", h.Add)
	r.GET("/attendances/services", h.ListServices)
	r.DELETE("/attendances/services/:serviceName", h.DeleteService)
	return r
}

func TestAddHandlerCreated(t *testing.T) {
	svc := &fakeService{
		addFn: func(ctx context.Context, req AddAttendanceRequest) (*Attendance, error) {
			return &Attendance{Name: req.Name, Category: "L100", ServiceName: req.ServiceName}, nil
		},
	}
	r := setupRouter(svc)

	body := `{"name":"John Doe","service_name":"Sunday Service","date":"2026-03-01"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendances", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
	assert.Contains(t, w.Body.String(), "John Doe")
}

func TestAddHandlerValidation(t *testing.T) {
	r := setupRouter(&fakeService{})

	body := `{"service_name":"Sunday Service","date":"2026-03-01"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendances", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestAddHandlerDuplicateConflict(t *testing.T) {
	svc := &fakeService{
		addFn: func(ctx context.Context, req AddAttendanceRequest) (*Attendance, error) {
			return nil, attendanceerrors.ErrDuplicateAttendance
		},
	}
	r := setupRouter(svc)

	body := `{"name":"John Doe","service_name":"Sunday Service","date":"2026-03-01"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendances", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONFLICT")
}

func TestListServicesHandler(t *testing.T) {
	svc := &fakeService{
		listServicesFn: func(ctx context.Context) ([]string, error) {
			return []string{"Midweek", "Sunday Service"}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/attendances/services", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sunday Service")
}

func TestDeleteServiceHandlerNotFound(t *testing.T) {
	svc := &fakeService{
		deleteServiceFn: func(ctx context.Context, serviceName string) (int64, error) {
			return 0, attendanceerrors.ErrServiceNotFound
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/attendances/services/Ghost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
