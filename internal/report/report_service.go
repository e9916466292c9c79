package report

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"go-chms/internal/attendance"
	"go-chms/internal/audit"
	"go-chms/internal/shared/apperror"
	"go-chms/internal/shared/contextutil"
)

const (
	FormatDocx = "docx"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var ErrUnknownFormat = apperror.New(
	apperror.CodeInvalidInput,
	"Unsupported export format",
	http.StatusBadRequest,
)

var contentTypes = map[string]string{
	FormatDocx: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FormatCSV:  "text/csv",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Export is a rendered report ready to stream to the client.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// AttendanceSource provides the records a report is projected from.
type AttendanceSource interface {
	FindAll(ctx context.Context) ([]attendance.Attendance, error)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, serviceName, format string) (*Export, error)
}

type service struct {
	source   AttendanceSource
	recorder audit.Recorder
	logger   *zap.Logger
}

func NewService(source AttendanceSource, recorder audit.Recorder) Service {
	return &service{
		source:   source,
		recorder: recorder,
		logger:   zap.L().Named("report_service"),
	}
}

func (s *service) Generate(ctx context.Context, serviceName, format string) (*Export, error) {
	if format == "" {
		format = FormatDocx
	}
	contentType, ok := contentTypes[format]
	if !ok {
		return nil, ErrUnknownFormat
	}

	records, err := s.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	model, err := Project(records, serviceName)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case FormatDocx:
		err = WriteDocx(&buf, model)
	case FormatCSV:
		err = WriteCSV(&buf, model)
	case FormatXLSX:
		err = WriteXLSX(&buf, model)
	}
	if err != nil {
		return nil, err
	}

	if err := s.recorder.Record(ctx, audit.ReportExported{
		ServiceName: serviceName,
		Format:      format,
	}); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("audit record failed", zap.Error(err))
	}

	return &Export{
		Filename:    exportFilename(serviceName, format),
		ContentType: contentType,
		Data:        buf.Bytes(),
	}, nil
}

func exportFilename(serviceName, format string) string {
	base := strings.ReplaceAll(strings.TrimSpace(serviceName), " ", "_")
	if base == "" {
		base = "report"
	}
	return base + "_attendance." + format
}
