package attendanceerrors

import (
	"go-chms/internal/shared/apperror"
	"net/http"
)

var (
	ErrDuplicateAttendance = apperror.New(
		apperror.CodeConflict,
		"Attendance already recorded for this member, service and date",
		http.StatusConflict,
	)

	ErrMemberRequired = apperror.New(
		"MEMBER_REQUIRED",
		"Only administrators can add new members; select an existing member",
		http.StatusForbidden,
	)

	ErrUnknownCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown category",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrServiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"No attendance records exist for this service",
		http.StatusNotFound,
	)
)
