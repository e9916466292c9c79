package membershiperrors

import (
	"go-chms/internal/shared/apperror"
	"net/http"
)

var (
	ErrMemberNotFound = apperror.New(
		"MEMBER_NOT_FOUND",
		"No member exists with that name",
		http.StatusNotFound,
	)

	ErrDuplicateName = apperror.New(
		"DUPLICATE_NAME",
		"Another member already uses that name",
		http.StatusConflict,
	)

	ErrUnknownCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown category",
		http.StatusBadRequest,
	)
)
