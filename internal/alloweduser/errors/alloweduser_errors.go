package alloweduserrors

import (
	"go-chms/internal/shared/apperror"
	"net/http"
)

var (
	ErrUserExists = apperror.New(
		apperror.CodeConflict,
		"That email is already on the access list",
		http.StatusConflict,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"No access-list entry exists for that email",
		http.StatusNotFound,
	)

	ErrCannotRemoveSelf = apperror.New(
		"CANNOT_REMOVE_SELF",
		"You cannot remove your own access",
		http.StatusForbidden,
	)

	ErrUnknownRole = apperror.New(
		apperror.CodeInvalidInput,
		"Role must be user or admin",
		http.StatusBadRequest,
	)
)
