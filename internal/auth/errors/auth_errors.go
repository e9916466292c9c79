package autherrors

import (
	"go-chms/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidCredentials = apperror.New(
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		http.StatusUnauthorized,
	)

	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"An account already exists for that email",
		http.StatusConflict,
	)

	ErrAccessPending = apperror.New(
		"ACCESS_PENDING",
		"Your email is not on the access list yet; contact an administrator",
		http.StatusForbidden,
	)

	ErrInvalidResetToken = apperror.New(
		"INVALID_RESET_TOKEN",
		"Reset token is invalid or has already been used",
		http.StatusBadRequest,
	)

	ErrResetTokenExpired = apperror.New(
		"RESET_TOKEN_EXPIRED",
		"Reset token has expired; request a new one",
		http.StatusBadRequest,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired token",
		http.StatusUnauthorized,
	)
)
