package carterrors

import (
	"net/http"

	"go-market-api/internal/pkg/apperror"
)

var (
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"quantity must be at least 1",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidOptionID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid option id format",
		http.StatusBadRequest,
	)

	ErrStorageUnavailable = apperror.New(
		apperror.CodeUnavailable,
		"cart storage is unavailable",
		http.StatusServiceUnavailable,
	)
)
