package producterrors

import (
	"net/http"

	"go-market-api/internal/pkg/apperror"
)

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid product id format",
		http.StatusBadRequest,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"product not found",
		http.StatusNotFound,
	)

	ErrInvalidSelection = apperror.New(
		apperror.CodeInvalidInput,
		"selection must contain exactly one option per variation type",
		http.StatusUnprocessableEntity,
	)

	ErrVariationsFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to save product variations",
		http.StatusInternalServerError,
	)
)
