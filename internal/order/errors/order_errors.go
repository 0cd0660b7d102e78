package ordererrors

import (
	"net/http"

	"go-market-api/internal/pkg/apperror"
)

var (
	ErrCartEmpty = apperror.New(
		apperror.CodeInvalidState,
		"cart is empty",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid order id format",
		http.StatusBadRequest,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"order not found",
		http.StatusNotFound,
	)

	ErrCheckoutFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to place order",
		http.StatusInternalServerError,
	)
)
