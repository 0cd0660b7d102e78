package order

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-market-api/internal/pkg/apperror"
	"go-market-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// POST /checkout
func (h *Handler) Checkout(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	res, err := h.service.Checkout(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, "order placed", res)
}

// GET /orders
func (h *Handler) Index(c *gin.Context) {
	userID := c.GetString("user_id_validated")
	page := queryInt32(c, "page", 1)
	limit := queryInt32(c, "limit", 20)

	res, err := h.service.List(c.Request.Context(), userID, page, limit)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// GET /orders/:orderId
func (h *Handler) Show(c *gin.Context) {
	userID := c.GetString("user_id_validated")

	res, err := h.service.Detail(c.Request.Context(), userID, c.Param("orderId"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

func queryInt32(c *gin.Context, key string, fallback int32) int32 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
