package product

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-market-api/internal/pkg/apperror"
	"go-market-api/internal/pkg/response"
)

type Handler struct {
	service    Service
	variations VariationsService
}

func NewHandler(svc Service, variations VariationsService) *Handler {
	return &Handler{service: svc, variations: variations}
}

// GET /products
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "24"))

	res, err := h.service.List(c.Request.Context(), int32(page), int32(limit))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// GET /products/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	res, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// GET /products/:productId/variations
func (h *Handler) LoadVariations(c *gin.Context) {
	res, err := h.variations.Load(c.Request.Context(), c.Param("productId"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "", res)
}

// PUT /products/:productId/variations
func (h *Handler) SaveVariations(c *gin.Context) {
	var req SaveVariationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.Wrap(err, apperror.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		httpErr := apperror.ToHTTP(appErr)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	if err := h.variations.Save(c.Request.Context(), c.Param("productId"), req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "variations saved", nil)
}
