package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	carterrors "go-market-api/internal/cart/errors"
	"go-market-api/internal/pkg/apperror"
	"go-market-api/internal/pkg/response"
)

const (
	guestCookieName   = "guest_cart_id"
	guestCookieMaxAge = 365 * 24 * 60 * 60
)

type Handler struct {
	service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{service: svc}
}

// ownerFrom resolves the request's cart owner. Authenticated callers are
// identified by the validated user id set by the optional-auth middleware;
// everyone else gets (or keeps) a guest token cookie.
func (h *Handler) ownerFrom(c *gin.Context) Owner {
	if raw := c.GetString("user_id"); raw != "" {
		if userID, err := uuid.Parse(raw); err == nil {
			return Owner{UserID: userID}
		}
	}

	token, err := c.Cookie(guestCookieName)
	if err != nil || token == "" {
		token = uuid.NewString()
		c.SetCookie(guestCookieName, token, guestCookieMaxAge, "/", "", false, true)
	}
	return Owner{GuestToken: token}
}

// GET /cart
func (h *Handler) Index(c *gin.Context) {
	session := h.service.Session(h.ownerFrom(c))
	ctx := c.Request.Context()

	res := CartResponse{
		Items:         session.Items(ctx),
		TotalQuantity: session.TotalQuantity(ctx),
		TotalPrice:    session.TotalPrice(ctx),
	}

	response.Success(c, http.StatusOK, "", res)
}

// POST /cart/items/:productId
func (h *Handler) Store(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid product id format", nil)
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.Wrap(err, apperror.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		httpErr := apperror.ToHTTP(appErr)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	quantity := int32(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	optionIDs, ok := parseOptionIDs(c, req.OptionIDs)
	if !ok {
		return
	}

	session := h.service.Session(h.ownerFrom(c))
	if err := session.AddItem(c.Request.Context(), productID, quantity, optionIDs); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, "item added to cart", nil)
}

// PATCH /cart/items/:productId
func (h *Handler) Update(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid product id format", nil)
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.Wrap(err, apperror.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		httpErr := apperror.ToHTTP(appErr)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	optionIDs, ok := parseOptionIDs(c, req.OptionIDs)
	if !ok {
		return
	}

	session := h.service.Session(h.ownerFrom(c))
	if err := session.UpdateItemQuantity(c.Request.Context(), productID, req.Quantity, optionIDs); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "cart updated", nil)
}

// DELETE /cart/items/:productId
func (h *Handler) Destroy(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid product id format", nil)
		return
	}

	var req RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.Wrap(err, apperror.CodeInvalidInput, "invalid request body", http.StatusBadRequest)
		httpErr := apperror.ToHTTP(appErr)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	optionIDs, ok := parseOptionIDs(c, req.OptionIDs)
	if !ok {
		return
	}

	session := h.service.Session(h.ownerFrom(c))
	if err := session.RemoveItem(c.Request.Context(), productID, optionIDs); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, "item removed from cart", nil)
}

// POST /cart/migrate
// Called once after login to fold the guest cart into the account cart.
func (h *Handler) Migrate(c *gin.Context) {
	raw := c.GetString("user_id_validated")
	userID, err := uuid.Parse(raw)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "user not authenticated", nil)
		return
	}

	token, err := c.Cookie(guestCookieName)
	if err != nil || token == "" {
		// No guest cart to migrate.
		response.Success(c, http.StatusOK, "", nil)
		return
	}

	if err := h.service.Migrate(c.Request.Context(), token, userID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	c.SetCookie(guestCookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, "cart migrated", nil)
}

func parseOptionIDs(c *gin.Context, raw []string) ([]uuid.UUID, bool) {
	if raw == nil {
		return nil, true
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			e := carterrors.ErrInvalidOptionID
			response.Error(c, e.HTTPStatus, e.Code, e.Message, s)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
