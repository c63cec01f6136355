package api

import (
	"net/http"
	"strings"
	"time"

	"guarupark-checkout/internal/domain/checkout"
	reqdto "guarupark-checkout/internal/handler/dto/request"
	resdto "guarupark-checkout/internal/handler/dto/response"
	"guarupark-checkout/internal/handler/httperr"
	"guarupark-checkout/internal/pkg/errs"
	"guarupark-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	sessions commands.CheckoutCommands
	loc      *time.Location
}

func NewCheckoutHandler(sessions commands.CheckoutCommands, loc *time.Location) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions, loc: loc}
}

// @Summary Start checkout
// @Description Open a checkout session for a stay passed as query string or JSON
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.StartCheckoutRequest false "Stay"
// @Success 201 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} httperr.Response
// @Router /api/checkout/sessions [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	var req reqdto.StartCheckoutRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if c.Request.ContentLength > 0 && strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
			return
		}
	}

	s, err := h.sessions.Start(c.Request.Context(), req.ToReservation(h.loc))
	if err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.Header("Location", "/api/checkout/sessions/"+s.ID)
	c.JSON(http.StatusCreated, resdto.FromSession(s, nil))
}

// @Summary Get checkout
// @Tags checkout
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/checkout/sessions/{id} [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	s, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s, nil))
}

// @Summary Edit form fields
// @Description Field errors come back in "errors"; the edit is kept either way
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body reqdto.UpdateFieldsRequest true "Raw field values"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/checkout/sessions/{id}/fields [patch]
func (h *CheckoutHandler) UpdateFields(c *gin.Context) {
	var req reqdto.UpdateFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	fields, err := req.FieldIDs()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown form field", nil)
		return
	}

	s, fieldErrs, err := h.sessions.UpdateFields(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s, fieldErrs))
}

// @Summary Select payment method
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param request body reqdto.SelectMethodRequest true "Method"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/checkout/sessions/{id}/method [put]
func (h *CheckoutHandler) SelectMethod(c *gin.Context) {
	var req reqdto.SelectMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	method, err := checkout.ParsePaymentMethod(req.Method)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment method", nil)
		return
	}

	s, err := h.sessions.SelectMethod(c.Request.Context(), c.Param("id"), method)
	if err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s, nil))
}

// @Summary Submit payment
// @Description Validates the form and dispatches the gateway call; poll the session for the result
// @Tags checkout
// @Produce json
// @Param id path string true "Session id"
// @Success 202 {object} resdto.CheckoutSessionResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/checkout/sessions/{id}/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	s, _, err := h.sessions.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromSession(s, nil))
}

// @Summary Confirm payment
// @Description The user reports the Pix transfer as done
// @Tags checkout
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 409 {object} httperr.Response
// @Router /api/checkout/sessions/{id}/confirm [post]
func (h *CheckoutHandler) Confirm(c *gin.Context) {
	s, err := h.sessions.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s, nil))
}

// @Summary Cancel payment
// @Description Leave the Pix instructions and return to the form
// @Tags checkout
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 409 {object} httperr.Response
// @Router /api/checkout/sessions/{id}/cancel [post]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	s, err := h.sessions.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(s, nil))
}

// @Summary Discard checkout
// @Tags checkout
// @Param id path string true "Session id"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/checkout/sessions/{id} [delete]
func (h *CheckoutHandler) Remove(c *gin.Context) {
	if err := h.sessions.Remove(c.Request.Context(), c.Param("id")); err != nil {
		abortCheckoutError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortCheckoutError(c *gin.Context, err error) {
	var valErr *checkout.ValidationError
	switch {
	case errs.As(err, &valErr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", valErr.Fields)
	case errs.Is(err, commands.ErrSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout session not found", nil)
	case errs.Is(err, checkout.ErrInvalidStayOrder), errs.Is(err, checkout.ErrMissingInstant):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid stay dates", nil)
	case errs.Is(err, checkout.ErrSubmissionInFlight):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payment already in progress", nil)
	case errs.Is(err, checkout.ErrPixExpired):
		httperr.AbortWithError(c, http.StatusConflict, err, "Pix code expired", nil)
	case errs.Is(err, checkout.ErrFormLocked), errs.Is(err, checkout.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Action not allowed in the current checkout step", nil)
	case errs.Is(err, checkout.ErrUnknownField), errs.Is(err, checkout.ErrUnknownMethod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
