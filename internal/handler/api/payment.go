package api

import (
	"encoding/json"
	"net/http"
	"time"

	"guarupark-checkout/internal/domain/checkout"
	reqdto "guarupark-checkout/internal/handler/dto/request"
	resdto "guarupark-checkout/internal/handler/dto/response"
	"guarupark-checkout/internal/handler/httperr"
	"guarupark-checkout/internal/pkg/errs"
	"guarupark-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments commands.PaymentCommands
	loc      *time.Location
}

func NewPaymentHandler(payments commands.PaymentCommands, loc *time.Location) *PaymentHandler {
	return &PaymentHandler{payments: payments, loc: loc}
}

// @Summary Process payment
// @Description Charge a parking reservation through the payment gateway
// @Tags payments
// @Accept json
// @Produce json
// @Param method path string true "Payment method" Enums(pix, credit, boleto)
// @Param request body reqdto.PaymentRequest true "Checkout form and stay"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/payments/{method} [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	method, err := checkout.ParsePaymentMethod(c.Param("method"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment method", nil)
		return
	}

	var req reqdto.PaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	if !req.HasRequiredFields() {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrMissingRequiredFields, "Missing required fields", nil)
		return
	}

	result, err := h.payments.Pay(c.Request.Context(), commands.PayRequest{
		Method:      method,
		Form:        req.ToForm(),
		Reservation: req.ToReservation(h.loc),
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		abortPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.PaymentResponse{
		Success:       true,
		Message:       "Payment processed successfully",
		TransactionID: result.TransactionID,
		ReservationID: result.ReservationID,
		Data:          result.Response.Raw,
	})
}

func abortPaymentError(c *gin.Context, err error) {
	var valErr *checkout.ValidationError
	var gwErr *checkout.GatewayError
	switch {
	case errs.As(err, &valErr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", valErr.Fields)
	case errs.Is(err, commands.ErrMissingRequiredFields):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields", nil)
	case errs.Is(err, commands.ErrInvalidAmount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid total amount", nil)
	case errs.Is(err, checkout.ErrUnknownMethod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment method", nil)
	case errs.As(err, &gwErr):
		resp := httperr.NewResponse(gwErr.HTTPStatus(), gwErr.UserMessage())
		resp.Error = gatewayErrorBody(gwErr)
		httperr.Abort(c, err, resp)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// gatewayErrorBody relays the gateway's JSON body when it sent one.
func gatewayErrorBody(e *checkout.GatewayError) any {
	if len(e.Body) > 0 && json.Valid(e.Body) {
		return json.RawMessage(e.Body)
	}
	msg := e.UserMessage()
	if e.Cause != nil {
		msg = e.Cause.Error()
	}
	return gin.H{"message": msg}
}
