package api

import (
	"net/http"

	reqdto "guarupark-checkout/internal/handler/dto/request"
	resdto "guarupark-checkout/internal/handler/dto/response"
	"guarupark-checkout/internal/handler/httperr"
	"guarupark-checkout/internal/pkg/errs"
	"guarupark-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhooks commands.WebhookCommands
}

func NewWebhookHandler(webhooks commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// @Summary Payment status webhook
// @Description Apply a gateway status notification; redeliveries are acknowledged without effect
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body reqdto.WebhookRequest true "Status notification"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /api/webhooks/payment [post]
func (h *WebhookHandler) PaymentStatus(c *gin.Context) {
	var req reqdto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	_, err := h.webhooks.HandlePaymentStatus(c.Request.Context(), commands.WebhookEvent{
		TransactionID: req.TransactionID,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errs.Is(err, commands.ErrMissingTransactionID) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing transaction id", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Success: true, Message: "Webhook processed"})
}
