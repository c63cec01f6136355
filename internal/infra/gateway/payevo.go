package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"guarupark-checkout/internal/domain/checkout"
	"guarupark-checkout/internal/pkg/config"
	"guarupark-checkout/internal/pkg/errs"
)

const maxBodyBytes = 1 << 20

// PayevoClient creates transactions on the Payevo API.
type PayevoClient struct {
	url        string
	authHeader string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewPayevoClient(cfg config.GatewayConfig, logger *slog.Logger) *PayevoClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PayevoClient{
		url:        cfg.URL,
		authHeader: BasicAuth(cfg.SecretKey),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BasicAuth encodes the secret key as the username with an empty password.
func BasicAuth(secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(secret+":"))
}

type transactionResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
	PixCode string `json:"pixCode"`
	QRCode  string `json:"qrCode"`
	Pix     *struct {
		QRCode    string `json:"qrcode"`
		QRCodeURL string `json:"qrcodeUrl"`
		URL       string `json:"url"`
	} `json:"pix"`
}

func (c *PayevoClient) CreateTransaction(ctx context.Context, req checkout.PaymentRequest) (checkout.GatewayResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return checkout.GatewayResponse{}, errs.Wrap(err, "encode payment request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return checkout.GatewayResponse{}, &checkout.GatewayError{Cause: err}
	}
	httpReq.Header.Set("Authorization", c.authHeader)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.WarnContext(ctx, "payevo request failed", "method", req.PaymentMethod, "error", err)
		return checkout.GatewayResponse{}, &checkout.GatewayError{Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return checkout.GatewayResponse{}, &checkout.GatewayError{Cause: err}
	}

	var parsed transactionResponse
	decodeErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.WarnContext(ctx, "payevo rejected transaction",
			"status", resp.StatusCode, "method", req.PaymentMethod, "reservation_id", req.Metadata.ReservationID)
		return checkout.GatewayResponse{}, &checkout.GatewayError{
			Status:  resp.StatusCode,
			Message: parsed.Message,
			Body:    raw,
		}
	}
	if decodeErr != nil {
		return checkout.GatewayResponse{}, &checkout.GatewayError{
			Status: http.StatusBadGateway,
			Body:   raw,
			Cause:  errs.Wrapf(decodeErr, "decode payevo response (status %d)", resp.StatusCode),
		}
	}

	out := checkout.GatewayResponse{
		TransactionID: parsed.ID,
		Status:        parsed.Status,
		PixCode:       firstNonEmpty(parsed.PixCode, parsed.QRCode),
		Raw:           json.RawMessage(raw),
	}
	if parsed.Pix != nil {
		out.PixCode = firstNonEmpty(parsed.Pix.QRCode, out.PixCode)
		out.PixQRCodeURL = firstNonEmpty(parsed.Pix.QRCodeURL, parsed.Pix.URL)
	}
	c.logger.InfoContext(ctx, "payevo transaction created",
		"transaction_id", out.TransactionID, "status", out.Status, "method", req.PaymentMethod)
	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
