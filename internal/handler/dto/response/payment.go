package response

import "encoding/json"

type PaymentResponse struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	TransactionID string          `json:"transactionId"`
	ReservationID string          `json:"reservationId,omitempty"`
	Data          json.RawMessage `json:"data,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
