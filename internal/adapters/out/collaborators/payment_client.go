package collaborators

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

type pendingTransactionRequest struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	UserID      uuid.UUID `json:"user_id"`
	Amount      int64     `json:"amount"`
	ClientIP    string    `json:"client_ip,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type pendingTransactionResponse struct {
	TransactionID string `json:"transaction_id"`
}

// PaymentClient opens pending transactions through POST /transactions.
type PaymentClient struct {
	client jsonClient
}

var _ ports.PaymentService = (*PaymentClient)(nil)

func NewPaymentClient(baseURL string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{client: newJSONClient("payment", baseURL, timeout)}
}

func (c *PaymentClient) CreatePendingTransaction(
	ctx context.Context,
	tx ports.PendingTransaction,
) (ports.TransactionHandle, error) {
	req := pendingTransactionRequest{
		OrderID:     tx.OrderID,
		OrderNumber: tx.OrderNumber,
		UserID:      tx.UserID,
		Amount:      tx.Amount,
		ClientIP:    tx.ClientIP,
		ExpiresAt:   tx.ExpiresAt.UTC(),
	}

	var resp pendingTransactionResponse
	if err := c.client.do(ctx, http.MethodPost, "/transactions", req, &resp); err != nil {
		return ports.TransactionHandle{}, err
	}
	if resp.TransactionID == "" {
		return ports.TransactionHandle{}, errs.NewCollaboratorFailureError("payment",
			errors.New("response carries no transaction id"))
	}
	return ports.TransactionHandle{TransactionID: resp.TransactionID}, nil
}
