package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/halcyonpay/payctl/internal/errors"
)

// Payment statuses reported by the gateway.
const (
	StatusApproved = "approved"
	StatusDeclined = "declined"
	StatusPending  = "pending"
	StatusVoided   = "voided"
)

// Payment represents a payment as returned by the gateway
type Payment struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CardBrand string    `json:"card_brand,omitempty"`
	CardLast4 string    `json:"card_last4,omitempty"`
	AuthCode  string    `json:"auth_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePaymentRequest represents a request to create a payment.
// Amount is in minor units (cents for two-decimal currencies).
type CreatePaymentRequest struct {
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	CardToken   string `json:"card_token,omitempty"`
	Description string `json:"description,omitempty"`

	// IdempotencyKey is sent as a header, not in the body. When empty a
	// fresh UUID is generated per call.
	IdempotencyKey string `json:"-"`
}

// Validate checks the request before it is sent to the gateway
func (r *CreatePaymentRequest) Validate() error {
	if r.OrderID == "" {
		return errors.New(errors.ErrCodePaymentField, "order_id is required").
			WithSuggestion("Pass an order identifier with --order-id")
	}
	if r.Amount <= 0 {
		return errors.New(errors.ErrCodePaymentAmount,
			fmt.Sprintf("amount must be positive, got %d", r.Amount))
	}
	if len(r.Currency) != 3 {
		return errors.New(errors.ErrCodePaymentCurrency,
			fmt.Sprintf("currency must be a 3-letter ISO code, got %q", r.Currency)).
			WithSuggestion("Use codes like CAD, USD, or EUR")
	}
	return nil
}

// PaymentList is one page of payments
type PaymentList struct {
	Payments   []Payment `json:"payments"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
}

// ListPaymentsOptions narrows and pages a payment listing
type ListPaymentsOptions struct {
	Status   string
	Page     int
	PageSize int
}

// CreatePayment submits a new payment
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := req.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}
	headers := http.Header{"Idempotency-Key": []string{key}}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/payments", req, headers)
	if err != nil {
		return nil, err
	}

	var payment Payment
	if err := c.parseResponse(resp, &payment); err != nil {
		return nil, err
	}

	return &payment, nil
}

// GetPayment retrieves a single payment by id
func (c *Client) GetPayment(ctx context.Context, id string) (*Payment, error) {
	if id == "" {
		return nil, errors.New(errors.ErrCodePaymentField, "payment id is required")
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/payments/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var payment Payment
	if err := c.parseResponse(resp, &payment); err != nil {
		return nil, err
	}

	return &payment, nil
}

// ListPayments retrieves one page of payments
func (c *Client) ListPayments(ctx context.Context, opts ListPaymentsOptions) (*PaymentList, error) {
	query := url.Values{}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(opts.PageSize))
	}

	path := "/v1/payments"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var list PaymentList
	if err := c.parseResponse(resp, &list); err != nil {
		return nil, err
	}

	return &list, nil
}

// ListAllPayments walks every page and returns the combined result
func (c *Client) ListAllPayments(ctx context.Context, opts ListPaymentsOptions) ([]Payment, error) {
	var all []Payment

	opts.Page = 1
	for {
		page, err := c.ListPayments(ctx, opts)
		if err != nil {
			return nil, err
		}
		if len(page.Payments) == 0 {
			break
		}

		all = append(all, page.Payments...)
		if page.TotalCount > 0 && len(all) >= page.TotalCount {
			break
		}
		opts.Page++
	}

	return all, nil
}

// VoidPayment voids a previously created payment
func (c *Client) VoidPayment(ctx context.Context, id string) (*Payment, error) {
	if id == "" {
		return nil, errors.New(errors.ErrCodePaymentField, "payment id is required")
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/payments/"+url.PathEscape(id)+"/void", nil, nil)
	if err != nil {
		return nil, err
	}

	var payment Payment
	if err := c.parseResponse(resp, &payment); err != nil {
		return nil, err
	}

	return &payment, nil
}
