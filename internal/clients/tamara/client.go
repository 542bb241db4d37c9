package tamara

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/care-sa/booking/pkg/config"
	"github.com/care-sa/booking/pkg/transport"
)

const (
	currencySAR     = "SAR"
	countrySA       = "SA"
	payByInstalment = "PAY_BY_INSTALMENTS"

	// statuses the merchant flow depends on
	StatusApproved   = "approved"
	StatusAuthorised = "authorised"
)

// Client talks to the Tamara BNPL API. The merchant flow is
// checkout session -> webhook(approved) -> authorise -> capture.
type Client struct {
	cfg config.Tamara
	c   *http.Client
}

func NewClient(cfg config.Tamara) *Client {
	const timeout = 10 * time.Second

	return &Client{
		cfg: cfg,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func NewMoney(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: currencySAR}
}

type Item struct {
	ReferenceID    string `json:"reference_id"`
	Type           string `json:"type"`
	Name           string `json:"name"`
	SKU            string `json:"sku"`
	Quantity       uint32 `json:"quantity"`
	UnitPrice      Money  `json:"unit_price"`
	DiscountAmount Money  `json:"discount_amount"`
	TaxAmount      Money  `json:"tax_amount"`
	TotalAmount    Money  `json:"total_amount"`
}

type Consumer struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

type Address struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Line1       string `json:"line1"`
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
}

type discount struct {
	Name   string `json:"name"`
	Amount Money  `json:"amount"`
}

type merchantURL struct {
	Success      string `json:"success"`
	Failure      string `json:"failure"`
	Cancel       string `json:"cancel"`
	Notification string `json:"notification"`
}

type CheckoutRequest struct {
	OrderReferenceID string   `json:"order_reference_id"`
	OrderNumber      string   `json:"order_number"`
	TotalAmount      Money    `json:"total_amount"`
	Description      string   `json:"description"`
	CountryCode      string   `json:"country_code"`
	PaymentType      string   `json:"payment_type"`
	Items            []Item   `json:"items"`
	Consumer         Consumer `json:"consumer"`
	ShippingAddress  Address  `json:"shipping_address"`
	TaxAmount        Money    `json:"tax_amount"`
	Discount         discount `json:"discount"`
	ShippingAmount   Money    `json:"shipping_amount"`

	MerchantURL merchantURL `json:"merchant_url"`
}

// Checkout is a created checkout session. OrderID identifies the order
// on Tamara's side for the rest of the flow.
type Checkout struct {
	OrderID     string `json:"order_id"`
	CheckoutID  string `json:"checkout_id"`
	CheckoutURL string `json:"checkout_url"`
}

// CheckoutInput carries the order data needed to open a session.
type CheckoutInput struct {
	ReferenceID string
	OrderNumber string
	Total       decimal.Decimal
	Tax         decimal.Decimal
	Discount    decimal.Decimal
	Items       []Item
	Consumer    Consumer
	Address     Address
}

func (c *Client) CreateCheckoutSession(ctx context.Context, in CheckoutInput) (Checkout, error) {
	req := CheckoutRequest{
		OrderReferenceID: in.ReferenceID,
		OrderNumber:      in.OrderNumber,
		TotalAmount:      NewMoney(in.Total),
		Description:      fmt.Sprintf("Order %s payment via Tamara", in.OrderNumber),
		CountryCode:      countrySA,
		PaymentType:      payByInstalment,
		Items:            in.Items,
		Consumer:         in.Consumer,
		ShippingAddress:  in.Address,
		TaxAmount:        NewMoney(in.Tax),
		Discount:         discount{Amount: NewMoney(in.Discount)},
		ShippingAmount:   NewMoney(decimal.Zero),
		MerchantURL: merchantURL{
			Success:      c.cfg.SuccessURL,
			Failure:      c.cfg.FailureURL,
			Cancel:       c.cfg.CancelURL,
			Notification: c.cfg.NotificationURL,
		},
	}

	var out Checkout

	err := c.post(ctx, "/checkout", req, &out)
	if err != nil {
		return Checkout{}, fmt.Errorf("create checkout session: %w", err)
	}

	return out, nil
}

type AuthoriseResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// Authorise confirms an approved order. Must be called after the
// approval webhook and before capture.
func (c *Client) Authorise(ctx context.Context, orderID string) (AuthoriseResponse, error) {
	var out AuthoriseResponse

	err := c.post(ctx, "/orders/"+orderID+"/authorise", nil, &out)
	if err != nil {
		return AuthoriseResponse{}, fmt.Errorf("authorise order: %w", err)
	}

	return out, nil
}

type captureRequest struct {
	OrderID      string       `json:"order_id"`
	TotalAmount  Money        `json:"total_amount"`
	ShippingInfo shippingInfo `json:"shipping_info"`
}

type shippingInfo struct {
	ShippedAt       string `json:"shipped_at"`
	ShippingCompany string `json:"shipping_company"`
}

type CaptureResponse struct {
	CaptureID string `json:"capture_id"`
	OrderID   string `json:"order_id"`
}

func (c *Client) Capture(ctx context.Context, orderID string, total decimal.Decimal) (CaptureResponse, error) {
	req := captureRequest{
		OrderID:     orderID,
		TotalAmount: NewMoney(total),
		ShippingInfo: shippingInfo{
			ShippedAt:       time.Now().UTC().Format(time.RFC3339),
			ShippingCompany: "Care company",
		},
	}

	var out CaptureResponse

	err := c.post(ctx, "/payments/capture", req, &out)
	if err != nil {
		return CaptureResponse{}, fmt.Errorf("capture payment: %w", err)
	}

	return out, nil
}

type OrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// OrderStatus fetches the current order state. Used to reconcile
// checkouts whose approval webhook never arrived.
func (c *Client) OrderStatus(ctx context.Context, orderID string) (OrderResponse, error) {
	var out OrderResponse

	err := c.do(ctx, http.MethodGet, "/orders/"+orderID, nil, &out)
	if err != nil {
		return OrderResponse{}, fmt.Errorf("get order: %w", err)
	}

	return out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		j, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		body = bytes.NewReader(j)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)

	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, b)
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
