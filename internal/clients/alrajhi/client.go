package alrajhi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/care-sa/booking/internal/entity"
	"github.com/care-sa/booking/pkg/config"
	"github.com/care-sa/booking/pkg/transport"
)

// Client talks to the Al-Rajhi hosted payment page endpoint. All
// sensitive request parameters travel inside the encrypted trandata
// blob; the outer body only carries the terminal id and redirect URLs.
type Client struct {
	cfg config.Alrajhi
	c   *http.Client
}

func NewClient(cfg config.Alrajhi) *Client {
	const timeout = 10 * time.Second

	return &Client{
		cfg: cfg,
		c: &http.Client{
			Timeout:   timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

// Page is an issued hosted payment page.
type Page struct {
	PageID  string
	URL     string
	TrackID string
}

type tranRequest struct {
	Action       string `json:"action"`
	Amt          string `json:"amt"`
	CurrencyCode string `json:"currencyCode"`
	ErrorURL     string `json:"errorURL"`
	ID           string `json:"id"`
	Password     string `json:"password"`
	ResponseURL  string `json:"responseURL"`
	TrackID      string `json:"trackId"`
}

type pageRequest struct {
	ID          string `json:"id"`
	Trandata    string `json:"trandata"`
	ResponseURL string `json:"responseURL"`
	ErrorURL    string `json:"errorURL"`
}

type pageResponse struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

// GetPage requests a hosted payment page for the amount under the given
// track id. The gateway returns result as "<page_id>:<page_url>".
func (c *Client) GetPage(ctx context.Context, amount decimal.Decimal, trackID string) (Page, error) {
	const purchaseAction = "1"

	trandata, err := json.Marshal([]tranRequest{{
		Action:       purchaseAction,
		Amt:          amount.StringFixed(1),
		CurrencyCode: c.cfg.CurrencyCode,
		ErrorURL:     c.cfg.ErrorURL,
		ID:           c.cfg.TranportalID,
		Password:     c.cfg.Password,
		ResponseURL:  c.cfg.ResponseURL,
		TrackID:      trackID,
	}})
	if err != nil {
		return Page{}, fmt.Errorf("marshal trandata: %w", err)
	}

	enc, err := encrypt(trandata, []byte(c.cfg.ResourceKey), []byte(c.cfg.IV))
	if err != nil {
		return Page{}, fmt.Errorf("encrypt trandata: %w", err)
	}

	body, err := json.Marshal([]pageRequest{{
		ID:          c.cfg.TranportalID,
		Trandata:    enc,
		ResponseURL: c.cfg.ResponseURL,
		ErrorURL:    c.cfg.ErrorURL,
	}})
	if err != nil {
		return Page{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return Page{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return Page{}, fmt.Errorf("unexpected status code: %d\nbody: %s", resp.StatusCode, b)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Page{}, fmt.Errorf("read response: %w", err)
	}

	data, err := parsePageResponse(raw)
	if err != nil {
		return Page{}, err
	}

	if data.Error != "" {
		return Page{}, fmt.Errorf("%w: gateway error: %s", entity.ErrPaymentPage, data.Error)
	}

	pageID, pageURL, ok := strings.Cut(data.Result, ":")
	if !ok || pageID == "" || pageURL == "" {
		return Page{}, fmt.Errorf("%w: malformed result %q", entity.ErrPaymentPage, data.Result)
	}

	return Page{
		PageID:  pageID,
		URL:     pageURL,
		TrackID: trackID,
	}, nil
}

// The gateway wraps the response object in a single-element array.
func parsePageResponse(raw []byte) (pageResponse, error) {
	var list []pageResponse
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0], nil
	}

	var single pageResponse
	if err := json.Unmarshal(raw, &single); err != nil {
		return pageResponse{}, fmt.Errorf("decode response: %w", err)
	}

	return single, nil
}

// CallbackData is the decrypted content of a gateway callback.
type CallbackData struct {
	PaymentID string
	TranID    string
	TrackID   string
	Amt       decimal.Decimal
	Result    string
	Ref       string
}

// DecodeCallback decrypts trandata from a gateway callback. The
// decrypted form is a URL query string; all reconciliation fields must
// be present.
func (c *Client) DecodeCallback(trandata string) (CallbackData, error) {
	plain, err := decrypt(trandata, []byte(c.cfg.ResourceKey), []byte(c.cfg.IV))
	if err != nil {
		return CallbackData{}, fmt.Errorf("%w: decrypt trandata: %s", entity.ErrPaymentPage, err)
	}

	values, err := url.ParseQuery(strings.TrimPrefix(plain, "?"))
	if err != nil {
		return CallbackData{}, fmt.Errorf("%w: parse trandata: %s", entity.ErrPaymentPage, err)
	}

	for _, field := range []string{"paymentid", "tranid", "trackid", "amt", "result", "ref"} {
		if values.Get(field) == "" {
			return CallbackData{}, fmt.Errorf("%w: missing field %s", entity.ErrPaymentPage, field)
		}
	}

	amt, err := decimal.NewFromString(values.Get("amt"))
	if err != nil {
		return CallbackData{}, fmt.Errorf("%w: parse amt: %s", entity.ErrPaymentPage, err)
	}

	return CallbackData{
		PaymentID: values.Get("paymentid"),
		TranID:    values.Get("tranid"),
		TrackID:   values.Get("trackid"),
		Amt:       amt,
		Result:    values.Get("result"),
		Ref:       values.Get("ref"),
	}, nil
}
