package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/care-sa/booking/internal/api"
	"github.com/care-sa/booking/internal/entity"
	"github.com/care-sa/booking/internal/mocks"
	"github.com/care-sa/booking/internal/service"
)

type testAPI struct {
	srv      *httptest.Server
	svcMock  *mocks.MockService
	authMock *mocks.MockAuthService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	svcMock := mocks.NewMockService(ctrl)
	authMock := mocks.NewMockAuthService(ctrl)

	handler := api.NewHandler(svcMock)
	mw := api.NewMiddleware(authMock, nil, "tamara-notification-key")

	srv := httptest.NewServer(api.NewRouter(handler, mw))
	t.Cleanup(srv.Close)

	return &testAPI{srv: srv, svcMock: svcMock, authMock: authMock}
}

func (c *testAPI) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.srv.URL+path, reader)
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer dev")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.srv.Client().Do(req)
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func (c *testAPI) expectUser(user entity.User) {
	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(user, nil)
}

func customer() entity.User {
	return entity.User{
		ID:   uuid.Must(uuid.NewV4()),
		Name: "Sara Alghamdi",
		Type: entity.UserTypeCustomer,
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	resp, err := c.srv.Client().Get(c.srv.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_CreateOrder(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	serviceID := uuid.Must(uuid.NewV4())
	orderID := uuid.Must(uuid.NewV4())

	order := entity.Order{
		ID:          orderID,
		VendorID:    uuid.Must(uuid.NewV4()),
		Status:      entity.OrderStatusPending,
		PaymentType: entity.PaymentTypeSystem,
		TaxPct:      decimal.RequireFromString("15"),
		Items: []entity.OrderItem{{
			ID:          uuid.Must(uuid.NewV4()),
			ServiceID:   serviceID,
			ServiceName: "Deep cleaning",
			Price:       decimal.RequireFromString("200"),
			TaxPct:      decimal.RequireFromString("15"),
			Quantity:    1,
		}},
		CreatedAt: time.Now(),
	}

	c.svcMock.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params service.CreateOrderParams) (entity.Order, error) {
			require.Equal(t, entity.PaymentTypeSystem, params.PaymentType)
			require.Len(t, params.Items, 1)
			require.Equal(t, serviceID, params.Items[0].ServiceID)

			return order, nil
		})

	resp := c.do(t, http.MethodPost, "/api/orders", map[string]any{
		"payment_type": "SYSTEM",
		"items":        []map[string]any{{"service_id": serviceID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got struct {
		ID     uuid.UUID `json:"id"`
		Status string    `json:"status"`
		Total  string    `json:"total"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, orderID, got.ID)
	require.Equal(t, "PENDING", got.Status)
	require.Equal(t, "230.0", got.Total)
}

func TestHandler_CreateOrder_SlotTaken(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	c.svcMock.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		Return(entity.Order{}, entity.ErrSlotTaken)

	resp := c.do(t, http.MethodPost, "/api/orders", map[string]any{
		"payment_type": "SYSTEM",
		"items":        []map[string]any{{"service_id": uuid.Must(uuid.NewV4())}},
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_CreateOrder_BadJSON(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	req, err := http.NewRequest(http.MethodPost, c.srv.URL+"/api/orders", strings.NewReader("{broken"))
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer dev")

	resp, err := c.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_Unauthenticated(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.authMock.EXPECT().User(gomock.Any(), "dev").Return(entity.User{}, entity.ErrUnauthenticated)

	resp := c.do(t, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Orders_Filter(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	approval := entity.OrderStatusApproval

	c.svcMock.EXPECT().
		Orders(gomock.Any(), entity.OrderFilter{
			Status:  &approval,
			Page:    2,
			Limit:   5,
			SortBy:  entity.OrderSortByStatus,
			OrderBy: entity.ASC,
		}).
		Return([]entity.Order{}, 0, nil)

	resp := c.do(t, http.MethodGet, "/api/orders?status=APPROVAL&page=2&limit=5&sort_by=status&order_by=asc", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_Orders_BadFilter(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	resp := c.do(t, http.MethodGet, "/api/orders?sort_by=price", nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_ApproveOrder(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	orderID := uuid.Must(uuid.NewV4())

	c.svcMock.EXPECT().ApproveOrder(gomock.Any(), orderID).Return(nil)

	resp := c.do(t, http.MethodPost, "/api/orders/"+orderID.String()+"/approve", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_ApproveOrder_WrongState(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	orderID := uuid.Must(uuid.NewV4())

	c.svcMock.EXPECT().ApproveOrder(gomock.Any(), orderID).Return(entity.ErrOrderState)

	resp := c.do(t, http.MethodPost, "/api/orders/"+orderID.String()+"/approve", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_Order_NotFound(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	orderID := uuid.Must(uuid.NewV4())

	c.svcMock.EXPECT().Order(gomock.Any(), orderID).Return(entity.Order{}, entity.ErrNotFound)

	resp := c.do(t, http.MethodGet, "/api/orders/"+orderID.String(), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_VerifyOffer(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	orderID := uuid.Must(uuid.NewV4())

	offer := entity.Offer{
		ID:          uuid.Must(uuid.NewV4()),
		Code:        "SUMMER10",
		Type:        entity.OfferTypeVendor,
		DiscountPct: decimal.RequireFromString("10"),
		Uses:        100,
		Active:      true,
		ExpiresAt:   time.Now().Add(24 * time.Hour),
	}

	pricing := entity.ComputePricing(
		decimal.RequireFromString("200"),
		decimal.RequireFromString("10"),
		decimal.RequireFromString("15"),
	)

	c.svcMock.EXPECT().VerifyOffer(gomock.Any(), orderID, "SUMMER10").Return(offer, pricing, nil)

	resp := c.do(t, http.MethodPost, "/api/orders/"+orderID.String()+"/offer/verify", map[string]any{"code": "SUMMER10"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Total       string `json:"total"`
		DiscountVal string `json:"discount_value"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "207.0", got.Total)
	require.Equal(t, "20.0", got.DiscountVal)
}

func TestHandler_VerifyOffer_Invalid(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	orderID := uuid.Must(uuid.NewV4())

	c.svcMock.EXPECT().
		VerifyOffer(gomock.Any(), orderID, "EXPIRED").
		Return(entity.Offer{}, entity.Pricing{}, entity.ErrInvalidOffer)

	resp := c.do(t, http.MethodPost, "/api/orders/"+orderID.String()+"/offer/verify", map[string]any{"code": "EXPIRED"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandler_PayWithWallet(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	orderID := uuid.Must(uuid.NewV4())

	invoice := entity.Invoice{
		ID:           uuid.Must(uuid.NewV4()),
		OrderID:      orderID,
		Year:         2026,
		AnnualFigure: 42,
		Price:        decimal.RequireFromString("200"),
		TaxValue:     decimal.RequireFromString("30"),
		Total:        decimal.RequireFromString("230"),
		Status:       entity.InvoiceStatusCompleted,
		CreatedAt:    time.Now(),
	}

	c.svcMock.EXPECT().PayWithWallet(gomock.Any(), orderID, "").Return(invoice, nil)

	resp := c.do(t, http.MethodPost, "/api/payments/wallet", map[string]any{"order_id": orderID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got struct {
		Number string `json:"number"`
		Total  string `json:"total"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "INV-2026-000042", got.Number)
	require.Equal(t, "230.0", got.Total)
}

func TestHandler_PayWithWallet_InsufficientFunds(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	orderID := uuid.Must(uuid.NewV4())

	c.svcMock.EXPECT().
		PayWithWallet(gomock.Any(), orderID, "").
		Return(entity.Invoice{}, entity.ErrInsufficientFunds)

	resp := c.do(t, http.MethodPost, "/api/payments/wallet", map[string]any{"order_id": orderID})
	require.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
}

func TestHandler_CreateAlrajhiPage_PayViaWallet(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	orderID := uuid.Must(uuid.NewV4())

	c.svcMock.EXPECT().
		CreateAlrajhiPage(gomock.Any(), orderID, "", true).
		Return(entity.AlrajhiPage{}, entity.ErrPayViaWallet)

	resp := c.do(t, http.MethodPost, "/api/payments/alrajhi", map[string]any{
		"order_id":    orderID,
		"with_wallet": true,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHandler_AlrajhiCallback(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	invoice := entity.Invoice{
		ID:           uuid.Must(uuid.NewV4()),
		Year:         2026,
		AnnualFigure: 7,
		Total:        decimal.RequireFromString("230"),
		Status:       entity.InvoiceStatusCompleted,
	}

	c.svcMock.EXPECT().AlrajhiCallback(gomock.Any(), "a1b2c3").Return(invoice, nil)

	form := url.Values{"trandata": {"a1b2c3"}}

	resp, err := c.srv.Client().PostForm(c.srv.URL+"/api/payments/callbacks/alrajhi", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestHandler_AlrajhiCallback_MissingTrandata(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	resp, err := c.srv.Client().PostForm(c.srv.URL+"/api/payments/callbacks/alrajhi", url.Values{})
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandler_TamaraWebhook_BadToken(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	body, err := json.Marshal(map[string]any{"order_id": "tamara-1", "event_type": "order_approved"})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, c.srv.URL+"/api/payments/callbacks/tamara", bytes.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := c.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_DepositWallet(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	wallet := entity.Wallet{
		ID:      uuid.Must(uuid.NewV4()),
		Balance: decimal.RequireFromString("150"),
	}

	c.svcMock.EXPECT().
		DepositWallet(gomock.Any(), decimal.RequireFromString("150")).
		Return(wallet, nil)

	resp := c.do(t, http.MethodPost, "/api/wallet/deposit", map[string]any{"amount": "150"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		Balance string `json:"balance"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, "150.0", got.Balance)
}

func TestHandler_CreateAvailability(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(entity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Type:     entity.UserTypeVendor,
		VendorID: uuid.Must(uuid.NewV4()),
	})

	serviceID := uuid.Must(uuid.NewV4())
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	created := []entity.Availability{{
		ID:        uuid.Must(uuid.NewV4()),
		ServiceID: serviceID,
		Date:      date,
		Start:     date.Add(9 * time.Hour),
		End:       date.Add(12 * time.Hour),
	}}

	c.svcMock.EXPECT().
		CreateAvailability(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, params service.CreateAvailabilityParams) ([]entity.Availability, error) {
			require.Equal(t, serviceID, params.ServiceID)
			require.Equal(t, 3, params.Days)
			require.Equal(t, date, params.Date)

			return created, nil
		})

	resp := c.do(t, http.MethodPost, "/api/availabilities", map[string]any{
		"service_id": serviceID,
		"date":       "2026-09-14",
		"start":      date.Add(9 * time.Hour),
		"end":        date.Add(12 * time.Hour),
		"days":       3,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestHandler_FreeSlots(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	availabilityID := uuid.Must(uuid.NewV4())
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)

	c.svcMock.EXPECT().
		FreeSlots(gomock.Any(), availabilityID).
		Return([]entity.Slot{
			{Start: start, End: start.Add(time.Hour)},
			{Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)},
		}, nil)

	resp := c.do(t, http.MethodGet, "/api/availabilities/"+availabilityID.String()+"/slots", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	}

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	require.True(t, got[0].Start.Equal(start))
}

func TestHandler_RegisterPushToken(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	c.svcMock.EXPECT().RegisterPushToken(gomock.Any(), "ExponentPushToken[abc]").Return(nil)

	resp := c.do(t, http.MethodPost, "/api/push-tokens", map[string]any{"token": "ExponentPushToken[abc]"})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_CancelInvoice(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(entity.User{
		ID:   uuid.Must(uuid.NewV4()),
		Name: "Noura Alqahtani",
		Type: entity.UserTypeAdmin,
	})

	invoiceID := uuid.Must(uuid.NewV4())
	c.svcMock.EXPECT().CancelInvoice(gomock.Any(), invoiceID).Return(nil)

	resp := c.do(t, http.MethodPost, "/api/invoices/"+invoiceID.String()+"/cancel", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestHandler_CancelInvoice_NotAdmin(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)
	c.expectUser(customer())

	invoiceID := uuid.Must(uuid.NewV4())
	c.svcMock.EXPECT().CancelInvoice(gomock.Any(), invoiceID).Return(entity.ErrForbidden)

	resp := c.do(t, http.MethodPost, "/api/invoices/"+invoiceID.String()+"/cancel", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
