package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/care-sa/booking/internal/entity"
	"github.com/care-sa/booking/internal/service"
)

// @title Booking API
// @version 1.0
// @description API for booking vendor services, paying orders and issuing invoices
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	CreateOrder(ctx context.Context, params service.CreateOrderParams) (entity.Order, error)
	Order(ctx context.Context, id uuid.UUID) (entity.Order, error)
	Orders(ctx context.Context, f entity.OrderFilter) ([]entity.Order, int, error)
	ApproveOrder(ctx context.Context, id uuid.UUID) error
	DisapproveOrder(ctx context.Context, id uuid.UUID) error
	CompleteOrder(ctx context.Context, id uuid.UUID) error

	CreateAvailability(ctx context.Context, params service.CreateAvailabilityParams) ([]entity.Availability, error)
	FreeSlots(ctx context.Context, availabilityID uuid.UUID) ([]entity.Slot, error)

	CreateOffer(ctx context.Context, params service.CreateOfferParams) (entity.Offer, error)
	ActivateOffer(ctx context.Context, id uuid.UUID) error
	VerifyOffer(ctx context.Context, orderID uuid.UUID, code string) (entity.Offer, entity.Pricing, error)
	ActiveOffers(ctx context.Context, vendorID uuid.UUID) ([]entity.Offer, error)

	Wallet(ctx context.Context) (entity.Wallet, error)
	WalletTransactions(ctx context.Context) ([]entity.WalletTransaction, error)
	DepositWallet(ctx context.Context, amount decimal.Decimal) (entity.Wallet, error)

	PayWithWallet(ctx context.Context, orderID uuid.UUID, offerCode string) (entity.Invoice, error)
	CreateAlrajhiPage(ctx context.Context, orderID uuid.UUID, offerCode string, withWallet bool) (entity.AlrajhiPage, error)
	AlrajhiCallback(ctx context.Context, trandata string) (entity.Invoice, error)
	CreateTamaraCheckout(ctx context.Context, orderID uuid.UUID, offerCode string) (entity.TamaraPage, error)
	TamaraWebhook(ctx context.Context, tamaraOrderID, eventType string) error

	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	InvoiceByOrderID(ctx context.Context, orderID uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, page, limit uint64) ([]entity.Invoice, int, error)
	CancelInvoice(ctx context.Context, id uuid.UUID) error

	RegisterPushToken(ctx context.Context, token string) error
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

// HealthHandler reports service liveness
// @Summary Health check
// @Tags health
// @Success 200
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

type CreateOrderItemRequest struct {
	ServiceID      uuid.UUID `json:"service_id"`
	Quantity       uint32    `json:"quantity"`
	AvailabilityID uuid.UUID `json:"availability_id,omitempty"`
	SlotStart      time.Time `json:"slot_start,omitempty"`
	SlotEnd        time.Time `json:"slot_end,omitempty"`
}

type CreateOrderRequest struct {
	AddressID   uuid.UUID                `json:"address_id,omitempty"`
	PaymentType string                   `json:"payment_type"`
	Items       []CreateOrderItemRequest `json:"items"`
}

type OrderItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	EmployeeID  uuid.UUID `json:"employee_id,omitempty"`
	Price       string    `json:"price"`
	DiscountPct string    `json:"discount_pct"`
	TaxPct      string    `json:"tax_pct"`
	Quantity    uint32    `json:"quantity"`
	Date        string    `json:"date,omitempty"`
	Slot        string    `json:"slot,omitempty"`
}

type OrderResponse struct {
	ID          uuid.UUID           `json:"id"`
	VendorID    uuid.UUID           `json:"vendor_id"`
	AddressID   uuid.UUID           `json:"address_id,omitempty"`
	Status      string              `json:"status"`
	PaymentType string              `json:"payment_type"`
	Price       string              `json:"price"`
	Total       string              `json:"total"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
}

func newOrderResponse(order entity.Order) OrderResponse {
	resp := OrderResponse{
		ID:          order.ID,
		VendorID:    order.VendorID,
		AddressID:   order.AddressID,
		Status:      order.Status.String(),
		PaymentType: order.PaymentType.String(),
		Price:       order.Price().StringFixed(1),
		Total:       order.Total(decimal.Zero).Total.StringFixed(1),
		CreatedAt:   order.CreatedAt,
	}

	for _, item := range order.Items {
		ir := OrderItemResponse{
			ID:          item.ID,
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			EmployeeID:  item.EmployeeID,
			Price:       item.Price.StringFixed(1),
			DiscountPct: item.DiscountPct.String(),
			TaxPct:      item.TaxPct.String(),
			Quantity:    item.Quantity,
		}

		if item.Scheduled() {
			ir.Date = item.Date.Format(time.DateOnly)
			ir.Slot = item.Slot.String()
		}

		resp.Items = append(resp.Items, ir)
	}

	return resp
}

// CreateOrder places a new order
// @Summary Create order
// @Description Books the requested service items for the calling customer
// @Tags orders
// @Accept json
// @Produce json
// @Param CreateOrderRequest body CreateOrderRequest true "Order creation request"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 409 {object} ErrorResponse "Slot is no longer free"
// @Failure 422 {object} ErrorResponse "Invalid order"
// @Router /orders [post]
// @Security BearerAuth
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	params := service.CreateOrderParams{
		AddressID:   req.AddressID,
		PaymentType: entity.PaymentType(req.PaymentType),
	}

	for _, item := range req.Items {
		params.Items = append(params.Items, service.CreateOrderItemParams{
			ServiceID:      item.ServiceID,
			Quantity:       item.Quantity,
			AvailabilityID: item.AvailabilityID,
			Slot:           entity.Slot{Start: item.SlotStart, End: item.SlotEnd},
		})
	}

	order, err := h.s.CreateOrder(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Service not found")
		case errors.Is(err, entity.ErrSlotTaken):
			SendJSONErr(ctx, w, http.StatusConflict, err, "The requested slot is no longer free")
		case errors.Is(err, entity.ErrAddressRequired):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "An address is required for home services")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid order")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is not allowed")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create order")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, newOrderResponse(order))
}

type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// Orders lists the calling customer's orders
// @Summary List orders
// @Tags orders
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number, starts at 1"
// @Param limit query int false "Page size, max 100"
// @Param sort_by query string false "created_at or status"
// @Param order_by query string false "asc or desc"
// @Success 200 {object} OrdersResponse
// @Failure 422 {object} ErrorResponse "Invalid filter"
// @Router /orders [get]
// @Security BearerAuth
func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := orderFilterFromQuery(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid filter")
		return
	}

	orders, total, err := h.s.Orders(ctx, filter)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list orders")
		return
	}

	resp := OrdersResponse{Total: total, Orders: make([]OrderResponse, 0, len(orders))}
	for _, order := range orders {
		resp.Orders = append(resp.Orders, newOrderResponse(order))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

func orderFilterFromQuery(r *http.Request) (entity.OrderFilter, error) {
	f := entity.OrderFilter{
		Page:    defaultPage,
		Limit:   defaultLimit,
		SortBy:  entity.OrderSortByCreatedAt,
		OrderBy: entity.DESC,
	}

	q := r.URL.Query()

	if s := q.Get("status"); s != "" {
		status := entity.OrderStatus(s)
		f.Status = &status
	}

	if p := q.Get("page"); p != "" {
		page, err := strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return f, errors.New("page must be a positive integer")
		}

		f.Page = page
	}

	if l := q.Get("limit"); l != "" {
		limit, err := strconv.ParseUint(l, 10, 64)
		if err != nil || limit == 0 || limit > maxLimit {
			return f, errors.New("limit must be between 1 and 100")
		}

		f.Limit = limit
	}

	if s := q.Get("sort_by"); s != "" {
		f.SortBy = entity.OrderSortCol(s)
		if !f.SortBy.IsValid() {
			return f, errors.New("unknown sort column")
		}
	}

	if o := q.Get("order_by"); o != "" {
		f.OrderBy = entity.OrderByCol(o)
		if !f.OrderBy.IsValid() {
			return f, errors.New("unknown sort order")
		}
	}

	return f, nil
}

// Order returns a single order
// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 403 {object} ErrorResponse "Not your order"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Router /orders/{id} [get]
// @Security BearerAuth
func (h *Handler) Order(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid order id")
		return
	}

	order, err := h.s.Order(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Order not found")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is not allowed")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get order")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, newOrderResponse(order))
}

// ApproveOrder approves a pending order
// @Summary Approve order
// @Description Accepts the order and activates its slot reservations
// @Tags orders
// @Param id path string true "Order ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Not your order"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Invalid state or slot conflict"
// @Router /orders/{id}/approve [post]
// @Security BearerAuth
func (h *Handler) ApproveOrder(w http.ResponseWriter, r *http.Request) {
	h.orderAction(w, r, h.s.ApproveOrder, "Failed to approve order")
}

// DisapproveOrder rejects an order
// @Summary Disapprove order
// @Description Rejects the order and releases its slot reservations
// @Tags orders
// @Param id path string true "Order ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Not your order"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Invalid state"
// @Router /orders/{id}/disapprove [post]
// @Security BearerAuth
func (h *Handler) DisapproveOrder(w http.ResponseWriter, r *http.Request) {
	h.orderAction(w, r, h.s.DisapproveOrder, "Failed to disapprove order")
}

// CompleteOrder closes a delivered order
// @Summary Complete order
// @Tags orders
// @Param id path string true "Order ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Not your order"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Invalid state"
// @Router /orders/{id}/complete [post]
// @Security BearerAuth
func (h *Handler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	h.orderAction(w, r, h.s.CompleteOrder, "Failed to complete order")
}

func (h *Handler) orderAction(w http.ResponseWriter, r *http.Request, action func(context.Context, uuid.UUID) error, failMsg string) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid order id")
		return
	}

	err = action(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Order not found")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is not allowed")
		case errors.Is(err, entity.ErrOrderState):
			SendJSONErr(ctx, w, http.StatusConflict, err, "The order state does not allow this")
		case errors.Is(err, entity.ErrSlotTaken):
			SendJSONErr(ctx, w, http.StatusConflict, err, "A slot of this order is already taken")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, failMsg)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type CreateAvailabilityRequest struct {
	ServiceID  uuid.UUID `json:"service_id"`
	EmployeeID uuid.UUID `json:"employee_id,omitempty"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Days       int       `json:"days"`
}

type AvailabilityResponse struct {
	ID         uuid.UUID `json:"id"`
	ServiceID  uuid.UUID `json:"service_id"`
	EmployeeID uuid.UUID `json:"employee_id,omitempty"`
	Date       string    `json:"date"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// CreateAvailability publishes availability windows
// @Summary Publish availability
// @Description Publishes the window for up to 90 consecutive days, skipping days that already have one
// @Tags availability
// @Accept json
// @Produce json
// @Param CreateAvailabilityRequest body CreateAvailabilityRequest true "Availability window"
// @Success 201 {array} AvailabilityResponse
// @Failure 403 {object} ErrorResponse "Vendors only"
// @Failure 404 {object} ErrorResponse "Service not found"
// @Failure 422 {object} ErrorResponse "Invalid window"
// @Router /availabilities [post]
// @Security BearerAuth
func (h *Handler) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAvailabilityRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid date, expected YYYY-MM-DD")
		return
	}

	created, err := h.s.CreateAvailability(ctx, service.CreateAvailabilityParams{
		ServiceID:  req.ServiceID,
		EmployeeID: req.EmployeeID,
		Date:       date,
		Start:      req.Start,
		End:        req.End,
		Days:       req.Days,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Service not found")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Only vendors can publish availability")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid window")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to publish availability")
		}

		return
	}

	resp := make([]AvailabilityResponse, 0, len(created))
	for _, a := range created {
		resp = append(resp, AvailabilityResponse{
			ID:         a.ID,
			ServiceID:  a.ServiceID,
			EmployeeID: a.EmployeeID,
			Date:       a.Date.Format(time.DateOnly),
			Start:      a.Start,
			End:        a.End,
		})
	}

	SendJSON(ctx, w, http.StatusCreated, resp)
}

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FreeSlots lists the remaining bookable slots of an availability
// @Summary Free slots
// @Tags availability
// @Produce json
// @Param id path string true "Availability ID"
// @Success 200 {array} SlotResponse
// @Failure 404 {object} ErrorResponse "Availability not found"
// @Router /availabilities/{id}/slots [get]
// @Security BearerAuth
func (h *Handler) FreeSlots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid availability id")
		return
	}

	slots, err := h.s.FreeSlots(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Availability not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list slots")
		}

		return
	}

	resp := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, SlotResponse{Start: s.Start, End: s.End})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type CreateOfferRequest struct {
	Code        string          `json:"code"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	Uses        uint32          `json:"uses"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

type OfferResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Type        string    `json:"type"`
	DiscountPct string    `json:"discount_pct"`
	Uses        uint32    `json:"uses"`
	Redeemed    uint32    `json:"redeemed"`
	Active      bool      `json:"active"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func newOfferResponse(o entity.Offer) OfferResponse {
	return OfferResponse{
		ID:          o.ID,
		Code:        o.Code,
		Type:        o.Type.String(),
		DiscountPct: o.DiscountPct.String(),
		Uses:        o.Uses,
		Redeemed:    o.Redeemed,
		Active:      o.Active,
		ExpiresAt:   o.ExpiresAt,
	}
}

// CreateOffer registers a discount code
// @Summary Create offer
// @Tags offers
// @Accept json
// @Produce json
// @Param CreateOfferRequest body CreateOfferRequest true "Offer"
// @Success 201 {object} OfferResponse
// @Failure 403 {object} ErrorResponse "Customers cannot create offers"
// @Failure 422 {object} ErrorResponse "Invalid offer"
// @Router /offers [post]
// @Security BearerAuth
func (h *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOfferRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	offer, err := h.s.CreateOffer(ctx, service.CreateOfferParams{
		Code:        req.Code,
		DiscountPct: req.DiscountPct,
		Uses:        req.Uses,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is not allowed")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid offer")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create offer")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, newOfferResponse(offer))
}

// ActivateOffer enables an admin offer
// @Summary Activate offer
// @Tags offers
// @Param id path string true "Offer ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Admins only"
// @Failure 404 {object} ErrorResponse "Offer not found"
// @Router /offers/{id}/activate [post]
// @Security BearerAuth
func (h *Handler) ActivateOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid offer id")
		return
	}

	err = h.s.ActivateOffer(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Offer not found")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is not allowed")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to activate offer")
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type VerifyOfferRequest struct {
	Code string `json:"code"`
}

type VerifyOfferResponse struct {
	Offer       OfferResponse `json:"offer"`
	Price       string        `json:"price"`
	DiscountVal string        `json:"discount_value"`
	TaxValue    string        `json:"tax_value"`
	Total       string        `json:"total"`
}

// VerifyOffer checks a code against an order
// @Summary Verify offer
// @Description Returns the discounted totals; nothing is redeemed until settlement
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param VerifyOfferRequest body VerifyOfferRequest true "Offer code"
// @Success 200 {object} VerifyOfferResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 422 {object} ErrorResponse "Offer is not redeemable"
// @Router /orders/{id}/offer/verify [post]
// @Security BearerAuth
func (h *Handler) VerifyOffer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid order id")
		return
	}

	var req VerifyOfferRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	offer, pricing, err := h.s.VerifyOffer(ctx, orderID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Order not found")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is not allowed")
		case errors.Is(err, entity.ErrInvalidOffer):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "The offer cannot be applied to this order")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to verify offer")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, VerifyOfferResponse{
		Offer:       newOfferResponse(offer),
		Price:       pricing.Price.StringFixed(1),
		DiscountVal: pricing.DiscountValue.StringFixed(1),
		TaxValue:    pricing.TaxValue.StringFixed(1),
		Total:       pricing.Total.StringFixed(1),
	})
}

// ActiveOffers lists offers usable against a vendor's orders
// @Summary Active offers
// @Tags offers
// @Produce json
// @Param vendor_id path string true "Vendor ID"
// @Success 200 {array} OfferResponse
// @Router /vendors/{vendor_id}/offers [get]
// @Security BearerAuth
func (h *Handler) ActiveOffers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vendorID, err := uuid.FromString(chi.URLParam(r, "vendor_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid vendor id")
		return
	}

	offers, err := h.s.ActiveOffers(ctx, vendorID)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list offers")
		return
	}

	resp := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, newOfferResponse(o))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type WalletResponse struct {
	ID      uuid.UUID `json:"id"`
	Balance string    `json:"balance"`
}

// Wallet returns the calling user's wallet
// @Summary Get wallet
// @Tags wallet
// @Produce json
// @Success 200 {object} WalletResponse
// @Router /wallet [get]
// @Security BearerAuth
func (h *Handler) Wallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	wallet, err := h.s.Wallet(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get wallet")
		return
	}

	SendJSON(ctx, w, http.StatusOK, WalletResponse{ID: wallet.ID, Balance: wallet.Balance.StringFixed(1)})
}

type WalletTransactionResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	OrderID   uuid.UUID `json:"order_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// WalletTransactions lists the wallet's audit trail
// @Summary Wallet transactions
// @Tags wallet
// @Produce json
// @Success 200 {array} WalletTransactionResponse
// @Router /wallet/transactions [get]
// @Security BearerAuth
func (h *Handler) WalletTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := h.s.WalletTransactions(ctx)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list wallet transactions")
		return
	}

	resp := make([]WalletTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		resp = append(resp, WalletTransactionResponse{
			ID:        tx.ID,
			Type:      tx.Type.String(),
			Amount:    tx.Amount.StringFixed(1),
			OrderID:   tx.OrderID,
			CreatedAt: tx.CreatedAt,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type DepositWalletRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// DepositWallet credits the wallet
// @Summary Deposit to wallet
// @Tags wallet
// @Accept json
// @Produce json
// @Param DepositWalletRequest body DepositWalletRequest true "Deposit amount"
// @Success 200 {object} WalletResponse
// @Failure 422 {object} ErrorResponse "Amount must be positive"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func (h *Handler) DepositWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DepositWalletRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	wallet, err := h.s.DepositWallet(ctx, req.Amount)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Amount must be positive")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to deposit")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, WalletResponse{ID: wallet.ID, Balance: wallet.Balance.StringFixed(1)})
}

type PayOrderRequest struct {
	OrderID   uuid.UUID `json:"order_id"`
	OfferCode string    `json:"offer_code,omitempty"`
}

type InvoiceLineItemResponse struct {
	ServiceName  string `json:"service_name"`
	EmployeeName string `json:"employee_name,omitempty"`
	Price        string `json:"price"`
	Quantity     uint32 `json:"quantity"`
	Date         string `json:"date,omitempty"`
}

type InvoiceResponse struct {
	ID          uuid.UUID                 `json:"id"`
	OrderID     uuid.UUID                 `json:"order_id"`
	Number      string                    `json:"number"`
	Price       string                    `json:"price"`
	DiscountVal string                    `json:"discount_value"`
	TaxValue    string                    `json:"tax_value"`
	Total       string                    `json:"total"`
	OfferCode   string                    `json:"offer_code,omitempty"`
	Status      string                    `json:"status"`
	LineItems   []InvoiceLineItemResponse `json:"line_items"`
	CreatedAt   time.Time                 `json:"created_at"`
}

func newInvoiceResponse(invoice entity.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:          invoice.ID,
		OrderID:     invoice.OrderID,
		Number:      invoice.Number(),
		Price:       invoice.Price.StringFixed(1),
		DiscountVal: invoice.DiscountVal.StringFixed(1),
		TaxValue:    invoice.TaxValue.StringFixed(1),
		Total:       invoice.Total.StringFixed(1),
		OfferCode:   invoice.OfferCode,
		Status:      invoice.Status.String(),
		CreatedAt:   invoice.CreatedAt,
	}

	for _, line := range invoice.LineItems {
		lr := InvoiceLineItemResponse{
			ServiceName:  line.ServiceName,
			EmployeeName: line.EmployeeName,
			Price:        line.Price.StringFixed(1),
			Quantity:     line.Quantity,
		}

		if !line.Date.IsZero() {
			lr.Date = line.Date.Format(time.DateOnly)
		}

		resp.LineItems = append(resp.LineItems, lr)
	}

	return resp
}

// PayWithWallet settles an order from the wallet
// @Summary Pay with wallet
// @Tags payments
// @Accept json
// @Produce json
// @Param PayOrderRequest body PayOrderRequest true "Order to pay"
// @Success 201 {object} InvoiceResponse
// @Failure 402 {object} ErrorResponse "Insufficient funds"
// @Failure 409 {object} ErrorResponse "Order is not payable"
// @Failure 422 {object} ErrorResponse "Offer is not redeemable"
// @Router /payments/wallet [post]
// @Security BearerAuth
func (h *Handler) PayWithWallet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PayOrderRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	invoice, err := h.s.PayWithWallet(ctx, req.OrderID, req.OfferCode)
	if err != nil {
		h.sendPaymentErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, newInvoiceResponse(invoice))
}

type AlrajhiPageRequest struct {
	OrderID    uuid.UUID `json:"order_id"`
	OfferCode  string    `json:"offer_code,omitempty"`
	WithWallet bool      `json:"with_wallet"`
}

type PaymentPageResponse struct {
	URL          string `json:"url"`
	Amount       string `json:"amount"`
	WalletAmount string `json:"wallet_amount,omitempty"`
}

// CreateAlrajhiPage opens a hosted card payment page
// @Summary Al-Rajhi payment page
// @Description With with_wallet the balance is applied first and only the remainder is charged to the card
// @Tags payments
// @Accept json
// @Produce json
// @Param AlrajhiPageRequest body AlrajhiPageRequest true "Order to pay"
// @Success 201 {object} PaymentPageResponse
// @Failure 409 {object} ErrorResponse "Order is not payable or wallet covers the total"
// @Failure 422 {object} ErrorResponse "Offer is not redeemable"
// @Router /payments/alrajhi [post]
// @Security BearerAuth
func (h *Handler) CreateAlrajhiPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AlrajhiPageRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	page, err := h.s.CreateAlrajhiPage(ctx, req.OrderID, req.OfferCode, req.WithWallet)
	if err != nil {
		if errors.Is(err, entity.ErrPayViaWallet) {
			SendJSONErr(ctx, w, http.StatusConflict, err, "The wallet balance covers the total, pay with the wallet instead")
			return
		}

		h.sendPaymentErr(ctx, w, err)

		return
	}

	resp := PaymentPageResponse{URL: page.URL, Amount: page.Amount.StringFixed(1)}
	if page.WalletAmount.IsPositive() {
		resp.WalletAmount = page.WalletAmount.StringFixed(1)
	}

	SendJSON(ctx, w, http.StatusCreated, resp)
}

// AlrajhiCallback receives the gateway's payment result
// @Summary Al-Rajhi callback
// @Description Accepts the encrypted trandata blob posted by the gateway
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce json
// @Param trandata formData string true "Encrypted transaction data"
// @Success 201 {object} InvoiceResponse
// @Failure 400 {object} ErrorResponse "Callback rejected"
// @Router /payments/callbacks/alrajhi [post]
func (h *Handler) AlrajhiCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := r.ParseForm()
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid form data")
		return
	}

	trandata := r.PostFormValue("trandata")
	if trandata == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, errors.New("empty trandata"), "Missing trandata")
		return
	}

	invoice, err := h.s.AlrajhiCallback(ctx, trandata)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPaymentPage), errors.Is(err, entity.ErrAmountMismatch):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Callback rejected")
		case errors.Is(err, entity.ErrAlreadyPaid):
			SendJSONErr(ctx, w, http.StatusConflict, err, "The order is already paid")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to process callback")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, newInvoiceResponse(invoice))
}

// CreateTamaraCheckout opens a BNPL checkout session
// @Summary Tamara checkout
// @Tags payments
// @Accept json
// @Produce json
// @Param PayOrderRequest body PayOrderRequest true "Order to pay"
// @Success 201 {object} PaymentPageResponse
// @Failure 409 {object} ErrorResponse "Order is not payable"
// @Failure 422 {object} ErrorResponse "Offer is not redeemable"
// @Router /payments/tamara [post]
// @Security BearerAuth
func (h *Handler) CreateTamaraCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PayOrderRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	page, err := h.s.CreateTamaraCheckout(ctx, req.OrderID, req.OfferCode)
	if err != nil {
		h.sendPaymentErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, PaymentPageResponse{URL: page.URL, Amount: page.Amount.StringFixed(1)})
}

type TamaraWebhookRequest struct {
	OrderID   string `json:"order_id"`
	EventType string `json:"event_type"`
}

// TamaraWebhook receives order notifications from Tamara
// @Summary Tamara webhook
// @Tags payments
// @Accept json
// @Param TamaraWebhookRequest body TamaraWebhookRequest true "Notification"
// @Success 204
// @Failure 400 {object} ErrorResponse "Webhook rejected"
// @Router /payments/callbacks/tamara [post]
func (h *Handler) TamaraWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TamaraWebhookRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.s.TamaraWebhook(ctx, req.OrderID, req.EventType)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPaymentPage):
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Webhook rejected")
		case errors.Is(err, entity.ErrAlreadyPaid):
			SendJSONErr(ctx, w, http.StatusConflict, err, "The order is already paid")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to process webhook")
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sendPaymentErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Order not found")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is not allowed")
	case errors.Is(err, entity.ErrOrderState):
		SendJSONErr(ctx, w, http.StatusConflict, err, "The order is not awaiting payment")
	case errors.Is(err, entity.ErrAlreadyPaid):
		SendJSONErr(ctx, w, http.StatusConflict, err, "The order is already paid")
	case errors.Is(err, entity.ErrInsufficientFunds):
		SendJSONErr(ctx, w, http.StatusPaymentRequired, err, "The wallet balance is not enough")
	case errors.Is(err, entity.ErrInvalidOffer):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "The offer cannot be applied to this order")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Payment failed")
	}
}

// Invoices lists the calling customer's invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param page query int false "Page number, starts at 1"
// @Param limit query int false "Page size, max 100"
// @Success 200 {object} InvoicesResponse
// @Router /invoices [get]
// @Security BearerAuth
func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, limit := uint64(defaultPage), uint64(defaultLimit)

	if p := r.URL.Query().Get("page"); p != "" {
		parsed, err := strconv.ParseUint(p, 10, 64)
		if err != nil || parsed == 0 {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "page must be a positive integer")
			return
		}

		page = parsed
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.ParseUint(l, 10, 64)
		if err != nil || parsed == 0 || parsed > maxLimit {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "limit must be between 1 and 100")
			return
		}

		limit = parsed
	}

	invoices, total, err := h.s.Invoices(ctx, page, limit)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list invoices")
		return
	}

	resp := InvoicesResponse{Total: total, Invoices: make([]InvoiceResponse, 0, len(invoices))}
	for _, invoice := range invoices {
		resp.Invoices = append(resp.Invoices, newInvoiceResponse(invoice))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type InvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

// Invoice returns a single invoice
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 403 {object} ErrorResponse "Not your invoice"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id} [get]
// @Security BearerAuth
func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	invoice, err := h.s.Invoice(ctx, id)
	if err != nil {
		h.sendInvoiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(invoice))
}

// OrderInvoice returns the invoice issued for an order
// @Summary Get order invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} InvoiceResponse
// @Failure 403 {object} ErrorResponse "Not your invoice"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /orders/{id}/invoice [get]
// @Security BearerAuth
func (h *Handler) OrderInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid order id")
		return
	}

	invoice, err := h.s.InvoiceByOrderID(ctx, orderID)
	if err != nil {
		h.sendInvoiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, newInvoiceResponse(invoice))
}

// CancelInvoice cancels an issued invoice
// @Summary Cancel invoice
// @Description Marks the invoice cancelled for refund handling
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Admins only"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Router /invoices/{id}/cancel [post]
// @Security BearerAuth
func (h *Handler) CancelInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	err = h.s.CancelInvoice(ctx, id)
	if err != nil {
		h.sendInvoiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sendInvoiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Invoice not found")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is not allowed")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get invoice")
	}
}

type RegisterPushTokenRequest struct {
	Token string `json:"token"`
}

// RegisterPushToken associates a device token with the calling user
// @Summary Register push token
// @Tags push
// @Accept json
// @Param RegisterPushTokenRequest body RegisterPushTokenRequest true "Device token"
// @Success 204
// @Failure 422 {object} ErrorResponse "Empty token"
// @Router /push-tokens [post]
// @Security BearerAuth
func (h *Handler) RegisterPushToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterPushTokenRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.s.RegisterPushToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Empty token")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to register token")
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
