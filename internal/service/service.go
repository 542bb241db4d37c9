package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/care-sa/booking/internal/clients/alrajhi"
	"github.com/care-sa/booking/internal/clients/tamara"
	"github.com/care-sa/booking/internal/entity"
	"github.com/care-sa/booking/internal/repository"
	"github.com/care-sa/booking/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	CreateOrder(ctx context.Context, order entity.Order, reservations []entity.Reservation) error
	Order(ctx context.Context, id uuid.UUID) (entity.Order, error)
	Orders(ctx context.Context, customerID uuid.UUID, f entity.OrderFilter) ([]entity.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus, updatedAt time.Time) error
	SetOrderReservations(ctx context.Context, orderID uuid.UUID, active bool) error

	Service(ctx context.Context, id uuid.UUID) (entity.Service, error)
	Employee(ctx context.Context, id uuid.UUID) (entity.Employee, error)
	Address(ctx context.Context, id uuid.UUID) (entity.Address, error)
	Customer(ctx context.Context, id uuid.UUID) (repository.Customer, error)
	EnsureCustomer(ctx context.Context, c repository.Customer) error

	Availability(ctx context.Context, id uuid.UUID) (entity.Availability, error)
	CreateAvailability(ctx context.Context, a entity.Availability) error
	HasOverlappingAvailability(ctx context.Context, serviceID, employeeID uuid.UUID, date, start, end time.Time) (bool, error)
	ReservedSlots(ctx context.Context, a entity.Availability) ([]entity.Slot, error)

	OfferByCode(ctx context.Context, code string) (entity.Offer, error)
	Offer(ctx context.Context, id uuid.UUID) (entity.Offer, error)
	OfferRedeemedBy(ctx context.Context, offerID, userID uuid.UUID) (bool, error)
	CreateOffer(ctx context.Context, o entity.Offer) error
	ActivateOffer(ctx context.Context, id uuid.UUID) error
	ActiveOffers(ctx context.Context, vendorID uuid.UUID, now time.Time) ([]entity.Offer, error)

	WalletByUserID(ctx context.Context, userID uuid.UUID) (entity.Wallet, error)
	EnsureWallet(ctx context.Context, userID uuid.UUID) (entity.Wallet, error)
	Deposit(ctx context.Context, tx entity.WalletTransaction) error
	WalletTransactions(ctx context.Context, walletID uuid.UUID) ([]entity.WalletTransaction, error)

	CreateAlrajhiPage(ctx context.Context, p entity.AlrajhiPage) error
	ActiveAlrajhiPage(ctx context.Context, pageID, trackID string, notBefore time.Time) (entity.AlrajhiPage, error)
	CreateTamaraPage(ctx context.Context, p entity.TamaraPage) error
	ActiveTamaraPage(ctx context.Context, tamaraOrderID string) (entity.TamaraPage, error)
	PendingTamaraPages(ctx context.Context, cutoff time.Time) ([]entity.TamaraPage, error)
	DeactivateStalePages(ctx context.Context, cutoff time.Time) (int64, error)
	DeactivateOrderPages(ctx context.Context, orderID uuid.UUID) error

	Settle(ctx context.Context, s repository.Settlement) (entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	InvoiceByOrderID(ctx context.Context, orderID uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, customerID uuid.UUID, page, limit uint64) ([]entity.Invoice, int, error)
	CancelInvoice(ctx context.Context, id uuid.UUID) error

	RegisterPushToken(ctx context.Context, t entity.PushToken) error
}

type Producer interface {
	SendOrderEvent(ctx context.Context, event broker.OrderEvent)
	SendPaymentEvent(ctx context.Context, event broker.PaymentEvent)
}

type AlrajhiGateway interface {
	GetPage(ctx context.Context, amount decimal.Decimal, trackID string) (alrajhi.Page, error)
	DecodeCallback(trandata string) (alrajhi.CallbackData, error)
}

type TamaraGateway interface {
	CreateCheckoutSession(ctx context.Context, in tamara.CheckoutInput) (tamara.Checkout, error)
	Authorise(ctx context.Context, orderID string) (tamara.AuthoriseResponse, error)
	Capture(ctx context.Context, orderID string, total decimal.Decimal) (tamara.CaptureResponse, error)
	OrderStatus(ctx context.Context, orderID string) (tamara.OrderResponse, error)
}

type Service struct {
	repo     Repository
	producer Producer
	alrajhi  AlrajhiGateway
	tamara   TamaraGateway

	pageTTL     time.Duration
	backCashPct decimal.Decimal
}

func New(
	repo Repository,
	producer Producer,
	alrajhiGW AlrajhiGateway,
	tamaraGW TamaraGateway,
	pageTTL time.Duration,
	backCashPct decimal.Decimal,
) *Service {
	return &Service{
		repo:        repo,
		producer:    producer,
		alrajhi:     alrajhiGW,
		tamara:      tamaraGW,
		pageTTL:     pageTTL,
		backCashPct: backCashPct,
	}
}
