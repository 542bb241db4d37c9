package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/care-sa/booking/internal/clients/tamara"
	"github.com/care-sa/booking/internal/entity"
	"github.com/care-sa/booking/internal/repository"
	"github.com/care-sa/booking/pkg/broker"
)

// resultCaptured is the only gateway result accepted as a successful
// Al-Rajhi capture.
const resultCaptured = "CAPTURED"

// PayWithWallet settles an approved order entirely from the customer's
// wallet and returns the issued invoice.
func (s *Service) PayWithWallet(ctx context.Context, orderID uuid.UUID, offerCode string) (entity.Invoice, error) {
	order, err := s.payableOrder(ctx, orderID)
	if err != nil {
		return entity.Invoice{}, err
	}

	offer, err := s.optionalOffer(ctx, order, offerCode)
	if err != nil {
		return entity.Invoice{}, err
	}

	pricing := order.Total(offerDiscount(offer))

	wallet, err := s.repo.EnsureWallet(ctx, order.CustomerID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("ensure wallet: %w", err)
	}

	if !wallet.CoversAmount(pricing.Total) {
		return entity.Invoice{}, entity.ErrInsufficientFunds
	}

	now := time.Now().UTC()

	settlement, err := s.buildSettlement(ctx, order, offer, pricing, entity.Payment{
		ID:       uuid.Must(uuid.NewV4()),
		OrderID:  order.ID,
		Provider: entity.ProviderWallet,
		Amount:   pricing.Total,
	}, now)
	if err != nil {
		return entity.Invoice{}, err
	}

	settlement.WalletDebit = &entity.WalletTransaction{
		ID:        uuid.Must(uuid.NewV4()),
		WalletID:  wallet.ID,
		Type:      entity.WalletTxWithdraw,
		Amount:    pricing.Total,
		OrderID:   order.ID,
		CreatedAt: now,
	}
	settlement.WalletDetail = &entity.WalletPaymentDetail{
		PaymentID:    settlement.Payment.ID,
		WalletID:     wallet.ID,
		WalletAmount: pricing.Total,
	}

	return s.settle(ctx, settlement)
}

// CreateAlrajhiPage opens a hosted payment page for an approved order.
// With withWallet the customer's balance is applied first: the page is
// issued only for the remainder, and ErrPayViaWallet is returned when
// the wallet alone covers the total.
func (s *Service) CreateAlrajhiPage(ctx context.Context, orderID uuid.UUID, offerCode string, withWallet bool) (entity.AlrajhiPage, error) {
	order, err := s.payableOrder(ctx, orderID)
	if err != nil {
		return entity.AlrajhiPage{}, err
	}

	offer, err := s.optionalOffer(ctx, order, offerCode)
	if err != nil {
		return entity.AlrajhiPage{}, err
	}

	pricing := order.Total(offerDiscount(offer))

	pageAmount := pricing.Total
	walletAmount := decimal.Zero

	if withWallet {
		wallet, err := s.repo.EnsureWallet(ctx, order.CustomerID)
		if err != nil {
			return entity.AlrajhiPage{}, fmt.Errorf("ensure wallet: %w", err)
		}

		if wallet.CoversAmount(pricing.Total) {
			return entity.AlrajhiPage{}, entity.ErrPayViaWallet
		}

		walletAmount = wallet.Balance
		pageAmount = pricing.Total.Sub(wallet.Balance)
	}

	trackID := uuid.Must(uuid.NewV4()).String()

	gwPage, err := s.alrajhi.GetPage(ctx, pageAmount, trackID)
	if err != nil {
		return entity.AlrajhiPage{}, fmt.Errorf("get payment page: %w", err)
	}

	page := entity.AlrajhiPage{
		ID:           uuid.Must(uuid.NewV4()),
		OrderID:      order.ID,
		PageID:       gwPage.PageID,
		TrackID:      gwPage.TrackID,
		URL:          gwPage.URL,
		Amount:       pageAmount,
		WalletAmount: walletAmount,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	if offer != nil {
		page.OfferID = offer.ID
	}

	err = s.repo.CreateAlrajhiPage(ctx, page)
	if err != nil {
		return entity.AlrajhiPage{}, fmt.Errorf("create payment page: %w", err)
	}

	slog.InfoContext(ctx, "alrajhi page issued",
		"order_id", order.ID, "track_id", trackID, "amount", pageAmount, "wallet_amount", walletAmount)

	return page, nil
}

// AlrajhiCallback reconciles a gateway callback against the issued page
// and settles the order. The callback is rejected unless the page is
// still within its validity window, the order awaits payment, the
// result is a capture and the captured amount covers the quote.
func (s *Service) AlrajhiCallback(ctx context.Context, trandata string) (entity.Invoice, error) {
	data, err := s.alrajhi.DecodeCallback(trandata)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("decode callback: %w", err)
	}

	now := time.Now().UTC()

	page, err := s.repo.ActiveAlrajhiPage(ctx, data.PaymentID, data.TrackID, now.Add(-s.pageTTL))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Invoice{}, fmt.Errorf("page %s/%s: %w", data.PaymentID, data.TrackID, entity.ErrPaymentPage)
		}

		return entity.Invoice{}, fmt.Errorf("get payment page: %w", err)
	}

	order, err := s.repo.Order(ctx, page.OrderID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get order %s: %w", page.OrderID, err)
	}

	if order.Status != entity.OrderStatusApproval || data.Result != resultCaptured {
		return entity.Invoice{}, fmt.Errorf("order %s result %q: %w", order.ID, data.Result, entity.ErrPaymentPage)
	}

	if page.Amount.GreaterThan(data.Amt) {
		return entity.Invoice{}, fmt.Errorf("captured %s of %s: %w", data.Amt, page.Amount, entity.ErrAmountMismatch)
	}

	offer, err := s.pageOffer(ctx, page.OfferID)
	if err != nil {
		return entity.Invoice{}, err
	}

	pricing := order.Total(offerDiscount(offer))

	provider := entity.ProviderAlrajhi
	if page.WalletAmount.IsPositive() {
		provider = entity.ProviderAlrajhiWallet
	}

	settlement, err := s.buildSettlement(ctx, order, offer, pricing, entity.Payment{
		ID:       uuid.Must(uuid.NewV4()),
		OrderID:  order.ID,
		Provider: provider,
		Amount:   pricing.Total,
	}, now)
	if err != nil {
		return entity.Invoice{}, err
	}

	settlement.AlrajhiDetail = &entity.AlrajhiPaymentDetail{
		PaymentID:        settlement.Payment.ID,
		GatewayPaymentID: data.PaymentID,
		TranID:           data.TranID,
		TrackID:          data.TrackID,
		Reference:        data.Ref,
		Amount:           data.Amt,
	}

	if page.WalletAmount.IsPositive() {
		wallet, err := s.repo.EnsureWallet(ctx, order.CustomerID)
		if err != nil {
			return entity.Invoice{}, fmt.Errorf("ensure wallet: %w", err)
		}

		settlement.WalletDebit = &entity.WalletTransaction{
			ID:        uuid.Must(uuid.NewV4()),
			WalletID:  wallet.ID,
			Type:      entity.WalletTxWithdraw,
			Amount:    page.WalletAmount,
			OrderID:   order.ID,
			CreatedAt: now,
		}
		settlement.WalletDetail = &entity.WalletPaymentDetail{
			PaymentID:     settlement.Payment.ID,
			WalletID:      wallet.ID,
			WalletAmount:  page.WalletAmount,
			GatewayAmount: page.Amount,
		}
	}

	s.addBackCash(ctx, settlement, order, page.Amount, now)

	return s.settle(ctx, settlement)
}

// CreateTamaraCheckout opens a BNPL checkout session for an approved
// order.
func (s *Service) CreateTamaraCheckout(ctx context.Context, orderID uuid.UUID, offerCode string) (entity.TamaraPage, error) {
	order, err := s.payableOrder(ctx, orderID)
	if err != nil {
		return entity.TamaraPage{}, err
	}

	offer, err := s.optionalOffer(ctx, order, offerCode)
	if err != nil {
		return entity.TamaraPage{}, err
	}

	pricing := order.Total(offerDiscount(offer))

	customer, err := s.repo.Customer(ctx, order.CustomerID)
	if err != nil {
		return entity.TamaraPage{}, fmt.Errorf("get customer: %w", err)
	}

	input := tamara.CheckoutInput{
		ReferenceID: order.ID.String(),
		OrderNumber: order.ID.String(),
		Total:       pricing.Total,
		Tax:         pricing.TaxValue,
		Discount:    pricing.DiscountValue,
		Consumer:    tamaraConsumer(customer),
	}

	for _, item := range order.Items {
		input.Items = append(input.Items, tamara.Item{
			ReferenceID: item.ID.String(),
			Type:        "Digital",
			Name:        item.ServiceName,
			SKU:         item.ServiceID.String(),
			Quantity:    item.Quantity,
			UnitPrice:   tamara.NewMoney(item.Price),
			TotalAmount: tamara.NewMoney(item.Price.Mul(decimal.New(int64(item.Quantity), 0))),
		})
	}

	if order.AddressID != uuid.Nil {
		address, err := s.repo.Address(ctx, order.AddressID)
		if err != nil {
			return entity.TamaraPage{}, fmt.Errorf("get address: %w", err)
		}

		first, last := splitName(customer.Name)
		input.Address = tamara.Address{
			FirstName:   first,
			LastName:    last,
			Line1:       address.Street,
			City:        address.City,
			CountryCode: "SA",
		}
	}

	checkout, err := s.tamara.CreateCheckoutSession(ctx, input)
	if err != nil {
		return entity.TamaraPage{}, fmt.Errorf("create checkout session: %w", err)
	}

	page := entity.TamaraPage{
		ID:            uuid.Must(uuid.NewV4()),
		OrderID:       order.ID,
		TamaraOrderID: checkout.OrderID,
		CheckoutID:    checkout.CheckoutID,
		URL:           checkout.CheckoutURL,
		Amount:        pricing.Total,
		Active:        true,
		CreatedAt:     time.Now().UTC(),
	}
	if offer != nil {
		page.OfferID = offer.ID
	}

	err = s.repo.CreateTamaraPage(ctx, page)
	if err != nil {
		return entity.TamaraPage{}, fmt.Errorf("create checkout page: %w", err)
	}

	slog.InfoContext(ctx, "tamara checkout opened",
		"order_id", order.ID, "tamara_order_id", checkout.OrderID, "amount", pricing.Total)

	return page, nil
}

// TamaraWebhook drives the settlement side of the BNPL flow: on an
// approved notification the order is authorised and captured with
// Tamara, then settled locally. Other event types are acknowledged and
// ignored.
func (s *Service) TamaraWebhook(ctx context.Context, tamaraOrderID, eventType string) error {
	if eventType != "order_"+tamara.StatusApproved {
		slog.InfoContext(ctx, "tamara webhook ignored", "tamara_order_id", tamaraOrderID, "event", eventType)
		return nil
	}

	page, err := s.repo.ActiveTamaraPage(ctx, tamaraOrderID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return fmt.Errorf("tamara order %s: %w", tamaraOrderID, entity.ErrPaymentPage)
		}

		return fmt.Errorf("get checkout page: %w", err)
	}

	return s.settleTamaraPage(ctx, page)
}

// settleTamaraPage runs the authorise-capture-settle sequence for an
// approved checkout. Shared by the webhook and the reconcile job.
func (s *Service) settleTamaraPage(ctx context.Context, page entity.TamaraPage) error {
	tamaraOrderID := page.TamaraOrderID

	order, err := s.repo.Order(ctx, page.OrderID)
	if err != nil {
		return fmt.Errorf("get order %s: %w", page.OrderID, err)
	}

	if order.Status != entity.OrderStatusApproval {
		return fmt.Errorf("order %s is %s: %w", order.ID, order.Status, entity.ErrPaymentPage)
	}

	auth, err := s.tamara.Authorise(ctx, tamaraOrderID)
	if err != nil {
		return fmt.Errorf("authorise: %w", err)
	}

	if auth.Status != tamara.StatusAuthorised {
		return fmt.Errorf("authorise returned %q: %w", auth.Status, entity.ErrPaymentPage)
	}

	capture, err := s.tamara.Capture(ctx, tamaraOrderID, page.Amount)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	if capture.CaptureID == "" {
		return fmt.Errorf("capture returned no id: %w", entity.ErrPaymentPage)
	}

	offer, err := s.pageOffer(ctx, page.OfferID)
	if err != nil {
		return err
	}

	pricing := order.Total(offerDiscount(offer))
	now := time.Now().UTC()

	settlement, err := s.buildSettlement(ctx, order, offer, pricing, entity.Payment{
		ID:       uuid.Must(uuid.NewV4()),
		OrderID:  order.ID,
		Provider: entity.ProviderTamara,
		Amount:   pricing.Total,
	}, now)
	if err != nil {
		return err
	}

	settlement.TamaraDetail = &entity.TamaraPaymentDetail{
		PaymentID:     settlement.Payment.ID,
		TamaraOrderID: tamaraOrderID,
		CheckoutID:    page.CheckoutID,
		CaptureID:     capture.CaptureID,
		Amount:        page.Amount,
	}

	s.addBackCash(ctx, settlement, order, page.Amount, now)

	_, err = s.settle(ctx, settlement)

	return err
}

// reconcileAfter is how long a checkout may sit before the reconcile
// job starts polling Tamara for its state.
const reconcileAfter = 10 * time.Minute

// ReconcileTamaraPages settles active checkouts whose approval webhook
// never arrived. Pages whose order already moved on fail the usual
// state checks and are skipped.
func (s *Service) ReconcileTamaraPages(ctx context.Context) error {
	pages, err := s.repo.PendingTamaraPages(ctx, time.Now().UTC().Add(-reconcileAfter))
	if err != nil {
		return fmt.Errorf("list pending tamara pages: %w", err)
	}

	for _, page := range pages {
		res, err := s.tamara.OrderStatus(ctx, page.TamaraOrderID)
		if err != nil {
			slog.ErrorContext(ctx, "tamara status poll failed", "tamara_order_id", page.TamaraOrderID, "error", err)
			continue
		}

		if res.Status != tamara.StatusApproved {
			continue
		}

		err = s.settleTamaraPage(ctx, page)
		if err != nil {
			slog.ErrorContext(ctx, "tamara reconcile failed", "tamara_order_id", page.TamaraOrderID, "error", err)
			continue
		}

		slog.InfoContext(ctx, "tamara checkout reconciled", "tamara_order_id", page.TamaraOrderID, "order_id", page.OrderID)
	}

	return nil
}

// payableOrder loads the order and checks the caller may pay it: the
// order is the caller's, platform-settled, and approved by the vendor.
func (s *Service) payableOrder(ctx context.Context, orderID uuid.UUID) (entity.Order, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	order, err := s.repo.Order(ctx, orderID)
	if err != nil {
		return entity.Order{}, fmt.Errorf("get order %s: %w", orderID, err)
	}

	if order.CustomerID != user.ID {
		return entity.Order{}, entity.ErrForbidden
	}

	if order.PaymentType != entity.PaymentTypeSystem {
		return entity.Order{}, fmt.Errorf("order %s is vendor-settled: %w", orderID, entity.ErrOrderState)
	}

	if order.Status != entity.OrderStatusApproval {
		return entity.Order{}, fmt.Errorf("order %s is %s: %w", orderID, order.Status, entity.ErrOrderState)
	}

	return order, nil
}

// optionalOffer verifies the code when one was supplied.
func (s *Service) optionalOffer(ctx context.Context, order entity.Order, code string) (*entity.Offer, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil
	}

	offer, err := s.verifiedOffer(ctx, order, code)
	if err != nil {
		return nil, err
	}

	return &offer, nil
}

// pageOffer re-reads the offer frozen onto a payment page. The offer
// was verified when the page was issued; settlement re-checks only the
// per-customer redemption, atomically.
func (s *Service) pageOffer(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error) {
	if offerID == uuid.Nil {
		return nil, nil
	}

	offer, err := s.repo.Offer(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("get offer %s: %w", offerID, err)
	}

	return &offer, nil
}

func offerDiscount(offer *entity.Offer) decimal.Decimal {
	if offer == nil {
		return decimal.Zero
	}

	return offer.DiscountPct
}

// buildSettlement assembles the invoice snapshot common to every
// provider. Provider-specific fields are filled in by the caller.
func (s *Service) buildSettlement(
	ctx context.Context,
	order entity.Order,
	offer *entity.Offer,
	pricing entity.Pricing,
	payment entity.Payment,
	now time.Time,
) (*repository.Settlement, error) {
	payment.CreatedAt = now

	invoice := entity.Invoice{
		ID:          uuid.Must(uuid.NewV4()),
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		VendorID:    order.VendorID,
		Price:       pricing.Price,
		DiscountVal: pricing.DiscountValue,
		TaxValue:    pricing.TaxValue,
		Total:       pricing.Total,
		Status:      entity.InvoiceStatusCompleted,
		CreatedAt:   now,
	}

	settlement := &repository.Settlement{
		Order:   order,
		Invoice: invoice,
		Payment: payment,
		Now:     now,
	}
	settlement.Payment.InvoiceID = invoice.ID

	if offer != nil {
		settlement.Invoice.OfferCode = offer.Code
		offerID := offer.ID
		settlement.OfferID = &offerID
	}

	for _, item := range order.Items {
		line := entity.InvoiceLineItem{
			ID:          uuid.Must(uuid.NewV4()),
			InvoiceID:   invoice.ID,
			ServiceName: item.ServiceName,
			Price:       item.Price,
			DiscountPct: item.DiscountPct,
			TaxPct:      item.TaxPct,
			Quantity:    item.Quantity,
			Date:        item.Date,
		}

		if item.EmployeeID != uuid.Nil {
			employee, err := s.repo.Employee(ctx, item.EmployeeID)
			if err != nil {
				return nil, fmt.Errorf("get employee %s: %w", item.EmployeeID, err)
			}

			line.EmployeeName = employee.Name
		}

		settlement.LineItems = append(settlement.LineItems, line)
	}

	return settlement, nil
}

// addBackCash credits a share of the gateway-paid portion back to the
// customer's wallet as part of the settlement. Wallet-only payments
// earn nothing.
func (s *Service) addBackCash(ctx context.Context, settlement *repository.Settlement, order entity.Order, gatewayAmount decimal.Decimal, now time.Time) {
	if !s.backCashPct.IsPositive() || !gatewayAmount.IsPositive() {
		return
	}

	wallet, err := s.repo.EnsureWallet(ctx, order.CustomerID)
	if err != nil {
		slog.ErrorContext(ctx, "ensure wallet for back-cash", "order_id", order.ID, "error", err)
		return
	}

	amount := gatewayAmount.Mul(s.backCashPct).Div(decimal.New(100, 0)).Round(1)
	if !amount.IsPositive() {
		return
	}

	settlement.BackCash = &entity.WalletTransaction{
		ID:        uuid.Must(uuid.NewV4()),
		WalletID:  wallet.ID,
		Type:      entity.WalletTxBackCash,
		Amount:    amount,
		OrderID:   order.ID,
		CreatedAt: now,
	}
}

// settle runs the settlement transaction and publishes the payment
// event.
func (s *Service) settle(ctx context.Context, settlement *repository.Settlement) (entity.Invoice, error) {
	invoice, err := s.repo.Settle(ctx, *settlement)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("settle order %s: %w", settlement.Order.ID, err)
	}

	slog.InfoContext(ctx, "order settled",
		"order_id", settlement.Order.ID,
		"invoice", invoice.Number(),
		"provider", settlement.Payment.Provider,
		"amount", settlement.Payment.Amount)

	s.producer.SendPaymentEvent(ctx, broker.PaymentEvent{
		Type:       broker.EventPaymentSettled,
		OrderID:    settlement.Order.ID,
		InvoiceID:  invoice.ID,
		CustomerID: settlement.Order.CustomerID,
		VendorID:   settlement.Order.VendorID,
		Provider:   settlement.Payment.Provider.String(),
		Amount:     settlement.Payment.Amount,
	})

	return invoice, nil
}

func tamaraConsumer(c repository.Customer) tamara.Consumer {
	first, last := splitName(c.Name)

	return tamara.Consumer{
		FirstName:   first,
		LastName:    last,
		PhoneNumber: c.Phone,
		Email:       c.Email,
	}
}

func splitName(name string) (string, string) {
	first, last, found := strings.Cut(strings.TrimSpace(name), " ")
	if !found {
		return first, first
	}

	return first, last
}
