package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/care-sa/booking/internal/clients/alrajhi"
	"github.com/care-sa/booking/internal/clients/tamara"
	"github.com/care-sa/booking/internal/entity"
	"github.com/care-sa/booking/internal/mocks"
	"github.com/care-sa/booking/internal/repository"
	"github.com/care-sa/booking/internal/service"
)

type env struct {
	repo     *mocks.MockRepository
	producer *mocks.MockProducer
	alrajhi  *mocks.MockAlrajhiGateway
	tamara   *mocks.MockTamaraGateway
	svc      *service.Service
}

func newEnv(t *testing.T, backCashPct decimal.Decimal) env {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)
	alrajhiGW := mocks.NewMockAlrajhiGateway(ctrl)
	tamaraGW := mocks.NewMockTamaraGateway(ctrl)

	return env{
		repo:     repo,
		producer: producer,
		alrajhi:  alrajhiGW,
		tamara:   tamaraGW,
		svc:      service.New(repo, producer, alrajhiGW, tamaraGW, 30*time.Minute, backCashPct),
	}
}

func customerCtx(id uuid.UUID) context.Context {
	return entity.CtxWithUser(context.Background(), entity.User{
		ID:    id,
		Name:  "Sara Alghamdi",
		Email: "sara@example.com",
		Phone: "+966500000001",
		Type:  entity.UserTypeCustomer,
	})
}

func vendorCtx(vendorID uuid.UUID) context.Context {
	return entity.CtxWithUser(context.Background(), entity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Type:     entity.UserTypeVendor,
		VendorID: vendorID,
	})
}

func adminCtx() context.Context {
	return entity.CtxWithUser(context.Background(), entity.User{
		ID:   uuid.Must(uuid.NewV4()),
		Type: entity.UserTypeAdmin,
	})
}

func approvedOrder(customerID uuid.UUID) entity.Order {
	return entity.Order{
		ID:          uuid.Must(uuid.NewV4()),
		CustomerID:  customerID,
		VendorID:    uuid.Must(uuid.NewV4()),
		Status:      entity.OrderStatusApproval,
		PaymentType: entity.PaymentTypeSystem,
		TaxPct:      decimal.New(15, 0),
		Items: []entity.OrderItem{
			{
				ID:          uuid.Must(uuid.NewV4()),
				ServiceID:   uuid.Must(uuid.NewV4()),
				ServiceName: "Deep cleaning",
				Price:       decimal.New(200, 0),
				Quantity:    1,
			},
		},
	}
}

func TestService_PayWithWallet(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)
	wallet := entity.Wallet{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  customerID,
		Balance: decimal.New(300, 0),
	}

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().EnsureWallet(gomock.Any(), customerID).Return(wallet, nil)
	e.repo.EXPECT().Settle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s repository.Settlement) (entity.Invoice, error) {
			require.Equal(t, entity.ProviderWallet, s.Payment.Provider)
			require.True(t, s.Payment.Amount.Equal(decimal.NewFromFloat(230.0)), s.Payment.Amount.String())
			require.NotNil(t, s.WalletDebit)
			require.True(t, s.WalletDebit.Amount.Equal(decimal.NewFromFloat(230.0)))
			require.Equal(t, entity.WalletTxWithdraw, s.WalletDebit.Type)
			require.NotNil(t, s.WalletDetail)
			require.Nil(t, s.OfferID)
			require.Nil(t, s.BackCash)
			require.Len(t, s.LineItems, 1)
			require.Equal(t, "Deep cleaning", s.LineItems[0].ServiceName)

			inv := s.Invoice
			inv.Year, inv.AnnualFigure = 2026, 1
			return inv, nil
		})
	e.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any())

	invoice, err := e.svc.PayWithWallet(customerCtx(customerID), order.ID, "")
	require.NoError(t, err)
	require.Equal(t, "INV-2026-000001", invoice.Number())
	require.True(t, invoice.Total.Equal(decimal.NewFromFloat(230.0)))
}

func TestService_PayWithWallet_InsufficientFunds(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().EnsureWallet(gomock.Any(), customerID).Return(entity.Wallet{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  customerID,
		Balance: decimal.New(100, 0),
	}, nil)

	_, err := e.svc.PayWithWallet(customerCtx(customerID), order.ID, "")
	require.ErrorIs(t, err, entity.ErrInsufficientFunds)
}

func TestService_PayWithWallet_NotApproved(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)
	order.Status = entity.OrderStatusPending

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)

	_, err := e.svc.PayWithWallet(customerCtx(customerID), order.ID, "")
	require.ErrorIs(t, err, entity.ErrOrderState)
}

func TestService_ApproveOrder(t *testing.T) {
	t.Parallel()

	order := approvedOrder(uuid.Must(uuid.NewV4()))
	order.Status = entity.OrderStatusPending

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().SetOrderReservations(gomock.Any(), order.ID, true).Return(nil)
	e.repo.EXPECT().UpdateOrderStatus(gomock.Any(), order.ID,
		entity.OrderStatusPending, entity.OrderStatusApproval, gomock.Any()).Return(nil)
	e.producer.EXPECT().SendOrderEvent(gomock.Any(), gomock.Any())

	err := e.svc.ApproveOrder(vendorCtx(order.VendorID), order.ID)
	require.NoError(t, err)
}

func TestService_ApproveOrder_SlotTaken(t *testing.T) {
	t.Parallel()

	order := approvedOrder(uuid.Must(uuid.NewV4()))
	order.Status = entity.OrderStatusPending

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().SetOrderReservations(gomock.Any(), order.ID, true).Return(entity.ErrSlotTaken)

	err := e.svc.ApproveOrder(vendorCtx(order.VendorID), order.ID)
	require.ErrorIs(t, err, entity.ErrSlotTaken)
}

func TestService_ApproveOrder_WrongVendor(t *testing.T) {
	t.Parallel()

	order := approvedOrder(uuid.Must(uuid.NewV4()))
	order.Status = entity.OrderStatusPending

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)

	err := e.svc.ApproveOrder(vendorCtx(uuid.Must(uuid.NewV4())), order.ID)
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestService_DisapproveOrder(t *testing.T) {
	t.Parallel()

	order := approvedOrder(uuid.Must(uuid.NewV4()))

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().UpdateOrderStatus(gomock.Any(), order.ID,
		entity.OrderStatusApproval, entity.OrderStatusDisapproval, gomock.Any()).Return(nil)
	e.repo.EXPECT().SetOrderReservations(gomock.Any(), order.ID, false).Return(nil)
	e.repo.EXPECT().DeactivateOrderPages(gomock.Any(), order.ID).Return(nil)
	e.producer.EXPECT().SendOrderEvent(gomock.Any(), gomock.Any())

	err := e.svc.DisapproveOrder(vendorCtx(order.VendorID), order.ID)
	require.NoError(t, err)
}

func TestService_VerifyOffer_AlreadyRedeemed(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)
	offer := entity.Offer{
		ID:          uuid.Must(uuid.NewV4()),
		VendorID:    order.VendorID,
		Type:        entity.OfferTypeVendor,
		Code:        "SUMMER10",
		DiscountPct: decimal.New(10, 0),
		Uses:        100,
		Active:      true,
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().OfferByCode(gomock.Any(), "SUMMER10").Return(offer, nil)
	e.repo.EXPECT().OfferRedeemedBy(gomock.Any(), offer.ID, customerID).Return(true, nil)

	_, _, err := e.svc.VerifyOffer(customerCtx(customerID), order.ID, "summer10")
	require.ErrorIs(t, err, entity.ErrInvalidOffer)
}

func TestService_VerifyOffer_Pricing(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)
	offer := entity.Offer{
		ID:          uuid.Must(uuid.NewV4()),
		VendorID:    order.VendorID,
		Type:        entity.OfferTypeVendor,
		Code:        "SUMMER10",
		DiscountPct: decimal.New(10, 0),
		Uses:        100,
		Active:      true,
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().OfferByCode(gomock.Any(), "SUMMER10").Return(offer, nil)
	e.repo.EXPECT().OfferRedeemedBy(gomock.Any(), offer.ID, customerID).Return(false, nil)

	got, pricing, err := e.svc.VerifyOffer(customerCtx(customerID), order.ID, "SUMMER10")
	require.NoError(t, err)
	require.Equal(t, offer.ID, got.ID)
	// 200 - 10% = 180, tax 27, total 207
	require.True(t, pricing.Total.Equal(decimal.New(207, 0)), pricing.Total.String())
}

func TestService_CreateAlrajhiPage_WithWallet(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)
	wallet := entity.Wallet{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  customerID,
		Balance: decimal.New(80, 0),
	}

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().EnsureWallet(gomock.Any(), customerID).Return(wallet, nil)
	e.alrajhi.EXPECT().GetPage(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, amount decimal.Decimal, trackID string) (alrajhi.Page, error) {
			// 230 total - 80 wallet
			require.True(t, amount.Equal(decimal.New(150, 0)), amount.String())
			return alrajhi.Page{PageID: "p1", URL: "https://gw/p1", TrackID: trackID}, nil
		})
	e.repo.EXPECT().CreateAlrajhiPage(gomock.Any(), gomock.Any()).Return(nil)

	page, err := e.svc.CreateAlrajhiPage(customerCtx(customerID), order.ID, "", true)
	require.NoError(t, err)
	require.True(t, page.Amount.Equal(decimal.New(150, 0)))
	require.True(t, page.WalletAmount.Equal(decimal.New(80, 0)))
	require.Equal(t, "p1", page.PageID)
}

func TestService_CreateAlrajhiPage_WalletCoversTotal(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().EnsureWallet(gomock.Any(), customerID).Return(entity.Wallet{
		ID:      uuid.Must(uuid.NewV4()),
		UserID:  customerID,
		Balance: decimal.New(500, 0),
	}, nil)

	_, err := e.svc.CreateAlrajhiPage(customerCtx(customerID), order.ID, "", true)
	require.ErrorIs(t, err, entity.ErrPayViaWallet)
}

func TestService_AlrajhiCallback(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)
	page := entity.AlrajhiPage{
		ID:        uuid.Must(uuid.NewV4()),
		OrderID:   order.ID,
		PageID:    "p1",
		TrackID:   "t1",
		Amount:    decimal.New(230, 0),
		Active:    true,
		CreatedAt: time.Now().Add(-time.Minute),
	}
	data := alrajhi.CallbackData{
		PaymentID: "p1",
		TranID:    "tran-1",
		TrackID:   "t1",
		Amt:       decimal.New(230, 0),
		Result:    "CAPTURED",
		Ref:       "ref-1",
	}

	e := newEnv(t, decimal.Zero)
	e.alrajhi.EXPECT().DecodeCallback("blob").Return(data, nil)
	e.repo.EXPECT().ActiveAlrajhiPage(gomock.Any(), "p1", "t1", gomock.Any()).Return(page, nil)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().Settle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s repository.Settlement) (entity.Invoice, error) {
			require.Equal(t, entity.ProviderAlrajhi, s.Payment.Provider)
			require.NotNil(t, s.AlrajhiDetail)
			require.Equal(t, "tran-1", s.AlrajhiDetail.TranID)
			require.Nil(t, s.WalletDebit)

			inv := s.Invoice
			inv.Year, inv.AnnualFigure = 2026, 7
			return inv, nil
		})
	e.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any())

	invoice, err := e.svc.AlrajhiCallback(context.Background(), "blob")
	require.NoError(t, err)
	require.Equal(t, int64(7), invoice.AnnualFigure)
}

func TestService_AlrajhiCallback_WalletSplit(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)
	page := entity.AlrajhiPage{
		ID:           uuid.Must(uuid.NewV4()),
		OrderID:      order.ID,
		PageID:       "p1",
		TrackID:      "t1",
		Amount:       decimal.New(150, 0),
		WalletAmount: decimal.New(80, 0),
		Active:       true,
		CreatedAt:    time.Now().Add(-time.Minute),
	}
	wallet := entity.Wallet{ID: uuid.Must(uuid.NewV4()), UserID: customerID, Balance: decimal.New(80, 0)}
	data := alrajhi.CallbackData{
		PaymentID: "p1", TranID: "tran-1", TrackID: "t1",
		Amt: decimal.New(150, 0), Result: "CAPTURED", Ref: "ref-1",
	}

	e := newEnv(t, decimal.Zero)
	e.alrajhi.EXPECT().DecodeCallback("blob").Return(data, nil)
	e.repo.EXPECT().ActiveAlrajhiPage(gomock.Any(), "p1", "t1", gomock.Any()).Return(page, nil)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().EnsureWallet(gomock.Any(), customerID).Return(wallet, nil)
	e.repo.EXPECT().Settle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s repository.Settlement) (entity.Invoice, error) {
			require.Equal(t, entity.ProviderAlrajhiWallet, s.Payment.Provider)
			require.True(t, s.Payment.Amount.Equal(decimal.New(230, 0)))
			require.NotNil(t, s.WalletDebit)
			require.True(t, s.WalletDebit.Amount.Equal(decimal.New(80, 0)))
			require.NotNil(t, s.WalletDetail)
			require.True(t, s.WalletDetail.GatewayAmount.Equal(decimal.New(150, 0)))
			require.NotNil(t, s.AlrajhiDetail)
			require.Equal(t, "tran-1", s.AlrajhiDetail.TranID)
			require.Equal(t, "ref-1", s.AlrajhiDetail.Reference)
			return s.Invoice, nil
		})
	e.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any())

	_, err := e.svc.AlrajhiCallback(context.Background(), "blob")
	require.NoError(t, err)
}

func TestService_AlrajhiCallback_Rejections(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())

	tests := []struct {
		name    string
		result  string
		status  entity.OrderStatus
		amt     decimal.Decimal
		wantErr error
	}{
		{
			name:    "not captured",
			result:  "NOT CAPTURED",
			status:  entity.OrderStatusApproval,
			amt:     decimal.New(230, 0),
			wantErr: entity.ErrPaymentPage,
		},
		{
			name:    "order already paid",
			result:  "CAPTURED",
			status:  entity.OrderStatusPayment,
			amt:     decimal.New(230, 0),
			wantErr: entity.ErrPaymentPage,
		},
		{
			name:    "captured amount below quote",
			result:  "CAPTURED",
			status:  entity.OrderStatusApproval,
			amt:     decimal.New(100, 0),
			wantErr: entity.ErrAmountMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			order := approvedOrder(customerID)
			order.Status = tt.status
			page := entity.AlrajhiPage{
				ID:        uuid.Must(uuid.NewV4()),
				OrderID:   order.ID,
				PageID:    "p1",
				TrackID:   "t1",
				Amount:    decimal.New(230, 0),
				Active:    true,
				CreatedAt: time.Now().Add(-time.Minute),
			}

			e := newEnv(t, decimal.Zero)
			e.alrajhi.EXPECT().DecodeCallback("blob").Return(alrajhi.CallbackData{
				PaymentID: "p1", TranID: "tran-1", TrackID: "t1",
				Amt: tt.amt, Result: tt.result, Ref: "ref-1",
			}, nil)
			e.repo.EXPECT().ActiveAlrajhiPage(gomock.Any(), "p1", "t1", gomock.Any()).Return(page, nil)
			e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)

			_, err := e.svc.AlrajhiCallback(context.Background(), "blob")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_AlrajhiCallback_PageExpired(t *testing.T) {
	t.Parallel()

	e := newEnv(t, decimal.Zero)
	e.alrajhi.EXPECT().DecodeCallback("blob").Return(alrajhi.CallbackData{
		PaymentID: "p1", TranID: "tran-1", TrackID: "t1",
		Amt: decimal.New(230, 0), Result: "CAPTURED", Ref: "ref-1",
	}, nil)
	e.repo.EXPECT().ActiveAlrajhiPage(gomock.Any(), "p1", "t1", gomock.Any()).
		Return(entity.AlrajhiPage{}, entity.ErrNotFound)

	_, err := e.svc.AlrajhiCallback(context.Background(), "blob")
	require.ErrorIs(t, err, entity.ErrPaymentPage)
}

func TestService_AlrajhiCallback_BackCash(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)
	page := entity.AlrajhiPage{
		ID:        uuid.Must(uuid.NewV4()),
		OrderID:   order.ID,
		PageID:    "p1",
		TrackID:   "t1",
		Amount:    decimal.New(230, 0),
		Active:    true,
		CreatedAt: time.Now().Add(-time.Minute),
	}
	wallet := entity.Wallet{ID: uuid.Must(uuid.NewV4()), UserID: customerID}

	e := newEnv(t, decimal.New(2, 0)) // 2% back-cash
	e.alrajhi.EXPECT().DecodeCallback("blob").Return(alrajhi.CallbackData{
		PaymentID: "p1", TranID: "tran-1", TrackID: "t1",
		Amt: decimal.New(230, 0), Result: "CAPTURED", Ref: "ref-1",
	}, nil)
	e.repo.EXPECT().ActiveAlrajhiPage(gomock.Any(), "p1", "t1", gomock.Any()).Return(page, nil)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.repo.EXPECT().EnsureWallet(gomock.Any(), customerID).Return(wallet, nil)
	e.repo.EXPECT().Settle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s repository.Settlement) (entity.Invoice, error) {
			require.NotNil(t, s.BackCash)
			// 2% of 230, rounded to one decimal place
			require.True(t, s.BackCash.Amount.Equal(decimal.NewFromFloat(4.6)), s.BackCash.Amount.String())
			require.Equal(t, entity.WalletTxBackCash, s.BackCash.Type)
			return s.Invoice, nil
		})
	e.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any())

	_, err := e.svc.AlrajhiCallback(context.Background(), "blob")
	require.NoError(t, err)
}

func TestService_TamaraWebhook(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)
	page := entity.TamaraPage{
		ID:            uuid.Must(uuid.NewV4()),
		OrderID:       order.ID,
		TamaraOrderID: "tmr-1",
		CheckoutID:    "chk-1",
		Amount:        decimal.New(230, 0),
		Active:        true,
	}

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().ActiveTamaraPage(gomock.Any(), "tmr-1").Return(page, nil)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.tamara.EXPECT().Authorise(gomock.Any(), "tmr-1").
		Return(tamara.AuthoriseResponse{OrderID: "tmr-1", Status: tamara.StatusAuthorised}, nil)
	e.tamara.EXPECT().Capture(gomock.Any(), "tmr-1", page.Amount).
		Return(tamara.CaptureResponse{CaptureID: "cap-1", OrderID: "tmr-1"}, nil)
	e.repo.EXPECT().Settle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s repository.Settlement) (entity.Invoice, error) {
			require.Equal(t, entity.ProviderTamara, s.Payment.Provider)
			require.NotNil(t, s.TamaraDetail)
			require.Equal(t, "cap-1", s.TamaraDetail.CaptureID)
			require.Equal(t, "chk-1", s.TamaraDetail.CheckoutID)
			return s.Invoice, nil
		})
	e.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any())

	err := e.svc.TamaraWebhook(context.Background(), "tmr-1", "order_approved")
	require.NoError(t, err)
}

func TestService_TamaraWebhook_NotAuthorised(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)
	page := entity.TamaraPage{
		ID:            uuid.Must(uuid.NewV4()),
		OrderID:       order.ID,
		TamaraOrderID: "tmr-1",
		Amount:        decimal.New(230, 0),
		Active:        true,
	}

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().ActiveTamaraPage(gomock.Any(), "tmr-1").Return(page, nil)
	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.tamara.EXPECT().Authorise(gomock.Any(), "tmr-1").
		Return(tamara.AuthoriseResponse{OrderID: "tmr-1", Status: "declined"}, nil)

	err := e.svc.TamaraWebhook(context.Background(), "tmr-1", "order_approved")
	require.ErrorIs(t, err, entity.ErrPaymentPage)
}

func TestService_TamaraWebhook_IgnoresOtherEvents(t *testing.T) {
	t.Parallel()

	e := newEnv(t, decimal.Zero)

	err := e.svc.TamaraWebhook(context.Background(), "tmr-1", "order_expired")
	require.NoError(t, err)
}

func TestService_CreateOrder_AddressRequired(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	svcID := uuid.Must(uuid.NewV4())

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return(nil)
	e.repo.EXPECT().Service(gomock.Any(), svcID).Return(entity.Service{
		ID:       svcID,
		VendorID: uuid.Must(uuid.NewV4()),
		Name:     "Home massage",
		Price:    decimal.New(100, 0),
		TaxPct:   decimal.New(15, 0),
		Place:    entity.ServicePlaceHome,
		Active:   true,
	}, nil)

	_, err := e.svc.CreateOrder(customerCtx(customerID), service.CreateOrderParams{
		PaymentType: entity.PaymentTypeSystem,
		Items:       []service.CreateOrderItemParams{{ServiceID: svcID, Quantity: 1}},
	})
	require.ErrorIs(t, err, entity.ErrAddressRequired)
}

func TestService_CreateOrder_Scheduled(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	vendorID := uuid.Must(uuid.NewV4())
	svcID := uuid.Must(uuid.NewV4())
	availID := uuid.Must(uuid.NewV4())
	employeeID := uuid.Must(uuid.NewV4())

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	slot := entity.Slot{Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)}

	catalogSvc := entity.Service{
		ID:       svcID,
		VendorID: vendorID,
		Name:     "Haircut",
		Price:    decimal.New(60, 0),
		TaxPct:   decimal.New(15, 0),
		Duration: time.Hour,
		Place:    entity.ServicePlaceVendor,
		Active:   true,
	}
	avail := entity.Availability{
		ID:         availID,
		ServiceID:  svcID,
		EmployeeID: employeeID,
		Date:       date,
		Start:      start,
		End:        end,
	}

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return(nil)
	e.repo.EXPECT().Service(gomock.Any(), svcID).Return(catalogSvc, nil)
	e.repo.EXPECT().Availability(gomock.Any(), availID).Return(avail, nil)
	e.repo.EXPECT().ReservedSlots(gomock.Any(), avail).Return(nil, nil)
	e.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order entity.Order, reservations []entity.Reservation) error {
			require.Len(t, order.Items, 1)
			require.True(t, order.Items[0].Slot.Equal(slot))
			require.Equal(t, employeeID, order.Items[0].EmployeeID)
			require.Len(t, reservations, 1)
			require.False(t, reservations[0].Active)
			require.Equal(t, order.Items[0].ID, reservations[0].OrderItemID)
			return nil
		})
	e.producer.EXPECT().SendOrderEvent(gomock.Any(), gomock.Any())

	order, err := e.svc.CreateOrder(customerCtx(customerID), service.CreateOrderParams{
		PaymentType: entity.PaymentTypeSystem,
		Items: []service.CreateOrderItemParams{{
			ServiceID:      svcID,
			Quantity:       1,
			AvailabilityID: availID,
			Slot:           slot,
		}},
	})
	require.NoError(t, err)
	require.Equal(t, entity.OrderStatusPending, order.Status)
	require.Equal(t, vendorID, order.VendorID)
}

func TestService_CreateOrder_SlotNotFree(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	svcID := uuid.Must(uuid.NewV4())
	availID := uuid.Must(uuid.NewV4())

	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	slot := entity.Slot{Start: start, End: start.Add(time.Hour)}

	catalogSvc := entity.Service{
		ID:       svcID,
		VendorID: uuid.Must(uuid.NewV4()),
		Price:    decimal.New(60, 0),
		TaxPct:   decimal.New(15, 0),
		Duration: time.Hour,
		Place:    entity.ServicePlaceVendor,
		Active:   true,
	}
	avail := entity.Availability{
		ID:        availID,
		ServiceID: svcID,
		Start:     start,
		End:       start.Add(3 * time.Hour),
	}

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().EnsureCustomer(gomock.Any(), gomock.Any()).Return(nil)
	e.repo.EXPECT().Service(gomock.Any(), svcID).Return(catalogSvc, nil)
	e.repo.EXPECT().Availability(gomock.Any(), availID).Return(avail, nil)
	e.repo.EXPECT().ReservedSlots(gomock.Any(), avail).Return([]entity.Slot{slot}, nil)

	_, err := e.svc.CreateOrder(customerCtx(customerID), service.CreateOrderParams{
		PaymentType: entity.PaymentTypeSystem,
		Items: []service.CreateOrderItemParams{{
			ServiceID:      svcID,
			AvailabilityID: availID,
			Slot:           slot,
		}},
	})
	require.ErrorIs(t, err, entity.ErrSlotTaken)
}

func TestService_CreateAvailability_SkipsOverlaps(t *testing.T) {
	t.Parallel()

	vendorID := uuid.Must(uuid.NewV4())
	svcID := uuid.Must(uuid.NewV4())

	catalogSvc := entity.Service{
		ID:       svcID,
		VendorID: vendorID,
		Duration: time.Hour,
		Active:   true,
	}

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 14, 17, 0, 0, 0, time.UTC)

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().Service(gomock.Any(), svcID).Return(catalogSvc, nil)
	// day 2 of 3 already has a window
	gomock.InOrder(
		e.repo.EXPECT().HasOverlappingAvailability(gomock.Any(), svcID, uuid.Nil, date, start, end).Return(false, nil),
		e.repo.EXPECT().HasOverlappingAvailability(gomock.Any(), svcID, uuid.Nil,
			date.AddDate(0, 0, 1), start.AddDate(0, 0, 1), end.AddDate(0, 0, 1)).Return(true, nil),
		e.repo.EXPECT().HasOverlappingAvailability(gomock.Any(), svcID, uuid.Nil,
			date.AddDate(0, 0, 2), start.AddDate(0, 0, 2), end.AddDate(0, 0, 2)).Return(false, nil),
	)
	e.repo.EXPECT().CreateAvailability(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	created, err := e.svc.CreateAvailability(vendorCtx(vendorID), service.CreateAvailabilityParams{
		ServiceID: svcID,
		Date:      date,
		Start:     start,
		End:       end,
		Days:      3,
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
}

func TestService_CreateAvailability_TooManyDays(t *testing.T) {
	t.Parallel()

	e := newEnv(t, decimal.Zero)

	_, err := e.svc.CreateAvailability(vendorCtx(uuid.Must(uuid.NewV4())), service.CreateAvailabilityParams{
		ServiceID: uuid.Must(uuid.NewV4()),
		Start:     time.Now(),
		End:       time.Now().Add(8 * time.Hour),
		Days:      91,
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_DepositWallet(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	wallet := entity.Wallet{ID: uuid.Must(uuid.NewV4()), UserID: customerID, Balance: decimal.Zero}

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().EnsureWallet(gomock.Any(), customerID).Return(wallet, nil)
	e.repo.EXPECT().Deposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx entity.WalletTransaction) error {
			require.Equal(t, wallet.ID, tx.WalletID)
			require.Equal(t, entity.WalletTxDeposit, tx.Type)
			require.True(t, tx.Amount.Equal(decimal.New(300, 0)))
			return nil
		})
	e.repo.EXPECT().WalletByUserID(gomock.Any(), customerID).
		Return(entity.Wallet{ID: wallet.ID, UserID: customerID, Balance: decimal.New(300, 0)}, nil)

	got, err := e.svc.DepositWallet(customerCtx(customerID), decimal.New(300, 0))
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.New(300, 0)))
}

func TestService_DepositWallet_NonPositive(t *testing.T) {
	t.Parallel()

	e := newEnv(t, decimal.Zero)

	_, err := e.svc.DepositWallet(customerCtx(uuid.Must(uuid.NewV4())), decimal.Zero)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestService_ReconcileTamaraPages(t *testing.T) {
	t.Parallel()

	customerID := uuid.Must(uuid.NewV4())
	order := approvedOrder(customerID)

	settled := entity.TamaraPage{
		ID:            uuid.Must(uuid.NewV4()),
		OrderID:       order.ID,
		TamaraOrderID: "tmr-ok",
		CheckoutID:    "chk-ok",
		Amount:        decimal.New(230, 0),
		Active:        true,
	}
	waiting := entity.TamaraPage{
		ID:            uuid.Must(uuid.NewV4()),
		OrderID:       uuid.Must(uuid.NewV4()),
		TamaraOrderID: "tmr-wait",
		Amount:        decimal.New(100, 0),
		Active:        true,
	}

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().PendingTamaraPages(gomock.Any(), gomock.Any()).
		Return([]entity.TamaraPage{settled, waiting}, nil)

	e.tamara.EXPECT().OrderStatus(gomock.Any(), "tmr-ok").
		Return(tamara.OrderResponse{OrderID: "tmr-ok", Status: tamara.StatusApproved}, nil)
	e.tamara.EXPECT().OrderStatus(gomock.Any(), "tmr-wait").
		Return(tamara.OrderResponse{OrderID: "tmr-wait", Status: "new"}, nil)

	e.repo.EXPECT().Order(gomock.Any(), order.ID).Return(order, nil)
	e.tamara.EXPECT().Authorise(gomock.Any(), "tmr-ok").
		Return(tamara.AuthoriseResponse{OrderID: "tmr-ok", Status: tamara.StatusAuthorised}, nil)
	e.tamara.EXPECT().Capture(gomock.Any(), "tmr-ok", settled.Amount).
		Return(tamara.CaptureResponse{CaptureID: "cap-9", OrderID: "tmr-ok"}, nil)
	e.repo.EXPECT().Settle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s repository.Settlement) (entity.Invoice, error) {
			require.Equal(t, entity.ProviderTamara, s.Payment.Provider)
			require.Equal(t, "cap-9", s.TamaraDetail.CaptureID)
			return s.Invoice, nil
		})
	e.producer.EXPECT().SendPaymentEvent(gomock.Any(), gomock.Any())

	err := e.svc.ReconcileTamaraPages(context.Background())
	require.NoError(t, err)
}

func TestService_ReconcileTamaraPages_PollFailure(t *testing.T) {
	t.Parallel()

	page := entity.TamaraPage{
		ID:            uuid.Must(uuid.NewV4()),
		OrderID:       uuid.Must(uuid.NewV4()),
		TamaraOrderID: "tmr-err",
		Active:        true,
	}

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().PendingTamaraPages(gomock.Any(), gomock.Any()).
		Return([]entity.TamaraPage{page}, nil)
	e.tamara.EXPECT().OrderStatus(gomock.Any(), "tmr-err").
		Return(tamara.OrderResponse{}, errors.New("gateway down"))

	err := e.svc.ReconcileTamaraPages(context.Background())
	require.NoError(t, err)
}

func TestService_CancelInvoice(t *testing.T) {
	t.Parallel()

	invoiceID := uuid.Must(uuid.NewV4())

	e := newEnv(t, decimal.Zero)
	e.repo.EXPECT().CancelInvoice(gomock.Any(), invoiceID).Return(nil)

	err := e.svc.CancelInvoice(adminCtx(), invoiceID)
	require.NoError(t, err)
}

func TestService_CancelInvoice_NotAdmin(t *testing.T) {
	t.Parallel()

	e := newEnv(t, decimal.Zero)

	err := e.svc.CancelInvoice(customerCtx(uuid.Must(uuid.NewV4())), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrForbidden)
}
