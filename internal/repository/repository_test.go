package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/care-sa/booking/internal/entity"
	"github.com/care-sa/booking/internal/repository"
	"github.com/care-sa/booking/pkg/postgres"
)

func TestRepository_Wallet(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	wallet, err := repo.EnsureWallet(ctx, uuid.Must(uuid.NewV4()))
	require.NoError(t, err)
	require.True(t, wallet.Balance.IsZero())

	err = repo.Deposit(ctx, entity.WalletTransaction{
		ID:        uuid.Must(uuid.NewV4()),
		WalletID:  wallet.ID,
		Type:      entity.WalletTxDeposit,
		Amount:    decimal.NewFromInt(300),
		CreatedAt: now,
	})
	require.NoError(t, err)

	err = repo.Withdraw(ctx, entity.WalletTransaction{
		ID:        uuid.Must(uuid.NewV4()),
		WalletID:  wallet.ID,
		Type:      entity.WalletTxWithdraw,
		Amount:    decimal.NewFromInt(230),
		CreatedAt: now,
	})
	require.NoError(t, err)

	// 70 left, another 230 must not pass and must not change the balance
	err = repo.Withdraw(ctx, entity.WalletTransaction{
		ID:        uuid.Must(uuid.NewV4()),
		WalletID:  wallet.ID,
		Type:      entity.WalletTxWithdraw,
		Amount:    decimal.NewFromInt(230),
		CreatedAt: now,
	})
	require.ErrorIs(t, err, entity.ErrInsufficientFunds)

	got, err := repo.WalletByUserID(ctx, wallet.UserID)
	require.NoError(t, err)
	require.True(t, got.Balance.Equal(decimal.NewFromInt(70)), "balance = %s", got.Balance)

	txs, err := repo.WalletTransactions(ctx, wallet.ID)
	require.NoError(t, err)
	require.Len(t, txs, 2)
}

func TestRepository_OrderLifecycle(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	order := seedOrder(t, repo)

	got, err := repo.Order(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, entity.OrderStatusPending, got.Status)
	require.Len(t, got.Items, 1)
	require.True(t, got.Items[0].Price.Equal(decimal.NewFromInt(100)))

	err = repo.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusApproval, time.Now().UTC())
	require.NoError(t, err)

	// second approval of the same order must fail the status guard
	err = repo.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusApproval, time.Now().UTC())
	require.ErrorIs(t, err, entity.ErrOrderState)

	err = repo.SetOrderReservations(ctx, order.ID, true)
	require.NoError(t, err)
}

func TestRepository_ReservationConflict(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()

	first := seedOrder(t, repo)
	second := seedOrderForSlot(t, repo, first.VendorID, first.Items[0].ServiceID, first.Items[0].EmployeeID, first.Items[0].Date, first.Items[0].Slot)

	require.NoError(t, repo.SetOrderReservations(ctx, first.ID, true))

	// the same slot for the same employee cannot be held twice
	err := repo.SetOrderReservations(ctx, second.ID, true)
	require.ErrorIs(t, err, entity.ErrSlotTaken)

	// after the first books off, the slot frees up
	require.NoError(t, repo.SetOrderReservations(ctx, first.ID, false))
	require.NoError(t, repo.SetOrderReservations(ctx, second.ID, true))
}

func TestRepository_Settle(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	order := seedOrder(t, repo)
	require.NoError(t, repo.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusApproval, now))

	wallet, err := repo.EnsureWallet(ctx, order.CustomerID)
	require.NoError(t, err)
	require.NoError(t, repo.Deposit(ctx, entity.WalletTransaction{
		ID:        uuid.Must(uuid.NewV4()),
		WalletID:  wallet.ID,
		Type:      entity.WalletTxDeposit,
		Amount:    decimal.NewFromInt(300),
		CreatedAt: now,
	}))

	total := decimal.NewFromInt(115)
	paymentID := uuid.Must(uuid.NewV4())
	invoiceID := uuid.Must(uuid.NewV4())

	settlement := repository.Settlement{
		Order: order,
		Invoice: entity.Invoice{
			ID:         invoiceID,
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			VendorID:   order.VendorID,
			Price:      decimal.NewFromInt(100),
			TaxValue:   decimal.NewFromInt(15),
			Total:      total,
			Status:     entity.InvoiceStatusCompleted,
			CreatedAt:  now,
		},
		LineItems: []entity.InvoiceLineItem{{
			ID:          uuid.Must(uuid.NewV4()),
			InvoiceID:   invoiceID,
			ServiceName: "haircut",
			Price:       decimal.NewFromInt(100),
			Quantity:    1,
		}},
		Payment: entity.Payment{
			ID:        paymentID,
			OrderID:   order.ID,
			InvoiceID: invoiceID,
			Provider:  entity.ProviderWallet,
			Amount:    total,
			CreatedAt: now,
		},
		WalletDebit: &entity.WalletTransaction{
			ID:        uuid.Must(uuid.NewV4()),
			WalletID:  wallet.ID,
			Type:      entity.WalletTxWithdraw,
			Amount:    total,
			OrderID:   order.ID,
			CreatedAt: now,
		},
		WalletDetail: &entity.WalletPaymentDetail{
			PaymentID:    paymentID,
			WalletID:     wallet.ID,
			WalletAmount: total,
		},
		Now: now,
	}

	inv, err := repo.Settle(ctx, settlement)
	require.NoError(t, err)
	require.NotZero(t, inv.AnnualFigure)
	require.Equal(t, now.Year(), inv.Year)

	// the same settlement must not apply twice
	_, err = repo.Settle(ctx, settlement)
	require.ErrorIs(t, err, entity.ErrAlreadyPaid)

	got, err := repo.Order(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, entity.OrderStatusPayment, got.Status)

	gotWallet, err := repo.WalletByUserID(ctx, order.CustomerID)
	require.NoError(t, err)
	require.True(t, gotWallet.Balance.Equal(decimal.NewFromInt(185)), "balance = %s", gotWallet.Balance)

	gotInv, err := repo.InvoiceByOrderID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, inv.AnnualFigure, gotInv.AnnualFigure)
	require.Len(t, gotInv.LineItems, 1)
}

func TestRepository_InvoiceNumbersAreDense(t *testing.T) {
	t.Parallel()

	repo := newRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	figures := make(map[int64]bool)

	for range 3 {
		order := seedOrder(t, repo)
		require.NoError(t, repo.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusApproval, now))

		invoiceID := uuid.Must(uuid.NewV4())

		inv, err := repo.Settle(ctx, repository.Settlement{
			Order: order,
			Invoice: entity.Invoice{
				ID:         invoiceID,
				OrderID:    order.ID,
				CustomerID: order.CustomerID,
				VendorID:   order.VendorID,
				Price:      decimal.NewFromInt(100),
				Total:      decimal.NewFromInt(100),
				Status:     entity.InvoiceStatusCompleted,
				CreatedAt:  now,
			},
			Payment: entity.Payment{
				ID:        uuid.Must(uuid.NewV4()),
				OrderID:   order.ID,
				InvoiceID: invoiceID,
				Provider:  entity.ProviderWallet,
				Amount:    decimal.NewFromInt(100),
				CreatedAt: now,
			},
			Now: now,
		})
		require.NoError(t, err)
		require.False(t, figures[inv.AnnualFigure], "figure %d issued twice", inv.AnnualFigure)

		figures[inv.AnnualFigure] = true
	}
}

func seedOrder(t *testing.T, repo *repository.Repository) entity.Order {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	vendor := entity.Vendor{ID: uuid.Must(uuid.NewV4()), Name: "salon", Email: "salon@example.com", CreatedAt: now}
	require.NoError(t, repo.CreateVendor(ctx, vendor))

	employee := entity.Employee{ID: uuid.Must(uuid.NewV4()), VendorID: vendor.ID, Name: "sara", Active: true}
	require.NoError(t, repo.CreateEmployee(ctx, employee))

	svc := entity.Service{
		ID:        uuid.Must(uuid.NewV4()),
		VendorID:  vendor.ID,
		Name:      "haircut",
		Price:     decimal.NewFromInt(100),
		TaxPct:    decimal.NewFromInt(15),
		Duration:  30 * time.Minute,
		Place:     entity.ServicePlaceVendor,
		Active:    true,
		CreatedAt: now,
	}
	require.NoError(t, repo.CreateService(ctx, svc))

	date := time.Date(now.Year()+1, 3, 10, 0, 0, 0, 0, time.UTC)
	slot := entity.Slot{Start: date.Add(9 * time.Hour), End: date.Add(9*time.Hour + 30*time.Minute)}

	return seedOrderForSlot(t, repo, vendor.ID, svc.ID, employee.ID, date, slot)
}

func seedOrderForSlot(
	t *testing.T,
	repo *repository.Repository,
	vendorID, serviceID, employeeID uuid.UUID,
	date time.Time,
	slot entity.Slot,
) entity.Order {
	t.Helper()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	customerID := uuid.Must(uuid.NewV4())
	require.NoError(t, repo.EnsureCustomer(ctx, repository.Customer{
		ID:        customerID,
		Name:      "maha",
		Email:     "maha@example.com",
		CreatedAt: now,
	}))

	itemID := uuid.Must(uuid.NewV4())

	order := entity.Order{
		ID:          uuid.Must(uuid.NewV4()),
		CustomerID:  customerID,
		VendorID:    vendorID,
		Status:      entity.OrderStatusPending,
		PaymentType: entity.PaymentTypeSystem,
		TaxPct:      decimal.NewFromInt(15),
		Items: []entity.OrderItem{{
			ID:          itemID,
			ServiceID:   serviceID,
			EmployeeID:  employeeID,
			ServiceName: "haircut",
			Price:       decimal.NewFromInt(100),
			TaxPct:      decimal.NewFromInt(15),
			Quantity:    1,
			Date:        date,
			Slot:        slot,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	reservations := []entity.Reservation{{
		ID:          uuid.Must(uuid.NewV4()),
		OrderItemID: itemID,
		ServiceID:   serviceID,
		EmployeeID:  employeeID,
		Date:        date,
		Slot:        slot,
		Active:      false,
		CreatedAt:   now,
	}}

	require.NoError(t, repo.CreateOrder(ctx, order, reservations))

	return order
}

func newRepository(t *testing.T) *repository.Repository {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN is not set")
	}

	err := postgres.UpMigrations(dsn)
	require.NoError(t, err)

	pool, err := postgres.Connect(context.Background(), dsn, 10)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return repository.New(pool)
}
