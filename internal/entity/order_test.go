package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/care-sa/booking/internal/entity"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		from entity.OrderStatus
		to   entity.OrderStatus
		want bool
	}{
		{entity.OrderStatusPending, entity.OrderStatusApproval, true},
		{entity.OrderStatusPending, entity.OrderStatusDisapproval, true},
		{entity.OrderStatusPending, entity.OrderStatusPayment, false},
		{entity.OrderStatusPending, entity.OrderStatusCompleted, false},
		{entity.OrderStatusApproval, entity.OrderStatusPayment, true},
		{entity.OrderStatusApproval, entity.OrderStatusDisapproval, true},
		{entity.OrderStatusApproval, entity.OrderStatusCompleted, true},
		{entity.OrderStatusApproval, entity.OrderStatusPending, false},
		{entity.OrderStatusPayment, entity.OrderStatusCompleted, true},
		{entity.OrderStatusPayment, entity.OrderStatusDisapproval, false},
		{entity.OrderStatusCompleted, entity.OrderStatusPayment, false},
		{entity.OrderStatusDisapproval, entity.OrderStatusApproval, false},
	} {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			t.Parallel()

			if got := tt.from.CanTransition(tt.to); got != tt.want {
				t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOrder_Total(t *testing.T) {
	t.Parallel()

	order := entity.Order{
		TaxPct: decimal.NewFromInt(15),
		Items: []entity.OrderItem{
			{Price: decimal.NewFromInt(100), Quantity: 2},
			{Price: decimal.NewFromInt(50), Quantity: 1},
		},
	}

	if got := order.Price().InexactFloat64(); got != 250 {
		t.Fatalf("Price() = %v, want 250", got)
	}

	got := order.Total(decimal.NewFromInt(10))
	if got.DiscountValue.InexactFloat64() != 25 {
		t.Errorf("DiscountValue = %v, want 25", got.DiscountValue)
	}
	if got.Total.InexactFloat64() != 258.8 {
		t.Errorf("Total = %v, want 258.8", got.Total)
	}
}
