// Package notifier turns order and payment events into customer push
// notifications.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/care-sa/booking/internal/clients/expo"
	"github.com/care-sa/booking/pkg/broker"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=notifier.go -destination=../mocks/notifier.go -package=mocks

type TokenStore interface {
	ActivePushTokens(ctx context.Context, userID uuid.UUID) ([]string, error)
	DeactivatePushToken(ctx context.Context, token string) error
}

type Pusher interface {
	Send(ctx context.Context, msg expo.Message) ([]expo.Ticket, error)
}

type Notifier struct {
	tokens TokenStore
	pusher Pusher
}

func New(tokens TokenStore, pusher Pusher) *Notifier {
	return &Notifier{
		tokens: tokens,
		pusher: pusher,
	}
}

// HandleOrderEvent is a kafka handler for the order events topic.
func (n *Notifier) HandleOrderEvent(ctx context.Context, m kafka.Message) error {
	var event broker.OrderEvent

	err := json.Unmarshal(m.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal order event: %w", err)
	}

	var title, body string

	switch event.Type {
	case broker.EventOrderCreated:
		title = "Order received"
		body = "Your order was placed and is waiting for the vendor's approval."
	case broker.EventOrderApproved:
		title = "Order approved"
		body = "Your order was approved. You can proceed to payment."
	case broker.EventOrderDisapproved:
		title = "Order declined"
		body = "The vendor declined your order."
	default:
		return nil
	}

	return n.notify(ctx, event.CustomerID, expo.Message{
		Title: title,
		Body:  body,
		Data:  map[string]string{"order_id": event.OrderID.String()},
	})
}

// HandlePaymentEvent is a kafka handler for the payment events topic.
func (n *Notifier) HandlePaymentEvent(ctx context.Context, m kafka.Message) error {
	var event broker.PaymentEvent

	err := json.Unmarshal(m.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal payment event: %w", err)
	}

	if event.Type != broker.EventPaymentSettled {
		return nil
	}

	return n.notify(ctx, event.CustomerID, expo.Message{
		Title: "Payment received",
		Body:  fmt.Sprintf("Your payment of %s SAR was received. The invoice is ready.", event.Amount),
		Data: map[string]string{
			"order_id":   event.OrderID.String(),
			"invoice_id": event.InvoiceID.String(),
		},
	})
}

// notify sends the message to all of the user's devices and drops
// tokens the gateway reports as gone.
func (n *Notifier) notify(ctx context.Context, userID uuid.UUID, msg expo.Message) error {
	tokens, err := n.tokens.ActivePushTokens(ctx, userID)
	if err != nil {
		return fmt.Errorf("get push tokens: %w", err)
	}

	if len(tokens) == 0 {
		return nil
	}

	msg.To = tokens

	tickets, err := n.pusher.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}

	for i, ticket := range tickets {
		if !ticket.DeviceNotRegistered() || i >= len(tokens) {
			continue
		}

		err = n.tokens.DeactivatePushToken(ctx, tokens[i])
		if err != nil {
			slog.ErrorContext(ctx, "deactivate push token", "error", err)
		}
	}

	return nil
}
