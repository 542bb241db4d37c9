package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventOrderCreated     EventType = "ORDER_CREATED"
	EventOrderApproved    EventType = "ORDER_APPROVED"
	EventOrderDisapproved EventType = "ORDER_DISAPPROVED"
	EventPaymentSettled   EventType = "PAYMENT_SETTLED"
)

// OrderEvent is published on every order lifecycle transition.
type OrderEvent struct {
	Type       EventType `json:"type"`
	OrderID    uuid.UUID `json:"order_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	VendorID   uuid.UUID `json:"vendor_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PaymentEvent is published once per settled order.
type PaymentEvent struct {
	Type       EventType       `json:"type"`
	OrderID    uuid.UUID       `json:"order_id"`
	InvoiceID  uuid.UUID       `json:"invoice_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	VendorID   uuid.UUID       `json:"vendor_id"`
	Provider   string          `json:"provider"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Producer publishes domain events fire-and-forget: the writer is
// async, failures are logged and never surfaced to the caller.
type Producer struct {
	l                  *slog.Logger
	w                  *kafka.Writer
	orderEventsTopic   string
	paymentEventsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, orderTopic, paymentTopic string) *Producer {
	l = l.WithGroup("kafka")

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                  l,
		w:                  w,
		orderEventsTopic:   orderTopic,
		paymentEventsTopic: paymentTopic,
	}
}

func (p *Producer) SendOrderEvent(ctx context.Context, event OrderEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	p.send(ctx, p.orderEventsTopic, event.OrderID, event)
}

func (p *Producer) SendPaymentEvent(ctx context.Context, event PaymentEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	p.send(ctx, p.paymentEventsTopic, event.OrderID, event)
}

func (p *Producer) send(ctx context.Context, topic string, key uuid.UUID, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key.String()),
		Value: b,
		Topic: topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
