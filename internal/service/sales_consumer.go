package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"ordering-backend/internal/domain"
)

// SalesConsumer folds completed-order events into the per-day redis
// counters that back the monthly-sales fast path.
type SalesConsumer struct {
	Reader *kafka.Reader
	Sales  SalesCache
}

func NewSalesConsumer(reader *kafka.Reader, sales SalesCache) *SalesConsumer {
	return &SalesConsumer{Reader: reader, Sales: sales}
}

func (c *SalesConsumer) Start(ctx context.Context) {
	log.Println("Starting sales aggregation consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.EventMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, msg)
	}
}

func (c *SalesConsumer) Process(ctx context.Context, msg domain.EventMessage) {
	if msg.Type != domain.EventOrderCompleted {
		return
	}
	if msg.Day == "" || msg.Total <= 0 {
		return
	}
	if err := c.Sales.AddDailySales(ctx, msg.RestaurantID, msg.Day, msg.Total); err != nil {
		log.Printf("Error updating daily sales for restaurant %d: %v", msg.RestaurantID, err)
	}
}
