package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/domain"

	"github.com/segmentio/kafka-go"
)

// SalesCounter accumulates confirmed-order counters per restaurant and day.
type SalesCounter interface {
	RecordConfirmedOrder(ctx context.Context, restaurantID int, day string, total float64) error
}

// Consumer folds order events into the daily sales counters so dashboards
// can poll redis without touching postgres. The stats endpoint remains
// backed by the store; these counters are a warm read model.
type Consumer struct {
	Reader  *kafka.Reader
	Counter SalesCounter
}

func NewConsumer(reader *kafka.Reader, counter SalesCounter) *Consumer {
	return &Consumer{Reader: reader, Counter: counter}
}

func (c *Consumer) Start(ctx context.Context) {
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

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling order event: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderConfirmed {
		return
	}

	day := event.Timestamp.UTC().Format("2006-01-02")
	if err := c.Counter.RecordConfirmedOrder(ctx, event.RestaurantID, day, event.Total); err != nil {
		log.Printf("Error recording sales counter for restaurant %d: %v", event.RestaurantID, err)
		return
	}

	log.Printf("Recorded confirmed order %d for restaurant %d (%s)", event.OrderID, event.RestaurantID, day)
}
