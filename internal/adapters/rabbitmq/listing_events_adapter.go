package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	pkg_rabbitmq "catalog-service/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ListingCreatedDTO - сообщение для бота о новом объявлении
type ListingCreatedDTO struct {
	ListingID int64   `json:"listing_id"`
	Title     string  `json:"title"`
	District  string  `json:"district"`
	PriceAMD  int64   `json:"price_amd"`
	PriceUSD  float64 `json:"price_usd"`
	URL       string  `json:"url"`
}

// ListingDeletedDTO - сообщение о снятом объявлении
type ListingDeletedDTO struct {
	ListingID int64 `json:"listing_id"`
}

type ListingEventsAdapter struct {
	producer           *pkg_rabbitmq.Publisher
	createdRoutingKey  string
	deletedRoutingKey  string
}

func NewListingEventsAdapter(producer *pkg_rabbitmq.Publisher, createdKey, deletedKey string) (*ListingEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if createdKey == "" || deletedKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routing keys cannot be empty")
	}
	return &ListingEventsAdapter{
		producer:          producer,
		createdRoutingKey: createdKey,
		deletedRoutingKey: deletedKey,
	}, nil
}

func (a *ListingEventsAdapter) ListingCreated(ctx context.Context, listing domain.Listing) error {
	dto := ListingCreatedDTO{
		ListingID: listing.ID,
		Title:     listing.Title,
		District:  listing.District,
		PriceAMD:  listing.PriceAMD,
		PriceUSD:  listing.PriceUSD,
		URL:       fmt.Sprintf("/api/listings/%d", listing.ID),
	}
	return a.publish(ctx, a.createdRoutingKey, dto)
}

func (a *ListingEventsAdapter) ListingDeleted(ctx context.Context, listingID int64) error {
	return a.publish(ctx, a.deletedRoutingKey, ListingDeletedDTO{ListingID: listingID})
}

func (a *ListingEventsAdapter) publish(ctx context.Context, routingKey string, payload interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "ListingEventsAdapter",
		"routing_key": routingKey,
	})

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // сохраняем сообщения при перезапуске брокера
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Таймаут на публикацию, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event: %w", err)
	}

	adapterLogger.Debug("Event published", nil)
	return nil
}
