package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// ListingEventsPort — публикация событий каталога для внешних потребителей
// (бот-уведомитель). Публикация best-effort: отказ брокера не должен
// ломать сам запрос.
type ListingEventsPort interface {
	ListingCreated(ctx context.Context, listing domain.Listing) error
	ListingDeleted(ctx context.Context, listingID int64) error
}
