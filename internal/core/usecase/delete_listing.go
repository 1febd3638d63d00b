package usecase

import (
	"context"
	"errors"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type DeleteListingUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
}

func NewDeleteListingUseCase(storage port.ListingStoragePort, events port.ListingEventsPort) *DeleteListingUseCase {
	return &DeleteListingUseCase{
		storage: storage,
		events:  events,
	}
}

// Execute удаляет запись. Удаление отсутствующей записи — успех:
// админские delete-запросы безопасно повторять.
func (uc *DeleteListingUseCase) Execute(ctx context.Context, id int64, adminToken string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "DeleteListing",
		"listing_id": id,
	})

	listing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			ucLogger.Info("Listing already absent, reporting success", nil)
			return nil
		}
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	if listing.AdminToken != "" && listing.AdminToken != adminToken {
		ucLogger.Warn("Delete rejected: token does not own the listing", nil)
		return domain.ErrForbidden
	}

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	if uc.events != nil {
		if err := uc.events.ListingDeleted(ctx, id); err != nil {
			ucLogger.Warn("Failed to publish listing.deleted event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
