package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type UpdateListingUseCase struct {
	storage port.ListingStoragePort
	usdRate float64
}

func NewUpdateListingUseCase(storage port.ListingStoragePort, usdRate float64) *UpdateListingUseCase {
	return &UpdateListingUseCase{
		storage: storage,
		usdRate: usdRate,
	}
}

func (uc *UpdateListingUseCase) Execute(ctx context.Context, id int64, upd domain.ListingUpdate, adminToken string) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateListing",
		"listing_id": id,
	})

	ucLogger.Info("Use case started", nil)

	listing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Listing lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	// Проверка владения: чужую запись менять нельзя,
	// "ничейную" (без токена) — можно любому администратору.
	if listing.AdminToken != "" && listing.AdminToken != adminToken {
		ucLogger.Warn("Update rejected: token does not own the listing", nil)
		return nil, domain.ErrForbidden
	}

	upd.Apply(listing)
	if err := domain.DerivePricesOnUpdate(listing, upd, uc.usdRate); err != nil {
		ucLogger.Warn("Price derivation rejected update", port.Fields{"error": err.Error()})
		return nil, err
	}

	updated, err := uc.storage.Update(ctx, *listing)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"price_usd":     updated.PriceUSD,
		"price_per_sqm": updated.PricePerSqm,
	})

	return updated, nil
}
