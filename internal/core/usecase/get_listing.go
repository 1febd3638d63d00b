package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type GetListingUseCase struct {
	storage port.ListingStoragePort
}

func NewGetListingUseCase(storage port.ListingStoragePort) *GetListingUseCase {
	return &GetListingUseCase{storage: storage}
}

func (uc *GetListingUseCase) Execute(ctx context.Context, id int64) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListing",
		"listing_id": id,
	})

	listing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Listing lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Debug("Use case finished successfully", nil)
	return listing, nil
}
