package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type MyListingsUseCase struct {
	storage port.ListingStoragePort
}

func NewMyListingsUseCase(storage port.ListingStoragePort) *MyListingsUseCase {
	return &MyListingsUseCase{storage: storage}
}

func (uc *MyListingsUseCase) Execute(ctx context.Context, adminToken string) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "MyListings",
	})

	listings, err := uc.storage.FindByOwner(ctx, adminToken)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found": len(listings),
	})

	return listings, nil
}
