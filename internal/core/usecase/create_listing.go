package usecase

import (
	"context"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type CreateListingUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
	usdRate float64
}

func NewCreateListingUseCase(storage port.ListingStoragePort, events port.ListingEventsPort, usdRate float64) *CreateListingUseCase {
	return &CreateListingUseCase{
		storage: storage,
		events:  events,
		usdRate: usdRate,
	}
}

func (uc *CreateListingUseCase) Execute(ctx context.Context, in domain.NewListing, adminToken string) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateListing",
		"district": in.District,
	})

	ucLogger.Info("Use case started", nil)

	priceUSD, pricePerSqm, err := domain.DerivePricesOnCreate(in, uc.usdRate)
	if err != nil {
		ucLogger.Warn("Price derivation rejected input", port.Fields{"error": err.Error()})
		return nil, err
	}

	listing := domain.Listing{
		Title:         in.Title,
		District:      in.District,
		PriceAMD:      in.PriceAMD,
		PriceUSD:      priceUSD,
		PricePerSqm:   pricePerSqm,
		Bedrooms:      in.Bedrooms,
		AreaSqm:       in.AreaSqm,
		Floor:         in.Floor,
		Type:          in.Type,
		IsHouseYard:   in.IsHouseYard,
		HousePart:     in.HousePart,
		IsNewBuilding: in.IsNewBuilding,
		HasAC:         in.HasAC,
		HasOven:       in.HasOven,
		HasDishwasher: in.HasDishwasher,
		HasTV:         in.HasTV,
		HasWifi:       in.HasWifi,
		HasMicrowave:  in.HasMicrowave,
		HasFridge:     in.HasFridge,
		IsFurnished:   in.IsFurnished,
		BathShower:    in.BathShower,
		BathTub:       in.BathTub,
		Lat:           in.Lat,
		Lng:           in.Lng,
		Photos:        in.Photos,
		AdminToken:    adminToken,
	}

	created, err := uc.storage.Create(ctx, listing)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	// Событие для бота — best-effort, отказ брокера не ломает запрос
	if uc.events != nil {
		if err := uc.events.ListingCreated(ctx, *created); err != nil {
			ucLogger.Warn("Failed to publish listing.created event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"listing_id":    created.ID,
		"price_usd":     created.PriceUSD,
		"price_per_sqm": created.PricePerSqm,
	})

	return created, nil
}
