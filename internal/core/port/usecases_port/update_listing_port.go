package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type UpdateListingUseCase interface {
	Execute(ctx context.Context, id int64, upd domain.ListingUpdate, adminToken string) (*domain.Listing, error)
}
