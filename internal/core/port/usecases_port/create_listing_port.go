package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type CreateListingUseCase interface {
	// adminToken — аутентифицированный токен, записывается владельцем.
	Execute(ctx context.Context, in domain.NewListing, adminToken string) (*domain.Listing, error)
}
