package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetListingUseCase interface {
	Execute(ctx context.Context, id int64) (*domain.Listing, error)
}
