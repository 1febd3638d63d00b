package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type SearchListingsUseCase interface {
	Execute(ctx context.Context, filters domain.SearchFilters) ([]domain.Listing, error)
}
