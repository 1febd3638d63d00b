package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type MyListingsUseCase interface {
	Execute(ctx context.Context, adminToken string) ([]domain.Listing, error)
}
