package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// ListingStoragePort — контракт хранилища объявлений.
// Единственный источник истины; реализация — adapters/postgres.
type ListingStoragePort interface {
	// Create сохраняет новую запись и возвращает её с присвоенным ID
	// и системными временными метками.
	Create(ctx context.Context, listing domain.Listing) (*domain.Listing, error)

	// GetByID возвращает domain.ErrListingNotFound для неизвестного ID.
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)

	// Update перезаписывает запись целиком и продвигает updated_at.
	Update(ctx context.Context, listing domain.Listing) (*domain.Listing, error)

	// Delete идемпотентен: удаление несуществующего ID — не ошибка.
	Delete(ctx context.Context, id int64) error

	// Find возвращает записи, подходящие под фильтры,
	// упорядоченные по убыванию created_at.
	Find(ctx context.Context, filters domain.SearchFilters) ([]domain.Listing, error)

	// FindByOwner возвращает записи, созданные данным токеном,
	// упорядоченные по убыванию created_at.
	FindByOwner(ctx context.Context, adminToken string) ([]domain.Listing, error)
}
