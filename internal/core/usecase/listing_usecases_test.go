package usecase

import (
	"context"
	"errors"
	"testing"

	"catalog-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockListingStorage struct{ mock.Mock }

func (m *MockListingStorage) Create(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	args := m.Called(ctx, listing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingStorage) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingStorage) Update(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	args := m.Called(ctx, listing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingStorage) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockListingStorage) Find(ctx context.Context, filters domain.SearchFilters) ([]domain.Listing, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}
func (m *MockListingStorage) FindByOwner(ctx context.Context, adminToken string) ([]domain.Listing, error) {
	args := m.Called(ctx, adminToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

type MockListingEvents struct{ mock.Mock }

func (m *MockListingEvents) ListingCreated(ctx context.Context, listing domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}
func (m *MockListingEvents) ListingDeleted(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const testUsdRate = 390.0

func TestCreateListingUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("DerivesPricesAndStampsOwner", func(t *testing.T) {
		storage := new(MockListingStorage)
		events := new(MockListingEvents)
		uc := NewCreateListingUseCase(storage, events, testUsdRate)

		in := domain.NewListing{
			Title:    "2-комн. в Кентроне",
			District: "Кентрон",
			PriceAMD: 450000,
			AreaSqm:  55,
		}

		var stored domain.Listing
		storage.On("Create", ctx, mock.AnythingOfType("domain.Listing")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(domain.Listing)
			}).
			Return(&domain.Listing{ID: 7}, nil).Once()
		events.On("ListingCreated", ctx, mock.AnythingOfType("domain.Listing")).Return(nil).Once()

		created, err := uc.Execute(ctx, in, "token-a")

		require.NoError(t, err)
		assert.EqualValues(t, 7, created.ID)
		assert.Equal(t, "token-a", stored.AdminToken)
		assert.Equal(t, 8181.82, stored.PricePerSqm)
		assert.Equal(t, 1153.85, stored.PriceUSD)
		storage.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("RejectsNonPositiveArea", func(t *testing.T) {
		storage := new(MockListingStorage)
		uc := NewCreateListingUseCase(storage, nil, testUsdRate)

		_, err := uc.Execute(ctx, domain.NewListing{PriceAMD: 1000, AreaSqm: 0}, "token-a")

		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		storage.AssertNotCalled(t, "Create")
	})

	t.Run("BrokerFailureDoesNotFailRequest", func(t *testing.T) {
		storage := new(MockListingStorage)
		events := new(MockListingEvents)
		uc := NewCreateListingUseCase(storage, events, testUsdRate)

		storage.On("Create", ctx, mock.Anything).Return(&domain.Listing{ID: 8}, nil).Once()
		events.On("ListingCreated", ctx, mock.Anything).Return(errors.New("broker down")).Once()

		created, err := uc.Execute(ctx, domain.NewListing{PriceAMD: 1000, AreaSqm: 10}, "token-a")

		require.NoError(t, err)
		assert.EqualValues(t, 8, created.ID)
	})

	t.Run("WorksWithoutEventPublisher", func(t *testing.T) {
		storage := new(MockListingStorage)
		uc := NewCreateListingUseCase(storage, nil, testUsdRate)

		storage.On("Create", ctx, mock.Anything).Return(&domain.Listing{ID: 9}, nil).Once()

		_, err := uc.Execute(ctx, domain.NewListing{PriceAMD: 1000, AreaSqm: 10}, "token-a")

		require.NoError(t, err)
	})
}

func TestUpdateListingUseCase(t *testing.T) {
	ctx := context.Background()

	existing := func(owner string) *domain.Listing {
		return &domain.Listing{
			ID:          5,
			PriceAMD:    450000,
			PriceUSD:    1153.85,
			PricePerSqm: 8181.82,
			AreaSqm:     55,
			AdminToken:  owner,
		}
	}

	t.Run("ForeignTokenForbidden", func(t *testing.T) {
		storage := new(MockListingStorage)
		uc := NewUpdateListingUseCase(storage, testUsdRate)

		storage.On("GetByID", ctx, int64(5)).Return(existing("owner-token"), nil).Once()

		_, err := uc.Execute(ctx, 5, domain.ListingUpdate{}, "other-token")

		assert.True(t, errors.Is(err, domain.ErrForbidden))
		storage.AssertNotCalled(t, "Update")
	})

	t.Run("UnownedListingMutableByAnyAdmin", func(t *testing.T) {
		storage := new(MockListingStorage)
		uc := NewUpdateListingUseCase(storage, testUsdRate)

		storage.On("GetByID", ctx, int64(5)).Return(existing(""), nil).Once()
		storage.On("Update", ctx, mock.AnythingOfType("domain.Listing")).
			Return(existing(""), nil).Once()

		_, err := uc.Execute(ctx, 5, domain.ListingUpdate{}, "any-token")

		require.NoError(t, err)
		storage.AssertExpectations(t)
	})

	t.Run("PriceChangeRecomputesDerived", func(t *testing.T) {
		storage := new(MockListingStorage)
		uc := NewUpdateListingUseCase(storage, testUsdRate)

		newPrice := int64(500000)
		var saved domain.Listing
		storage.On("GetByID", ctx, int64(5)).Return(existing("owner-token"), nil).Once()
		storage.On("Update", ctx, mock.AnythingOfType("domain.Listing")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(domain.Listing)
			}).
			Return(existing("owner-token"), nil).Once()

		_, err := uc.Execute(ctx, 5, domain.ListingUpdate{PriceAMD: &newPrice}, "owner-token")

		require.NoError(t, err)
		assert.EqualValues(t, 500000, saved.PriceAMD)
		assert.Equal(t, domain.Round2(500000.0/55.0), saved.PricePerSqm)
		assert.Equal(t, domain.Round2(500000.0/testUsdRate), saved.PriceUSD)
	})

	t.Run("NonPositiveAreaRejected", func(t *testing.T) {
		storage := new(MockListingStorage)
		uc := NewUpdateListingUseCase(storage, testUsdRate)

		badArea := -5.0
		storage.On("GetByID", ctx, int64(5)).Return(existing("owner-token"), nil).Once()

		_, err := uc.Execute(ctx, 5, domain.ListingUpdate{AreaSqm: &badArea}, "owner-token")

		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		storage.AssertNotCalled(t, "Update")
	})

	t.Run("UnknownIDPropagatesNotFound", func(t *testing.T) {
		storage := new(MockListingStorage)
		uc := NewUpdateListingUseCase(storage, testUsdRate)

		storage.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrListingNotFound).Once()

		_, err := uc.Execute(ctx, 404, domain.ListingUpdate{}, "owner-token")

		assert.True(t, errors.Is(err, domain.ErrListingNotFound))
	})
}

func TestDeleteListingUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("DeletesOwnListing", func(t *testing.T) {
		storage := new(MockListingStorage)
		events := new(MockListingEvents)
		uc := NewDeleteListingUseCase(storage, events)

		storage.On("GetByID", ctx, int64(5)).Return(&domain.Listing{ID: 5, AdminToken: "owner-token"}, nil).Once()
		storage.On("Delete", ctx, int64(5)).Return(nil).Once()
		events.On("ListingDeleted", ctx, int64(5)).Return(nil).Once()

		err := uc.Execute(ctx, 5, "owner-token")

		require.NoError(t, err)
		storage.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("AbsentListingReportsSuccess", func(t *testing.T) {
		storage := new(MockListingStorage)
		uc := NewDeleteListingUseCase(storage, nil)

		storage.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrListingNotFound).Once()

		err := uc.Execute(ctx, 404, "owner-token")

		require.NoError(t, err)
		storage.AssertNotCalled(t, "Delete")
	})

	t.Run("ForeignTokenForbidden", func(t *testing.T) {
		storage := new(MockListingStorage)
		uc := NewDeleteListingUseCase(storage, nil)

		storage.On("GetByID", ctx, int64(5)).Return(&domain.Listing{ID: 5, AdminToken: "owner-token"}, nil).Once()

		err := uc.Execute(ctx, 5, "other-token")

		assert.True(t, errors.Is(err, domain.ErrForbidden))
		storage.AssertNotCalled(t, "Delete")
	})
}

func TestMyListingsUseCase(t *testing.T) {
	ctx := context.Background()
	storage := new(MockListingStorage)
	uc := NewMyListingsUseCase(storage)

	expected := []domain.Listing{{ID: 2}, {ID: 1}}
	storage.On("FindByOwner", ctx, "owner-token").Return(expected, nil).Once()

	listings, err := uc.Execute(ctx, "owner-token")

	require.NoError(t, err)
	assert.Equal(t, expected, listings)
}

type MockPhotoStorage struct{ mock.Mock }

func (m *MockPhotoStorage) Save(ctx context.Context, desiredName string, content []byte) (string, error) {
	args := m.Called(ctx, desiredName, content)
	return args.String(0), args.Error(1)
}

func TestUploadPhotoUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsPublicURLOfFinalName", func(t *testing.T) {
		photos := new(MockPhotoStorage)
		uc := NewUploadPhotoUseCase(photos, "/uploads")

		// хранилище переименовало файл из-за коллизии
		photos.On("Save", ctx, "photo.jpg", []byte("data")).Return("photo_1.jpg", nil).Once()

		url, err := uc.Execute(ctx, "photo.jpg", []byte("data"))

		require.NoError(t, err)
		assert.Equal(t, "/uploads/photo_1.jpg", url)
	})

	t.Run("EmptyNameRejected", func(t *testing.T) {
		photos := new(MockPhotoStorage)
		uc := NewUploadPhotoUseCase(photos, "/uploads")

		_, err := uc.Execute(ctx, "", []byte("data"))

		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		photos.AssertNotCalled(t, "Save")
	})
}
