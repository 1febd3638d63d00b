package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateListingUseCase struct{ mock.Mock }

func (m *MockCreateListingUseCase) Execute(ctx context.Context, in domain.NewListing, adminToken string) (*domain.Listing, error) {
	args := m.Called(ctx, in, adminToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

type MockDeleteListingUseCase struct{ mock.Mock }

func (m *MockDeleteListingUseCase) Execute(ctx context.Context, id int64, adminToken string) error {
	args := m.Called(ctx, id, adminToken)
	return args.Error(0)
}

func TestAdminHandler_CreateListing(t *testing.T) {
	t.Run("DefaultsAppliedForOmittedFields", func(t *testing.T) {
		createUC := new(MockCreateListingUseCase)
		h := NewAdminHandler(createUC, nil, nil, nil)

		var received domain.NewListing
		createUC.On("Execute", mock.Anything, mock.AnythingOfType("domain.NewListing"), "token-a").
			Run(func(args mock.Arguments) {
				received = args.Get(1).(domain.NewListing)
			}).
			Return(&domain.Listing{ID: 1}, nil).Once()

		body := `{
			"title": "2-комн. в Кентроне",
			"district": "Кентрон",
			"price_amd": 450000,
			"bedrooms": 2,
			"area_sqm": 55,
			"floor": 4,
			"lat": 40.1811,
			"lng": 44.5136
		}`
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/admin/listings", strings.NewReader(body))
		r = r.WithContext(contextkeys.ContextWithAdminToken(r.Context(), "token-a"))

		h.CreateListing(rec, r)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, domain.TypeApartment, received.Type)
		assert.Equal(t, domain.HousePartFull, received.HousePart)
		assert.True(t, received.IsFurnished)
		assert.True(t, received.BathShower)
		assert.False(t, received.BathTub)
	})

	t.Run("ExplicitFalseOverridesDefault", func(t *testing.T) {
		createUC := new(MockCreateListingUseCase)
		h := NewAdminHandler(createUC, nil, nil, nil)

		var received domain.NewListing
		createUC.On("Execute", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				received = args.Get(1).(domain.NewListing)
			}).
			Return(&domain.Listing{ID: 1}, nil).Once()

		body := `{
			"title": "t", "district": "d", "price_amd": 1, "bedrooms": 1,
			"area_sqm": 30, "floor": 1, "lat": 0, "lng": 0,
			"is_furnished": false
		}`
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/admin/listings", strings.NewReader(body))

		h.CreateListing(rec, r)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.False(t, received.IsFurnished)
	})

	t.Run("SchemaViolationIs400", func(t *testing.T) {
		createUC := new(MockCreateListingUseCase)
		h := NewAdminHandler(createUC, nil, nil, nil)

		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/admin/listings", strings.NewReader(`{"title": "без остального"}`))

		h.CreateListing(rec, r)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		createUC.AssertNotCalled(t, "Execute")
	})
}

func TestAdminHandler_DeleteListing(t *testing.T) {
	newRequest := func(id string) *http.Request {
		r := httptest.NewRequest("DELETE", "/api/admin/listings/"+id, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("listingID", id)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	t.Run("IdempotentDeleteReportsOk", func(t *testing.T) {
		deleteUC := new(MockDeleteListingUseCase)
		h := NewAdminHandler(nil, nil, deleteUC, nil)

		deleteUC.On("Execute", mock.Anything, int64(42), "").Return(nil).Once()

		rec := httptest.NewRecorder()
		h.DeleteListing(rec, newRequest("42"))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp OkResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)
	})

	t.Run("ForeignListingIs403", func(t *testing.T) {
		deleteUC := new(MockDeleteListingUseCase)
		h := NewAdminHandler(nil, nil, deleteUC, nil)

		deleteUC.On("Execute", mock.Anything, int64(42), "").Return(domain.ErrForbidden).Once()

		rec := httptest.NewRecorder()
		h.DeleteListing(rec, newRequest("42"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("NonNumericIDIs400", func(t *testing.T) {
		deleteUC := new(MockDeleteListingUseCase)
		h := NewAdminHandler(nil, nil, deleteUC, nil)

		rec := httptest.NewRecorder()
		h.DeleteListing(rec, newRequest("abc"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		deleteUC.AssertNotCalled(t, "Execute")
	})
}
