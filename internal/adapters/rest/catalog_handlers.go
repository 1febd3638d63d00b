package rest

import (
	"net/http"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"
)

// CatalogHandler обслуживает публичную часть каталога.
type CatalogHandler struct {
	searchUC usecases_port.SearchListingsUseCase
	getUC    usecases_port.GetListingUseCase
}

func NewCatalogHandler(searchUC usecases_port.SearchListingsUseCase, getUC usecases_port.GetListingUseCase) *CatalogHandler {
	return &CatalogHandler{
		searchUC: searchUC,
		getUC:    getUC,
	}
}

// Ping обрабатывает GET /api/ping
func (h *CatalogHandler) Ping(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, OkResponse{Ok: true})
}

// SearchListings обрабатывает GET /api/listings
func (h *CatalogHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	filters, err := parseSearchFilters(r)
	if err != nil {
		logger.Warn("Malformed search criteria", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"handler": "SearchListings"})
	handlerLogger.Debug("Processing search request", nil)

	listings, err := h.searchUC.Execute(r.Context(), *filters)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponses(listings))
}

// GetListing обрабатывает GET /api/listings/{listingID}
func (h *CatalogHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, ok := parseListingID(w, r)
	if !ok {
		return
	}

	listing, err := h.getUC.Execute(r.Context(), id)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(*listing))
}

// parseSearchFilters собирает критерии поиска из query-параметров.
// Имена параметров совпадают с публичным API веб-клиента.
func parseSearchFilters(r *http.Request) (*domain.SearchFilters, error) {
	query := r.URL.Query()
	filters := domain.SearchFilters{
		Districts: parseStringSliceParam(query, "districts"),
	}

	currency, err := parseEnumParam(query, "currency", domain.CurrencyAMD, domain.CurrencyUSD)
	if err != nil {
		return nil, err
	}
	filters.PriceCurrency = domain.CurrencyAMD
	if currency != nil {
		filters.PriceCurrency = *currency
	}

	if filters.PriceFrom, err = parseFloatParam(query, "price_from"); err != nil {
		return nil, err
	}
	if filters.PriceTo, err = parseFloatParam(query, "price_to"); err != nil {
		return nil, err
	}
	if filters.Bedrooms, err = parseIntParam(query, "bedrooms"); err != nil {
		return nil, err
	}
	if filters.AreaFrom, err = parseFloatParam(query, "area_from"); err != nil {
		return nil, err
	}
	if filters.AreaTo, err = parseFloatParam(query, "area_to"); err != nil {
		return nil, err
	}
	if filters.FloorFrom, err = parseIntParam(query, "floor_from"); err != nil {
		return nil, err
	}
	if filters.FloorTo, err = parseIntParam(query, "floor_to"); err != nil {
		return nil, err
	}
	if filters.PricePerSqmFrom, err = parseFloatParam(query, "price_per_sqm_from"); err != nil {
		return nil, err
	}
	if filters.PricePerSqmTo, err = parseFloatParam(query, "price_per_sqm_to"); err != nil {
		return nil, err
	}

	if filters.Type, err = parseEnumParam(query, "type", domain.TypeApartment, domain.TypeHouse); err != nil {
		return nil, err
	}
	if filters.IsHouseYard, err = parseBoolParam(query, "is_house_yard"); err != nil {
		return nil, err
	}
	if filters.HousePart, err = parseEnumParam(query, "house_part", domain.HousePartFull, domain.HousePartPart); err != nil {
		return nil, err
	}

	boolParams := []struct {
		key  string
		dest **bool
	}{
		{"is_new_building", &filters.IsNewBuilding},
		{"has_ac", &filters.HasAC},
		{"has_oven", &filters.HasOven},
		{"has_dishwasher", &filters.HasDishwasher},
		{"has_tv", &filters.HasTV},
		{"has_wifi", &filters.HasWifi},
		{"has_microwave", &filters.HasMicrowave},
		{"has_fridge", &filters.HasFridge},
		{"is_furnished", &filters.IsFurnished},
		{"bath_shower", &filters.BathShower},
		{"bath_tub", &filters.BathTub},
	}
	for _, p := range boolParams {
		if *p.dest, err = parseBoolParam(query, p.key); err != nil {
			return nil, err
		}
	}

	return &filters, nil
}
