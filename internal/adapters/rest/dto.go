package rest

import (
	"time"

	"catalog-service/internal/core/domain"
)

// ListingResponse - плоское представление объявления для клиента.
// Фото уже декодированы в список URL.
type ListingResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	District string `json:"district"`

	PriceAMD    int64   `json:"price_amd"`
	PriceUSD    float64 `json:"price_usd"`
	PricePerSqm float64 `json:"price_per_sqm"`

	Bedrooms int     `json:"bedrooms"`
	AreaSqm  float64 `json:"area_sqm"`
	Floor    int     `json:"floor"`

	Type        string `json:"type"`
	IsHouseYard bool   `json:"is_house_yard"`
	HousePart   string `json:"house_part"`

	IsNewBuilding bool `json:"is_new_building"`
	HasAC         bool `json:"has_ac"`
	HasOven       bool `json:"has_oven"`
	HasDishwasher bool `json:"has_dishwasher"`
	HasTV         bool `json:"has_tv"`
	HasWifi       bool `json:"has_wifi"`
	HasMicrowave  bool `json:"has_microwave"`
	HasFridge     bool `json:"has_fridge"`
	IsFurnished   bool `json:"is_furnished"`
	BathShower    bool `json:"bath_shower"`
	BathTub       bool `json:"bath_tub"`

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	Photos []string `json:"photos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toListingResponse(l domain.Listing) ListingResponse {
	photos := l.Photos
	if photos == nil {
		photos = []string{}
	}
	return ListingResponse{
		ID:            l.ID,
		Title:         l.Title,
		District:      l.District,
		PriceAMD:      l.PriceAMD,
		PriceUSD:      l.PriceUSD,
		PricePerSqm:   l.PricePerSqm,
		Bedrooms:      l.Bedrooms,
		AreaSqm:       l.AreaSqm,
		Floor:         l.Floor,
		Type:          l.Type,
		IsHouseYard:   l.IsHouseYard,
		HousePart:     l.HousePart,
		IsNewBuilding: l.IsNewBuilding,
		HasAC:         l.HasAC,
		HasOven:       l.HasOven,
		HasDishwasher: l.HasDishwasher,
		HasTV:         l.HasTV,
		HasWifi:       l.HasWifi,
		HasMicrowave:  l.HasMicrowave,
		HasFridge:     l.HasFridge,
		IsFurnished:   l.IsFurnished,
		BathShower:    l.BathShower,
		BathTub:       l.BathTub,
		Lat:           l.Lat,
		Lng:           l.Lng,
		Photos:        photos,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

func toListingResponses(listings []domain.Listing) []ListingResponse {
	out := make([]ListingResponse, len(listings))
	for i, l := range listings {
		out[i] = toListingResponse(l)
	}
	return out
}

// CreateListingRequest - тело POST /api/admin/listings.
// Значения по умолчанию соответствуют исходной админке:
// квартира, меблирована, с душем.
type CreateListingRequest struct {
	Title    string `json:"title"`
	District string `json:"district"`
	PriceAMD int64  `json:"price_amd"`

	PriceUSD *float64 `json:"price_usd"`

	Bedrooms int     `json:"bedrooms"`
	AreaSqm  float64 `json:"area_sqm"`
	Floor    int     `json:"floor"`

	Type        string `json:"type"`
	IsHouseYard bool   `json:"is_house_yard"`
	HousePart   string `json:"house_part"`

	IsNewBuilding bool `json:"is_new_building"`
	HasAC         bool `json:"has_ac"`
	HasOven       bool `json:"has_oven"`
	HasDishwasher bool `json:"has_dishwasher"`
	HasTV         bool `json:"has_tv"`
	HasWifi       bool `json:"has_wifi"`
	HasMicrowave  bool `json:"has_microwave"`
	HasFridge     bool `json:"has_fridge"`
	IsFurnished   bool `json:"is_furnished"`
	BathShower    bool `json:"bath_shower"`
	BathTub       bool `json:"bath_tub"`

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	Photos []string `json:"photos"`
}

// newCreateListingRequest возвращает структуру с дефолтами,
// поверх которой декодируется JSON
func newCreateListingRequest() CreateListingRequest {
	return CreateListingRequest{
		Type:        domain.TypeApartment,
		HousePart:   domain.HousePartFull,
		IsFurnished: true,
		BathShower:  true,
	}
}

func (req CreateListingRequest) toDomain() domain.NewListing {
	return domain.NewListing{
		Title:         req.Title,
		District:      req.District,
		PriceAMD:      req.PriceAMD,
		PriceUSD:      req.PriceUSD,
		Bedrooms:      req.Bedrooms,
		AreaSqm:       req.AreaSqm,
		Floor:         req.Floor,
		Type:          req.Type,
		IsHouseYard:   req.IsHouseYard,
		HousePart:     req.HousePart,
		IsNewBuilding: req.IsNewBuilding,
		HasAC:         req.HasAC,
		HasOven:       req.HasOven,
		HasDishwasher: req.HasDishwasher,
		HasTV:         req.HasTV,
		HasWifi:       req.HasWifi,
		HasMicrowave:  req.HasMicrowave,
		HasFridge:     req.HasFridge,
		IsFurnished:   req.IsFurnished,
		BathShower:    req.BathShower,
		BathTub:       req.BathTub,
		Lat:           req.Lat,
		Lng:           req.Lng,
		Photos:        req.Photos,
	}
}

// UpdateListingRequest - тело PUT /api/admin/listings/{id}.
// Все поля опциональны: меняются только переданные.
type UpdateListingRequest struct {
	Title    *string  `json:"title"`
	District *string  `json:"district"`
	PriceAMD *int64   `json:"price_amd"`
	PriceUSD *float64 `json:"price_usd"`
	Bedrooms *int     `json:"bedrooms"`
	AreaSqm  *float64 `json:"area_sqm"`
	Floor    *int     `json:"floor"`

	Type        *string `json:"type"`
	IsHouseYard *bool   `json:"is_house_yard"`
	HousePart   *string `json:"house_part"`

	IsNewBuilding *bool `json:"is_new_building"`
	HasAC         *bool `json:"has_ac"`
	HasOven       *bool `json:"has_oven"`
	HasDishwasher *bool `json:"has_dishwasher"`
	HasTV         *bool `json:"has_tv"`
	HasWifi       *bool `json:"has_wifi"`
	HasMicrowave  *bool `json:"has_microwave"`
	HasFridge     *bool `json:"has_fridge"`
	IsFurnished   *bool `json:"is_furnished"`
	BathShower    *bool `json:"bath_shower"`
	BathTub       *bool `json:"bath_tub"`

	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	Photos *[]string `json:"photos"`
}

func (req UpdateListingRequest) toDomain() domain.ListingUpdate {
	return domain.ListingUpdate{
		Title:         req.Title,
		District:      req.District,
		PriceAMD:      req.PriceAMD,
		PriceUSD:      req.PriceUSD,
		Bedrooms:      req.Bedrooms,
		AreaSqm:       req.AreaSqm,
		Floor:         req.Floor,
		Type:          req.Type,
		IsHouseYard:   req.IsHouseYard,
		HousePart:     req.HousePart,
		IsNewBuilding: req.IsNewBuilding,
		HasAC:         req.HasAC,
		HasOven:       req.HasOven,
		HasDishwasher: req.HasDishwasher,
		HasTV:         req.HasTV,
		HasWifi:       req.HasWifi,
		HasMicrowave:  req.HasMicrowave,
		HasFridge:     req.HasFridge,
		IsFurnished:   req.IsFurnished,
		BathShower:    req.BathShower,
		BathTub:       req.BathTub,
		Lat:           req.Lat,
		Lng:           req.Lng,
		Photos:        req.Photos,
	}
}

// UploadResponse - ответ POST /api/upload
type UploadResponse struct {
	URL string `json:"url"`
}

// OkResponse - ответ для идемпотентных операций и health-check
type OkResponse struct {
	Ok bool `json:"ok"`
}
