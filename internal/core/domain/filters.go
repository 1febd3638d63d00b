package domain

// Валюта, в которой применяется фильтр по цене
const (
	CurrencyAMD = "AMD"
	CurrencyUSD = "USD"
)

// SearchFilters — набор необязательных критериев поиска.
// Критерии независимы и соединяются по AND; nil/пустое значение
// означает отсутствие ограничения.
type SearchFilters struct {
	Districts []string

	// Диапазон цены трактуется в валюте PriceCurrency:
	// AMD — по колонке price_amd, USD — по price_usd.
	PriceCurrency string
	PriceFrom     *float64
	PriceTo       *float64

	Bedrooms *int

	AreaFrom *float64
	AreaTo   *float64

	FloorFrom *int
	FloorTo   *int

	PricePerSqmFrom *float64
	PricePerSqmTo   *float64

	Type        *string
	IsHouseYard *bool
	HousePart   *string

	IsNewBuilding *bool
	HasAC         *bool
	HasOven       *bool
	HasDishwasher *bool
	HasTV         *bool
	HasWifi       *bool
	HasMicrowave  *bool
	HasFridge     *bool
	IsFurnished   *bool
	BathShower    *bool
	BathTub       *bool
}
