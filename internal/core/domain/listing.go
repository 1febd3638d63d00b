package domain

import "time"

// Типы объектов недвижимости
const (
	TypeApartment = "apartment"
	TypeHouse     = "house"
)

// Варианты продажи дома
const (
	HousePartFull = "full"
	HousePartPart = "part"
)

// Listing — запись каталога: объявление об аренде с ценами,
// характеристиками, удобствами и фотографиями.
type Listing struct {
	ID       int64
	Title    string
	District string

	// Цены: PriceAMD — первичная цена в драмах, PriceUSD и PricePerSqm
	// вычисляются правилами из pricing.go.
	PriceAMD    int64
	PriceUSD    float64
	PricePerSqm float64

	Bedrooms int
	AreaSqm  float64
	Floor    int

	Type        string // apartment | house
	IsHouseYard bool   // имеет смысл только для type=house
	HousePart   string // full | part, только для type=house

	IsNewBuilding bool
	HasAC         bool
	HasOven       bool
	HasDishwasher bool
	HasTV         bool
	HasWifi       bool
	HasMicrowave  bool
	HasFridge     bool
	IsFurnished   bool
	BathShower    bool
	BathTub       bool

	Lat float64
	Lng float64

	// Упорядоченный список URL фотографий. В БД хранится как JSON-строка,
	// кодек — photos.go.
	Photos []string

	// AdminToken — токен администратора, создавшего запись.
	// Пустая строка означает "ничейную" запись, её может менять
	// любой аутентифицированный администратор.
	AdminToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewListing — входные поля для создания объявления.
type NewListing struct {
	Title    string
	District string
	PriceAMD int64
	Bedrooms int
	AreaSqm  float64
	Floor    int

	Type        string
	IsHouseYard bool
	HousePart   string

	IsNewBuilding bool
	HasAC         bool
	HasOven       bool
	HasDishwasher bool
	HasTV         bool
	HasWifi       bool
	HasMicrowave  bool
	HasFridge     bool
	IsFurnished   bool
	BathShower    bool
	BathTub       bool

	Lat float64
	Lng float64

	// PriceUSD, если задана, имеет приоритет над пересчетом по курсу
	PriceUSD *float64
	Photos   []string
}

// ListingUpdate — частичное обновление: меняются только заданные поля.
type ListingUpdate struct {
	Title    *string
	District *string
	PriceAMD *int64
	PriceUSD *float64
	Bedrooms *int
	AreaSqm  *float64
	Floor    *int

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

	Lat *float64
	Lng *float64

	Photos *[]string
}

// Apply переносит заданные поля обновления на существующую запись.
// Производные цены здесь не трогаем — это зона ответственности pricing.go.
func (u ListingUpdate) Apply(l *Listing) {
	if u.Title != nil {
		l.Title = *u.Title
	}
	if u.District != nil {
		l.District = *u.District
	}
	if u.PriceAMD != nil {
		l.PriceAMD = *u.PriceAMD
	}
	if u.PriceUSD != nil {
		l.PriceUSD = *u.PriceUSD
	}
	if u.Bedrooms != nil {
		l.Bedrooms = *u.Bedrooms
	}
	if u.AreaSqm != nil {
		l.AreaSqm = *u.AreaSqm
	}
	if u.Floor != nil {
		l.Floor = *u.Floor
	}
	if u.Type != nil {
		l.Type = *u.Type
	}
	if u.IsHouseYard != nil {
		l.IsHouseYard = *u.IsHouseYard
	}
	if u.HousePart != nil {
		l.HousePart = *u.HousePart
	}
	if u.IsNewBuilding != nil {
		l.IsNewBuilding = *u.IsNewBuilding
	}
	if u.HasAC != nil {
		l.HasAC = *u.HasAC
	}
	if u.HasOven != nil {
		l.HasOven = *u.HasOven
	}
	if u.HasDishwasher != nil {
		l.HasDishwasher = *u.HasDishwasher
	}
	if u.HasTV != nil {
		l.HasTV = *u.HasTV
	}
	if u.HasWifi != nil {
		l.HasWifi = *u.HasWifi
	}
	if u.HasMicrowave != nil {
		l.HasMicrowave = *u.HasMicrowave
	}
	if u.HasFridge != nil {
		l.HasFridge = *u.HasFridge
	}
	if u.IsFurnished != nil {
		l.IsFurnished = *u.IsFurnished
	}
	if u.BathShower != nil {
		l.BathShower = *u.BathShower
	}
	if u.BathTub != nil {
		l.BathTub = *u.BathTub
	}
	if u.Lat != nil {
		l.Lat = *u.Lat
	}
	if u.Lng != nil {
		l.Lng = *u.Lng
	}
	if u.Photos != nil {
		l.Photos = *u.Photos
	}
}
