package constants

// Обменник каталога
const (
	CatalogExchange     = "catalog_exchange"
	CatalogExchangeType = "direct"
)

// Ключи маршрутизации событий для бота-уведомителя
const (
	RoutingKeyListingCreated = "notify.listing.created"
	RoutingKeyListingDeleted = "notify.listing.deleted"
)
