package postgres

import "github.com/mmcloughlin/geohash"

// Точности в 6 символов (~±0.6 км) достаточно для группировки
// объявлений по тайлам карты.
const locationHashPrecision = 6

// locationHash считает геохэш координат объявления. Колонка location_hash
// индексируется и используется для кластеризации на карте; наружу через
// API не отдается.
func locationHash(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, locationHashPrecision)
}
