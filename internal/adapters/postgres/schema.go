package postgres

import (
	"context"
	"fmt"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS listings (
	id              BIGSERIAL PRIMARY KEY,
	title           TEXT NOT NULL,
	district        TEXT NOT NULL DEFAULT '',
	price_amd       BIGINT NOT NULL DEFAULT 0,
	price_usd       DOUBLE PRECISION NOT NULL DEFAULT 0,
	price_per_sqm   DOUBLE PRECISION NOT NULL DEFAULT 0,
	bedrooms        INT NOT NULL DEFAULT 0,
	area_sqm        DOUBLE PRECISION NOT NULL DEFAULT 0,
	floor           INT NOT NULL DEFAULT 0,
	type            TEXT NOT NULL DEFAULT 'apartment',
	is_house_yard   BOOLEAN NOT NULL DEFAULT FALSE,
	house_part      TEXT NOT NULL DEFAULT 'full',
	is_new_building BOOLEAN NOT NULL DEFAULT FALSE,
	has_ac          BOOLEAN NOT NULL DEFAULT FALSE,
	has_oven        BOOLEAN NOT NULL DEFAULT FALSE,
	has_dishwasher  BOOLEAN NOT NULL DEFAULT FALSE,
	has_tv          BOOLEAN NOT NULL DEFAULT FALSE,
	has_wifi        BOOLEAN NOT NULL DEFAULT FALSE,
	has_microwave   BOOLEAN NOT NULL DEFAULT FALSE,
	has_fridge      BOOLEAN NOT NULL DEFAULT FALSE,
	is_furnished    BOOLEAN NOT NULL DEFAULT TRUE,
	bath_shower     BOOLEAN NOT NULL DEFAULT TRUE,
	bath_tub        BOOLEAN NOT NULL DEFAULT FALSE,
	lat             DOUBLE PRECISION NOT NULL DEFAULT 0,
	lng             DOUBLE PRECISION NOT NULL DEFAULT 0,
	location_hash   TEXT NOT NULL DEFAULT '',
	photos_json     TEXT NOT NULL DEFAULT '[]',
	admin_token     TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_listings_district        ON listings (district);
CREATE INDEX IF NOT EXISTS idx_listings_price_amd       ON listings (price_amd);
CREATE INDEX IF NOT EXISTS idx_listings_price_usd       ON listings (price_usd);
CREATE INDEX IF NOT EXISTS idx_listings_price_per_sqm   ON listings (price_per_sqm);
CREATE INDEX IF NOT EXISTS idx_listings_bedrooms        ON listings (bedrooms);
CREATE INDEX IF NOT EXISTS idx_listings_area_sqm        ON listings (area_sqm);
CREATE INDEX IF NOT EXISTS idx_listings_floor           ON listings (floor);
CREATE INDEX IF NOT EXISTS idx_listings_type            ON listings (type);
CREATE INDEX IF NOT EXISTS idx_listings_admin_token     ON listings (admin_token);
CREATE INDEX IF NOT EXISTS idx_listings_location_hash   ON listings (location_hash);
CREATE INDEX IF NOT EXISTS idx_listings_created_at      ON listings (created_at DESC);
`

// EnsureSchema создает таблицу и индексы, если их еще нет.
// Выполняется на старте приложения.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure listings schema: %w", err)
	}
	return nil
}

// SeedDemoListings заполняет пустую таблицу тремя демо-объявлениями,
// чтобы каталог не был пустым при первом запуске.
func SeedDemoListings(ctx context.Context, pool *pgxpool.Pool, logger port.LoggerPort) error {
	var count int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM listings").Scan(&count); err != nil {
		return fmt.Errorf("failed to count listings: %w", err)
	}
	if count > 0 {
		return nil
	}

	demo := []domain.Listing{
		{
			Title: "Квартира в Кентроне", District: "Kentron",
			PriceAMD: 450000, PriceUSD: 1150, PricePerSqm: domain.Round2(450000.0 / 55),
			Bedrooms: 1, AreaSqm: 55, Floor: 5,
			Type: domain.TypeApartment, HousePart: domain.HousePartFull,
			IsNewBuilding: true, HasAC: true, HasWifi: true, HasTV: true,
			IsFurnished: true, BathShower: true,
			Lat: 40.179, Lng: 44.499,
			Photos: []string{"/uploads/demo.jpg"},
		},
		{
			Title: "2к в Арабкире", District: "Arabkir",
			PriceAMD: 700000, PriceUSD: 1800, PricePerSqm: domain.Round2(700000.0 / 85),
			Bedrooms: 2, AreaSqm: 85, Floor: 8,
			Type: domain.TypeApartment, HousePart: domain.HousePartFull,
			HasAC: true, HasOven: true, HasFridge: true,
			IsFurnished: true, BathShower: true,
			Lat: 40.205, Lng: 44.490,
			Photos: []string{"/uploads/demo2.jpg"},
		},
		{
			Title: "Дом с двором в Аджапняке", District: "Ajapnyak",
			PriceAMD: 900000, PriceUSD: 2300, PricePerSqm: domain.Round2(900000.0 / 120),
			Bedrooms: 3, AreaSqm: 120, Floor: 1,
			Type: domain.TypeHouse, IsHouseYard: true, HousePart: domain.HousePartFull,
			HasWifi: true, IsFurnished: true, BathShower: true,
			Lat: 40.206, Lng: 44.452,
			Photos: []string{},
		},
	}

	repo, err := NewListingRepository(pool)
	if err != nil {
		return err
	}
	for _, l := range demo {
		if _, err := repo.Create(ctx, l); err != nil {
			return fmt.Errorf("failed to seed demo listing %q: %w", l.Title, err)
		}
	}

	if logger != nil {
		logger.Info("Seeded demo listings", port.Fields{"count": len(demo)})
	}
	return nil
}
