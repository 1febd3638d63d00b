package postgres

import (
	"context"
	"errors"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListingRepository реализует ListingStoragePort для PostgreSQL.
type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) (*ListingRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ListingRepository{pool: pool}, nil
}

// listingColumns — единый список колонок для всех SELECT,
// порядок обязан совпадать со scanListing.
const listingColumns = `
	id, title, district,
	price_amd, price_usd, price_per_sqm,
	bedrooms, area_sqm, floor,
	type, is_house_yard, house_part,
	is_new_building, has_ac, has_oven, has_dishwasher, has_tv,
	has_wifi, has_microwave, has_fridge, is_furnished, bath_shower, bath_tub,
	lat, lng, photos_json, admin_token,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*domain.Listing, error) {
	var l domain.Listing
	var photosJSON string

	err := row.Scan(
		&l.ID, &l.Title, &l.District,
		&l.PriceAMD, &l.PriceUSD, &l.PricePerSqm,
		&l.Bedrooms, &l.AreaSqm, &l.Floor,
		&l.Type, &l.IsHouseYard, &l.HousePart,
		&l.IsNewBuilding, &l.HasAC, &l.HasOven, &l.HasDishwasher, &l.HasTV,
		&l.HasWifi, &l.HasMicrowave, &l.HasFridge, &l.IsFurnished, &l.BathShower, &l.BathTub,
		&l.Lat, &l.Lng, &photosJSON, &l.AdminToken,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Фото хранятся одной JSON-строкой, на границе хранилища — всегда кодек
	l.Photos, err = domain.DecodePhotos(photosJSON)
	if err != nil {
		return nil, fmt.Errorf("listing %d: %w", l.ID, err)
	}
	return &l, nil
}

// Create сохраняет новую запись и возвращает её с присвоенными ID и метками.
func (r *ListingRepository) Create(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ListingRepository",
		"method":    "Create",
	})

	sql := `
		INSERT INTO listings (
			title, district,
			price_amd, price_usd, price_per_sqm,
			bedrooms, area_sqm, floor,
			type, is_house_yard, house_part,
			is_new_building, has_ac, has_oven, has_dishwasher, has_tv,
			has_wifi, has_microwave, has_fridge, is_furnished, bath_shower, bath_tub,
			lat, lng, location_hash, photos_json, admin_token
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
		)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, sql,
		listing.Title, listing.District,
		listing.PriceAMD, listing.PriceUSD, listing.PricePerSqm,
		listing.Bedrooms, listing.AreaSqm, listing.Floor,
		listing.Type, listing.IsHouseYard, listing.HousePart,
		listing.IsNewBuilding, listing.HasAC, listing.HasOven, listing.HasDishwasher, listing.HasTV,
		listing.HasWifi, listing.HasMicrowave, listing.HasFridge, listing.IsFurnished, listing.BathShower, listing.BathTub,
		listing.Lat, listing.Lng, locationHash(listing.Lat, listing.Lng),
		domain.EncodePhotos(listing.Photos), listing.AdminToken,
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		repoLogger.Error("Failed to insert listing", err, nil)
		return nil, fmt.Errorf("failed to insert listing: %w", err)
	}

	if listing.Photos == nil {
		listing.Photos = []string{}
	}

	repoLogger.Info("Listing inserted", port.Fields{"listing_id": listing.ID})
	return &listing, nil
}

// GetByID возвращает одну запись или domain.ErrListingNotFound.
func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	sql := fmt.Sprintf("SELECT %s FROM listings WHERE id = $1", listingColumns)

	listing, err := scanListing(r.pool.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing %d: %w", id, err)
	}
	return listing, nil
}

// Update перезаписывает запись целиком и продвигает updated_at.
func (r *ListingRepository) Update(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ListingRepository",
		"method":     "Update",
		"listing_id": listing.ID,
	})

	sql := `
		UPDATE listings SET
			title = $2, district = $3,
			price_amd = $4, price_usd = $5, price_per_sqm = $6,
			bedrooms = $7, area_sqm = $8, floor = $9,
			type = $10, is_house_yard = $11, house_part = $12,
			is_new_building = $13, has_ac = $14, has_oven = $15, has_dishwasher = $16, has_tv = $17,
			has_wifi = $18, has_microwave = $19, has_fridge = $20, is_furnished = $21, bath_shower = $22, bath_tub = $23,
			lat = $24, lng = $25, location_hash = $26, photos_json = $27,
			updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, sql,
		listing.ID,
		listing.Title, listing.District,
		listing.PriceAMD, listing.PriceUSD, listing.PricePerSqm,
		listing.Bedrooms, listing.AreaSqm, listing.Floor,
		listing.Type, listing.IsHouseYard, listing.HousePart,
		listing.IsNewBuilding, listing.HasAC, listing.HasOven, listing.HasDishwasher, listing.HasTV,
		listing.HasWifi, listing.HasMicrowave, listing.HasFridge, listing.IsFurnished, listing.BathShower, listing.BathTub,
		listing.Lat, listing.Lng, locationHash(listing.Lat, listing.Lng),
		domain.EncodePhotos(listing.Photos),
	).Scan(&listing.CreatedAt, &listing.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		repoLogger.Error("Failed to update listing", err, nil)
		return nil, fmt.Errorf("failed to update listing %d: %w", listing.ID, err)
	}

	if listing.Photos == nil {
		listing.Photos = []string{}
	}

	repoLogger.Info("Listing updated", nil)
	return &listing, nil
}

// Delete идемпотентен: отсутствие записи не считается ошибкой.
func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ListingRepository",
		"method":     "Delete",
		"listing_id": id,
	})

	tag, err := r.pool.Exec(ctx, "DELETE FROM listings WHERE id = $1", id)
	if err != nil {
		repoLogger.Error("Failed to delete listing", err, nil)
		return fmt.Errorf("failed to delete listing %d: %w", id, err)
	}

	repoLogger.Info("Listing delete finished", port.Fields{"rows_affected": tag.RowsAffected()})
	return nil
}

// Find возвращает записи под фильтрами, свежие сначала.
func (r *ListingRepository) Find(ctx context.Context, filters domain.SearchFilters) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ListingRepository",
		"method":    "Find",
	})

	whereClause, args := applyFilters(filters)

	sql := fmt.Sprintf(`
		SELECT %s FROM listings
		%s
		ORDER BY created_at DESC, id DESC`, listingColumns, whereClause)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		repoLogger.Error("Failed to find listings", err, port.Fields{"query": sql})
		return nil, fmt.Errorf("failed to find listings: %w", err)
	}
	defer rows.Close()

	listings, err := collectListings(rows)
	if err != nil {
		return nil, err
	}

	repoLogger.Info("Listings found", port.Fields{"count": len(listings)})
	return listings, nil
}

// FindByOwner возвращает записи, созданные данным токеном.
func (r *ListingRepository) FindByOwner(ctx context.Context, adminToken string) ([]domain.Listing, error) {
	sql := fmt.Sprintf(`
		SELECT %s FROM listings
		WHERE admin_token = $1
		ORDER BY created_at DESC, id DESC`, listingColumns)

	rows, err := r.pool.Query(ctx, sql, adminToken)
	if err != nil {
		return nil, fmt.Errorf("failed to find listings by owner: %w", err)
	}
	defer rows.Close()

	return collectListings(rows)
}

func collectListings(rows pgx.Rows) ([]domain.Listing, error) {
	listings := make([]domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *l)
	}
	return listings, rows.Err()
}
