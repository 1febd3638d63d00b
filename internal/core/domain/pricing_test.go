package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 8181.82, Round2(8181.818181))
	assert.Equal(t, 1153.85, Round2(450000.0/390.0))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, -1.5, Round2(-1.499))
}

func TestDerivePricesOnCreate(t *testing.T) {
	t.Run("PricePerSqmFromAmdAndArea", func(t *testing.T) {
		in := NewListing{PriceAMD: 450000, AreaSqm: 55}

		priceUSD, pricePerSqm, err := DerivePricesOnCreate(in, 390.0)

		require.NoError(t, err)
		assert.Equal(t, 8181.82, pricePerSqm)
		assert.Equal(t, 1153.85, priceUSD)
	})

	t.Run("ExplicitPriceUsdWins", func(t *testing.T) {
		usd := 1200.0
		in := NewListing{PriceAMD: 450000, AreaSqm: 55, PriceUSD: &usd}

		priceUSD, _, err := DerivePricesOnCreate(in, 390.0)

		require.NoError(t, err)
		assert.Equal(t, 1200.0, priceUSD)
	})

	t.Run("ZeroAreaRejected", func(t *testing.T) {
		in := NewListing{PriceAMD: 450000, AreaSqm: 0}

		_, _, err := DerivePricesOnCreate(in, 390.0)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("NegativeAreaRejected", func(t *testing.T) {
		in := NewListing{PriceAMD: 450000, AreaSqm: -10}

		_, _, err := DerivePricesOnCreate(in, 390.0)

		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestDerivePricesOnUpdate(t *testing.T) {
	base := func() *Listing {
		return &Listing{
			PriceAMD:    450000,
			PriceUSD:    1153.85,
			PricePerSqm: 8181.82,
			AreaSqm:     55,
		}
	}

	t.Run("PriceChangeRecomputesBothDerived", func(t *testing.T) {
		l := base()
		newPrice := int64(500000)
		upd := ListingUpdate{PriceAMD: &newPrice}
		upd.Apply(l)

		require.NoError(t, DerivePricesOnUpdate(l, upd, 390.0))

		assert.Equal(t, Round2(500000.0/55.0), l.PricePerSqm)
		assert.Equal(t, Round2(500000.0/390.0), l.PriceUSD)
	})

	t.Run("AreaChangeRecomputesOnlyPricePerSqm", func(t *testing.T) {
		l := base()
		newArea := 60.0
		upd := ListingUpdate{AreaSqm: &newArea}
		upd.Apply(l)

		require.NoError(t, DerivePricesOnUpdate(l, upd, 390.0))

		assert.Equal(t, Round2(450000.0/60.0), l.PricePerSqm)
		assert.Equal(t, 1153.85, l.PriceUSD, "price_usd не трогается без изменения price_amd")
	})

	t.Run("ExplicitPriceUsdSuppressesRecompute", func(t *testing.T) {
		l := base()
		newPrice := int64(500000)
		usd := 999.0
		upd := ListingUpdate{PriceAMD: &newPrice, PriceUSD: &usd}
		upd.Apply(l)

		require.NoError(t, DerivePricesOnUpdate(l, upd, 390.0))

		assert.Equal(t, 999.0, l.PriceUSD)
		assert.Equal(t, Round2(500000.0/55.0), l.PricePerSqm)
	})

	t.Run("NonPositiveAreaRejected", func(t *testing.T) {
		for _, area := range []float64{0, -5} {
			l := base()
			upd := ListingUpdate{AreaSqm: &area}
			upd.Apply(l)

			err := DerivePricesOnUpdate(l, upd, 390.0)

			assert.True(t, errors.Is(err, ErrInvalidInput), "area_sqm=%v", area)
		}
	})

	t.Run("UnrelatedUpdateKeepsDerivedValues", func(t *testing.T) {
		l := base()
		title := "Новый заголовок"
		upd := ListingUpdate{Title: &title}
		upd.Apply(l)

		require.NoError(t, DerivePricesOnUpdate(l, upd, 390.0))

		assert.Equal(t, 8181.82, l.PricePerSqm)
		assert.Equal(t, 1153.85, l.PriceUSD)
	})
}
