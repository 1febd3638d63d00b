package domain

import (
	"fmt"
	"math"
)

// Round2 округляет до двух знаков после запятой — так хранятся
// все производные цены.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DerivePricesOnCreate вычисляет производные цены при создании записи.
// PriceUSD: явно заданное значение имеет приоритет, иначе пересчет
// по фиксированному курсу. PricePerSqm всегда считается из PriceAMD и площади.
func DerivePricesOnCreate(in NewListing, usdRate float64) (priceUSD, pricePerSqm float64, err error) {
	if in.AreaSqm <= 0 {
		return 0, 0, fmt.Errorf("%w: area_sqm must be positive, got %v", ErrInvalidInput, in.AreaSqm)
	}

	pricePerSqm = Round2(float64(in.PriceAMD) / in.AreaSqm)

	if in.PriceUSD != nil {
		priceUSD = *in.PriceUSD
	} else {
		priceUSD = Round2(float64(in.PriceAMD) / usdRate)
	}
	return priceUSD, pricePerSqm, nil
}

// DerivePricesOnUpdate пересчитывает производные цены после применения
// частичного обновления. Вызывается, когда поля обновления уже перенесены
// на запись (ListingUpdate.Apply).
//
// Правила:
//   - площадь в обновлении обязана быть положительной, как и при создании:
//     иначе price_per_sqm нечем пересчитать и он протухает;
//   - цена за метр пересчитывается, если обновление меняет price_amd или
//     area_sqm и итоговая площадь положительна;
//   - price_usd пересчитывается по курсу только когда обновление меняет
//     price_amd и при этом не задает price_usd явно. Поведение исходной
//     системы сохранено намеренно.
func DerivePricesOnUpdate(l *Listing, u ListingUpdate, usdRate float64) error {
	if u.AreaSqm != nil && l.AreaSqm <= 0 {
		return fmt.Errorf("%w: area_sqm must be positive, got %v", ErrInvalidInput, l.AreaSqm)
	}
	if (u.PriceAMD != nil || u.AreaSqm != nil) && l.AreaSqm > 0 {
		l.PricePerSqm = Round2(float64(l.PriceAMD) / l.AreaSqm)
	}
	if u.PriceAMD != nil && u.PriceUSD == nil {
		l.PriceUSD = Round2(float64(l.PriceAMD) / usdRate)
	}
	return nil
}
