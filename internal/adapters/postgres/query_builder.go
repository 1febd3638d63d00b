package postgres

import (
	"fmt"
	"strings"

	"catalog-service/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddFloatFilter добавляет включающие границы диапазона для числового поля
func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntFilter(fieldName string, min *int, max *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddBoolFilter(fieldName string, value *bool) {
	if value != nil {
		qb.addCondition("%s = $%d", fieldName, *value)
	}
}

func (qb *queryBuilder) AddStringFilter(fieldName string, value *string) {
	if value != nil {
		qb.addCondition("%s = $%d", fieldName, *value)
	}
}

// build создает финальный WHERE и аргументы
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyFilters - главный метод, который разбирает критерии поиска и строит запрос.
// Критерии независимы и соединяются по AND; пустой набор дает пустой WHERE.
func applyFilters(filters domain.SearchFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	// Принадлежность к районам (множественный выбор)
	if len(filters.Districts) > 0 {
		qb.addCondition("%s = ANY($%d)", "district", filters.Districts)
	}

	// Диапазон цены в валюте, выбранной клиентом
	switch filters.PriceCurrency {
	case domain.CurrencyUSD:
		qb.AddFloatFilter("price_usd", filters.PriceFrom, filters.PriceTo)
	default:
		qb.AddFloatFilter("price_amd", filters.PriceFrom, filters.PriceTo)
	}

	if filters.Bedrooms != nil {
		qb.addCondition("%s = $%d", "bedrooms", *filters.Bedrooms)
	}

	qb.AddFloatFilter("area_sqm", filters.AreaFrom, filters.AreaTo)
	qb.AddIntFilter("floor", filters.FloorFrom, filters.FloorTo)
	qb.AddFloatFilter("price_per_sqm", filters.PricePerSqmFrom, filters.PricePerSqmTo)

	qb.AddStringFilter("type", filters.Type)
	qb.AddBoolFilter("is_house_yard", filters.IsHouseYard)
	qb.AddStringFilter("house_part", filters.HousePart)

	qb.AddBoolFilter("is_new_building", filters.IsNewBuilding)
	qb.AddBoolFilter("has_ac", filters.HasAC)
	qb.AddBoolFilter("has_oven", filters.HasOven)
	qb.AddBoolFilter("has_dishwasher", filters.HasDishwasher)
	qb.AddBoolFilter("has_tv", filters.HasTV)
	qb.AddBoolFilter("has_wifi", filters.HasWifi)
	qb.AddBoolFilter("has_microwave", filters.HasMicrowave)
	qb.AddBoolFilter("has_fridge", filters.HasFridge)
	qb.AddBoolFilter("is_furnished", filters.IsFurnished)
	qb.AddBoolFilter("bath_shower", filters.BathShower)
	qb.AddBoolFilter("bath_tub", filters.BathTub)

	return qb.build()
}
