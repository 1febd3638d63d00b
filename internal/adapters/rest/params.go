package rest

import (
	"fmt"
	"net/url"
	"strconv"
)

// Хелперы разбора query-параметров. Отсутствующий параметр — nil
// (нет ограничения), некорректное значение — ошибка, которую обработчик
// превращает в 400.

func parseFloatParam(query url.Values, key string) (*float64, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid value for %q: %q", key, raw)
	}
	return &v, nil
}

func parseIntParam(query url.Values, key string) (*int, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid value for %q: %q", key, raw)
	}
	return &v, nil
}

func parseBoolParam(query url.Values, key string) (*bool, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid value for %q: %q", key, raw)
	}
	return &v, nil
}

// parseEnumParam принимает только перечисленные значения
func parseEnumParam(query url.Values, key string, allowed ...string) (*string, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	for _, a := range allowed {
		if raw == a {
			return &raw, nil
		}
	}
	return nil, fmt.Errorf("invalid value for %q: %q", key, raw)
}

func parseStringSliceParam(query url.Values, key string) []string {
	values := query[key]
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
