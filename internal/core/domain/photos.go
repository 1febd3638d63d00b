package domain

import (
	"encoding/json"
	"fmt"
)

// Кодек списка фотографий. В таблице список хранится одной JSON-строкой
// (колонка photos_json) — маленький, упорядоченный, редко фильтруемый
// атрибут, отдельная таблица тут не нужна.

// EncodePhotos сериализует список URL в хранимую форму.
// nil кодируется как пустой список.
func EncodePhotos(photos []string) string {
	if photos == nil {
		photos = []string{}
	}
	b, _ := json.Marshal(photos)
	return string(b)
}

// DecodePhotos разбирает хранимую форму обратно в список.
// Пустая строка означает отсутствие фотографий и не является ошибкой.
func DecodePhotos(stored string) ([]string, error) {
	if stored == "" {
		return []string{}, nil
	}
	var photos []string
	if err := json.Unmarshal([]byte(stored), &photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos list: %w", err)
	}
	if photos == nil {
		photos = []string{}
	}
	return photos, nil
}
