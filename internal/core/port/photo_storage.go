package port

import "context"

// PhotoStoragePort — контракт файлового хранилища загруженных фотографий.
type PhotoStoragePort interface {
	// Save кладет содержимое файла под желаемым именем. При коллизии имя
	// дополняется числовым суффиксом (photo.jpg -> photo_1.jpg -> ...).
	// Возвращает фактически занятое имя.
	Save(ctx context.Context, desiredName string, content []byte) (string, error)
}
