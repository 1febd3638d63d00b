package uploads

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// LocalPhotoStorage сохраняет загруженные файлы на локальный диск.
// Файлы пишутся как есть, без обработки, и раздаются REST-сервером
// как статика.
type LocalPhotoStorage struct {
	dir string
}

func NewLocalPhotoStorage(dir string) (*LocalPhotoStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %q: %w", dir, err)
	}
	return &LocalPhotoStorage{dir: dir}, nil
}

// Save кладет содержимое под желаемым именем; занятые имена обходятся
// числовым суффиксом: photo.jpg -> photo_1.jpg -> photo_2.jpg -> ...
//
// Проверка и запись не атомарны: два одновременных аплоада одного имени
// могут столкнуться. Окно узкое, это известное и принятое ограничение.
func (s *LocalPhotoStorage) Save(ctx context.Context, desiredName string, content []byte) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	// Отрезаем путь: клиентское имя файла — не место для каталогов
	name := filepath.Base(desiredName)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("%w: unusable filename %q", domain.ErrInvalidInput, desiredName)
	}

	finalName := s.allocateName(name)

	savePath := filepath.Join(s.dir, finalName)
	if err := os.WriteFile(savePath, content, 0o644); err != nil {
		logger.Error("Failed to write uploaded file", err, port.Fields{"path": savePath})
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	logger.Info("Uploaded file stored", port.Fields{
		"desired_name": desiredName,
		"final_name":   finalName,
		"size_bytes":   len(content),
	})
	return finalName, nil
}

// allocateName подбирает свободное имя для файла.
func (s *LocalPhotoStorage) allocateName(name string) string {
	if !s.exists(name) {
		return name
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		if !s.exists(candidate) {
			return candidate
		}
	}
}

func (s *LocalPhotoStorage) exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

// Dir возвращает каталог загрузок (нужен REST-серверу для раздачи статики).
func (s *LocalPhotoStorage) Dir() string {
	return s.dir
}
