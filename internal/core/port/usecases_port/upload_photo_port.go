package usecases_port

import "context"

type UploadPhotoUseCase interface {
	// Execute сохраняет файл и возвращает публичный URL вида /uploads/<name>.
	Execute(ctx context.Context, desiredName string, content []byte) (string, error)
}
