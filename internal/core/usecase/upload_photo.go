package usecase

import (
	"context"
	"fmt"
	"path"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type UploadPhotoUseCase struct {
	photos     port.PhotoStoragePort
	publicPath string // префикс URL, под которым раздается каталог загрузок
}

func NewUploadPhotoUseCase(photos port.PhotoStoragePort, publicPath string) *UploadPhotoUseCase {
	return &UploadPhotoUseCase{
		photos:     photos,
		publicPath: publicPath,
	}
}

func (uc *UploadPhotoUseCase) Execute(ctx context.Context, desiredName string, content []byte) (string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":     "UploadPhoto",
		"desired_name": desiredName,
		"size_bytes":   len(content),
	})

	if desiredName == "" {
		return "", fmt.Errorf("%w: filename is required", domain.ErrInvalidInput)
	}

	finalName, err := uc.photos.Save(ctx, desiredName, content)
	if err != nil {
		ucLogger.Error("Photo storage returned an error", err, nil)
		return "", err
	}

	url := path.Join(uc.publicPath, finalName)
	ucLogger.Info("Use case finished successfully", port.Fields{"url": url})
	return url, nil
}
