package rest

import (
	"io"
	"net/http"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"
)

// Лимит на размер загружаемого фото
const maxUploadSize = 10 << 20 // 10 MiB

// UploadHandler принимает фотографии от админки.
type UploadHandler struct {
	uploadUC usecases_port.UploadPhotoUseCase
}

func NewUploadHandler(uploadUC usecases_port.UploadPhotoUseCase) *UploadHandler {
	return &UploadHandler{uploadUC: uploadUC}
}

// UploadPhoto обрабатывает POST /api/upload (multipart, поле "file").
// Возвращает публичный URL сохраненного файла.
func (h *UploadHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		logger.Warn("Failed to parse multipart form", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Missing form field 'file'")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded file", err, port.Fields{"filename": header.Filename})
		WriteJSONError(w, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	url, err := h.uploadUC.Execute(r.Context(), header.Filename, content)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, UploadResponse{URL: url})
}
