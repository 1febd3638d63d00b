package rest

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// AdminHandler обслуживает защищенную админскую часть API.
// Токен админа к этому моменту уже проверен middleware и лежит в контексте.
type AdminHandler struct {
	createUC     usecases_port.CreateListingUseCase
	updateUC     usecases_port.UpdateListingUseCase
	deleteUC     usecases_port.DeleteListingUseCase
	myListingsUC usecases_port.MyListingsUseCase
}

func NewAdminHandler(
	createUC usecases_port.CreateListingUseCase,
	updateUC usecases_port.UpdateListingUseCase,
	deleteUC usecases_port.DeleteListingUseCase,
	myListingsUC usecases_port.MyListingsUseCase,
) *AdminHandler {
	return &AdminHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		myListingsUC: myListingsUC,
	}
}

// CreateListing обрабатывает POST /api/admin/listings
func (h *AdminHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.Validate(contracts.SchemaListingCreate, body); err != nil {
		logger.Warn("Create request failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Декодируем поверх дефолтов: непереданные поля сохраняют
	// значения по умолчанию (квартира, меблирована, с душем)
	req := newCreateListingRequest()
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	adminToken := contextkeys.AdminTokenFromContext(r.Context())

	listing, err := h.createUC.Execute(r.Context(), req.toDomain(), adminToken)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, toListingResponse(*listing))
}

// UpdateListing обрабатывает PUT /api/admin/listings/{listingID}
func (h *AdminHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	id, ok := parseListingID(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.Validate(contracts.SchemaListingUpdate, body); err != nil {
		logger.Warn("Update request failed schema validation", port.Fields{"error": err.Error(), "listing_id": id})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateListingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	adminToken := contextkeys.AdminTokenFromContext(r.Context())

	listing, err := h.updateUC.Execute(r.Context(), id, req.toDomain(), adminToken)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponse(*listing))
}

// DeleteListing обрабатывает DELETE /api/admin/listings/{listingID}.
// Удаление идемпотентно: повторный запрос тоже отвечает ok.
func (h *AdminHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	id, ok := parseListingID(w, r)
	if !ok {
		return
	}

	adminToken := contextkeys.AdminTokenFromContext(r.Context())

	if err := h.deleteUC.Execute(r.Context(), id, adminToken); err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, OkResponse{Ok: true})
}

// MyListings обрабатывает GET /api/admin/my-listings
func (h *AdminHandler) MyListings(w http.ResponseWriter, r *http.Request) {
	adminToken := contextkeys.AdminTokenFromContext(r.Context())

	listings, err := h.myListingsUC.Execute(r.Context(), adminToken)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toListingResponses(listings))
}

func parseListingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "listingID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Warn("Invalid listing ID format", port.Fields{"listing_id": idStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid listing ID format")
		return 0, false
	}
	return id, true
}
