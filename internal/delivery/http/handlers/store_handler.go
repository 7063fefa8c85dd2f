package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/andromedanny/storefront-service/internal/delivery/http/middleware"
	"github.com/andromedanny/storefront-service/internal/template"
	storedto "github.com/andromedanny/storefront-service/internal/usecase/dto/store"
	"github.com/andromedanny/storefront-service/internal/usecase/store"
	"github.com/go-chi/chi/v5"
)

type StoreHandler struct {
	storeUsecase store.Usecase
}

func NewStoreHandler(storeUsecase store.Usecase) *StoreHandler {
	return &StoreHandler{storeUsecase: storeUsecase}
}

func (h *StoreHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req createStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := h.storeUsecase.CreateStore(&storedto.CreateStoreInput{
		OwnerID:      middleware.GetUserID(r),
		Name:         req.Name,
		Description:  req.Description,
		TemplateID:   req.TemplateID,
		DomainName:   req.DomainName,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Barangay:     req.Barangay,
		Municipality: req.Municipality,
		Province:     req.Province,
		Region:       req.Region,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStoreResponse(created))
}

func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.storeUsecase.GetStoresByOwnerID(middleware.GetUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]storeResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, toStoreResponse(s))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"stores": out})
}

func (h *StoreHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	found, err := h.storeUsecase.GetStoreByID(chi.URLParam(r, "storeID"), middleware.GetUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStoreResponse(found))
}

func (h *StoreHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	var req updateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := h.storeUsecase.UpdateStore(&storedto.UpdateStoreInput{
		StoreID:      chi.URLParam(r, "storeID"),
		OwnerID:      middleware.GetUserID(r),
		Name:         req.Name,
		Description:  req.Description,
		TemplateID:   req.TemplateID,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Barangay:     req.Barangay,
		Municipality: req.Municipality,
		Province:     req.Province,
		Region:       req.Region,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStoreResponse(updated))
}

func (h *StoreHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	if err := h.storeUsecase.DeleteStore(chi.URLParam(r, "storeID"), middleware.GetUserID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// SaveContent accepts whatever object the builder sends; shape rules
// beyond "a JSON object" are render-time concerns.
func (h *StoreHandler) SaveContent(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeBadRequest(w, "failed to read request body")
		return
	}

	if err := h.storeUsecase.SaveContent(r.Context(), &storedto.SaveContentInput{
		StoreID: chi.URLParam(r, "storeID"),
		OwnerID: middleware.GetUserID(r),
		Raw:     raw,
	}); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *StoreHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := h.storeUsecase.SetStatus(r.Context(), &storedto.SetStatusInput{
		StoreID: chi.URLParam(r, "storeID"),
		OwnerID: middleware.GetUserID(r),
		Status:  req.Status,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toStoreResponse(updated))
}

// PreviewMutations feeds the builder's live preview iframe.
func (h *StoreHandler) PreviewMutations(w http.ResponseWriter, r *http.Request) {
	mutations, err := h.storeUsecase.PreviewMutations(chi.URLParam(r, "storeID"), middleware.GetUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"mutations": mutations})
}

func (h *StoreHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	type templateResponse struct {
		ID                string `json:"id"`
		Name              string `json:"name"`
		DefaultBackground string `json:"defaultBackground"`
	}

	all := template.All()
	out := make([]templateResponse, 0, len(all))
	for _, tpl := range all {
		out = append(out, templateResponse{ID: tpl.ID, Name: tpl.Name, DefaultBackground: tpl.DefaultBackground})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"templates": out})
}
