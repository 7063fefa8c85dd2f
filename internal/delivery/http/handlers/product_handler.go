package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/andromedanny/storefront-service/internal/delivery/http/middleware"
	productdto "github.com/andromedanny/storefront-service/internal/usecase/dto/product"
	"github.com/andromedanny/storefront-service/internal/usecase/product"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productUsecase product.Usecase
}

func NewProductHandler(productUsecase product.Usecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		writeBadRequest(w, "price must be a decimal string")
		return
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}

	created, err := h.productUsecase.CreateProduct(&productdto.CreateProductInput{
		StoreID:     chi.URLParam(r, "storeID"),
		OwnerID:     middleware.GetUserID(r),
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       stock,
		Image:       req.Image,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.GetStoreProducts(chi.URLParam(r, "storeID"), middleware.GetUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"products": out})
}

func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	found, err := h.productUsecase.GetProduct(chi.URLParam(r, "productID"), middleware.GetUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(found))
}

func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	price := decimal.Zero
	if req.Price != "" {
		var err error
		price, err = decimal.NewFromString(req.Price)
		if err != nil {
			writeBadRequest(w, "price must be a decimal string")
			return
		}
	}

	updated, err := h.productUsecase.UpdateProduct(&productdto.UpdateProductInput{
		ProductID:   chi.URLParam(r, "productID"),
		OwnerID:     middleware.GetUserID(r),
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		Image:       req.Image,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(updated))
}

func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.productUsecase.DeleteProduct(chi.URLParam(r, "productID"), middleware.GetUserID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
