package handlers

import (
	"encoding/json"
	"net/http"

	orderdto "github.com/andromedanny/storefront-service/internal/usecase/dto/order"
	"github.com/andromedanny/storefront-service/internal/usecase/order"
	"github.com/andromedanny/storefront-service/internal/usecase/store"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// PublicHandler serves visitors: the standalone storefront page, the
// resolve endpoints for the client bundle, and order intake.
type PublicHandler struct {
	storeUsecase store.Usecase
	orderUsecase order.Usecase
}

func NewPublicHandler(storeUsecase store.Usecase, orderUsecase order.Usecase) *PublicHandler {
	return &PublicHandler{storeUsecase: storeUsecase, orderUsecase: orderUsecase}
}

// StorePage renders the fully self-contained HTML document for a published
// store. Draft and unknown domains both 404.
func (h *PublicHandler) StorePage(w http.ResponseWriter, r *http.Request) {
	page, err := h.storeUsecase.RenderPage(r.Context(), chi.URLParam(r, "domain"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// ResolveStore hands the client bundle everything it needs to drive the
// published-store view: store profile, content, and active products.
func (h *PublicHandler) ResolveStore(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.storeUsecase.ResolvePublished(chi.URLParam(r, "domain"))
	if err != nil {
		writeError(w, err)
		return
	}

	products := make([]productResponse, 0, len(resolved.Products))
	for _, p := range resolved.Products {
		products = append(products, toProductResponse(p))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"store":    toStoreResponse(resolved.Store),
		"products": products,
	})
}

// StoreMutations returns the DOM operation list the published-store view
// replays against its template iframe.
func (h *PublicHandler) StoreMutations(w http.ResponseWriter, r *http.Request) {
	mutations, err := h.storeUsecase.RenderMutations(chi.URLParam(r, "domain"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"mutations": mutations})
}

func (h *PublicHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	shippingFee := decimal.Zero
	if req.ShippingFee != "" {
		var err error
		shippingFee, err = decimal.NewFromString(req.ShippingFee)
		if err != nil {
			writeBadRequest(w, "shippingFee must be a decimal string")
			return
		}
	}

	items := make([]orderdto.OrderLineInput, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, orderdto.OrderLineInput{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	created, err := h.orderUsecase.CreateOrder(&orderdto.CreateOrderInput{
		StoreID:       req.StoreID,
		Items:         items,
		Shipping:      req.Shipping,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PaymentMethod: req.PaymentMethod,
		ShippingFee:   shippingFee,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(created))
}
