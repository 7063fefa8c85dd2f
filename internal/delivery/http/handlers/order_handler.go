package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/andromedanny/storefront-service/internal/delivery/http/middleware"
	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/andromedanny/storefront-service/internal/usecase/order"
	"github.com/go-chi/chi/v5"
)

// OrderHandler covers the store owner's side of order management. Order
// intake from visitors lives on the public handler.
type OrderHandler struct {
	orderUsecase order.Usecase
}

func NewOrderHandler(orderUsecase order.Usecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	orders, total, err := h.orderUsecase.GetStoreOrders(
		chi.URLParam(r, "storeID"), middleware.GetUserID(r), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders": out,
		"total":  total,
	})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	found, err := h.orderUsecase.GetOrder(chi.URLParam(r, "orderID"), middleware.GetUserID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(found))
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	updated, err := h.orderUsecase.UpdateStatus(
		chi.URLParam(r, "orderID"), middleware.GetUserID(r), domain.OrderStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(updated))
}
