package handlers

import (
	"github.com/andromedanny/storefront-service/internal/domain"
)

type createStoreRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	TemplateID   string `json:"templateId"`
	DomainName   string `json:"domainName"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
	Barangay     string `json:"barangay"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
	Region       string `json:"region"`
}

type updateStoreRequest = createStoreRequest

type setStatusRequest struct {
	Status string `json:"status"`
}

type storeResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	TemplateID   string          `json:"templateId"`
	DomainName   string          `json:"domainName"`
	Status       string          `json:"status"`
	Content      domain.Content  `json:"content"`
	ContactEmail string          `json:"contactEmail,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Barangay     string          `json:"barangay,omitempty"`
	Municipality string          `json:"municipality,omitempty"`
	Province     string          `json:"province,omitempty"`
	Region       string          `json:"region,omitempty"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
}

func toStoreResponse(store *domain.Store) storeResponse {
	return storeResponse{
		ID:           store.ID,
		Name:         store.Name,
		Description:  store.Description,
		TemplateID:   store.TemplateID,
		DomainName:   store.DomainName,
		Status:       string(store.Status),
		Content:      store.Content,
		ContactEmail: store.ContactEmail,
		Phone:        store.Phone,
		Barangay:     store.Address.Barangay,
		Municipality: store.Address.Municipality,
		Province:     store.Address.Province,
		Region:       store.Address.Region,
		CreatedAt:    store.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:    store.UpdatedAt.UTC().Format(timeLayout),
	}
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       *int   `json:"stock"`
	Image       string `json:"image"`
	IsActive    *bool  `json:"isActive"`
}

type productResponse struct {
	ID          string `json:"id"`
	StoreID     string `json:"storeId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Image       string `json:"image,omitempty"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
}

func toProductResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		StoreID:     product.StoreID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.StringFixed(2),
		Stock:       product.Stock,
		Image:       product.Image,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt.UTC().Format(timeLayout),
	}
}

type createOrderRequest struct {
	StoreID       string                 `json:"storeId"`
	Items         []orderLineRequest     `json:"items"`
	Shipping      domain.ShippingAddress `json:"shipping"`
	CustomerName  string                 `json:"customerName"`
	CustomerEmail string                 `json:"customerEmail"`
	CustomerPhone string                 `json:"customerPhone"`
	PaymentMethod string                 `json:"paymentMethod"`
	ShippingFee   string                 `json:"shippingFee"`
}

type orderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
}

type orderResponse struct {
	ID            string                 `json:"id"`
	StoreID       string                 `json:"storeId"`
	OrderNumber   string                 `json:"orderNumber"`
	Status        string                 `json:"status"`
	PaymentMethod string                 `json:"paymentMethod"`
	PaymentStatus string                 `json:"paymentStatus"`
	Subtotal      string                 `json:"subtotal"`
	ShippingFee   string                 `json:"shippingFee"`
	Total         string                 `json:"total"`
	Shipping      domain.ShippingAddress `json:"shipping"`
	CustomerName  string                 `json:"customerName"`
	CustomerEmail string                 `json:"customerEmail,omitempty"`
	CustomerPhone string                 `json:"customerPhone,omitempty"`
	Items         []orderItemResponse    `json:"items"`
	CreatedAt     string                 `json:"createdAt"`
}

type orderItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

func toOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Subtotal:  item.Subtotal.StringFixed(2),
		})
	}
	return orderResponse{
		ID:            order.ID,
		StoreID:       order.StoreID,
		OrderNumber:   order.OrderNumber,
		Status:        string(order.Status),
		PaymentMethod: string(order.PaymentMethod),
		PaymentStatus: string(order.PaymentStatus),
		Subtotal:      order.Subtotal.StringFixed(2),
		ShippingFee:   order.ShippingFee.StringFixed(2),
		Total:         order.Total.StringFixed(2),
		Shipping:      order.Shipping,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Items:         items,
		CreatedAt:     order.CreatedAt.UTC().Format(timeLayout),
	}
}

const timeLayout = "2006-01-02T15:04:05Z07:00"
