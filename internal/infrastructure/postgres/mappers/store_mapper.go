package mappers

import (
	"encoding/json"

	"github.com/andromedanny/storefront-service/internal/domain"
	"github.com/andromedanny/storefront-service/internal/infrastructure/postgres/models"
)

func ToDomainStore(model *models.StoreModel) *domain.Store {
	return &domain.Store{
		ID:           model.ID,
		OwnerID:      model.OwnerID,
		Name:         model.Name,
		Description:  model.Description,
		TemplateID:   model.TemplateID,
		DomainName:   model.DomainName,
		Status:       model.Status,
		Content:      domain.ParseContent([]byte(model.ContentJSON)),
		ContactEmail: model.ContactEmail,
		Phone:        model.Phone,
		Address: domain.Address{
			Barangay:     model.Barangay,
			Municipality: model.Municipality,
			Province:     model.Province,
			Region:       model.Region,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMStore(store *domain.Store) *models.StoreModel {
	contentJSON, err := json.Marshal(store.Content)
	if err != nil {
		contentJSON = []byte("{}")
	}
	return &models.StoreModel{
		ID:           store.ID,
		OwnerID:      store.OwnerID,
		Name:         store.Name,
		Description:  store.Description,
		TemplateID:   store.TemplateID,
		DomainName:   store.DomainName,
		Status:       store.Status,
		ContentJSON:  string(contentJSON),
		ContactEmail: store.ContactEmail,
		Phone:        store.Phone,
		Barangay:     store.Address.Barangay,
		Municipality: store.Address.Municipality,
		Province:     store.Address.Province,
		Region:       store.Address.Region,
		CreatedAt:    store.CreatedAt,
		UpdatedAt:    store.UpdatedAt,
	}
}
