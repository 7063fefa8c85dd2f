package domain

import "time"

type StoreStatus string

const (
	StoreStatusDraft     StoreStatus = "draft"
	StoreStatusPublished StoreStatus = "published"
)

type Store struct {
	ID           string
	OwnerID      string
	Name         string
	Description  string
	TemplateID   string
	DomainName   string
	Status       StoreStatus
	Content      Content
	ContactEmail string
	Phone        string
	Address      Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Address holds the store location parts used by the rendered contact
// section. Parts are joined barangay -> municipality -> province -> region,
// skipping empty ones.
type Address struct {
	Barangay     string
	Municipality string
	Province     string
	Region       string
}

func (s *Store) IsPublished() bool {
	return s.Status == StoreStatusPublished
}

type StoreRepository interface {
	CreateStore(store *Store) error
	UpdateStore(store *Store) error
	DeleteStore(storeID string) error
	GetStoreByID(storeID string) (*Store, error)
	GetStoresByOwnerID(ownerID string) ([]*Store, error)
	GetPublishedStoreByDomain(domainName string) (*Store, error)
	DomainExists(domainName string) (bool, error)
	SaveContent(storeID string, content Content) error
	UpdateStatus(storeID string, status StoreStatus) error
}
