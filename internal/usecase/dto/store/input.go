package storedto

import "encoding/json"

type CreateStoreInput struct {
	OwnerID      string
	Name         string
	Description  string
	TemplateID   string
	DomainName   string
	ContactEmail string
	Phone        string
	Barangay     string
	Municipality string
	Province     string
	Region       string
}

type UpdateStoreInput struct {
	StoreID      string
	OwnerID      string
	Name         string
	Description  string
	TemplateID   string
	ContactEmail string
	Phone        string
	Barangay     string
	Municipality string
	Province     string
	Region       string
}

type SaveContentInput struct {
	StoreID string
	OwnerID string
	// Raw is the builder's content blob as received. Anything that is a
	// JSON object is accepted; field-level validation happens at render
	// time with defaults.
	Raw json.RawMessage
}

type SetStatusInput struct {
	StoreID string
	OwnerID string
	Status  string
}
