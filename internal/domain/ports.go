package domain

import "context"

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

// UploadedObject is what the object-storage collaborator returns for a
// stored file.
type UploadedObject struct {
	URL  string
	Path string
}

// StoragePort is the object-storage contract. Delete is fail-soft: callers
// log and move on when it errors.
type StoragePort interface {
	Upload(ctx context.Context, data []byte, bucket, filename, contentType string) (*UploadedObject, error)
	Delete(ctx context.Context, bucket, path string) error
}

// PageCachePort caches rendered storefront pages keyed by domain name.
type PageCachePort interface {
	GetPage(ctx context.Context, domainName string) (string, bool)
	SetPage(ctx context.Context, domainName, html string) error
	InvalidatePage(ctx context.Context, domainName string) error
}
