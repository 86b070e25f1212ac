package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned when sign-in email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ServiceStoreIface exposes all service data operations.
// Handlers never query the DB directly; all access goes through this interface.
type ServiceStoreIface interface {
	ListAll(ctx context.Context) ([]*Service, error)
	GetByID(ctx context.Context, id int64) (*Service, error)
	Create(ctx context.Context, name, description, priceRange, imageURL, category string, features []string) (*Service, error)
	Update(ctx context.Context, id int64, name, description, priceRange, imageURL, category string, features []string) (*Service, error)
	Delete(ctx context.Context, id int64) error
}

// GalleryStoreIface exposes gallery image operations.
type GalleryStoreIface interface {
	List(ctx context.Context, category string) ([]*GalleryImage, error)
	GetByID(ctx context.Context, id int64) (*GalleryImage, error)
	Create(ctx context.Context, title, description, imageURL, category string) (*GalleryImage, error)
	Update(ctx context.Context, id int64, title, description, imageURL, category string) (*GalleryImage, error)
	Delete(ctx context.Context, id int64) error
}

// SettingsStoreIface exposes the singleton site settings record.
type SettingsStoreIface interface {
	Get(ctx context.Context) (*SiteSettings, error)
	Upsert(ctx context.Context, s *SiteSettings) (*SiteSettings, error)
}

// ContactStoreIface exposes contact submission operations.
type ContactStoreIface interface {
	ListAll(ctx context.Context) ([]*ContactSubmission, error)
	GetByID(ctx context.Context, id int64) (*ContactSubmission, error)
	Create(ctx context.Context, name, email, phone, service, message string) (*ContactSubmission, error)
	MarkRead(ctx context.Context, id int64) (*ContactSubmission, error)
	Delete(ctx context.Context, id int64) error
}
