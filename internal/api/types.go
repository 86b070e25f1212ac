package api

import "time"

// --- Service types ---

// ServiceRequest is the request body for POST /api/services and
// PUT /api/services/{id}.
type ServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceRange  string   `json:"price_range,omitempty"`
	Features    []string `json:"features,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Category    string   `json:"category"`
}

// ServiceResponse is the JSON representation of a single service.
type ServiceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceRange  string    `json:"price_range"`
	Features    []string  `json:"features"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// --- Gallery types ---

// GalleryImageRequest is the request body for POST /api/gallery and
// PUT /api/gallery/{id}.
type GalleryImageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

// GalleryImageResponse is the JSON representation of a gallery image.
type GalleryImageResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// --- Settings types ---

// SettingsRequest is the request body for PUT /api/settings.
type SettingsRequest struct {
	SiteName        string `json:"site_name"`
	ContactEmail    string `json:"contact_email,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	Address         string `json:"address,omitempty"`
	BusinessHours   string `json:"business_hours,omitempty"`
	MaintenanceMode bool   `json:"maintenance_mode,omitempty"`
	PrimaryColor    string `json:"primary_color,omitempty"`
	SecondaryColor  string `json:"secondary_color,omitempty"`
}

// SettingsResponse is the JSON representation of the site settings record.
// ID is zero when the defaults are served and no row exists yet.
type SettingsResponse struct {
	ID              int64     `json:"id,omitempty"`
	SiteName        string    `json:"site_name"`
	ContactEmail    string    `json:"contact_email"`
	ContactPhone    string    `json:"contact_phone"`
	Address         string    `json:"address"`
	BusinessHours   string    `json:"business_hours"`
	MaintenanceMode bool      `json:"maintenance_mode"`
	PrimaryColor    string    `json:"primary_color"`
	SecondaryColor  string    `json:"secondary_color"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}

// --- Contact types ---

// ContactRequest is the request body for the public POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Service string `json:"service,omitempty"`
	Message string `json:"message"`
}

// ContactResponse is the JSON representation of a contact submission.
type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Upload types ---

// UploadResponse is returned by POST /api/uploads.
type UploadResponse struct {
	ImageURL string `json:"image_url"`
}
