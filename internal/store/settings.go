package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type SiteSettings struct {
	ID              int64     `db:"id"`
	SiteName        string    `db:"site_name"`
	ContactEmail    string    `db:"contact_email"`
	ContactPhone    string    `db:"contact_phone"`
	Address         string    `db:"address"`
	BusinessHours   string    `db:"business_hours"`
	MaintenanceMode bool      `db:"maintenance_mode"`
	PrimaryColor    string    `db:"primary_color"`
	SecondaryColor  string    `db:"secondary_color"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// DefaultSettings returns the documented default record served when the
// site_settings table is empty.
func DefaultSettings() *SiteSettings {
	return &SiteSettings{
		SiteName:        "Lawn Care Pro",
		ContactEmail:    "info@lawncareproexample.com",
		ContactPhone:    "(555) 123-4567",
		Address:         "123 Green Street, Anytown, USA 12345",
		BusinessHours:   "Monday - Friday: 8:00 AM - 6:00 PM, Saturday: 9:00 AM - 4:00 PM, Sunday: Closed",
		MaintenanceMode: false,
		PrimaryColor:    "#16a34a",
		SecondaryColor:  "#166534",
	}
}

type SettingsStore struct {
	db *sqlx.DB
}

func NewSettingsStore(db *sqlx.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) q(query string) string { return s.db.Rebind(query) }

// Get returns the singleton settings row, or the default record when no row
// exists yet. Never returns ErrNotFound.
func (s *SettingsStore) Get(ctx context.Context) (*SiteSettings, error) {
	var row SiteSettings
	err := s.db.GetContext(ctx, &row, `SELECT * FROM site_settings ORDER BY id ASC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Upsert creates the singleton row if absent, otherwise updates it in place.
// The invariant that at most one row exists is enforced here: the update
// always targets the existing row's id.
func (s *SettingsStore) Upsert(ctx context.Context, in *SiteSettings) (*SiteSettings, error) {
	now := time.Now().UTC()

	var existingID int64
	err := s.db.GetContext(ctx, &existingID, `SELECT id FROM site_settings ORDER BY id ASC LIMIT 1`)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if errors.Is(err, sql.ErrNoRows) {
		_, err = s.db.ExecContext(ctx, s.q(`
			INSERT INTO site_settings
				(site_name, contact_email, contact_phone, address, business_hours,
				 maintenance_mode, primary_color, secondary_color, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`), in.SiteName, in.ContactEmail, in.ContactPhone, in.Address, in.BusinessHours,
			in.MaintenanceMode, in.PrimaryColor, in.SecondaryColor, now)
		if err != nil {
			return nil, err
		}
		return s.Get(ctx)
	}

	_, err = s.db.ExecContext(ctx, s.q(`
		UPDATE site_settings SET
			site_name = ?, contact_email = ?, contact_phone = ?, address = ?,
			business_hours = ?, maintenance_mode = ?, primary_color = ?,
			secondary_color = ?, updated_at = ?
		WHERE id = ?
	`), in.SiteName, in.ContactEmail, in.ContactPhone, in.Address, in.BusinessHours,
		in.MaintenanceMode, in.PrimaryColor, in.SecondaryColor, now, existingID)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx)
}
