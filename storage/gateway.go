package storage

import (
	"github.com/sirdab/marketplace-v03-sub000/models"
)

// DashboardStats is the count bundle behind the admin dashboard.
type DashboardStats struct {
	TotalAds      int64 `json:"total_ads"`
	PublishedAds  int64 `json:"published_ads"`
	VerifiedAds   int64 `json:"verified_ads"`
	PendingVisits int64 `json:"pending_visits"`
	NewBookings7d int64 `json:"new_bookings_7d"`
	NewBookings30 int64 `json:"new_bookings_30d"`
}

// Gateway is the storage façade for the marketplace. Single-record lookups
// signal "not found" by returning nil, never an error; errors are reserved for
// backend failures. The gateway performs no ownership checks; authorization
// lives in the route layer.
//
// Two implementations share this contract: MemoryGateway (fixture-seeded, for
// development and tests) and DatabaseGateway (Postgres via GORM).
type Gateway interface {
	// Ads
	CreateAd(ad *models.Ad) error
	UpdateAd(ad *models.Ad) error
	AdByID(id uint) (*models.Ad, error)
	AdBySlug(slug string) (*models.Ad, error)
	AdsByUser(userID uint) ([]models.Ad, error)
	PublishedAds() ([]models.Ad, error)
	PublishedAdsByRegion(country, citySlug string) ([]models.Ad, error)
	AllAds() ([]models.Ad, error)

	// Properties (derived; never written)
	QueryProperties(filters models.PropertyFilters, sortKey string) ([]models.Property, error)
	PropertyByID(id string) (*models.Property, error)

	// Visits
	CreateVisit(v *models.Visit) error
	UpdateVisit(v *models.Visit) error
	VisitByID(id uint) (*models.Visit, error)
	VisitsByProperty(propertyID string) ([]models.Visit, error)
	AllVisits() ([]models.Visit, error)

	// Bookings
	CreateBooking(b *models.Booking) error
	UpdateBooking(b *models.Booking) error
	BookingByID(id uint) (*models.Booking, error)
	BookingsByUser(userID uint) ([]models.Booking, error)
	AllBookings() ([]models.Booking, error)

	// Saved properties. SaveProperty is idempotent per (user, property).
	SaveProperty(userID uint, propertyID string) (*models.SavedProperty, error)
	UnsaveProperty(userID uint, propertyID string) (bool, error)
	SavedProperties(userID uint) ([]models.SavedProperty, error)

	// Cities (read-only)
	Cities() ([]models.City, error)

	// Users
	CreateUser(u *models.User) error
	UserByID(id uint) (*models.User, error)
	UserByEmail(email string) (*models.User, error)

	// Admin
	Stats() (DashboardStats, error)
}
