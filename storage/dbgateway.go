package storage

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sirdab/marketplace-v03-sub000/models"
)

// DatabaseGateway is the Postgres-backed Gateway. Uniqueness, foreign-key and
// not-null constraints are enforced by the database, not here.
type DatabaseGateway struct {
	db *gorm.DB
}

func NewDatabaseGateway(db *gorm.DB) *DatabaseGateway {
	return &DatabaseGateway{db: db}
}

func (g *DatabaseGateway) CreateAd(ad *models.Ad) error {
	return g.db.Create(ad).Error
}

func (g *DatabaseGateway) UpdateAd(ad *models.Ad) error {
	return g.db.Save(ad).Error
}

func (g *DatabaseGateway) AdByID(id uint) (*models.Ad, error) {
	var ad models.Ad
	result := g.db.First(&ad, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &ad, nil
}

func (g *DatabaseGateway) AdBySlug(slug string) (*models.Ad, error) {
	var ad models.Ad
	result := g.db.Where("slug = ?", slug).First(&ad)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &ad, nil
}

func (g *DatabaseGateway) AdsByUser(userID uint) ([]models.Ad, error) {
	var ads []models.Ad
	err := g.db.Where("user_id = ? AND deleted = false", userID).
		Order("created_at DESC").Find(&ads).Error
	return ads, err
}

func (g *DatabaseGateway) PublishedAds() ([]models.Ad, error) {
	var ads []models.Ad
	err := g.db.Where("published = true AND deleted = false").
		Order("created_at DESC").Find(&ads).Error
	return ads, err
}

func (g *DatabaseGateway) PublishedAdsByRegion(country, citySlug string) ([]models.Ad, error) {
	// City names are stored free-form; match the slug against the
	// space-to-hyphen normalization of the stored name.
	var ads []models.Ad
	err := g.db.Where(
		"published = true AND deleted = false AND LOWER(country) = LOWER(?) AND REPLACE(LOWER(TRIM(city)), ' ', '-') = LOWER(?)",
		country, citySlug).
		Order("created_at DESC").Find(&ads).Error
	return ads, err
}

func (g *DatabaseGateway) AllAds() ([]models.Ad, error) {
	var ads []models.Ad
	err := g.db.Order("created_at DESC").Find(&ads).Error
	return ads, err
}

// QueryProperties loads the publicly visible ads and runs the in-process
// filter pipeline over their derived views. Filters apply to derived values
// (category, annualPrice), so they cannot be pushed down to SQL columns.
func (g *DatabaseGateway) QueryProperties(filters models.PropertyFilters, sortKey string) ([]models.Property, error) {
	ads, err := g.PublishedAds()
	if err != nil {
		return nil, err
	}
	properties := make([]models.Property, 0, len(ads))
	for i := range ads {
		properties = append(properties, models.AdToProperty(&ads[i]))
	}
	filtered := models.FilterProperties(properties, filters)
	models.SortProperties(filtered, sortKey)
	return filtered, nil
}

func (g *DatabaseGateway) PropertyByID(id string) (*models.Property, error) {
	ad, err := g.AdBySlug(id)
	if err != nil || ad == nil {
		return nil, err
	}
	if !ad.Published || ad.Deleted {
		return nil, nil
	}
	p := models.AdToProperty(ad)
	return &p, nil
}

func (g *DatabaseGateway) CreateVisit(v *models.Visit) error {
	return g.db.Create(v).Error
}

func (g *DatabaseGateway) UpdateVisit(v *models.Visit) error {
	return g.db.Save(v).Error
}

func (g *DatabaseGateway) VisitByID(id uint) (*models.Visit, error) {
	var visit models.Visit
	result := g.db.First(&visit, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &visit, nil
}

func (g *DatabaseGateway) VisitsByProperty(propertyID string) ([]models.Visit, error) {
	var visits []models.Visit
	err := g.db.Where("property_id = ?", propertyID).
		Order("created_at ASC").Find(&visits).Error
	return visits, err
}

func (g *DatabaseGateway) AllVisits() ([]models.Visit, error) {
	var visits []models.Visit
	err := g.db.Order("created_at DESC").Find(&visits).Error
	return visits, err
}

func (g *DatabaseGateway) CreateBooking(b *models.Booking) error {
	return g.db.Create(b).Error
}

func (g *DatabaseGateway) UpdateBooking(b *models.Booking) error {
	return g.db.Save(b).Error
}

func (g *DatabaseGateway) BookingByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	result := g.db.First(&booking, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &booking, nil
}

func (g *DatabaseGateway) BookingsByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := g.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (g *DatabaseGateway) AllBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := g.db.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (g *DatabaseGateway) SaveProperty(userID uint, propertyID string) (*models.SavedProperty, error) {
	var existing models.SavedProperty
	result := g.db.Where("user_id = ? AND property_id = ?", userID, propertyID).First(&existing)
	if result.Error == nil {
		return &existing, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}
	saved := models.SavedProperty{UserID: userID, PropertyID: propertyID}
	if err := g.db.Create(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (g *DatabaseGateway) UnsaveProperty(userID uint, propertyID string) (bool, error) {
	result := g.db.Unscoped().
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&models.SavedProperty{})
	return result.RowsAffected > 0, result.Error
}

func (g *DatabaseGateway) SavedProperties(userID uint) ([]models.SavedProperty, error) {
	var saved []models.SavedProperty
	err := g.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&saved).Error
	return saved, err
}

func (g *DatabaseGateway) Cities() ([]models.City, error) {
	var cities []models.City
	err := g.db.Order("name ASC").Find(&cities).Error
	return cities, err
}

func (g *DatabaseGateway) CreateUser(u *models.User) error {
	u.Email = strings.ToLower(u.Email)
	return g.db.Create(u).Error
}

func (g *DatabaseGateway) UserByID(id uint) (*models.User, error) {
	var user models.User
	result := g.db.First(&user, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (g *DatabaseGateway) UserByEmail(email string) (*models.User, error) {
	var user models.User
	result := g.db.Where("email = ?", strings.ToLower(email)).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (g *DatabaseGateway) Stats() (DashboardStats, error) {
	var stats DashboardStats

	since7 := time.Now().AddDate(0, 0, -7)
	since30 := time.Now().AddDate(0, 0, -30)

	counts := []*gorm.DB{
		g.db.Model(&models.Ad{}).Count(&stats.TotalAds),
		g.db.Model(&models.Ad{}).Where("published = true AND deleted = false").Count(&stats.PublishedAds),
		g.db.Model(&models.Ad{}).Where("verified = true").Count(&stats.VerifiedAds),
		g.db.Model(&models.Visit{}).Where("status = ?", models.VisitStatusPending).Count(&stats.PendingVisits),
		g.db.Model(&models.Booking{}).Where("created_at >= ?", since7).Count(&stats.NewBookings7d),
		g.db.Model(&models.Booking{}).Where("created_at >= ?", since30).Count(&stats.NewBookings30),
	}
	for _, result := range counts {
		if result.Error != nil {
			return DashboardStats{}, result.Error
		}
	}
	return stats, nil
}
