package storage

import (
	"strings"
	"sync"
	"time"

	"github.com/sirdab/marketplace-v03-sub000/models"
)

// MemoryGateway is the fixture-backed Gateway used in development and tests.
// It keeps everything in process-local maps guarded by a mutex; it is a demo
// stand-in, not production storage.
type MemoryGateway struct {
	mu sync.Mutex

	ads      map[uint]*models.Ad
	visits   map[uint]*models.Visit
	bookings map[uint]*models.Booking
	saved    map[uint]*models.SavedProperty
	users    map[uint]*models.User
	cities   []models.City
	fixtures []models.Property

	nextAdID      uint
	nextVisitID   uint
	nextBookingID uint
	nextSavedID   uint
	nextUserID    uint
}

func NewMemoryGateway() *MemoryGateway {
	g := &MemoryGateway{
		ads:      map[uint]*models.Ad{},
		visits:   map[uint]*models.Visit{},
		bookings: map[uint]*models.Booking{},
		saved:    map[uint]*models.SavedProperty{},
		users:    map[uint]*models.User{},
		cities:   seedCities(),
		fixtures: seedProperties(),

		nextVisitID:   1,
		nextBookingID: 1,
		nextSavedID:   1,
		nextUserID:    1,
	}

	// Seed the ad counter above any fixture id to avoid collisions.
	maxID := uint(0)
	for _, ad := range seedAds() {
		ad := ad
		g.ads[ad.ID] = &ad
		if ad.ID > maxID {
			maxID = ad.ID
		}
	}
	g.nextAdID = maxID + 1

	return g
}

func (g *MemoryGateway) CreateAd(ad *models.Ad) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	ad.ID = g.nextAdID
	g.nextAdID++
	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = time.Now()
	}
	stored := *ad
	g.ads[ad.ID] = &stored
	return nil
}

func (g *MemoryGateway) UpdateAd(ad *models.Ad) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.ads[ad.ID]; !ok {
		return nil
	}
	ad.UpdatedAt = time.Now()
	stored := *ad
	g.ads[ad.ID] = &stored
	return nil
}

func (g *MemoryGateway) AdByID(id uint) (*models.Ad, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ad, ok := g.ads[id]
	if !ok {
		return nil, nil
	}
	copied := *ad
	return &copied, nil
}

func (g *MemoryGateway) AdBySlug(slug string) (*models.Ad, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, ad := range g.ads {
		if ad.Slug == slug {
			copied := *ad
			return &copied, nil
		}
	}
	return nil, nil
}

func (g *MemoryGateway) AdsByUser(userID uint) ([]models.Ad, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ads := []models.Ad{}
	for _, ad := range g.sortedAds() {
		if ad.UserID == userID && !ad.Deleted {
			ads = append(ads, *ad)
		}
	}
	return ads, nil
}

func (g *MemoryGateway) PublishedAds() ([]models.Ad, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.publishedAdsLocked(), nil
}

func (g *MemoryGateway) PublishedAdsByRegion(country, citySlug string) ([]models.Ad, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ads := []models.Ad{}
	for _, ad := range g.publishedAdsLocked() {
		if strings.EqualFold(ad.Country, country) && citySlugMatches(ad.City, citySlug) {
			ads = append(ads, ad)
		}
	}
	return ads, nil
}

func (g *MemoryGateway) AllAds() ([]models.Ad, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ads := []models.Ad{}
	for _, ad := range g.sortedAds() {
		ads = append(ads, *ad)
	}
	return ads, nil
}

func (g *MemoryGateway) QueryProperties(filters models.PropertyFilters, sortKey string) ([]models.Property, error) {
	g.mu.Lock()
	properties := append([]models.Property{}, g.fixtures...)
	for _, ad := range g.publishedAdsLocked() {
		ad := ad
		properties = append(properties, models.AdToProperty(&ad))
	}
	g.mu.Unlock()

	filtered := models.FilterProperties(properties, filters)
	models.SortProperties(filtered, sortKey)
	return filtered, nil
}

func (g *MemoryGateway) PropertyByID(id string) (*models.Property, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.fixtures {
		if g.fixtures[i].ID == id {
			copied := g.fixtures[i]
			return &copied, nil
		}
	}
	for _, ad := range g.ads {
		if ad.Slug == id && ad.Published && !ad.Deleted {
			p := models.AdToProperty(ad)
			return &p, nil
		}
	}
	return nil, nil
}

func (g *MemoryGateway) CreateVisit(v *models.Visit) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v.ID = g.nextVisitID
	g.nextVisitID++
	v.CreatedAt = time.Now()
	stored := *v
	g.visits[v.ID] = &stored
	return nil
}

func (g *MemoryGateway) UpdateVisit(v *models.Visit) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.visits[v.ID]; !ok {
		return nil
	}
	v.UpdatedAt = time.Now()
	stored := *v
	g.visits[v.ID] = &stored
	return nil
}

func (g *MemoryGateway) VisitByID(id uint) (*models.Visit, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.visits[id]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (g *MemoryGateway) VisitsByProperty(propertyID string) ([]models.Visit, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	visits := []models.Visit{}
	for id := uint(1); id < g.nextVisitID; id++ {
		if v, ok := g.visits[id]; ok && v.PropertyID == propertyID {
			visits = append(visits, *v)
		}
	}
	return visits, nil
}

func (g *MemoryGateway) AllVisits() ([]models.Visit, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	visits := []models.Visit{}
	for id := uint(1); id < g.nextVisitID; id++ {
		if v, ok := g.visits[id]; ok {
			visits = append(visits, *v)
		}
	}
	return visits, nil
}

func (g *MemoryGateway) CreateBooking(b *models.Booking) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	b.ID = g.nextBookingID
	g.nextBookingID++
	b.CreatedAt = time.Now()
	stored := *b
	g.bookings[b.ID] = &stored
	return nil
}

func (g *MemoryGateway) UpdateBooking(b *models.Booking) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.bookings[b.ID]; !ok {
		return nil
	}
	b.UpdatedAt = time.Now()
	stored := *b
	g.bookings[b.ID] = &stored
	return nil
}

func (g *MemoryGateway) BookingByID(id uint) (*models.Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	b, ok := g.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (g *MemoryGateway) BookingsByUser(userID uint) ([]models.Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	bookings := []models.Booking{}
	for id := uint(1); id < g.nextBookingID; id++ {
		if b, ok := g.bookings[id]; ok && b.UserID != nil && *b.UserID == userID {
			bookings = append(bookings, *b)
		}
	}
	return bookings, nil
}

func (g *MemoryGateway) AllBookings() ([]models.Booking, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	bookings := []models.Booking{}
	for id := uint(1); id < g.nextBookingID; id++ {
		if b, ok := g.bookings[id]; ok {
			bookings = append(bookings, *b)
		}
	}
	return bookings, nil
}

func (g *MemoryGateway) SaveProperty(userID uint, propertyID string) (*models.SavedProperty, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, s := range g.saved {
		if s.UserID == userID && s.PropertyID == propertyID {
			copied := *s
			return &copied, nil
		}
	}
	s := &models.SavedProperty{UserID: userID, PropertyID: propertyID}
	s.ID = g.nextSavedID
	g.nextSavedID++
	s.CreatedAt = time.Now()
	g.saved[s.ID] = s
	copied := *s
	return &copied, nil
}

func (g *MemoryGateway) UnsaveProperty(userID uint, propertyID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id, s := range g.saved {
		if s.UserID == userID && s.PropertyID == propertyID {
			delete(g.saved, id)
			return true, nil
		}
	}
	return false, nil
}

func (g *MemoryGateway) SavedProperties(userID uint) ([]models.SavedProperty, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	saved := []models.SavedProperty{}
	for id := uint(1); id < g.nextSavedID; id++ {
		if s, ok := g.saved[id]; ok && s.UserID == userID {
			saved = append(saved, *s)
		}
	}
	return saved, nil
}

func (g *MemoryGateway) Cities() ([]models.City, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]models.City{}, g.cities...), nil
}

func (g *MemoryGateway) CreateUser(u *models.User) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	u.ID = g.nextUserID
	g.nextUserID++
	u.CreatedAt = time.Now()
	stored := *u
	g.users[u.ID] = &stored
	return nil
}

func (g *MemoryGateway) UserByID(id uint) (*models.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (g *MemoryGateway) UserByEmail(email string) (*models.User, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, u := range g.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (g *MemoryGateway) Stats() (DashboardStats, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var stats DashboardStats
	for _, ad := range g.ads {
		stats.TotalAds++
		if ad.Published && !ad.Deleted {
			stats.PublishedAds++
		}
		if ad.Verified {
			stats.VerifiedAds++
		}
	}
	for _, v := range g.visits {
		if v.Status == models.VisitStatusPending {
			stats.PendingVisits++
		}
	}
	since7 := time.Now().AddDate(0, 0, -7)
	since30 := time.Now().AddDate(0, 0, -30)
	for _, b := range g.bookings {
		if b.CreatedAt.After(since7) {
			stats.NewBookings7d++
		}
		if b.CreatedAt.After(since30) {
			stats.NewBookings30++
		}
	}
	return stats, nil
}

// publishedAdsLocked returns publicly visible ads in id order. Caller holds mu.
func (g *MemoryGateway) publishedAdsLocked() []models.Ad {
	ads := []models.Ad{}
	for _, ad := range g.sortedAds() {
		if ad.Published && !ad.Deleted {
			ads = append(ads, *ad)
		}
	}
	return ads
}

// sortedAds returns ads in ascending id order for deterministic iteration.
// Caller holds mu.
func (g *MemoryGateway) sortedAds() []*models.Ad {
	ads := []*models.Ad{}
	for id := uint(1); id < g.nextAdID; id++ {
		if ad, ok := g.ads[id]; ok {
			ads = append(ads, ad)
		}
	}
	return ads
}

// citySlugMatches compares an ad's stored city name against a URL slug
// ("Al Khobar" matches "al-khobar").
func citySlugMatches(city, slug string) bool {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(city)), " ", "-")
	return normalized == strings.ToLower(slug)
}
