package storage

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sirdab/marketplace-v03-sub000/models"
)

// Development fixtures for the in-memory gateway. Ad IDs start at 1; the
// memory gateway seeds its counter above the largest fixture ID.

func seedCities() []models.City {
	return []models.City{
		{Model: gorm.Model{ID: 1}, Name: "Riyadh", NameAr: "الرياض", Slug: "riyadh", Country: "sa"},
		{Model: gorm.Model{ID: 2}, Name: "Jeddah", NameAr: "جدة", Slug: "jeddah", Country: "sa"},
		{Model: gorm.Model{ID: 3}, Name: "Dammam", NameAr: "الدمام", Slug: "dammam", Country: "sa"},
		{Model: gorm.Model{ID: 4}, Name: "Khobar", NameAr: "الخبر", Slug: "khobar", Country: "sa"},
		{Model: gorm.Model{ID: 5}, Name: "Mecca", NameAr: "مكة المكرمة", Slug: "mecca", Country: "sa"},
		{Model: gorm.Model{ID: 6}, Name: "Medina", NameAr: "المدينة المنورة", Slug: "medina", Country: "sa"},
		{Model: gorm.Model{ID: 7}, Name: "Jubail", NameAr: "الجبيل", Slug: "jubail", Country: "sa"},
		{Model: gorm.Model{ID: 8}, Name: "Taif", NameAr: "الطائف", Slug: "taif", Country: "sa"},
	}
}

func seedAds() []models.Ad {
	lat1, lng1 := 24.7136, 46.6753
	lat2, lng2 := 21.4858, 39.1925
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	return []models.Ad{
		{
			Model:       gorm.Model{ID: 1, CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)},
			UserID:      1,
			Slug:        "k3jf92mzpq81xw04nv7ts",
			Title:       "Dry warehouse near Exit 18",
			Description: "3,000 m² dry warehouse with selective racking, two loading docks and a guard room.",
			Type:        "Dry Warehouse",
			Images:      `["https://res.cloudinary.com/sirdab/image/upload/v1/ads/wh-exit18-01.jpg","https://res.cloudinary.com/sirdab/image/upload/v1/ads/wh-exit18-02.jpg"]`,
			AddressLine: "Al Sulay, Exit 18",
			District:    "Al Sulay",
			City:        "Riyadh",
			Country:     "sa",
			OwnerPhone:  "0555010203",

			MunicipalityLicense: true,
			CivilDefenseLicense: true,
			SFDAFoodLicense:     true,
			SecurityCameras:     true,
			AutomaticRamp:       true,
			Electricity:         true,
			Water:               true,
			Sewage:              true,
			RackingSystem:       "selective",

			Price:         "240000",
			AreaInM2:      "3000",
			StreetsCount:  "2",
			DoorsCount:    "4",
			WallsCount:    "4",
			PaymentTerm:   models.PaymentTermYearly,
			AvailableFrom: &from,
			Published:     true,
			Verified:      true,
			Lat:           &lat1,
			Lng:           &lng1,
			TypeAttributes: datatypes.JSON([]byte(
				`{"rackingSystem":"selective","ceilingHeightM":"9","loadingDocks":"2"}`)),
		},
		{
			Model:       gorm.Model{ID: 2, CreatedAt: time.Date(2024, 2, 2, 14, 30, 0, 0, time.UTC)},
			UserID:      1,
			Slug:        "a8b2c7d1e5f9g3h6j0k4m",
			Title:       "ورشة سيارات في المنطقة الصناعية",
			Description: "ورشة مجهزة برافعة ومكتب استقبال، قريبة من طريق الملك فهد.",
			Type:        "ورشة سيارات",
			Images:      `["https://res.cloudinary.com/sirdab/image/upload/v1/ads/ws-jeddah-01.jpg"]`,
			AddressLine: "Industrial Area, Phase 3",
			District:    "Al Mahjar",
			City:        "Jeddah",
			Country:     "sa",
			OwnerPhone:  "0556070809",

			MunicipalityLicense: true,
			SecurityCameras:     true,
			ManualRamp:          true,
			Electricity:         true,
			Water:               true,

			Price:       "7500",
			AreaInM2:    "450",
			DoorsCount:  "2",
			PaymentTerm: models.PaymentTermMonthly,
			Published:   true,
			Lat:         &lat2,
			Lng:         &lng2,
			TypeAttributes: datatypes.JSON([]byte(
				`{"craneCapacity":"5t","powerPhase":"three","forLeaseTransfer":true}`)),
		},
		{
			Model:       gorm.Model{ID: 3, CreatedAt: time.Date(2024, 2, 20, 8, 15, 0, 0, time.UTC)},
			UserID:      2,
			Slug:        "z9y8x7w6v5u4t3s2r1q0p",
			Title:       "Cold storage units, Dammam port road",
			Description: "Temperature-controlled storage units from 50 m², 24/7 access.",
			Type:        "Cold Storage",
			Images:      `[]`,
			AddressLine: models.SentinelLocation,
			District:    models.SentinelLocation,
			City:        "Dammam",
			Country:     "sa",
			OwnerPhone:  models.SentinelPhone,

			CivilDefenseLicense: true,
			SFDADrugLicense:     true,
			Electricity:         true,
			TemperatureControl:  "2-8C",

			Price:       "365000",
			AreaInM2:    "50",
			PaymentTerm: models.PaymentTermDaily,
			Published:   true,
			TypeAttributes: datatypes.JSON([]byte(
				`{"unitCount":"12","climateControlled":true,"accessHours":"24/7"}`)),
		},
		{
			// Unpublished draft; must never appear on public endpoints.
			Model:       gorm.Model{ID: 4, CreatedAt: time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC)},
			UserID:      2,
			Slug:        "m1n2b3v4c5x6z7l8k9j0h",
			Title:       "Retail storefront on Tahlia",
			Description: "Corner storefront with 12 m frontage.",
			Type:        "Retail Storefront",
			Images:      `[]`,
			AddressLine: "Tahlia Street",
			District:    "Al Olaya",
			City:        "Riyadh",
			Country:     "sa",
			Price:       "180000",
			AreaInM2:    "220",
			PaymentTerm: models.PaymentTermYearly,
			Published:   false,
			TypeAttributes: datatypes.JSON([]byte(
				`{"frontageM":"12","floor":"ground","footTraffic":"high"}`)),
		},
	}
}

// seedProperties are fixture listings that exist only as presentation values,
// with no backing ad row.
func seedProperties() []models.Property {
	return []models.Property{
		{
			ID:          "fxwh001riyadhsulay000",
			Title:       "Logistics warehouse, Al Sulay",
			Description: "High-bay logistics warehouse with yard parking for 10 trucks.",
			Category:    models.CategoryWarehouse,
			SubType:     "Logistics Warehouse",
			Purpose:     models.PurposeRent,
			ForRent:     true,
			Price:       320000,
			PriceUnit:   models.PriceUnitYear,
			AnnualPrice: 320000,
			Size:        4200,
			Location:    "Al Sulay, Riyadh",
			District:    "Al Sulay",
			City:        "Riyadh",
			Country:     "sa",
			ImageURL:    models.PlaceholderImageURL,
			Images:      []string{},
			Amenities:   []string{"Municipality License", "Civil Defense License", "Security Cameras"},
			IsVerified:  true,
			IsAvailable: true,
			TypeAttributes: models.PropertyTypeAttributes{
				Warehouse: &models.WarehouseAttributes{CeilingHeightM: "11", LoadingDocks: "4"},
			},
		},
		{
			ID:          "fxsf002jeddahtahlia00",
			Title:       "Storefront for sale, Jeddah corniche",
			Description: "Sea-facing storefront, shell and core.",
			Category:    models.CategoryStorefront,
			SubType:     "Storefront",
			Purpose:     models.PurposeBuy,
			ForSale:     true,
			Price:       2400000,
			PriceUnit:   models.PriceUnitYear,
			AnnualPrice: 2400000,
			Size:        180,
			Location:    "Corniche Road",
			District:    "Ash Shati",
			City:        "Jeddah",
			Country:     "sa",
			ImageURL:    models.PlaceholderImageURL,
			Images:      []string{},
			Amenities:   []string{"Electricity", "Water"},
			IsAvailable: true,
			TypeAttributes: models.PropertyTypeAttributes{
				Storefront: &models.StorefrontAttributes{FrontageM: "9", Floor: "ground"},
			},
		},
	}
}
