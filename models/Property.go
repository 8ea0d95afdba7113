package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Property categories. Free-text ad types that match no keyword fall back to
// warehouse, never "unknown".
const (
	CategoryWarehouse  = "warehouse"
	CategoryWorkshop   = "workshop"
	CategoryStorage    = "storage"
	CategoryStorefront = "storefront"
)

const (
	PurposeBuy       = "buy"
	PurposeRent      = "rent"
	PurposeDailyRent = "daily_rent"
)

const (
	PriceUnitDay   = "day"
	PriceUnitMonth = "month"
	PriceUnitYear  = "year"
)

// PlaceholderImageURL is served for listings that carry no images yet.
const PlaceholderImageURL = "https://res.cloudinary.com/sirdab/image/upload/v1/defaults/listing-placeholder.jpg"

// Property is the presentation view of a listing. It is never persisted: it is
// either a hardcoded fixture or derived from an Ad through AdToProperty.
type Property struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	SubType     string `json:"subType"`
	Purpose     string `json:"purpose"`

	ForRent          bool `json:"forRent"`
	ForSale          bool `json:"forSale"`
	ForDailyRent     bool `json:"forDailyRent"`
	ForLeaseTransfer bool `json:"forLeaseTransfer"`

	// Price is denominated in PriceUnit; AnnualPrice is always the yearly
	// equivalent and is the basis for cross-listing comparison and filtering.
	Price       int     `json:"price"`
	PriceUnit   string  `json:"priceUnit"`
	AnnualPrice int     `json:"annualPrice"`
	Size        float64 `json:"size"` // m²

	Location string `json:"location"`
	District string `json:"district"`
	City     string `json:"city"`
	Country  string `json:"country"`

	ImageURL  string   `json:"imageUrl"`
	Images    []string `json:"images"`
	Amenities []string `json:"amenities"`

	IsVerified  bool   `json:"isVerified"`
	IsAvailable bool   `json:"isAvailable"`
	OwnerPhone  string `json:"ownerPhone,omitempty"`

	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	TypeAttributes PropertyTypeAttributes `json:"typeAttributes"`
}

// PropertyTypeAttributes is a tagged union keyed by Property.Category: exactly
// one variant is non-nil for a well-formed value, matching the category.
type PropertyTypeAttributes struct {
	Warehouse  *WarehouseAttributes  `json:"warehouse,omitempty"`
	Workshop   *WorkshopAttributes   `json:"workshop,omitempty"`
	Storage    *StorageAttributes    `json:"storage,omitempty"`
	Storefront *StorefrontAttributes `json:"storefront,omitempty"`
}

type WarehouseAttributes struct {
	RackingSystem      string `json:"rackingSystem,omitempty"`
	TemperatureControl string `json:"temperatureControl,omitempty"`
	CeilingHeightM     string `json:"ceilingHeightM,omitempty"`
	LoadingDocks       string `json:"loadingDocks,omitempty"`
}

type WorkshopAttributes struct {
	CraneCapacity string `json:"craneCapacity,omitempty"`
	PowerPhase    string `json:"powerPhase,omitempty"`
	Ventilation   string `json:"ventilation,omitempty"`
}

type StorageAttributes struct {
	UnitCount         string `json:"unitCount,omitempty"`
	ClimateControlled bool   `json:"climateControlled,omitempty"`
	AccessHours       string `json:"accessHours,omitempty"`
}

type StorefrontAttributes struct {
	FrontageM   string `json:"frontageM,omitempty"`
	Floor       string `json:"floor,omitempty"`
	FootTraffic string `json:"footTraffic,omitempty"`
}

// categoryKeywords maps lowercase substrings (English and Arabic) of an ad's
// free-text type to a category. Checked in order; first hit wins.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"workshop", CategoryWorkshop},
	{"ورشة", CategoryWorkshop},
	{"storage", CategoryStorage},
	{"تخزين", CategoryStorage},
	{"storefront", CategoryStorefront},
	{"محل", CategoryStorefront},
	{"retail", CategoryStorefront},
}

// InferCategory classifies a free-text ad type. It is a best-effort heuristic,
// not a classifier: callers must tolerate misclassification.
func InferCategory(adType string) string {
	lowered := strings.ToLower(adType)
	for _, kw := range categoryKeywords {
		if strings.Contains(lowered, kw.keyword) {
			return kw.category
		}
	}
	return CategoryWarehouse
}

// amenityFlags is the fixed, ordered expansion table from boolean ad columns
// to human-readable amenity labels.
var amenityFlags = []struct {
	label string
	isSet func(*Ad) bool
}{
	{"Municipality License", func(a *Ad) bool { return a.MunicipalityLicense }},
	{"Civil Defense License", func(a *Ad) bool { return a.CivilDefenseLicense }},
	{"SFDA Food License", func(a *Ad) bool { return a.SFDAFoodLicense }},
	{"SFDA Drug License", func(a *Ad) bool { return a.SFDADrugLicense }},
	{"SFDA Medical Devices License", func(a *Ad) bool { return a.SFDAMedicalLicense }},
	{"SFDA Feed License", func(a *Ad) bool { return a.SFDAFeedLicense }},
	{"SFDA Cosmetics License", func(a *Ad) bool { return a.SFDACosmeticsLicense }},
	{"Security Cameras", func(a *Ad) bool { return a.SecurityCameras }},
	{"Manual Ramp", func(a *Ad) bool { return a.ManualRamp }},
	{"Automatic Ramp", func(a *Ad) bool { return a.AutomaticRamp }},
	{"Electricity", func(a *Ad) bool { return a.Electricity }},
	{"Water", func(a *Ad) bool { return a.Water }},
	{"Sewage", func(a *Ad) bool { return a.Sewage }},
}

// AdToProperty derives the presentation view of an ad. It is pure and never
// fails: it runs over legacy, partially populated rows, so every parse failure
// degrades to a zero value instead of propagating.
func AdToProperty(ad *Ad) Property {
	images := ad.ImageList()
	imageURL := PlaceholderImageURL
	if len(images) > 0 {
		imageURL = images[0]
	}

	category := InferCategory(ad.Type)

	purpose := PurposeRent
	priceUnit := PriceUnitYear
	switch ad.PaymentTerm {
	case PaymentTermDaily:
		purpose = PurposeDailyRent
		priceUnit = PriceUnitDay
	case PaymentTermMonthly:
		priceUnit = PriceUnitMonth
	}

	annualPrice := parseIntText(ad.Price)
	price := annualPrice
	switch priceUnit {
	case PriceUnitMonth:
		price = int(math.Round(float64(annualPrice) / 12))
	case PriceUnitDay:
		price = int(math.Round(float64(annualPrice) / 365))
	}

	return Property{
		ID:          ad.Slug,
		Title:       ad.Title,
		Description: ad.Description,
		Category:    category,
		SubType:     ad.Type,
		Purpose:     purpose,

		ForRent:          purpose == PurposeRent,
		ForDailyRent:     purpose == PurposeDailyRent,
		ForLeaseTransfer: leaseTransferFlag(ad),

		Price:       price,
		PriceUnit:   priceUnit,
		AnnualPrice: annualPrice,
		Size:        parseFloatText(ad.AreaInM2),

		Location: ad.AddressLine,
		District: ad.District,
		City:     ad.City,
		Country:  ad.Country,

		ImageURL:  imageURL,
		Images:    images,
		Amenities: expandAmenities(ad),

		IsVerified:  ad.Verified,
		IsAvailable: ad.Published && !ad.Deleted,
		OwnerPhone:  ad.OwnerPhone,

		Lat: validCoordinate(ad.Lat),
		Lng: validCoordinate(ad.Lng),

		TypeAttributes: decodeTypeAttributes(category, json.RawMessage(ad.TypeAttributes)),
	}
}

func expandAmenities(ad *Ad) []string {
	amenities := []string{}
	for _, flag := range amenityFlags {
		if flag.isSet(ad) {
			amenities = append(amenities, flag.label)
		}
	}
	// Value-carrying amenities come last, rendered with their value.
	if ad.RackingSystem != "" {
		amenities = append(amenities, "Racking: "+ad.RackingSystem)
	}
	if ad.TemperatureControl != "" {
		amenities = append(amenities, "Temp: "+ad.TemperatureControl)
	}
	return amenities
}

// leaseTransferFlag reads typeAttributes.forLeaseTransfer from the raw bag.
// The key lives at the top level of the bag regardless of category; this exact
// lookup path is load-bearing for older rows.
func leaseTransferFlag(ad *Ad) bool {
	if len(ad.TypeAttributes) == 0 {
		return false
	}
	var bag struct {
		ForLeaseTransfer bool `json:"forLeaseTransfer"`
	}
	if err := json.Unmarshal(ad.TypeAttributes, &bag); err != nil {
		return false
	}
	return bag.ForLeaseTransfer
}

func decodeTypeAttributes(category string, raw json.RawMessage) PropertyTypeAttributes {
	var attrs PropertyTypeAttributes
	if len(raw) == 0 {
		return attrs
	}
	switch category {
	case CategoryWorkshop:
		var v WorkshopAttributes
		if json.Unmarshal(raw, &v) == nil {
			attrs.Workshop = &v
		}
	case CategoryStorage:
		var v StorageAttributes
		if json.Unmarshal(raw, &v) == nil {
			attrs.Storage = &v
		}
	case CategoryStorefront:
		var v StorefrontAttributes
		if json.Unmarshal(raw, &v) == nil {
			attrs.Storefront = &v
		}
	default:
		var v WarehouseAttributes
		if json.Unmarshal(raw, &v) == nil {
			attrs.Warehouse = &v
		}
	}
	return attrs
}

func parseIntText(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatText(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func validCoordinate(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) {
		return nil
	}
	return v
}
