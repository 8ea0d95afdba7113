package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Sentinel values used for absent fields instead of NULL. Legacy rows rely on
// these, and clients check for them to decide whether to render "unknown".
const (
	SentinelLocation = "-"
	SentinelPhone    = "000000000"
)

// Payment terms accepted on an ad.
const (
	PaymentTermDaily   = "daily"
	PaymentTermMonthly = "monthly"
	PaymentTermYearly  = "yearly"
)

type Ad struct {
	gorm.Model
	UserID      uint   `json:"userID" gorm:"index"`
	Slug        string `json:"slug" gorm:"type:varchar(21);uniqueIndex"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Type        string `json:"type"`   // free text, e.g. "Dry Warehouse", "ورشة سيارات"
	Images      string `json:"images"` // JSON array of URLs, first is the main image

	AddressLine string `json:"addressLine" gorm:"default:'-'"`
	District    string `json:"district" gorm:"default:'-'"`
	City        string `json:"city" gorm:"default:'-'"`
	Country     string `json:"country" gorm:"default:'-'"`
	OwnerPhone  string `json:"ownerPhone" gorm:"default:'000000000'"`

	// Licenses
	MunicipalityLicense  bool `json:"municipalityLicense"`
	CivilDefenseLicense  bool `json:"civilDefenseLicense"`
	SFDAFoodLicense      bool `json:"sfdaFoodLicense"`
	SFDADrugLicense      bool `json:"sfdaDrugLicense"`
	SFDAMedicalLicense   bool `json:"sfdaMedicalLicense"`
	SFDAFeedLicense      bool `json:"sfdaFeedLicense"`
	SFDACosmeticsLicense bool `json:"sfdaCosmeticsLicense"`

	// Facilities & utilities
	SecurityCameras    bool   `json:"securityCameras"`
	ManualRamp         bool   `json:"manualRamp"`
	AutomaticRamp      bool   `json:"automaticRamp"`
	Electricity        bool   `json:"electricity"`
	Water              bool   `json:"water"`
	Sewage             bool   `json:"sewage"`
	RackingSystem      string `json:"rackingSystem"`      // e.g. "selective", empty when none
	TemperatureControl string `json:"temperatureControl"` // e.g. "2-8C", empty when none

	// Numeric fields stored as text to tolerate partially migrated legacy rows.
	Price        string `json:"price"`
	AreaInM2     string `json:"areaInM2"`
	StreetsCount string `json:"streetsCount"`
	DoorsCount   string `json:"doorsCount"`
	WallsCount   string `json:"wallsCount"`

	PaymentTerm   string     `json:"paymentTerm" gorm:"type:varchar(10);default:'yearly'"`
	AvailableFrom *time.Time `json:"availableFrom"`
	AvailableTo   *time.Time `json:"availableTo"`

	// Lifecycle flags are independent: a row can be unpublished yet not
	// deleted, or deleted while still flagged published.
	Published bool `json:"published" gorm:"index"`
	Deleted   bool `json:"deleted" gorm:"index"`
	Verified  bool `json:"verified"`

	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	// Category-specific attributes; shape depends on the inferred category and
	// is validated at the route boundary, not here.
	TypeAttributes datatypes.JSON `json:"typeAttributes"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
}

// MarshalJSON converts the Images JSON column to a real array on the wire.
func (a *Ad) MarshalJSON() ([]byte, error) {
	type Alias Ad
	aux := &struct {
		Images []string `json:"images"`
		*Alias
	}{
		Images: []string{},
		Alias:  (*Alias)(a),
	}

	if a.Images != "" {
		var images []string
		if err := json.Unmarshal([]byte(a.Images), &images); err == nil {
			aux.Images = images
		}
	}

	return json.Marshal(aux)
}

// UnmarshalJSON accepts the wire form, where images is an array, and folds it
// back into the JSON column.
func (a *Ad) UnmarshalJSON(data []byte) error {
	type Alias Ad
	aux := &struct {
		Images []string `json:"images"`
		*Alias
	}{
		Alias: (*Alias)(a),
	}
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	if aux.Images != nil {
		a.SetImageList(aux.Images)
	}
	return nil
}

// ImageList returns the decoded image URLs, in order. Malformed JSON yields an
// empty list rather than an error.
func (a *Ad) ImageList() []string {
	if a.Images == "" {
		return nil
	}
	var images []string
	if err := json.Unmarshal([]byte(a.Images), &images); err != nil {
		return nil
	}
	return images
}

// SetImageList stores the URLs back into the JSON column.
func (a *Ad) SetImageList(images []string) {
	if images == nil {
		images = []string{}
	}
	encoded, _ := json.Marshal(images)
	a.Images = string(encoded)
}
