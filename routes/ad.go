package routes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"

	"github.com/sirdab/marketplace-v03-sub000/models"
	"github.com/sirdab/marketplace-v03-sub000/storage"
	"github.com/sirdab/marketplace-v03-sub000/utils"
)

// CreateAd creates a listing for the authenticated caller. A client-supplied
// slug that fails the 21-char lowercase-alphanumeric constraint is replaced
// with a freshly generated one.
func (api *API) CreateAd(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input CreateAdInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	slug := input.Slug
	if !utils.IsValidSlug(slug) {
		slug = utils.GenerateSlug()
	}
	// The slug column carries a unique index, so a valid but already-taken
	// slug is regenerated instead of surfacing as a database error.
	for {
		existing, err := api.store.AdBySlug(slug)
		if err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if existing == nil {
			break
		}
		slug = utils.GenerateSlug()
	}

	ad := models.Ad{
		UserID:      userID,
		Slug:        slug,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		PaymentTerm: input.PaymentTerm,

		AddressLine: orSentinel(input.AddressLine, models.SentinelLocation),
		District:    orSentinel(input.District, models.SentinelLocation),
		City:        orSentinel(input.City, models.SentinelLocation),
		Country:     orSentinel(input.Country, models.SentinelLocation),
		OwnerPhone:  orSentinel(input.OwnerPhone, models.SentinelPhone),

		MunicipalityLicense:  input.MunicipalityLicense,
		CivilDefenseLicense:  input.CivilDefenseLicense,
		SFDAFoodLicense:      input.SFDAFoodLicense,
		SFDADrugLicense:      input.SFDADrugLicense,
		SFDAMedicalLicense:   input.SFDAMedicalLicense,
		SFDAFeedLicense:      input.SFDAFeedLicense,
		SFDACosmeticsLicense: input.SFDACosmeticsLicense,
		SecurityCameras:      input.SecurityCameras,
		ManualRamp:           input.ManualRamp,
		AutomaticRamp:        input.AutomaticRamp,
		Electricity:          input.Electricity,
		Water:                input.Water,
		Sewage:               input.Sewage,
		RackingSystem:        input.RackingSystem,
		TemperatureControl:   input.TemperatureControl,

		Price:        input.Price,
		AreaInM2:     input.AreaInM2,
		StreetsCount: input.StreetsCount,
		DoorsCount:   input.DoorsCount,
		WallsCount:   input.WallsCount,

		AvailableFrom: input.AvailableFrom,
		AvailableTo:   input.AvailableTo,
		Published:     input.Published,
	}

	ad.SetImageList(api.insertImages(input.Images, ""))

	if input.TypeAttributes != nil {
		ad.TypeAttributes = datatypes.JSON(input.TypeAttributes)
	}

	if err := api.store.CreateAd(&ad); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&ad)
}

// UpdateAd applies a partial update. Owner-only; fields absent from the body
// are left untouched.
func (api *API) UpdateAd(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	ad, ok := api.ownedAd(ctx, userID)
	if !ok {
		return
	}

	var input UpdateAdInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	applyAdUpdates(ad, &input)
	if input.Images != nil {
		ad.SetImageList(api.insertImages(*input.Images, strconv.FormatUint(uint64(ad.ID), 10)))
	}

	if err := api.store.UpdateAd(ad); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(ad)
}

// DeleteAd soft-deletes: the row is kept with the deleted flag set.
func (api *API) DeleteAd(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	ad, ok := api.ownedAd(ctx, userID)
	if !ok {
		return
	}

	ad.Deleted = true
	if err := api.store.UpdateAd(ad); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

// GetMyAds lists the caller's non-deleted ads, drafts included.
func (api *API) GetMyAds(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	ads, err := api.store.AdsByUser(userID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(ads)
}

// GetMyAd returns one of the caller's ads, deleted or not. Owner-only.
func (api *API) GetMyAd(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	ad, ok := api.ownedAd(ctx, userID)
	if !ok {
		return
	}

	ctx.JSON(ad)
}

// GetPublicAd serves a single ad on the public surface. Unpublished or deleted
// rows are indistinguishable from missing ones.
func (api *API) GetPublicAd(ctx iris.Context) {
	id, err := strconv.ParseUint(ctx.Params().Get("id"), 10, 32)
	if err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ad, storeErr := api.store.AdByID(uint(id))
	if storeErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if ad == nil || !ad.Published || ad.Deleted {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(ad)
}

// GetAdsByRegion lists published ads for a country/city-slug pair.
func (api *API) GetAdsByRegion(ctx iris.Context) {
	country := ctx.Params().Get("country")
	city := ctx.Params().Get("city")

	ads, err := api.store.PublishedAdsByRegion(country, city)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(ads)
}

// ownedAd loads the ad addressed by the {id} parameter and enforces ownership.
// Writes the error response and returns ok=false on any failure.
func (api *API) ownedAd(ctx iris.Context, userID uint) (*models.Ad, bool) {
	id, err := strconv.ParseUint(ctx.Params().Get("id"), 10, 32)
	if err != nil {
		utils.CreateNotFound(ctx)
		return nil, false
	}

	ad, storeErr := api.store.AdByID(uint(id))
	if storeErr != nil {
		utils.CreateInternalServerError(ctx)
		return nil, false
	}
	if ad == nil {
		utils.CreateNotFound(ctx)
		return nil, false
	}
	if ad.UserID != userID {
		utils.CreateForbidden(ctx)
		return nil, false
	}
	return ad, true
}

// insertImages uploads base64 payloads and passes through already-hosted URLs.
// Failed uploads are skipped rather than failing the request.
func (api *API) insertImages(images []string, adID string) []string {
	uploaded := []string{}
	for i, image := range images {
		if image == "" {
			continue
		}
		if strings.Contains(image, "res.cloudinary.com") {
			uploaded = append(uploaded, image)
			continue
		}

		publicID := fmt.Sprintf("ad_%d_%d", time.Now().UnixMilli(), i)
		if adID != "" {
			publicID = "ad/" + adID + "/" + publicID
		}
		if url := storage.UploadBase64Image(image, publicID); url != "" {
			uploaded = append(uploaded, url)
		}
	}
	return uploaded
}

func applyAdUpdates(ad *models.Ad, input *UpdateAdInput) {
	if input.Title != nil {
		ad.Title = *input.Title
	}
	if input.Description != nil {
		ad.Description = *input.Description
	}
	if input.Type != nil {
		ad.Type = *input.Type
	}
	if input.PaymentTerm != nil {
		ad.PaymentTerm = *input.PaymentTerm
	}
	if input.AddressLine != nil {
		ad.AddressLine = orSentinel(*input.AddressLine, models.SentinelLocation)
	}
	if input.District != nil {
		ad.District = orSentinel(*input.District, models.SentinelLocation)
	}
	if input.City != nil {
		ad.City = orSentinel(*input.City, models.SentinelLocation)
	}
	if input.Country != nil {
		ad.Country = orSentinel(*input.Country, models.SentinelLocation)
	}
	if input.OwnerPhone != nil {
		ad.OwnerPhone = orSentinel(*input.OwnerPhone, models.SentinelPhone)
	}
	if input.MunicipalityLicense != nil {
		ad.MunicipalityLicense = *input.MunicipalityLicense
	}
	if input.CivilDefenseLicense != nil {
		ad.CivilDefenseLicense = *input.CivilDefenseLicense
	}
	if input.SFDAFoodLicense != nil {
		ad.SFDAFoodLicense = *input.SFDAFoodLicense
	}
	if input.SFDADrugLicense != nil {
		ad.SFDADrugLicense = *input.SFDADrugLicense
	}
	if input.SFDAMedicalLicense != nil {
		ad.SFDAMedicalLicense = *input.SFDAMedicalLicense
	}
	if input.SFDAFeedLicense != nil {
		ad.SFDAFeedLicense = *input.SFDAFeedLicense
	}
	if input.SFDACosmeticsLicense != nil {
		ad.SFDACosmeticsLicense = *input.SFDACosmeticsLicense
	}
	if input.SecurityCameras != nil {
		ad.SecurityCameras = *input.SecurityCameras
	}
	if input.ManualRamp != nil {
		ad.ManualRamp = *input.ManualRamp
	}
	if input.AutomaticRamp != nil {
		ad.AutomaticRamp = *input.AutomaticRamp
	}
	if input.Electricity != nil {
		ad.Electricity = *input.Electricity
	}
	if input.Water != nil {
		ad.Water = *input.Water
	}
	if input.Sewage != nil {
		ad.Sewage = *input.Sewage
	}
	if input.RackingSystem != nil {
		ad.RackingSystem = *input.RackingSystem
	}
	if input.TemperatureControl != nil {
		ad.TemperatureControl = *input.TemperatureControl
	}
	if input.Price != nil {
		ad.Price = *input.Price
	}
	if input.AreaInM2 != nil {
		ad.AreaInM2 = *input.AreaInM2
	}
	if input.StreetsCount != nil {
		ad.StreetsCount = *input.StreetsCount
	}
	if input.DoorsCount != nil {
		ad.DoorsCount = *input.DoorsCount
	}
	if input.WallsCount != nil {
		ad.WallsCount = *input.WallsCount
	}
	if input.AvailableFrom != nil {
		ad.AvailableFrom = input.AvailableFrom
	}
	if input.AvailableTo != nil {
		ad.AvailableTo = input.AvailableTo
	}
	if input.Published != nil {
		ad.Published = *input.Published
	}
	if input.TypeAttributes != nil {
		ad.TypeAttributes = datatypes.JSON(input.TypeAttributes)
	}
}

func orSentinel(value, sentinel string) string {
	if strings.TrimSpace(value) == "" {
		return sentinel
	}
	return value
}

type CreateAdInput struct {
	Slug        string `json:"slug"`
	Title       string `json:"title" validate:"required,max=256"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required,max=128"`
	PaymentTerm string `json:"paymentTerm" validate:"required,oneof=daily monthly yearly"`

	AddressLine string `json:"addressLine" validate:"max=512"`
	District    string `json:"district" validate:"max=256"`
	City        string `json:"city" validate:"max=256"`
	Country     string `json:"country" validate:"max=128"`
	OwnerPhone  string `json:"ownerPhone" validate:"max=32"`

	MunicipalityLicense  bool `json:"municipalityLicense"`
	CivilDefenseLicense  bool `json:"civilDefenseLicense"`
	SFDAFoodLicense      bool `json:"sfdaFoodLicense"`
	SFDADrugLicense      bool `json:"sfdaDrugLicense"`
	SFDAMedicalLicense   bool `json:"sfdaMedicalLicense"`
	SFDAFeedLicense      bool `json:"sfdaFeedLicense"`
	SFDACosmeticsLicense bool `json:"sfdaCosmeticsLicense"`

	SecurityCameras    bool   `json:"securityCameras"`
	ManualRamp         bool   `json:"manualRamp"`
	AutomaticRamp      bool   `json:"automaticRamp"`
	Electricity        bool   `json:"electricity"`
	Water              bool   `json:"water"`
	Sewage             bool   `json:"sewage"`
	RackingSystem      string `json:"rackingSystem"`
	TemperatureControl string `json:"temperatureControl"`

	Price        string `json:"price" validate:"required"`
	AreaInM2     string `json:"areaInM2"`
	StreetsCount string `json:"streetsCount"`
	DoorsCount   string `json:"doorsCount"`
	WallsCount   string `json:"wallsCount"`

	AvailableFrom *time.Time `json:"availableFrom"`
	AvailableTo   *time.Time `json:"availableTo"`
	Published     bool       `json:"published"`

	Images         []string        `json:"images"`
	TypeAttributes json.RawMessage `json:"typeAttributes"`
}

type UpdateAdInput struct {
	Title       *string `json:"title" validate:"omitempty,max=256"`
	Description *string `json:"description"`
	Type        *string `json:"type" validate:"omitempty,max=128"`
	PaymentTerm *string `json:"paymentTerm" validate:"omitempty,oneof=daily monthly yearly"`

	AddressLine *string `json:"addressLine" validate:"omitempty,max=512"`
	District    *string `json:"district" validate:"omitempty,max=256"`
	City        *string `json:"city" validate:"omitempty,max=256"`
	Country     *string `json:"country" validate:"omitempty,max=128"`
	OwnerPhone  *string `json:"ownerPhone" validate:"omitempty,max=32"`

	MunicipalityLicense  *bool `json:"municipalityLicense"`
	CivilDefenseLicense  *bool `json:"civilDefenseLicense"`
	SFDAFoodLicense      *bool `json:"sfdaFoodLicense"`
	SFDADrugLicense      *bool `json:"sfdaDrugLicense"`
	SFDAMedicalLicense   *bool `json:"sfdaMedicalLicense"`
	SFDAFeedLicense      *bool `json:"sfdaFeedLicense"`
	SFDACosmeticsLicense *bool `json:"sfdaCosmeticsLicense"`

	SecurityCameras    *bool   `json:"securityCameras"`
	ManualRamp         *bool   `json:"manualRamp"`
	AutomaticRamp      *bool   `json:"automaticRamp"`
	Electricity        *bool   `json:"electricity"`
	Water              *bool   `json:"water"`
	Sewage             *bool   `json:"sewage"`
	RackingSystem      *string `json:"rackingSystem"`
	TemperatureControl *string `json:"temperatureControl"`

	Price        *string `json:"price"`
	AreaInM2     *string `json:"areaInM2"`
	StreetsCount *string `json:"streetsCount"`
	DoorsCount   *string `json:"doorsCount"`
	WallsCount   *string `json:"wallsCount"`

	AvailableFrom *time.Time `json:"availableFrom"`
	AvailableTo   *time.Time `json:"availableTo"`
	Published     *bool      `json:"published"`

	Images         *[]string       `json:"images"`
	TypeAttributes json.RawMessage `json:"typeAttributes"`
}
