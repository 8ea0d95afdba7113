package routes

import (
	"github.com/kataras/iris/v12"

	"github.com/sirdab/marketplace-v03-sub000/models"
	"github.com/sirdab/marketplace-v03-sub000/utils"
)

// SaveProperty adds a listing to the caller's saved list. Saving the same
// listing twice is a no-op returning the existing row.
func (api *API) SaveProperty(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input SavePropertyInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	property, err := api.store.PropertyByID(input.PropertyID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if property == nil {
		utils.CreateNotFound(ctx)
		return
	}

	saved, err := api.store.SaveProperty(userID, input.PropertyID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(saved)
}

// UnsaveProperty removes a listing from the caller's saved list.
func (api *API) UnsaveProperty(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	propertyID := ctx.Params().Get("id")

	removed, err := api.store.UnsaveProperty(userID, propertyID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if !removed {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

// GetSavedProperties returns the caller's saved listings, resolved to their
// current property views. Listings that went offline are skipped.
func (api *API) GetSavedProperties(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	saved, err := api.store.SavedProperties(userID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	properties := []models.Property{}
	for _, s := range saved {
		property, err := api.store.PropertyByID(s.PropertyID)
		if err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		if property != nil {
			properties = append(properties, *property)
		}
	}

	ctx.JSON(properties)
}

type SavePropertyInput struct {
	PropertyID string `json:"propertyID" validate:"required"`
}
