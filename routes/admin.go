package routes

import (
	"strconv"

	"github.com/kataras/iris/v12"

	"github.com/sirdab/marketplace-v03-sub000/utils"
)

// GET /api/admin/stats
func (api *API) AdminStats(ctx iris.Context) {
	stats, err := api.store.Stats()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"data":  stats,
		"meta":  iris.Map{},
		"links": iris.Map{},
	})
}

// GET /api/admin/ads returns all ads regardless of lifecycle flags.
func (api *API) AdminListAds(ctx iris.Context) {
	ads, err := api.store.AllAds()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage < 1 || perPage > 100 {
		perPage = 25
	}

	total := int64(len(ads))
	start := (page - 1) * perPage
	if start < 0 || start >= len(ads) {
		utils.JSONPage(ctx, []interface{}{}, page, perPage, total)
		return
	}
	end := start + perPage
	if end > len(ads) {
		end = len(ads)
	}
	utils.JSONPage(ctx, ads[start:end], page, perPage, total)
}

// GET /api/admin/visits
func (api *API) AdminListVisits(ctx iris.Context) {
	visits, err := api.store.AllVisits()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{"data": visits, "meta": iris.Map{}, "links": iris.Map{}})
}

// GET /api/admin/bookings
func (api *API) AdminListBookings(ctx iris.Context) {
	bookings, err := api.store.AllBookings()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{"data": bookings, "meta": iris.Map{}, "links": iris.Map{}})
}

// PATCH /api/admin/ads/{id}/verify toggles the verified badge.
func (api *API) AdminVerifyAd(ctx iris.Context) {
	id, parseErr := strconv.ParseUint(ctx.Params().Get("id"), 10, 32)
	if parseErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ad, err := api.store.AdByID(uint(id))
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if ad == nil {
		utils.CreateNotFound(ctx)
		return
	}

	var input struct {
		Verified bool `json:"verified"`
	}
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	ad.Verified = input.Verified
	if err := api.store.UpdateAd(ad); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(ad)
}
