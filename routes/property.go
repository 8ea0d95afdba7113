package routes

import (
	"strconv"
	"strings"

	"github.com/kataras/iris/v12"

	"github.com/sirdab/marketplace-v03-sub000/models"
	"github.com/sirdab/marketplace-v03-sub000/utils"
)

// Page sizes: the landing strip shows 6 cards, the browse page 12.
const (
	landingPageSize = 6
	defaultPageSize = 12
)

// GetProperties handles the public browse/search endpoint. Query criteria
// combine conjunctively; unknown sort keys fall back to newest.
func (api *API) GetProperties(ctx iris.Context) {
	filters := parsePropertyFilters(ctx)

	sortKey := strings.TrimSpace(ctx.URLParam("sort"))
	if !models.IsValidSortKey(sortKey) {
		sortKey = models.SortNewest
	}

	properties, err := api.store.QueryProperties(filters, sortKey)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	page := ctx.URLParamIntDefault("page", 1)
	pageSize := ctx.URLParamIntDefault("pageSize", defaultPageSize)
	if pageSize != landingPageSize && pageSize != defaultPageSize {
		pageSize = defaultPageSize
	}

	pageItems := models.Paginate(properties, page, pageSize)
	utils.JSONPage(ctx, pageItems, page, pageSize, int64(len(properties)))
}

// GetProperty returns one listing view by its public id.
func (api *API) GetProperty(ctx iris.Context) {
	id := ctx.Params().Get("id")

	property, err := api.store.PropertyByID(id)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if property == nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(property)
}

func parsePropertyFilters(ctx iris.Context) models.PropertyFilters {
	filters := models.PropertyFilters{
		Category:    strings.TrimSpace(ctx.URLParam("category")),
		SubType:     strings.TrimSpace(ctx.URLParam("subType")),
		Purpose:     strings.TrimSpace(ctx.URLParam("purpose")),
		City:        strings.TrimSpace(ctx.URLParam("city")),
		District:    strings.TrimSpace(ctx.URLParam("district")),
		SearchQuery: strings.TrimSpace(ctx.URLParam("q")),
	}

	if v, err := ctx.URLParamInt("minPrice"); err == nil {
		filters.MinPrice = &v
	}
	if v, err := ctx.URLParamInt("maxPrice"); err == nil {
		filters.MaxPrice = &v
	}
	if v, err := strconv.ParseFloat(ctx.URLParam("minSize"), 64); err == nil {
		filters.MinSize = &v
	}
	if v, err := strconv.ParseFloat(ctx.URLParam("maxSize"), 64); err == nil {
		filters.MaxSize = &v
	}
	if verified, err := ctx.URLParamBool("verified"); err == nil && verified {
		filters.IsVerified = true
	}

	return filters
}
