package routes

import (
	"github.com/kataras/iris/v12"

	"github.com/sirdab/marketplace-v03-sub000/utils"
)

// GetCities returns the reference city list used by search forms and region
// pages.
func (api *API) GetCities(ctx iris.Context) {
	cities, err := api.store.Cities()
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(cities)
}
