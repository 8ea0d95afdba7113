package routes

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/sirdab/marketplace-v03-sub000/storage"
	"github.com/sirdab/marketplace-v03-sub000/utils"
)

// API bundles the route handlers around an injected storage gateway so tests
// can run the full HTTP surface against the in-memory backend.
type API struct {
	store storage.Gateway
}

func NewAPI(store storage.Gateway) *API {
	return &API{store: store}
}

func callerRole(ctx iris.Context) string {
	claims := jwt.Get(ctx).(*utils.AccessToken)
	return claims.Role
}

// canManageListingRecord reports whether the caller may act on a visit or
// booking filed against the given property: an admin, the user who filed the
// record, or the owner of the listing.
func (api *API) canManageListingRecord(ctx iris.Context, recordUserID *uint, propertyID string) (bool, error) {
	if callerRole(ctx) == "admin" {
		return true, nil
	}

	userID := ctx.Values().Get("userID").(uint)
	if recordUserID != nil && *recordUserID == userID {
		return true, nil
	}

	ad, err := api.store.AdBySlug(propertyID)
	if err != nil {
		return false, err
	}
	return ad != nil && ad.UserID == userID, nil
}
