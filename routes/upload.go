package routes

import (
	"strconv"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/sirdab/marketplace-v03-sub000/storage"
	"github.com/sirdab/marketplace-v03-sub000/utils"
)

// UploadImage stores a base64 encoded image and returns its public URL.
func (api *API) UploadImage(ctx iris.Context) {
	var input UploadImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	userID := ctx.Values().Get("userID").(uint)
	publicID := "user_" + strconv.FormatUint(uint64(userID), 10) + "_" + strconv.FormatInt(time.Now().UnixNano(), 36)

	url := storage.UploadBase64Image(input.Image, publicID)
	if url == "" {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"url": url})
}

// DeleteAdImage removes an uploaded image from an owned listing.
func (api *API) DeleteAdImage(ctx iris.Context) {
	var input DeleteImageInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	userID := ctx.Values().Get("userID").(uint)
	ad, ok := api.ownedAd(ctx, userID)
	if !ok {
		return
	}

	images := ad.ImageList()
	remaining := make([]string, 0, len(images))
	found := false
	for _, img := range images {
		if img == input.URL {
			found = true
			continue
		}
		remaining = append(remaining, img)
	}
	if !found {
		utils.CreateNotFound(ctx)
		return
	}

	storage.DeleteImage(input.URL)

	ad.SetImageList(remaining)
	if err := api.store.UpdateAd(ad); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(ad)
}

type UploadImageInput struct {
	Image string `json:"image" validate:"required"`
}

type DeleteImageInput struct {
	URL string `json:"url" validate:"required"`
}
