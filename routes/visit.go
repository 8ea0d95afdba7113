package routes

import (
	"strconv"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/sirdab/marketplace-v03-sub000/models"
	"github.com/sirdab/marketplace-v03-sub000/utils"
)

// CreateVisit schedules a property visit. Guests are allowed: the user id is
// attached only when the request carries a valid access token.
func (api *API) CreateVisit(ctx iris.Context) {
	var input CreateVisitInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.VisitorPhone != "" && !utils.ValidatePhoneNumber(input.VisitorPhone) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"Invalid phone number format.", ctx)
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

	// New visits start pending unless the caller explicitly asks for another
	// valid status.
	status := models.VisitStatusPending
	if input.Status != "" && models.IsValidVisitStatus(input.Status) {
		status = input.Status
	}

	visit := models.Visit{
		PropertyID:   input.PropertyID,
		UserID:       utils.OptionalUserID(ctx),
		VisitorName:  input.VisitorName,
		VisitorPhone: utils.NormalizePhoneNumber(input.VisitorPhone),
		VisitDate:    input.VisitDate,
		VisitTime:    input.VisitTime,
		Notes:        input.Notes,
		Status:       status,
	}

	if err := api.store.CreateVisit(&visit); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(visit)
}

// GetVisitsForProperty lists visits for one of the caller's listings.
func (api *API) GetVisitsForProperty(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)
	propertyID := ctx.Params().Get("id")

	ad, err := api.store.AdBySlug(propertyID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if ad == nil {
		utils.CreateNotFound(ctx)
		return
	}
	if ad.UserID != userID {
		utils.CreateForbidden(ctx)
		return
	}

	visits, err := api.store.VisitsByProperty(propertyID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(visits)
}

// UpdateVisitStatus moves a visit through its state machine. Only the visitor
// who filed it, the listing owner, or an admin may drive it. Invalid
// transitions are rejected with a 400.
func (api *API) UpdateVisitStatus(ctx iris.Context) {
	id, parseErr := strconv.ParseUint(ctx.Params().Get("id"), 10, 32)
	if parseErr != nil {
		utils.CreateNotFound(ctx)
		return
	}

	visit, err := api.store.VisitByID(uint(id))
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if visit == nil {
		utils.CreateNotFound(ctx)
		return
	}

	allowed, authErr := api.canManageListingRecord(ctx, visit.UserID, visit.PropertyID)
	if authErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if !allowed {
		utils.CreateForbidden(ctx)
		return
	}

	var input UpdateVisitStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !models.CanTransitionVisitStatus(visit.Status, input.Status) {
		utils.CreateError(iris.StatusBadRequest, "Invalid Transition",
			"Cannot move visit from "+visit.Status+" to "+input.Status+".", ctx)
		return
	}

	visit.Status = input.Status
	if err := api.store.UpdateVisit(visit); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(visit)
}

type CreateVisitInput struct {
	PropertyID   string    `json:"propertyID" validate:"required"`
	VisitorName  string    `json:"visitorName" validate:"required,max=256"`
	VisitorPhone string    `json:"visitorPhone"`
	VisitDate    time.Time `json:"visitDate" validate:"required"`
	VisitTime    string    `json:"visitTime"`
	Notes        string    `json:"notes"`
	Status       string    `json:"status"`
}

type UpdateVisitStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
