package routes

import (
	"strconv"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/sirdab/marketplace-v03-sub000/models"
	"github.com/sirdab/marketplace-v03-sub000/utils"
)

// CreateBooking files a booking request. Guests are allowed, same as visits.
func (api *API) CreateBooking(ctx iris.Context) {
	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.RenterPhone != "" && !utils.ValidatePhoneNumber(input.RenterPhone) {
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

	status := models.BookingStatusPending
	if input.Status != "" && models.IsValidBookingStatus(input.Status) {
		status = input.Status
	}

	booking := models.Booking{
		PropertyID:    input.PropertyID,
		UserID:        utils.OptionalUserID(ctx),
		RenterName:    input.RenterName,
		RenterPhone:   utils.NormalizePhoneNumber(input.RenterPhone),
		CompanyName:   input.CompanyName,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Notes:         input.Notes,
		Status:        status,
		PaymentStatus: models.PaymentStatusUnpaid,
	}

	if err := api.store.CreateBooking(&booking); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(booking)
}

// GetMyBookings lists the caller's booking requests.
func (api *API) GetMyBookings(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	bookings, err := api.store.BookingsByUser(userID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bookings)
}

// UpdateBookingStatus moves a booking through its state machine. Only the
// renter who filed it, the listing owner, or an admin may drive it.
func (api *API) UpdateBookingStatus(ctx iris.Context) {
	booking, ok := api.loadBooking(ctx)
	if !ok {
		return
	}

	var input UpdateBookingStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !models.CanTransitionBookingStatus(booking.Status, input.Status) {
		utils.CreateError(iris.StatusBadRequest, "Invalid Transition",
			"Cannot move booking from "+booking.Status+" to "+input.Status+".", ctx)
		return
	}

	booking.Status = input.Status
	if err := api.store.UpdateBooking(booking); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(booking)
}

// UpdateBookingPayment flips the payment axis. It is independent of Status and
// only moves forward: unpaid → paid.
func (api *API) UpdateBookingPayment(ctx iris.Context) {
	booking, ok := api.loadBooking(ctx)
	if !ok {
		return
	}

	var input UpdateBookingPaymentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if booking.PaymentStatus == models.PaymentStatusPaid && input.PaymentStatus == models.PaymentStatusUnpaid {
		utils.CreateError(iris.StatusBadRequest, "Invalid Transition",
			"A paid booking cannot be marked unpaid.", ctx)
		return
	}

	booking.PaymentStatus = input.PaymentStatus
	if err := api.store.UpdateBooking(booking); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(booking)
}

func (api *API) loadBooking(ctx iris.Context) (*models.Booking, bool) {
	id, parseErr := strconv.ParseUint(ctx.Params().Get("id"), 10, 32)
	if parseErr != nil {
		utils.CreateNotFound(ctx)
		return nil, false
	}

	booking, err := api.store.BookingByID(uint(id))
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return nil, false
	}
	if booking == nil {
		utils.CreateNotFound(ctx)
		return nil, false
	}

	allowed, authErr := api.canManageListingRecord(ctx, booking.UserID, booking.PropertyID)
	if authErr != nil {
		utils.CreateInternalServerError(ctx)
		return nil, false
	}
	if !allowed {
		utils.CreateForbidden(ctx)
		return nil, false
	}
	return booking, true
}

type CreateBookingInput struct {
	PropertyID  string     `json:"propertyID" validate:"required"`
	RenterName  string     `json:"renterName" validate:"required,max=256"`
	RenterPhone string     `json:"renterPhone"`
	CompanyName string     `json:"companyName" validate:"max=256"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Notes       string     `json:"notes"`
	Status      string     `json:"status"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed active completed cancelled"`
}

type UpdateBookingPaymentInput struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=unpaid paid"`
}
