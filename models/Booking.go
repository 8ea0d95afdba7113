package models

import (
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Booking statuses follow the visit shape with an extra active state between
// confirmed and completed.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusActive    = "active"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment status is an independent axis, not a sub-state of Status. It is a
// placeholder field: no payment processing happens in this system.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

var bookingTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusActive, BookingStatusCancelled},
	BookingStatusActive:    {BookingStatusCompleted},
}

type Booking struct {
	gorm.Model
	PropertyID    string     `json:"propertyID" gorm:"index;not null"`
	UserID        *uint      `json:"userID" gorm:"index"` // nil for guest bookings
	RenterName    string     `json:"renterName"`
	RenterPhone   string     `json:"renterPhone"`
	CompanyName   string     `json:"companyName"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Notes         string     `json:"notes" gorm:"type:text"`
	Status        string     `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	PaymentStatus string     `json:"paymentStatus" gorm:"type:varchar(20);default:'unpaid'"`
}

func CanTransitionBookingStatus(from, to string) bool {
	return slices.Contains(bookingTransitions[from], to)
}

func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusActive,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}
