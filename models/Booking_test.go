package models

import "testing"

func TestBookingTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusActive, false},
		{BookingStatusConfirmed, BookingStatusActive, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusCompleted, false},
		{BookingStatusActive, BookingStatusCompleted, true},
		{BookingStatusActive, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusActive, false},
		{BookingStatusCancelled, BookingStatusPending, false},
	}

	for _, c := range cases {
		if got := CanTransitionBookingStatus(c.from, c.to); got != c.allowed {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.allowed)
		}
	}
}

func TestIsValidBookingStatus(t *testing.T) {
	for _, s := range []string{BookingStatusPending, BookingStatusConfirmed, BookingStatusActive,
		BookingStatusCompleted, BookingStatusCancelled} {
		if !IsValidBookingStatus(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	if IsValidBookingStatus("paid") {
		t.Error("payment statuses are a separate axis, not booking statuses")
	}
}
