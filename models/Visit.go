package models

import (
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Visit statuses. pending → confirmed → completed, with cancelled reachable
// from pending or confirmed as an absorbing terminal.
const (
	VisitStatusPending   = "pending"
	VisitStatusConfirmed = "confirmed"
	VisitStatusCompleted = "completed"
	VisitStatusCancelled = "cancelled"
)

var visitTransitions = map[string][]string{
	VisitStatusPending:   {VisitStatusConfirmed, VisitStatusCancelled},
	VisitStatusConfirmed: {VisitStatusCompleted, VisitStatusCancelled},
}

type Visit struct {
	gorm.Model
	PropertyID   string    `json:"propertyID" gorm:"index;not null"`
	UserID       *uint     `json:"userID" gorm:"index"` // nil for guest visits
	VisitorName  string    `json:"visitorName"`
	VisitorPhone string    `json:"visitorPhone"`
	VisitDate    time.Time `json:"visitDate"`
	VisitTime    string    `json:"visitTime" gorm:"type:varchar(10)"`
	Notes        string    `json:"notes" gorm:"type:text"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'pending';index"`
}

// CanTransitionVisitStatus reports whether a visit may move from one status to
// another. Terminal statuses allow no further moves.
func CanTransitionVisitStatus(from, to string) bool {
	return slices.Contains(visitTransitions[from], to)
}

// IsValidVisitStatus reports whether s is a known visit status.
func IsValidVisitStatus(s string) bool {
	switch s {
	case VisitStatusPending, VisitStatusConfirmed, VisitStatusCompleted, VisitStatusCancelled:
		return true
	}
	return false
}
