package models

import "gorm.io/gorm"

// SavedProperty is a pure (user, property) join. The composite unique index
// keeps one row per pair; the gateways treat saving as idempotent.
type SavedProperty struct {
	gorm.Model
	UserID     uint   `json:"userID" gorm:"not null;uniqueIndex:idx_saved_user_property"`
	PropertyID string `json:"propertyID" gorm:"not null;uniqueIndex:idx_saved_user_property"`
}
