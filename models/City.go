package models

import "gorm.io/gorm"

// City is a read-only reference row. Slugs appear in region URLs and the
// sitemap.
type City struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	NameAr  string `json:"nameAr"`
	Slug    string `json:"slug" gorm:"uniqueIndex;not null"`
	Country string `json:"country" gorm:"default:'sa'"`
}
