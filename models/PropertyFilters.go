package models

import (
	"sort"
	"strings"

	"golang.org/x/exp/slices"
)

// Sort keys accepted by the browse endpoints.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortSize      = "size"
)

var sortKeys = []string{SortNewest, SortPriceLow, SortPriceHigh, SortSize}

// IsValidSortKey reports whether key is one of the accepted sort keys.
func IsValidSortKey(key string) bool {
	return slices.Contains(sortKeys, key)
}

// PropertyFilters holds the optional criteria for a browse query. All set
// criteria must match (AND); zero values mean "not filtered".
type PropertyFilters struct {
	Category    string
	SubType     string
	Purpose     string
	City        string
	District    string
	MinPrice    *int
	MaxPrice    *int
	MinSize     *float64
	MaxSize     *float64
	IsVerified  bool
	SearchQuery string
}

// Matches reports whether p satisfies every set criterion. Price bounds are
// applied against AnnualPrice so that listings with different payment terms
// compare on a common basis.
func (f PropertyFilters) Matches(p *Property) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.SubType != "" && p.SubType != f.SubType {
		return false
	}
	if f.Purpose != "" && p.Purpose != f.Purpose {
		return false
	}
	if f.City != "" && !strings.EqualFold(p.City, f.City) {
		return false
	}
	if f.District != "" && !strings.EqualFold(p.District, f.District) {
		return false
	}
	if f.MinPrice != nil && p.AnnualPrice < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.AnnualPrice > *f.MaxPrice {
		return false
	}
	if f.MinSize != nil && p.Size < *f.MinSize {
		return false
	}
	if f.MaxSize != nil && p.Size > *f.MaxSize {
		return false
	}
	if f.IsVerified && !p.IsVerified {
		return false
	}
	if f.SearchQuery != "" && !matchesSearchQuery(p, f.SearchQuery) {
		return false
	}
	return true
}

func matchesSearchQuery(p *Property, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{p.Title, p.Description, p.Location, p.City, p.District} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// FilterProperties returns the subset of properties matching f, preserving
// input order.
func FilterProperties(properties []Property, f PropertyFilters) []Property {
	filtered := []Property{}
	for i := range properties {
		if f.Matches(&properties[i]) {
			filtered = append(filtered, properties[i])
		}
	}
	return filtered
}

// SortProperties orders properties in place by the given key. Unknown keys and
// "newest" keep insertion order. The sort is stable, so ties preserve the
// filtered order.
func SortProperties(properties []Property, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].Price < properties[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].Price > properties[j].Price
		})
	case SortSize:
		sort.SliceStable(properties, func(i, j int) bool {
			return properties[i].Size > properties[j].Size
		})
	}
}

// Paginate slices a 1-indexed page of the given size out of properties.
// Out-of-range pages yield an empty slice.
func Paginate(properties []Property, page, pageSize int) []Property {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 12
	}
	start := (page - 1) * pageSize
	if start >= len(properties) {
		return []Property{}
	}
	end := start + pageSize
	if end > len(properties) {
		end = len(properties)
	}
	return properties[start:end]
}
