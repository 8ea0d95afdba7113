package models

import "testing"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func testProperties() []Property {
	return []Property{
		{ID: "p1", Title: "Dry warehouse near Exit 18", City: "Riyadh", District: "Al Sulay",
			Category: CategoryWarehouse, AnnualPrice: 240000, Price: 240000, Size: 3000, IsVerified: true},
		{ID: "p2", Title: "Auto workshop", City: "Jeddah", District: "Al Mahjar",
			Category: CategoryWorkshop, AnnualPrice: 90000, Price: 7500, Size: 450},
		{ID: "p3", Title: "Cold storage units", City: "Dammam", District: "Port Road",
			Category: CategoryStorage, AnnualPrice: 365000, Price: 1000, Size: 50},
		{ID: "p4", Title: "Corner storefront", Description: "On Tahlia street", City: "Riyadh",
			District: "Al Olaya", Category: CategoryStorefront, AnnualPrice: 180000, Price: 180000, Size: 220},
	}
}

func filteredIDs(f PropertyFilters) []string {
	ids := []string{}
	for _, p := range FilterProperties(testProperties(), f) {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterPropertiesPriceBounds(t *testing.T) {
	// Price bounds compare against the annual price, not the displayed one.
	ids := filteredIDs(PropertyFilters{MinPrice: intPtr(100000), MaxPrice: intPtr(300000)})
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p4" {
		t.Errorf("price bounds matched %v, want [p1 p4]", ids)
	}
}

func TestFilterPropertiesCityCaseInsensitive(t *testing.T) {
	ids := filteredIDs(PropertyFilters{City: "riyadh"})
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p4" {
		t.Errorf("city filter matched %v, want [p1 p4]", ids)
	}
}

func TestFilterPropertiesVerifiedOnlyWhenTrue(t *testing.T) {
	if ids := filteredIDs(PropertyFilters{IsVerified: true}); len(ids) != 1 || ids[0] != "p1" {
		t.Errorf("verified filter matched %v, want [p1]", ids)
	}
	// False means "not filtered", not "unverified only".
	if ids := filteredIDs(PropertyFilters{}); len(ids) != 4 {
		t.Errorf("zero filter should match everything, matched %v", ids)
	}
}

func TestFilterPropertiesSearchQuery(t *testing.T) {
	if ids := filteredIDs(PropertyFilters{SearchQuery: "jeddah"}); len(ids) != 1 || ids[0] != "p2" {
		t.Errorf("search over city matched %v, want [p2]", ids)
	}
	if ids := filteredIDs(PropertyFilters{SearchQuery: "tahlia"}); len(ids) != 1 || ids[0] != "p4" {
		t.Errorf("search over description matched %v, want [p4]", ids)
	}
	if ids := filteredIDs(PropertyFilters{SearchQuery: "no-such-term"}); len(ids) != 0 {
		t.Errorf("miss should match nothing, matched %v", ids)
	}
}

func TestFilterPropertiesConjunctive(t *testing.T) {
	ids := filteredIDs(PropertyFilters{City: "Riyadh", Category: CategoryStorefront})
	if len(ids) != 1 || ids[0] != "p4" {
		t.Errorf("combined filters matched %v, want [p4]", ids)
	}
}

func TestFilterPropertiesSizeBounds(t *testing.T) {
	ids := filteredIDs(PropertyFilters{MinSize: floatPtr(200), MaxSize: floatPtr(500)})
	if len(ids) != 2 || ids[0] != "p2" || ids[1] != "p4" {
		t.Errorf("size bounds matched %v, want [p2 p4]", ids)
	}
}

func TestSortProperties(t *testing.T) {
	props := testProperties()
	SortProperties(props, SortPriceLow)
	if props[0].ID != "p3" || props[3].ID != "p1" {
		t.Errorf("price-low order wrong: %s .. %s", props[0].ID, props[3].ID)
	}

	props = testProperties()
	SortProperties(props, SortPriceHigh)
	if props[0].ID != "p1" {
		t.Errorf("price-high should start with p1, got %s", props[0].ID)
	}

	props = testProperties()
	SortProperties(props, SortSize)
	if props[0].ID != "p1" || props[3].ID != "p3" {
		t.Errorf("size order wrong: %s .. %s", props[0].ID, props[3].ID)
	}

	// Unknown keys and newest keep the input order.
	props = testProperties()
	SortProperties(props, "bogus")
	if props[0].ID != "p1" || props[1].ID != "p2" {
		t.Errorf("unknown sort key should keep order, got %s, %s", props[0].ID, props[1].ID)
	}
}

func TestIsValidSortKey(t *testing.T) {
	for _, key := range []string{SortNewest, SortPriceLow, SortPriceHigh, SortSize} {
		if !IsValidSortKey(key) {
			t.Errorf("%q should be valid", key)
		}
	}
	if IsValidSortKey("oldest") || IsValidSortKey("") {
		t.Error("unknown keys should be invalid")
	}
}

func TestPaginate(t *testing.T) {
	props := testProperties()

	page1 := Paginate(props, 1, 3)
	if len(page1) != 3 || page1[0].ID != "p1" {
		t.Errorf("page 1: got %d items starting %s", len(page1), page1[0].ID)
	}

	page2 := Paginate(props, 2, 3)
	if len(page2) != 1 || page2[0].ID != "p4" {
		t.Errorf("page 2 should hold the remainder, got %d items", len(page2))
	}

	if out := Paginate(props, 5, 3); len(out) != 0 {
		t.Errorf("out-of-range page should be empty, got %d items", len(out))
	}

	// Page 0 and negative pages clamp to the first page.
	if out := Paginate(props, 0, 3); len(out) != 3 || out[0].ID != "p1" {
		t.Errorf("page 0 should clamp to page 1")
	}
}
