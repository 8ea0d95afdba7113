package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirdab/marketplace-v03-sub000/models"
	"github.com/sirdab/marketplace-v03-sub000/utils"
)

func TestCreateAdReplacesInvalidSlug(t *testing.T) {
	app, _ := buildTestApp()

	body := jsonBody(t, CreateAdInput{
		Slug:        "abc", // fails the 21-char constraint
		Title:       "New dry warehouse",
		Description: "2,000 m² dry warehouse.",
		Type:        "Dry Warehouse",
		Price:       "100000",
		PaymentTerm: models.PaymentTermYearly,
		Published:   true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/ads", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(1, "user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var ad models.Ad
	decodeBody(t, resp, &ad)
	if ad.Slug == "abc" {
		t.Error("invalid slug should be replaced, not stored")
	}
	if !utils.IsValidSlug(ad.Slug) {
		t.Errorf("server-generated slug %q fails the constraint", ad.Slug)
	}
	if ad.UserID != 1 {
		t.Errorf("ad owner = %d, want token subject 1", ad.UserID)
	}
}

func TestCreateAdRegeneratesTakenSlug(t *testing.T) {
	app, store := buildTestApp()

	// Valid slug, but it already belongs to the seeded ad.
	body := jsonBody(t, CreateAdInput{
		Slug:        "k3jf92mzpq81xw04nv7ts",
		Title:       "Another warehouse",
		Description: "500 m² unit.",
		Type:        "Dry Warehouse",
		Price:       "60000",
		PaymentTerm: models.PaymentTermYearly,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/ads", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(1, "user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var ad models.Ad
	decodeBody(t, resp, &ad)
	if ad.Slug == "k3jf92mzpq81xw04nv7ts" {
		t.Error("colliding slug should be regenerated, not stored twice")
	}
	if !utils.IsValidSlug(ad.Slug) {
		t.Errorf("regenerated slug %q fails the constraint", ad.Slug)
	}

	stored, _ := store.AdBySlug("k3jf92mzpq81xw04nv7ts")
	if stored == nil || stored.ID != 1 {
		t.Error("original ad no longer resolves by its slug")
	}
}

func TestCreateAdKeepsValidSlugAndSentinels(t *testing.T) {
	app, store := buildTestApp()

	body := jsonBody(t, CreateAdInput{
		Slug:        "q1w2e3r4t5y6u7i8o9p0a",
		Title:       "Warehouse with no address yet",
		Description: "Listing drafted before the site survey.",
		Type:        "Dry Warehouse",
		Price:       "50000",
		PaymentTerm: models.PaymentTermYearly,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/ads", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(1, "user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	created, _ := store.AdBySlug("q1w2e3r4t5y6u7i8o9p0a")
	if created == nil {
		t.Fatal("valid client slug should be kept")
	}
	if created.City != models.SentinelLocation || created.OwnerPhone != models.SentinelPhone {
		t.Errorf("absent location fields should default to sentinels, got city=%q phone=%q",
			created.City, created.OwnerPhone)
	}
}

func TestCreateAdRequiresAuth(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/ads",
		jsonBody(t, CreateAdInput{Title: "x", Price: "1", PaymentTerm: "yearly"}))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code == http.StatusCreated || resp.Code == http.StatusOK {
		t.Fatalf("unauthenticated create should fail, got %d", resp.Code)
	}
}

func TestUpdateAdOwnerOnly(t *testing.T) {
	app, _ := buildTestApp()

	// Fixture ad 1 belongs to user 1; user 2 must be refused.
	title := "Hijacked"
	body := jsonBody(t, UpdateAdInput{Title: &title})
	req := httptest.NewRequest(http.MethodPatch, "/api/ads/1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(2, "user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", resp.Code)
	}
}

func TestUpdateAdPartial(t *testing.T) {
	app, store := buildTestApp()

	title := "Renamed warehouse"
	body := jsonBody(t, UpdateAdInput{Title: &title})
	req := httptest.NewRequest(http.MethodPatch, "/api/ads/1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(1, "user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	ad, _ := store.AdByID(1)
	if ad.Title != "Renamed warehouse" {
		t.Errorf("title not updated: %q", ad.Title)
	}
	if ad.Price != "240000" || !ad.Published {
		t.Errorf("untouched fields changed: price=%q published=%v", ad.Price, ad.Published)
	}
}

func TestDeleteAdIsSoft(t *testing.T) {
	app, store := buildTestApp()

	req := httptest.NewRequest(http.MethodDelete, "/api/ads/1", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(1, "user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	ad, _ := store.AdByID(1)
	if ad == nil {
		t.Fatal("soft delete should keep the row")
	}
	if !ad.Deleted {
		t.Error("deleted flag not set")
	}
}

func TestGetPublicAdHidesDrafts(t *testing.T) {
	app, _ := buildTestApp()

	// Ad 4 is the unpublished fixture draft.
	req := httptest.NewRequest(http.MethodGet, "/api/public/ads/4", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Errorf("draft should 404 on the public surface, got %d", resp.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/api/public/ads/1", nil)
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusOK {
		t.Errorf("published ad should be served, got %d", resp2.Code)
	}
}

func TestGetAdsByRegion(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/public/ads/region/sa/riyadh", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var ads []models.Ad
	decodeBody(t, resp, &ads)
	if len(ads) != 1 {
		t.Fatalf("expected 1 published Riyadh ad, got %d", len(ads))
	}
	if ads[0].ID != 1 {
		t.Errorf("wrong ad: %d", ads[0].ID)
	}
}

func TestGetMyAdsExcludesDeleted(t *testing.T) {
	app, store := buildTestApp()

	ad, _ := store.AdByID(1)
	ad.Deleted = true
	store.UpdateAd(ad)

	req := httptest.NewRequest(http.MethodGet, "/api/my-ads", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(1, "user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	var ads []models.Ad
	decodeBody(t, resp, &ads)
	// User 1 owns fixture ads 1 and 2; 1 is now deleted.
	if len(ads) != 1 || ads[0].ID != 2 {
		t.Errorf("expected only ad 2, got %d ads", len(ads))
	}
}
