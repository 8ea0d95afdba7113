package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirdab/marketplace-v03-sub000/models"
)

func TestSavePropertyIdempotent(t *testing.T) {
	app, store := buildTestApp()

	body := jsonBody(t, SavePropertyInput{PropertyID: "fxwh001riyadhsulay000"})
	req := httptest.NewRequest(http.MethodPost, "/api/saved-properties", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(7, "user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	body2 := jsonBody(t, SavePropertyInput{PropertyID: "fxwh001riyadhsulay000"})
	req2 := httptest.NewRequest(http.MethodPost, "/api/saved-properties", body2)
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("Authorization", "Bearer "+signTestToken(7, "user"))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)

	if resp2.Code != http.StatusCreated {
		t.Fatalf("repeat save should still 201, got %d", resp2.Code)
	}

	saved, _ := store.SavedProperties(7)
	if len(saved) != 1 {
		t.Errorf("repeat save created %d rows, want 1", len(saved))
	}
}

func TestSavePropertyUnknownListing(t *testing.T) {
	app, _ := buildTestApp()

	body := jsonBody(t, SavePropertyInput{PropertyID: "doesnotexist000000000"})
	req := httptest.NewRequest(http.MethodPost, "/api/saved-properties", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(7, "user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Errorf("saving an unknown listing should 404, got %d", resp.Code)
	}
}

func TestUnsaveProperty(t *testing.T) {
	app, store := buildTestApp()
	store.SaveProperty(7, "fxwh001riyadhsulay000")

	req := httptest.NewRequest(http.MethodDelete, "/api/saved-properties/fxwh001riyadhsulay000", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(7, "user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	req2 := httptest.NewRequest(http.MethodDelete, "/api/saved-properties/fxwh001riyadhsulay000", nil)
	req2.Header.Set("Authorization", "Bearer "+signTestToken(7, "user"))
	resp2 := httptest.NewRecorder()
	app.ServeHTTP(resp2, req2)
	if resp2.Code != http.StatusNotFound {
		t.Errorf("second unsave should 404, got %d", resp2.Code)
	}
}

func TestGetSavedPropertiesResolvesViews(t *testing.T) {
	app, store := buildTestApp()

	store.SaveProperty(7, "fxwh001riyadhsulay000")
	store.SaveProperty(7, "k3jf92mzpq81xw04nv7ts")
	// A listing that later went offline drops out of the response.
	store.SaveProperty(7, "goneforever0000000000")

	req := httptest.NewRequest(http.MethodGet, "/api/saved-properties", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(7, "user"))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var properties []models.Property
	decodeBody(t, resp, &properties)
	if len(properties) != 2 {
		t.Fatalf("expected 2 resolvable listings, got %d", len(properties))
	}
}
