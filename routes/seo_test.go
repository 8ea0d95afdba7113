package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRobotsTxt(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "User-agent: *") {
		t.Error("missing user-agent line")
	}
	if !strings.Contains(body, "Sitemap: ") || !strings.Contains(body, "/sitemap.xml") {
		t.Error("missing sitemap pointer")
	}
}

func TestSitemapIndex(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "<sitemapindex") {
		t.Error("response is not a sitemap index")
	}
	if !strings.Contains(body, "/sitemap-0.xml") {
		t.Error("index should point at the urlset file")
	}
}

func TestSitemapURLSet(t *testing.T) {
	app, _ := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/sitemap-0.xml", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()

	if !strings.Contains(body, "<urlset") {
		t.Error("response is not a urlset")
	}
	// City pages and published ads show up; the draft does not.
	if !strings.Contains(body, "/sa/riyadh") {
		t.Error("city page missing from sitemap")
	}
	if !strings.Contains(body, "/ad/k3jf92mzpq81xw04nv7ts") {
		t.Error("published ad missing from sitemap")
	}
	if strings.Contains(body, "m1n2b3v4c5x6z7l8k9j0h") {
		t.Error("unpublished draft leaked into the sitemap")
	}
	// Never-updated rows fall back to their creation date.
	if strings.Contains(body, "0001-01-01") {
		t.Error("zero lastmod leaked into the sitemap")
	}
	if !strings.Contains(body, "<lastmod>2024-01-10</lastmod>") {
		t.Error("expected creation-date lastmod for a never-updated ad")
	}
}
