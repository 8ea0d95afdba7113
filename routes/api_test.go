package routes

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/sirdab/marketplace-v03-sub000/storage"
	"github.com/sirdab/marketplace-v03-sub000/utils"
)

// buildTestApp wires the full route surface against the in-memory gateway,
// mirroring the production router.
func buildTestApp() (*iris.Application, *storage.MemoryGateway) {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	os.Setenv("REFRESH_TOKEN_SECRET", "testrefreshsecret")

	store := storage.NewMemoryGateway()
	api := NewAPI(store)

	app := iris.New()
	app.Validator = validator.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	auth := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	app.Get("/robots.txt", api.RobotsTxt)
	app.Get("/sitemap.xml", api.SitemapIndex)
	app.Get("/sitemap-0.xml", api.Sitemap)

	user := app.Party("/api/user")
	{
		user.Post("/register", api.Register)
		user.Post("/login", api.Login)
		user.Get("/me", auth, utils.UserIDFromTokenMiddleware, api.GetMe)
	}

	properties := app.Party("/api/properties")
	{
		properties.Get("/", api.GetProperties)
		properties.Get("/{id}", api.GetProperty)
	}

	cities := app.Party("/api/cities")
	{
		cities.Get("/", api.GetCities)
	}

	public := app.Party("/api/public")
	{
		public.Get("/ads/{id}", api.GetPublicAd)
		public.Get("/ads/region/{country}/{city}", api.GetAdsByRegion)
	}

	ads := app.Party("/api/ads", auth, utils.UserIDFromTokenMiddleware)
	{
		ads.Post("/", api.CreateAd)
		ads.Get("/{id}", api.GetMyAd)
		ads.Patch("/{id}", api.UpdateAd)
		ads.Delete("/{id}", api.DeleteAd)
		ads.Delete("/{id}/image", api.DeleteAdImage)
	}
	app.Get("/api/my-ads", auth, utils.UserIDFromTokenMiddleware, api.GetMyAds)

	visits := app.Party("/api/visits")
	{
		visits.Post("/", api.CreateVisit)
		visits.Get("/property/{id}", auth, utils.UserIDFromTokenMiddleware, api.GetVisitsForProperty)
		visits.Patch("/{id}/status", auth, utils.UserIDFromTokenMiddleware, api.UpdateVisitStatus)
	}

	bookings := app.Party("/api/bookings")
	{
		bookings.Post("/", api.CreateBooking)
		bookings.Get("/mine", auth, utils.UserIDFromTokenMiddleware, api.GetMyBookings)
		bookings.Patch("/{id}/status", auth, utils.UserIDFromTokenMiddleware, api.UpdateBookingStatus)
		bookings.Patch("/{id}/payment", auth, utils.UserIDFromTokenMiddleware, api.UpdateBookingPayment)
	}

	saved := app.Party("/api/saved-properties", auth, utils.UserIDFromTokenMiddleware)
	{
		saved.Get("/", api.GetSavedProperties)
		saved.Post("/", api.SaveProperty)
		saved.Delete("/{id}", api.UnsaveProperty)
	}

	admin := app.Party("/api/admin", auth, utils.AdminOnlyMiddleware)
	{
		admin.Get("/stats", api.AdminStats)
		admin.Get("/ads", api.AdminListAds)
		admin.Get("/visits", api.AdminListVisits)
		admin.Get("/bookings", api.AdminListBookings)
		admin.Patch("/ads/{id:uint}/verify", api.AdminVerifyAd)
	}

	if err := app.Build(); err != nil {
		panic(err)
	}

	return app, store
}

// signTestToken returns a signed access token for the given user and role.
func signTestToken(id uint, role string) string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, _ := signer.Sign(utils.AccessToken{ID: id, Role: role})
	return string(token)
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	return bytes.NewReader(body)
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
}
