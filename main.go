package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/sirdab/marketplace-v03-sub000/routes"
	"github.com/sirdab/marketplace-v03-sub000/storage"
	"github.com/sirdab/marketplace-v03-sub000/utils"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	db := storage.InitializeDB()
	storage.InitializeRedis()
	storage.InitializeCloudinary()

	api := routes.NewAPI(storage.NewDatabaseGateway(db))

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	// SEO artifacts served at the root, outside /api
	app.Get("/robots.txt", api.RobotsTxt)
	app.Get("/sitemap.xml", api.SitemapIndex)
	app.Get("/sitemap-0.xml", api.Sitemap)

	user := app.Party("/api/user")
	{
		user.Post("/register", api.Register)
		user.Post("/login", api.Login)
		user.Post("/google", api.GoogleLoginOrSignUp)
		user.Post("/apple", api.AppleLoginOrSignUp)
		user.Get("/me", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, api.GetMe)
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

	ads := app.Party("/api/ads", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		ads.Post("/", api.CreateAd)
		ads.Get("/{id}", api.GetMyAd)
		ads.Patch("/{id}", api.UpdateAd)
		ads.Delete("/{id}", api.DeleteAd)
		ads.Delete("/{id}/image", api.DeleteAdImage)
	}
	app.Get("/api/my-ads", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, api.GetMyAds)

	// Visit and booking creation stays open so site visitors can request
	// a tour or a lease without an account.
	visits := app.Party("/api/visits")
	{
		visits.Post("/", api.CreateVisit)
		visits.Get("/property/{id}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, api.GetVisitsForProperty)
		visits.Patch("/{id}/status", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, api.UpdateVisitStatus)
	}

	bookings := app.Party("/api/bookings")
	{
		bookings.Post("/", api.CreateBooking)
		bookings.Get("/mine", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, api.GetMyBookings)
		bookings.Patch("/{id}/status", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, api.UpdateBookingStatus)
		bookings.Patch("/{id}/payment", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, api.UpdateBookingPayment)
	}

	saved := app.Party("/api/saved-properties", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		saved.Get("/", api.GetSavedProperties)
		saved.Post("/", api.SaveProperty)
		saved.Delete("/{id}", api.UnsaveProperty)
	}

	upload := app.Party("/api/upload", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		upload.Post("/", api.UploadImage)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/stats", api.AdminStats)
		admin.Get("/ads", api.AdminListAds)
		admin.Get("/visits", api.AdminListVisits)
		admin.Get("/bookings", api.AdminListBookings)
		admin.Patch("/ads/{id:uint}/verify", api.AdminVerifyAd)
	}

	app.Post("/api/refresh", refreshTokenVerifierMiddleware, api.RefreshToken)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
