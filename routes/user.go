package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"
	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"

	"github.com/sirdab/marketplace-v03-sub000/models"
	"github.com/sirdab/marketplace-v03-sub000/utils"
)

func (api *API) Register(ctx iris.Context) {
	var userInput RegisterUserInput
	if err := ctx.ReadJSON(&userInput); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	existing, err := api.store.UserByEmail(userInput.Email)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if existing != nil {
		utils.CreateEmailAlreadyRegistered(ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser := models.User{
		FirstName:   userInput.FirstName,
		LastName:    userInput.LastName,
		Email:       strings.ToLower(userInput.Email),
		PhoneNumber: utils.NormalizePhoneNumber(userInput.PhoneNumber),
		CompanyName: userInput.CompanyName,
		Password:    hashedPassword,
		SocialLogin: false,
		Role:        "user",
	}
	if err := api.store.CreateUser(&newUser); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	api.returnUser(&newUser, ctx)
}

func (api *API) Login(ctx iris.Context) {
	var userInput LoginUserInput
	if err := ctx.ReadJSON(&userInput); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	errorMsg := "Invalid email or password."
	user, err := api.store.UserByEmail(userInput.Email)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if user == nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	if user.SocialLogin {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Social Login Account", ctx)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(userInput.Password)) != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	api.returnUser(user, ctx)
}

// GoogleLoginOrSignUp delegates identity to Google: the access token is
// exchanged for the profile, and an account is created on first sight.
func (api *API) GoogleLoginOrSignUp(ctx iris.Context) {
	var userInput SocialLoginInput
	if err := ctx.ReadJSON(&userInput); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	req, _ := http.NewRequest("GET", "https://www.googleapis.com/userinfo/v2/me", nil)
	req.Header.Set("Authorization", "Bearer "+userInput.AccessToken)
	res, googleErr := http.DefaultClient.Do(req)
	if googleErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	defer res.Body.Close()

	body, bodyErr := io.ReadAll(res.Body)
	if bodyErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var googleBody GoogleUserRes
	json.Unmarshal(body, &googleBody)
	if googleBody.Email == "" {
		utils.CreateError(iris.StatusUnauthorized, "Unauthorized", "Invalid access token.", ctx)
		return
	}

	api.socialLoginOrSignUp(ctx, googleBody.Email, googleBody.GivenName, googleBody.FamilyName, "Google")
}

// AppleLoginOrSignUp verifies the identity token against Apple's JWKS.
func (api *API) AppleLoginOrSignUp(ctx iris.Context) {
	var userInput AppleUserInput
	if err := ctx.ReadJSON(&userInput); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	res, httpErr := http.Get("https://appleid.apple.com/auth/keys")
	if httpErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	defer res.Body.Close()

	body, bodyErr := io.ReadAll(res.Body)
	if bodyErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	jwks, jwksErr := keyfunc.NewJSON(body)
	if jwksErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	token, tokenErr := jwt.Parse(userInput.IdentityToken, jwks.Keyfunc)
	if tokenErr != nil || !token.Valid {
		utils.CreateError(iris.StatusUnauthorized, "Unauthorized", "Invalid user token.", ctx)
		return
	}

	email := fmt.Sprint(token.Claims.(jwt.MapClaims)["email"])
	if email == "" || email == "<nil>" {
		utils.CreateError(iris.StatusUnauthorized, "Unauthorized", "Invalid user token.", ctx)
		return
	}

	api.socialLoginOrSignUp(ctx, email, "", "", "Apple")
}

// RefreshToken rotates a verified refresh token into a new pair.
func (api *API) RefreshToken(ctx iris.Context) {
	userID, ok := utils.RefreshTokenUserID(ctx)
	if !ok {
		utils.CreateError(iris.StatusForbidden, "Forbidden", "Refresh token expired or revoked.", ctx)
		return
	}

	user, err := api.store.UserByID(userID)
	if err != nil || user == nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	tokenPair, tokenErr := utils.CreateTokenPair(user.ID, user.Role)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}

// GetMe returns the authenticated profile.
func (api *API) GetMe(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	user, err := api.store.UserByID(userID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if user == nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(user)
}

func (api *API) socialLoginOrSignUp(ctx iris.Context, email, firstName, lastName, provider string) {
	user, err := api.store.UserByEmail(email)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if user == nil {
		newUser := models.User{
			FirstName:      firstName,
			LastName:       lastName,
			Email:          strings.ToLower(email),
			SocialLogin:    true,
			SocialProvider: provider,
			Role:           "user",
		}
		if err := api.store.CreateUser(&newUser); err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		api.returnUser(&newUser, ctx)
		return
	}

	if user.SocialLogin && user.SocialProvider == provider {
		api.returnUser(user, ctx)
		return
	}

	utils.CreateEmailAlreadyRegistered(ctx)
}

func (api *API) returnUser(user *models.User, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(user.ID, user.Role)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"ID":           user.ID,
		"firstName":    user.FirstName,
		"lastName":     user.LastName,
		"email":        user.Email,
		"role":         user.Role,
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}

func hashAndSaltPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

type RegisterUserInput struct {
	FirstName   string `json:"firstName" validate:"required,max=256"`
	LastName    string `json:"lastName" validate:"required,max=256"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	CompanyName string `json:"companyName" validate:"max=256"`
	Password    string `json:"password" validate:"required,min=8,max=256"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SocialLoginInput struct {
	AccessToken string `json:"accessToken" validate:"required"`
}

type AppleUserInput struct {
	IdentityToken string `json:"identityToken" validate:"required"`
}

type GoogleUserRes struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}
