package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/kataras/iris/v12"

	"github.com/sirdab/marketplace-v03-sub000/models"
)

type authResponse struct {
	ID           uint   `json:"ID"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func registerTestUser(t *testing.T, app *iris.Application, email string) authResponse {
	t.Helper()

	body := jsonBody(t, map[string]string{
		"firstName":   "Fahad",
		"lastName":    "Alotaibi",
		"email":       email,
		"phoneNumber": "+966512345678",
		"password":    "correct horse",
	})
	req := httptest.NewRequest("POST", "/api/user/register", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != 200 {
		t.Fatalf("register status = %d, body %s", resp.Code, resp.Body.String())
	}
	var out authResponse
	decodeBody(t, resp, &out)
	return out
}

func TestRegisterReturnsTokens(t *testing.T) {
	app, store := buildTestApp()

	out := registerTestUser(t, app, "Fahad@Example.com")

	if out.ID == 0 {
		t.Fatal("expected a user ID")
	}
	if out.Email != "fahad@example.com" {
		t.Errorf("email = %q, want lowercased", out.Email)
	}
	if out.Role != "user" {
		t.Errorf("role = %q, want user", out.Role)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Error("expected both tokens in the response")
	}

	stored, err := store.UserByEmail("fahad@example.com")
	if err != nil || stored == nil {
		t.Fatalf("stored user lookup: %v, %v", stored, err)
	}
	if stored.Password == "correct horse" {
		t.Error("password stored in plain text")
	}
	if stored.PhoneNumber != "0512345678" {
		t.Errorf("phone = %q, want normalized local form", stored.PhoneNumber)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := buildTestApp()

	registerTestUser(t, app, "dup@example.com")

	body := jsonBody(t, map[string]string{
		"firstName": "Other",
		"lastName":  "Person",
		"email":     "dup@example.com",
		"password":  "another pass",
	})
	req := httptest.NewRequest("POST", "/api/user/register", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != 409 {
		t.Fatalf("status = %d, want 409", resp.Code)
	}
}

func TestLogin(t *testing.T) {
	app, _ := buildTestApp()
	registerTestUser(t, app, "login@example.com")

	cases := []struct {
		name     string
		email    string
		password string
		want     int
	}{
		{"correct password", "login@example.com", "correct horse", 200},
		{"wrong password", "login@example.com", "wrong horse", 401},
		{"unknown email", "nobody@example.com", "correct horse", 401},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := jsonBody(t, map[string]string{"email": tc.email, "password": tc.password})
			req := httptest.NewRequest("POST", "/api/user/login", body)
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			app.ServeHTTP(resp, req)

			if resp.Code != tc.want {
				t.Fatalf("status = %d, want %d", resp.Code, tc.want)
			}
		})
	}
}

func TestLoginSocialAccount(t *testing.T) {
	app, store := buildTestApp()

	social := models.User{
		FirstName:      "Sara",
		Email:          "sara@example.com",
		SocialLogin:    true,
		SocialProvider: "google",
	}
	if err := store.CreateUser(&social); err != nil {
		t.Fatal(err)
	}

	body := jsonBody(t, map[string]string{"email": "sara@example.com", "password": "whatever8"})
	req := httptest.NewRequest("POST", "/api/user/login", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != 401 {
		t.Fatalf("status = %d, want 401", resp.Code)
	}
}

func TestGetMe(t *testing.T) {
	app, _ := buildTestApp()
	out := registerTestUser(t, app, "me@example.com")

	req := httptest.NewRequest("GET", "/api/user/me", nil)
	req.Header.Set("Authorization", "Bearer "+out.AccessToken)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != 200 {
		t.Fatalf("status = %d, body %s", resp.Code, resp.Body.String())
	}
	var me models.User
	decodeBody(t, resp, &me)
	if me.Email != "me@example.com" {
		t.Errorf("email = %q", me.Email)
	}
	if me.Password != "" {
		t.Error("password hash leaked in response")
	}
}
