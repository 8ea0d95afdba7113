package utils

import (
	"os"
	"strings"

	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// UserIDFromTokenMiddleware extracts the user ID from the verified JWT and
// stores it in the request context for downstream handlers.
func UserIDFromTokenMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// AdminOnlyMiddleware ensures the requester has the admin role.
func AdminOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != "admin" {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "admin access required"})
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

type optionalClaims struct {
	ID   uint   `json:"ID"`
	Role string `json:"role"`
	jwtv4.RegisteredClaims
}

// OptionalUserID returns the caller's user id when the request carries a valid
// access token, and nil otherwise. Guest endpoints (visits, bookings) use it
// to attach the user without requiring authentication.
func OptionalUserID(ctx iris.Context) *uint {
	header := ctx.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := &optionalClaims{}
	token, err := jwtv4.ParseWithClaims(raw, claims, func(t *jwtv4.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv4.SigningMethodHMAC); !ok {
			return nil, jwtv4.ErrSignatureInvalid
		}
		return []byte(os.Getenv("ACCESS_TOKEN_SECRET")), nil
	})
	if err != nil || !token.Valid || claims.ID == 0 {
		return nil
	}
	id := claims.ID
	return &id
}
