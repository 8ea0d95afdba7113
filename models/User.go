package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email" gorm:"uniqueIndex"`
	PhoneNumber    string `json:"phoneNumber"`
	Password       string `json:"password"`
	SocialLogin    bool   `json:"socialLogin"`
	SocialProvider string `json:"socialProvider"`
	AvatarURL      string `json:"avatarURL"`
	CompanyName    string `json:"companyName"`
	Role           string `json:"role" gorm:"type:varchar(20);default:user;index"` // user, landlord, admin

	Ads []Ad `json:"ads" gorm:"foreignKey:UserID;references:ID"`
}

// MarshalJSON hides the password hash on the wire.
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		Password string `json:"password,omitempty"`
		*Alias
	}{
		Alias: (*Alias)(u),
	}
	aux.Password = ""
	return json.Marshal(aux)
}
