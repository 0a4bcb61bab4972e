// Package models holds the wire types exchanged with the Genfit backend.
package models

import "strconv"

// UserInformation is the onboarding record attached to a user.
// Height is in centimetres, Weight in kilograms, DOB in Unix seconds.
type UserInformation struct {
	ID       int     `json:"id,omitempty"`
	FullName string  `json:"full_name"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Age      int     `json:"age,omitempty"`
	DOB      int64   `json:"dob,omitempty"`
	Gender   string  `json:"gender,omitempty"`
}

// User is the record returned by GET /users/me?populate=user_information.
type User struct {
	ID              int              `json:"id"`
	Username        string           `json:"username"`
	Email           string           `json:"email"`
	PhoneNumber     string           `json:"phone_number,omitempty"`
	UserInformation *UserInformation `json:"user_information"`
}

// IDString formats the numeric id the way the local store keeps it.
func (u User) IDString() string {
	if u.ID == 0 {
		return ""
	}
	return strconv.Itoa(u.ID)
}

// DisplayName prefers the onboarding full name over the account username.
func (u User) DisplayName() string {
	if u.UserInformation != nil && u.UserInformation.FullName != "" {
		return u.UserInformation.FullName
	}
	return u.Username
}
