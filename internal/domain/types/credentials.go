package types

// Credentials are the raw login form fields.
type Credentials struct {
	Email    string
	Password string
}

// RegistrationProfile holds the raw fields of the organisation sign-up form.
type RegistrationProfile struct {
	OrgName          string
	PhoneNumber      string
	Email            string
	Password         string
	EmergencyContact string
	Location         string
	WebsiteLink      string
	Latitude         float64
	Longitude        float64
}

// LoginPayload is the JSON body of POST /login/.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationPayload is the JSON body of POST /register/ngo.
type RegistrationPayload struct {
	Name                   string   `json:"name"`
	PhoneNumber            string   `json:"phone_number"`
	Email                  string   `json:"email"`
	Password               string   `json:"password"`
	EmergencyContactNumber string   `json:"emergency_contact_number"`
	AnimalsSupported       []string `json:"animals_supported"`
	Website                string   `json:"website"`
	Address                string   `json:"address"`
	Latitude               float64  `json:"latitude"`
	Longitude              float64  `json:"longitude"`
}

// PlaceholderAddress is submitted as the address until the form collects one.
const PlaceholderAddress = "temp"

// NewRegistrationPayload maps a profile onto the wire payload.
//
// Location is not mapped: the service receives PlaceholderAddress and an
// empty animals list.
func NewRegistrationPayload(p RegistrationProfile) RegistrationPayload {
	return RegistrationPayload{
		Name:                   p.OrgName,
		PhoneNumber:            p.PhoneNumber,
		Email:                  p.Email,
		Password:               p.Password,
		EmergencyContactNumber: p.EmergencyContact,
		AnimalsSupported:       []string{},
		Website:                p.WebsiteLink,
		Address:                PlaceholderAddress,
		Latitude:               p.Latitude,
		Longitude:              p.Longitude,
	}
}
