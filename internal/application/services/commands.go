package services

import "time"

// LookupCommand is an address lookup as received from a caller. Empty
// fields fall back to LookupDefaults.
type LookupCommand struct {
	Address1           string `validate:"max=200"`
	Address2           string `validate:"max=200"`
	Address3           string `validate:"max=200"`
	Address4           string `validate:"max=200"`
	Address5           string `validate:"max=200"`
	Locality           string `validate:"max=100"`
	AdministrativeArea string `validate:"max=100"`
	PostalCode         string `validate:"max=20"`
	Country            string `validate:"max=100"`
	OutputLanguage     string `validate:"max=20"`
	LicenseKey         string `validate:"max=100"`
	Protocol           string `validate:"omitempty,oneof=rest soap REST SOAP"`
	IsLive             *bool
	Timeout            time.Duration
}

// LookupDefaults fill in what a command leaves out.
type LookupDefaults struct {
	LicenseKey     string
	IsLive         bool
	Protocol       string
	Timeout        time.Duration
	OutputLanguage string
	// MaxTimeout caps the per-attempt timeout a command may ask for. Zero
	// means the package MaxTimeout.
	MaxTimeout time.Duration
}
