package api

import (
	"time"

	"github.com/google/uuid"
)

// GetAddressInfoParams defines parameters for GetAddressInfo.
type GetAddressInfoParams struct {
	Address1           *string `form:"Address1,omitempty" json:"Address1,omitempty"`
	Address2           *string `form:"Address2,omitempty" json:"Address2,omitempty"`
	Address3           *string `form:"Address3,omitempty" json:"Address3,omitempty"`
	Address4           *string `form:"Address4,omitempty" json:"Address4,omitempty"`
	Address5           *string `form:"Address5,omitempty" json:"Address5,omitempty"`
	Locality           *string `form:"Locality,omitempty" json:"Locality,omitempty"`
	AdministrativeArea *string `form:"AdministrativeArea,omitempty" json:"AdministrativeArea,omitempty"`
	PostalCode         *string `form:"PostalCode,omitempty" json:"PostalCode,omitempty"`
	Country            *string `form:"Country,omitempty" json:"Country,omitempty"`
	OutputLanguage     *string `form:"OutputLanguage,omitempty" json:"OutputLanguage,omitempty"`
	LicenseKey         *string `form:"LicenseKey,omitempty" json:"LicenseKey,omitempty"`
	Protocol           *string `form:"protocol,omitempty" json:"protocol,omitempty"`
	IsLive             *bool   `form:"is_live,omitempty" json:"is_live,omitempty"`
	TimeoutSeconds     *int    `form:"timeout_seconds,omitempty" json:"timeout_seconds,omitempty"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// InformationComponent defines model for InformationComponent.
type InformationComponent struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// AddressInfo defines model for AddressInfo.
type AddressInfo struct {
	Status                string                 `json:"Status"`
	ResolutionLevel       string                 `json:"ResolutionLevel"`
	Address1              string                 `json:"Address1"`
	Address2              string                 `json:"Address2"`
	Address3              string                 `json:"Address3"`
	Address4              string                 `json:"Address4"`
	Address5              string                 `json:"Address5"`
	Address6              string                 `json:"Address6"`
	Address7              string                 `json:"Address7"`
	Address8              string                 `json:"Address8"`
	Locality              string                 `json:"Locality"`
	AdministrativeArea    string                 `json:"AdministrativeArea"`
	PostalCode            string                 `json:"PostalCode"`
	Country               string                 `json:"Country"`
	CountryISO2           string                 `json:"CountryISO2"`
	CountryISO3           string                 `json:"CountryISO3"`
	InformationComponents []InformationComponent `json:"InformationComponents"`
}

// ErrorInfo defines model for ErrorInfo.
type ErrorInfo struct {
	Type     string `json:"Type"`
	TypeCode string `json:"TypeCode"`
	Desc     string `json:"Desc"`
	DescCode string `json:"DescCode"`
}

// Lookup defines model for Lookup.
type Lookup struct {
	RequestId      uuid.UUID    `json:"request_id"`
	Protocol       string       `json:"protocol"`
	Endpoint       string       `json:"endpoint"`
	Attempts       int          `json:"attempts"`
	FallbackReason string       `json:"fallback_reason,omitempty"`
	AddressInfo    *AddressInfo `json:"AddressInfo,omitempty"`
	Error          *ErrorInfo   `json:"Error,omitempty"`
}

// LookupResponse defines model for LookupResponse.
type LookupResponse struct {
	Success bool   `json:"success"`
	Data    Lookup `json:"data"`
}

// LookupAudit defines model for LookupAudit.
type LookupAudit struct {
	Id             uuid.UUID `json:"id"`
	Protocol       string    `json:"protocol"`
	IsLive         bool      `json:"is_live"`
	Country        string    `json:"country,omitempty"`
	Endpoint       string    `json:"endpoint,omitempty"`
	Attempts       int       `json:"attempts"`
	FallbackReason string    `json:"fallback_reason,omitempty"`
	Outcome        string    `json:"outcome"`
	Status         string    `json:"status,omitempty"`
	TypeCode       string    `json:"type_code,omitempty"`
	ErrorCategory  string    `json:"error_category,omitempty"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	DurationMs     int64     `json:"duration_ms"`
	CreatedAt      time.Time `json:"created_at"`
}

// LookupAuditResponse defines model for LookupAuditResponse.
type LookupAuditResponse struct {
	Success bool        `json:"success"`
	Data    LookupAudit `json:"data"`
}
