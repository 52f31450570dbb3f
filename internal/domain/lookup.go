package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultOutputLanguage = "ENGLISH"
	DefaultTimeout        = 15 * time.Second

	// FatalTypeCode marks a response the producing endpoint could not serve.
	FatalTypeCode = "3"
)

type Protocol string

const (
	ProtocolREST Protocol = "rest"
	ProtocolSOAP Protocol = "soap"
)

func ParseProtocol(s string) (Protocol, error) {
	switch Protocol(strings.ToLower(strings.TrimSpace(s))) {
	case ProtocolREST:
		return ProtocolREST, nil
	case ProtocolSOAP:
		return ProtocolSOAP, nil
	}
	return "", NewInvalidFieldError("protocol", fmt.Sprintf("unsupported protocol %q", s))
}

// LookupRequest is one GetAddressInfo call. It is passed by value and never
// mutated once built.
type LookupRequest struct {
	Address1           string
	Address2           string
	Address3           string
	Address4           string
	Address5           string
	Locality           string
	AdministrativeArea string
	PostalCode         string
	Country            string
	OutputLanguage     string
	LicenseKey         string
	IsLive             bool
	Timeout            time.Duration
}

// WithDefaults returns a copy with the output language and timeout filled in.
func (r LookupRequest) WithDefaults() LookupRequest {
	if strings.TrimSpace(r.OutputLanguage) == "" {
		r.OutputLanguage = DefaultOutputLanguage
	}
	if r.Timeout <= 0 {
		r.Timeout = DefaultTimeout
	}
	return r
}

func (r LookupRequest) HasLicenseKey() bool {
	return strings.TrimSpace(r.LicenseKey) != ""
}

func (r LookupRequest) String() string {
	return fmt.Sprintf(
		"LookupRequest: Address1=%s, Address2=%s, Address3=%s, Address4=%s, Address5=%s, Locality=%s, "+
			"AdministrativeArea=%s, PostalCode=%s, Country=%s, OutputLanguage=%s, LicenseKey=%s, IsLive=%t, Timeout=%s",
		r.Address1, r.Address2, r.Address3, r.Address4, r.Address5, r.Locality,
		r.AdministrativeArea, r.PostalCode, r.Country, r.OutputLanguage, RedactKey(r.LicenseKey), r.IsLive, r.Timeout,
	)
}

// RedactKey keeps the last four characters of a license key.
func RedactKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

// EndpointSet holds the base addresses of one protocol.
type EndpointSet struct {
	Live   string
	Backup string
	Trial  string
}

// Select returns the primary and backup addresses. Trial mode has no distinct
// backup, so both addresses are the trial one.
func (e EndpointSet) Select(isLive bool) (primary, backup string) {
	if isLive {
		return e.Live, e.Backup
	}
	return e.Trial, e.Trial
}

type FallbackReason string

const (
	FallbackNone           FallbackReason = ""
	FallbackTransportError FallbackReason = "transport_error"
	FallbackFatalResponse  FallbackReason = "fatal_response"
)

// LookupOutcome is what an invocation produced.
type LookupOutcome struct {
	Response       LookupResponse
	Endpoint       string
	Attempts       int
	FallbackReason FallbackReason
}

func (o *LookupOutcome) FellBack() bool {
	return o.FallbackReason != FallbackNone
}
