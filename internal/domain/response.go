package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

type InformationComponent struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

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

// Lines returns the eight normalized address lines in order.
func (a AddressInfo) Lines() [8]string {
	return [8]string{a.Address1, a.Address2, a.Address3, a.Address4, a.Address5, a.Address6, a.Address7, a.Address8}
}

// IsZero reports whether no field carries content.
func (a AddressInfo) IsZero() bool {
	if len(a.InformationComponents) > 0 {
		return false
	}
	for _, line := range a.Lines() {
		if line != "" {
			return false
		}
	}
	return a.Status == "" && a.ResolutionLevel == "" && a.Locality == "" &&
		a.AdministrativeArea == "" && a.PostalCode == "" && a.Country == "" &&
		a.CountryISO2 == "" && a.CountryISO3 == ""
}

func (a AddressInfo) String() string {
	components := make([]string, 0, len(a.InformationComponents))
	for _, c := range a.InformationComponents {
		components = append(components, fmt.Sprintf("%s=%s", c.Name, c.Value))
	}
	return fmt.Sprintf(
		"AddressInfo: Status=%s, ResolutionLevel=%s, Address1=%s, Address2=%s, Address3=%s, Address4=%s, "+
			"Address5=%s, Address6=%s, Address7=%s, Address8=%s, Locality=%s, AdministrativeArea=%s, "+
			"PostalCode=%s, Country=%s, CountryISO2=%s, CountryISO3=%s, InformationComponents=[%s]",
		a.Status, a.ResolutionLevel, a.Address1, a.Address2, a.Address3, a.Address4,
		a.Address5, a.Address6, a.Address7, a.Address8, a.Locality, a.AdministrativeArea,
		a.PostalCode, a.Country, a.CountryISO2, a.CountryISO3, strings.Join(components, ", "),
	)
}

// ErrorInfo is a structured vendor outcome. It is data, not a Go error.
type ErrorInfo struct {
	Type     string `json:"Type"`
	TypeCode string `json:"TypeCode"`
	Desc     string `json:"Desc"`
	DescCode string `json:"DescCode"`
}

// IsFatal reports whether the endpoint that produced the error was unable to
// serve the request.
func (e ErrorInfo) IsFatal() bool {
	return e.TypeCode == FatalTypeCode
}

// IsZero reports whether no field carries content, as with an element sent
// as nil or an empty object.
func (e ErrorInfo) IsZero() bool {
	return e == ErrorInfo{}
}

func (e ErrorInfo) String() string {
	return fmt.Sprintf("Error: Type=%s, TypeCode=%s, Desc=%s, DescCode=%s", e.Type, e.TypeCode, e.Desc, e.DescCode)
}

// LookupResponse carries exactly one of AddressInfo or ErrorInfo. The zero
// value carries neither and is never valid.
type LookupResponse struct {
	address *AddressInfo
	err     *ErrorInfo
}

func NewAddressResponse(info AddressInfo) LookupResponse {
	return LookupResponse{address: &info}
}

func NewErrorResponse(info ErrorInfo) LookupResponse {
	return LookupResponse{err: &info}
}

// DecodeResponse picks the member of a decoded wire payload. Absent and
// content-free members are ignored; when both carry content the error wins.
func DecodeResponse(address *AddressInfo, errInfo *ErrorInfo) LookupResponse {
	switch {
	case errInfo != nil && !errInfo.IsZero():
		return NewErrorResponse(*errInfo)
	case address != nil && !address.IsZero():
		return NewAddressResponse(*address)
	default:
		return LookupResponse{}
	}
}

func (r LookupResponse) AddressInfo() (AddressInfo, bool) {
	if r.address == nil {
		return AddressInfo{}, false
	}
	return *r.address, true
}

func (r LookupResponse) ErrorInfo() (ErrorInfo, bool) {
	if r.err == nil {
		return ErrorInfo{}, false
	}
	return *r.err, true
}

func (r LookupResponse) IsZero() bool {
	return r.address == nil && r.err == nil
}

// IsValid reports whether the response can be returned without trying the
// backup endpoint.
func (r LookupResponse) IsValid() bool {
	if r.IsZero() {
		return false
	}
	return r.err == nil || !r.err.IsFatal()
}

// Kind is "address", "error" or "" for the zero value.
func (r LookupResponse) Kind() string {
	switch {
	case r.address != nil:
		return "address"
	case r.err != nil:
		return "error"
	}
	return ""
}

func (r LookupResponse) String() string {
	switch {
	case r.address != nil:
		return r.address.String()
	case r.err != nil:
		return r.err.String()
	}
	return "LookupResponse: <empty>"
}

type lookupResponseJSON struct {
	AddressInfo *AddressInfo `json:"AddressInfo,omitempty"`
	Error       *ErrorInfo   `json:"Error,omitempty"`
}

func (r LookupResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(lookupResponseJSON{AddressInfo: r.address, Error: r.err})
}

// UnmarshalJSON accepts the vendor shape with the DecodeResponse rules.
func (r *LookupResponse) UnmarshalJSON(data []byte) error {
	var raw lookupResponseJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = DecodeResponse(raw.AddressInfo, raw.Error)
	return nil
}
