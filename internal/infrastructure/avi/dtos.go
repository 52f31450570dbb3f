package avi

import (
	"encoding/xml"

	"github.com/DanielPopoola/avi-gateway/internal/domain"
)

const (
	soapEnvelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	soapServiceNS  = "https://www.serviceobjects.com/avi/"
	soapAction     = soapServiceNS + "IAVISoapService/GetAddressInfo"
	soapBinding    = "/SOAP"
)

// SOAP request

type soapRequestEnvelope struct {
	XMLName   xml.Name        `xml:"soap:Envelope"`
	XmlnsSoap string          `xml:"xmlns:soap,attr"`
	XmlnsAVI  string          `xml:"xmlns:avi,attr"`
	Header    struct{}        `xml:"soap:Header"`
	Body      soapRequestBody `xml:"soap:Body"`
}

type soapRequestBody struct {
	GetAddressInfo getAddressInfoRequest `xml:"avi:GetAddressInfo"`
}

type getAddressInfoRequest struct {
	Address1           string `xml:"avi:Address1"`
	Address2           string `xml:"avi:Address2"`
	Address3           string `xml:"avi:Address3"`
	Address4           string `xml:"avi:Address4"`
	Address5           string `xml:"avi:Address5"`
	Locality           string `xml:"avi:Locality"`
	AdministrativeArea string `xml:"avi:AdministrativeArea"`
	PostalCode         string `xml:"avi:PostalCode"`
	Country            string `xml:"avi:Country"`
	OutputLanguage     string `xml:"avi:OutputLanguage"`
	LicenseKey         string `xml:"avi:LicenseKey"`
}

func newSOAPRequestEnvelope(req domain.LookupRequest) soapRequestEnvelope {
	return soapRequestEnvelope{
		XmlnsSoap: soapEnvelopeNS,
		XmlnsAVI:  soapServiceNS,
		Body: soapRequestBody{
			GetAddressInfo: getAddressInfoRequest{
				Address1:           req.Address1,
				Address2:           req.Address2,
				Address3:           req.Address3,
				Address4:           req.Address4,
				Address5:           req.Address5,
				Locality:           req.Locality,
				AdministrativeArea: req.AdministrativeArea,
				PostalCode:         req.PostalCode,
				Country:            req.Country,
				OutputLanguage:     req.OutputLanguage,
				LicenseKey:         req.LicenseKey,
			},
		},
	}
}

// SOAP response. Elements are matched by local name so the server's prefixes
// and default namespaces do not matter.

type soapResponseEnvelope struct {
	XMLName xml.Name         `xml:"Envelope"`
	Body    soapResponseBody `xml:"Body"`
}

type soapResponseBody struct {
	Fault    *soapFault              `xml:"Fault,omitempty"`
	Response *getAddressInfoResponse `xml:"GetAddressInfoResponse,omitempty"`
}

type soapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
}

type getAddressInfoResponse struct {
	Result *getAddressInfoResult `xml:"GetAddressInfoResult"`
}

type getAddressInfoResult struct {
	AddressInfo *soapAddressInfo `xml:"AddressInfo"`
	Error       *soapErrorInfo   `xml:"Error"`
}

type soapAddressInfo struct {
	Status                string                     `xml:"Status"`
	ResolutionLevel       string                     `xml:"ResolutionLevel"`
	Address1              string                     `xml:"Address1"`
	Address2              string                     `xml:"Address2"`
	Address3              string                     `xml:"Address3"`
	Address4              string                     `xml:"Address4"`
	Address5              string                     `xml:"Address5"`
	Address6              string                     `xml:"Address6"`
	Address7              string                     `xml:"Address7"`
	Address8              string                     `xml:"Address8"`
	Locality              string                     `xml:"Locality"`
	AdministrativeArea    string                     `xml:"AdministrativeArea"`
	PostalCode            string                     `xml:"PostalCode"`
	Country               string                     `xml:"Country"`
	CountryISO2           string                     `xml:"CountryISO2"`
	CountryISO3           string                     `xml:"CountryISO3"`
	InformationComponents []soapInformationComponent `xml:"InformationComponents>InformationComponent"`
}

type soapInformationComponent struct {
	Name  string `xml:"Name"`
	Value string `xml:"Value"`
}

type soapErrorInfo struct {
	Type     string `xml:"Type"`
	TypeCode string `xml:"TypeCode"`
	Desc     string `xml:"Desc"`
	DescCode string `xml:"DescCode"`
}

// toDomain converts the SOAP result. An element sent as i:nil="true" decodes
// to an empty struct and is treated as absent.
func (r *getAddressInfoResult) toDomain() domain.LookupResponse {
	if r == nil {
		return domain.LookupResponse{}
	}

	var errInfo *domain.ErrorInfo
	if e := r.Error; e != nil {
		errInfo = &domain.ErrorInfo{
			Type:     e.Type,
			TypeCode: e.TypeCode,
			Desc:     e.Desc,
			DescCode: e.DescCode,
		}
	}

	var address *domain.AddressInfo
	if a := r.AddressInfo; a != nil {
		components := make([]domain.InformationComponent, 0, len(a.InformationComponents))
		for _, c := range a.InformationComponents {
			components = append(components, domain.InformationComponent{Name: c.Name, Value: c.Value})
		}
		address = &domain.AddressInfo{
			Status:                a.Status,
			ResolutionLevel:       a.ResolutionLevel,
			Address1:              a.Address1,
			Address2:              a.Address2,
			Address3:              a.Address3,
			Address4:              a.Address4,
			Address5:              a.Address5,
			Address6:              a.Address6,
			Address7:              a.Address7,
			Address8:              a.Address8,
			Locality:              a.Locality,
			AdministrativeArea:    a.AdministrativeArea,
			PostalCode:            a.PostalCode,
			Country:               a.Country,
			CountryISO2:           a.CountryISO2,
			CountryISO3:           a.CountryISO3,
			InformationComponents: components,
		}
	}

	return domain.DecodeResponse(address, errInfo)
}
