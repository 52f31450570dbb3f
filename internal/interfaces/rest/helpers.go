package rest

import (
	"github.com/DanielPopoola/avi-gateway/internal/api"
	"github.com/DanielPopoola/avi-gateway/internal/application/services"
	"github.com/DanielPopoola/avi-gateway/internal/domain"
)

func ToAPILookup(r *services.LookupResult) api.Lookup {
	out := api.Lookup{
		RequestId:      r.RequestID,
		Protocol:       string(r.Protocol),
		Endpoint:       r.Outcome.Endpoint,
		Attempts:       r.Outcome.Attempts,
		FallbackReason: string(r.Outcome.FallbackReason),
	}

	if info, ok := r.Outcome.Response.AddressInfo(); ok {
		components := make([]api.InformationComponent, 0, len(info.InformationComponents))
		for _, c := range info.InformationComponents {
			components = append(components, api.InformationComponent{Name: c.Name, Value: c.Value})
		}
		out.AddressInfo = &api.AddressInfo{
			Status:                info.Status,
			ResolutionLevel:       info.ResolutionLevel,
			Address1:              info.Address1,
			Address2:              info.Address2,
			Address3:              info.Address3,
			Address4:              info.Address4,
			Address5:              info.Address5,
			Address6:              info.Address6,
			Address7:              info.Address7,
			Address8:              info.Address8,
			Locality:              info.Locality,
			AdministrativeArea:    info.AdministrativeArea,
			PostalCode:            info.PostalCode,
			Country:               info.Country,
			CountryISO2:           info.CountryISO2,
			CountryISO3:           info.CountryISO3,
			InformationComponents: components,
		}
	}

	if info, ok := r.Outcome.Response.ErrorInfo(); ok {
		out.Error = &api.ErrorInfo{
			Type:     info.Type,
			TypeCode: info.TypeCode,
			Desc:     info.Desc,
			DescCode: info.DescCode,
		}
	}

	return out
}

func ToAPIAudit(a *domain.LookupAudit) api.LookupAudit {
	return api.LookupAudit{
		Id:             a.ID,
		Protocol:       string(a.Protocol),
		IsLive:         a.IsLive,
		Country:        a.Country,
		Endpoint:       a.Endpoint,
		Attempts:       a.Attempts,
		FallbackReason: string(a.FallbackReason),
		Outcome:        a.Outcome,
		Status:         a.Status,
		TypeCode:       a.TypeCode,
		ErrorCategory:  a.ErrorCategory,
		ErrorMessage:   a.ErrorMessage,
		DurationMs:     a.Duration.Milliseconds(),
		CreatedAt:      a.CreatedAt,
	}
}
