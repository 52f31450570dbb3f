package handlers

import (
	"net/http"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/api"
	"github.com/DanielPopoola/avi-gateway/internal/application"
	"github.com/DanielPopoola/avi-gateway/internal/application/services"
	"github.com/DanielPopoola/avi-gateway/internal/interfaces/rest"
	"github.com/oapi-codegen/runtime"
)

func (h *Handlers) GetAddressInfo(w http.ResponseWriter, r *http.Request) {
	params, err := bindAddressInfoParams(r)
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
		return
	}

	result, err := h.lookupService.Lookup(r.Context(), toLookupCommand(params))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, api.LookupResponse{
		Success: true,
		Data:    rest.ToAPILookup(result),
	})
}

func (h *Handlers) GetLookupByID(w http.ResponseWriter, r *http.Request) {
	audit, err := h.lookupService.FindLookup(r.Context(), r.PathValue("id"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, api.LookupAuditResponse{
		Success: true,
		Data:    rest.ToAPIAudit(audit),
	})
}

func bindAddressInfoParams(r *http.Request) (api.GetAddressInfoParams, error) {
	var params api.GetAddressInfoParams
	query := r.URL.Query()

	bindings := []struct {
		name string
		dest any
	}{
		{"Address1", &params.Address1},
		{"Address2", &params.Address2},
		{"Address3", &params.Address3},
		{"Address4", &params.Address4},
		{"Address5", &params.Address5},
		{"Locality", &params.Locality},
		{"AdministrativeArea", &params.AdministrativeArea},
		{"PostalCode", &params.PostalCode},
		{"Country", &params.Country},
		{"OutputLanguage", &params.OutputLanguage},
		{"LicenseKey", &params.LicenseKey},
		{"protocol", &params.Protocol},
		{"is_live", &params.IsLive},
		{"timeout_seconds", &params.TimeoutSeconds},
	}

	for _, b := range bindings {
		if err := runtime.BindQueryParameter("form", true, false, b.name, query, b.dest); err != nil {
			return params, err
		}
	}
	return params, nil
}

func toLookupCommand(p api.GetAddressInfoParams) services.LookupCommand {
	cmd := services.LookupCommand{
		Address1:           value(p.Address1),
		Address2:           value(p.Address2),
		Address3:           value(p.Address3),
		Address4:           value(p.Address4),
		Address5:           value(p.Address5),
		Locality:           value(p.Locality),
		AdministrativeArea: value(p.AdministrativeArea),
		PostalCode:         value(p.PostalCode),
		Country:            value(p.Country),
		OutputLanguage:     value(p.OutputLanguage),
		LicenseKey:         value(p.LicenseKey),
		Protocol:           value(p.Protocol),
		IsLive:             p.IsLive,
	}
	if p.TimeoutSeconds != nil {
		cmd.Timeout = time.Duration(*p.TimeoutSeconds) * time.Second
	}
	return cmd
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
