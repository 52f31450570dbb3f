package avi

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/DanielPopoola/avi-gateway/internal/application"
	"github.com/DanielPopoola/avi-gateway/internal/domain"
)

// SOAPTransport calls GetAddressInfo through the SOAP 1.1 binding.
type SOAPTransport struct {
	httpClient *http.Client
}

func NewSOAPTransport(httpClient *http.Client) *SOAPTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SOAPTransport{httpClient: httpClient}
}

func (t *SOAPTransport) Protocol() domain.Protocol {
	return domain.ProtocolSOAP
}

// CheckRequest rejects a blank license key before anything is sent.
func (t *SOAPTransport) CheckRequest(req domain.LookupRequest) error {
	if !req.HasLicenseKey() {
		return application.ErrMissingLicenseKey
	}
	return nil
}

func (t *SOAPTransport) Call(ctx context.Context, endpoint string, req domain.LookupRequest) (domain.LookupResponse, error) {
	if err := t.CheckRequest(req); err != nil {
		return domain.LookupResponse{}, err
	}

	payload, err := xml.Marshal(newSOAPRequestEnvelope(req))
	if err != nil {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpBuild, 0, fmt.Errorf("error marshaling envelope: %w", err))
	}

	body := bytes.NewBufferString(xml.Header)
	body.Write(payload)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, soapURL(endpoint), body)
	if err != nil {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpBuild, 0, fmt.Errorf("error creating request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	httpReq.Header.Set("SOAPAction", `"`+soapAction+`"`)

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpRequest, 0, fmt.Errorf("error making request: %w", err))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpRequest, resp.StatusCode, fmt.Errorf("error reading response: %w", err))
	}

	var envelope soapResponseEnvelope
	decodeErr := xml.Unmarshal(raw, &envelope)

	// Faults usually arrive with a 500.
	if decodeErr == nil && envelope.Body.Fault != nil {
		fault := envelope.Body.Fault
		return domain.LookupResponse{}, t.fail(endpoint, application.OpFault, resp.StatusCode, &faultError{Code: fault.Code, String: fault.String})
	}

	if resp.StatusCode != http.StatusOK {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpStatus, resp.StatusCode, statusError(resp.StatusCode, bytes.NewReader(raw)))
	}

	if decodeErr != nil {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpDecode, resp.StatusCode, fmt.Errorf("error decoding soap response: %w", decodeErr))
	}

	if envelope.Body.Response == nil {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpEmpty, resp.StatusCode, ErrEmptyResponse)
	}

	out := envelope.Body.Response.Result.toDomain()
	if out.IsZero() {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpEmpty, resp.StatusCode, ErrEmptyResponse)
	}

	return out, nil
}

func (t *SOAPTransport) fail(endpoint, op string, status int, err error) error {
	return application.NewTransportError(domain.ProtocolSOAP, endpoint, op, status, err)
}

func soapURL(endpoint string) string {
	return strings.TrimSuffix(endpoint, "/") + soapBinding
}
