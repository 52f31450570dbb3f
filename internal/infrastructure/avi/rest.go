package avi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/avi-gateway/internal/application"
	"github.com/DanielPopoola/avi-gateway/internal/domain"
)

// RESTTransport calls the JSON flavour of GetAddressInfo.
type RESTTransport struct {
	httpClient *http.Client
}

// NewRESTTransport uses http.DefaultClient when httpClient is nil. Timeouts
// come from the caller's context, one per attempt.
func NewRESTTransport(httpClient *http.Client) *RESTTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RESTTransport{httpClient: httpClient}
}

func (t *RESTTransport) Protocol() domain.Protocol {
	return domain.ProtocolREST
}

func (t *RESTTransport) Call(ctx context.Context, endpoint string, req domain.LookupRequest) (domain.LookupResponse, error) {
	requestURL := BuildRESTURL(endpoint, req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpBuild, 0, fmt.Errorf("error creating request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		// The url.Error text would echo the query, license key included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return domain.LookupResponse{}, t.fail(endpoint, application.OpRequest, 0, fmt.Errorf("error making request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpStatus, resp.StatusCode, statusError(resp.StatusCode, resp.Body))
	}

	var out domain.LookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpDecode, resp.StatusCode, fmt.Errorf("error decoding json response: %w", err))
	}

	if out.IsZero() {
		return domain.LookupResponse{}, t.fail(endpoint, application.OpEmpty, resp.StatusCode, ErrEmptyResponse)
	}

	return out, nil
}

func (t *RESTTransport) fail(endpoint, op string, status int, err error) error {
	return application.NewTransportError(domain.ProtocolREST, endpoint, op, status, err)
}

// BuildRESTURL appends the GetAddressInfo operation and the URL-encoded query
// to a base address. Empty optional fields are still sent.
func BuildRESTURL(baseURL string, req domain.LookupRequest) string {
	params := [][2]string{
		{"Address1", req.Address1},
		{"Address2", req.Address2},
		{"Address3", req.Address3},
		{"Address4", req.Address4},
		{"Address5", req.Address5},
		{"Locality", req.Locality},
		{"AdministrativeArea", req.AdministrativeArea},
		{"PostalCode", req.PostalCode},
		{"Country", req.Country},
		{"OutputLanguage", req.OutputLanguage},
		{"LicenseKey", req.LicenseKey},
	}

	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteString("GetAddressInfo?")
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p[0])
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[1]))
	}
	return b.String()
}
