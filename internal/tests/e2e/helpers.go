package e2e

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/api"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to the gateway
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Lookup calls /v1/address-info
func (c *TestClient) Lookup(t *testing.T, query url.Values) (*api.Lookup, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/v1/address-info?" + query.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, bodyBytes)
	}

	var lookupResp api.LookupResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &lookupResp))
	return &lookupResp.Data, nil
}

// GetLookup calls /v1/lookups/{id}
func (c *TestClient) GetLookup(t *testing.T, id string) (*api.LookupAudit, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/v1/lookups/" + id)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, bodyBytes)
	}

	var auditResp api.LookupAuditResponse
	require.NoError(t, json.Unmarshal(bodyBytes, &auditResp))
	return &auditResp.Data, nil
}

// APIError is a non-2xx gateway answer.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s: %s", e.Status, e.Code, e.Message)
}

func decodeError(status int, body []byte) error {
	var errResp api.ErrorResponse
	_ = json.Unmarshal(body, &errResp)
	return &APIError{Status: status, Code: errResp.Error.Code, Message: errResp.Error.Message}
}

func santaBarbara() url.Values {
	return url.Values{
		"Address1":           {"27 E Cota St"},
		"Locality":           {"Santa Barbara"},
		"AdministrativeArea": {"CA"},
		"PostalCode":         {"93101"},
		"Country":            {"USA"},
	}
}
