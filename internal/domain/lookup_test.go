package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointSet_Select(t *testing.T) {
	set := domain.EndpointSet{Live: "live", Backup: "backup", Trial: "trial"}

	t.Run("live uses live then backup", func(t *testing.T) {
		primary, backup := set.Select(true)
		assert.Equal(t, "live", primary)
		assert.Equal(t, "backup", backup)
	})

	t.Run("trial reuses trial as backup", func(t *testing.T) {
		primary, backup := set.Select(false)
		assert.Equal(t, "trial", primary)
		assert.Equal(t, "trial", backup)
	})
}

func TestLookupRequest_WithDefaults(t *testing.T) {
	t.Run("fills language and timeout", func(t *testing.T) {
		req := domain.LookupRequest{Address1: "27 E Cota St"}.WithDefaults()

		assert.Equal(t, domain.DefaultOutputLanguage, req.OutputLanguage)
		assert.Equal(t, domain.DefaultTimeout, req.Timeout)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		req := domain.LookupRequest{OutputLanguage: "LOCAL", Timeout: 3 * time.Second}.WithDefaults()

		assert.Equal(t, "LOCAL", req.OutputLanguage)
		assert.Equal(t, 3*time.Second, req.Timeout)
	})

	t.Run("does not touch the original", func(t *testing.T) {
		orig := domain.LookupRequest{}
		_ = orig.WithDefaults()

		assert.Empty(t, orig.OutputLanguage)
		assert.Zero(t, orig.Timeout)
	})
}

func TestLookupRequest_HasLicenseKey(t *testing.T) {
	assert.False(t, domain.LookupRequest{}.HasLicenseKey())
	assert.False(t, domain.LookupRequest{LicenseKey: "   "}.HasLicenseKey())
	assert.True(t, domain.LookupRequest{LicenseKey: "WS77-ABC"}.HasLicenseKey())
}

func TestLookupRequest_StringRedactsKey(t *testing.T) {
	req := domain.LookupRequest{LicenseKey: "WS77-SECRET-1234"}

	s := req.String()

	assert.NotContains(t, s, "SECRET")
	assert.Contains(t, s, "1234")
}

func TestParseProtocol(t *testing.T) {
	p, err := domain.ParseProtocol(" SOAP ")
	require.NoError(t, err)
	assert.Equal(t, domain.ProtocolSOAP, p)

	p, err = domain.ParseProtocol("rest")
	require.NoError(t, err)
	assert.Equal(t, domain.ProtocolREST, p)

	_, err = domain.ParseProtocol("grpc")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidField)
}

func TestLookupResponse_OneOf(t *testing.T) {
	t.Run("address variant", func(t *testing.T) {
		resp := domain.NewAddressResponse(domain.AddressInfo{Status: "Verified"})

		info, ok := resp.AddressInfo()
		require.True(t, ok)
		assert.Equal(t, "Verified", info.Status)

		_, ok = resp.ErrorInfo()
		assert.False(t, ok)
		assert.True(t, resp.IsValid())
		assert.Equal(t, "address", resp.Kind())
	})

	t.Run("ordinary error is valid", func(t *testing.T) {
		resp := domain.NewErrorResponse(domain.ErrorInfo{Type: "Input", TypeCode: "2"})

		_, ok := resp.AddressInfo()
		assert.False(t, ok)
		assert.True(t, resp.IsValid())
		assert.Equal(t, "error", resp.Kind())
	})

	t.Run("type code 3 is not valid", func(t *testing.T) {
		resp := domain.NewErrorResponse(domain.ErrorInfo{Type: "Service Objects Fatal", TypeCode: "3"})

		assert.False(t, resp.IsValid())
	})

	t.Run("zero value is not valid", func(t *testing.T) {
		var resp domain.LookupResponse

		assert.True(t, resp.IsZero())
		assert.False(t, resp.IsValid())
		assert.Empty(t, resp.Kind())
	})
}

func TestLookupResponse_JSON(t *testing.T) {
	t.Run("decodes address info", func(t *testing.T) {
		payload := `{"AddressInfo":{"Status":"Verified","Locality":"Santa Barbara",
			"InformationComponents":[{"Name":"DPV","Value":"1"},{"Name":"RDI","Value":"Commercial"}]}}`

		var resp domain.LookupResponse
		require.NoError(t, json.Unmarshal([]byte(payload), &resp))

		info, ok := resp.AddressInfo()
		require.True(t, ok)
		assert.Equal(t, "Santa Barbara", info.Locality)
		require.Len(t, info.InformationComponents, 2)
		assert.Equal(t, "DPV", info.InformationComponents[0].Name)
		assert.Equal(t, "RDI", info.InformationComponents[1].Name)
	})

	t.Run("error wins when both are present", func(t *testing.T) {
		payload := `{"AddressInfo":{"Status":"Verified"},"Error":{"TypeCode":"3"}}`

		var resp domain.LookupResponse
		require.NoError(t, json.Unmarshal([]byte(payload), &resp))

		_, hasAddress := resp.AddressInfo()
		info, hasError := resp.ErrorInfo()
		assert.False(t, hasAddress)
		require.True(t, hasError)
		assert.Equal(t, "3", info.TypeCode)
	})

	t.Run("empty error member is ignored", func(t *testing.T) {
		payload := `{"AddressInfo":{"Status":"Verified"},"Error":{}}`

		var resp domain.LookupResponse
		require.NoError(t, json.Unmarshal([]byte(payload), &resp))

		info, ok := resp.AddressInfo()
		require.True(t, ok)
		assert.Equal(t, "Verified", info.Status)
		assert.True(t, resp.IsValid())
	})

	t.Run("empty members decode to zero", func(t *testing.T) {
		var resp domain.LookupResponse
		require.NoError(t, json.Unmarshal([]byte(`{"AddressInfo":{},"Error":null}`), &resp))

		assert.True(t, resp.IsZero())
	})

	t.Run("encodes only the present member", func(t *testing.T) {
		out, err := json.Marshal(domain.NewErrorResponse(domain.ErrorInfo{Type: "Authorization", TypeCode: "1"}))
		require.NoError(t, err)

		assert.JSONEq(t, `{"Error":{"Type":"Authorization","TypeCode":"1","Desc":"","DescCode":""}}`, string(out))
	})
}

func TestAddressInfo_IsZero(t *testing.T) {
	assert.True(t, domain.AddressInfo{}.IsZero())
	assert.True(t, domain.AddressInfo{InformationComponents: []domain.InformationComponent{}}.IsZero())

	partial := []domain.AddressInfo{
		{Address2: "Suite 200"},
		{Address8: "x"},
		{Locality: "Santa Barbara"},
		{AdministrativeArea: "CA"},
		{PostalCode: "93101"},
		{CountryISO2: "US"},
		{CountryISO3: "USA"},
		{InformationComponents: []domain.InformationComponent{{Name: "DPV", Value: "1"}}},
	}
	for _, a := range partial {
		assert.False(t, a.IsZero(), "%+v", a)
	}
}

func TestDecodeResponse(t *testing.T) {
	address := &domain.AddressInfo{Status: "Verified"}
	fatal := &domain.ErrorInfo{TypeCode: "3"}

	_, ok := domain.DecodeResponse(address, fatal).ErrorInfo()
	assert.True(t, ok)

	_, ok = domain.DecodeResponse(address, &domain.ErrorInfo{}).AddressInfo()
	assert.True(t, ok)

	assert.True(t, domain.DecodeResponse(&domain.AddressInfo{}, &domain.ErrorInfo{}).IsZero())
	assert.True(t, domain.DecodeResponse(nil, nil).IsZero())
}

func TestNewLookupAudit(t *testing.T) {
	id := uuid.New()
	req := domain.LookupRequest{Country: "USA", IsLive: true, LicenseKey: "secret"}

	t.Run("records address outcome", func(t *testing.T) {
		outcome := &domain.LookupOutcome{
			Response:       domain.NewAddressResponse(domain.AddressInfo{Status: "Verified"}),
			Endpoint:       "https://swsbackup.example/",
			Attempts:       2,
			FallbackReason: domain.FallbackFatalResponse,
		}

		audit := domain.NewLookupAudit(id, domain.ProtocolREST, req, outcome, time.Second)

		assert.Equal(t, id, audit.ID)
		assert.Equal(t, domain.OutcomeAddress, audit.Outcome)
		assert.Equal(t, "Verified", audit.Status)
		assert.Equal(t, 2, audit.Attempts)
		assert.Equal(t, domain.FallbackFatalResponse, audit.FallbackReason)
		assert.True(t, audit.IsLive)
	})

	t.Run("records failure without outcome", func(t *testing.T) {
		audit := domain.NewLookupAudit(id, domain.ProtocolSOAP, req, nil, time.Second)

		assert.Equal(t, domain.OutcomeFailed, audit.Outcome)
		assert.Zero(t, audit.Attempts)
	})
}
