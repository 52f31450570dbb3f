package avi_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/application"
	"github.com/DanielPopoola/avi-gateway/internal/application/mocks"
	"github.com/DanielPopoola/avi-gateway/internal/domain"
	"github.com/DanielPopoola/avi-gateway/internal/infrastructure/avi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testEndpoints = domain.EndpointSet{
	Live:   "https://sws.avi.test/json/",
	Backup: "https://swsbackup.avi.test/json/",
	Trial:  "https://trial.avi.test/json/",
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func santaBarbara(isLive bool) domain.LookupRequest {
	return domain.LookupRequest{
		Address1:           "27 E Cota St",
		Locality:           "Santa Barbara",
		AdministrativeArea: "CA",
		PostalCode:         "93101",
		Country:            "USA",
		OutputLanguage:     domain.DefaultOutputLanguage,
		LicenseKey:         "WS77-XXXX-XXXX",
		IsLive:             isLive,
		Timeout:            2 * time.Second,
	}
}

func verified() domain.LookupResponse {
	return domain.NewAddressResponse(domain.AddressInfo{
		Status:          "Verified",
		ResolutionLevel: "Premise",
		Address1:        "27 E Cota St",
		Locality:        "Santa Barbara",
		Country:         "United States",
		CountryISO2:     "US",
		CountryISO3:     "USA",
	})
}

func errorResponse(typeCode string) domain.LookupResponse {
	return domain.NewErrorResponse(domain.ErrorInfo{
		Type:     "Service Objects Fatal",
		TypeCode: typeCode,
		Desc:     "endpoint unavailable",
		DescCode: "1",
	})
}

func networkError(endpoint, msg string) error {
	return application.NewTransportError(domain.ProtocolREST, endpoint, application.OpRequest, 0, errors.New(msg))
}

func newInvoker(t *testing.T) (*avi.FallbackInvoker, *mocks.MockTransport) {
	t.Helper()
	transport := mocks.NewMockTransport(t)
	transport.EXPECT().Protocol().Return(domain.ProtocolREST).Maybe()
	return avi.NewFallbackInvoker(transport, testEndpoints, discardLogger()), transport
}

func TestFallbackInvoker_Trial_SingleCallRegardlessOfValidity(t *testing.T) {
	tests := []struct {
		name string
		resp domain.LookupResponse
	}{
		{"address", verified()},
		{"fatal error", errorResponse(domain.FatalTypeCode)},
		{"ordinary error", errorResponse("2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoker, transport := newInvoker(t)
			req := santaBarbara(false)

			transport.EXPECT().
				Call(mock.Anything, testEndpoints.Trial, req).
				Return(tt.resp, nil).
				Once()

			outcome, err := invoker.Invoke(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, tt.resp, outcome.Response)
			assert.Equal(t, testEndpoints.Trial, outcome.Endpoint)
			assert.Equal(t, 1, outcome.Attempts)
			assert.False(t, outcome.FellBack())
		})
	}
}

func TestFallbackInvoker_Trial_TransportErrorReturnedAsIs(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(false)
	cause := networkError(testEndpoints.Trial, "connection refused")

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Trial, req).
		Return(domain.LookupResponse{}, cause).
		Once()

	outcome, err := invoker.Invoke(context.Background(), req)

	assert.Nil(t, outcome)
	assert.Same(t, cause, err)
	_, isFallback := application.IsFallbackError(err)
	assert.False(t, isFallback)
}

func TestFallbackInvoker_Live_ValidPrimaryReturnedUnchanged(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(true)
	resp := verified()

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Live, req).
		Return(resp, nil).
		Once()

	outcome, err := invoker.Invoke(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, resp, outcome.Response)
	assert.Equal(t, testEndpoints.Live, outcome.Endpoint)
	assert.Equal(t, 1, outcome.Attempts)
	assert.Equal(t, domain.FallbackNone, outcome.FallbackReason)
}

func TestFallbackInvoker_Live_NonFatalErrorDoesNotFallBack(t *testing.T) {
	for _, code := range []string{"1", "2", "4"} {
		t.Run("TypeCode "+code, func(t *testing.T) {
			invoker, transport := newInvoker(t)
			req := santaBarbara(true)
			resp := errorResponse(code)

			transport.EXPECT().
				Call(mock.Anything, testEndpoints.Live, req).
				Return(resp, nil).
				Once()

			outcome, err := invoker.Invoke(context.Background(), req)

			require.NoError(t, err)
			assert.Equal(t, resp, outcome.Response)
			assert.Equal(t, 1, outcome.Attempts)
		})
	}
}

func TestFallbackInvoker_Live_FatalPrimaryUsesBackup(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(true)
	backupResp := verified()

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Live, req).
		Return(errorResponse(domain.FatalTypeCode), nil).
		Once()
	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Backup, req).
		Return(backupResp, nil).
		Once()

	outcome, err := invoker.Invoke(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, backupResp, outcome.Response)
	assert.Equal(t, testEndpoints.Backup, outcome.Endpoint)
	assert.Equal(t, 2, outcome.Attempts)
	assert.Equal(t, domain.FallbackFatalResponse, outcome.FallbackReason)
}

func TestFallbackInvoker_Live_FatalBackupReturnedVerbatim(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(true)
	backupResp := domain.NewErrorResponse(domain.ErrorInfo{Type: "Fatal", TypeCode: "3", Desc: "backup down", DescCode: "7"})

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Live, req).
		Return(errorResponse(domain.FatalTypeCode), nil).
		Once()
	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Backup, req).
		Return(backupResp, nil).
		Once()

	outcome, err := invoker.Invoke(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, backupResp, outcome.Response)
	assert.False(t, outcome.Response.IsValid())
	assert.Equal(t, 2, outcome.Attempts)
}

func TestFallbackInvoker_Live_PrimaryTransportErrorBackupSucceeds(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(true)
	backupResp := errorResponse("2")

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Live, req).
		Return(domain.LookupResponse{}, networkError(testEndpoints.Live, "i/o timeout")).
		Once()
	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Backup, req).
		Return(backupResp, nil).
		Once()

	outcome, err := invoker.Invoke(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, backupResp, outcome.Response)
	assert.Equal(t, domain.FallbackTransportError, outcome.FallbackReason)
}

func TestFallbackInvoker_Live_BothTransportErrors(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(true)
	primaryErr := networkError(testEndpoints.Live, "connection refused")
	backupErr := networkError(testEndpoints.Backup, "no such host")

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Live, req).
		Return(domain.LookupResponse{}, primaryErr).
		Once()
	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Backup, req).
		Return(domain.LookupResponse{}, backupErr).
		Once()

	outcome, err := invoker.Invoke(context.Background(), req)

	assert.Nil(t, outcome)
	fbErr, ok := application.IsFallbackError(err)
	require.True(t, ok)
	assert.Same(t, primaryErr, fbErr.Primary)
	assert.Same(t, backupErr, fbErr.Backup)
	assert.Equal(t, 2, fbErr.Attempts)
	assert.ErrorIs(t, err, primaryErr)
	assert.ErrorIs(t, err, backupErr)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, err.Error(), "no such host")
}

func TestFallbackInvoker_Live_FatalPrimaryBackupTransportError(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(true)
	backupErr := networkError(testEndpoints.Backup, "connection reset")

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Live, req).
		Return(errorResponse(domain.FatalTypeCode), nil).
		Once()
	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Backup, req).
		Return(domain.LookupResponse{}, backupErr).
		Once()

	_, err := invoker.Invoke(context.Background(), req)

	fbErr, ok := application.IsFallbackError(err)
	require.True(t, ok)

	var fatal *application.FatalResponseError
	require.ErrorAs(t, fbErr.Primary, &fatal)
	assert.Equal(t, testEndpoints.Live, fatal.Endpoint)
	assert.Equal(t, domain.FatalTypeCode, fatal.Info.TypeCode)
	assert.ErrorIs(t, err, backupErr)
}

func TestFallbackInvoker_Live_BackupNonTransportErrorCountsBothCalls(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(true)

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Live, req).
		Return(errorResponse(domain.FatalTypeCode), nil).
		Once()
	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Backup, req).
		Return(domain.LookupResponse{}, context.DeadlineExceeded).
		Once()

	_, err := invoker.Invoke(context.Background(), req)

	fbErr, ok := application.IsFallbackError(err)
	require.True(t, ok)
	assert.ErrorIs(t, fbErr.Backup, context.DeadlineExceeded)
	assert.Equal(t, 2, fbErr.Attempts)
}

func TestFallbackInvoker_Live_EmptyPrimaryCountsAsTransportError(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(true)

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Live, req).
		Return(domain.LookupResponse{}, nil).
		Once()
	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Backup, req).
		Return(verified(), nil).
		Once()

	outcome, err := invoker.Invoke(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.FallbackTransportError, outcome.FallbackReason)
}

func TestFallbackInvoker_CancelledParentSkipsBackup(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(true)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Live, req).
		Run(func(context.Context, string, domain.LookupRequest) { cancel() }).
		Return(domain.LookupResponse{}, networkError(testEndpoints.Live, "context canceled")).
		Once()

	_, err := invoker.Invoke(ctx, req)

	fbErr, ok := application.IsFallbackError(err)
	require.True(t, ok)
	assert.ErrorIs(t, fbErr.Backup, context.Canceled)
	assert.Equal(t, 1, fbErr.Attempts)
}

func TestFallbackInvoker_EachAttemptGetsItsOwnTimeout(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(true)
	req.Timeout = 50 * time.Millisecond

	var primaryCtx context.Context
	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Live, req).
		RunAndReturn(func(ctx context.Context, endpoint string, _ domain.LookupRequest) (domain.LookupResponse, error) {
			primaryCtx = ctx
			<-ctx.Done()
			return domain.LookupResponse{}, application.NewTransportError(domain.ProtocolREST, endpoint, application.OpRequest, 0, ctx.Err())
		}).
		Once()

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Backup, req).
		RunAndReturn(func(ctx context.Context, _ string, _ domain.LookupRequest) (domain.LookupResponse, error) {
			require.NoError(t, ctx.Err(), "backup must not inherit the expired primary deadline")
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(req.Timeout), deadline, req.Timeout)
			return verified(), nil
		}).
		Once()

	outcome, err := invoker.Invoke(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Attempts)
	assert.ErrorIs(t, primaryCtx.Err(), context.DeadlineExceeded)
}

func TestFallbackInvoker_AppliesDefaults(t *testing.T) {
	invoker, transport := newInvoker(t)
	req := santaBarbara(true)
	req.OutputLanguage = ""
	req.Timeout = 0

	transport.EXPECT().
		Call(mock.Anything, testEndpoints.Live, mock.MatchedBy(func(r domain.LookupRequest) bool {
			return r.OutputLanguage == domain.DefaultOutputLanguage && r.Timeout == domain.DefaultTimeout
		})).
		Return(verified(), nil).
		Once()

	_, err := invoker.Invoke(context.Background(), req)
	require.NoError(t, err)
}

func TestFallbackInvoker_SOAPMissingKeyFailsBeforeNetwork(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	endpoints := domain.EndpointSet{Live: server.URL, Backup: server.URL, Trial: server.URL}
	invoker := avi.NewFallbackInvoker(avi.NewSOAPTransport(server.Client()), endpoints, discardLogger())

	for _, key := range []string{"", "   "} {
		req := santaBarbara(true)
		req.LicenseKey = key

		outcome, err := invoker.Invoke(context.Background(), req)

		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, application.ErrMissingLicenseKey)
		_, isConfig := application.IsConfigurationError(err)
		assert.True(t, isConfig)
	}
	assert.Zero(t, hits.Load())
}

func TestEndpointTables_TrialBackupIsTrial(t *testing.T) {
	for _, protocol := range []domain.Protocol{domain.ProtocolREST, domain.ProtocolSOAP} {
		set := avi.EndpointsFor(protocol)

		primary, backup := set.Select(false)
		assert.Equal(t, set.Trial, primary)
		assert.Equal(t, set.Trial, backup)

		primary, backup = set.Select(true)
		assert.Equal(t, set.Live, primary)
		assert.Equal(t, set.Backup, backup)
		assert.NotEqual(t, primary, backup)
	}
}
