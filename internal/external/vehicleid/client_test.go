package vehicleid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partsbot/internal/domain/conversation"
	"partsbot/internal/external/apiclient"
)

func fastClient(url string) *Client {
	c := New(url, &http.Client{Timeout: time.Second})
	c.retry = apiclient.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
	return c
}

func TestIdentify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/identify", r.URL.Path)

		var req identifyReq
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "WVWZZZ1KZAW123456", req.VIN)

		json.NewEncoder(w).Encode(identifyResp{
			VIN: req.VIN, Make: "VW", Model: "Golf", Year: 2018, Confidence: 0.95,
		})
	}))
	defer srv.Close()

	v, err := fastClient(srv.URL).Identify(context.Background(), conversation.VehicleQuery{VIN: "WVWZZZ1KZAW123456"})
	require.NoError(t, err)
	assert.Equal(t, "Golf", v.Model)
}

func TestIdentify_LowConfidenceIsUncertain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(identifyResp{Make: "VW", Confidence: 0.4})
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).Identify(context.Background(), conversation.VehicleQuery{MediaURL: "https://example.com/doc.jpg"})
	assert.ErrorIs(t, err, conversation.ErrUncertain)
}

func TestIdentify_RetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(identifyResp{Make: "VW", Model: "Golf", Confidence: 0.9})
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).Identify(context.Background(), conversation.VehicleQuery{VIN: "WVWZZZ1KZAW123456"})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestIdentify_ClientErrorNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := fastClient(srv.URL).Identify(context.Background(), conversation.VehicleQuery{VIN: "nope"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, apiclient.ErrServiceUnavailable)
	assert.Equal(t, 1, calls)
}
