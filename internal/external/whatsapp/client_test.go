package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partsbot/internal/external/apiclient"
)

func testClient(url string) *Client {
	c := New(Config{BaseURL: url, AuthToken: "secret", Sender: "+4930999"}, &http.Client{Timeout: time.Second})
	c.retry = apiclient.RetryConfig{MaxAttempts: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
	return c
}

func TestSendMessage(t *testing.T) {
	var got sendReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	err := testClient(srv.URL).SendMessage(context.Background(), "+4915112345678", "Willkommen!")
	require.NoError(t, err)
	assert.Equal(t, "+4930999", got.From)
	assert.Equal(t, "+4915112345678", got.To)
	assert.Equal(t, "Willkommen!", got.Body)
}

func TestSendMessage_RetriesRateLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
		}
	}))
	defer srv.Close()

	require.NoError(t, testClient(srv.URL).SendMessage(context.Background(), "+49151", "hi"))
	assert.Equal(t, 2, calls)
}

func TestSendTyping_FailureSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/typing", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	// must not panic or block; errors are only logged
	testClient(srv.URL).SendTyping(context.Background(), "+49151")
}
