//go:build !integration

package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"partsbot/internal/ingest/webhook"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProcessor struct {
	last       webhook.InboundMessage
	called     bool
	processErr error
}

func (m *mockProcessor) ProcessInbound(_ context.Context, msg webhook.InboundMessage) error {
	m.called = true
	m.last = msg
	return m.processErr
}

func postWebhook(t *testing.T, h *InboundHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/webhooks/whatsapp", h.Webhook)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/whatsapp", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestInboundHandler_Webhook(t *testing.T) {
	t.Run("accepts and forwards a message", func(t *testing.T) {
		mock := &mockProcessor{}
		h := NewInboundHandler(mock)

		rec := postWebhook(t, h, `{"From":"+4917612345678","Body":"hallo","MessageSid":"SM1"}`)

		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.True(t, mock.called)
		assert.Equal(t, "+4917612345678", mock.last.From)
		assert.Equal(t, "hallo", mock.last.Body)
		assert.Equal(t, "SM1", mock.last.MessageSid)
	})

	t.Run("acknowledges sender-less events without processing", func(t *testing.T) {
		mock := &mockProcessor{}
		h := NewInboundHandler(mock)

		rec := postWebhook(t, h, `{"Body":"status callback"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, mock.called)
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		mock := &mockProcessor{}
		h := NewInboundHandler(mock)

		rec := postWebhook(t, h, `not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, mock.called)
	})

	t.Run("surfaces processing failures so the provider retries", func(t *testing.T) {
		mock := &mockProcessor{processErr: errors.New("broker down")}
		h := NewInboundHandler(mock)

		rec := postWebhook(t, h, `{"From":"+4917612345678","Body":"hallo"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
