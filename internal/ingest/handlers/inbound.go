package handlers

import (
	"net/http"

	"partsbot/internal/ingest/webhook"

	"github.com/gin-gonic/gin"
)

type InboundHandler struct {
	processor webhook.Processor
}

func NewInboundHandler(p webhook.Processor) *InboundHandler {
	return &InboundHandler{processor: p}
}

func (h *InboundHandler) Webhook(c *gin.Context) {
	var msg webhook.InboundMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload"})
		return
	}

	// Status callbacks and other sender-less events are acknowledged
	// without processing.
	if msg.From == "" {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.processor.ProcessInbound(c.Request.Context(), msg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.Status(http.StatusAccepted)
}
