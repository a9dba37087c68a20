package webhook

import "context"

// InboundMessage is the payload the WhatsApp provider delivers for each
// customer message. Field names follow the provider's form parameters.
type InboundMessage struct {
	From       string   `json:"From"`
	Body       string   `json:"Body"`
	MediaUrls  []string `json:"MediaUrls"`
	MessageSid string   `json:"MessageSid"`
}

// Processor handles an inbound message webhook. Implementations may process
// it synchronously or enqueue it for the worker pool.
type Processor interface {
	ProcessInbound(ctx context.Context, msg InboundMessage) error
}
