// Package correlation carries a per-request correlation ID through
// context, HTTP headers and Kafka message headers, so one customer
// message can be traced from webhook to reply across services.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the HTTP header the ID travels in.
const HeaderName = "X-Correlation-ID"

// KafkaHeaderName is the Kafka message header the ID travels in.
const KafkaHeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext reads the correlation ID, empty when none was attached.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// WithID attaches a correlation ID to the context.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// NewID mints a fresh correlation ID for traffic that arrived without one.
func NewID() string {
	return uuid.New().String()
}
