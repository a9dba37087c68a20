package conversation

import (
	"context"
	"errors"

	"partsbot/internal/domain/offer"
	"partsbot/internal/i18n"
)

// ErrUncertain reports that vehicle identification produced a result too
// unreliable to act on, e.g. a blurry registration photo. The machine
// re-prompts instead of escalating.
var ErrUncertain = errors.New("vehicle identification uncertain")

// VehicleQuery carries whatever the customer provided; at least one field
// is set.
type VehicleQuery struct {
	VIN      string
	HSN      string
	TSN      string
	MediaURL string
}

// VehicleIdentifier resolves a query to vehicle data, via OCR on a
// registration document photo or a direct VIN / HSN-TSN lookup.
type VehicleIdentifier interface {
	Identify(ctx context.Context, q VehicleQuery) (Vehicle, error)
}

// OfferSource fetches candidate offers for a part on a given vehicle.
type OfferSource interface {
	FetchOffers(ctx context.Context, v Vehicle, partDescription string) ([]offer.Offer, error)
}

// Question carries a general customer question plus the conversation
// context the answering service needs: the vehicle (when known), the
// fields still to collect so the answer can steer back to them, and the
// language the answer must be written in.
type Question struct {
	Text          string
	Vehicle       *Vehicle
	MissingFields []string
	Language      i18n.Language
}

// Answerer produces a free-text answer to a general customer question,
// e.g. "what does delivery cost?". Optional; when absent the machine
// re-prompts instead.
type Answerer interface {
	Answer(ctx context.Context, q Question) (string, error)
}
