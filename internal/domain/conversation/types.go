// Package conversation holds the per-customer dialog state and the state
// machine that advances it one inbound message at a time.
package conversation

import (
	"strconv"
	"strings"
	"time"

	"partsbot/internal/domain/offer"
	"partsbot/internal/i18n"
)

type Status string

const (
	StatusCollectVehicle   Status = "collect_vehicle"
	StatusConfirmVehicle   Status = "confirm_vehicle"
	StatusCollectPart      Status = "collect_part"
	StatusShowOffers       Status = "show_offers"
	StatusConfirmOffer     Status = "confirm_offer"
	StatusChooseOffer      Status = "choose_offer"
	StatusDeliveryOrPickup Status = "delivery_or_pickup"
	StatusCollectAddress   Status = "collect_address"
	StatusOrderComplete    Status = "order_complete"
	StatusNeedsHuman       Status = "needs_human"
	StatusCancelled        Status = "cancelled"
)

// AllStatuses enumerates every reachable status. Transition coverage is
// tested against this list.
var AllStatuses = []Status{
	StatusCollectVehicle, StatusConfirmVehicle, StatusCollectPart,
	StatusShowOffers, StatusConfirmOffer, StatusChooseOffer,
	StatusDeliveryOrPickup, StatusCollectAddress,
	StatusOrderComplete, StatusNeedsHuman, StatusCancelled,
}

func (s Status) Terminal() bool {
	switch s {
	case StatusOrderComplete, StatusNeedsHuman, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Vehicle is the identified customer vehicle. Either VIN or the HSN/TSN
// pair is present once identification succeeded.
type Vehicle struct {
	VIN   string `json:"vin,omitempty"`
	HSN   string `json:"hsn,omitempty"`
	TSN   string `json:"tsn,omitempty"`
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
	Year  int    `json:"year,omitempty"`
}

// Summary renders the vehicle for the confirmation prompt.
func (v Vehicle) Summary() string {
	parts := make([]string, 0, 4)
	if v.Make != "" {
		parts = append(parts, v.Make)
	}
	if v.Model != "" {
		parts = append(parts, v.Model)
	}
	if v.Year != 0 {
		parts = append(parts, "("+strconv.Itoa(v.Year)+")")
	}
	if len(parts) == 0 {
		if v.VIN != "" {
			return "VIN " + v.VIN
		}
		return "HSN/TSN " + v.HSN + "/" + v.TSN
	}
	return strings.Join(parts, " ")
}

type FulfillmentMethod string

const (
	FulfillmentDelivery FulfillmentMethod = "delivery"
	FulfillmentPickup   FulfillmentMethod = "pickup"
)

type Fulfillment struct {
	Method  FulfillmentMethod `json:"method"`
	Address string            `json:"address,omitempty"`
}

// Order is the single mutable record of one conversation. All mutation
// goes through Machine.Transition under the per-conversation lock; the
// Offers slice is replaced wholesale, never patched in place.
type Order struct {
	ID              string
	Phone           string
	Status          Status
	Language        i18n.Language
	Vehicle         *Vehicle
	PartDescription string
	Offers          []offer.Offer
	// ChosenOffer is a 1-based index into Offers, cleared whenever
	// Offers is refreshed.
	ChosenOffer    *int
	Fulfillment    *Fulfillment
	Version        int
	LastActivityAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reference is the short order id shown to the customer.
func (o *Order) Reference() string {
	if len(o.ID) >= 8 {
		return strings.ToUpper(o.ID[:8])
	}
	return strings.ToUpper(o.ID)
}

// ResetVehicle clears everything tied to the current vehicle, keeping
// identity and language.
func (o *Order) ResetVehicle() {
	o.Vehicle = nil
	o.ResetPart()
}

// ResetPart clears the part request and any offers attached to it.
func (o *Order) ResetPart() {
	o.PartDescription = ""
	o.ReplaceOffers(nil)
	o.Fulfillment = nil
}

// ReplaceOffers swaps the offer set and drops any stale chosen reference.
func (o *Order) ReplaceOffers(offers []offer.Offer) {
	o.Offers = offers
	o.ChosenOffer = nil
}

// Chosen resolves the chosen offer, if the reference is still valid.
func (o *Order) Chosen() (offer.Offer, bool) {
	if o.ChosenOffer == nil {
		return offer.Offer{}, false
	}
	return offer.At(o.Offers, *o.ChosenOffer)
}

// Message is one inbound customer message as seen by the state machine.
type Message struct {
	Text      string
	MediaURLs []string
}
