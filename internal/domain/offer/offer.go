// Package offer ranks candidate purchase offers and renders them for the
// customer. Every rendered confirmation path carries a binding-purchase
// disclosure, so the reply builders live next to the ranking rules.
package offer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"partsbot/internal/i18n"
)

// Offer is one candidate sourced for a part request. Offers are attached
// to an order and replaced wholesale on every re-fetch.
type Offer struct {
	ShopName     string  `json:"shopName"`
	Brand        string  `json:"brand,omitempty"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency,omitempty"`
	Availability string  `json:"availability,omitempty"`
	DeliveryDays *int    `json:"deliveryDays,omitempty"`
	OwnStock     bool    `json:"ownStock,omitempty"`
}

type Presentation string

const (
	PresentationNone     Presentation = "none"
	PresentationSingle   Presentation = "single"
	PresentationMultiple Presentation = "multiple"
)

// Ranking is the result of ranking one candidate set. Ordered holds at
// most three offers so numbered replies stay within 1..3.
type Ranking struct {
	Presentation Presentation
	Ordered      []Offer
}

// delivery days used for ordering when an offer carries no estimate at
// all; it sorts such offers behind anything with a known estimate.
const unknownDeliveryDays = 999

const maxPresented = 3

// Ranker orders offers. Shops listed in ownStockLabels hold the part on
// the dealer's own shelf and are treated as instantly available.
type Ranker struct {
	ownStockLabels map[string]struct{}
}

func NewRanker(ownStockLabels []string) *Ranker {
	labels := make(map[string]struct{}, len(ownStockLabels))
	for _, l := range ownStockLabels {
		labels[strings.ToLower(strings.TrimSpace(l))] = struct{}{}
	}
	return &Ranker{ownStockLabels: labels}
}

func (r *Ranker) isOwnStock(o Offer) bool {
	if o.OwnStock {
		return true
	}
	_, ok := r.ownStockLabels[strings.ToLower(strings.TrimSpace(o.ShopName))]
	return ok
}

// EffectiveDeliveryDays is the ordering key for delivery speed. Own-stock
// offers count as zero days regardless of any stated estimate.
func (r *Ranker) EffectiveDeliveryDays(o Offer) int {
	if r.isOwnStock(o) {
		return 0
	}
	if o.DeliveryDays == nil {
		return unknownDeliveryDays
	}
	return *o.DeliveryDays
}

// Rank deduplicates by (shop, brand, price), sorts by ascending price with
// delivery speed as tie-break, and truncates to the top three. The result
// is deterministic for a given candidate set regardless of input order.
func (r *Ranker) Rank(candidates []Offer) Ranking {
	type dedupeKey struct {
		shop  string
		brand string
		price string
	}
	seen := make(map[dedupeKey]struct{}, len(candidates))
	unique := make([]Offer, 0, len(candidates))
	for _, o := range candidates {
		k := dedupeKey{
			shop:  strings.ToLower(strings.TrimSpace(o.ShopName)),
			brand: strings.ToLower(strings.TrimSpace(o.Brand)),
			price: strconv.FormatFloat(o.Price, 'f', 2, 64),
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, o)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if unique[i].Price != unique[j].Price {
			return unique[i].Price < unique[j].Price
		}
		di, dj := r.EffectiveDeliveryDays(unique[i]), r.EffectiveDeliveryDays(unique[j])
		if di != dj {
			return di < dj
		}
		if unique[i].ShopName != unique[j].ShopName {
			return unique[i].ShopName < unique[j].ShopName
		}
		return unique[i].Brand < unique[j].Brand
	})

	if len(unique) > maxPresented {
		unique = unique[:maxPresented]
	}

	switch len(unique) {
	case 0:
		return Ranking{Presentation: PresentationNone}
	case 1:
		return Ranking{Presentation: PresentationSingle, Ordered: unique}
	default:
		return Ranking{Presentation: PresentationMultiple, Ordered: unique}
	}
}

// At returns the 1-based offer a customer chose, or false when the index
// no longer points into the stored set.
func At(offers []Offer, choice int) (Offer, bool) {
	if choice < 1 || choice > len(offers) {
		return Offer{}, false
	}
	return offers[choice-1], true
}

func formatPrice(o Offer) string {
	currency := o.Currency
	if currency == "" {
		currency = "€"
	}
	return fmt.Sprintf("%.2f %s", o.Price, currency)
}

func orValue(s string, lang i18n.Language) string {
	if strings.TrimSpace(s) == "" {
		return i18n.T(i18n.KeyNotAvailable, lang)
	}
	return s
}

func (r *Ranker) deliveryLabel(o Offer, lang i18n.Language) string {
	if r.isOwnStock(o) || (o.DeliveryDays != nil && *o.DeliveryDays == 0) {
		return i18n.T(i18n.KeyOfferInstant, lang)
	}
	if o.DeliveryDays == nil {
		return i18n.T(i18n.KeyNotAvailable, lang)
	}
	return i18n.TWith(i18n.KeyOfferDeliveryDays, lang, map[string]string{
		"days": strconv.Itoa(*o.DeliveryDays),
	})
}

// RenderSingle builds the one-offer reply: details, the binding-agreement
// note and a yes/no prompt.
func (r *Ranker) RenderSingle(o Offer, lang i18n.Language) string {
	var b strings.Builder
	b.WriteString(i18n.T(i18n.KeyOfferSingleHeader, lang))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s: %s\n", i18n.T(i18n.KeyLabelBrand, lang), orValue(o.Brand, lang))
	fmt.Fprintf(&b, "%s: %s\n", i18n.T(i18n.KeyLabelPrice, lang), formatPrice(o))
	fmt.Fprintf(&b, "%s: %s\n\n", i18n.T(i18n.KeyLabelStock, lang), r.deliveryLabel(o, lang))
	b.WriteString(i18n.T(i18n.KeyOfferBindingNote, lang))
	b.WriteString("\n\n")
	b.WriteString(i18n.T(i18n.KeyOfferOrderPrompt, lang))
	return b.String()
}

// RenderList builds the numbered multi-offer reply with the multi-select
// binding note and the 1/2/3 prompt.
func (r *Ranker) RenderList(offers []Offer, lang i18n.Language) string {
	var b strings.Builder
	b.WriteString(i18n.T(i18n.KeyOfferMultiHeader, lang))
	b.WriteString("\n\n")
	for i, o := range offers {
		fmt.Fprintf(&b, "*%d.* %s – %s – %s\n",
			i+1, orValue(o.Brand, lang), formatPrice(o), r.deliveryLabel(o, lang))
	}
	b.WriteString("\n")
	b.WriteString(i18n.T(i18n.KeyOfferMultiBinding, lang))
	b.WriteString("\n\n")
	b.WriteString(i18n.T(i18n.KeyOfferChoosePrompt, lang))
	return b.String()
}

// Render picks the presentation appropriate for the ranking.
func (r *Ranker) Render(ranking Ranking, lang i18n.Language) string {
	switch ranking.Presentation {
	case PresentationSingle:
		return r.RenderSingle(ranking.Ordered[0], lang)
	case PresentationMultiple:
		return r.RenderList(ranking.Ordered, lang)
	default:
		return i18n.T(i18n.KeyNoOffers, lang)
	}
}
