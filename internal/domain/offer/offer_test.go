package offer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partsbot/internal/i18n"
)

func days(n int) *int { return &n }

func TestRank_PriceThenDelivery(t *testing.T) {
	r := NewRanker(nil)
	ranking := r.Rank([]Offer{
		{ShopName: "A", Brand: "Bosch", Price: 120, DeliveryDays: days(3)},
		{ShopName: "B", Brand: "ATE", Price: 95, DeliveryDays: days(5)},
		{ShopName: "C", Brand: "Brembo", Price: 95, DeliveryDays: days(0)},
	})

	require.Equal(t, PresentationMultiple, ranking.Presentation)
	require.Len(t, ranking.Ordered, 3)
	assert.Equal(t, "C", ranking.Ordered[0].ShopName)
	assert.Equal(t, "B", ranking.Ordered[1].ShopName)
	assert.Equal(t, "A", ranking.Ordered[2].ShopName)
}

func TestRank_OwnStockCountsAsInstant(t *testing.T) {
	r := NewRanker([]string{"Händler-Lager", "Eigener Bestand"})
	ranking := r.Rank([]Offer{
		{ShopName: "Teilehaus", Brand: "Bosch", Price: 80, DeliveryDays: days(2)},
		{ShopName: "Händler-Lager", Brand: "Bosch", Price: 80, DeliveryDays: days(7)},
	})

	require.Len(t, ranking.Ordered, 2)
	assert.Equal(t, "Händler-Lager", ranking.Ordered[0].ShopName)
	assert.Equal(t, 0, r.EffectiveDeliveryDays(ranking.Ordered[0]))
}

func TestRank_Dedupe(t *testing.T) {
	r := NewRanker(nil)
	ranking := r.Rank([]Offer{
		{ShopName: "A", Brand: "Bosch", Price: 100},
		{ShopName: "a", Brand: "bosch", Price: 100},
		{ShopName: "A", Brand: "Bosch", Price: 110},
	})
	assert.Len(t, ranking.Ordered, 2)
}

func TestRank_TruncatesToThree(t *testing.T) {
	r := NewRanker(nil)
	ranking := r.Rank([]Offer{
		{ShopName: "A", Price: 10},
		{ShopName: "B", Price: 20},
		{ShopName: "C", Price: 30},
		{ShopName: "D", Price: 40},
		{ShopName: "E", Price: 50},
	})
	require.Equal(t, PresentationMultiple, ranking.Presentation)
	assert.Len(t, ranking.Ordered, 3)
	assert.Equal(t, "C", ranking.Ordered[2].ShopName)
}

func TestRank_SingleAndEmpty(t *testing.T) {
	r := NewRanker(nil)
	assert.Equal(t, PresentationSingle, r.Rank([]Offer{{ShopName: "A", Price: 10}}).Presentation)
	assert.Equal(t, PresentationNone, r.Rank(nil).Presentation)
}

func TestRank_DeterministicAcrossInputOrder(t *testing.T) {
	r := NewRanker(nil)
	offers := []Offer{
		{ShopName: "B", Brand: "ATE", Price: 95, DeliveryDays: days(2)},
		{ShopName: "A", Brand: "Bosch", Price: 95, DeliveryDays: days(2)},
	}
	reversed := []Offer{offers[1], offers[0]}

	first := r.Rank(offers)
	second := r.Rank(reversed)
	assert.Equal(t, first.Ordered, second.Ordered)
}

func TestAt(t *testing.T) {
	offers := []Offer{{ShopName: "A"}, {ShopName: "B"}}

	got, ok := At(offers, 2)
	require.True(t, ok)
	assert.Equal(t, "B", got.ShopName)

	_, ok = At(offers, 3)
	assert.False(t, ok)
	_, ok = At(offers, 0)
	assert.False(t, ok)
}

func TestRenderSingle_ContainsBindingNote(t *testing.T) {
	r := NewRanker(nil)
	o := Offer{ShopName: "A", Brand: "Bosch", Price: 89.9, DeliveryDays: days(2)}

	for _, lang := range i18n.Supported {
		reply := r.RenderSingle(o, lang)
		assert.Contains(t, reply, i18n.T(i18n.KeyOfferBindingNote, lang), "language %s", lang)
		assert.Contains(t, reply, "89.90")
	}
}

func TestRenderList_NumberedWithMultiBinding(t *testing.T) {
	r := NewRanker(nil)
	offers := []Offer{
		{ShopName: "A", Brand: "Bosch", Price: 80, DeliveryDays: days(0)},
		{ShopName: "B", Price: 95, DeliveryDays: days(3)},
	}

	reply := r.RenderList(offers, i18n.German)
	assert.Contains(t, reply, "*1.*")
	assert.Contains(t, reply, "*2.*")
	assert.NotContains(t, reply, "*3.*")
	assert.Contains(t, reply, i18n.T(i18n.KeyOfferMultiBinding, i18n.German))
	// missing brand renders the placeholder, never an empty cell
	assert.Contains(t, reply, i18n.T(i18n.KeyNotAvailable, i18n.German))
	// zero delivery days shows the instant label, not "0 days"
	assert.Contains(t, reply, i18n.T(i18n.KeyOfferInstant, i18n.German))
	assert.True(t, strings.Contains(reply, i18n.T(i18n.KeyOfferChoosePrompt, i18n.German)))
}
