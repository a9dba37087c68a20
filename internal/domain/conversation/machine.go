package conversation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"partsbot/internal/domain/offer"
	"partsbot/internal/i18n"
	"partsbot/internal/parse"
	"partsbot/pkg/metrics"
)

// minimum characters for a delivery address to be accepted
const minAddressLen = 10

// minimum characters for a part description to be treated as a request
const minPartLen = 3

// Machine advances one conversation per call. It is stateless and safe
// for concurrent use across different orders; serialization per
// conversation is the worker's job.
type Machine struct {
	vehicles       VehicleIdentifier
	offers         OfferSource
	assist         Answerer
	ranker         *offer.Ranker
	pickupLocation string

	handlers map[Status]handlerFunc
}

type handlerFunc func(ctx context.Context, ord *Order, msg Message, sig parse.Result) []string

type Option func(*Machine)

// WithAssist enables free-text answering for general questions that do
// not advance the dialog.
func WithAssist(a Answerer) Option {
	return func(m *Machine) { m.assist = a }
}

func NewMachine(vehicles VehicleIdentifier, offers OfferSource, ranker *offer.Ranker, pickupLocation string, opts ...Option) *Machine {
	m := &Machine{
		vehicles:       vehicles,
		offers:         offers,
		ranker:         ranker,
		pickupLocation: pickupLocation,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.handlers = map[Status]handlerFunc{
		StatusCollectVehicle:   m.handleCollectVehicle,
		StatusConfirmVehicle:   m.handleConfirmVehicle,
		StatusCollectPart:      m.handleCollectPart,
		StatusShowOffers:       m.handleOfferReply,
		StatusConfirmOffer:     m.handleOfferReply,
		StatusChooseOffer:      m.handleOfferReply,
		StatusDeliveryOrPickup: m.handleDeliveryOrPickup,
		StatusCollectAddress:   m.handleCollectAddress,
		StatusOrderComplete:    m.handleOrderComplete,
		StatusNeedsHuman:       m.handleNeedsHuman,
		StatusCancelled:        m.handleCancelled,
	}
	return m
}

// Result is the outcome of one transition: the mutated order and the
// replies to send, in order.
type Result struct {
	Order   Order
	Replies []string
}

// Transition applies one inbound message to an order. Transitions are
// total: every (status, intent) pair yields a defined next status, even
// when that is "stay and re-prompt". Cancel and fresh-start intents
// interrupt any non-terminal state.
func (m *Machine) Transition(ctx context.Context, ord Order, msg Message) Result {
	if ord.Status == "" {
		ord.Status = StatusCollectVehicle
	}
	if ord.Language == "" {
		ord.Language = i18n.German
	}
	// Language is only detected while the vehicle is still being
	// collected. Once the dialog is underway the stored language is
	// fixed; a stray foreign word ("thanks, please deliver") must not
	// flip an established German conversation to English.
	if ord.Status == StatusCollectVehicle {
		if lang, ok := parse.DetectLanguage(msg.Text); ok {
			ord.Language = lang
		}
	}

	sig := parse.Classify(msg.Text)
	from := ord.Status

	replies := m.dispatch(ctx, &ord, msg, sig)

	metrics.ConversationTransitions.WithLabelValues(string(from), string(ord.Status)).Inc()
	if ord.Status == StatusNeedsHuman && from != StatusNeedsHuman {
		metrics.ConversationEscalations.Inc()
	}
	slog.DebugContext(ctx, "conversation transition",
		"order_id", ord.ID,
		"from", string(from),
		"to", string(ord.Status),
		"intent", string(sig.Intent),
	)
	return Result{Order: ord, Replies: replies}
}

func (m *Machine) dispatch(ctx context.Context, ord *Order, msg Message, sig parse.Result) []string {
	lang := ord.Language

	switch sig.Intent {
	case parse.IntentAbuse:
		return []string{i18n.T(i18n.KeyAbuseWarning, lang)}
	case parse.IntentCancel:
		// Terminal states are never mutated by a cancel; repeating the
		// cancel in an already cancelled conversation just re-acks it.
		if ord.Status == StatusCancelled {
			return []string{i18n.T(i18n.KeyCancelled, lang)}
		}
		if !ord.Status.Terminal() {
			ord.Status = StatusCancelled
			return []string{i18n.T(i18n.KeyCancelled, lang)}
		}
	case parse.IntentFreshStart:
		ord.ResetVehicle()
		ord.Status = StatusCollectVehicle
		return []string{i18n.T(i18n.KeyFreshStart, lang)}
	}

	if reply, ok := m.tryAnswerQuestion(ctx, ord, msg, sig); ok {
		return reply
	}

	handler, ok := m.handlers[ord.Status]
	if !ok {
		// unknown persisted status, recover by starting over
		slog.WarnContext(ctx, "unknown conversation status", "order_id", ord.ID, "status", string(ord.Status))
		ord.ResetVehicle()
		ord.Status = StatusCollectVehicle
		return []string{i18n.T(i18n.KeyGreeting, lang)}
	}
	return handler(ctx, ord, msg, sig)
}

// tryAnswerQuestion handles general questions ("was kostet der Versand?")
// with the assist collaborator, staying in the current state. Free text
// in states that consume it (part description, address) is never treated
// as a question.
func (m *Machine) tryAnswerQuestion(ctx context.Context, ord *Order, msg Message, sig parse.Result) ([]string, bool) {
	if m.assist == nil || sig.Intent != parse.IntentText {
		return nil, false
	}
	switch ord.Status {
	case StatusCollectPart, StatusCollectAddress:
		return nil, false
	}
	question := strings.TrimSpace(msg.Text)
	if !strings.HasSuffix(question, "?") {
		return nil, false
	}

	answer, err := m.assist.Answer(ctx, Question{
		Text:          question,
		Vehicle:       ord.Vehicle,
		MissingFields: missingFields(ord),
		Language:      ord.Language,
	})
	if err != nil || strings.TrimSpace(answer) == "" {
		// fall through to the normal state handler
		slog.WarnContext(ctx, "assist answer failed", "order_id", ord.ID, "error", err)
		return nil, false
	}
	return []string{answer}, true
}

// missingFields names what the conversation still has to collect, so the
// answerer can close with the right follow-up prompt.
func missingFields(ord *Order) []string {
	var missing []string
	if ord.Vehicle == nil {
		missing = append(missing, "vehicle")
	}
	if ord.PartDescription == "" {
		missing = append(missing, "part")
	}
	if ord.Fulfillment == nil {
		missing = append(missing, "fulfillment")
	}
	return missing
}

func isUncertain(err error) bool {
	return errors.Is(err, ErrUncertain)
}

func (m *Machine) escalate(ord *Order) []string {
	ord.Status = StatusNeedsHuman
	return []string{i18n.T(i18n.KeyNeedsHuman, ord.Language)}
}

func (m *Machine) handleCollectVehicle(ctx context.Context, ord *Order, msg Message, sig parse.Result) []string {
	lang := ord.Language

	query := VehicleQuery{VIN: sig.VIN, HSN: sig.HSN, TSN: sig.TSN}
	if len(msg.MediaURLs) > 0 {
		query.MediaURL = msg.MediaURLs[0]
	}
	if query == (VehicleQuery{}) {
		if sig.Intent == parse.IntentGreeting || strings.TrimSpace(msg.Text) == "" {
			return []string{i18n.T(i18n.KeyGreeting, lang)}
		}
		return []string{i18n.T(i18n.KeyCollectVehicleManual, lang)}
	}

	vehicle, err := m.vehicles.Identify(ctx, query)
	switch {
	case err == nil:
		ord.Vehicle = &vehicle
		ord.Status = StatusConfirmVehicle
		return []string{i18n.TWith(i18n.KeyVehicleConfirm, lang, map[string]string{
			"summary": vehicle.Summary(),
		})}
	case isUncertain(err):
		return []string{i18n.T(i18n.KeyVehicleUncertain, lang)}
	default:
		slog.ErrorContext(ctx, "vehicle identification failed", "order_id", ord.ID, "error", err)
		return m.escalate(ord)
	}
}

func (m *Machine) handleConfirmVehicle(_ context.Context, ord *Order, _ Message, sig parse.Result) []string {
	lang := ord.Language
	switch sig.Intent {
	case parse.IntentYes:
		ord.Status = StatusCollectPart
		return []string{i18n.T(i18n.KeyCollectPart, lang)}
	case parse.IntentNo:
		ord.ResetVehicle()
		ord.Status = StatusCollectVehicle
		return []string{i18n.T(i18n.KeyVehicleCorrection, lang)}
	default:
		return []string{i18n.T(i18n.KeyVehicleUnrecognized, lang)}
	}
}

func (m *Machine) handleCollectPart(ctx context.Context, ord *Order, msg Message, _ parse.Result) []string {
	lang := ord.Language
	text := strings.TrimSpace(msg.Text)
	if len([]rune(text)) < minPartLen {
		return []string{i18n.T(i18n.KeyCollectPart, lang)}
	}
	if ord.Vehicle == nil {
		// part request without an identified vehicle, likely a stale record
		ord.Status = StatusCollectVehicle
		return []string{i18n.T(i18n.KeyCollectVehicleManual, lang)}
	}

	ord.PartDescription = text
	return append(
		[]string{i18n.T(i18n.KeySearchingOffers, lang)},
		m.fetchAndPresent(ctx, ord)...,
	)
}

// fetchAndPresent refreshes the offer set and renders it. On sourcing
// failure or an empty result the conversation escalates; retrying within
// collect_part would leave the customer re-describing the same part.
func (m *Machine) fetchAndPresent(ctx context.Context, ord *Order) []string {
	lang := ord.Language

	candidates, err := m.offers.FetchOffers(ctx, *ord.Vehicle, ord.PartDescription)
	if err != nil {
		metrics.OfferFetchFailures.Inc()
		slog.ErrorContext(ctx, "offer sourcing failed", "order_id", ord.ID, "error", err)
		return m.escalate(ord)
	}

	ranking := m.ranker.Rank(candidates)
	ord.ReplaceOffers(ranking.Ordered)

	switch ranking.Presentation {
	case offer.PresentationSingle:
		ord.Status = StatusConfirmOffer
		return []string{m.ranker.RenderSingle(ranking.Ordered[0], lang)}
	case offer.PresentationMultiple:
		ord.Status = StatusChooseOffer
		return []string{m.ranker.RenderList(ranking.Ordered, lang)}
	default:
		ord.Status = StatusNeedsHuman
		return []string{i18n.T(i18n.KeyNoOffers, lang)}
	}
}

// handleOfferReply covers show_offers, confirm_offer and choose_offer.
// The three statuses share one handler because the valid replies depend
// on how many offers are on the table, not on the stored status name.
func (m *Machine) handleOfferReply(ctx context.Context, ord *Order, msg Message, sig parse.Result) []string {
	lang := ord.Language

	if len(ord.Offers) == 0 {
		// offers vanished, e.g. a fresh deploy with an old record
		if ord.PartDescription != "" && ord.Vehicle != nil {
			return m.fetchAndPresent(ctx, ord)
		}
		ord.Status = StatusCollectPart
		return []string{i18n.T(i18n.KeyCollectPart, lang)}
	}

	single := len(ord.Offers) == 1

	switch {
	case sig.Intent == parse.IntentYes && single,
		sig.Intent == parse.IntentChoice && single && sig.Choice == 1:
		return m.acceptOffer(ord, 1)

	case sig.Intent == parse.IntentChoice && !single:
		if _, ok := offer.At(ord.Offers, sig.Choice); !ok {
			return append(
				[]string{i18n.T(i18n.KeyOfferLost, lang)},
				m.fetchAndPresent(ctx, ord)...,
			)
		}
		return m.acceptOffer(ord, sig.Choice)

	case sig.Intent == parse.IntentNo:
		return []string{i18n.T(i18n.KeyOfferDeclined, lang)}

	default:
		// invalid reply: re-show the same set, never re-fetch
		if single {
			return []string{m.ranker.RenderSingle(ord.Offers[0], lang)}
		}
		return []string{
			i18n.T(i18n.KeyOfferChoiceInvalid, lang),
			m.ranker.RenderList(ord.Offers, lang),
		}
	}
}

func (m *Machine) acceptOffer(ord *Order, choice int) []string {
	ord.ChosenOffer = &choice
	ord.Status = StatusDeliveryOrPickup
	return []string{i18n.TWith(i18n.KeyOfferConfirmed, ord.Language, map[string]string{
		"orderId": ord.Reference(),
	})}
}

func (m *Machine) handleDeliveryOrPickup(_ context.Context, ord *Order, _ Message, sig parse.Result) []string {
	lang := ord.Language
	switch sig.Intent {
	case parse.IntentDelivery:
		ord.Fulfillment = &Fulfillment{Method: FulfillmentDelivery}
		ord.Status = StatusCollectAddress
		return []string{i18n.T(i18n.KeyAskAddress, lang)}
	case parse.IntentPickup:
		ord.Fulfillment = &Fulfillment{Method: FulfillmentPickup}
		ord.Status = StatusOrderComplete
		return []string{i18n.TWith(i18n.KeyPickupLocation, lang, map[string]string{
			"location": m.pickupLocation,
			"orderId":  ord.Reference(),
		})}
	default:
		return []string{i18n.T(i18n.KeyDeliveryOrPickup, lang)}
	}
}

func (m *Machine) handleCollectAddress(_ context.Context, ord *Order, msg Message, _ parse.Result) []string {
	lang := ord.Language
	address := strings.TrimSpace(msg.Text)
	if len([]rune(address)) < minAddressLen {
		return []string{i18n.T(i18n.KeyAddressInvalid, lang)}
	}
	ord.Fulfillment = &Fulfillment{Method: FulfillmentDelivery, Address: address}
	ord.Status = StatusOrderComplete
	return []string{i18n.TWith(i18n.KeyAddressSaved, lang, map[string]string{
		"orderId": ord.Reference(),
	})}
}

// handleOrderComplete lets a finished customer ask for another part on
// the same vehicle without re-identifying it.
func (m *Machine) handleOrderComplete(_ context.Context, ord *Order, msg Message, sig parse.Result) []string {
	lang := ord.Language
	switch sig.Intent {
	case parse.IntentYes, parse.IntentGreeting, parse.IntentText:
		if strings.TrimSpace(msg.Text) == "" || ord.Vehicle == nil {
			return []string{i18n.T(i18n.KeyOrderComplete, lang)}
		}
		ord.ResetPart()
		ord.Status = StatusCollectPart
		return []string{i18n.TWith(i18n.KeyFollowUpPart, lang, map[string]string{
			"make":  ord.Vehicle.Make,
			"model": ord.Vehicle.Model,
		})}
	case parse.IntentNo:
		return []string{i18n.T(i18n.KeyGoodbye, lang)}
	default:
		return []string{i18n.T(i18n.KeyOrderComplete, lang)}
	}
}

func (m *Machine) handleNeedsHuman(_ context.Context, ord *Order, _ Message, _ parse.Result) []string {
	return []string{i18n.T(i18n.KeyHandoffFollowUp, ord.Language)}
}

// handleCancelled starts the conversation over when a customer returns
// after cancelling.
func (m *Machine) handleCancelled(_ context.Context, ord *Order, _ Message, _ parse.Result) []string {
	ord.ResetVehicle()
	ord.Status = StatusCollectVehicle
	return []string{i18n.T(i18n.KeyGreeting, ord.Language)}
}
