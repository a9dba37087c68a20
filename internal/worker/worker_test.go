package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partsbot/internal/domain/conversation"
	"partsbot/internal/domain/offer"
	"partsbot/internal/i18n"
	"partsbot/internal/messaging"
	order_repo "partsbot/internal/repo/order"
)

type fakeTransport struct {
	mu      sync.Mutex
	sent    []string
	typing  int
	sendErr error
}

func (f *fakeTransport) SendMessage(_ context.Context, _, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeTransport) SendTyping(context.Context, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.typing++
}

func (f *fakeTransport) messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

type fixedIdentifier struct{}

func (fixedIdentifier) Identify(context.Context, conversation.VehicleQuery) (conversation.Vehicle, error) {
	return conversation.Vehicle{Make: "VW", Model: "Golf", Year: 2018, VIN: "WVWZZZ1KZAW123456"}, nil
}

type fixedSource struct{}

func (fixedSource) FetchOffers(context.Context, conversation.Vehicle, string) ([]offer.Offer, error) {
	d2, d5 := 2, 5
	return []offer.Offer{
		{ShopName: "Teilehaus", Brand: "Bosch", Price: 89.9, DeliveryDays: &d2},
		{ShopName: "Autoteile24", Brand: "ATE", Price: 102.5, DeliveryDays: &d5},
	}, nil
}

func newTestWorker(t *testing.T) (*Worker, *order_repo.MemoryRepo, *fakeTransport) {
	t.Helper()
	repo := order_repo.NewMemoryRepo()
	transport := &fakeTransport{}
	machine := conversation.NewMachine(
		fixedIdentifier{}, fixedSource{},
		offer.NewRanker([]string{"Händler-Lager"}),
		"Musterstraße 1, 10115 Berlin",
	)
	w := New(repo, machine, transport, NewKeyedMutex(), NewMemoryDeduper(time.Hour, 1000))
	return w, repo, transport
}

const phone = "+4915112345678"

func process(t *testing.T, w *Worker, sid, text string) {
	t.Helper()
	require.NoError(t, w.ProcessJob(context.Background(), Job{From: phone, Text: text, MessageSid: sid}))
}

func TestProcessJob_FullConversation(t *testing.T) {
	w, repo, transport := newTestWorker(t)
	ctx := context.Background()

	process(t, w, "sid-1", "Hallo")
	process(t, w, "sid-2", "WVWZZZ1KZAW123456")
	process(t, w, "sid-3", "ja")
	process(t, w, "sid-4", "bremsscheiben vorne")
	process(t, w, "sid-5", "1")
	process(t, w, "sid-6", "Lieferung")
	process(t, w, "sid-7", "Musterweg 12, 10115 Berlin")

	ord, err := repo.GetByPhone(ctx, phone)
	require.NoError(t, err)
	assert.Equal(t, conversation.StatusOrderComplete, ord.Status)
	assert.Equal(t, 7, ord.Version)
	require.NotNil(t, ord.Fulfillment)
	assert.Equal(t, "Musterweg 12, 10115 Berlin", ord.Fulfillment.Address)
	chosen, ok := ord.Chosen()
	require.True(t, ok)
	assert.Equal(t, "Teilehaus", chosen.ShopName)
	assert.False(t, ord.LastActivityAt.IsZero())

	sent := transport.messages()
	require.NotEmpty(t, sent)
	joined := ""
	for _, msg := range sent {
		joined += msg + "\n"
	}
	assert.Contains(t, joined, i18n.T(i18n.KeyOfferMultiBinding, i18n.German))
	assert.Contains(t, joined, i18n.T(i18n.KeyAskAddress, i18n.German))
}

func TestProcessJob_DuplicateSidSkipped(t *testing.T) {
	w, repo, transport := newTestWorker(t)
	ctx := context.Background()

	process(t, w, "sid-1", "Hallo")
	before := len(transport.messages())
	ordBefore, _ := repo.GetByPhone(ctx, phone)

	process(t, w, "sid-1", "Hallo")

	assert.Len(t, transport.messages(), before)
	ordAfter, _ := repo.GetByPhone(ctx, phone)
	assert.Equal(t, ordBefore.Version, ordAfter.Version)
}

func TestProcessJob_EmptySenderIsPermanent(t *testing.T) {
	w, _, _ := newTestWorker(t)

	err := w.ProcessJob(context.Background(), Job{From: "", Text: "hallo"})
	assert.ErrorIs(t, err, messaging.ErrPermanent)
}

func TestProcessJob_SendFailureDoesNotRerunTransition(t *testing.T) {
	w, repo, transport := newTestWorker(t)
	ctx := context.Background()
	transport.sendErr = errors.New("transport down")

	err := w.ProcessJob(ctx, Job{From: phone, Text: "Hallo", MessageSid: "sid-1"})
	require.Error(t, err)

	ord, err := repo.GetByPhone(ctx, phone)
	require.NoError(t, err)
	version := ord.Version

	// The transition persisted before the send, so a webhook retry of
	// the same sid is acked without applying the message again.
	transport.sendErr = nil
	process(t, w, "sid-1", "Hallo")

	ord, err = repo.GetByPhone(ctx, phone)
	require.NoError(t, err)
	assert.Equal(t, version, ord.Version)
	assert.Empty(t, transport.messages())
}

func TestProcessJob_ConcurrentSamePhoneSerialized(t *testing.T) {
	w, repo, _ := newTestWorker(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := "concurrent-" + string(rune('a'+i))
			assert.NoError(t, w.ProcessJob(ctx, Job{From: phone, Text: "Hallo", MessageSid: sid}))
		}(i)
	}
	wg.Wait()

	// both transitions persisted; no lost update
	ord, err := repo.GetByPhone(ctx, phone)
	require.NoError(t, err)
	assert.Equal(t, 2, ord.Version)
}

func TestProcessJob_TypingFired(t *testing.T) {
	w, _, transport := newTestWorker(t)
	process(t, w, "sid-1", "Hallo")
	assert.Equal(t, 1, transport.typing)
}
