package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"partsbot/internal/i18n"
)

func TestClassify_Yes(t *testing.T) {
	for _, msg := range []string{"ja", "Ja!", "yes", "passt", "evet", "tak", "OK"} {
		assert.Equal(t, IntentYes, Classify(msg).Intent, "message %q", msg)
	}
}

func TestClassify_No(t *testing.T) {
	for _, msg := range []string{"nein", "no", "hayır", "nie"} {
		assert.Equal(t, IntentNo, Classify(msg).Intent, "message %q", msg)
	}
}

func TestClassify_WholeWordOnly(t *testing.T) {
	// "janitor" contains "ja" but is not a confirmation.
	assert.Equal(t, IntentText, Classify("janitor").Intent)
	assert.Equal(t, IntentText, Classify("nokia ersatzteil").Intent)
}

func TestClassify_CancelBeatsEverything(t *testing.T) {
	res := Classify("ja bitte abbrechen")
	assert.Equal(t, IntentCancel, res.Intent)
}

func TestClassify_FreshStart(t *testing.T) {
	for _, msg := range []string{"ich habe ein neues Auto", "new car please", "von vorne bitte"} {
		assert.Equal(t, IntentFreshStart, Classify(msg).Intent, "message %q", msg)
	}
}

func TestClassify_Choice(t *testing.T) {
	tests := []struct {
		msg  string
		want int
	}{
		{"1", 1},
		{"2.", 2},
		{" 3 ", 3},
		{"4", 0},
		{"1 bitte", 0},
		{"nummer 2", 0},
	}
	for _, tt := range tests {
		res := Classify(tt.msg)
		if tt.want == 0 {
			assert.NotEqual(t, IntentChoice, res.Intent, "message %q", tt.msg)
		} else {
			assert.Equal(t, IntentChoice, res.Intent, "message %q", tt.msg)
			assert.Equal(t, tt.want, res.Choice, "message %q", tt.msg)
		}
	}
}

func TestClassify_DeliveryPickup(t *testing.T) {
	for _, msg := range []string{"Lieferung", "deliver it", "teslimat", "dostawa", "d"} {
		assert.Equal(t, IntentDelivery, Classify(msg).Intent, "message %q", msg)
	}
	for _, msg := range []string{"Abholung", "pickup", "pick up", "odbiór", "p"} {
		assert.Equal(t, IntentPickup, Classify(msg).Intent, "message %q", msg)
	}
}

// Every shortcut letter the delivery/pickup prompts advertise must be
// accepted, in every language.
func TestClassify_PromptedShortcutLetters(t *testing.T) {
	for _, msg := range []string{"L", "d", "T", "g"} {
		assert.Equal(t, IntentDelivery, Classify(msg).Intent, "message %q", msg)
	}
	for _, msg := range []string{"A", "p", "M", "W", "o"} {
		assert.Equal(t, IntentPickup, Classify(msg).Intent, "message %q", msg)
	}
}

func TestClassify_Abuse(t *testing.T) {
	assert.Equal(t, IntentAbuse, Classify("du vollidiot").Intent)
}

func TestClassify_Greeting(t *testing.T) {
	for _, msg := range []string{"Hallo", "hi!", "Guten Morgen", "merhaba"} {
		assert.Equal(t, IntentGreeting, Classify(msg).Intent, "message %q", msg)
	}
}

func TestClassify_Empty(t *testing.T) {
	assert.Equal(t, IntentUnknown, Classify("   ").Intent)
}

func TestExtractVehicleIDs_VIN(t *testing.T) {
	vin, hsn, tsn := ExtractVehicleIDs("meine VIN ist wvwzzz1kzaw123456 danke")
	assert.Equal(t, "WVWZZZ1KZAW123456", vin)
	assert.Empty(t, hsn)
	assert.Empty(t, tsn)
}

func TestExtractVehicleIDs_HSNTSN(t *testing.T) {
	vin, hsn, tsn := ExtractVehicleIDs("0603 / bnx")
	assert.Empty(t, vin)
	assert.Equal(t, "0603", hsn)
	assert.Equal(t, "BNX", tsn)
}

func TestExtractVehicleIDs_None(t *testing.T) {
	vin, hsn, tsn := ExtractVehicleIDs("bremsscheiben vorne")
	assert.Empty(t, vin)
	assert.Empty(t, hsn)
	assert.Empty(t, tsn)
}

func TestParseChoice(t *testing.T) {
	assert.Equal(t, 2, ParseChoice("2)"))
	assert.Equal(t, 0, ParseChoice("zwei"))
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		msg  string
		want i18n.Language
	}{
		{"hallo, ich brauche bremsscheiben", i18n.German},
		{"hello, I need brake discs please", i18n.English},
		{"merhaba, fren diski lazım", i18n.Turkish},
		{"silav, ez li perçeyekê digerim", i18n.Kurdish},
		{"cześć, potrzebuję tarcz hamulcowych", i18n.Polish},
	}
	for _, tt := range tests {
		got, ok := DetectLanguage(tt.msg)
		assert.True(t, ok, "message %q", tt.msg)
		assert.Equal(t, tt.want, got, "message %q", tt.msg)
	}
}

func TestDetectLanguage_NoHints(t *testing.T) {
	_, ok := DetectLanguage("xyz 123")
	assert.False(t, ok)
}
