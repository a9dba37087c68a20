// Package parse turns raw WhatsApp message text into structured signals:
// an intent, an optional numeric choice, and any vehicle identifiers found
// in the text. Classification is keyword based and language aware.
package parse

import (
	"regexp"
	"strings"

	"partsbot/internal/i18n"
)

type Intent string

const (
	IntentUnknown    Intent = "unknown"
	IntentYes        Intent = "yes"
	IntentNo         Intent = "no"
	IntentCancel     Intent = "cancel"
	IntentFreshStart Intent = "fresh_start"
	IntentChoice     Intent = "choice"
	IntentDelivery   Intent = "delivery"
	IntentPickup     Intent = "pickup"
	IntentAbuse      Intent = "abuse"
	IntentGreeting   Intent = "greeting"
	IntentText       Intent = "text"
)

// Result is the classification of a single inbound message.
type Result struct {
	Intent Intent
	// Choice is set when Intent is IntentChoice, 1-based.
	Choice int
	// Vehicle identifiers extracted from the text, empty when absent.
	VIN string
	HSN string
	TSN string
}

var (
	yesWords = []string{
		"ja", "jo", "jup", "jep", "yes", "yep", "y", "ok", "okay", "okey",
		"passt", "genau", "stimmt", "richtig", "korrekt",
		"evet", "tamam", "erê", "bele", "tak", "dobrze",
	}
	noWords = []string{
		"nein", "no", "nicht", "falsch", "anders",
		"hayır", "na", "nexêr", "nie",
	}
	cancelWords = []string{
		"abbrechen", "abbruch", "cancel", "stop", "stopp", "aufhören",
		"kein interesse", "vergiss es", "beenden",
		"iptal", "betal", "anuluj",
	}
	freshStartPhrases = []string{
		"neues fahrzeug", "neues auto", "anderes auto", "anderes fahrzeug",
		"new vehicle", "new car", "different car", "von vorne", "start over",
		"neu anfangen", "yeni araç", "wesayîta nû", "nowy samochód",
	}
	abusiveWords = []string{
		"hurensohn", "arschloch", "fotze", "verpiss", "scheiss", "scheiße",
		"wichser", "missgeburt", "bastard", "vollidiot",
		"fuck", "bitch", "shit", "idiot", "asshole", "moron",
	}
)

var (
	greetingRe = regexp.MustCompile(`(?i)^(hallo|hello|hi|hey|moin|servus|merhaba|silav|cześć|guten\s?(tag|morgen|abend))[\s!.]*$`)
	// The single letters must cover every shortcut the delivery/pickup
	// prompts advertise: L/A (de), D/P (en), T/M (tr), G/W (ku), D/O (pl).
	deliveryRe = regexp.MustCompile(`(?i)liefer|deliver|versand|teslimat|gihandin|dostaw|^d$|^l$|^t$|^g$`)
	pickupRe   = regexp.MustCompile(`(?i)abhol|pickup|pick.?up|teslim al|werbigir|odbi|^p$|^a$|^m$|^w$|^o$`)

	// VIN is 17 chars, letters I, O and Q excluded by ISO 3779.
	vinRe    = regexp.MustCompile(`\b[A-HJ-NPR-Za-hj-npr-z0-9]{17}\b`)
	hsnTsnRe = regexp.MustCompile(`\b(\d{4})\s*[/\s-]\s*([A-Za-z0-9]{3})\b`)
	choiceRe = regexp.MustCompile(`^([123])[).!\s]*$`)
)

// Classify maps message text to an intent. Cancel and fresh-start signals
// win over everything else so they can interrupt any conversation state.
func Classify(text string) Result {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	res := Result{Intent: IntentText}
	res.VIN, res.HSN, res.TSN = ExtractVehicleIDs(trimmed)

	switch {
	case lower == "":
		res.Intent = IntentUnknown
	case containsAny(lower, abusiveWords):
		res.Intent = IntentAbuse
	case containsAny(lower, cancelWords):
		res.Intent = IntentCancel
	case containsAnyPhrase(lower, freshStartPhrases):
		res.Intent = IntentFreshStart
	case choiceRe.MatchString(trimmed):
		res.Intent = IntentChoice
		res.Choice = int(choiceRe.FindStringSubmatch(trimmed)[1][0] - '0')
	case matchesWord(lower, yesWords):
		res.Intent = IntentYes
	case matchesWord(lower, noWords):
		res.Intent = IntentNo
	case deliveryRe.MatchString(lower):
		res.Intent = IntentDelivery
	case pickupRe.MatchString(lower):
		res.Intent = IntentPickup
	case greetingRe.MatchString(trimmed):
		res.Intent = IntentGreeting
	}
	return res
}

// ExtractVehicleIDs pulls a VIN or an HSN/TSN pair out of free text.
// A 17-char VIN candidate takes precedence over an HSN/TSN match.
func ExtractVehicleIDs(text string) (vin, hsn, tsn string) {
	if m := vinRe.FindString(text); m != "" {
		return strings.ToUpper(m), "", ""
	}
	if m := hsnTsnRe.FindStringSubmatch(text); m != nil {
		return "", m[1], strings.ToUpper(m[2])
	}
	return "", "", ""
}

// ParseChoice reads a strict numbered selection ("1", "2" or "3",
// trailing punctuation tolerated). Returns 0 when the text is not one.
func ParseChoice(text string) int {
	m := choiceRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0
	}
	return int(m[1][0] - '0')
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func containsAnyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// matchesWord requires the whole message to be one of the listed words,
// optionally followed by punctuation. Substring matching here caused
// false positives ("janitor" is not a yes).
func matchesWord(text string, words []string) bool {
	cleaned := strings.TrimRight(text, " !.?,")
	for _, w := range words {
		if cleaned == w {
			return true
		}
	}
	return false
}

var languageHints = map[i18n.Language][]string{
	i18n.German:  {"hallo", "moin", "servus", "danke", "bitte", "brauche", "suche", "möchte", "guten", "nein", "fahrzeugschein"},
	i18n.English: {"hello", "thanks", "thank you", "cheers", "need", "looking", "want", "morning", "please"},
	i18n.Turkish: {"merhaba", "teşekkür", "lütfen", "lazım", "arıyorum", "istiyorum", "evet", "hayır"},
	i18n.Kurdish: {"silav", "spas", "kerema", "hewce", "digerim", "dixwazim", "erê", "nexêr"},
	i18n.Polish:  {"cześć", "dzień dobry", "dziękuję", "proszę", "potrzebuję", "szukam", "chcę"},
}

// DetectLanguage guesses the message language from hint words. It returns
// ok=false when nothing matched so the caller can keep the stored language.
func DetectLanguage(text string) (i18n.Language, bool) {
	t := strings.ToLower(text)
	best := i18n.German
	bestScore := 0
	for _, lang := range i18n.Supported {
		score := 0
		for _, hint := range languageHints[lang] {
			if strings.Contains(t, hint) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = lang, score
		}
	}
	return best, bestScore > 0
}
