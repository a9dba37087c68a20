// Package i18n resolves message keys into customer-facing text in one of the
// five supported conversation languages.
package i18n

import (
	"fmt"
	"regexp"
	"strings"
)

// Language is a supported conversation language.
type Language string

const (
	German  Language = "de"
	English Language = "en"
	Turkish Language = "tr"
	Kurdish Language = "ku"
	Polish  Language = "pl"
)

// Supported lists all languages every key must be translated into.
var Supported = []Language{German, English, Turkish, Kurdish, Polish}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case German, English, Turkish, Kurdish, Polish:
		return true
	}
	return false
}

// Key identifies a reply template.
type Key string

// T resolves a key for the given language. An unsupported or missing
// language falls back to English. A missing key is a programming error and
// is caught by Validate at startup; at runtime it yields the key itself so
// the defect is visible in logs rather than silently empty.
func T(key Key, lang Language) string {
	entry, ok := catalog[key]
	if !ok {
		return string(key)
	}
	if text, ok := entry[lang]; ok {
		return text
	}
	return entry[English]
}

// TWith resolves a key and substitutes named {placeholder} parameters.
func TWith(key Key, lang Language, params map[string]string) string {
	text := T(key, lang)
	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

var placeholderRe = regexp.MustCompile(`\{[a-zA-Z]+\}`)

// Placeholders returns the parameter names referenced by a template.
func Placeholders(key Key, lang Language) []string {
	matches := placeholderRe.FindAllString(T(key, lang), -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.Trim(m, "{}"))
	}
	return names
}

// Validate checks catalog completeness: every key must have an entry for
// every supported language, and placeholder sets must match across languages.
// Called once at startup; a failure is fatal.
func Validate() error {
	for key, entry := range catalog {
		base := Placeholders(key, English)
		for _, lang := range Supported {
			text, ok := entry[lang]
			if !ok {
				return fmt.Errorf("i18n: key %q missing language %q", key, lang)
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("i18n: key %q has empty text for language %q", key, lang)
			}
			if lang == English {
				continue
			}
			if got := Placeholders(key, lang); !sameSet(base, got) {
				return fmt.Errorf("i18n: key %q placeholder mismatch for language %q (en=%v, %s=%v)",
					key, lang, base, lang, got)
			}
		}
	}
	return nil
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		if seen[s] == 0 {
			return false
		}
		seen[s]--
	}
	return true
}

// Keys returns all declared message keys.
func Keys() []Key {
	keys := make([]Key, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	return keys
}
