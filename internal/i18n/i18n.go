// Package i18n holds the site's English/Portuguese UI strings and the
// lookup helpers the templates use.
package i18n

import (
	"fmt"
	"time"
)

// Language is a supported UI language code, used as the leading URL segment.
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// DefaultLanguage is served at the bare root and used as translation
// fallback.
const DefaultLanguage = English

// Languages maps every supported language to its display name.
var Languages = map[Language]string{
	English:    "English",
	Portuguese: "Português",
}

// Supported reports whether code is a language the site serves.
func Supported(code string) bool {
	_, ok := Languages[Language(code)]
	return ok
}

// T resolves a dotted key ("blog.readMore") for a language, falling back to
// the default language and finally echoing the key itself so a missing
// entry is visible instead of blank.
func T(lang Language, key string) string {
	if v, ok := translations[lang][key]; ok {
		return v
	}
	if v, ok := translations[DefaultLanguage][key]; ok {
		return v
	}
	return key
}

// Table returns the full string table for a language with default-language
// fallback already applied, for handing to templates in one piece.
func Table(lang Language) map[string]string {
	out := make(map[string]string, len(translations[DefaultLanguage]))
	for k, v := range translations[DefaultLanguage] {
		out[k] = v
	}
	for k, v := range translations[lang] {
		out[k] = v
	}
	return out
}

var ptMonths = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// FormatDate renders a date the way each locale expects it in the commit
// log: "Jan 2, 2006" for English, "2 de jan de 2006" for Portuguese.
func FormatDate(lang Language, t time.Time) string {
	if lang == Portuguese {
		return fmt.Sprintf("%d de %s de %d", t.Day(), ptMonths[t.Month()-1], t.Year())
	}
	return t.Format("Jan 2, 2006")
}
