package i18n

// Locale identifies one of the two languages the site is published in.
type Locale string

const (
	LocalePT Locale = "pt"
	LocaleES Locale = "es"
)

// DefaultLocale is used when a request carries no usable language hint.
const DefaultLocale = LocalePT

// ParseLocale normalizes a raw language tag ("pt", "pt-BR", "es", "es-PY")
// into a supported Locale, falling back to the default for anything else.
func ParseLocale(raw string) Locale {
	if len(raw) >= 2 {
		switch raw[:2] {
		case "pt", "PT", "Pt":
			return LocalePT
		case "es", "ES", "Es":
			return LocaleES
		}
	}
	return DefaultLocale
}

// Translator resolves UI keys and bilingual column pairs for one locale.
// It is constructed per request and passed down explicitly; there is no
// process-global language state.
type Translator struct {
	locale Locale
}

// New returns a Translator bound to the given locale.
func New(locale Locale) *Translator {
	if locale != LocalePT && locale != LocaleES {
		locale = DefaultLocale
	}
	return &Translator{locale: locale}
}

// Locale returns the active locale.
func (t *Translator) Locale() Locale {
	return t.locale
}

// T looks up a UI string by key. Unknown keys echo back the key itself so a
// missing entry is visible instead of rendering blank.
func (t *Translator) T(key string) string {
	table := translationsPT
	if t.locale == LocaleES {
		table = translationsES
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Pick collapses a bilingual column pair (value_pt, value_es) into the string
// for the active locale. Empty active-locale values fall back to the other
// language rather than disappearing.
func (t *Translator) Pick(pt, es string) string {
	if t.locale == LocaleES {
		if es != "" {
			return es
		}
		return pt
	}
	if pt != "" {
		return pt
	}
	return es
}

// PickList collapses a bilingual list pair the same way Pick does.
func (t *Translator) PickList(pt, es []string) []string {
	if t.locale == LocaleES {
		if len(es) > 0 {
			return es
		}
		return pt
	}
	if len(pt) > 0 {
		return pt
	}
	return es
}
