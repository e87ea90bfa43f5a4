// Package i18n looks up UI strings for the active locale.
package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Locale is a supported UI language.
type Locale string

const (
	English Locale = "en"
	Russian Locale = "ru"
)

// Locales lists the supported locales in toggle order.
var Locales = []Locale{English, Russian}

// ParseLocale accepts "en", "ru" and region-qualified forms like "ru_RU.UTF-8".
func ParseLocale(s string) (Locale, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "_-."); i > 0 {
		s = s[:i]
	}
	for _, l := range Locales {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported locale %q", s)
}

// Dict maps translation keys to text.
type Dict map[string]string

func loadDict(l Locale) (Dict, error) {
	b, err := localeFS.ReadFile("locales/" + string(l) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("read %s dictionary: %w", l, err)
	}
	d := Dict{}
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("parse %s dictionary: %w", l, err)
	}
	return d, nil
}

// Translator resolves keys for the active locale and notifies listeners
// when the locale changes. Like the state store it is used from the UI
// goroutine only.
type Translator struct {
	locale   Locale
	dict     Dict
	fallback Dict
	subs     map[int]func(Locale)
	order    []int
	nextID   int
}

// New creates a translator for locale. English is always loaded as the
// fallback dictionary.
func New(locale Locale) (*Translator, error) {
	en, err := loadDict(English)
	if err != nil {
		return nil, err
	}
	t := &Translator{fallback: en, subs: map[int]func(Locale){}}
	if err := t.SetLocale(locale); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Translator) Locale() Locale { return t.locale }

// T returns the text for key. Unknown keys fall back to English and then to
// the key itself.
func (t *Translator) T(key string) string {
	if v, ok := t.dict[key]; ok {
		return v
	}
	if v, ok := t.fallback[key]; ok {
		return v
	}
	return key
}

// SetLocale switches the active dictionary and notifies subscribers. If the
// dictionary cannot be loaded the current one stays in place.
func (t *Translator) SetLocale(l Locale) error {
	d, err := loadDict(l)
	if err != nil {
		return err
	}
	changed := t.locale != l
	t.locale = l
	t.dict = d
	if changed {
		for _, id := range append([]int(nil), t.order...) {
			if fn, ok := t.subs[id]; ok {
				fn(l)
			}
		}
	}
	return nil
}

// Toggle moves to the next supported locale.
func (t *Translator) Toggle() error {
	for i, l := range Locales {
		if l == t.locale {
			return t.SetLocale(Locales[(i+1)%len(Locales)])
		}
	}
	return t.SetLocale(English)
}

// Subscribe registers fn for locale changes.
func (t *Translator) Subscribe(fn func(Locale)) (unsubscribe func()) {
	t.nextID++
	id := t.nextID
	t.subs[id] = fn
	t.order = append(t.order, id)
	return func() {
		delete(t.subs, id)
		for i, o := range t.order {
			if o == id {
				t.order = append(t.order[:i:i], t.order[i+1:]...)
				break
			}
		}
	}
}
