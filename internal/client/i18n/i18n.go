// Package i18n provides the key->string lookup used by views and flow
// controllers, keyed by the current interface language.
//
// Languages are identified by BCP 47 tags; only English (the default) and
// Turkish ship with the client. The current language lives in a Locale,
// whose listeners (the API client's Accept-Language, the renderer) are
// told about every change.
package i18n

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Supported lists the shipped languages; the first is the default.
var Supported = []language.Tag{language.English, language.Turkish}

// Bundle is an immutable message catalog.
type Bundle struct {
	cat *catalog.Builder
}

// NewBundle builds the catalog from the shipped message tables.
func NewBundle() (*Bundle, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	if err := addMessages(b, language.English, english); err != nil {
		return nil, err
	}
	if err := addMessages(b, language.Turkish, turkish); err != nil {
		return nil, err
	}
	return &Bundle{cat: b}, nil
}

func addMessages(b *catalog.Builder, tag language.Tag, messages map[string]string) error {
	for key, msg := range messages {
		if err := b.SetString(tag, key, msg); err != nil {
			return fmt.Errorf("catalog %s[%s]: %w", tag, key, err)
		}
	}
	return nil
}

// Translate returns the message for key in tag. Unknown keys come back
// unchanged.
func (b *Bundle) Translate(tag language.Tag, key string) string {
	p := message.NewPrinter(tag, message.Catalog(b.cat))
	return p.Sprintf(key)
}

// ParseLanguage normalises s ("TR", "en-US") to one of Supported.
func ParseLanguage(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	base, _ := tag.Base()
	for _, supported := range Supported {
		if sb, _ := supported.Base(); sb == base {
			return supported, nil
		}
	}
	return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// Locale is the current interface language.
type Locale struct {
	bundle *Bundle

	mu        sync.RWMutex
	tag       language.Tag
	listeners []func(lang string)
}

func NewLocale(bundle *Bundle, initial string) (*Locale, error) {
	tag, err := ParseLanguage(initial)
	if err != nil {
		return nil, err
	}
	return &Locale{bundle: bundle, tag: tag}, nil
}

// Language returns the current tag as a string ("en", "tr").
func (l *Locale) Language() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tag.String()
}

// Set switches the language and notifies listeners, even when unchanged.
func (l *Locale) Set(lang string) error {
	tag, err := ParseLanguage(lang)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.tag = tag
	listeners := slices.Clone(l.listeners)
	l.mu.Unlock()

	for _, fn := range listeners {
		fn(tag.String())
	}
	return nil
}

// OnChange registers fn and calls it immediately with the current language,
// so a listener never misses the initial value.
func (l *Locale) OnChange(fn func(lang string)) {
	l.mu.Lock()
	l.listeners = append(l.listeners, fn)
	current := l.tag.String()
	l.mu.Unlock()

	fn(current)
}

// T translates key into the current language.
func (l *Locale) T(key string) string {
	l.mu.RLock()
	tag := l.tag
	l.mu.RUnlock()
	return l.bundle.Translate(tag, key)
}
