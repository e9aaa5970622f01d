// Package locale provides the installer's translated strings.
//
// Message catalogues live in locales/active.<tag>.toml and are embedded in
// the binary. English is the fallback for missing languages and messages.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/BrandonKowalski/zipinstaller/pkg/zipinstaller/guard"
)

//go:embed locales/*.toml
var catalogues embed.FS

// Localizer looks up messages for one language.
type Localizer struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewBundle loads every embedded catalogue.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(catalogues, "locales")
	if err != nil {
		return nil, fmt.Errorf("locale: read catalogues: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(catalogues, path.Join("locales", e.Name())); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", e.Name(), err)
		}
	}
	return bundle, nil
}

// New returns a Localizer for lang, the closest supported language, or
// English.
func New(lang string) (*Localizer, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}
	return NewWithBundle(bundle, lang), nil
}

// NewWithBundle is New for an already loaded bundle.
func NewWithBundle(bundle *i18n.Bundle, lang string) *Localizer {
	supported := bundle.LanguageTags()
	_, idx, confidence := language.NewMatcher(supported).Match(language.Make(lang))
	resolved := language.English
	if confidence != language.No {
		resolved = supported[idx]
	}

	return &Localizer{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, resolved.String(), language.English.String()),
		tag:       resolved,
	}
}

// Tag returns the language messages are served in.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Supported lists the languages with a catalogue.
func (l *Localizer) Supported() []language.Tag {
	return l.bundle.LanguageTags()
}

// WithLanguage returns a Localizer for lang sharing l's catalogues.
func (l *Localizer) WithLanguage(lang string) *Localizer {
	return NewWithBundle(l.bundle, lang)
}

// LanguageName is the name of tag in its own language, or the tag itself
// when no name is known.
func LanguageName(tag language.Tag) string {
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}

// T returns the message id, or id itself when it is unknown.
func (l *Localizer) T(id string) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id})
}

// TData returns the message id rendered with data.
func (l *Localizer) TData(id string, data map[string]any) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

// Plural returns the plural form of id for count. The template sees
// {{.Count}}.
func (l *Localizer) Plural(id string, count int) string {
	return l.localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: map[string]any{"Count": count},
	})
}

// LeavePrompt is the confirmation shown before leaving the options screen.
func (l *Localizer) LeavePrompt() guard.Prompt {
	return guard.Prompt{
		Title:   l.T("LeaveOptionsTitle"),
		Message: l.T("LeaveOptionsMessage"),
		Accept:  l.T("LeaveOptionsAccept"),
		Reject:  l.T("LeaveOptionsReject"),
	}
}

func (l *Localizer) localize(cfg *i18n.LocalizeConfig) string {
	msg, err := l.localizer.Localize(cfg)
	if err != nil || msg == "" {
		return cfg.MessageID
	}
	return msg
}
